package purchasing

import (
	"context"

	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/repository"
)

// PurchasingTxRunner ejecuta una función dentro de una transacción con los repos de OC y topes.
// Si fn retorna error se hace rollback y no queda nada persistido.
type PurchasingTxRunner interface {
	RunPurchasing(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		thresholdRepo repository.ThresholdRepository,
	) error) error
}

// Document es la estructura terminada que consumen los generadores de documentos.
type Document struct {
	Order         *entity.PurchaseOrder
	Lines         []*entity.OrderLine
	AmountInWords string
	TaxRateLabel  string           // "21%" o "10,5%"
	Supplier      *entity.Supplier // opcional
	IssuerName    string
	IssuerCUIT    string
}

// DocumentRenderer genera la representación de una OC (PDF, XLSX).
type DocumentRenderer interface {
	Render(ctx context.Context, doc *Document) ([]byte, error)
	ContentType() string
	Extension() string
}
