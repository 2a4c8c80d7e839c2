package repository

import (
	"context"

	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para Órdenes de Compra y sus renglones.
// Dentro de una transacción de creación, LockNumbering debe llamarse antes de
// leer la numeración para que dos altas concurrentes no calculen el mismo pedido_nro.
type PurchaseOrderRepository interface {
	// LockNumbering serializa las altas de OC hasta el fin de la transacción.
	LockNumbering(ctx context.Context) error
	// MostRecentNumberForYear devuelve el numero_oc de la última OC del año ("" si no hay).
	MostRecentNumberForYear(ctx context.Context, year int) (string, error)
	// MaxSequenceIndex devuelve el mayor pedido_nro emitido (0 si no hay).
	MaxSequenceIndex(ctx context.Context) (int64, error)

	Create(ctx context.Context, order *entity.PurchaseOrder) error
	CreateLine(ctx context.Context, line *entity.OrderLine) error

	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	// GetLines devuelve los renglones ordenados por número de renglón.
	GetLines(ctx context.Context, orderID string) ([]*entity.OrderLine, error)
	// List ordena por fecha desc, pedido_nro desc.
	List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error)
}
