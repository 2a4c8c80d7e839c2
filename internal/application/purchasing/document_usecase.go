package purchasing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/procurement"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/repository"
)

// Formatos de documento soportados.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// ExportedDocument bytes del documento generado más los datos para la descarga.
type ExportedDocument struct {
	Content     []byte
	Filename    string
	ContentType string
}

// DocumentUseCase arma la estructura terminada de una OC y la entrega al generador del formato pedido.
type DocumentUseCase struct {
	query        *OrderQueryUseCase
	supplierRepo repository.SupplierRepository
	renderers    map[string]DocumentRenderer
	cfg          Config
}

// NewDocumentUseCase construye el caso de uso. renderers se indexa por formato ("pdf", "xlsx").
func NewDocumentUseCase(
	orderRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	renderers map[string]DocumentRenderer,
	cfg Config,
) *DocumentUseCase {
	return &DocumentUseCase{
		query:        NewOrderQueryUseCase(orderRepo),
		supplierRepo: supplierRepo,
		renderers:    renderers,
		cfg:          cfg.withDefaults(),
	}
}

// ExportDocument genera el documento de la OC. supplierID es opcional.
//
// Retorna:
//   - domain.ErrInvalidInput  si el formato no está soportado.
//   - domain.ErrNotFound      si la OC o el proveedor no existen.
//   - domain.ErrValidation    si los importes guardados no cierran con los renglones.
func (uc *DocumentUseCase) ExportDocument(ctx context.Context, orderID, supplierID, format string) (*ExportedDocument, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatPDF
	}
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, format)
	}

	// ── 1. OC + renglones + monto en letras ──────────────────────────────────
	res, err := uc.query.GetPurchaseOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := procurement.ValidateOrderTotals(res.Order, res.Lines); err != nil {
		return nil, fmt.Errorf("OC %s: %w", res.Order.SequenceNumber, err)
	}
	doc := &Document{
		Order:         res.Order,
		Lines:         res.Lines,
		AmountInWords: res.AmountInWords,
		TaxRateLabel:  procurement.TaxRateLabel(res.Order.IsTaxRegistered),
		IssuerName:    uc.cfg.IssuerName,
		IssuerCUIT:    uc.cfg.IssuerCUIT,
	}

	// ── 2. Proveedor (opcional) ──────────────────────────────────────────────
	if supplierID != "" {
		s, err := uc.supplierRepo.GetByID(ctx, supplierID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, supplierID)
		}
		doc.Supplier = s
	}

	// ── 3. Generar ───────────────────────────────────────────────────────────
	content, err := renderer.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("documento %s: generación fallida: %w", format, err)
	}
	return &ExportedDocument{
		Content:     content,
		Filename:    fmt.Sprintf("OC_%s.%s", strings.ReplaceAll(res.Order.SequenceNumber, "/", "-"), renderer.Extension()),
		ContentType: renderer.ContentType(),
	}, nil
}
