package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemRequest renglón de una OC (cantidad, detalle, marca, valor unitario).
type LineItemRequest struct {
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description" validate:"required,max=2000"`
	Brand       *string         `json:"brand,omitempty" validate:"omitempty,max=200"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
// Destination y DeliveryTerms vacíos toman los valores por defecto de configuración.
type CreatePurchaseOrderRequest struct {
	CaseFileReference   string            `json:"case_file_reference" validate:"required,max=100"`
	ResolutionReference *string           `json:"resolution_reference,omitempty" validate:"omitempty,max=100"`
	Destination         string            `json:"destination,omitempty" validate:"omitempty,max=300"`
	PaymentTerms        string            `json:"payment_terms" validate:"required,max=300"`
	DeliveryTerms       string            `json:"delivery_terms,omitempty" validate:"omitempty,max=300"`
	IsTaxRegistered     bool              `json:"is_tax_registered"`
	Lines               []LineItemRequest `json:"lines" validate:"required,min=1,dive"`
}

// PrepareDraftRequest body para POST /api/purchase-orders/draft. Los renglones son opcionales.
type PrepareDraftRequest struct {
	CaseFileReference string            `json:"case_file_reference" validate:"omitempty,max=100"`
	IsTaxRegistered   bool              `json:"is_tax_registered"`
	Lines             []LineItemRequest `json:"lines,omitempty" validate:"omitempty,dive"`
}

// DraftResponse borrador de OC: numeración sugerida, valores por defecto y totales.
// La numeración es orientativa; se recalcula al confirmar.
type DraftResponse struct {
	SequenceNumber    string          `json:"sequence_number"`
	SequenceIndex     int64           `json:"sequence_index"`
	IssueDate         string          `json:"issue_date"`
	CaseFileReference string          `json:"case_file_reference,omitempty"`
	Destination       string          `json:"destination"`
	DeliveryTerms     string          `json:"delivery_terms"`
	IsTaxRegistered   bool            `json:"is_tax_registered"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	TaxRate           decimal.Decimal `json:"tax_rate"`
	Tax               decimal.Decimal `json:"tax"`
	Total             decimal.Decimal `json:"total"`
	CategoryLabel     string          `json:"category_label"`
	AmountInWords     string          `json:"amount_in_words"`
}

// PurchaseOrderResponse OC con renglones para GET /api/purchase-orders/:id.
type PurchaseOrderResponse struct {
	ID                  string              `json:"id"`
	SequenceNumber      string              `json:"sequence_number"`
	SequenceIndex       int64               `json:"sequence_index"`
	Destination         string              `json:"destination"`
	IssueDate           string              `json:"issue_date"`
	CaseFileReference   string              `json:"case_file_reference"`
	ResolutionReference *string             `json:"resolution_reference,omitempty"`
	PaymentTerms        string              `json:"payment_terms"`
	DeliveryTerms       string              `json:"delivery_terms"`
	IsTaxRegistered     bool                `json:"is_tax_registered"`
	CategoryLabel       string              `json:"category_label"`
	Subtotal            decimal.Decimal     `json:"subtotal"`
	TaxRate             decimal.Decimal     `json:"tax_rate"`
	Tax                 decimal.Decimal     `json:"tax"`
	Total               decimal.Decimal     `json:"total"`
	AmountInWords       string              `json:"amount_in_words,omitempty"`
	Lines               []OrderLineResponse `json:"lines,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
}

// OrderLineResponse renglón en la respuesta; Amount = cantidad × valor unitario.
type OrderLineResponse struct {
	ID          string          `json:"id"`
	LineNumber  int             `json:"line_number"`
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description"`
	Brand       *string         `json:"brand,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// PurchaseOrderListResponse listado paginado (sin renglones).
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// ThresholdResponse tope de contratación.
type ThresholdResponse struct {
	ID            int             `json:"id"`
	CategoryLabel string          `json:"category_label"`
	CeilingAmount decimal.Decimal `json:"ceiling_amount"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// UpdateThresholdRequest body para PUT /api/thresholds/:id.
type UpdateThresholdRequest struct {
	CeilingAmount decimal.Decimal `json:"ceiling_amount"`
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,max=300"`
	CUIT    string `json:"cuit" validate:"required,max=13"`
	Address string `json:"address,omitempty" validate:"omitempty,max=300"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CUIT      string    `json:"cuit"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CategorySummaryDTO cantidad de OC e importe total de un tipo de contratación.
type CategorySummaryDTO struct {
	CategoryLabel string          `json:"category_label"`
	OrderCount    int             `json:"order_count"`
	Total         decimal.Decimal `json:"total"`
}

// PurchasingSummaryResponse respuesta de GET /api/purchase-orders/summary.
type PurchasingSummaryResponse struct {
	Year       int                  `json:"year"`
	Categories []CategorySummaryDTO `json:"categories"`
	OrderCount int                  `json:"order_count"`
	GrandTotal decimal.Decimal      `json:"grand_total"`
}
