package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Alícuotas de IVA según la condición del proveedor.
var (
	TaxRateRegistered   = decimal.RequireFromString("0.21")  // responsable inscripto
	TaxRateUnregistered = decimal.RequireFromString("0.105") // no inscripto
)

// PurchaseOrder es la cabecera de una Orden de Compra.
// SequenceNumber ("NN/YYYY") es de presentación; SequenceIndex (pedido_nro)
// es el orden autoritativo y nunca se repite.
type PurchaseOrder struct {
	ID                  string
	SequenceNumber      string // numero_oc
	SequenceIndex       int64  // pedido_nro
	Destination         string
	IssueDate           time.Time
	CaseFileReference   string  // expediente_id
	ResolutionReference *string // resolucion_nro, texto libre
	PaymentTerms        string
	DeliveryTerms       string
	IsTaxRegistered     bool
	CategoryLabel       string
	Subtotal            decimal.Decimal
	Tax                 decimal.Decimal
	Total               decimal.Decimal
	CreatedAt           time.Time
}

// TaxRate devuelve la alícuota aplicada a la orden.
func (o *PurchaseOrder) TaxRate() decimal.Decimal {
	if o.IsTaxRegistered {
		return TaxRateRegistered
	}
	return TaxRateUnregistered
}

// OrderLine es un renglón persistido. LineNumber es 1-based y sigue el orden de carga.
type OrderLine struct {
	ID          string
	OrderID     string
	LineNumber  int
	Quantity    decimal.Decimal
	Description string
	Brand       *string
	UnitPrice   decimal.Decimal
}

// Amount devuelve cantidad × valor unitario.
func (l *OrderLine) Amount() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// LineItem es un renglón de entrada, todavía sin persistir.
type LineItem struct {
	Quantity    decimal.Decimal
	Description string
	Brand       *string
	UnitPrice   decimal.Decimal
}
