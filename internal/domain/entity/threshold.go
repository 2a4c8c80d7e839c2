package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonetaryThreshold es un tope de contratación: el monto máximo que admite
// un tipo de procedimiento (contratación directa, licitación, etc.).
type MonetaryThreshold struct {
	ID            int
	CategoryLabel string          // tipo_contratacion
	CeilingAmount decimal.Decimal // monto_maximo, inclusivo
	UpdatedAt     time.Time
}
