package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CategorySummary resultado crudo del resumen anual por tipo de contratación.
type CategorySummary struct {
	CategoryLabel string
	OrderCount    int
	Total         decimal.Decimal
}

// SummaryRepository define las consultas de lectura del resumen de compras.
type SummaryRepository interface {
	// SummaryByCategory agrupa por tipo_contratacion las OC emitidas en el año calendario.
	SummaryByCategory(ctx context.Context, year int) ([]CategorySummary, error)
}
