package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
)

// ThresholdRepository define el puerto de persistencia para los topes de contratación.
type ThresholdRepository interface {
	List(ctx context.Context) ([]entity.MonetaryThreshold, error)
	GetByID(ctx context.Context, id int) (*entity.MonetaryThreshold, error)
	UpdateCeiling(ctx context.Context, id int, ceiling decimal.Decimal) error
	// Upsert crea o actualiza por tipo de contratación (seed).
	Upsert(ctx context.Context, categoryLabel string, ceiling decimal.Decimal) error
}
