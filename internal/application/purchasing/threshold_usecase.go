package purchasing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestor-irrigacion/internal/application/dto"
	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/procurement"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/repository"
)

// ThresholdUseCase administración de topes de contratación.
type ThresholdUseCase struct {
	repo repository.ThresholdRepository
}

// NewThresholdUseCase construye el caso de uso.
func NewThresholdUseCase(repo repository.ThresholdRepository) *ThresholdUseCase {
	return &ThresholdUseCase{repo: repo}
}

// ListThresholds devuelve los topes ordenados por monto máximo ascendente.
func (uc *ThresholdUseCase) ListThresholds(ctx context.Context) ([]dto.ThresholdResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sorted := procurement.SortThresholds(list)
	out := make([]dto.ThresholdResponse, 0, len(sorted))
	for _, t := range sorted {
		out = append(out, toThresholdResponse(t))
	}
	return out, nil
}

// UpdateThreshold cambia el monto máximo de un tope. El monto debe ser positivo
// y distinto del de los demás topes.
func (uc *ThresholdUseCase) UpdateThreshold(ctx context.Context, id int, ceiling decimal.Decimal) (*dto.ThresholdResponse, error) {
	if !ceiling.IsPositive() {
		return nil, fmt.Errorf("%w: el monto máximo debe ser mayor a cero", domain.ErrValidation)
	}
	if !ceiling.Equal(ceiling.Round(2)) {
		return nil, fmt.Errorf("%w: el monto máximo admite hasta 2 decimales (%s)", domain.ErrValidation, ceiling.String())
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range all {
		if t.ID != id && t.CeilingAmount.Equal(ceiling) {
			return nil, fmt.Errorf("%w: el monto %s ya corresponde a %q", domain.ErrValidation, ceiling.StringFixed(2), t.CategoryLabel)
		}
	}
	if err := uc.repo.UpdateCeiling(ctx, id, ceiling); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	resp := toThresholdResponse(*updated)
	return &resp, nil
}
