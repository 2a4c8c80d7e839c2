package purchasing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestor-irrigacion/internal/application/dto"
	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/repository"
)

// SummaryUseCase resumen anual de compras por tipo de contratación.
type SummaryUseCase struct {
	repo repository.SummaryRepository
	cfg  Config
}

// NewSummaryUseCase construye el caso de uso. cfg aporta el reloj y la zona horaria del organismo.
func NewSummaryUseCase(repo repository.SummaryRepository, cfg Config) *SummaryUseCase {
	return &SummaryUseCase{repo: repo, cfg: cfg.withDefaults()}
}

// Summary devuelve cantidad e importe de OC por tipo de contratación en el año, y el total general.
// year == 0 toma el año en curso en la zona del organismo.
func (uc *SummaryUseCase) Summary(ctx context.Context, year int) (*dto.PurchasingSummaryResponse, error) {
	if year == 0 {
		year = uc.cfg.today().Year()
	}
	if year < 2000 || year > 9999 {
		return nil, fmt.Errorf("%w: año %d", domain.ErrInvalidInput, year)
	}
	rows, err := uc.repo.SummaryByCategory(ctx, year)
	if err != nil {
		return nil, err
	}
	out := &dto.PurchasingSummaryResponse{
		Year:       year,
		Categories: make([]dto.CategorySummaryDTO, 0, len(rows)),
		GrandTotal: decimal.Zero,
	}
	for _, r := range rows {
		out.Categories = append(out.Categories, dto.CategorySummaryDTO{
			CategoryLabel: r.CategoryLabel,
			OrderCount:    r.OrderCount,
			Total:         r.Total,
		})
		out.OrderCount += r.OrderCount
		out.GrandTotal = out.GrandTotal.Add(r.Total)
	}
	return out, nil
}
