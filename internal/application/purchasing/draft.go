package purchasing

import (
	"context"
	"strings"

	"github.com/jhoicas/gestor-irrigacion/internal/application/dto"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/procurement"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/repository"
)

// DraftUseCase prepara el borrador de una OC nueva. Es de solo lectura:
// no bloquea ni persiste, la numeración se recalcula al confirmar.
type DraftUseCase struct {
	orderRepo     repository.PurchaseOrderRepository
	thresholdRepo repository.ThresholdRepository
	cfg           Config
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(orderRepo repository.PurchaseOrderRepository, thresholdRepo repository.ThresholdRepository, cfg Config) *DraftUseCase {
	return &DraftUseCase{orderRepo: orderRepo, thresholdRepo: thresholdRepo, cfg: cfg.withDefaults()}
}

// PrepareDraft devuelve numeración sugerida, fecha, valores por defecto y totales.
// Sin renglones los totales valen cero ("CERO PESOS CON 00/100.-").
func (uc *DraftUseCase) PrepareDraft(ctx context.Context, in dto.PrepareDraftRequest) (*dto.DraftResponse, error) {
	items := toLineItems(in.Lines)
	if len(items) > 0 {
		if err := procurement.ValidateLineItems(items); err != nil {
			return nil, err
		}
	}

	thresholds, err := uc.thresholdRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	totals := procurement.ComputeTotals(items, in.IsTaxRegistered)
	category, err := procurement.Classify(totals.Total, thresholds)
	if err != nil {
		return nil, err
	}
	words, err := procurement.AmountToWords(totals.Total)
	if err != nil {
		return nil, err
	}

	today := uc.cfg.today()
	numbering, err := NewOrderCounter(uc.orderRepo).Peek(ctx, today.Year())
	if err != nil {
		return nil, err
	}

	return &dto.DraftResponse{
		SequenceNumber:    numbering.SequenceNumber,
		SequenceIndex:     numbering.SequenceIndex,
		IssueDate:         today.Format(dateLayout),
		CaseFileReference: strings.TrimSpace(in.CaseFileReference),
		Destination:       uc.cfg.DefaultDestination,
		DeliveryTerms:     uc.cfg.DefaultDeliveryTerms,
		IsTaxRegistered:   in.IsTaxRegistered,
		Subtotal:          totals.Subtotal,
		TaxRate:           totals.TaxRate,
		Tax:               totals.Tax,
		Total:             totals.Total,
		CategoryLabel:     category,
		AmountInWords:     words,
	}, nil
}
