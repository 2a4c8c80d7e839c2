package purchasing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/gestor-irrigacion/internal/application/dto"
	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/procurement"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/repository"
	"github.com/jhoicas/gestor-irrigacion/pkg/logger"
)

// OrderResult OC confirmada con sus renglones y el monto en letras.
// Es exactamente la estructura que consumen los generadores de documentos.
type OrderResult struct {
	Order         *entity.PurchaseOrder
	Lines         []*entity.OrderLine
	AmountInWords string
}

// Response convierte el resultado a DTO.
func (r *OrderResult) Response() *dto.PurchaseOrderResponse {
	return ToOrderResponse(r.Order, r.Lines, r.AmountInWords)
}

// CreatePurchaseOrderUseCase crea una OC con sus renglones en una sola transacción.
type CreatePurchaseOrderUseCase struct {
	txRunner PurchasingTxRunner
	cfg      Config
	log      *logger.Logger
}

// NewCreatePurchaseOrderUseCase construye el caso de uso. log puede ser nil.
func NewCreatePurchaseOrderUseCase(txRunner PurchasingTxRunner, cfg Config, log *logger.Logger) *CreatePurchaseOrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CreatePurchaseOrderUseCase{txRunner: txRunner, cfg: cfg.withDefaults(), log: log}
}

// CreatePurchaseOrder valida la entrada y, dentro de la transacción:
// carga los topes, calcula totales, tipo de contratación y monto en letras,
// reserva numero_oc y pedido_nro, y persiste cabecera y renglones (1..n en el orden recibido).
// Cualquier error hace rollback completo.
func (uc *CreatePurchaseOrderUseCase) CreatePurchaseOrder(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*OrderResult, error) {
	items := toLineItems(in.Lines)
	if err := validateHeader(in, items); err != nil {
		uc.log.Warn().Err(err).Str("expediente", in.CaseFileReference).Msg("OC rechazada")
		return nil, err
	}

	issueDate := uc.cfg.today()
	now := uc.cfg.Now()
	destination := firstNonBlank(in.Destination, uc.cfg.DefaultDestination)
	deliveryTerms := firstNonBlank(in.DeliveryTerms, uc.cfg.DefaultDeliveryTerms)

	var result *OrderResult
	err := uc.txRunner.RunPurchasing(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		thresholdRepo repository.ThresholdRepository,
	) error {
		// 1) Topes vigentes
		thresholds, err := thresholdRepo.List(ctx)
		if err != nil {
			return err
		}

		// 2) Totales, tipo de contratación y monto en letras
		totals := procurement.ComputeTotals(items, in.IsTaxRegistered)
		category, err := procurement.Classify(totals.Total, thresholds)
		if err != nil {
			return err
		}
		words, err := procurement.AmountToWords(totals.Total)
		if err != nil {
			return err
		}

		// 3) Numeración (bloquea hasta el fin de la transacción)
		numbering, err := NewOrderCounter(orderRepo).Reserve(ctx, issueDate.Year())
		if err != nil {
			return err
		}

		// 4) Cabecera y renglones
		order := &entity.PurchaseOrder{
			ID:                  uuid.New().String(),
			SequenceNumber:      numbering.SequenceNumber,
			SequenceIndex:       numbering.SequenceIndex,
			Destination:         destination,
			IssueDate:           issueDate,
			CaseFileReference:   strings.TrimSpace(in.CaseFileReference),
			ResolutionReference: trimOptional(in.ResolutionReference),
			PaymentTerms:        strings.TrimSpace(in.PaymentTerms),
			DeliveryTerms:       deliveryTerms,
			IsTaxRegistered:     in.IsTaxRegistered,
			CategoryLabel:       category,
			Subtotal:            totals.Subtotal,
			Tax:                 totals.Tax,
			Total:               totals.Total,
			CreatedAt:           now,
		}
		lines := make([]*entity.OrderLine, 0, len(items))
		for i, item := range items {
			lines = append(lines, &entity.OrderLine{
				ID:          uuid.New().String(),
				OrderID:     order.ID,
				LineNumber:  i + 1,
				Quantity:    item.Quantity,
				Description: strings.TrimSpace(item.Description),
				Brand:       trimOptional(item.Brand),
				UnitPrice:   item.UnitPrice,
			})
		}
		if err := procurement.ValidateOrderTotals(order, lines); err != nil {
			return err
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		for _, line := range lines {
			if err := orderRepo.CreateLine(ctx, line); err != nil {
				return fmt.Errorf("renglón %d: %w", line.LineNumber, err)
			}
		}
		result = &OrderResult{Order: order, Lines: lines, AmountInWords: words}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("expediente", in.CaseFileReference).Msg("no se pudo crear la OC")
		return nil, err
	}

	uc.log.Info().
		Str("numero_oc", result.Order.SequenceNumber).
		Int64("pedido_nro", result.Order.SequenceIndex).
		Str("total", result.Order.Total.StringFixed(2)).
		Str("tipo_contratacion", result.Order.CategoryLabel).
		Msg("OC creada")
	return result, nil
}

// validateHeader reúne los problemas de cabecera y renglones en un único error.
func validateHeader(in dto.CreatePurchaseOrderRequest, items []entity.LineItem) error {
	var errs []error
	if strings.TrimSpace(in.CaseFileReference) == "" {
		errs = append(errs, errors.New("expediente requerido"))
	}
	if strings.TrimSpace(in.PaymentTerms) == "" {
		errs = append(errs, errors.New("forma de pago requerida"))
	}
	if err := procurement.ValidateLineItems(items); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	if !errors.Is(errors.Join(errs...), domain.ErrValidation) {
		errs = append([]error{domain.ErrValidation}, errs...)
	}
	return errors.Join(errs...)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
