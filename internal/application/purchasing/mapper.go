package purchasing

import (
	"github.com/jhoicas/gestor-irrigacion/internal/application/dto"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func toLineItems(in []dto.LineItemRequest) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(in))
	for _, l := range in {
		items = append(items, entity.LineItem{
			Quantity:    l.Quantity,
			Description: l.Description,
			Brand:       l.Brand,
			UnitPrice:   l.UnitPrice,
		})
	}
	return items
}

// ToOrderResponse arma la respuesta de una OC; lines y words pueden ir vacíos (listados).
func ToOrderResponse(o *entity.PurchaseOrder, lines []*entity.OrderLine, words string) *dto.PurchaseOrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.PurchaseOrderResponse{
		ID:                  o.ID,
		SequenceNumber:      o.SequenceNumber,
		SequenceIndex:       o.SequenceIndex,
		Destination:         o.Destination,
		IssueDate:           o.IssueDate.Format(dateLayout),
		CaseFileReference:   o.CaseFileReference,
		ResolutionReference: o.ResolutionReference,
		PaymentTerms:        o.PaymentTerms,
		DeliveryTerms:       o.DeliveryTerms,
		IsTaxRegistered:     o.IsTaxRegistered,
		CategoryLabel:       o.CategoryLabel,
		Subtotal:            o.Subtotal,
		TaxRate:             o.TaxRate(),
		Tax:                 o.Tax,
		Total:               o.Total,
		AmountInWords:       words,
		CreatedAt:           o.CreatedAt,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			ID:          l.ID,
			LineNumber:  l.LineNumber,
			Quantity:    l.Quantity,
			Description: l.Description,
			Brand:       l.Brand,
			UnitPrice:   l.UnitPrice,
			Amount:      l.Amount(),
		})
	}
	return resp
}

func toThresholdResponse(t entity.MonetaryThreshold) dto.ThresholdResponse {
	return dto.ThresholdResponse{
		ID:            t.ID,
		CategoryLabel: t.CategoryLabel,
		CeilingAmount: t.CeilingAmount,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		CUIT:      s.CUIT,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
	}
}
