package purchasing

import (
	"context"

	"github.com/jhoicas/gestor-irrigacion/internal/application/dto"
	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/procurement"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/repository"
)

// OrderQueryUseCase consultas de OC ya emitidas.
type OrderQueryUseCase struct {
	orderRepo repository.PurchaseOrderRepository
}

// NewOrderQueryUseCase construye el caso de uso.
func NewOrderQueryUseCase(orderRepo repository.PurchaseOrderRepository) *OrderQueryUseCase {
	return &OrderQueryUseCase{orderRepo: orderRepo}
}

// GetPurchaseOrder devuelve la OC con sus renglones y el monto en letras recalculado del total guardado.
func (uc *OrderQueryUseCase) GetPurchaseOrder(ctx context.Context, id string) (*OrderResult, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.orderRepo.GetLines(ctx, id)
	if err != nil {
		return nil, err
	}
	words, err := procurement.AmountToWords(order.Total)
	if err != nil {
		return nil, err
	}
	return &OrderResult{Order: order, Lines: lines, AmountInWords: words}, nil
}

// ListPurchaseOrders lista OC por fecha y pedido_nro descendentes, sin renglones.
func (uc *OrderQueryUseCase) ListPurchaseOrders(ctx context.Context, page dto.PageRequest) (*dto.PurchaseOrderListResponse, error) {
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	orders, err := uc.orderRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PurchaseOrderListResponse{
		Items: make([]dto.PurchaseOrderResponse, 0, len(orders)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, o := range orders {
		out.Items = append(out.Items, *ToOrderResponse(o, nil, ""))
	}
	return out, nil
}
