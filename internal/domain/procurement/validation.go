package procurement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
)

// ValidateLineItems revisa los renglones de una orden a confirmar.
// Reporta todos los problemas juntos (errors.Join) e identifica cada renglón por su número.
func ValidateLineItems(lines []entity.LineItem) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: la orden debe tener al menos un renglón", domain.ErrValidation)
	}
	var errs []error
	for i, l := range lines {
		n := i + 1
		if l.Quantity.IsNegative() {
			errs = append(errs, fmt.Errorf("renglón %d: cantidad negativa (%s)", n, l.Quantity.String()))
		}
		if l.UnitPrice.IsNegative() {
			errs = append(errs, fmt.Errorf("renglón %d: valor unitario negativo (%s)", n, l.UnitPrice.String()))
		}
		if strings.TrimSpace(l.Description) == "" {
			errs = append(errs, fmt.Errorf("renglón %d: detalle vacío", n))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{domain.ErrValidation}, errs...)...)
	}
	return nil
}

// ValidateOrderTotals comprueba que los importes de la cabecera coincidan con sus renglones.
func ValidateOrderTotals(order *entity.PurchaseOrder, lines []*entity.OrderLine) error {
	if order == nil {
		return fmt.Errorf("%w: orden nula", domain.ErrValidation)
	}
	items := make([]entity.LineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entity.LineItem{Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	want := ComputeTotals(items, order.IsTaxRegistered)

	var errs []error
	if !order.Subtotal.Equal(want.Subtotal) {
		errs = append(errs, fmt.Errorf("subtotal (%s) no coincide con la suma de renglones (%s)", order.Subtotal.String(), want.Subtotal.String()))
	}
	if !order.Tax.Equal(want.Tax) {
		errs = append(errs, fmt.Errorf("IVA (%s) no coincide con el calculado (%s)", order.Tax.String(), want.Tax.String()))
	}
	if !order.Total.Equal(want.Total) {
		errs = append(errs, fmt.Errorf("total (%s) no coincide con subtotal + IVA (%s)", order.Total.String(), want.Total.String()))
	}
	for i, l := range lines {
		if l.LineNumber != i+1 {
			errs = append(errs, fmt.Errorf("renglón en posición %d tiene número %d", i+1, l.LineNumber))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{domain.ErrValidation}, errs...)...)
	}
	return nil
}
