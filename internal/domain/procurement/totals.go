package procurement

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
)

// Totals resume los importes de una orden. No se redondea: el redondeo es
// responsabilidad de la presentación.
type Totals struct {
	Subtotal decimal.Decimal
	TaxRate  decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals calcula subtotal = Σ cantidad × valor unitario, IVA 21% para
// responsables inscriptos o 10,5% en otro caso, y total = subtotal + IVA.
// Sin renglones todo vale cero.
func ComputeTotals(lines []entity.LineItem, taxRegistered bool) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Quantity.Mul(l.UnitPrice))
	}
	rate := entity.TaxRateUnregistered
	if taxRegistered {
		rate = entity.TaxRateRegistered
	}
	tax := subtotal.Mul(rate)
	return Totals{
		Subtotal: subtotal,
		TaxRate:  rate,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// TaxRateLabel devuelve la alícuota como se imprime en los documentos ("21%", "10,5%").
func TaxRateLabel(taxRegistered bool) string {
	if taxRegistered {
		return "21%"
	}
	return "10,5%"
}
