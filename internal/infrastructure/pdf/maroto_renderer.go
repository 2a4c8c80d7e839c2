// Package pdf genera la Orden de Compra en PDF a partir de la estructura
// terminada que arma el caso de uso de documentos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Organismo + CUIT    │  OC N° + Pedido N° + Fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: Destino / Expediente / Resolución / Contratación    │
//	│  PROVEEDOR: Razón social + CUIT + Domicilio (opcional)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Reng | Cant | Detalle | Marca | P.Unit | Importe    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA / TOTAL + monto en letras          │
//	│  CONDICIONES: Forma de pago / Plazo de entrega + firma      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestor-irrigacion/internal/application/purchasing"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ purchasing.DocumentRenderer = (*MarotoRenderer)(nil)

// MarotoRenderer implementa purchasing.DocumentRenderer usando Maroto v2.
type MarotoRenderer struct{}

// NewMarotoRenderer construye el generador.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// ContentType del documento generado.
func (g *MarotoRenderer) ContentType() string { return "application/pdf" }

// Extension del archivo generado.
func (g *MarotoRenderer) Extension() string { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoRenderer) Render(_ context.Context, doc *purchasing.Document) ([]byte, error) {
	if doc == nil || doc.Order == nil {
		return nil, fmt.Errorf("pdf: documento sin orden de compra")
	}
	o := doc.Order

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Compra "+o.SequenceNumber, true).
		WithAuthor(nonEmpty(doc.IssuerName, "-"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(orderDataRows(o)...)
	if doc.Supplier != nil {
		m.AddRows(supplierRow(doc.Supplier))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(doc.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(o, doc.TaxRateLabel))
	m.AddRows(wordsRow(doc.AmountInWords))
	m.AddRows(termsRow(o))
	m.AddRows(row.New(20))
	m.AddRows(signatureRow())

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: organismo + CUIT (izq) y N° OC + pedido + fecha (der).
func headerRow(doc *purchasing.Document) core.Row {
	o := doc.Order
	issuer := col.New(7).Add(
		text.New(nonEmpty(doc.IssuerName, "-"), props.Text{
			Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
		}),
	)
	if doc.IssuerCUIT != "" {
		issuer.Add(text.New("CUIT: "+doc.IssuerCUIT, props.Text{Size: 9, Top: 9, Color: colorGray}))
	}
	return row.New(20).Add(
		issuer,
		col.New(5).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+o.SequenceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New(fmt.Sprintf("Pedido N° %d", o.SequenceIndex), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
			text.New("Fecha: "+o.IssueDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 16, Color: colorGray,
			}),
		),
	)
}

// orderDataRows: destino, expediente, resolución y tipo de contratación.
func orderDataRows(o *entity.PurchaseOrder) []core.Row {
	resolution := "-"
	if o.ResolutionReference != nil {
		resolution = *o.ResolutionReference
	}
	field := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
			col.New(9).Add(text.New(value, props.Text{Size: 8, Top: 1})),
		)
	}
	return []core.Row{
		field("Destino:", o.Destination),
		field("Expediente:", o.CaseFileReference),
		field("Resolución:", resolution),
		field("Tipo de contratación:", o.CategoryLabel),
	}
}

// supplierRow: datos del proveedor adjudicado.
func supplierRow(s *entity.Supplier) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(s.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
			text.New(fmt.Sprintf("CUIT: %s   |   Domicilio: %s", s.CUIT, nonEmpty(s.Address, "-")),
				props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de renglones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Reng.", 1, align.Center),
		h("Cant.", 1, align.Center),
		h("Detalle", 4, align.Left),
		h("Marca", 2, align.Left),
		h("P. Unitario", 2, align.Right),
		h("Importe", 2, align.Right),
	)
}

// tableLineRows: una fila por renglón; el detalle largo se parte en líneas.
func tableLineRows(lines []*entity.OrderLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		detail := splitEvery(l.Description, 45)
		height := float64(4*len(detail) + 3)
		brand := "-"
		if l.Brand != nil {
			brand = *l.Brand
		}
		result = append(result, row.New(height).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.LineNumber), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(formatQuantity(l.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(l.Description, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(brand, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New("$"+formatMoney(l.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("$"+formatMoney(l.Amount()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: subtotal, IVA y total alineados a la derecha.
func totalsRow(o *entity.PurchaseOrder, rateLabel string) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1),
			label("IVA "+rateLabel+":", 6),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 11}),
		),
		col.New(3).Add(
			value("$"+formatMoney(o.Subtotal), 1),
			value("$"+formatMoney(o.Tax), 6),
			text.New("$"+formatMoney(o.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 11}),
		),
	)
}

func wordsRow(words string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Son pesos: "+words, props.Text{Style: fontstyle.Bold, Size: 8, Top: 3}),
	))
}

func termsRow(o *entity.PurchaseOrder) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Forma de pago:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 2}),
			text.New(o.PaymentTerms, props.Text{Size: 8, Top: 6}),
		),
		col.New(6).Add(
			text.New("Plazo de entrega:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 2}),
			text.New(o.DeliveryTerms, props.Text{Size: 8, Top: 6}),
		),
	)
}

func signatureRow() core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(4).Add(
			text.New("______________________________", props.Text{Size: 8, Align: align.Center}),
			text.New("Firma y sello", props.Text{Size: 7, Align: align.Center, Top: 5, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con separador de miles "." y dos decimales con ",".
// Ej: 24200 → "24.200,00", 1234567.5 → "1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	out := groupThousands(intPart) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}

// formatQuantity muestra la cantidad sin ceros decimales de sobra.
func formatQuantity(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return groupThousands(d.Truncate(0).String())
	}
	return strings.Replace(d.String(), ".", ",", 1)
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// splitEvery divide s en trozos de max n runas.
func splitEvery(s string, n int) []string {
	r := []rune(s)
	var parts []string
	for len(r) > n {
		parts = append(parts, string(r[:n]))
		r = r[n:]
	}
	if len(r) > 0 || len(parts) == 0 {
		parts = append(parts, string(r))
	}
	return parts
}
