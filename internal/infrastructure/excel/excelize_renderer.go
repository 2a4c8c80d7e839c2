// Package excel genera la Orden de Compra como planilla .xlsx con excelize.
// Con plantilla oficial se completan sus celdas; sin ella se arma una planilla
// con la misma disposición.
package excel

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/gestor-irrigacion/internal/application/purchasing"
)

// Disposición de la planilla oficial.
const (
	firstLineRow = 27
	// filas relativas a la última fila de renglones + 1
	totalOffset = 2
	ivaOffset   = 6
)

var _ purchasing.DocumentRenderer = (*ExcelizeRenderer)(nil)

// ExcelizeRenderer implementa purchasing.DocumentRenderer sobre excelize.
type ExcelizeRenderer struct {
	templatePath string
}

// NewExcelizeRenderer construye el generador. templatePath vacío genera una planilla nueva.
func NewExcelizeRenderer(templatePath string) *ExcelizeRenderer {
	return &ExcelizeRenderer{templatePath: templatePath}
}

// ContentType del documento generado.
func (r *ExcelizeRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension del archivo generado.
func (r *ExcelizeRenderer) Extension() string { return "xlsx" }

// Render completa la planilla y devuelve sus bytes.
func (r *ExcelizeRenderer) Render(_ context.Context, doc *purchasing.Document) ([]byte, error) {
	if doc == nil || doc.Order == nil {
		return nil, fmt.Errorf("excel: documento sin orden de compra")
	}

	f, sheet, err := r.open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	w := &cellWriter{f: f, sheet: sheet}
	if r.templatePath == "" {
		w.layout(len(doc.Lines))
	}
	w.fill(doc)
	if w.err != nil {
		return nil, fmt.Errorf("excel: completar planilla: %w", w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir planilla: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *ExcelizeRenderer) open() (*excelize.File, string, error) {
	if r.templatePath == "" {
		f := excelize.NewFile()
		const sheet = "OC"
		if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
			_ = f.Close()
			return nil, "", fmt.Errorf("excel: renombrar hoja: %w", err)
		}
		return f, sheet, nil
	}
	f, err := excelize.OpenFile(r.templatePath)
	if err != nil {
		return nil, "", fmt.Errorf("excel: abrir plantilla %s: %w", r.templatePath, err)
	}
	return f, f.GetSheetName(f.GetActiveSheetIndex()), nil
}

// cellWriter acumula el primer error de escritura.
type cellWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *cellWriter) set(col string, row int, value any) {
	if w.err != nil {
		return
	}
	if d, ok := value.(decimal.Decimal); ok {
		value = d.InexactFloat64()
	}
	w.err = w.f.SetCellValue(w.sheet, fmt.Sprintf("%s%d", col, row), value)
}

// fill escribe los datos de la OC en las coordenadas de la planilla oficial.
func (w *cellWriter) fill(doc *purchasing.Document) {
	o := doc.Order

	// Cabecera
	w.set("G", 2, o.SequenceNumber)
	w.set("H", 2, fmt.Sprintf("%d / NRO.", o.SequenceIndex))
	w.set("G", 3, o.Destination)
	w.set("G", 4, o.IssueDate.Format("02/01/2006"))

	// Expediente, resolución y tipo de contratación
	w.set("C", 7, o.CaseFileReference)
	resolution := ""
	if o.ResolutionReference != nil {
		resolution = *o.ResolutionReference
	}
	w.set("C", 8, resolution)
	w.set("C", 9, o.CategoryLabel)

	// Proveedor
	if s := doc.Supplier; s != nil {
		w.set("E", 11, s.Name)
		w.set("E", 12, s.Address)
		w.set("E", 13, s.CUIT)
	}

	// Zona
	w.set("C", 16, o.Destination)

	// Renglones
	row := firstLineRow
	for _, l := range doc.Lines {
		brand := "-"
		if l.Brand != nil {
			brand = *l.Brand
		}
		w.set("B", row, l.LineNumber)
		w.set("C", row, l.Quantity)
		w.set("D", row, l.Description)
		w.set("H", row, brand)
		w.set("I", row, l.UnitPrice)
		w.set("J", row, l.Amount())
		row++
	}

	// Totales, monto en letras y condiciones
	totalRow := row + totalOffset
	w.set("I", totalRow, o.Total)
	w.set("C", totalRow+2, doc.AmountInWords)
	w.set("E", totalRow+2, o.PaymentTerms)
	w.set("E", totalRow+3, o.DeliveryTerms)

	ivaRow := totalRow + ivaOffset
	w.set("I", ivaRow, o.Subtotal)
	w.set("C", ivaRow+1, doc.TaxRateLabel)
	w.set("I", ivaRow+1, o.Tax)
	w.set("I", ivaRow+2, o.Total)
}

// layout escribe rótulos y formatos cuando no hay plantilla.
func (w *cellWriter) layout(lines int) {
	w.set("B", 2, "ORDEN DE COMPRA")
	w.set("F", 2, "N°")
	w.set("F", 3, "Destino")
	w.set("F", 4, "Fecha")
	w.set("B", 7, "Expediente")
	w.set("B", 8, "Resolución")
	w.set("B", 9, "Contratación")
	w.set("D", 11, "Señor/es")
	w.set("D", 12, "Domicilio")
	w.set("D", 13, "CUIT")
	w.set("B", 16, "Zona")
	for col, label := range map[string]string{
		"B": "Reng.", "C": "Cant.", "D": "Detalle", "H": "Marca", "I": "P. Unitario", "J": "Importe",
	} {
		w.set(col, firstLineRow-1, label)
	}
	totalRow := firstLineRow + lines + totalOffset
	w.set("H", totalRow, "TOTAL")
	w.set("B", totalRow+2, "Son pesos")
	w.set("D", totalRow+2, "Forma de pago")
	w.set("D", totalRow+3, "Plazo de entrega")
	ivaRow := totalRow + ivaOffset
	w.set("H", ivaRow, "Subtotal")
	w.set("B", ivaRow+1, "IVA")
	w.set("H", ivaRow+2, "TOTAL")

	if w.err != nil {
		return
	}
	bold, err := w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		w.err = err
		return
	}
	money, err := w.f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		w.err = err
		return
	}
	steps := []func() error{
		func() error { return w.f.SetCellStyle(w.sheet, "B2", "B2", bold) },
		func() error {
			return w.f.SetCellStyle(w.sheet, fmt.Sprintf("B%d", firstLineRow-1), fmt.Sprintf("J%d", firstLineRow-1), bold)
		},
		func() error {
			return w.f.SetCellStyle(w.sheet, fmt.Sprintf("I%d", firstLineRow), fmt.Sprintf("J%d", ivaRow+2), money)
		},
		func() error { return w.f.SetColWidth(w.sheet, "D", "G", 18) },
		func() error { return w.f.SetColWidth(w.sheet, "I", "J", 14) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			w.err = err
			return
		}
	}
}
