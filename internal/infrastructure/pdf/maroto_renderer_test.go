package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestor-irrigacion/internal/application/purchasing"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
	"github.com/jhoicas/gestor-irrigacion/internal/infrastructure/pdf"
)

func TestMarotoRenderer_Render(t *testing.T) {
	res := "Res. 45/2026"
	brand := "Tigre"
	doc := &purchasing.Document{
		Order: &entity.PurchaseOrder{
			SequenceNumber:      "03/2026",
			SequenceIndex:       118,
			Destination:         "ZONA RIEGO MALARGUE",
			IssueDate:           time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			CaseFileReference:   "EX-2026-00123",
			ResolutionReference: &res,
			PaymentTerms:        "30 días",
			DeliveryTerms:       "-",
			IsTaxRegistered:     true,
			CategoryLabel:       "Contratación directa",
			Subtotal:            decimal.NewFromInt(20000),
			Tax:                 decimal.NewFromInt(4200),
			Total:               decimal.NewFromInt(24200),
		},
		Lines: []*entity.OrderLine{
			{LineNumber: 1, Quantity: decimal.NewFromInt(10), Description: "Caño PVC 110mm clase 6 por 6 metros de largo con junta elástica incluida", Brand: &brand, UnitPrice: decimal.NewFromInt(1000)},
			{LineNumber: 2, Quantity: decimal.NewFromInt(5), Description: "Codo PVC 110mm", UnitPrice: decimal.NewFromInt(2000)},
		},
		AmountInWords: "VEINTICUATRO MIL DOSCIENTOS PESOS CON 00/100.-",
		TaxRateLabel:  "21%",
		Supplier:      &entity.Supplier{Name: "Riego Sur SRL", CUIT: "30-71234567-1"},
		IssuerName:    "Departamento General de Irrigación",
	}

	r := pdf.NewMarotoRenderer()
	out, err := r.Render(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.Equal(t, "pdf", r.Extension())
}

func TestMarotoRenderer_SinOrden(t *testing.T) {
	_, err := pdf.NewMarotoRenderer().Render(context.Background(), &purchasing.Document{})
	assert.Error(t, err)
}
