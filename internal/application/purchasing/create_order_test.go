package purchasing_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestor-irrigacion/internal/application/dto"
	"github.com/jhoicas/gestor-irrigacion/internal/application/purchasing"
	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
)

var mendoza = time.FixedZone("ART", -3*60*60)

func testConfig() purchasing.Config {
	return purchasing.Config{
		Location: mendoza,
		Now:      func() time.Time { return time.Date(2026, 3, 10, 9, 30, 0, 0, mendoza) },
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validRequest() dto.CreatePurchaseOrderRequest {
	brand := "Tigre"
	return dto.CreatePurchaseOrderRequest{
		CaseFileReference: "EX-2026-00123",
		PaymentTerms:      "30 días fecha factura",
		IsTaxRegistered:   true,
		Lines: []dto.LineItemRequest{
			{Quantity: dec("10"), Description: "Caño PVC 110mm", Brand: &brand, UnitPrice: dec("1000")},
			{Quantity: dec("5"), Description: "Codo PVC 110mm 90°", UnitPrice: dec("2000")},
		},
	}
}

func TestCreatePurchaseOrder_Exitoso(t *testing.T) {
	store := newStore()
	uc := purchasing.NewCreatePurchaseOrderUseCase(store, testConfig(), nil)

	res, err := uc.CreatePurchaseOrder(context.Background(), validRequest())
	require.NoError(t, err)

	o := res.Order
	assert.Equal(t, "01/2026", o.SequenceNumber)
	assert.Equal(t, int64(1), o.SequenceIndex)
	assert.Equal(t, "ZONA RIEGO MALARGUE", o.Destination)
	assert.Equal(t, "-", o.DeliveryTerms)
	assert.Equal(t, "Contratación directa", o.CategoryLabel)
	assert.True(t, o.Subtotal.Equal(dec("20000")))
	assert.True(t, o.Tax.Equal(dec("4200")))
	assert.True(t, o.Total.Equal(dec("24200")))
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, mendoza), o.IssueDate)
	assert.Equal(t, "VEINTICUATRO MIL DOSCIENTOS PESOS CON 00/100.-", res.AmountInWords)

	require.Len(t, res.Lines, 2)
	for i, l := range res.Lines {
		assert.Equal(t, i+1, l.LineNumber)
		assert.Equal(t, o.ID, l.OrderID)
	}
	assert.Equal(t, "Caño PVC 110mm", res.Lines[0].Description)
	require.NotNil(t, res.Lines[0].Brand)
	assert.Nil(t, res.Lines[1].Brand)

	assert.Len(t, store.committedOrders(), 1)
	lines, err := (&memOrderRepo{store: store}).GetLines(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestCreatePurchaseOrder_NumeracionCorrelativa(t *testing.T) {
	store := newStore()
	uc := purchasing.NewCreatePurchaseOrderUseCase(store, testConfig(), nil)

	first, err := uc.CreatePurchaseOrder(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := uc.CreatePurchaseOrder(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "01/2026", first.Order.SequenceNumber)
	assert.Equal(t, "02/2026", second.Order.SequenceNumber)
	assert.Equal(t, first.Order.SequenceIndex+1, second.Order.SequenceIndex)
}

// El numero_oc se reinicia con el año; el pedido_nro no.
func TestCreatePurchaseOrder_CambioDeAnio(t *testing.T) {
	store := newStore()
	store.orders = append(store.orders, &entity.PurchaseOrder{
		ID:             "prev",
		SequenceNumber: "15/2025",
		SequenceIndex:  15,
		IssueDate:      time.Date(2025, 12, 29, 0, 0, 0, 0, mendoza),
		Total:          dec("100"),
	})
	uc := purchasing.NewCreatePurchaseOrderUseCase(store, testConfig(), nil)

	res, err := uc.CreatePurchaseOrder(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "01/2026", res.Order.SequenceNumber)
	assert.Equal(t, int64(16), res.Order.SequenceIndex)
}

func TestCreatePurchaseOrder_ValoresExplicitos(t *testing.T) {
	store := newStore()
	uc := purchasing.NewCreatePurchaseOrderUseCase(store, testConfig(), nil)

	res := "  Res. 45/2026 "
	in := validRequest()
	in.Destination = "ZONA RIEGO SAN RAFAEL"
	in.DeliveryTerms = "10 días hábiles"
	in.ResolutionReference = &res
	in.IsTaxRegistered = false

	got, err := uc.CreatePurchaseOrder(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "ZONA RIEGO SAN RAFAEL", got.Order.Destination)
	assert.Equal(t, "10 días hábiles", got.Order.DeliveryTerms)
	require.NotNil(t, got.Order.ResolutionReference)
	assert.Equal(t, "Res. 45/2026", *got.Order.ResolutionReference)
	assert.True(t, got.Order.Tax.Equal(dec("2100")))
	assert.True(t, got.Order.Total.Equal(dec("22100")))
}

// La clasificación se hace sobre el total con IVA.
func TestCreatePurchaseOrder_ClasificaSobreTotal(t *testing.T) {
	store := newStore()
	uc := purchasing.NewCreatePurchaseOrderUseCase(store, testConfig(), nil)

	in := validRequest()
	in.Lines = []dto.LineItemRequest{{Quantity: dec("1"), Description: "Compuerta", UnitPrice: dec("4500000")}}
	res, err := uc.CreatePurchaseOrder(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, res.Order.Total.Equal(dec("5445000")))
	assert.Equal(t, "Contratación directa con publicación", res.Order.CategoryLabel)
}

func TestCreatePurchaseOrder_Validacion(t *testing.T) {
	cases := map[string]func(*dto.CreatePurchaseOrderRequest){
		"sin renglones":     func(r *dto.CreatePurchaseOrderRequest) { r.Lines = nil },
		"cantidad negativa": func(r *dto.CreatePurchaseOrderRequest) { r.Lines[0].Quantity = dec("-1") },
		"precio negativo":   func(r *dto.CreatePurchaseOrderRequest) { r.Lines[1].UnitPrice = dec("-0.01") },
		"sin expediente":    func(r *dto.CreatePurchaseOrderRequest) { r.CaseFileReference = " " },
		"sin forma de pago": func(r *dto.CreatePurchaseOrderRequest) { r.PaymentTerms = "" },
		"detalle vacío":     func(r *dto.CreatePurchaseOrderRequest) { r.Lines[0].Description = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			store := newStore()
			uc := purchasing.NewCreatePurchaseOrderUseCase(store, testConfig(), nil)
			in := validRequest()
			mutate(&in)

			_, err := uc.CreatePurchaseOrder(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, store.committedOrders())
		})
	}
}

func TestCreatePurchaseOrder_ValidacionReportaTodo(t *testing.T) {
	uc := purchasing.NewCreatePurchaseOrderUseCase(newStore(), testConfig(), nil)
	in := validRequest()
	in.PaymentTerms = ""
	in.Lines[1].Quantity = dec("-3")

	_, err := uc.CreatePurchaseOrder(context.Background(), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forma de pago requerida")
	assert.Contains(t, err.Error(), "renglón 2: cantidad negativa")
}

func TestCreatePurchaseOrder_SinTopes(t *testing.T) {
	store := newStore()
	store.thresholds = nil
	uc := purchasing.NewCreatePurchaseOrderUseCase(store, testConfig(), nil)

	_, err := uc.CreatePurchaseOrder(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Empty(t, store.committedOrders())
}

func TestCreatePurchaseOrder_MontoFueraDeRango(t *testing.T) {
	store := newStore()
	uc := purchasing.NewCreatePurchaseOrderUseCase(store, testConfig(), nil)
	in := validRequest()
	in.Lines = []dto.LineItemRequest{{Quantity: dec("1"), Description: "Obra", UnitPrice: dec("1000000000")}}

	_, err := uc.CreatePurchaseOrder(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNumericRange)
	assert.Empty(t, store.committedOrders())
}

// Un fallo al guardar un renglón deshace toda la OC y libera la numeración.
func TestCreatePurchaseOrder_RollbackCompleto(t *testing.T) {
	store := newStore()
	store.failLine = 2
	uc := purchasing.NewCreatePurchaseOrderUseCase(store, testConfig(), nil)

	_, err := uc.CreatePurchaseOrder(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Contains(t, err.Error(), "renglón 2")
	assert.Empty(t, store.committedOrders())
	assert.Empty(t, store.lines)

	store.failLine = 0
	res, err := uc.CreatePurchaseOrder(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Order.SequenceIndex)
	assert.Equal(t, "01/2026", res.Order.SequenceNumber)
}

func TestCreatePurchaseOrder_Concurrente(t *testing.T) {
	store := newStore()
	uc := purchasing.NewCreatePurchaseOrderUseCase(store, testConfig(), nil)

	const n = 30
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.CreatePurchaseOrder(context.Background(), validRequest())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	orders := store.committedOrders()
	require.Len(t, orders, n)
	indexes := map[int64]bool{}
	numbers := map[string]bool{}
	for _, o := range orders {
		assert.False(t, indexes[o.SequenceIndex], "pedido_nro repetido: %d", o.SequenceIndex)
		assert.False(t, numbers[o.SequenceNumber], "numero_oc repetido: %s", o.SequenceNumber)
		indexes[o.SequenceIndex] = true
		numbers[o.SequenceNumber] = true
	}
	for i := 1; i <= n; i++ {
		assert.True(t, indexes[int64(i)], "falta pedido_nro %d", i)
		assert.True(t, numbers[fmt.Sprintf("%02d/2026", i)], "falta numero_oc %02d/2026", i)
	}
}

func TestOrderResult_Response(t *testing.T) {
	uc := purchasing.NewCreatePurchaseOrderUseCase(newStore(), testConfig(), nil)
	res, err := uc.CreatePurchaseOrder(context.Background(), validRequest())
	require.NoError(t, err)

	resp := res.Response()
	assert.Equal(t, "2026-03-10", resp.IssueDate)
	assert.True(t, resp.TaxRate.Equal(dec("0.21")))
	require.Len(t, resp.Lines, 2)
	assert.True(t, resp.Lines[0].Amount.Equal(dec("10000")))
	assert.Equal(t, res.AmountInWords, resp.AmountInWords)
}
