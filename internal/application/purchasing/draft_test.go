package purchasing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestor-irrigacion/internal/application/dto"
	"github.com/jhoicas/gestor-irrigacion/internal/application/purchasing"
	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
)

func TestPrepareDraft_SinRenglones(t *testing.T) {
	store := newStore()
	uc := purchasing.NewDraftUseCase(&memOrderRepo{store: store}, &memThresholdRepo{store: store}, testConfig())

	d, err := uc.PrepareDraft(context.Background(), dto.PrepareDraftRequest{CaseFileReference: "EX-1", IsTaxRegistered: true})
	require.NoError(t, err)
	assert.Equal(t, "01/2026", d.SequenceNumber)
	assert.Equal(t, int64(1), d.SequenceIndex)
	assert.Equal(t, "2026-03-10", d.IssueDate)
	assert.Equal(t, "ZONA RIEGO MALARGUE", d.Destination)
	assert.Equal(t, "-", d.DeliveryTerms)
	assert.True(t, d.Total.IsZero())
	assert.Equal(t, "CERO PESOS CON 00/100.-", d.AmountInWords)
	assert.Equal(t, "Contratación directa", d.CategoryLabel)
}

func TestPrepareDraft_ConRenglonesNoPersiste(t *testing.T) {
	store := newStore()
	store.orders = append(store.orders, &entity.PurchaseOrder{
		ID: "x", SequenceNumber: "07/2026", SequenceIndex: 40,
		IssueDate: time.Date(2026, 2, 1, 0, 0, 0, 0, mendoza),
	})
	cfg := testConfig()
	cfg.DefaultDestination = "ZONA RIEGO SAN RAFAEL"
	uc := purchasing.NewDraftUseCase(&memOrderRepo{store: store}, &memThresholdRepo{store: store}, cfg)

	d, err := uc.PrepareDraft(context.Background(), dto.PrepareDraftRequest{
		Lines: []dto.LineItemRequest{{Quantity: dec("2"), Description: "Medidor", UnitPrice: dec("0.75")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "08/2026", d.SequenceNumber)
	assert.Equal(t, int64(41), d.SequenceIndex)
	assert.Equal(t, "ZONA RIEGO SAN RAFAEL", d.Destination)
	assert.True(t, d.Subtotal.Equal(dec("1.5")))
	assert.True(t, d.TaxRate.Equal(dec("0.105")))
	assert.Equal(t, "UN PESO CON 66/100.-", d.AmountInWords)
	assert.Len(t, store.committedOrders(), 1)
}

func TestPrepareDraft_Errores(t *testing.T) {
	store := newStore()
	uc := purchasing.NewDraftUseCase(&memOrderRepo{store: store}, &memThresholdRepo{store: store}, testConfig())
	_, err := uc.PrepareDraft(context.Background(), dto.PrepareDraftRequest{
		Lines: []dto.LineItemRequest{{Quantity: dec("-2"), Description: "x", UnitPrice: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	store.thresholds = nil
	_, err = uc.PrepareDraft(context.Background(), dto.PrepareDraftRequest{})
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
