package services

import (
	"context"
	"testing"
	"time"

	"nursery_manager/internal/auth"
	"nursery_manager/internal/billing"
	"nursery_manager/internal/models"
	"nursery_manager/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quotationFixture struct {
	svc        QuotationService
	quotations *mockQuotationRepo
	bills      *mockBillRepo
	now        time.Time
}

func newQuotationFixture() *quotationFixture {
	f := &quotationFixture{bills: newMockBillRepo(), now: fixedNow}
	f.quotations = newMockQuotationRepo(f.bills)
	wa := NewWhatsAppService(nil, "", "Test Nursery", currency())
	f.svc = NewQuotationService(f.quotations, newMockPlantRepo(samplePlants()...), newMockCustomerRepo(sampleCustomer(true)),
		wa, "SKN-Q", "SKN", func() time.Time { return f.now })
	return f
}

func sampleQuotationInput() QuotationInput {
	return QuotationInput{
		CustomerID: "cust-1",
		Items:      []ItemInput{{PlantID: "rose", Quantity: 2}, {PlantID: "fern", Quantity: 1}},
		Tax:        dec("20"),
		Discount:   dec("50"),
	}
}

func TestQuotationCreate(t *testing.T) {
	f := newQuotationFixture()

	q, err := f.svc.Create(context.Background(), sessionFor(auth.Cashier), sampleQuotationInput())
	require.NoError(t, err)

	assert.Equal(t, "SKN-Q-000001", q.QuotationNumber)
	assert.Equal(t, billing.DefaultValidDays, q.ValidDays)
	assert.Equal(t, fixedNow.AddDate(0, 0, 30), q.ValidUntil)
	assert.Equal(t, models.QuotationActive, q.Status)
	assert.Equal(t, "active", q.DisplayStatus)
	assert.True(t, q.TotalAmount.Equal(dec("570")))
}

func TestQuotationCreateValidity(t *testing.T) {
	f := newQuotationFixture()
	input := sampleQuotationInput()
	zero := 0
	input.ValidDays = &zero

	_, err := f.svc.Create(context.Background(), sessionFor(auth.Admin), input)
	assert.ErrorIs(t, err, billing.ErrInvalidValidity)
	assert.Empty(t, f.quotations.quotations)

	seven := 7
	input.ValidDays = &seven
	q, err := f.svc.Create(context.Background(), sessionFor(auth.Admin), input)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.AddDate(0, 0, 7), q.ValidUntil)
}

func TestQuotationDisplayStatusOverTime(t *testing.T) {
	f := newQuotationFixture()
	q, err := f.svc.Create(context.Background(), sessionFor(auth.Admin), sampleQuotationInput())
	require.NoError(t, err)

	f.now = fixedNow.AddDate(0, 0, 29)
	got, err := f.svc.Get(q.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", got.DisplayStatus)

	f.now = fixedNow.AddDate(0, 0, 31)
	got, err = f.svc.Get(q.ID)
	require.NoError(t, err)
	assert.Equal(t, "expired", got.DisplayStatus)
	assert.Equal(t, models.QuotationActive, got.Status, "expiry is never stored")

	list, err := f.svc.List(repository.Page{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "expired", list[0].DisplayStatus)
}

func TestQuotationConvert(t *testing.T) {
	tests := []struct {
		role       auth.Role
		wantStatus models.BillStatus
	}{
		{auth.Cashier, models.BillPending},
		{auth.Manager, models.BillApproved},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			f := newQuotationFixture()
			ctx := context.Background()
			q, err := f.svc.Create(ctx, sessionFor(auth.Admin), sampleQuotationInput())
			require.NoError(t, err)

			converted, bill, err := f.svc.Convert(ctx, sessionFor(tt.role), q.ID, "online")
			require.NoError(t, err)

			assert.Equal(t, models.QuotationConverted, converted.Status)
			assert.Equal(t, "converted", converted.DisplayStatus)
			require.NotNil(t, converted.ConvertedBillID)
			assert.Equal(t, bill.ID, *converted.ConvertedBillID)

			assert.Equal(t, tt.wantStatus, bill.Status)
			assert.Equal(t, models.PaymentOnline, bill.PaymentMethod)
			assert.Equal(t, "SKN-000001", bill.BillNumber)
			assert.True(t, bill.TotalAmount.Equal(q.TotalAmount))
			assert.Len(t, bill.Items, 2)

			_, _, err = f.svc.Convert(ctx, sessionFor(tt.role), q.ID, "cash")
			assert.ErrorIs(t, err, billing.ErrQuotationNotActive)
		})
	}
}

func TestQuotationConvertExpired(t *testing.T) {
	f := newQuotationFixture()
	ctx := context.Background()
	q, err := f.svc.Create(ctx, sessionFor(auth.Admin), sampleQuotationInput())
	require.NoError(t, err)

	f.now = fixedNow.AddDate(0, 0, 30)
	_, _, err = f.svc.Convert(ctx, sessionFor(auth.Admin), q.ID, "")
	require.NoError(t, err, "still valid at exactly valid_until")

	q2, err := f.svc.Create(ctx, sessionFor(auth.Admin), sampleQuotationInput())
	require.NoError(t, err)
	f.now = q2.ValidUntil.Add(time.Second)
	_, _, err = f.svc.Convert(ctx, sessionFor(auth.Admin), q2.ID, "")
	assert.ErrorIs(t, err, billing.ErrQuotationExpired)
	assert.Len(t, f.bills.bills, 1)
}
