package orderflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetlink/models"
)

type stubDistance struct {
	km   float64
	err  error
	hits int
}

func (s *stubDistance) Distance(_ context.Context, _, _ models.Address) (float64, error) {
	s.hits++
	return s.km, s.err
}

type stubCreator struct {
	err   error
	calls int
}

func (s *stubCreator) CreateOrder(_ context.Context, order *models.Order) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	order.ID = "order-1"
	return nil
}

func testClient() models.Client {
	return models.Client{
		ID:                "client-1",
		CompanyName:       "ABC Logistics",
		ContactPersonName: "John Doe",
		ContactEmail:      "john@abclogistics.com",
		ContactNumber:     "9876543210",
		Addresses: []models.Address{
			{
				ID:           "addr-1",
				AddressLine1: "123 Main Street",
				City:         "Mumbai",
				State:        "Maharashtra",
				PinCode:      "400001",
				Country:      "India",
				AddressType:  models.AddressOffice,
			},
		},
	}
}

func newAddress(city, pin string) *models.Address {
	return &models.Address{
		AddressLine1: "456 Central Avenue",
		City:         city,
		State:        "Delhi",
		PinCode:      pin,
		Country:      "India",
		AddressType:  models.AddressTransport,
	}
}

func transportInput() TransportInput {
	return TransportInput{
		Status:                 models.OrderNew,
		Size:                   models.SizeMedium,
		UseExistingSource:      true,
		SourceAddressID:        "addr-1",
		UseExistingDestination: false,
		Destination:            newAddress("Delhi", "110001"),
	}
}

func advanceToPayment(t *testing.T, dist *stubDistance) *Draft {
	t.Helper()
	d := NewDraft(dist)
	require.NoError(t, d.SelectClient(testClient()))
	require.NoError(t, d.SetTransport(transportInput()))
	_, err := d.RecalculateDistance(context.Background())
	require.NoError(t, err)
	_, err = d.SetBilling(15, 18)
	require.NoError(t, err)
	return d
}

func TestDraftHappyPath(t *testing.T) {
	dist := &stubDistance{km: 1400}
	d := advanceToPayment(t, dist)

	require.Equal(t, StepPayment, d.Step())
	assert.Equal(t, 24780.0, d.Billing().TotalAmount)

	payment := models.Payment{
		PaymentType:   models.PaymentComplete,
		PaymentMode:   models.PaymentUPI,
		TransactionID: "UPI-123456",
	}
	drivers := []models.DriverOption{{ID: "driver-1", Name: "Raj Kumar"}}
	require.NoError(t, d.SetPayment(payment, "driver-1", drivers))

	creator := &stubCreator{}
	order, err := d.Submit(context.Background(), creator)
	require.NoError(t, err)
	require.Equal(t, 1, creator.calls)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, StepCompleted, d.Step())
	assert.Equal(t, 24780.0, order.Payment.Amount)
	assert.Equal(t, "driver-1", order.DriverID)
}

func TestDraftRejectsInvalidClient(t *testing.T) {
	d := NewDraft(&stubDistance{km: 10})
	c := testClient()
	c.Addresses = nil
	err := d.SelectClient(c)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, StepClient, d.Step())
}

func TestDraftTransportMissingAddressReference(t *testing.T) {
	d := NewDraft(&stubDistance{km: 10})
	require.NoError(t, d.SelectClient(testClient()))

	in := transportInput()
	in.SourceAddressID = "addr-999"
	err := d.SetTransport(in)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "no longer exists")
}

func TestDraftDistanceFailureKeepsLastValue(t *testing.T) {
	dist := &stubDistance{km: 1400}
	d := NewDraft(dist)
	require.NoError(t, d.SelectClient(testClient()))
	require.NoError(t, d.SetTransport(transportInput()))

	// first attempt fails: distance stays at zero, draft stays usable
	dist.err = errors.New("distance service unavailable")
	km, err := d.RecalculateDistance(context.Background())
	require.Error(t, err)
	assert.False(t, IsValidation(err))
	assert.Equal(t, 0.0, km)

	// retry succeeds
	dist.err = nil
	km, err = d.RecalculateDistance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1400.0, km)

	// a later failure retains the last known good value
	dist.err = errors.New("distance service unavailable")
	km, err = d.RecalculateDistance(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1400.0, km)
	assert.Equal(t, 1400.0, d.Distance())
}

func TestDraftDistanceRecalcLastWins(t *testing.T) {
	dist := &stubDistance{km: 350}
	d := NewDraft(dist)
	require.NoError(t, d.SelectClient(testClient()))
	require.NoError(t, d.SetTransport(transportInput()))

	_, err := d.RecalculateDistance(context.Background())
	require.NoError(t, err)
	dist.km = 420
	km, err := d.RecalculateDistance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 420.0, km)
	assert.Equal(t, 2, dist.hits)
}

func TestDraftRecalcAfterBillingRecomputes(t *testing.T) {
	dist := &stubDistance{km: 350}
	d := advanceToPayment(t, dist)
	require.Equal(t, 350.0, d.Billing().Distance)

	dist.km = 1400
	_, err := d.RecalculateDistance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1400.0, d.Billing().Distance)
	assert.Equal(t, 1400*15*1.18, d.Billing().TotalAmount)
}

func TestDraftRecalcAfterPaymentRederivesComplete(t *testing.T) {
	dist := &stubDistance{km: 100}
	d := advanceToPayment(t, dist)

	payment := models.Payment{
		PaymentType:   models.PaymentComplete,
		PaymentMode:   models.PaymentUPI,
		TransactionID: "UPI-1",
	}
	require.NoError(t, d.SetPayment(payment, "driver-1", []models.DriverOption{{ID: "driver-1"}}))
	require.Equal(t, 1770.0, d.payment.Amount)

	// the route changes after the payment step; a COMPLETE payment must
	// follow the new total
	dist.km = 1000
	_, err := d.RecalculateDistance(context.Background())
	require.NoError(t, err)

	creator := &stubCreator{}
	order, err := d.Submit(context.Background(), creator)
	require.NoError(t, err)
	assert.Equal(t, 17700.0, order.Billing.TotalAmount)
	assert.Equal(t, order.Billing.TotalAmount, order.Payment.Amount)
	require.NotNil(t, order.Payment.RemainingAmount)
	assert.Equal(t, 0.0, *order.Payment.RemainingAmount)
}

func TestDraftRecalcAfterPaymentRederivesPartial(t *testing.T) {
	dist := &stubDistance{km: 100}
	d := advanceToPayment(t, dist)

	// fully covers the 1770 total, so no next payment date is needed
	payment := models.Payment{
		Amount:        1770,
		PaymentType:   models.PaymentPartial,
		PaymentMode:   models.PaymentCash,
		TransactionID: "CASH-100001",
	}
	require.NoError(t, d.SetPayment(payment, "driver-1", []models.DriverOption{{ID: "driver-1"}}))

	// after the recalc a balance reappears; submitting without a next
	// payment date must fail before the creator is called
	dist.km = 1000
	_, err := d.RecalculateDistance(context.Background())
	require.NoError(t, err)
	require.NotNil(t, d.payment.RemainingAmount)
	assert.Equal(t, 15930.0, *d.payment.RemainingAmount)

	creator := &stubCreator{}
	_, err = d.Submit(context.Background(), creator)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "nextPaymentDate")
	assert.Zero(t, creator.calls)

	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	d.payment.NextPaymentDate = &future
	order, err := d.Submit(context.Background(), creator)
	require.NoError(t, err)
	assert.Equal(t, 15930.0, *order.Payment.RemainingAmount)
}

func TestDraftPaymentRequiresDriver(t *testing.T) {
	d := advanceToPayment(t, &stubDistance{km: 1400})

	payment := models.Payment{
		PaymentType:   models.PaymentComplete,
		PaymentMode:   models.PaymentUPI,
		TransactionID: "UPI-1",
	}
	err := d.SetPayment(payment, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "driverId")

	err = d.SetPayment(payment, "driver-9", []models.DriverOption{{ID: "driver-1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestDraftSubmitWithoutDriverSkipsCreator(t *testing.T) {
	d := advanceToPayment(t, &stubDistance{km: 1400})

	creator := &stubCreator{}
	_, err := d.Submit(context.Background(), creator)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Zero(t, creator.calls, "creator must not be called for an invalid draft")
}

func TestDraftSubmitFailurePreservesState(t *testing.T) {
	d := advanceToPayment(t, &stubDistance{km: 1400})
	payment := models.Payment{
		PaymentType:   models.PaymentComplete,
		PaymentMode:   models.PaymentUPI,
		TransactionID: "UPI-1",
	}
	require.NoError(t, d.SetPayment(payment, "driver-1", []models.DriverOption{{ID: "driver-1"}}))

	creator := &stubCreator{err: errors.New("order service down")}
	_, err := d.Submit(context.Background(), creator)
	require.Error(t, err)
	assert.False(t, IsValidation(err))
	assert.NotEqual(t, StepCompleted, d.Step())

	// nothing was lost; a plain retry succeeds
	creator.err = nil
	order, err := d.Submit(context.Background(), creator)
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, 2, creator.calls)
}

func TestDraftSubmitDetectsRemovedAddress(t *testing.T) {
	d := advanceToPayment(t, &stubDistance{km: 1400})
	payment := models.Payment{
		PaymentType:   models.PaymentComplete,
		PaymentMode:   models.PaymentUPI,
		TransactionID: "UPI-1",
	}
	require.NoError(t, d.SetPayment(payment, "driver-1", []models.DriverOption{{ID: "driver-1"}}))

	// the stored address disappears between selection and submit
	d.client.Addresses = nil

	creator := &stubCreator{}
	_, err := d.Submit(context.Background(), creator)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "sourceAddressId")
	assert.Zero(t, creator.calls)
}

func TestDraftReset(t *testing.T) {
	d := advanceToPayment(t, &stubDistance{km: 1400})
	d.Reset()
	assert.Equal(t, StepClient, d.Step())
	assert.Nil(t, d.Client())
	assert.Equal(t, 0.0, d.Distance())
}
