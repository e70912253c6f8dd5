package orderflow

import (
	"context"
	"time"

	"fleetlink/models"
)

// Step names the wizard stages in order.
type Step string

const (
	StepClient    Step = "client"
	StepTransport Step = "transport"
	StepBilling   Step = "billing"
	StepPayment   Step = "payment"
	StepCompleted Step = "completed"
)

// DistanceService resolves the road distance in km between two addresses.
type DistanceService interface {
	Distance(ctx context.Context, from, to models.Address) (float64, error)
}

// OrderCreator persists an assembled order, assigning id and timestamps.
// Called exactly once per successful flow.
type OrderCreator interface {
	CreateOrder(ctx context.Context, order *models.Order) error
}

// TransportInput is the payload of the transport step. Source and destination
// each either reference one of the client's stored addresses by id or carry a
// freshly entered address.
type TransportInput struct {
	Status                 models.OrderStatus
	Size                   models.TransportSize
	UseExistingSource      bool
	SourceAddressID        string
	Source                 *models.Address
	UseExistingDestination bool
	DestinationAddressID   string
	Destination            *models.Address
	TruckID                *string
}

// Draft accumulates wizard state for one order. It is owned by a single
// caller for the duration of the flow; once Submit succeeds, ownership of the
// created order passes to the repository and the draft only holds a read-only
// copy. No step failure discards previously entered data.
type Draft struct {
	step      Step
	client    *models.Client
	transport *models.OrderTransport
	billing   *models.Billing
	payment   *models.Payment
	driverID  string

	// resolution bookkeeping for the missing-reference check at submit
	sourceFromExisting      bool
	sourceAddressID         string
	destinationFromExisting bool
	destinationAddressID    string

	distance DistanceService
	order    *models.Order
	now      func() time.Time
}

func NewDraft(distance DistanceService) *Draft {
	return &Draft{
		step:     StepClient,
		distance: distance,
		now:      time.Now,
	}
}

func (d *Draft) Step() Step              { return d.step }
func (d *Draft) Client() *models.Client  { return d.client }
func (d *Draft) Billing() models.Billing { return valueOrZero(d.billing) }
func (d *Draft) Order() *models.Order    { return d.order }

// Distance reports the last resolved distance, 0 before the first successful
// lookup.
func (d *Draft) Distance() float64 {
	if d.transport == nil || d.transport.Distance == nil {
		return 0
	}
	return *d.transport.Distance
}

func valueOrZero(b *models.Billing) models.Billing {
	if b == nil {
		return models.Billing{}
	}
	return *b
}

// SelectClient completes the client step with an existing or freshly created
// client record.
func (d *Draft) SelectClient(c models.Client) error {
	if errs := ValidateClient(c); len(errs) > 0 {
		return errs
	}
	d.client = &c
	d.step = StepTransport
	return nil
}

// SetTransport resolves the source and destination addresses and completes
// the transport step. A dangling existing-address id is a validation error,
// never a silent substitution.
func (d *Draft) SetTransport(in TransportInput) error {
	if d.client == nil {
		return ValidationError{Field: "client", Message: "Select a client first"}
	}

	var errs ValidationErrors

	source, srcErrs := d.resolveAddress("source", in.UseExistingSource, in.SourceAddressID, in.Source)
	errs = append(errs, srcErrs...)
	destination, dstErrs := d.resolveAddress("destination", in.UseExistingDestination, in.DestinationAddressID, in.Destination)
	errs = append(errs, dstErrs...)

	t := models.OrderTransport{
		Status:  in.Status,
		Size:    in.Size,
		TruckID: in.TruckID,
	}
	if source != nil {
		t.Source = *source
	}
	if destination != nil {
		t.Destination = *destination
	}
	errs = append(errs, ValidateTransport(t)...)
	if len(errs) > 0 {
		return errs
	}

	// Preserve an already-resolved distance across re-entry of this step.
	if d.transport != nil {
		t.Distance = d.transport.Distance
	}
	d.transport = &t
	d.sourceFromExisting = in.UseExistingSource
	d.sourceAddressID = in.SourceAddressID
	d.destinationFromExisting = in.UseExistingDestination
	d.destinationAddressID = in.DestinationAddressID
	d.step = StepBilling
	return nil
}

func (d *Draft) resolveAddress(side string, useExisting bool, id string, entered *models.Address) (*models.Address, ValidationErrors) {
	if useExisting {
		if id == "" {
			return nil, ValidationErrors{{Field: side + "AddressId", Message: "Select an address"}}
		}
		addr, ok := d.client.AddressByID(id)
		if !ok {
			return nil, ValidationErrors{{Field: side + "AddressId", Message: "Selected address no longer exists for this client"}}
		}
		return addr, nil
	}
	if entered == nil {
		return nil, ValidationErrors{{Field: side, Message: "Address is required"}}
	}
	if errs := ValidateAddress(side, *entered); len(errs) > 0 {
		return nil, errs
	}
	return entered, nil
}

// RecalculateDistance asks the distance collaborator for the current route.
// On failure the previously resolved value (0 on first attempt) is kept and
// the error is returned for a retryable, non-fatal message. Duplicate calls
// are allowed; the last response to land wins.
func (d *Draft) RecalculateDistance(ctx context.Context) (float64, error) {
	if d.transport == nil {
		return 0, ValidationError{Field: "transport", Message: "Complete the transport step first"}
	}
	km, err := d.distance.Distance(ctx, d.transport.Source, d.transport.Destination)
	if err != nil {
		return d.Distance(), err
	}
	d.transport.Distance = &km
	if d.billing != nil {
		// Keep the derived fields consistent with the new distance.
		b := ComputeBilling(km, d.billing.RatePerKm, d.billing.GSTRate)
		d.billing = &b
		if d.payment != nil {
			// A payment entered against the old total is re-derived: COMPLETE
			// follows the total, PARTIAL gets a fresh remaining balance.
			ApplyPaymentType(d.payment, b.TotalAmount)
		}
	}
	return km, nil
}

// SetBilling recomputes the derived billing fields from the resolved distance
// and the entered rate and GST and completes the billing step.
func (d *Draft) SetBilling(ratePerKm, gstRate float64) (models.Billing, error) {
	if d.transport == nil {
		return models.Billing{}, ValidationError{Field: "transport", Message: "Complete the transport step first"}
	}
	b := ComputeBilling(d.Distance(), ratePerKm, gstRate)
	if errs := ValidateBilling(b); len(errs) > 0 {
		return b, errs
	}
	d.billing = &b
	d.step = StepPayment
	return b, nil
}

// SetPayment completes the payment step. The chosen driver must come from the
// currently available set supplied by the caller.
func (d *Draft) SetPayment(p models.Payment, driverID string, available []models.DriverOption) error {
	if d.billing == nil {
		return ValidationError{Field: "billing", Message: "Complete the billing step first"}
	}

	ApplyPaymentType(&p, d.billing.TotalAmount)
	errs := ValidatePayment(p, d.billing.TotalAmount, d.now())
	if driverID == "" {
		errs = append(errs, ValidationError{Field: "driverId", Message: "Driver is required"})
	} else if !driverListed(driverID, available) {
		errs = append(errs, ValidationError{Field: "driverId", Message: "Selected driver is not available"})
	}
	if len(errs) > 0 {
		return errs
	}

	d.payment = &p
	d.driverID = driverID
	return nil
}

func driverListed(id string, available []models.DriverOption) bool {
	for _, opt := range available {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// Submit validates the assembled draft and hands it to the order creator.
// All validation, including the driver check, runs before the creator is
// called. A creator failure leaves the draft intact so the caller can retry
// without re-entering anything.
func (d *Draft) Submit(ctx context.Context, creator OrderCreator) (*models.Order, error) {
	if errs := d.validateAssembly(); len(errs) > 0 {
		return nil, errs
	}

	order := &models.Order{
		Client:    *d.client,
		Transport: *d.transport,
		Billing:   *d.billing,
		Payment:   *d.payment,
		DriverID:  d.driverID,
	}
	if err := creator.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	d.order = order
	d.step = StepCompleted
	return order, nil
}

func (d *Draft) validateAssembly() ValidationErrors {
	var errs ValidationErrors
	if d.client == nil {
		errs = append(errs, ValidationError{Field: "client", Message: "Client is required"})
	}
	if d.transport == nil {
		errs = append(errs, ValidationError{Field: "transport", Message: "Transport details are required"})
	}
	if d.billing == nil {
		errs = append(errs, ValidationError{Field: "billing", Message: "Billing details are required"})
	}
	if d.payment == nil {
		errs = append(errs, ValidationError{Field: "payment", Message: "Payment details are required"})
	}
	if d.driverID == "" {
		errs = append(errs, ValidationError{Field: "driverId", Message: "Driver is required"})
	}
	if len(errs) > 0 {
		return errs
	}

	// The payment must still hold against the current billing total; the
	// distance (and with it the total) may have changed after the payment
	// step.
	errs = append(errs, ValidatePayment(*d.payment, d.billing.TotalAmount, d.now())...)

	// The selected existing addresses must still be on the client record.
	if d.sourceFromExisting {
		if _, ok := d.client.AddressByID(d.sourceAddressID); !ok {
			errs = append(errs, ValidationError{Field: "sourceAddressId", Message: "Selected source address no longer exists for this client"})
		}
	}
	if d.destinationFromExisting {
		if _, ok := d.client.AddressByID(d.destinationAddressID); !ok {
			errs = append(errs, ValidationError{Field: "destinationAddressId", Message: "Selected destination address no longer exists for this client"})
		}
	}
	return errs
}

// Reset discards the draft. Partial state is never persisted.
func (d *Draft) Reset() {
	*d = Draft{step: StepClient, distance: d.distance, now: d.now}
}
