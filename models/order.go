package models

import "time"

type OrderStatus string

const (
	OrderNew       OrderStatus = "NEW"
	OrderInTransit OrderStatus = "IN_TRANSIT"
	OrderDelivered OrderStatus = "DELIVERED"
)

type TransportSize string

const (
	SizeSmall  TransportSize = "SMALL"
	SizeMedium TransportSize = "MEDIUM"
	SizeLarge  TransportSize = "LARGE"
)

type PaymentMode string

const (
	PaymentUPI    PaymentMode = "UPI"
	PaymentCheque PaymentMode = "CHEQUE"
	PaymentCash   PaymentMode = "CASH"
)

type PaymentType string

const (
	PaymentComplete PaymentType = "COMPLETE"
	PaymentPartial  PaymentType = "PARTIAL"
)

// OrderTransport is the shipment leg of an order: source to destination with
// an assigned truck. Status changes after creation go through the order
// status update call only.
type OrderTransport struct {
	ID          string        `json:"id,omitempty" bson:"id,omitempty" db:"id"`
	Status      OrderStatus   `json:"status" bson:"status" db:"status"`
	Source      Address       `json:"source" bson:"source"`
	Destination Address       `json:"destination" bson:"destination"`
	Size        TransportSize `json:"size" bson:"size" db:"size"`
	TruckID     *string       `json:"truckId,omitempty" bson:"truck_id,omitempty" db:"truck_id"`
	Distance    *float64      `json:"distance,omitempty" bson:"distance,omitempty" db:"distance"`
}

// Billing is derived, never edited directly: the three amount fields are
// always recomputed from distance, ratePerKm and gstRate.
type Billing struct {
	Distance    float64 `json:"distance" bson:"distance" db:"distance"`
	RatePerKm   float64 `json:"ratePerKm" bson:"rate_per_km" db:"rate_per_km"`
	Subtotal    float64 `json:"subtotal" bson:"subtotal" db:"subtotal"`
	GSTRate     float64 `json:"gstRate" bson:"gst_rate" db:"gst_rate"`
	GSTAmount   float64 `json:"gstAmount" bson:"gst_amount" db:"gst_amount"`
	TotalAmount float64 `json:"totalAmount" bson:"total_amount" db:"total_amount"`
}

type Payment struct {
	ID              string      `json:"id,omitempty" bson:"id,omitempty" db:"id"`
	Amount          float64     `json:"amount" bson:"amount" db:"amount"`
	PaymentType     PaymentType `json:"paymentType" bson:"payment_type" db:"payment_type"`
	PaymentMode     PaymentMode `json:"paymentMode" bson:"payment_mode" db:"payment_mode"`
	TransactionID   string      `json:"transactionId" bson:"transaction_id" db:"transaction_id"`
	NextPaymentDate *string     `json:"nextPaymentDate,omitempty" bson:"next_payment_date,omitempty" db:"next_payment_date"`
	RemainingAmount *float64    `json:"remainingAmount,omitempty" bson:"remaining_amount,omitempty" db:"remaining_amount"`
}

type Order struct {
	ID        string         `json:"id" bson:"_id,omitempty" db:"id"`
	Client    Client         `json:"client" bson:"client"`
	Transport OrderTransport `json:"transport" bson:"transport"`
	Billing   Billing        `json:"billing" bson:"billing"`
	Payment   Payment        `json:"payment" bson:"payment"`
	DriverID  string         `json:"driverId" bson:"driver_id" db:"driver_id"`
	CreatedAt time.Time      `json:"createdAt" bson:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updated_at" db:"updated_at"`
}
