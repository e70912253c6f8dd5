package orderflow

import "fleetlink/models"

// Default values the billing form opens with.
const (
	DefaultRatePerKm = 15.0
	DefaultGSTRate   = 18.0
)

// ComputeBilling derives subtotal, GST amount and total from the three input
// fields. Pure and deterministic; no rounding is applied here, display layers
// round to two decimals.
func ComputeBilling(distance, ratePerKm, gstRate float64) models.Billing {
	subtotal := distance * ratePerKm
	gstAmount := subtotal * gstRate / 100
	return models.Billing{
		Distance:    distance,
		RatePerKm:   ratePerKm,
		Subtotal:    subtotal,
		GSTRate:     gstRate,
		GSTAmount:   gstAmount,
		TotalAmount: subtotal + gstAmount,
	}
}

// ValidateBilling checks the submission constraints on the billing inputs.
func ValidateBilling(b models.Billing) ValidationErrors {
	var errs ValidationErrors
	if b.Distance < 1 {
		errs = append(errs, ValidationError{Field: "distance", Message: "Distance must be at least 1 km"})
	}
	if b.RatePerKm < 1 {
		errs = append(errs, ValidationError{Field: "ratePerKm", Message: "Rate must be at least 1"})
	}
	if b.GSTRate < 0 {
		errs = append(errs, ValidationError{Field: "gstRate", Message: "GST rate cannot be negative"})
	}
	if b.GSTRate > 100 {
		errs = append(errs, ValidationError{Field: "gstRate", Message: "GST rate cannot exceed 100%"})
	}
	return errs
}
