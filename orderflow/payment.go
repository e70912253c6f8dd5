package orderflow

import (
	"time"

	"fleetlink/models"
)

const dateLayout = "2006-01-02"

// ApplyPaymentType enforces the payment-type rules on the record in place.
// COMPLETE pins the amount to the billing total, zeroes the remaining amount
// and clears the next payment date. PARTIAL leaves the amount as entered and
// derives the remaining balance, floored at zero.
func ApplyPaymentType(p *models.Payment, totalAmount float64) {
	switch p.PaymentType {
	case models.PaymentPartial:
		remaining := totalAmount - p.Amount
		if remaining < 0 {
			remaining = 0
		}
		p.RemainingAmount = &remaining
	default:
		zero := 0.0
		p.Amount = totalAmount
		p.RemainingAmount = &zero
		p.NextPaymentDate = nil
	}
}

// ValidatePayment checks a payment record against the billing total. now is
// injected so the today-or-future rule for the next payment date is testable.
func ValidatePayment(p models.Payment, totalAmount float64, now time.Time) ValidationErrors {
	var errs ValidationErrors

	switch p.PaymentType {
	case models.PaymentComplete, models.PaymentPartial:
	default:
		errs = append(errs, ValidationError{Field: "paymentType", Message: "Payment type must be COMPLETE or PARTIAL"})
	}
	switch p.PaymentMode {
	case models.PaymentUPI, models.PaymentCheque, models.PaymentCash:
	default:
		errs = append(errs, ValidationError{Field: "paymentMode", Message: "Payment mode must be UPI, CHEQUE or CASH"})
	}

	if p.Amount < 1 {
		errs = append(errs, ValidationError{Field: "amount", Message: "Amount must be at least 1"})
	}
	if p.TransactionID == "" {
		errs = append(errs, ValidationError{Field: "transactionId", Message: "Transaction ID is required"})
	}

	if p.PaymentType == models.PaymentComplete {
		if p.Amount != totalAmount {
			errs = append(errs, ValidationError{Field: "amount", Message: "Complete payment must equal the total amount"})
		}
		if p.RemainingAmount != nil && *p.RemainingAmount != 0 {
			errs = append(errs, ValidationError{Field: "remainingAmount", Message: "Remaining amount must be 0 for complete payment"})
		}
	}

	if p.PaymentType == models.PaymentPartial {
		remaining := totalAmount - p.Amount
		if remaining < 0 {
			remaining = 0
		}
		if p.RemainingAmount == nil || *p.RemainingAmount != remaining {
			errs = append(errs, ValidationError{Field: "remainingAmount", Message: "Remaining amount must equal total minus amount paid"})
		}
		if remaining > 0 {
			if p.NextPaymentDate == nil || *p.NextPaymentDate == "" {
				errs = append(errs, ValidationError{Field: "nextPaymentDate", Message: "Next payment date is required for partial payment"})
			} else if d, err := time.ParseInLocation(dateLayout, *p.NextPaymentDate, now.Location()); err != nil {
				errs = append(errs, ValidationError{Field: "nextPaymentDate", Message: "Next payment date must be YYYY-MM-DD"})
			} else if today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()); d.Before(today) {
				errs = append(errs, ValidationError{Field: "nextPaymentDate", Message: "Next payment date cannot be in the past"})
			}
		}
	}

	return errs
}
