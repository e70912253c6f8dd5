package orderflow

import (
	"fmt"
	"regexp"

	"fleetlink/models"
)

var (
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
	gstinRe  = regexp.MustCompile(`^[0-9A-Z]{15}$`)
	emailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateAddress checks the field rules the address forms enforce. prefix
// qualifies the field names in the reported errors ("source.city" etc.).
func ValidateAddress(prefix string, a models.Address) ValidationErrors {
	var errs ValidationErrors
	field := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}

	if len(a.AddressLine1) < 3 {
		errs = append(errs, ValidationError{Field: field("addressLine1"), Message: "Address line 1 is required"})
	}
	if len(a.City) < 2 {
		errs = append(errs, ValidationError{Field: field("city"), Message: "City is required"})
	}
	if len(a.State) < 2 {
		errs = append(errs, ValidationError{Field: field("state"), Message: "State is required"})
	}
	if len(a.PinCode) < 6 {
		errs = append(errs, ValidationError{Field: field("pinCode"), Message: "PIN code must be at least 6 characters"})
	}
	if len(a.PinCode) > 10 {
		errs = append(errs, ValidationError{Field: field("pinCode"), Message: "PIN code must not exceed 10 characters"})
	}
	if len(a.Country) < 2 {
		errs = append(errs, ValidationError{Field: field("country"), Message: "Country is required"})
	}
	switch a.AddressType {
	case models.AddressOffice, models.AddressBilling, models.AddressTransport, models.AddressDriver:
	default:
		errs = append(errs, ValidationError{Field: field("addressType"), Message: "Invalid address type"})
	}
	return errs
}

// ValidateClient checks the client form rules, including the at-least-one
// address invariant.
func ValidateClient(c models.Client) ValidationErrors {
	var errs ValidationErrors

	if len(c.CompanyName) < 2 {
		errs = append(errs, ValidationError{Field: "companyName", Message: "Company name must be at least 2 characters"})
	}
	if !emailRe.MatchString(c.ContactEmail) {
		errs = append(errs, ValidationError{Field: "contactEmail", Message: "Invalid email address"})
	}
	if len(c.ContactPersonName) < 2 {
		errs = append(errs, ValidationError{Field: "contactPersonName", Message: "Contact name must be at least 2 characters"})
	}
	if len(c.ContactNumber) < 10 || len(c.ContactNumber) > 15 || !digitsRe.MatchString(c.ContactNumber) {
		errs = append(errs, ValidationError{Field: "contactNumber", Message: "Phone number must be 10 to 15 digits"})
	}
	if c.AlternateContact != nil && *c.AlternateContact != "" {
		if len(*c.AlternateContact) > 15 || !digitsRe.MatchString(*c.AlternateContact) {
			errs = append(errs, ValidationError{Field: "alternateContact", Message: "Phone number must contain only digits"})
		}
	}
	if c.GSTNumber != nil && *c.GSTNumber != "" && !gstinRe.MatchString(*c.GSTNumber) {
		errs = append(errs, ValidationError{Field: "gstNumber", Message: "GST number must be 15 characters alphanumeric"})
	}
	if len(c.Addresses) == 0 {
		errs = append(errs, ValidationError{Field: "addresses", Message: "At least one address is required"})
	}
	for i := range c.Addresses {
		errs = append(errs, ValidateAddress(fmt.Sprintf("addresses[%d]", i), c.Addresses[i])...)
	}
	return errs
}

// ValidateTransport checks the transport step's own fields; address
// resolution is handled by the draft.
func ValidateTransport(t models.OrderTransport) ValidationErrors {
	var errs ValidationErrors
	switch t.Status {
	case models.OrderNew, models.OrderInTransit, models.OrderDelivered:
	default:
		errs = append(errs, ValidationError{Field: "status", Message: "Invalid order status"})
	}
	switch t.Size {
	case models.SizeSmall, models.SizeMedium, models.SizeLarge:
	default:
		errs = append(errs, ValidationError{Field: "size", Message: "Invalid transport size"})
	}
	if t.Distance != nil && *t.Distance < 0 {
		errs = append(errs, ValidationError{Field: "distance", Message: "Distance cannot be negative"})
	}
	return errs
}
