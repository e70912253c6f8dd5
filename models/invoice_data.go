package models

// InvoicePDFData feeds the order invoice HTML template.
type InvoicePDFData struct {
	Order       *Order
	Date        string // formatted order date
	Route       string // "Mumbai -> Delhi"
	PaidInWords string
	Balance     float64
	CopyTitle   string
}
