package handlers

import (
	"net/http"

	"fleetlink/services"
)

type PaymentHandler struct{}

// NewCashTransaction handler. Cash payments have no gateway reference, so the
// server mints the transaction id the order records.
func (h *PaymentHandler) NewCashTransaction(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Cash transaction created",
		Data: map[string]string{
			"transactionId": services.NewCashTransactionID(),
		},
	})
}
