package handlers

import (
	"net/http"

	"fleetlink/models"
	"fleetlink/orderflow"
	"fleetlink/services"
)

type DistanceHandler struct {
	Service services.DistanceService
}

// GetDistance handler. Looks up the road distance between two pin codes:
// GET /api/distance?fromPinCode=400001&toPinCode=110001&country=India
func (h *DistanceHandler) GetDistance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fromPin := q.Get("fromPinCode")
	toPin := q.Get("toPinCode")
	country := q.Get("country")
	if country == "" {
		country = "India"
	}

	var errs orderflow.ValidationErrors
	if fromPin == "" {
		errs = append(errs, orderflow.ValidationError{Field: "fromPinCode", Message: "fromPinCode is required"})
	}
	if toPin == "" {
		errs = append(errs, orderflow.ValidationError{Field: "toPinCode", Message: "toPinCode is required"})
	}
	if len(errs) > 0 {
		writeError(w, errs)
		return
	}

	from := models.Address{PinCode: fromPin, Country: country}
	to := models.Address{PinCode: toPin, Country: country}

	km, err := h.Service.Distance(r.Context(), from, to)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{
			Success: false,
			Message: "Failed to calculate distance: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Distance calculated successfully",
		Data: map[string]interface{}{
			"distance": km,
			"unit":     "km",
		},
	})
}
