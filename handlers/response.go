package handlers

import (
	"encoding/json"
	"net/http"

	"fleetlink/orderflow"
)

// ApiResponse is the JSON envelope every API endpoint responds with.
type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps validation failures to 400 with field details and
// everything else to a retryable 500.
func writeError(w http.ResponseWriter, err error) {
	if orderflow.IsValidation(err) {
		resp := ApiResponse{Success: false, Message: "Validation failed"}
		switch e := err.(type) {
		case orderflow.ValidationErrors:
			resp.Errors = e
		case orderflow.ValidationError:
			resp.Errors = orderflow.ValidationErrors{e}
		}
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	writeJSON(w, http.StatusInternalServerError, ApiResponse{
		Success: false,
		Message: "Request failed, please retry: " + err.Error(),
	})
}
