package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fleetlink/models"
	"fleetlink/orderflow"
	"fleetlink/repository"
)

type OrderHandler struct {
	Repo  repository.OrderRepository
	Fleet repository.FleetRepository
}

// createOrderRequest carries the billing inputs as pointers: a client that
// sends gstRate 0 means a zero-GST order, only an absent field falls back to
// the default rate.
type createOrderRequest struct {
	Client    models.Client         `json:"client"`
	Transport models.OrderTransport `json:"transport"`
	Billing   struct {
		RatePerKm *float64 `json:"ratePerKm"`
		GSTRate   *float64 `json:"gstRate"`
	} `json:"billing"`
	Payment  models.Payment `json:"payment"`
	DriverID string         `json:"driverId"`
}

// CreateOrder handler. The payload carries the fully assembled order; billing
// amounts are recomputed server side so a stale or tampered total never lands
// in the store.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	order := models.Order{
		Client:    req.Client,
		Transport: req.Transport,
		Payment:   req.Payment,
		DriverID:  req.DriverID,
	}
	if order.Transport.Status == "" {
		order.Transport.Status = models.OrderNew
	}

	var errs orderflow.ValidationErrors
	errs = append(errs, orderflow.ValidateClient(order.Client)...)
	errs = append(errs, orderflow.ValidateTransport(order.Transport)...)

	distance := 0.0
	if order.Transport.Distance != nil {
		distance = *order.Transport.Distance
	}
	ratePerKm := orderflow.DefaultRatePerKm
	if req.Billing.RatePerKm != nil {
		ratePerKm = *req.Billing.RatePerKm
	}
	gstRate := orderflow.DefaultGSTRate
	if req.Billing.GSTRate != nil {
		gstRate = *req.Billing.GSTRate
	}
	order.Billing = orderflow.ComputeBilling(distance, ratePerKm, gstRate)
	errs = append(errs, orderflow.ValidateBilling(order.Billing)...)

	orderflow.ApplyPaymentType(&order.Payment, order.Billing.TotalAmount)
	errs = append(errs, orderflow.ValidatePayment(order.Payment, order.Billing.TotalAmount, time.Now())...)

	if order.DriverID == "" {
		errs = append(errs, orderflow.ValidationError{Field: "driverId", Message: "A driver must be assigned to the order"})
	} else if h.Fleet != nil {
		driver, err := h.Fleet.GetDriverByID(order.DriverID)
		if err != nil || driver.Status != models.DriverAvailable {
			errs = append(errs, orderflow.ValidationError{Field: "driverId", Message: "Selected driver is not available"})
		}
	}

	if len(errs) > 0 {
		writeError(w, errs)
		return
	}

	if err := h.Repo.CreateOrder(r.Context(), &order); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// GetOrders handler
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Repo.GetOrders()
	if err != nil {
		writeError(w, err)
		return
	}
	if orders == nil {
		orders = []*models.Order{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Orders fetched successfully",
		Data:    orders,
	})
}

// GetOrderByID handler
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request, id string) {
	order, err := h.Repo.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{
				Success: false,
				Message: "Order not found",
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Order fetched successfully",
		Data:    order,
	})
}

// UpdateOrderStatus handler
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	switch body.Status {
	case models.OrderNew, models.OrderInTransit, models.OrderDelivered:
	default:
		writeError(w, orderflow.ValidationError{Field: "status", Message: "Status must be NEW, IN_TRANSIT or DELIVERED"})
		return
	}

	order, err := h.Repo.UpdateOrderStatus(id, body.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{
				Success: false,
				Message: "Order not found",
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Order status updated successfully",
		Data:    order,
	})
}
