package routes

import (
	"net/http"
	"strings"

	"fleetlink/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handle(pattern string, h http.HandlerFunc) {
	http.Handle(pattern, withCORS(http.HandlerFunc(handlers.RecoverWrapper(h))))
}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	clientHandler *handlers.ClientHandler,
	orderHandler *handlers.OrderHandler,
	fleetHandler *handlers.FleetHandler,
	distanceHandler *handlers.DistanceHandler,
	paymentHandler *handlers.PaymentHandler,
	uploadHandler *handlers.UploadHandler,
	invoiceHandler *handlers.InvoiceHandler,
) {
	// User routes
	handle("/api/signup", userHandler.Signup)
	handle("/api/login", userHandler.Login)

	// Client routes
	handle("/api/clients", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			clientHandler.CreateClient(w, r)
		case http.MethodGet:
			clientHandler.GetClients(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/api/clients/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/clients/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			clientHandler.GetClientByID(w, r, id)
		case http.MethodPut:
			clientHandler.UpdateClient(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Order routes
	handle("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			orderHandler.CreateOrder(w, r)
		case http.MethodGet:
			orderHandler.GetOrders(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/api/orders/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/orders/")
		if rest == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		// GET /api/orders/{id}/invoice
		if strings.HasSuffix(rest, "/invoice") {
			id := strings.TrimSuffix(rest, "/invoice")
			if id == "" || r.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			invoiceHandler.OrderInvoice(w, r, id)
			return
		}

		switch r.Method {
		case http.MethodGet:
			orderHandler.GetOrderByID(w, r, rest)
		case http.MethodPatch:
			orderHandler.UpdateOrderStatus(w, r, rest)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Fleet routes
	handle("/api/trucks", fleetHandler.GetTrucks)
	handle("/api/trucks/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/trucks/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		fleetHandler.GetVehicleByID(w, r, id)
	})
	handle("/api/vehicles", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			fleetHandler.CreateVehicle(w, r)
		case http.MethodGet:
			fleetHandler.GetVehicles(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/api/vehicles/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/vehicles/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		fleetHandler.UpdateVehicle(w, r, id)
	})
	handle("/api/drivers", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			fleetHandler.CreateDriver(w, r)
		case http.MethodGet:
			fleetHandler.GetDrivers(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/api/drivers/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/drivers/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		fleetHandler.UpdateDriver(w, r, id)
	})
	handle("/api/trips", fleetHandler.GetTrips)

	// Distance lookup
	handle("/api/distance", distanceHandler.GetDistance)

	// Payments
	handle("/api/payments/cash/new", paymentHandler.NewCashTransaction)

	// Uploads
	handle("/api/uploads/images/trucks", uploadHandler.UploadTruckImage)
	handle("/api/uploads/images/drivers", uploadHandler.UploadDriverImage)
}
