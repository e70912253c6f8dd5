package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetlink/models"
	"fleetlink/repository"
	"fleetlink/services"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) ApiResponse {
	t.Helper()
	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func validOrderPayload() map[string]interface{} {
	nextDate := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	return map[string]interface{}{
		"client": map[string]interface{}{
			"companyName":       "ABC Logistics",
			"contactEmail":      "ops@abclogistics.in",
			"contactPersonName": "Ramesh Patel",
			"contactNumber":     "9876543210",
			"addresses": []map[string]interface{}{
				{
					"addressLine1": "12 Marine Drive",
					"city":         "Mumbai",
					"state":        "Maharashtra",
					"pinCode":      "400001",
					"country":      "India",
					"addressType":  "OFFICE",
				},
			},
		},
		"transport": map[string]interface{}{
			"status": "NEW",
			"size":   "MEDIUM",
			"source": map[string]interface{}{
				"addressLine1": "12 Marine Drive",
				"city":         "Mumbai",
				"state":        "Maharashtra",
				"pinCode":      "400001",
				"country":      "India",
				"addressType":  "TRANSPORT",
			},
			"destination": map[string]interface{}{
				"addressLine1": "5 Connaught Place",
				"city":         "Delhi",
				"state":        "Delhi",
				"pinCode":      "110001",
				"country":      "India",
				"addressType":  "TRANSPORT",
			},
			"distance": 1400,
		},
		"billing": map[string]interface{}{
			"ratePerKm": 15,
			"gstRate":   18,
		},
		"payment": map[string]interface{}{
			"amount":          5000,
			"paymentType":     "PARTIAL",
			"paymentMode":     "UPI",
			"transactionId":   "UPI-998877",
			"nextPaymentDate": nextDate,
		},
		"driverId": "driver-1",
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestCreateOrderRecomputesBilling(t *testing.T) {
	h := &OrderHandler{Repo: repository.NewMemoryOrderRepo(), Fleet: repository.NewMemoryFleetRepo()}

	payload := validOrderPayload()
	// A tampered total must not survive the create.
	payload["billing"].(map[string]interface{})["totalAmount"] = 1.0

	rec := postJSON(t, h.CreateOrder, "/api/orders", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var order models.Order
	require.NoError(t, json.Unmarshal(data, &order))

	assert.Equal(t, 21000.0, order.Billing.Subtotal)
	assert.Equal(t, 3780.0, order.Billing.GSTAmount)
	assert.Equal(t, 24780.0, order.Billing.TotalAmount)
	require.NotNil(t, order.Payment.RemainingAmount)
	assert.Equal(t, 19780.0, *order.Payment.RemainingAmount)
	assert.NotEmpty(t, order.ID)
}

func TestCreateOrderHonorsZeroGSTRate(t *testing.T) {
	h := &OrderHandler{Repo: repository.NewMemoryOrderRepo(), Fleet: repository.NewMemoryFleetRepo()}

	payload := validOrderPayload()
	payload["transport"].(map[string]interface{})["distance"] = 100
	payload["billing"] = map[string]interface{}{
		"ratePerKm": 10,
		"gstRate":   0,
	}
	payload["payment"] = map[string]interface{}{
		"amount":        1000,
		"paymentType":   "COMPLETE",
		"paymentMode":   "UPI",
		"transactionId": "UPI-112233",
	}

	rec := postJSON(t, h.CreateOrder, "/api/orders", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	data, err := json.Marshal(decodeResponse(t, rec).Data)
	require.NoError(t, err)
	var order models.Order
	require.NoError(t, json.Unmarshal(data, &order))

	// gstRate 0 is a valid input, not a request for the default rate
	assert.Equal(t, 0.0, order.Billing.GSTRate)
	assert.Equal(t, 0.0, order.Billing.GSTAmount)
	assert.Equal(t, 1000.0, order.Billing.TotalAmount)
}

func TestCreateOrderDefaultsMissingBillingInputs(t *testing.T) {
	h := &OrderHandler{Repo: repository.NewMemoryOrderRepo(), Fleet: repository.NewMemoryFleetRepo()}

	payload := validOrderPayload()
	delete(payload, "billing")
	payload["payment"] = map[string]interface{}{
		"amount":        24780,
		"paymentType":   "COMPLETE",
		"paymentMode":   "UPI",
		"transactionId": "UPI-445566",
	}

	rec := postJSON(t, h.CreateOrder, "/api/orders", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	data, err := json.Marshal(decodeResponse(t, rec).Data)
	require.NoError(t, err)
	var order models.Order
	require.NoError(t, json.Unmarshal(data, &order))

	assert.Equal(t, 15.0, order.Billing.RatePerKm)
	assert.Equal(t, 18.0, order.Billing.GSTRate)
	assert.Equal(t, 24780.0, order.Billing.TotalAmount)
}

func TestCreateOrderRequiresDriver(t *testing.T) {
	h := &OrderHandler{Repo: repository.NewMemoryOrderRepo(), Fleet: repository.NewMemoryFleetRepo()}

	payload := validOrderPayload()
	payload["driverId"] = ""

	rec := postJSON(t, h.CreateOrder, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, rec.Body.String(), "driverId")
}

func TestCreateOrderRejectsUnknownDriver(t *testing.T) {
	h := &OrderHandler{Repo: repository.NewMemoryOrderRepo(), Fleet: repository.NewMemoryFleetRepo()}

	payload := validOrderPayload()
	payload["driverId"] = "driver-999"

	rec := postJSON(t, h.CreateOrder, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not available")
}

func TestCreateOrderRejectsUnavailableDriver(t *testing.T) {
	h := &OrderHandler{Repo: repository.NewMemoryOrderRepo(), Fleet: repository.NewMemoryFleetRepo()}

	payload := validOrderPayload()
	payload["driverId"] = "driver-2" // seeded as ON_TRIP

	rec := postJSON(t, h.CreateOrder, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not available")
}

func TestUpdateOrderStatus(t *testing.T) {
	repo := repository.NewMemoryOrderRepo()
	h := &OrderHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/order-1", strings.NewReader(`{"status":"IN_TRANSIT"}`))
	rec := httptest.NewRecorder()
	h.UpdateOrderStatus(rec, req, "order-1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	order, err := repo.GetOrderByID("order-1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderInTransit, order.Transport.Status)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	h := &OrderHandler{Repo: repository.NewMemoryOrderRepo()}

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/order-1", strings.NewReader(`{"status":"LOST"}`))
	rec := httptest.NewRecorder()
	h.UpdateOrderStatus(rec, req, "order-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateClientValidation(t *testing.T) {
	h := &ClientHandler{Repo: repository.NewMemoryClientRepo()}

	rec := postJSON(t, h.CreateClient, "/api/clients", map[string]interface{}{
		"companyName":   "A",
		"contactEmail":  "not-an-email",
		"contactNumber": "12",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Errors)
}

func TestCreateAndFetchClient(t *testing.T) {
	repo := repository.NewMemoryClientRepo()
	h := &ClientHandler{Repo: repo}

	rec := postJSON(t, h.CreateClient, "/api/clients", validOrderPayload()["client"])
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	listRec := httptest.NewRecorder()
	h.GetClients(listRec, httptest.NewRequest(http.MethodGet, "/api/clients", nil))
	require.Equal(t, http.StatusOK, listRec.Code)
	assert.Contains(t, listRec.Body.String(), "ABC Logistics")
}

func TestGetTrucksFiltersBySize(t *testing.T) {
	h := &FleetHandler{Repo: repository.NewMemoryFleetRepo()}

	req := httptest.NewRequest(http.MethodGet, "/api/trucks?size=LARGE", nil)
	rec := httptest.NewRecorder()
	h.GetTrucks(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "truck-2")
	assert.NotContains(t, body, "truck-1")
	assert.NotContains(t, body, "truck-3") // in transit, never offered
}

func TestGetDriversAvailableFilter(t *testing.T) {
	h := &FleetHandler{Repo: repository.NewMemoryFleetRepo()}

	req := httptest.NewRequest(http.MethodGet, "/api/drivers?status=AVAILABLE", nil)
	rec := httptest.NewRecorder()
	h.GetDrivers(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "driver-1")
	assert.Contains(t, body, "driver-3")
	assert.NotContains(t, body, "driver-2")
}

func TestDistanceEndpoint(t *testing.T) {
	h := &DistanceHandler{Service: services.NewStaticDistanceService()}

	req := httptest.NewRequest(http.MethodGet, "/api/distance?fromPinCode=400001&toPinCode=110001&country=India", nil)
	rec := httptest.NewRecorder()
	h.GetDistance(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, 1400.0, data["distance"])
}

func TestDistanceEndpointRequiresPins(t *testing.T) {
	h := &DistanceHandler{Service: services.NewStaticDistanceService()}

	req := httptest.NewRequest(http.MethodGet, "/api/distance?fromPinCode=400001", nil)
	rec := httptest.NewRecorder()
	h.GetDistance(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCashTransactionEndpoint(t *testing.T) {
	h := &PaymentHandler{}

	rec := httptest.NewRecorder()
	h.NewCashTransaction(rec, httptest.NewRequest(http.MethodPost, "/api/payments/cash/new", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]interface{})
	assert.Regexp(t, `^CASH-\d{6}$`, data["transactionId"])
}

func TestSignupAndLogin(t *testing.T) {
	repo := repository.NewMemoryUserRepo()
	h := &UserHandler{Repo: repo}

	rec := postJSON(t, h.Signup, "/api/signup", map[string]string{
		"name":     "Priya",
		"email":    "priya@fleetlink.in",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "s3cret-pass")

	loginRec := postJSON(t, h.Login, "/api/login", map[string]string{
		"email":    "priya@fleetlink.in",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, loginRec.Code, loginRec.Body.String())

	badRec := postJSON(t, h.Login, "/api/login", map[string]string{
		"email":    "priya@fleetlink.in",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, badRec.Code)
}
