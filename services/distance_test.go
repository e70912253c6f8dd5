package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetlink/models"
)

func addr(pin string) models.Address {
	return models.Address{
		AddressLine1: "1 Test Road",
		City:         "Testville",
		State:        "TS",
		PinCode:      pin,
		Country:      "India",
		AddressType:  models.AddressTransport,
	}
}

func TestHTTPDistanceService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "400001", r.URL.Query().Get("fromPinCode"))
		assert.Equal(t, "110001", r.URL.Query().Get("toPinCode"))
		assert.Equal(t, "India", r.URL.Query().Get("country"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"distance": 1400}`))
	}))
	defer srv.Close()

	s := NewHTTPDistanceService(srv.URL)
	km, err := s.Distance(context.Background(), addr("400001"), addr("110001"))
	require.NoError(t, err)
	assert.Equal(t, 1400.0, km)
}

func TestHTTPDistanceServiceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewHTTPDistanceService(srv.URL)
	_, err := s.Distance(context.Background(), addr("400001"), addr("110001"))
	require.Error(t, err)

	srv.Close()
	_, err = s.Distance(context.Background(), addr("400001"), addr("110001"))
	require.Error(t, err, "unreachable service must surface an error, not a fallback value")
}

func TestStaticDistanceServiceKnownRoute(t *testing.T) {
	s := NewStaticDistanceService()

	km, err := s.Distance(context.Background(), addr("400001"), addr("110001"))
	require.NoError(t, err)
	assert.Equal(t, 1400.0, km)

	// direction does not matter
	back, err := s.Distance(context.Background(), addr("110001"), addr("400001"))
	require.NoError(t, err)
	assert.Equal(t, km, back)
}

func TestStaticDistanceServiceDeterministicFallback(t *testing.T) {
	s := NewStaticDistanceService()

	first, err := s.Distance(context.Background(), addr("999999"), addr("888888"))
	require.NoError(t, err)
	second, err := s.Distance(context.Background(), addr("999999"), addr("888888"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 50.0)
	assert.Less(t, first, 500.0)
}

func TestStaticDistanceServiceRequiresPinCodes(t *testing.T) {
	s := NewStaticDistanceService()
	_, err := s.Distance(context.Background(), addr(""), addr("110001"))
	require.Error(t, err)
}

func TestNewCashTransactionID(t *testing.T) {
	id := NewCashTransactionID()
	assert.Regexp(t, `^CASH-\d{6}$`, id)
}
