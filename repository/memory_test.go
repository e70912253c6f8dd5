package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetlink/models"
)

func TestMemoryClientRepo(t *testing.T) {
	repo := NewMemoryClientRepo()

	clients, err := repo.GetClients()
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "ABC Logistics", clients[0].CompanyName)

	c := &models.Client{
		CompanyName:       "New Transporters",
		ContactPersonName: "Asha Patel",
		ContactEmail:      "asha@newtransporters.in",
		ContactNumber:     "9000000001",
		Addresses: []models.Address{
			{
				AddressLine1: "12 Ring Road", City: "Pune", State: "Maharashtra",
				PinCode: "411001", Country: "India", AddressType: models.AddressOffice,
			},
		},
	}
	require.NoError(t, repo.CreateClient(c))
	assert.NotEmpty(t, c.ID)
	assert.NotEmpty(t, c.Addresses[0].ID)

	got, err := repo.GetClientByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Transporters", got.CompanyName)

	got.CompanyName = "New Transporters Pvt Ltd"
	require.NoError(t, repo.UpdateClient(got))
	again, err := repo.GetClientByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Transporters Pvt Ltd", again.CompanyName)

	_, err = repo.GetClientByID("client-999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryClientRepoReturnsCopies(t *testing.T) {
	repo := NewMemoryClientRepo()

	a, err := repo.GetClientByID("client-1")
	require.NoError(t, err)
	a.Addresses = nil

	b, err := repo.GetClientByID("client-1")
	require.NoError(t, err)
	assert.Len(t, b.Addresses, 1, "mutating a returned client must not touch the store")
}

func TestMemoryOrderRepo(t *testing.T) {
	repo := NewMemoryOrderRepo()

	orders, err := repo.GetOrders()
	require.NoError(t, err)
	require.Len(t, orders, 2)

	order := &models.Order{
		Client: *seedClients()[0],
		Transport: models.OrderTransport{
			Status:      models.OrderNew,
			Source:      seedClients()[0].Addresses[0],
			Destination: seedClients()[1].Addresses[0],
			Size:        models.SizeSmall,
		},
		Billing: models.Billing{Distance: 100, RatePerKm: 15, Subtotal: 1500, GSTRate: 18, GSTAmount: 270, TotalAmount: 1770},
		Payment: models.Payment{
			Amount: 1770, PaymentType: models.PaymentComplete,
			PaymentMode: models.PaymentUPI, TransactionID: "UPI-1",
		},
		DriverID: "driver-1",
	}
	require.NoError(t, repo.CreateOrder(context.Background(), order))
	assert.NotEmpty(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())

	updated, err := repo.UpdateOrderStatus(order.ID, models.OrderInTransit)
	require.NoError(t, err)
	assert.Equal(t, models.OrderInTransit, updated.Transport.Status)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	_, err = repo.UpdateOrderStatus("order-999", models.OrderDelivered)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryFleetRepoAvailableTrucks(t *testing.T) {
	repo := NewMemoryFleetRepo()

	large, err := repo.AvailableTrucks(models.SizeLarge)
	require.NoError(t, err)
	require.Len(t, large, 1)
	assert.Equal(t, "truck-2", large[0].ID) // 5000 kg, available

	small, err := repo.AvailableTrucks(models.SizeSmall)
	require.NoError(t, err)
	require.Len(t, small, 1)
	assert.Equal(t, "truck-1", small[0].ID)

	all, err := repo.AvailableTrucks("")
	require.NoError(t, err)
	assert.Len(t, all, 3) // truck-3 in transit, van-2 in maintenance
}

func TestMemoryFleetRepoDrivers(t *testing.T) {
	repo := NewMemoryFleetRepo()

	available, err := repo.GetDrivers(models.DriverAvailable)
	require.NoError(t, err)
	require.Len(t, available, 2)
	for _, d := range available {
		assert.Equal(t, models.DriverAvailable, d.Status)
	}

	all, err := repo.GetDrivers("")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestMemoryUserRepo(t *testing.T) {
	repo := NewMemoryUserRepo()

	u := &models.AppUser{Name: "Admin User", Email: "admin@example.com", Role: models.RoleAdmin, Password: "password123"}
	require.NoError(t, repo.CreateUser(u))
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "password123", u.Password, "password must be stored hashed")

	dup := &models.AppUser{Name: "Other", Email: "admin@example.com", Role: models.RoleUser, Password: "x"}
	assert.Error(t, repo.CreateUser(dup))

	got, err := repo.GetUserByEmail("admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.RoleAdmin, got.Role)

	missing, err := repo.GetUserByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
