package repository

import (
	"context"

	"fleetlink/models"
)

// OrderRepository defines the interface for order persistence. CreateOrder
// assigns the id and timestamps; it doubles as the order-creation collaborator
// the wizard draft submits to. After creation only the transport status is
// ever updated.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrders() ([]*models.Order, error)
	GetOrderByID(id string) (*models.Order, error)
	UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error)
}
