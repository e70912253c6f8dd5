package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fleetlink/models"
)

type MemoryOrderRepo struct {
	mu     sync.RWMutex
	orders map[string]*models.Order
	listed []string
	nextID int
}

func NewMemoryOrderRepo() *MemoryOrderRepo {
	r := &MemoryOrderRepo{orders: make(map[string]*models.Order)}
	for _, o := range seedOrders() {
		r.orders[o.ID] = o
		r.listed = append(r.listed, o.ID)
		r.nextID++
	}
	return r
}

func (r *MemoryOrderRepo) CreateOrder(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	order.ID = fmt.Sprintf("order-%d", r.nextID)
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	cp := *order
	r.orders[order.ID] = &cp
	r.listed = append(r.listed, order.ID)
	return nil
}

func (r *MemoryOrderRepo) GetOrders() ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Order, 0, len(r.listed))
	for _, id := range r.listed {
		cp := *r.orders[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemoryOrderRepo) GetOrderByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *MemoryOrderRepo) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	o.Transport.Status = status
	o.UpdatedAt = time.Now().UTC()
	cp := *o
	return &cp, nil
}
