package repository

import (
	"errors"
	"fmt"
	"sync"

	"fleetlink/models"
)

var ErrNotFound = errors.New("not found")

type MemoryClientRepo struct {
	mu      sync.RWMutex
	clients map[string]*models.Client
	order   []string // insertion order for stable listings
	nextID  int
}

func NewMemoryClientRepo() *MemoryClientRepo {
	r := &MemoryClientRepo{clients: make(map[string]*models.Client), nextID: 1}
	for _, c := range seedClients() {
		r.clients[c.ID] = c
		r.order = append(r.order, c.ID)
		r.nextID++
	}
	return r
}

func (r *MemoryClientRepo) CreateClient(client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	client.ID = fmt.Sprintf("client-%d", r.nextID)
	for i := range client.Addresses {
		if client.Addresses[i].ID == "" {
			client.Addresses[i].ID = fmt.Sprintf("addr-%s-%d", client.ID, i+1)
		}
	}

	cp := cloneClient(client)
	r.clients[client.ID] = cp
	r.order = append(r.order, client.ID)
	return nil
}

func (r *MemoryClientRepo) GetClients() ([]*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Client, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneClient(r.clients[id]))
	}
	return out, nil
}

func (r *MemoryClientRepo) GetClientByID(id string) (*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneClient(c), nil
}

func (r *MemoryClientRepo) UpdateClient(client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[client.ID]; !ok {
		return ErrNotFound
	}
	r.clients[client.ID] = cloneClient(client)
	return nil
}

func cloneClient(c *models.Client) *models.Client {
	cp := *c
	cp.Addresses = append([]models.Address(nil), c.Addresses...)
	return &cp
}
