package repository

import (
	"fmt"
	"sync"

	"fleetlink/models"
)

type MemoryFleetRepo struct {
	mu       sync.RWMutex
	vehicles map[string]*models.Vehicle
	drivers  map[string]*models.Driver
	trips    []*models.Trip
	vlisted  []string
	dlisted  []string
	nextID   int
}

func NewMemoryFleetRepo() *MemoryFleetRepo {
	r := &MemoryFleetRepo{
		vehicles: make(map[string]*models.Vehicle),
		drivers:  make(map[string]*models.Driver),
	}
	for _, v := range seedVehicles() {
		r.vehicles[v.ID] = v
		r.vlisted = append(r.vlisted, v.ID)
	}
	for _, d := range seedDrivers() {
		r.drivers[d.ID] = d
		r.dlisted = append(r.dlisted, d.ID)
	}
	r.trips = seedTrips()
	return r
}

func (r *MemoryFleetRepo) GetVehicles() ([]*models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Vehicle, 0, len(r.vlisted))
	for _, id := range r.vlisted {
		cp := *r.vehicles[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemoryFleetRepo) GetVehicleByID(id string) (*models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.vehicles[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *MemoryFleetRepo) CreateVehicle(v *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	v.ID = fmt.Sprintf("truck-%d", len(r.vlisted)+r.nextID)
	cp := *v
	r.vehicles[v.ID] = &cp
	r.vlisted = append(r.vlisted, v.ID)
	return nil
}

func (r *MemoryFleetRepo) UpdateVehicle(v *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vehicles[v.ID]; !ok {
		return ErrNotFound
	}
	cp := *v
	r.vehicles[v.ID] = &cp
	return nil
}

func (r *MemoryFleetRepo) AvailableTrucks(size models.TransportSize) ([]models.TruckOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.TruckOption{}
	for _, id := range r.vlisted {
		v := r.vehicles[id]
		if v.Status != models.VehicleAvailable {
			continue
		}
		if size != "" && models.SizeForCapacity(v.Capacity) != size {
			continue
		}
		capacity := v.Capacity
		out = append(out, models.TruckOption{
			ID:       v.ID,
			Name:     v.Name + " - " + v.TruckNumber,
			Capacity: &capacity,
		})
	}
	return out, nil
}

func (r *MemoryFleetRepo) GetDrivers(status models.DriverStatus) ([]*models.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*models.Driver{}
	for _, id := range r.dlisted {
		d := r.drivers[id]
		if status != "" && d.Status != status {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemoryFleetRepo) GetDriverByID(id string) (*models.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.drivers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *MemoryFleetRepo) CreateDriver(d *models.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	d.ID = fmt.Sprintf("driver-%d", len(r.dlisted)+r.nextID)
	cp := *d
	r.drivers[d.ID] = &cp
	r.dlisted = append(r.dlisted, d.ID)
	return nil
}

func (r *MemoryFleetRepo) UpdateDriver(d *models.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drivers[d.ID]; !ok {
		return ErrNotFound
	}
	cp := *d
	r.drivers[d.ID] = &cp
	return nil
}

func (r *MemoryFleetRepo) GetTrips() ([]*models.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Trip, 0, len(r.trips))
	for _, t := range r.trips {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}
