package repository

import "fleetlink/models"

// FleetRepository defines the interface for vehicles, drivers and trips.
type FleetRepository interface {
	GetVehicles() ([]*models.Vehicle, error)
	GetVehicleByID(id string) (*models.Vehicle, error)
	CreateVehicle(v *models.Vehicle) error
	UpdateVehicle(v *models.Vehicle) error

	// AvailableTrucks filters AVAILABLE vehicles down to the truck options
	// the order wizard offers for a transport size.
	AvailableTrucks(size models.TransportSize) ([]models.TruckOption, error)

	GetDrivers(status models.DriverStatus) ([]*models.Driver, error)
	GetDriverByID(id string) (*models.Driver, error)
	CreateDriver(d *models.Driver) error
	UpdateDriver(d *models.Driver) error

	GetTrips() ([]*models.Trip, error)
}
