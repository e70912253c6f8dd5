package models

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "AVAILABLE"
	VehicleInTransit   VehicleStatus = "IN_TRANSIT"
	VehicleMaintenance VehicleStatus = "MAINTENANCE"
)

type VehicleType string

const (
	VehicleTruck VehicleType = "TRUCK"
	VehicleVan   VehicleType = "VAN"
	VehicleCar   VehicleType = "CAR"
)

// Vehicle is a truck/van/car in the fleet.
type Vehicle struct {
	ID          string        `json:"id" bson:"_id,omitempty" db:"id"`
	Name        string        `json:"name" bson:"name" db:"name"`
	Type        VehicleType   `json:"type" bson:"type" db:"type"`
	Status      VehicleStatus `json:"status" bson:"status" db:"status"`
	Capacity    float64       `json:"capacity" bson:"capacity" db:"capacity"`
	Location    string        `json:"location" bson:"location" db:"location"`
	ImageURL    string        `json:"imageUrl" bson:"image_url" db:"image_url"`
	TruckNumber string        `json:"truckNumber" bson:"truck_number" db:"truck_number"`
}

// TruckOption is the trimmed shape the order wizard's truck picker consumes.
type TruckOption struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Capacity *float64 `json:"capacity,omitempty"`
}

// SizeForCapacity buckets a vehicle's load capacity (kg) into the transport
// sizes the order form offers.
func SizeForCapacity(capacity float64) TransportSize {
	switch {
	case capacity >= 4000:
		return SizeLarge
	case capacity >= 1000:
		return SizeMedium
	default:
		return SizeSmall
	}
}
