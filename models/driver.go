package models

type DriverStatus string

const (
	DriverAvailable DriverStatus = "AVAILABLE"
	DriverOnTrip    DriverStatus = "ON_TRIP"
	DriverOffDuty   DriverStatus = "OFF_DUTY"
)

type Driver struct {
	ID           string       `json:"id" bson:"_id,omitempty" db:"id"`
	Name         string       `json:"name" bson:"name" db:"name"`
	Status       DriverStatus `json:"status" bson:"status" db:"status"`
	Rating       float64      `json:"rating" bson:"rating" db:"rating"`
	LicensePlate string       `json:"licensePlate" bson:"license_plate" db:"license_plate"`
	VehicleType  VehicleType  `json:"vehicleType" bson:"vehicle_type" db:"vehicle_type"`
	PhoneNumber  string       `json:"phoneNumber" bson:"phone_number" db:"phone_number"`
	ImageURL     string       `json:"imageUrl" bson:"image_url" db:"image_url"`
}

// DriverOption is the trimmed shape the payment step's driver picker consumes.
type DriverOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
