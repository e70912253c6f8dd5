package models

import "time"

type TripStatus string

const (
	TripScheduled  TripStatus = "SCHEDULED"
	TripInProgress TripStatus = "IN_PROGRESS"
	TripCompleted  TripStatus = "COMPLETED"
	TripCancelled  TripStatus = "CANCELLED"
)

type Trip struct {
	ID          string     `json:"id" bson:"_id,omitempty" db:"id"`
	TransportID string     `json:"transportId" bson:"transport_id" db:"transport_id"`
	DriverID    string     `json:"driverId" bson:"driver_id" db:"driver_id"`
	Origin      string     `json:"origin" bson:"origin" db:"origin"`
	Destination string     `json:"destination" bson:"destination" db:"destination"`
	StartTime   time.Time  `json:"startTime" bson:"start_time" db:"start_time"`
	EndTime     time.Time  `json:"endTime" bson:"end_time" db:"end_time"`
	Status      TripStatus `json:"status" bson:"status" db:"status"`
	Distance    float64    `json:"distance" bson:"distance" db:"distance"`
}
