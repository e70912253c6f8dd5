package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fleetlink/models"
)

type PostgresFleetRepo struct {
	DB *sql.DB
}

func NewPostgresFleetRepo(db *sql.DB) *PostgresFleetRepo {
	return &PostgresFleetRepo{DB: db}
}

func (r *PostgresFleetRepo) GetVehicles() ([]*models.Vehicle, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, type, status, capacity, location, image_url, truck_number
		FROM vehicles
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Type, &v.Status, &v.Capacity,
			&v.Location, &v.ImageURL, &v.TruckNumber); err != nil {
			return nil, err
		}
		result = append(result, &v)
	}
	return result, rows.Err()
}

func (r *PostgresFleetRepo) GetVehicleByID(id string) (*models.Vehicle, error) {
	var v models.Vehicle
	err := r.DB.QueryRow(`
		SELECT id, name, type, status, capacity, location, image_url, truck_number
		FROM vehicles
		WHERE id=$1
	`, id).Scan(&v.ID, &v.Name, &v.Type, &v.Status, &v.Capacity,
		&v.Location, &v.ImageURL, &v.TruckNumber)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PostgresFleetRepo) CreateVehicle(v *models.Vehicle) error {
	if v.ID == "" {
		v.ID = fmt.Sprintf("truck-%d", time.Now().UnixNano())
	}
	_, err := r.DB.Exec(`
		INSERT INTO vehicles(id, name, type, status, capacity, location, image_url, truck_number)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
	`, v.ID, v.Name, v.Type, v.Status, v.Capacity, v.Location, v.ImageURL, v.TruckNumber)
	return err
}

func (r *PostgresFleetRepo) UpdateVehicle(v *models.Vehicle) error {
	res, err := r.DB.Exec(`
		UPDATE vehicles SET
			name=$1, type=$2, status=$3, capacity=$4, location=$5, image_url=$6, truck_number=$7
		WHERE id=$8
	`, v.Name, v.Type, v.Status, v.Capacity, v.Location, v.ImageURL, v.TruckNumber, v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresFleetRepo) AvailableTrucks(size models.TransportSize) ([]models.TruckOption, error) {
	vehicles, err := r.GetVehicles()
	if err != nil {
		return nil, err
	}

	out := []models.TruckOption{}
	for _, v := range vehicles {
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

func (r *PostgresFleetRepo) GetDrivers(status models.DriverStatus) ([]*models.Driver, error) {
	query := `
		SELECT id, name, status, rating, license_plate, vehicle_type, phone_number, image_url
		FROM drivers
	`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status=$1"
		args = append(args, status)
	}
	query += " ORDER BY name"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*models.Driver{}
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Status, &d.Rating, &d.LicensePlate,
			&d.VehicleType, &d.PhoneNumber, &d.ImageURL); err != nil {
			return nil, err
		}
		result = append(result, &d)
	}
	return result, rows.Err()
}

func (r *PostgresFleetRepo) GetDriverByID(id string) (*models.Driver, error) {
	var d models.Driver
	err := r.DB.QueryRow(`
		SELECT id, name, status, rating, license_plate, vehicle_type, phone_number, image_url
		FROM drivers
		WHERE id=$1
	`, id).Scan(&d.ID, &d.Name, &d.Status, &d.Rating, &d.LicensePlate,
		&d.VehicleType, &d.PhoneNumber, &d.ImageURL)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresFleetRepo) CreateDriver(d *models.Driver) error {
	if d.ID == "" {
		d.ID = fmt.Sprintf("driver-%d", time.Now().UnixNano())
	}
	_, err := r.DB.Exec(`
		INSERT INTO drivers(id, name, status, rating, license_plate, vehicle_type, phone_number, image_url)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
	`, d.ID, d.Name, d.Status, d.Rating, d.LicensePlate, d.VehicleType, d.PhoneNumber, d.ImageURL)
	return err
}

func (r *PostgresFleetRepo) UpdateDriver(d *models.Driver) error {
	res, err := r.DB.Exec(`
		UPDATE drivers SET
			name=$1, status=$2, rating=$3, license_plate=$4, vehicle_type=$5,
			phone_number=$6, image_url=$7
		WHERE id=$8
	`, d.Name, d.Status, d.Rating, d.LicensePlate, d.VehicleType, d.PhoneNumber, d.ImageURL, d.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresFleetRepo) GetTrips() ([]*models.Trip, error) {
	rows, err := r.DB.Query(`
		SELECT id, transport_id, driver_id, origin, destination,
		       start_time, end_time, status, distance
		FROM trips
		ORDER BY start_time DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*models.Trip{}
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.TransportID, &t.DriverID, &t.Origin, &t.Destination,
			&t.StartTime, &t.EndTime, &t.Status, &t.Distance); err != nil {
			return nil, err
		}
		result = append(result, &t)
	}
	return result, rows.Err()
}
