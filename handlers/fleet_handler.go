package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetlink/models"
	"fleetlink/repository"
)

type FleetHandler struct {
	Repo repository.FleetRepository
}

// GetTrucks handler. Returns the truck options for the requested transport
// size, available vehicles only.
func (h *FleetHandler) GetTrucks(w http.ResponseWriter, r *http.Request) {
	size := models.TransportSize(r.URL.Query().Get("size"))

	trucks, err := h.Repo.AvailableTrucks(size)
	if err != nil {
		writeError(w, err)
		return
	}
	if trucks == nil {
		trucks = []models.TruckOption{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Trucks fetched successfully",
		Data:    trucks,
	})
}

// GetVehicleByID handler
func (h *FleetHandler) GetVehicleByID(w http.ResponseWriter, r *http.Request, id string) {
	vehicle, err := h.Repo.GetVehicleByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{
				Success: false,
				Message: "Vehicle not found",
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Vehicle fetched successfully",
		Data:    vehicle,
	})
}

// GetVehicles handler
func (h *FleetHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Repo.GetVehicles()
	if err != nil {
		writeError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []*models.Vehicle{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Vehicles fetched successfully",
		Data:    vehicles,
	})
}

// CreateVehicle handler
func (h *FleetHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.Repo.CreateVehicle(&vehicle); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Vehicle created successfully",
		Data:    vehicle,
	})
}

// UpdateVehicle handler
func (h *FleetHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request, id string) {
	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	vehicle.ID = id

	if err := h.Repo.UpdateVehicle(&vehicle); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{
				Success: false,
				Message: "Vehicle not found",
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Vehicle updated successfully",
		Data:    vehicle,
	})
}

// GetDrivers handler. Accepts an optional ?status= filter; the order wizard
// asks for AVAILABLE only.
func (h *FleetHandler) GetDrivers(w http.ResponseWriter, r *http.Request) {
	status := models.DriverStatus(r.URL.Query().Get("status"))

	drivers, err := h.Repo.GetDrivers(status)
	if err != nil {
		writeError(w, err)
		return
	}
	if drivers == nil {
		drivers = []*models.Driver{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Drivers fetched successfully",
		Data:    drivers,
	})
}

// CreateDriver handler
func (h *FleetHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var driver models.Driver
	if err := json.NewDecoder(r.Body).Decode(&driver); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.Repo.CreateDriver(&driver); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Driver created successfully",
		Data:    driver,
	})
}

// UpdateDriver handler
func (h *FleetHandler) UpdateDriver(w http.ResponseWriter, r *http.Request, id string) {
	var driver models.Driver
	if err := json.NewDecoder(r.Body).Decode(&driver); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	driver.ID = id

	if err := h.Repo.UpdateDriver(&driver); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{
				Success: false,
				Message: "Driver not found",
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Driver updated successfully",
		Data:    driver,
	})
}

// GetTrips handler
func (h *FleetHandler) GetTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.Repo.GetTrips()
	if err != nil {
		writeError(w, err)
		return
	}
	if trips == nil {
		trips = []*models.Trip{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Trips fetched successfully",
		Data:    trips,
	})
}
