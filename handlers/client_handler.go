package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetlink/models"
	"fleetlink/orderflow"
	"fleetlink/repository"
)

type ClientHandler struct {
	Repo repository.ClientRepository
}

// CreateClient handler
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if errs := orderflow.ValidateClient(client); len(errs) > 0 {
		writeError(w, errs)
		return
	}

	if err := h.Repo.CreateClient(&client); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Client created successfully",
		Data:    client,
	})
}

// GetClients handler
func (h *ClientHandler) GetClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Repo.GetClients()
	if err != nil {
		writeError(w, err)
		return
	}
	if clients == nil {
		clients = []*models.Client{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Clients fetched successfully",
		Data:    clients,
	})
}

// GetClientByID handler
func (h *ClientHandler) GetClientByID(w http.ResponseWriter, r *http.Request, id string) {
	client, err := h.Repo.GetClientByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{
				Success: false,
				Message: "Client not found",
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Client fetched successfully",
		Data:    client,
	})
}

// UpdateClient handler
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request, id string) {
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	client.ID = id

	if errs := orderflow.ValidateClient(client); len(errs) > 0 {
		writeError(w, errs)
		return
	}

	if err := h.Repo.UpdateClient(&client); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{
				Success: false,
				Message: "Client not found",
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Client updated successfully",
		Data:    client,
	})
}
