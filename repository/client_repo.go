package repository

import "fleetlink/models"

// ClientRepository defines the interface for client directory operations.
// Every created client carries at least one address.
type ClientRepository interface {
	CreateClient(client *models.Client) error
	GetClients() ([]*models.Client, error)
	GetClientByID(id string) (*models.Client, error)
	UpdateClient(client *models.Client) error
}
