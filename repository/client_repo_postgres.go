package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"fleetlink/models"
)

type PostgresClientRepo struct {
	DB *sql.DB
}

func NewPostgresClientRepo(db *sql.DB) *PostgresClientRepo {
	return &PostgresClientRepo{DB: db}
}

func newClientID() string {
	return fmt.Sprintf("client-%d", time.Now().UnixNano())
}

func (r *PostgresClientRepo) CreateClient(client *models.Client) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if client.ID == "" {
		client.ID = newClientID()
	}
	_, err = tx.Exec(`
		INSERT INTO clients(id, company_name, contact_email, contact_person_name,
			contact_number, alternate_contact, gst_number, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
	`, client.ID, client.CompanyName, client.ContactEmail, client.ContactPersonName,
		client.ContactNumber, client.AlternateContact, client.GSTNumber, time.Now().UTC())
	if err != nil {
		return err
	}

	if err := insertClientAddresses(tx, client); err != nil {
		return err
	}

	return tx.Commit()
}

func insertClientAddresses(tx *sql.Tx, client *models.Client) error {
	for i := range client.Addresses {
		a := &client.Addresses[i]
		if a.ID == "" {
			a.ID = fmt.Sprintf("addr-%d-%d", time.Now().UnixNano(), i+1)
		}
		_, err := tx.Exec(`
			INSERT INTO client_addresses(id, client_id, address_line1, address_line2,
				address_line3, city, state, pin_code, country, address_type)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`, a.ID, client.ID, a.AddressLine1, a.AddressLine2, a.AddressLine3,
			a.City, a.State, a.PinCode, a.Country, a.AddressType)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresClientRepo) GetClients() ([]*models.Client, error) {
	rows, err := r.DB.Query(`
		SELECT id, company_name, contact_email, contact_person_name,
		       contact_number, alternate_contact, gst_number
		FROM clients
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.ContactEmail, &c.ContactPersonName,
			&c.ContactNumber, &c.AlternateContact, &c.GSTNumber); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadAddresses(result); err != nil {
		return nil, err
	}
	return result, nil
}

// loadAddresses fills the address lists for all clients in one query.
func (r *PostgresClientRepo) loadAddresses(clients []*models.Client) error {
	if len(clients) == 0 {
		return nil
	}

	ids := make([]interface{}, len(clients))
	placeholders := make([]string, len(clients))
	byID := make(map[string]*models.Client, len(clients))
	for i, c := range clients {
		ids[i] = c.ID
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		byID[c.ID] = c
	}

	query := fmt.Sprintf(`
		SELECT id, client_id, address_line1, address_line2, address_line3,
		       city, state, pin_code, country, address_type
		FROM client_addresses
		WHERE client_id IN (%s)
	`, strings.Join(placeholders, ","))

	rows, err := r.DB.Query(query, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a models.Address
		var clientID string
		if err := rows.Scan(&a.ID, &clientID, &a.AddressLine1, &a.AddressLine2, &a.AddressLine3,
			&a.City, &a.State, &a.PinCode, &a.Country, &a.AddressType); err != nil {
			return err
		}
		if c, ok := byID[clientID]; ok {
			c.Addresses = append(c.Addresses, a)
		}
	}
	return rows.Err()
}

func (r *PostgresClientRepo) GetClientByID(id string) (*models.Client, error) {
	var c models.Client
	err := r.DB.QueryRow(`
		SELECT id, company_name, contact_email, contact_person_name,
		       contact_number, alternate_contact, gst_number
		FROM clients
		WHERE id=$1
	`, id).Scan(&c.ID, &c.CompanyName, &c.ContactEmail, &c.ContactPersonName,
		&c.ContactNumber, &c.AlternateContact, &c.GSTNumber)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadAddresses([]*models.Client{&c}); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresClientRepo) UpdateClient(client *models.Client) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE clients SET
			company_name=$1, contact_email=$2, contact_person_name=$3,
			contact_number=$4, alternate_contact=$5, gst_number=$6
		WHERE id=$7
	`, client.CompanyName, client.ContactEmail, client.ContactPersonName,
		client.ContactNumber, client.AlternateContact, client.GSTNumber, client.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	// Refresh addresses
	if _, err := tx.Exec(`DELETE FROM client_addresses WHERE client_id=$1`, client.ID); err != nil {
		return err
	}
	if err := insertClientAddresses(tx, client); err != nil {
		return err
	}

	return tx.Commit()
}
