package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fleetlink/models"
)

type PostgresOrderRepo struct {
	DB      *sql.DB
	Clients *PostgresClientRepo
}

func NewPostgresOrderRepo(db *sql.DB) *PostgresOrderRepo {
	return &PostgresOrderRepo{DB: db, Clients: NewPostgresClientRepo(db)}
}

// upsertClient stores the embedded client if it is not already known. The
// order keeps its own address snapshots, so an existing client row is left
// untouched.
func upsertClient(tx *sql.Tx, client *models.Client) error {
	if client.ID == "" {
		client.ID = newClientID()
	}
	res, err := tx.Exec(`
		INSERT INTO clients(id, company_name, contact_email, contact_person_name,
			contact_number, alternate_contact, gst_number, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT(id) DO NOTHING
	`, client.ID, client.CompanyName, client.ContactEmail, client.ContactPersonName,
		client.ContactNumber, client.AlternateContact, client.GSTNumber, time.Now().UTC())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return insertClientAddresses(tx, client)
	}
	return nil
}

// insertAddressSnapshot stores a point-in-time copy of an order-leg address.
func insertAddressSnapshot(tx *sql.Tx, orderID, role string, a *models.Address) (string, error) {
	id := fmt.Sprintf("%s-%s", orderID, role)
	_, err := tx.Exec(`
		INSERT INTO order_addresses(id, address_line1, address_line2, address_line3,
			city, state, pin_code, country, address_type, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`, id, a.AddressLine1, a.AddressLine2, a.AddressLine3,
		a.City, a.State, a.PinCode, a.Country, a.AddressType, time.Now().UTC())
	return id, err
}

func (r *PostgresOrderRepo) CreateOrder(_ context.Context, order *models.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := upsertClient(tx, &order.Client); err != nil {
		return err
	}

	order.ID = fmt.Sprintf("order-%d", time.Now().UnixNano())
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	srcID, err := insertAddressSnapshot(tx, order.ID, "source", &order.Transport.Source)
	if err != nil {
		return err
	}
	dstID, err := insertAddressSnapshot(tx, order.ID, "destination", &order.Transport.Destination)
	if err != nil {
		return err
	}
	order.Transport.Source.ID = srcID
	order.Transport.Destination.ID = dstID

	b := order.Billing
	p := order.Payment
	_, err = tx.Exec(`
		INSERT INTO orders(
			id, client_id, status, size, truck_id, distance,
			source_address_id, destination_address_id,
			billing_distance, rate_per_km, subtotal, gst_rate, gst_amount, total_amount,
			payment_amount, payment_type, payment_mode, transaction_id,
			next_payment_date, remaining_amount,
			driver_id, created_at, updated_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
	`,
		order.ID, order.Client.ID, order.Transport.Status, order.Transport.Size,
		order.Transport.TruckID, order.Transport.Distance, srcID, dstID,
		b.Distance, b.RatePerKm, b.Subtotal, b.GSTRate, b.GSTAmount, b.TotalAmount,
		p.Amount, p.PaymentType, p.PaymentMode, p.TransactionID,
		p.NextPaymentDate, p.RemainingAmount,
		order.DriverID, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

const orderSelect = `
	SELECT
		o.id, o.client_id, o.status, o.size, o.truck_id, o.distance,
		o.billing_distance, o.rate_per_km, o.subtotal, o.gst_rate, o.gst_amount, o.total_amount,
		o.payment_amount, o.payment_type, o.payment_mode, o.transaction_id,
		o.next_payment_date, o.remaining_amount,
		o.driver_id, o.created_at, o.updated_at,

		-- source snapshot
		sa.id, sa.address_line1, sa.address_line2, sa.address_line3,
		sa.city, sa.state, sa.pin_code, sa.country, sa.address_type,
		-- destination snapshot
		da.id, da.address_line1, da.address_line2, da.address_line3,
		da.city, da.state, da.pin_code, da.country, da.address_type
	FROM orders o
	LEFT JOIN order_addresses sa ON o.source_address_id = sa.id
	LEFT JOIN order_addresses da ON o.destination_address_id = da.id
`

func scanOrder(rows *sql.Rows) (*models.Order, string, error) {
	var o models.Order
	var clientID string
	err := rows.Scan(
		&o.ID, &clientID, &o.Transport.Status, &o.Transport.Size,
		&o.Transport.TruckID, &o.Transport.Distance,
		&o.Billing.Distance, &o.Billing.RatePerKm, &o.Billing.Subtotal,
		&o.Billing.GSTRate, &o.Billing.GSTAmount, &o.Billing.TotalAmount,
		&o.Payment.Amount, &o.Payment.PaymentType, &o.Payment.PaymentMode,
		&o.Payment.TransactionID, &o.Payment.NextPaymentDate, &o.Payment.RemainingAmount,
		&o.DriverID, &o.CreatedAt, &o.UpdatedAt,

		&o.Transport.Source.ID, &o.Transport.Source.AddressLine1,
		&o.Transport.Source.AddressLine2, &o.Transport.Source.AddressLine3,
		&o.Transport.Source.City, &o.Transport.Source.State,
		&o.Transport.Source.PinCode, &o.Transport.Source.Country,
		&o.Transport.Source.AddressType,

		&o.Transport.Destination.ID, &o.Transport.Destination.AddressLine1,
		&o.Transport.Destination.AddressLine2, &o.Transport.Destination.AddressLine3,
		&o.Transport.Destination.City, &o.Transport.Destination.State,
		&o.Transport.Destination.PinCode, &o.Transport.Destination.Country,
		&o.Transport.Destination.AddressType,
	)
	return &o, clientID, err
}

func (r *PostgresOrderRepo) queryOrders(query string, args ...interface{}) ([]*models.Order, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Order
	clientIDs := make(map[string][]*models.Order)
	for rows.Next() {
		o, clientID, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
		clientIDs[clientID] = append(clientIDs[clientID], o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Attach the owning client records.
	for id, orders := range clientIDs {
		client, err := r.Clients.GetClientByID(id)
		if err == ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, o := range orders {
			o.Client = *client
		}
	}
	return result, nil
}

func (r *PostgresOrderRepo) GetOrders() ([]*models.Order, error) {
	return r.queryOrders(orderSelect + " ORDER BY o.created_at DESC")
}

func (r *PostgresOrderRepo) GetOrderByID(id string) (*models.Order, error) {
	orders, err := r.queryOrders(orderSelect+" WHERE o.id=$1", id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNotFound
	}
	return orders[0], nil
}

func (r *PostgresOrderRepo) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	res, err := r.DB.Exec(`
		UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3
	`, status, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return r.GetOrderByID(id)
}
