package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/workspace-booking/internal/model"
)

// CustomerRepo mirrors the 'customers' table.
type CustomerRepo struct{ db *sql.DB }

func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func scanCustomer(row *sql.Row) (model.Customer, error) {
	var c model.Customer
	var notes sql.NullString
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &notes, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Customer{}, ErrCustomerNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	if notes.Valid {
		n := notes.String
		c.Notes = &n
	}
	return c, nil
}

// Create inserts a customer and returns the stored record.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	var notes sql.NullString
	if c.Notes != nil && strings.TrimSpace(*c.Notes) != "" {
		notes = sql.NullString{String: strings.TrimSpace(*c.Notes), Valid: true}
	}
	res, err := run(ctx, r.db).ExecContext(ctx,
		`INSERT INTO customers (name, phone, notes) VALUES (?, ?, ?)`,
		c.Name, c.Phone, notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	created, err := r.GetByID(ctx, c.ID)
	if err != nil {
		return err
	}
	*c = created
	return nil
}

// GetByID fetches a customer by id.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (model.Customer, error) {
	return scanCustomer(run(ctx, r.db).QueryRowContext(ctx,
		`SELECT id, name, phone, notes, created_at FROM customers WHERE id = ?`, id))
}

// List returns all customers, newest first.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	rows, err := run(ctx, r.db).QueryContext(ctx,
		`SELECT id, name, phone, notes, created_at FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		var notes sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &notes, &c.CreatedAt); err != nil {
			return nil, err
		}
		if notes.Valid {
			n := notes.String
			c.Notes = &n
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update edits name, phone and notes.  Bookings referencing the
// customer are unaffected.
func (r *CustomerRepo) Update(ctx context.Context, id uint64, name, phone string, notes *string) (model.Customer, error) {
	var n sql.NullString
	if notes != nil && strings.TrimSpace(*notes) != "" {
		n = sql.NullString{String: strings.TrimSpace(*notes), Valid: true}
	}
	if _, err := run(ctx, r.db).ExecContext(ctx,
		`UPDATE customers SET name = ?, phone = ?, notes = ? WHERE id = ?`,
		name, phone, n, id); err != nil {
		return model.Customer{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a customer record.
func (r *CustomerRepo) Delete(ctx context.Context, id uint64) error {
	res, err := run(ctx, r.db).ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// Count returns the total number of customers on record.
func (r *CustomerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := run(ctx, r.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n)
	return n, err
}
