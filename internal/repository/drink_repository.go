package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/workspace-booking/internal/model"
)

// DrinkRepo mirrors the 'drinks' table.  Price edits here never touch
// drink_orders: orders snapshot the price at the moment of sale.
type DrinkRepo struct{ db *sql.DB }

func NewDrinkRepo(db *sql.DB) *DrinkRepo { return &DrinkRepo{db: db} }

const drinkColumns = `id, name, price_cents, is_available, created_at, updated_at`

// Create inserts a drink and returns the stored record.
func (r *DrinkRepo) Create(ctx context.Context, d *model.Drink) error {
	res, err := run(ctx, r.db).ExecContext(ctx,
		`INSERT INTO drinks (name, price_cents, is_available) VALUES (?, ?, ?)`,
		d.Name, d.PriceCents, d.IsAvailable)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)
	created, err := r.GetByID(ctx, d.ID)
	if err != nil {
		return err
	}
	*d = created
	return nil
}

// GetByID fetches a drink by id.
func (r *DrinkRepo) GetByID(ctx context.Context, id uint64) (model.Drink, error) {
	var d model.Drink
	err := run(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+drinkColumns+` FROM drinks WHERE id = ?`, id).
		Scan(&d.ID, &d.Name, &d.PriceCents, &d.IsAvailable, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Drink{}, ErrDrinkNotFound
	}
	return d, err
}

// List returns the catalog ordered by name.
func (r *DrinkRepo) List(ctx context.Context) ([]model.Drink, error) {
	rows, err := run(ctx, r.db).QueryContext(ctx,
		`SELECT `+drinkColumns+` FROM drinks ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Drink, 0)
	for rows.Next() {
		var d model.Drink
		if err := rows.Scan(&d.ID, &d.Name, &d.PriceCents, &d.IsAvailable, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Update rewrites name, price and availability.
func (r *DrinkRepo) Update(ctx context.Context, id uint64, name string, priceCents int64, isAvailable bool) (model.Drink, error) {
	if _, err := run(ctx, r.db).ExecContext(ctx,
		`UPDATE drinks SET name = ?, price_cents = ?, is_available = ? WHERE id = ?`,
		name, priceCents, isAvailable, id); err != nil {
		return model.Drink{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a drink from the catalog.
func (r *DrinkRepo) Delete(ctx context.Context, id uint64) error {
	res, err := run(ctx, r.db).ExecContext(ctx, `DELETE FROM drinks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrDrinkNotFound
	}
	return nil
}
