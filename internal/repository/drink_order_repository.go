package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/workspace-booking/internal/model"
)

// DrinkOrderRepo mirrors the 'drink_orders' table.  Orders are append
// and delete only; there is no update path.
type DrinkOrderRepo struct{ db *sql.DB }

func NewDrinkOrderRepo(db *sql.DB) *DrinkOrderRepo { return &DrinkOrderRepo{db: db} }

// Create inserts a drink order line.  TotalPriceCents must already be
// quantity times the drink's unit price; the lifecycle service owns
// that computation.
func (r *DrinkOrderRepo) Create(ctx context.Context, o *model.DrinkOrder) error {
	res, err := run(ctx, r.db).ExecContext(ctx,
		`INSERT INTO drink_orders (booking_id, drink_id, quantity, total_price_cents) VALUES (?, ?, ?, ?)`,
		o.BookingID, o.DrinkID, o.Quantity, o.TotalPriceCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	o.ID = uint64(id)
	created, err := r.GetByID(ctx, o.ID)
	if err != nil {
		return err
	}
	*o = created
	return nil
}

// GetByID fetches an order by id.
func (r *DrinkOrderRepo) GetByID(ctx context.Context, id uint64) (model.DrinkOrder, error) {
	var o model.DrinkOrder
	err := run(ctx, r.db).QueryRowContext(ctx,
		`SELECT id, booking_id, drink_id, quantity, total_price_cents, created_at
		 FROM drink_orders WHERE id = ?`, id).
		Scan(&o.ID, &o.BookingID, &o.DrinkID, &o.Quantity, &o.TotalPriceCents, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return model.DrinkOrder{}, ErrDrinkOrderNotFound
	}
	return o, err
}

// Delete removes an order line.
func (r *DrinkOrderRepo) Delete(ctx context.Context, id uint64) error {
	res, err := run(ctx, r.db).ExecContext(ctx, `DELETE FROM drink_orders WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrDrinkOrderNotFound
	}
	return nil
}

// SumForBooking resums the drinks cost of a booking from its current
// order lines.  The lifecycle service calls this after every add and
// remove instead of adjusting a running total, so any historical drift
// is corrected on the next mutation.
func (r *DrinkOrderRepo) SumForBooking(ctx context.Context, bookingID uint64) (int64, error) {
	var sum int64
	err := run(ctx, r.db).QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_price_cents), 0) FROM drink_orders WHERE booking_id = ?`,
		bookingID).Scan(&sum)
	return sum, err
}
