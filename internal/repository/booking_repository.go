package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/workspace-booking/internal/model"
)

// BookingRepo provides persistence for bookings and assembles the
// detail shapes (booking + room + customer + actor + drink orders)
// returned to API clients.  Cost columns are written only through
// UpdateCosts and Complete so every write keeps the
// total == room + drinks invariant.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, type, status, starts_at, ends_at,
	room_cost_cents, drinks_cost_cents, total_cost_cents,
	room_id, customer_id, user_id, created_at, updated_at`

func scanBookingRow(scan func(dest ...any) error) (model.Booking, error) {
	var b model.Booking
	var endsAt sql.NullTime
	err := scan(&b.ID, &b.Type, &b.Status, &b.StartsAt, &endsAt,
		&b.RoomCostCents, &b.DrinksCostCents, &b.TotalCostCents,
		&b.RoomID, &b.CustomerID, &b.UserID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return model.Booking{}, err
	}
	if endsAt.Valid {
		t := endsAt.Time
		b.EndsAt = &t
	}
	return b, nil
}

// Create inserts a new booking and populates the generated ID and the
// database-assigned timestamps on the provided record.  The caller is
// responsible for reserving the room inside the same transaction.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	var endsAt any
	if b.EndsAt != nil {
		endsAt = *b.EndsAt
	}
	res, err := run(ctx, r.db).ExecContext(ctx,
		`INSERT INTO bookings
		 (type, status, starts_at, ends_at, room_cost_cents, drinks_cost_cents, total_cost_cents, room_id, customer_id, user_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.Type, model.BookingStatusActive, b.StartsAt, endsAt,
		b.RoomCostCents, b.DrinksCostCents, b.TotalCostCents,
		b.RoomID, b.CustomerID, b.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	created, err := r.GetByID(ctx, b.ID)
	if err != nil {
		return err
	}
	*b = created
	return nil
}

// GetByID fetches a booking.  ErrBookingNotFound is returned when no
// such row exists.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	row := run(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
	b, err := scanBookingRow(row.Scan)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, err
}

// GetForUpdate fetches a booking while taking a row lock.  It must run
// inside a transaction; the lock serializes concurrent drink-order
// mutations and termination on the same booking so cost resummation
// always sees a consistent snapshot of orders.
func (r *BookingRepo) GetForUpdate(ctx context.Context, id uint64) (model.Booking, error) {
	row := run(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ? FOR UPDATE`, id)
	b, err := scanBookingRow(row.Scan)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, err
}

// UpdateCosts writes a freshly resummed drinks cost together with the
// matching total.  Room cost is untouched while a booking is active.
func (r *BookingRepo) UpdateCosts(ctx context.Context, id uint64, drinksCostCents, totalCostCents int64) error {
	_, err := run(ctx, r.db).ExecContext(ctx,
		`UPDATE bookings SET drinks_cost_cents = ?, total_cost_cents = ? WHERE id = ?`,
		drinksCostCents, totalCostCents, id)
	return err
}

// Complete finalizes a booking: end time, all three cost columns and
// the completed status land in one statement.
func (r *BookingRepo) Complete(ctx context.Context, id uint64, endsAt time.Time, roomCostCents, drinksCostCents, totalCostCents int64) error {
	_, err := run(ctx, r.db).ExecContext(ctx,
		`UPDATE bookings
		 SET status = ?, ends_at = ?, room_cost_cents = ?, drinks_cost_cents = ?, total_cost_cents = ?
		 WHERE id = ?`,
		model.BookingStatusCompleted, endsAt, roomCostCents, drinksCostCents, totalCostCents, id)
	return err
}

// CountByStatus counts bookings in the given status.
func (r *BookingRepo) CountByStatus(ctx context.Context, status model.BookingStatus) (int64, error) {
	var n int64
	err := run(ctx, r.db).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE status = ?`, status).Scan(&n)
	return n, err
}

const bookingDetailQuery = `SELECT b.id, b.type, b.status, b.starts_at, b.ends_at,
	       b.room_cost_cents, b.drinks_cost_cents, b.total_cost_cents,
	       b.room_id, b.customer_id, b.user_id, b.created_at, b.updated_at,
	       r.id, r.name, r.hourly_rate_cents, r.status, r.created_at, r.updated_at,
	       c.id, c.name, c.phone, c.notes, c.created_at,
	       u.id, u.name
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	JOIN customers c ON c.id = b.customer_id
	JOIN users u ON u.id = b.user_id`

func scanBookingDetail(scan func(dest ...any) error) (model.BookingDetail, error) {
	var d model.BookingDetail
	var endsAt sql.NullTime
	var notes sql.NullString
	err := scan(
		&d.ID, &d.Type, &d.Status, &d.StartsAt, &endsAt,
		&d.RoomCostCents, &d.DrinksCostCents, &d.TotalCostCents,
		&d.RoomID, &d.CustomerID, &d.UserID, &d.CreatedAt, &d.UpdatedAt,
		&d.Room.ID, &d.Room.Name, &d.Room.HourlyRateCents, &d.Room.Status, &d.Room.CreatedAt, &d.Room.UpdatedAt,
		&d.Customer.ID, &d.Customer.Name, &d.Customer.Phone, &notes, &d.Customer.CreatedAt,
		&d.User.ID, &d.User.Name,
	)
	if err != nil {
		return model.BookingDetail{}, err
	}
	if endsAt.Valid {
		t := endsAt.Time
		d.EndsAt = &t
	}
	if notes.Valid {
		n := notes.String
		d.Customer.Notes = &n
	}
	d.DrinkOrders = []model.DrinkOrderDetail{}
	return d, nil
}

// Detail returns one booking with its room, customer, creating actor
// and drink orders (each order carrying its drink).  It is the shape
// handed back by create, end and the single-booking endpoint.
func (r *BookingRepo) Detail(ctx context.Context, id uint64) (model.BookingDetail, error) {
	row := run(ctx, r.db).QueryRowContext(ctx, bookingDetailQuery+` WHERE b.id = ?`, id)
	d, err := scanBookingDetail(row.Scan)
	if err == sql.ErrNoRows {
		return model.BookingDetail{}, ErrBookingNotFound
	}
	if err != nil {
		return model.BookingDetail{}, err
	}
	orders, err := r.ordersForBookings(ctx, []uint64{d.ID})
	if err != nil {
		return model.BookingDetail{}, err
	}
	d.DrinkOrders = orders[d.ID]
	if d.DrinkOrders == nil {
		d.DrinkOrders = []model.DrinkOrderDetail{}
	}
	return d, nil
}

// ListDetails returns bookings with associations, newest first.  An
// empty status lists everything.
func (r *BookingRepo) ListDetails(ctx context.Context, status model.BookingStatus) ([]model.BookingDetail, error) {
	q := bookingDetailQuery
	args := []any{}
	if status != "" {
		q += ` WHERE b.status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY b.created_at DESC`
	rows, err := run(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]model.BookingDetail, 0)
	for rows.Next() {
		d, err := scanBookingDetail(rows.Scan)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return details, nil
	}
	ids := make([]uint64, 0, len(details))
	for _, d := range details {
		ids = append(ids, d.ID)
	}
	orders, err := r.ordersForBookings(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range details {
		if o := orders[details[i].ID]; o != nil {
			details[i].DrinkOrders = o
		}
	}
	return details, nil
}

// CompletedBetween returns completed bookings whose end time falls in
// [from, to), with room and customer attached, most recently ended
// first.  It backs the daily report.
func (r *BookingRepo) CompletedBetween(ctx context.Context, from, to time.Time) ([]model.BookingSummary, error) {
	const q = `SELECT b.id, b.type, b.status, b.starts_at, b.ends_at,
	       b.room_cost_cents, b.drinks_cost_cents, b.total_cost_cents,
	       b.room_id, b.customer_id, b.user_id, b.created_at, b.updated_at,
	       r.id, r.name, r.hourly_rate_cents, r.status, r.created_at, r.updated_at,
	       c.id, c.name, c.phone, c.notes, c.created_at
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	JOIN customers c ON c.id = b.customer_id
	WHERE b.status = ? AND b.ends_at >= ? AND b.ends_at < ?
	ORDER BY b.ends_at DESC`
	rows, err := run(ctx, r.db).QueryContext(ctx, q, model.BookingStatusCompleted, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.BookingSummary, 0)
	for rows.Next() {
		var s model.BookingSummary
		var endsAt sql.NullTime
		var notes sql.NullString
		if err := rows.Scan(
			&s.ID, &s.Type, &s.Status, &s.StartsAt, &endsAt,
			&s.RoomCostCents, &s.DrinksCostCents, &s.TotalCostCents,
			&s.RoomID, &s.CustomerID, &s.UserID, &s.CreatedAt, &s.UpdatedAt,
			&s.Room.ID, &s.Room.Name, &s.Room.HourlyRateCents, &s.Room.Status, &s.Room.CreatedAt, &s.Room.UpdatedAt,
			&s.Customer.ID, &s.Customer.Name, &s.Customer.Phone, &notes, &s.Customer.CreatedAt,
		); err != nil {
			return nil, err
		}
		if endsAt.Valid {
			t := endsAt.Time
			s.EndsAt = &t
		}
		if notes.Valid {
			n := notes.String
			s.Customer.Notes = &n
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ordersForBookings loads the drink orders (with drinks) for a set of
// bookings in a single query, keyed by booking ID.
func (r *BookingRepo) ordersForBookings(ctx context.Context, ids []uint64) (map[uint64][]model.DrinkOrderDetail, error) {
	if len(ids) == 0 {
		return map[uint64][]model.DrinkOrderDetail{}, nil
	}
	placeholders := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		placeholders = append(placeholders, "?")
		args = append(args, id)
	}
	q := `SELECT o.id, o.booking_id, o.drink_id, o.quantity, o.total_price_cents, o.created_at,
	       d.id, d.name, d.price_cents, d.is_available, d.created_at, d.updated_at
	FROM drink_orders o
	JOIN drinks d ON d.id = o.drink_id
	WHERE o.booking_id IN (` + strings.Join(placeholders, ",") + `)
	ORDER BY o.booking_id, o.created_at, o.id`
	rows, err := run(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[uint64][]model.DrinkOrderDetail)
	for rows.Next() {
		var od model.DrinkOrderDetail
		if err := rows.Scan(
			&od.ID, &od.BookingID, &od.DrinkID, &od.Quantity, &od.TotalPriceCents, &od.CreatedAt,
			&od.Drink.ID, &od.Drink.Name, &od.Drink.PriceCents, &od.Drink.IsAvailable, &od.Drink.CreatedAt, &od.Drink.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out[od.BookingID] = append(out[od.BookingID], od)
	}
	return out, rows.Err()
}
