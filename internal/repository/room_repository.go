package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/workspace-booking/internal/model"
)

// RoomRepo provides CRUD operations for rooms plus the occupancy flip
// used by the booking lifecycle.  All timestamp fields are stored in
// UTC by the database.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomColumns = `id, name, hourly_rate_cents, status, created_at, updated_at`

func scanRoom(row *sql.Row) (model.Room, error) {
	var rm model.Room
	err := row.Scan(&rm.ID, &rm.Name, &rm.HourlyRateCents, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Room{}, ErrRoomNotFound
	}
	return rm, err
}

// Create inserts a room and populates the generated ID and timestamps
// on the provided record.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
	res, err := run(ctx, r.db).ExecContext(ctx,
		`INSERT INTO rooms (name, hourly_rate_cents, status) VALUES (?, ?, ?)`,
		rm.Name, rm.HourlyRateCents, model.RoomStatusAvailable)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rm.ID = uint64(id)
	created, err := r.GetByID(ctx, rm.ID)
	if err != nil {
		return err
	}
	*rm = created
	return nil
}

// GetByID fetches a single room.  ErrRoomNotFound is returned when no
// such row exists.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	return scanRoom(run(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id))
}

// List returns all rooms ordered by name for stable display.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := run(ctx, r.db).QueryContext(ctx,
		`SELECT `+roomColumns+` FROM rooms ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Room, 0)
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.HourlyRateCents, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

// Update rewrites the administrative fields (name, hourly rate).  The
// occupancy status is owned by Reserve/Release and is not touched here.
func (r *RoomRepo) Update(ctx context.Context, id uint64, name string, hourlyRateCents int64) (model.Room, error) {
	res, err := run(ctx, r.db).ExecContext(ctx,
		`UPDATE rooms SET name = ?, hourly_rate_cents = ? WHERE id = ?`,
		name, hourlyRateCents, id)
	if err != nil {
		return model.Room{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return model.Room{}, err
	} else if n == 0 {
		// MySQL also reports zero rows for a no-op update, so confirm
		// existence before deciding this is a miss.
		if _, err := r.GetByID(ctx, id); err != nil {
			return model.Room{}, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a room unless an active booking still references it.
// The guard runs in the same statement so the check and the delete
// cannot interleave with a concurrent booking creation.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	res, err := run(ctx, r.db).ExecContext(ctx,
		`DELETE FROM rooms
		 WHERE id = ?
		   AND NOT EXISTS (SELECT 1 FROM bookings b WHERE b.room_id = ? AND b.status = ?)`,
		id, id, model.BookingStatusActive)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrRoomHasActiveBooking
	}
	return nil
}

// Reserve flips an available room to occupied.  The check-and-flip is
// a single conditional UPDATE so that of any number of concurrent
// reservation attempts exactly one succeeds; the rest observe zero
// affected rows and receive ErrRoomOccupied (or ErrRoomNotFound when
// the id is bogus).
func (r *RoomRepo) Reserve(ctx context.Context, id uint64) error {
	res, err := run(ctx, r.db).ExecContext(ctx,
		`UPDATE rooms SET status = ? WHERE id = ? AND status = ?`,
		model.RoomStatusOccupied, id, model.RoomStatusAvailable)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrRoomOccupied
	}
	return nil
}

// Release marks a room available.  It is unconditional and idempotent:
// releasing an already-available room is a no-op, not an error.
func (r *RoomRepo) Release(ctx context.Context, id uint64) error {
	_, err := run(ctx, r.db).ExecContext(ctx,
		`UPDATE rooms SET status = ? WHERE id = ?`,
		model.RoomStatusAvailable, id)
	return err
}

// StatusCounts returns how many rooms are available and occupied.
func (r *RoomRepo) StatusCounts(ctx context.Context) (available, occupied int64, err error) {
	rows, err := run(ctx, r.db).QueryContext(ctx,
		`SELECT status, COUNT(*) FROM rooms GROUP BY status`)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()
	for rows.Next() {
		var status model.RoomStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return 0, 0, err
		}
		switch status {
		case model.RoomStatusAvailable:
			available = n
		case model.RoomStatusOccupied:
			occupied = n
		}
	}
	return available, occupied, rows.Err()
}
