package model

import "time"

// RoomStatus tracks the occupancy of a bookable room.  A room is
// either free to book or currently held by exactly one active
// booking.  The lifecycle service flips this flag atomically when
// bookings are created and ended.
type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available" // free to book
	RoomStatusOccupied  RoomStatus = "occupied"  // held by an active booking
)

// Room is a bookable unit billed by the hour.  Rates are stored in
// integer cents to survive repeated cost resummation without drift.
// This struct corresponds to a row in the `rooms` table.
type Room struct {
	ID              uint64     `json:"id"`                // rooms.id
	Name            string     `json:"name"`              // rooms.name
	HourlyRateCents int64      `json:"hourly_rate_cents"` // rooms.hourly_rate_cents
	Status          RoomStatus `json:"status"`            // rooms.status
	CreatedAt       time.Time  `json:"created_at"`        // rooms.created_at
	UpdatedAt       time.Time  `json:"updated_at"`        // rooms.updated_at
}
