package model

import "time"

// Customer is a client identity record.  Customers carry no behavior
// of their own; bookings reference them by ID.  Notes is nullable
// free text for the front desk.
type Customer struct {
	ID        uint64    `json:"id"`              // customers.id
	Name      string    `json:"name"`            // customers.name
	Phone     string    `json:"phone"`           // customers.phone
	Notes     *string   `json:"notes,omitempty"` // customers.notes (nullable)
	CreatedAt time.Time `json:"created_at"`      // customers.created_at
}
