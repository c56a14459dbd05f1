package model

import "time"

// Drink is a sellable catalog item.  The availability flag only
// controls whether the item is offered for new orders in the UI;
// historical drink orders keep the price they were sold at, so
// catalog edits never rewrite past bookings.
type Drink struct {
	ID          uint64    `json:"id"`           // drinks.id
	Name        string    `json:"name"`         // drinks.name
	PriceCents  int64     `json:"price_cents"`  // drinks.price_cents
	IsAvailable bool      `json:"is_available"` // drinks.is_available
	CreatedAt   time.Time `json:"created_at"`   // drinks.created_at
	UpdatedAt   time.Time `json:"updated_at"`   // drinks.updated_at
}
