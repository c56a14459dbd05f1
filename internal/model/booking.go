package model

import "time"

// BookingType distinguishes how a booking is billed.  Open bookings
// have no predetermined end and are billed entirely on departure.
// Fixed bookings are given an end time and a cost estimate up front;
// the estimate is still overwritten with the actual elapsed-time cost
// when the booking ends.
type BookingType string

const (
	BookingTypeOpen  BookingType = "open"
	BookingTypeFixed BookingType = "fixed"
)

// BookingStatus is the lifecycle state of a booking.  The only legal
// transition is active -> completed; a completed booking is frozen.
type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking reserves a room for a customer over a span of time.  Costs
// are held in integer cents and obey the invariant
// TotalCostCents == RoomCostCents + DrinksCostCents after every
// mutation.  EndsAt is NULL exactly while an open booking is active;
// fixed bookings receive their end time at creation.
type Booking struct {
	ID              uint64        `json:"id"`                // bookings.id
	Type            BookingType   `json:"type"`              // bookings.type
	Status          BookingStatus `json:"status"`            // bookings.status
	StartsAt        time.Time     `json:"starts_at"`         // bookings.starts_at
	EndsAt          *time.Time    `json:"ends_at"`           // bookings.ends_at (nullable)
	RoomCostCents   int64         `json:"room_cost_cents"`   // bookings.room_cost_cents
	DrinksCostCents int64         `json:"drinks_cost_cents"` // bookings.drinks_cost_cents
	TotalCostCents  int64         `json:"total_cost_cents"`  // bookings.total_cost_cents
	RoomID          uint64        `json:"room_id"`           // bookings.room_id
	CustomerID      uint64        `json:"customer_id"`       // bookings.customer_id
	UserID          uint64        `json:"user_id"`           // bookings.user_id (creating actor)
	CreatedAt       time.Time     `json:"created_at"`        // bookings.created_at
	UpdatedAt       time.Time     `json:"updated_at"`        // bookings.updated_at
}

// DrinkOrder is one line item of a drink purchase attached to a
// booking.  TotalPriceCents snapshots quantity times the drink's unit
// price at order time.  Orders are never updated in place; a quantity
// change is a delete followed by a new order.
type DrinkOrder struct {
	ID              uint64    `json:"id"`                // drink_orders.id
	BookingID       uint64    `json:"booking_id"`        // drink_orders.booking_id
	DrinkID         uint64    `json:"drink_id"`          // drink_orders.drink_id
	Quantity        int       `json:"quantity"`          // drink_orders.quantity
	TotalPriceCents int64     `json:"total_price_cents"` // drink_orders.total_price_cents
	CreatedAt       time.Time `json:"created_at"`        // drink_orders.created_at
}

// UserRef is the slim actor view embedded in booking responses.
type UserRef struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// DrinkOrderDetail pairs an order with the drink it was sold from.
type DrinkOrderDetail struct {
	DrinkOrder
	Drink Drink `json:"drink"`
}

// BookingDetail is a booking together with its room, customer,
// creating actor and drink orders, as rendered to API clients.
type BookingDetail struct {
	Booking
	Room        Room               `json:"room"`
	Customer    Customer           `json:"customer"`
	User        UserRef            `json:"user"`
	DrinkOrders []DrinkOrderDetail `json:"drink_orders"`
}

// BookingSummary is the lighter shape used by the daily report: the
// booking plus the room and customer it belongs to.
type BookingSummary struct {
	Booking
	Room     Room     `json:"room"`
	Customer Customer `json:"customer"`
}
