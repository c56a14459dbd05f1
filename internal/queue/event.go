// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCompletedEvent is published when a booking is ended and billed.
// It carries enough information for downstream consumers to log, notify,
// or feed analytics without querying the primary database.
type BookingCompletedEvent struct {
	BookingID       uint64 `json:"booking_id"`
	Type            string `json:"type"`
	RoomID          uint64 `json:"room_id"`
	RoomName        string `json:"room_name"`
	CustomerID      uint64 `json:"customer_id"`
	CustomerName    string `json:"customer_name"`
	UserID          uint64 `json:"user_id"`
	StartsAt        string `json:"starts_at"`
	EndsAt          string `json:"ends_at"`
	DrinkCount      int    `json:"drink_count"`
	RoomCostCents   int64  `json:"room_cost_cents"`
	DrinksCostCents int64  `json:"drinks_cost_cents"`
	TotalCostCents  int64  `json:"total_cost_cents"`
	CompletedAt     string `json:"completed_at"`
}
