// Package repository implements the persistence layer over MySQL.
// Sentinel errors defined here let handlers and services distinguish
// failure scenarios without inspecting driver errors: not-found
// sentinels map to HTTP 404, conflict sentinels to HTTP 409.
package repository

import "errors"

// ErrRoomNotFound is returned when a room ID does not exist.
var ErrRoomNotFound = errors.New("room not found")

// ErrCustomerNotFound is returned when a customer ID does not exist.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrDrinkNotFound is returned when a drink ID does not exist.
var ErrDrinkNotFound = errors.New("drink not found")

// ErrBookingNotFound is returned when a booking ID does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrDrinkOrderNotFound is returned when a drink order ID does not exist.
var ErrDrinkOrderNotFound = errors.New("drink order not found")

// ErrRoomOccupied signals that a reservation attempt lost the race for
// a room: the conditional status flip matched no available row.  Exactly
// one of any set of concurrent reservation attempts can avoid this error.
var ErrRoomOccupied = errors.New("room is currently occupied")

// ErrRoomHasActiveBooking is returned when deleting a room that an
// active booking still references.  Handlers translate this into an
// HTTP 409 response.
var ErrRoomHasActiveBooking = errors.New("room has an active booking")
