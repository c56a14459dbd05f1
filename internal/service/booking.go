// Package service holds the booking lifecycle and reporting logic.
// Services speak to persistence through narrow interfaces so the
// domain rules are unit-testable against an in-memory store.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/workspace-booking/internal/clock"
	"github.com/iliyamo/workspace-booking/internal/model"
)

// ErrBookingCompleted is returned when a drink order is added to or
// removed from a booking that has already ended.  The message is shown
// to end users verbatim.
var ErrBookingCompleted = errors.New("cannot modify a completed booking")

// ErrBookingAlreadyEnded is returned by End on a completed booking.
var ErrBookingAlreadyEnded = errors.New("booking already completed")

// ErrInvalidBookingType is returned when the type is neither open nor fixed.
var ErrInvalidBookingType = errors.New("booking type must be open or fixed")

// ErrEndTimeRequired is returned when a fixed booking is created
// without an end time.
var ErrEndTimeRequired = errors.New("fixed bookings require an end time")

// ErrEndBeforeStart is returned when a fixed booking's end time does
// not come after its start time.
var ErrEndBeforeStart = errors.New("end time must be after start time")

// ErrInvalidQuantity is returned when a drink order quantity is not a
// positive number.
var ErrInvalidQuantity = errors.New("quantity must be a positive number")

// Store is the persistence surface the booking lifecycle needs: plain
// record CRUD, an atomic conditional room reserve, and a transactional
// boundary.  WithTx must guarantee that every call made with the
// derived context either all commit or all roll back, and that
// BookingForUpdate serializes concurrent mutations of one booking.
type Store interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	RoomByID(ctx context.Context, id uint64) (model.Room, error)
	ReserveRoom(ctx context.Context, id uint64) error
	ReleaseRoom(ctx context.Context, id uint64) error

	CustomerByID(ctx context.Context, id uint64) (model.Customer, error)
	DrinkByID(ctx context.Context, id uint64) (model.Drink, error)

	CreateBooking(ctx context.Context, b *model.Booking) error
	BookingForUpdate(ctx context.Context, id uint64) (model.Booking, error)
	BookingDetail(ctx context.Context, id uint64) (model.BookingDetail, error)
	UpdateBookingCosts(ctx context.Context, id uint64, drinksCostCents, totalCostCents int64) error
	CompleteBooking(ctx context.Context, id uint64, endsAt time.Time, roomCostCents, drinksCostCents, totalCostCents int64) error

	CreateDrinkOrder(ctx context.Context, o *model.DrinkOrder) error
	DrinkOrderByID(ctx context.Context, id uint64) (model.DrinkOrder, error)
	DeleteDrinkOrder(ctx context.Context, id uint64) error
	SumDrinkOrders(ctx context.Context, bookingID uint64) (int64, error)
}

// BookingService owns the booking lifecycle: creation with room
// reservation, drink-order attachment with cost resummation, and
// termination with time-based billing.
type BookingService struct {
	store Store
	clock clock.Clock
}

// NewBookingService constructs the lifecycle service.
func NewBookingService(store Store, clk clock.Clock) *BookingService {
	return &BookingService{store: store, clock: clk}
}

// CreateBookingInput carries everything needed to open a booking.  The
// actor is resolved by the transport layer and passed in explicitly;
// the service never reads ambient request state.
type CreateBookingInput struct {
	RoomID     uint64
	CustomerID uint64
	Type       model.BookingType
	StartsAt   time.Time
	EndsAt     *time.Time
	ActorID    uint64
}

// Create opens a booking on an available room.  Fixed bookings must
// carry an end time and are billed up front from the scheduled span;
// open bookings start at zero cost and are billed on departure.  The
// room reserve and the booking insert share one transaction, so a
// booking can never exist without its room marked occupied.  Under
// concurrent creates on the same room, the conditional reserve admits
// exactly one winner; every other caller gets ErrRoomOccupied and no
// booking row.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (model.BookingDetail, error) {
	switch in.Type {
	case model.BookingTypeOpen, model.BookingTypeFixed:
	default:
		return model.BookingDetail{}, ErrInvalidBookingType
	}
	if in.Type == model.BookingTypeFixed {
		if in.EndsAt == nil {
			return model.BookingDetail{}, ErrEndTimeRequired
		}
		if !in.EndsAt.After(in.StartsAt) {
			return model.BookingDetail{}, ErrEndBeforeStart
		}
	}

	room, err := s.store.RoomByID(ctx, in.RoomID)
	if err != nil {
		return model.BookingDetail{}, err
	}
	if _, err := s.store.CustomerByID(ctx, in.CustomerID); err != nil {
		return model.BookingDetail{}, err
	}

	booking := model.Booking{
		Type:       in.Type,
		Status:     model.BookingStatusActive,
		StartsAt:   in.StartsAt,
		RoomID:     in.RoomID,
		CustomerID: in.CustomerID,
		UserID:     in.ActorID,
	}
	if in.Type == model.BookingTypeFixed {
		booking.EndsAt = in.EndsAt
		booking.RoomCostCents = proratedCost(room.HourlyRateCents, in.EndsAt.Sub(in.StartsAt))
		booking.TotalCostCents = booking.RoomCostCents
	}

	err = s.store.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.store.ReserveRoom(txCtx, in.RoomID); err != nil {
			return err
		}
		return s.store.CreateBooking(txCtx, &booking)
	})
	if err != nil {
		return model.BookingDetail{}, err
	}
	return s.store.BookingDetail(ctx, booking.ID)
}

// AddDrinkOrder attaches a drink line to an active booking.  The line
// price snapshots the drink's current unit price.  The booking's
// drinks cost is then resummed from all of its orders rather than
// incremented, which keeps the stored total self-correcting; the row
// lock taken on the booking serializes concurrent resums.
func (s *BookingService) AddDrinkOrder(ctx context.Context, bookingID, drinkID uint64, quantity int) (model.DrinkOrderDetail, error) {
	if quantity <= 0 {
		return model.DrinkOrderDetail{}, ErrInvalidQuantity
	}
	var detail model.DrinkOrderDetail
	err := s.store.WithTx(ctx, func(txCtx context.Context) error {
		booking, err := s.store.BookingForUpdate(txCtx, bookingID)
		if err != nil {
			return err
		}
		if booking.Status == model.BookingStatusCompleted {
			return ErrBookingCompleted
		}
		drink, err := s.store.DrinkByID(txCtx, drinkID)
		if err != nil {
			return err
		}
		order := model.DrinkOrder{
			BookingID:       bookingID,
			DrinkID:         drinkID,
			Quantity:        quantity,
			TotalPriceCents: int64(quantity) * drink.PriceCents,
		}
		if err := s.store.CreateDrinkOrder(txCtx, &order); err != nil {
			return err
		}
		if err := s.resumCosts(txCtx, booking); err != nil {
			return err
		}
		detail = model.DrinkOrderDetail{DrinkOrder: order, Drink: drink}
		return nil
	})
	if err != nil {
		return model.DrinkOrderDetail{}, err
	}
	return detail, nil
}

// RemoveDrinkOrder deletes a drink line from an active booking and
// resums the parent's costs.  Removing the only copy of a line returns
// the drinks cost exactly to its prior value.
func (s *BookingService) RemoveDrinkOrder(ctx context.Context, orderID uint64) error {
	return s.store.WithTx(ctx, func(txCtx context.Context) error {
		order, err := s.store.DrinkOrderByID(txCtx, orderID)
		if err != nil {
			return err
		}
		booking, err := s.store.BookingForUpdate(txCtx, order.BookingID)
		if err != nil {
			return err
		}
		if booking.Status == model.BookingStatusCompleted {
			return ErrBookingCompleted
		}
		if err := s.store.DeleteDrinkOrder(txCtx, orderID); err != nil {
			return err
		}
		return s.resumCosts(txCtx, booking)
	})
}

// End terminates an active booking: the end time is stamped from the
// clock, the room cost is recomputed from the actual elapsed time --
// for fixed bookings too, deliberately overwriting the up-front
// estimate -- the drinks cost is resummed, and the room is released.
// Ending an already-completed booking fails with
// ErrBookingAlreadyEnded and changes nothing.
func (s *BookingService) End(ctx context.Context, bookingID uint64) (model.BookingDetail, error) {
	err := s.store.WithTx(ctx, func(txCtx context.Context) error {
		booking, err := s.store.BookingForUpdate(txCtx, bookingID)
		if err != nil {
			return err
		}
		if booking.Status == model.BookingStatusCompleted {
			return ErrBookingAlreadyEnded
		}
		room, err := s.store.RoomByID(txCtx, booking.RoomID)
		if err != nil {
			return err
		}
		endsAt := s.clock.Now()
		roomCost := proratedCost(room.HourlyRateCents, endsAt.Sub(booking.StartsAt))
		drinksCost, err := s.store.SumDrinkOrders(txCtx, bookingID)
		if err != nil {
			return err
		}
		if err := s.store.CompleteBooking(txCtx, bookingID, endsAt, roomCost, drinksCost, roomCost+drinksCost); err != nil {
			return err
		}
		return s.store.ReleaseRoom(txCtx, booking.RoomID)
	})
	if err != nil {
		return model.BookingDetail{}, err
	}
	return s.store.BookingDetail(ctx, bookingID)
}

// Detail returns one booking with its associations.
func (s *BookingService) Detail(ctx context.Context, bookingID uint64) (model.BookingDetail, error) {
	return s.store.BookingDetail(ctx, bookingID)
}

// resumCosts recomputes the booking's drinks cost as the sum of all
// currently existing order lines and writes it together with the
// matching total.  Must run inside the caller's transaction, after
// BookingForUpdate has locked the row.
func (s *BookingService) resumCosts(ctx context.Context, booking model.Booking) error {
	drinksCost, err := s.store.SumDrinkOrders(ctx, booking.ID)
	if err != nil {
		return err
	}
	return s.store.UpdateBookingCosts(ctx, booking.ID, drinksCost, booking.RoomCostCents+drinksCost)
}

// proratedCost bills partial hours proportionally:
// cents = rate x elapsed/1h, rounded to the nearest cent.  A zero or
// negative span costs nothing.
func proratedCost(hourlyRateCents int64, elapsed time.Duration) int64 {
	if elapsed <= 0 {
		return 0
	}
	secs := int64(elapsed / time.Second)
	return (hourlyRateCents*secs + 1800) / 3600
}
