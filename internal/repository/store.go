package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/workspace-booking/internal/model"
)

// Store bundles the per-entity repositories behind the narrow surface
// the booking and report services program against.  It satisfies
// service.Store and service.ReportStore, so the services never see
// database/sql directly and can be tested against an in-memory fake.
type Store struct {
	db        *sql.DB
	Rooms     *RoomRepo
	Customers *CustomerRepo
	Drinks    *DrinkRepo
	Bookings  *BookingRepo
	Orders    *DrinkOrderRepo
}

// NewStore constructs a Store and its repositories over one pool.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:        db,
		Rooms:     NewRoomRepo(db),
		Customers: NewCustomerRepo(db),
		Drinks:    NewDrinkRepo(db),
		Bookings:  NewBookingRepo(db),
		Orders:    NewDrinkOrderRepo(db),
	}
}

// WithTx runs fn inside a single transaction; every store call made
// with the derived context joins it.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, s.db, fn)
}

func (s *Store) RoomByID(ctx context.Context, id uint64) (model.Room, error) {
	return s.Rooms.GetByID(ctx, id)
}

func (s *Store) ReserveRoom(ctx context.Context, id uint64) error {
	return s.Rooms.Reserve(ctx, id)
}

func (s *Store) ReleaseRoom(ctx context.Context, id uint64) error {
	return s.Rooms.Release(ctx, id)
}

func (s *Store) CustomerByID(ctx context.Context, id uint64) (model.Customer, error) {
	return s.Customers.GetByID(ctx, id)
}

func (s *Store) DrinkByID(ctx context.Context, id uint64) (model.Drink, error) {
	return s.Drinks.GetByID(ctx, id)
}

func (s *Store) CreateBooking(ctx context.Context, b *model.Booking) error {
	return s.Bookings.Create(ctx, b)
}

func (s *Store) BookingForUpdate(ctx context.Context, id uint64) (model.Booking, error) {
	return s.Bookings.GetForUpdate(ctx, id)
}

func (s *Store) BookingDetail(ctx context.Context, id uint64) (model.BookingDetail, error) {
	return s.Bookings.Detail(ctx, id)
}

func (s *Store) UpdateBookingCosts(ctx context.Context, id uint64, drinksCostCents, totalCostCents int64) error {
	return s.Bookings.UpdateCosts(ctx, id, drinksCostCents, totalCostCents)
}

func (s *Store) CompleteBooking(ctx context.Context, id uint64, endsAt time.Time, roomCostCents, drinksCostCents, totalCostCents int64) error {
	return s.Bookings.Complete(ctx, id, endsAt, roomCostCents, drinksCostCents, totalCostCents)
}

func (s *Store) CreateDrinkOrder(ctx context.Context, o *model.DrinkOrder) error {
	return s.Orders.Create(ctx, o)
}

func (s *Store) DrinkOrderByID(ctx context.Context, id uint64) (model.DrinkOrder, error) {
	return s.Orders.GetByID(ctx, id)
}

func (s *Store) DeleteDrinkOrder(ctx context.Context, id uint64) error {
	return s.Orders.Delete(ctx, id)
}

func (s *Store) SumDrinkOrders(ctx context.Context, bookingID uint64) (int64, error) {
	return s.Orders.SumForBooking(ctx, bookingID)
}

func (s *Store) RoomStatusCounts(ctx context.Context) (available, occupied int64, err error) {
	return s.Rooms.StatusCounts(ctx)
}

func (s *Store) CountActiveBookings(ctx context.Context) (int64, error) {
	return s.Bookings.CountByStatus(ctx, model.BookingStatusActive)
}

func (s *Store) CompletedBookingsBetween(ctx context.Context, from, to time.Time) ([]model.BookingSummary, error) {
	return s.Bookings.CompletedBetween(ctx, from, to)
}

func (s *Store) CountCustomers(ctx context.Context) (int64, error) {
	return s.Customers.Count(ctx)
}
