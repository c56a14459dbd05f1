package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/iliyamo/workspace-booking/internal/model"
	"github.com/iliyamo/workspace-booking/internal/repository"
)

// fakeStore is an in-memory Store/ReportStore used by the service
// tests.  Transactions are serialized by txMu and roll back by
// restoring a snapshot, which mirrors the two guarantees the real
// store provides: the conditional room reserve admits one winner, and
// mutations of one booking never interleave.
type fakeStore struct {
	mu   sync.Mutex
	txMu sync.Mutex

	rooms     map[uint64]model.Room
	customers map[uint64]model.Customer
	drinks    map[uint64]model.Drink
	bookings  map[uint64]model.Booking
	orders    map[uint64]model.DrinkOrder
	users     map[uint64]model.UserRef

	nextID uint64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:     map[uint64]model.Room{},
		customers: map[uint64]model.Customer{},
		drinks:    map[uint64]model.Drink{},
		bookings:  map[uint64]model.Booking{},
		orders:    map[uint64]model.DrinkOrder{},
		users:     map[uint64]model.UserRef{},
	}
}

func (f *fakeStore) id() uint64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) addRoom(name string, rateCents int64) model.Room {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := model.Room{ID: f.id(), Name: name, HourlyRateCents: rateCents, Status: model.RoomStatusAvailable}
	f.rooms[r.ID] = r
	return r
}

func (f *fakeStore) addCustomer(name string) model.Customer {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := model.Customer{ID: f.id(), Name: name, Phone: "555-0100"}
	f.customers[c.ID] = c
	return c
}

func (f *fakeStore) addDrink(name string, priceCents int64) model.Drink {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := model.Drink{ID: f.id(), Name: name, PriceCents: priceCents, IsAvailable: true}
	f.drinks[d.ID] = d
	return d
}

func (f *fakeStore) addUser(name string) model.UserRef {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := model.UserRef{ID: f.id(), Name: name}
	f.users[u.ID] = u
	return u
}

type fakeSnapshot struct {
	rooms    map[uint64]model.Room
	bookings map[uint64]model.Booking
	orders   map[uint64]model.DrinkOrder
	nextID   uint64
}

func (f *fakeStore) snapshot() fakeSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := fakeSnapshot{
		rooms:    make(map[uint64]model.Room, len(f.rooms)),
		bookings: make(map[uint64]model.Booking, len(f.bookings)),
		orders:   make(map[uint64]model.DrinkOrder, len(f.orders)),
		nextID:   f.nextID,
	}
	for k, v := range f.rooms {
		s.rooms[k] = v
	}
	for k, v := range f.bookings {
		s.bookings[k] = v
	}
	for k, v := range f.orders {
		s.orders[k] = v
	}
	return s
}

func (f *fakeStore) restore(s fakeSnapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rooms = s.rooms
	f.bookings = s.bookings
	f.orders = s.orders
	f.nextID = s.nextID
}

func (f *fakeStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()
	snap := f.snapshot()
	if err := fn(ctx); err != nil {
		f.restore(snap)
		return err
	}
	return nil
}

func (f *fakeStore) RoomByID(ctx context.Context, id uint64) (model.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[id]
	if !ok {
		return model.Room{}, repository.ErrRoomNotFound
	}
	return r, nil
}

func (f *fakeStore) ReserveRoom(ctx context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[id]
	if !ok {
		return repository.ErrRoomNotFound
	}
	if r.Status != model.RoomStatusAvailable {
		return repository.ErrRoomOccupied
	}
	r.Status = model.RoomStatusOccupied
	f.rooms[id] = r
	return nil
}

func (f *fakeStore) ReleaseRoom(ctx context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.rooms[id]; ok {
		r.Status = model.RoomStatusAvailable
		f.rooms[id] = r
	}
	return nil
}

func (f *fakeStore) CustomerByID(ctx context.Context, id uint64) (model.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[id]
	if !ok {
		return model.Customer{}, repository.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeStore) DrinkByID(ctx context.Context, id uint64) (model.Drink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drinks[id]
	if !ok {
		return model.Drink{}, repository.ErrDrinkNotFound
	}
	return d, nil
}

func (f *fakeStore) CreateBooking(ctx context.Context, b *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = f.id()
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeStore) BookingForUpdate(ctx context.Context, id uint64) (model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return model.Booking{}, repository.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeStore) BookingDetail(ctx context.Context, id uint64) (model.BookingDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return model.BookingDetail{}, repository.ErrBookingNotFound
	}
	d := model.BookingDetail{
		Booking:     b,
		Room:        f.rooms[b.RoomID],
		Customer:    f.customers[b.CustomerID],
		User:        f.users[b.UserID],
		DrinkOrders: []model.DrinkOrderDetail{},
	}
	for _, o := range f.orders {
		if o.BookingID == id {
			d.DrinkOrders = append(d.DrinkOrders, model.DrinkOrderDetail{DrinkOrder: o, Drink: f.drinks[o.DrinkID]})
		}
	}
	sort.Slice(d.DrinkOrders, func(i, j int) bool { return d.DrinkOrders[i].ID < d.DrinkOrders[j].ID })
	return d, nil
}

func (f *fakeStore) UpdateBookingCosts(ctx context.Context, id uint64, drinksCostCents, totalCostCents int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return repository.ErrBookingNotFound
	}
	b.DrinksCostCents = drinksCostCents
	b.TotalCostCents = totalCostCents
	f.bookings[id] = b
	return nil
}

func (f *fakeStore) CompleteBooking(ctx context.Context, id uint64, endsAt time.Time, roomCostCents, drinksCostCents, totalCostCents int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return repository.ErrBookingNotFound
	}
	b.Status = model.BookingStatusCompleted
	b.EndsAt = &endsAt
	b.RoomCostCents = roomCostCents
	b.DrinksCostCents = drinksCostCents
	b.TotalCostCents = totalCostCents
	f.bookings[id] = b
	return nil
}

func (f *fakeStore) CreateDrinkOrder(ctx context.Context, o *model.DrinkOrder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.ID = f.id()
	f.orders[o.ID] = *o
	return nil
}

func (f *fakeStore) DrinkOrderByID(ctx context.Context, id uint64) (model.DrinkOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return model.DrinkOrder{}, repository.ErrDrinkOrderNotFound
	}
	return o, nil
}

func (f *fakeStore) DeleteDrinkOrder(ctx context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[id]; !ok {
		return repository.ErrDrinkOrderNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeStore) SumDrinkOrders(ctx context.Context, bookingID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum int64
	for _, o := range f.orders {
		if o.BookingID == bookingID {
			sum += o.TotalPriceCents
		}
	}
	return sum, nil
}

func (f *fakeStore) RoomStatusCounts(ctx context.Context) (available, occupied int64, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rooms {
		switch r.Status {
		case model.RoomStatusAvailable:
			available++
		case model.RoomStatusOccupied:
			occupied++
		}
	}
	return available, occupied, nil
}

func (f *fakeStore) CountActiveBookings(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, b := range f.bookings {
		if b.Status == model.BookingStatusActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CompletedBookingsBetween(ctx context.Context, from, to time.Time) ([]model.BookingSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.BookingSummary, 0)
	for _, b := range f.bookings {
		if b.Status != model.BookingStatusCompleted || b.EndsAt == nil {
			continue
		}
		if b.EndsAt.Before(from) || !b.EndsAt.Before(to) {
			continue
		}
		out = append(out, model.BookingSummary{
			Booking:  b,
			Room:     f.rooms[b.RoomID],
			Customer: f.customers[b.CustomerID],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndsAt.After(*out[j].EndsAt) })
	return out, nil
}

func (f *fakeStore) CountCustomers(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.customers)), nil
}

// booking returns the raw stored booking for assertions.
func (f *fakeStore) booking(id uint64) model.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookings[id]
}

// room returns the raw stored room for assertions.
func (f *fakeStore) room(id uint64) model.Room {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rooms[id]
}

// bookingCount reports how many bookings exist.
func (f *fakeStore) bookingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

// orderCount reports how many drink orders exist.
func (f *fakeStore) orderCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

// corruptDrinksCost overwrites the stored drinks cost, simulating
// historical drift for the resummation tests.
func (f *fakeStore) corruptDrinksCost(id uint64, drinksCostCents int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.bookings[id]
	b.DrinksCostCents = drinksCostCents
	b.TotalCostCents = b.RoomCostCents + drinksCostCents + 1 // deliberately broken
	f.bookings[id] = b
}
