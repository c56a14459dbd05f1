package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/iliyamo/workspace-booking/internal/clock"
	"github.com/iliyamo/workspace-booking/internal/model"
	"github.com/iliyamo/workspace-booking/internal/repository"
)

var testStart = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

// assertCostInvariant checks total == room + drinks on the stored row.
func assertCostInvariant(t *testing.T, f *fakeStore, bookingID uint64) {
	t.Helper()
	b := f.booking(bookingID)
	if b.TotalCostCents != b.RoomCostCents+b.DrinksCostCents {
		t.Fatalf("cost invariant broken: total=%d room=%d drinks=%d",
			b.TotalCostCents, b.RoomCostCents, b.DrinksCostCents)
	}
}

func TestBookingServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("open booking starts at zero cost", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		room := f.addRoom("Focus Room", 10000)
		cust := f.addCustomer("Ada")
		actor := f.addUser("reception")
		svc := NewBookingService(f, clock.NewFixed(testStart))

		detail, err := svc.Create(context.Background(), CreateBookingInput{
			RoomID:     room.ID,
			CustomerID: cust.ID,
			Type:       model.BookingTypeOpen,
			StartsAt:   testStart,
			ActorID:    actor.ID,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if detail.Status != model.BookingStatusActive {
			t.Fatalf("status = %q, want active", detail.Status)
		}
		if detail.EndsAt != nil {
			t.Fatalf("open booking has ends_at %v", detail.EndsAt)
		}
		if detail.RoomCostCents != 0 || detail.DrinksCostCents != 0 || detail.TotalCostCents != 0 {
			t.Fatalf("open booking starts with costs %d/%d/%d, want zeros",
				detail.RoomCostCents, detail.DrinksCostCents, detail.TotalCostCents)
		}
		if detail.Room.ID != room.ID || detail.Customer.ID != cust.ID || detail.User.ID != actor.ID {
			t.Fatalf("associations not populated: %+v", detail)
		}
		if got := f.room(room.ID).Status; got != model.RoomStatusOccupied {
			t.Fatalf("room status = %q, want occupied", got)
		}
		assertCostInvariant(t, f, detail.ID)
	})

	t.Run("fixed booking is billed up front", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		room := f.addRoom("Meeting Room", 5000)
		cust := f.addCustomer("Grace")
		actor := f.addUser("reception")
		svc := NewBookingService(f, clock.NewFixed(testStart))

		end := testStart.Add(time.Hour)
		detail, err := svc.Create(context.Background(), CreateBookingInput{
			RoomID:     room.ID,
			CustomerID: cust.ID,
			Type:       model.BookingTypeFixed,
			StartsAt:   testStart,
			EndsAt:     &end,
			ActorID:    actor.ID,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if detail.RoomCostCents != 5000 || detail.TotalCostCents != 5000 {
			t.Fatalf("fixed hour at 5000/h cost %d/%d, want 5000/5000",
				detail.RoomCostCents, detail.TotalCostCents)
		}
		if detail.EndsAt == nil || !detail.EndsAt.Equal(end) {
			t.Fatalf("ends_at = %v, want %v", detail.EndsAt, end)
		}
		assertCostInvariant(t, f, detail.ID)
	})

	t.Run("fixed booking requires an end time", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		room := f.addRoom("Meeting Room", 5000)
		cust := f.addCustomer("Grace")
		svc := NewBookingService(f, clock.NewFixed(testStart))

		_, err := svc.Create(context.Background(), CreateBookingInput{
			RoomID: room.ID, CustomerID: cust.ID,
			Type: model.BookingTypeFixed, StartsAt: testStart,
		})
		if !errors.Is(err, ErrEndTimeRequired) {
			t.Fatalf("err = %v, want ErrEndTimeRequired", err)
		}
		if f.bookingCount() != 0 {
			t.Fatalf("booking row created despite validation failure")
		}
	})

	t.Run("fixed booking end must follow start", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		room := f.addRoom("Meeting Room", 5000)
		cust := f.addCustomer("Grace")
		svc := NewBookingService(f, clock.NewFixed(testStart))

		end := testStart.Add(-time.Minute)
		_, err := svc.Create(context.Background(), CreateBookingInput{
			RoomID: room.ID, CustomerID: cust.ID,
			Type: model.BookingTypeFixed, StartsAt: testStart, EndsAt: &end,
		})
		if !errors.Is(err, ErrEndBeforeStart) {
			t.Fatalf("err = %v, want ErrEndBeforeStart", err)
		}
	})

	t.Run("unknown booking type is rejected", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		svc := NewBookingService(f, clock.NewFixed(testStart))
		_, err := svc.Create(context.Background(), CreateBookingInput{
			RoomID: 1, CustomerID: 1, Type: "weekly", StartsAt: testStart,
		})
		if !errors.Is(err, ErrInvalidBookingType) {
			t.Fatalf("err = %v, want ErrInvalidBookingType", err)
		}
	})

	t.Run("unknown room", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		cust := f.addCustomer("Grace")
		svc := NewBookingService(f, clock.NewFixed(testStart))
		_, err := svc.Create(context.Background(), CreateBookingInput{
			RoomID: 99, CustomerID: cust.ID,
			Type: model.BookingTypeOpen, StartsAt: testStart,
		})
		if !errors.Is(err, repository.ErrRoomNotFound) {
			t.Fatalf("err = %v, want ErrRoomNotFound", err)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		room := f.addRoom("Focus Room", 10000)
		svc := NewBookingService(f, clock.NewFixed(testStart))
		_, err := svc.Create(context.Background(), CreateBookingInput{
			RoomID: room.ID, CustomerID: 99,
			Type: model.BookingTypeOpen, StartsAt: testStart,
		})
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			t.Fatalf("err = %v, want ErrCustomerNotFound", err)
		}
	})

	t.Run("occupied room leaves no booking behind", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		room := f.addRoom("Focus Room", 10000)
		cust := f.addCustomer("Ada")
		actor := f.addUser("reception")
		svc := NewBookingService(f, clock.NewFixed(testStart))

		in := CreateBookingInput{
			RoomID: room.ID, CustomerID: cust.ID,
			Type: model.BookingTypeOpen, StartsAt: testStart, ActorID: actor.ID,
		}
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("first create: %v", err)
		}
		_, err := svc.Create(context.Background(), in)
		if !errors.Is(err, repository.ErrRoomOccupied) {
			t.Fatalf("err = %v, want ErrRoomOccupied", err)
		}
		if got := f.bookingCount(); got != 1 {
			t.Fatalf("booking count = %d, want 1", got)
		}
	})
}

// Concurrent creates on the same room: exactly one caller wins the
// reserve, everyone else gets ErrRoomOccupied and no booking row.
func TestBookingServiceCreateConcurrentSameRoom(t *testing.T) {
	t.Parallel()
	f := newFakeStore()
	room := f.addRoom("Focus Room", 10000)
	cust := f.addCustomer("Ada")
	actor := f.addUser("reception")
	svc := NewBookingService(f, clock.NewFixed(testStart))

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), CreateBookingInput{
				RoomID: room.ID, CustomerID: cust.ID,
				Type: model.BookingTypeOpen, StartsAt: testStart, ActorID: actor.ID,
			})
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, repository.ErrRoomOccupied):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || conflicts != callers-1 {
		t.Fatalf("wins=%d conflicts=%d, want 1/%d", wins, conflicts, callers-1)
	}
	if got := f.bookingCount(); got != 1 {
		t.Fatalf("booking count = %d, want 1", got)
	}
	if got := f.room(room.ID).Status; got != model.RoomStatusOccupied {
		t.Fatalf("room status = %q, want occupied", got)
	}
}

func TestBookingServiceAddDrinkOrder(t *testing.T) {
	t.Parallel()

	openBooking := func(t *testing.T, f *fakeStore, svc *BookingService) model.BookingDetail {
		t.Helper()
		room := f.addRoom("Focus Room", 10000)
		cust := f.addCustomer("Ada")
		actor := f.addUser("reception")
		b, err := svc.Create(context.Background(), CreateBookingInput{
			RoomID: room.ID, CustomerID: cust.ID,
			Type: model.BookingTypeOpen, StartsAt: testStart, ActorID: actor.ID,
		})
		if err != nil {
			t.Fatalf("create booking: %v", err)
		}
		return b
	}

	t.Run("orders accumulate into resummed drinks cost", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		svc := NewBookingService(f, clock.NewFixed(testStart))
		b := openBooking(t, f, svc)
		espresso := f.addDrink("Espresso", 1500)
		juice := f.addDrink("Orange Juice", 2000)

		first, err := svc.AddDrinkOrder(context.Background(), b.ID, espresso.ID, 2)
		if err != nil {
			t.Fatalf("add espresso: %v", err)
		}
		if first.TotalPriceCents != 3000 {
			t.Fatalf("line total = %d, want 3000", first.TotalPriceCents)
		}
		if _, err := svc.AddDrinkOrder(context.Background(), b.ID, juice.ID, 1); err != nil {
			t.Fatalf("add juice: %v", err)
		}

		got := f.booking(b.ID)
		if got.DrinksCostCents != 5000 || got.TotalCostCents != 5000 {
			t.Fatalf("costs = %d/%d, want 5000/5000", got.DrinksCostCents, got.TotalCostCents)
		}
		assertCostInvariant(t, f, b.ID)

		// Removing the juice line returns the cost exactly to the
		// prior value.
		detail, err := svc.Detail(context.Background(), b.ID)
		if err != nil {
			t.Fatalf("detail: %v", err)
		}
		var juiceOrderID uint64
		for _, o := range detail.DrinkOrders {
			if o.DrinkID == juice.ID {
				juiceOrderID = o.DrinkOrder.ID
			}
		}
		if err := svc.RemoveDrinkOrder(context.Background(), juiceOrderID); err != nil {
			t.Fatalf("remove: %v", err)
		}
		got = f.booking(b.ID)
		if got.DrinksCostCents != 3000 || got.TotalCostCents != 3000 {
			t.Fatalf("costs after remove = %d/%d, want 3000/3000", got.DrinksCostCents, got.TotalCostCents)
		}
		assertCostInvariant(t, f, b.ID)
	})

	t.Run("line price snapshots the unit price at order time", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		svc := NewBookingService(f, clock.NewFixed(testStart))
		b := openBooking(t, f, svc)
		espresso := f.addDrink("Espresso", 1500)

		if _, err := svc.AddDrinkOrder(context.Background(), b.ID, espresso.ID, 2); err != nil {
			t.Fatalf("add: %v", err)
		}
		// Raise the catalog price; the existing line keeps its total.
		f.mu.Lock()
		d := f.drinks[espresso.ID]
		d.PriceCents = 9900
		f.drinks[espresso.ID] = d
		f.mu.Unlock()

		if got := f.booking(b.ID).DrinksCostCents; got != 3000 {
			t.Fatalf("drinks cost = %d, want 3000 after price change", got)
		}
	})

	t.Run("resummation self-corrects a drifted stored cost", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		svc := NewBookingService(f, clock.NewFixed(testStart))
		b := openBooking(t, f, svc)
		espresso := f.addDrink("Espresso", 1500)

		if _, err := svc.AddDrinkOrder(context.Background(), b.ID, espresso.ID, 1); err != nil {
			t.Fatalf("add: %v", err)
		}
		f.corruptDrinksCost(b.ID, 77777)

		if _, err := svc.AddDrinkOrder(context.Background(), b.ID, espresso.ID, 1); err != nil {
			t.Fatalf("add after drift: %v", err)
		}
		got := f.booking(b.ID)
		if got.DrinksCostCents != 3000 {
			t.Fatalf("drinks cost = %d, want resummed 3000", got.DrinksCostCents)
		}
		assertCostInvariant(t, f, b.ID)
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		svc := NewBookingService(f, clock.NewFixed(testStart))
		b := openBooking(t, f, svc)
		espresso := f.addDrink("Espresso", 1500)

		for _, qty := range []int{0, -3} {
			if _, err := svc.AddDrinkOrder(context.Background(), b.ID, espresso.ID, qty); !errors.Is(err, ErrInvalidQuantity) {
				t.Fatalf("qty %d: err = %v, want ErrInvalidQuantity", qty, err)
			}
		}
		if f.orderCount() != 0 {
			t.Fatalf("order created despite invalid quantity")
		}
	})

	t.Run("unknown drink leaves costs untouched", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		svc := NewBookingService(f, clock.NewFixed(testStart))
		b := openBooking(t, f, svc)

		_, err := svc.AddDrinkOrder(context.Background(), b.ID, 99, 1)
		if !errors.Is(err, repository.ErrDrinkNotFound) {
			t.Fatalf("err = %v, want ErrDrinkNotFound", err)
		}
		if got := f.booking(b.ID).TotalCostCents; got != 0 {
			t.Fatalf("total = %d, want 0", got)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		svc := NewBookingService(f, clock.NewFixed(testStart))
		espresso := f.addDrink("Espresso", 1500)
		_, err := svc.AddDrinkOrder(context.Background(), 99, espresso.ID, 1)
		if !errors.Is(err, repository.ErrBookingNotFound) {
			t.Fatalf("err = %v, want ErrBookingNotFound", err)
		}
	})

	t.Run("completed booking is frozen", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		svc := NewBookingService(f, clock.NewFixed(testStart.Add(time.Hour)))
		b := openBooking(t, f, svc)
		espresso := f.addDrink("Espresso", 1500)
		if _, err := svc.AddDrinkOrder(context.Background(), b.ID, espresso.ID, 1); err != nil {
			t.Fatalf("add: %v", err)
		}
		if _, err := svc.End(context.Background(), b.ID); err != nil {
			t.Fatalf("end: %v", err)
		}
		before := f.booking(b.ID)

		if _, err := svc.AddDrinkOrder(context.Background(), b.ID, espresso.ID, 1); !errors.Is(err, ErrBookingCompleted) {
			t.Fatalf("add on completed: err = %v, want ErrBookingCompleted", err)
		}
		if after := f.booking(b.ID); after != before {
			t.Fatalf("completed booking changed: %+v -> %+v", before, after)
		}
		if f.orderCount() != 1 {
			t.Fatalf("order count = %d, want 1", f.orderCount())
		}
	})
}

func TestBookingServiceRemoveDrinkOrder(t *testing.T) {
	t.Parallel()

	t.Run("unknown order", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		svc := NewBookingService(f, clock.NewFixed(testStart))
		err := svc.RemoveDrinkOrder(context.Background(), 42)
		if !errors.Is(err, repository.ErrDrinkOrderNotFound) {
			t.Fatalf("err = %v, want ErrDrinkOrderNotFound", err)
		}
	})

	t.Run("completed parent booking rejects removal", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		room := f.addRoom("Focus Room", 10000)
		cust := f.addCustomer("Ada")
		actor := f.addUser("reception")
		espresso := f.addDrink("Espresso", 1500)
		svc := NewBookingService(f, clock.NewFixed(testStart.Add(30*time.Minute)))

		b, err := svc.Create(context.Background(), CreateBookingInput{
			RoomID: room.ID, CustomerID: cust.ID,
			Type: model.BookingTypeOpen, StartsAt: testStart, ActorID: actor.ID,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		order, err := svc.AddDrinkOrder(context.Background(), b.ID, espresso.ID, 1)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if _, err := svc.End(context.Background(), b.ID); err != nil {
			t.Fatalf("end: %v", err)
		}

		if err := svc.RemoveDrinkOrder(context.Background(), order.DrinkOrder.ID); !errors.Is(err, ErrBookingCompleted) {
			t.Fatalf("err = %v, want ErrBookingCompleted", err)
		}
		if f.orderCount() != 1 {
			t.Fatalf("order deleted from completed booking")
		}
	})
}

func TestBookingServiceEnd(t *testing.T) {
	t.Parallel()

	t.Run("open booking bills the elapsed time", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		room := f.addRoom("Focus Room", 10000)
		cust := f.addCustomer("Ada")
		actor := f.addUser("reception")
		endClock := testStart.Add(90 * time.Minute)
		svc := NewBookingService(f, clock.NewFixed(endClock))

		b, err := svc.Create(context.Background(), CreateBookingInput{
			RoomID: room.ID, CustomerID: cust.ID,
			Type: model.BookingTypeOpen, StartsAt: testStart, ActorID: actor.ID,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		detail, err := svc.End(context.Background(), b.ID)
		if err != nil {
			t.Fatalf("end: %v", err)
		}
		// 90 minutes at 10000/h prorates to 15000.
		if detail.RoomCostCents != 15000 || detail.TotalCostCents != 15000 {
			t.Fatalf("costs = %d/%d, want 15000/15000", detail.RoomCostCents, detail.TotalCostCents)
		}
		if detail.Status != model.BookingStatusCompleted {
			t.Fatalf("status = %q, want completed", detail.Status)
		}
		if detail.EndsAt == nil || !detail.EndsAt.Equal(endClock) {
			t.Fatalf("ends_at = %v, want %v", detail.EndsAt, endClock)
		}
		if got := f.room(room.ID).Status; got != model.RoomStatusAvailable {
			t.Fatalf("room status = %q, want available", got)
		}
		assertCostInvariant(t, f, b.ID)
	})

	t.Run("end folds drinks into the total", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		room := f.addRoom("Focus Room", 10000)
		cust := f.addCustomer("Ada")
		actor := f.addUser("reception")
		espresso := f.addDrink("Espresso", 1500)
		svc := NewBookingService(f, clock.NewFixed(testStart.Add(time.Hour)))

		b, err := svc.Create(context.Background(), CreateBookingInput{
			RoomID: room.ID, CustomerID: cust.ID,
			Type: model.BookingTypeOpen, StartsAt: testStart, ActorID: actor.ID,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := svc.AddDrinkOrder(context.Background(), b.ID, espresso.ID, 2); err != nil {
			t.Fatalf("add: %v", err)
		}
		detail, err := svc.End(context.Background(), b.ID)
		if err != nil {
			t.Fatalf("end: %v", err)
		}
		if detail.RoomCostCents != 10000 || detail.DrinksCostCents != 3000 || detail.TotalCostCents != 13000 {
			t.Fatalf("costs = %d/%d/%d, want 10000/3000/13000",
				detail.RoomCostCents, detail.DrinksCostCents, detail.TotalCostCents)
		}
	})

	t.Run("fixed booking is rebilled from actual elapsed time", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		room := f.addRoom("Meeting Room", 5000)
		cust := f.addCustomer("Grace")
		actor := f.addUser("reception")
		// Booked for one hour, stayed two.
		svc := NewBookingService(f, clock.NewFixed(testStart.Add(2*time.Hour)))

		scheduled := testStart.Add(time.Hour)
		b, err := svc.Create(context.Background(), CreateBookingInput{
			RoomID: room.ID, CustomerID: cust.ID,
			Type: model.BookingTypeFixed, StartsAt: testStart, EndsAt: &scheduled, ActorID: actor.ID,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if b.TotalCostCents != 5000 {
			t.Fatalf("up-front cost = %d, want 5000", b.TotalCostCents)
		}
		detail, err := svc.End(context.Background(), b.ID)
		if err != nil {
			t.Fatalf("end: %v", err)
		}
		if detail.RoomCostCents != 10000 || detail.TotalCostCents != 10000 {
			t.Fatalf("costs = %d/%d, want 10000/10000", detail.RoomCostCents, detail.TotalCostCents)
		}
		if detail.EndsAt == nil || !detail.EndsAt.Equal(testStart.Add(2*time.Hour)) {
			t.Fatalf("ends_at = %v, want actual departure", detail.EndsAt)
		}
	})

	t.Run("ending twice fails and changes nothing", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		room := f.addRoom("Focus Room", 10000)
		cust := f.addCustomer("Ada")
		actor := f.addUser("reception")
		svc := NewBookingService(f, clock.NewFixed(testStart.Add(time.Hour)))

		b, err := svc.Create(context.Background(), CreateBookingInput{
			RoomID: room.ID, CustomerID: cust.ID,
			Type: model.BookingTypeOpen, StartsAt: testStart, ActorID: actor.ID,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := svc.End(context.Background(), b.ID); err != nil {
			t.Fatalf("first end: %v", err)
		}
		before := f.booking(b.ID)

		_, err = svc.End(context.Background(), b.ID)
		if !errors.Is(err, ErrBookingAlreadyEnded) {
			t.Fatalf("err = %v, want ErrBookingAlreadyEnded", err)
		}
		if after := f.booking(b.ID); after != before {
			t.Fatalf("second end mutated the booking: %+v -> %+v", before, after)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		svc := NewBookingService(f, clock.NewFixed(testStart))
		_, err := svc.End(context.Background(), 7)
		if !errors.Is(err, repository.ErrBookingNotFound) {
			t.Fatalf("err = %v, want ErrBookingNotFound", err)
		}
	})
}

func TestProratedCost(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		rate    int64
		elapsed time.Duration
		want    int64
	}{
		{"zero elapsed", 10000, 0, 0},
		{"negative elapsed", 10000, -time.Minute, 0},
		{"exact hour", 10000, time.Hour, 10000},
		{"ninety minutes", 10000, 90 * time.Minute, 15000},
		{"two hours", 5000, 2 * time.Hour, 10000},
		{"one minute", 6000, time.Minute, 100},
		{"rounds to nearest cent", 100, 30 * time.Minute, 50},
		{"sub-cent rounds down", 1, 17 * time.Minute, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := proratedCost(tc.rate, tc.elapsed); got != tc.want {
				t.Fatalf("proratedCost(%d, %v) = %d, want %d", tc.rate, tc.elapsed, got, tc.want)
			}
		})
	}
}
