package service

import (
	"context"
	"testing"
	"time"

	"github.com/iliyamo/workspace-booking/internal/clock"
	"github.com/iliyamo/workspace-booking/internal/model"
)

func TestReportServiceDaily(t *testing.T) {
	t.Parallel()

	t.Run("empty day reports zero income", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		f.addRoom("Focus Room", 10000)
		f.addRoom("Meeting Room", 5000)
		svc := NewReportService(f, clock.NewFixed(testStart))

		report, err := svc.Daily(context.Background())
		if err != nil {
			t.Fatalf("daily: %v", err)
		}
		if report.Stats.TodayIncomeCents != 0 {
			t.Fatalf("income = %d, want 0", report.Stats.TodayIncomeCents)
		}
		if report.Stats.ActiveBookings != 0 || report.Stats.OccupiedRooms != 0 {
			t.Fatalf("stats = %+v, want no activity", report.Stats)
		}
		if report.Stats.AvailableRooms != 2 {
			t.Fatalf("available rooms = %d, want 2", report.Stats.AvailableRooms)
		}
		if report.TodayBookings == nil || len(report.TodayBookings) != 0 {
			t.Fatalf("today bookings = %#v, want empty non-nil slice", report.TodayBookings)
		}
	})

	t.Run("counts only the local day's completions", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		roomA := f.addRoom("Focus Room", 10000)
		roomB := f.addRoom("Meeting Room", 5000)
		cust := f.addCustomer("Ada")
		f.addCustomer("Grace")
		actor := f.addUser("reception")
		booking := NewBookingService(f, clock.NewFixed(testStart.Add(time.Hour)))

		// Completed yesterday: must not count toward today's income.
		yesterday := testStart.Add(-24 * time.Hour)
		old, err := NewBookingService(f, clock.NewFixed(yesterday.Add(time.Hour))).Create(
			context.Background(), CreateBookingInput{
				RoomID: roomB.ID, CustomerID: cust.ID,
				Type: model.BookingTypeOpen, StartsAt: yesterday, ActorID: actor.ID,
			})
		if err != nil {
			t.Fatalf("create old: %v", err)
		}
		if _, err := NewBookingService(f, clock.NewFixed(yesterday.Add(time.Hour))).End(
			context.Background(), old.ID); err != nil {
			t.Fatalf("end old: %v", err)
		}

		// Completed today for 10000, plus one still active.
		done, err := booking.Create(context.Background(), CreateBookingInput{
			RoomID: roomA.ID, CustomerID: cust.ID,
			Type: model.BookingTypeOpen, StartsAt: testStart, ActorID: actor.ID,
		})
		if err != nil {
			t.Fatalf("create today: %v", err)
		}
		if _, err := booking.End(context.Background(), done.ID); err != nil {
			t.Fatalf("end today: %v", err)
		}
		if _, err := booking.Create(context.Background(), CreateBookingInput{
			RoomID: roomB.ID, CustomerID: cust.ID,
			Type: model.BookingTypeOpen, StartsAt: testStart, ActorID: actor.ID,
		}); err != nil {
			t.Fatalf("create active: %v", err)
		}

		svc := NewReportService(f, clock.NewFixed(testStart.Add(2*time.Hour)))
		report, err := svc.Daily(context.Background())
		if err != nil {
			t.Fatalf("daily: %v", err)
		}
		if report.Stats.TodayIncomeCents != 10000 {
			t.Fatalf("income = %d, want 10000", report.Stats.TodayIncomeCents)
		}
		if report.Stats.ActiveBookings != 1 {
			t.Fatalf("active = %d, want 1", report.Stats.ActiveBookings)
		}
		if report.Stats.AvailableRooms != 1 || report.Stats.OccupiedRooms != 1 {
			t.Fatalf("rooms = %d/%d, want 1 available / 1 occupied",
				report.Stats.AvailableRooms, report.Stats.OccupiedRooms)
		}
		if report.Stats.TotalCustomers != 2 {
			t.Fatalf("customers = %d, want 2", report.Stats.TotalCustomers)
		}
		if len(report.TodayBookings) != 1 || report.TodayBookings[0].ID != done.ID {
			t.Fatalf("today bookings = %+v, want just the one completed today", report.TodayBookings)
		}
	})

	t.Run("newest completion comes first", func(t *testing.T) {
		t.Parallel()
		f := newFakeStore()
		roomA := f.addRoom("Focus Room", 10000)
		roomB := f.addRoom("Meeting Room", 5000)
		cust := f.addCustomer("Ada")
		actor := f.addUser("reception")

		endBooking := func(roomID uint64, start, end time.Time) uint64 {
			t.Helper()
			svc := NewBookingService(f, clock.NewFixed(end))
			b, err := svc.Create(context.Background(), CreateBookingInput{
				RoomID: roomID, CustomerID: cust.ID,
				Type: model.BookingTypeOpen, StartsAt: start, ActorID: actor.ID,
			})
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if _, err := svc.End(context.Background(), b.ID); err != nil {
				t.Fatalf("end: %v", err)
			}
			return b.ID
		}
		early := endBooking(roomA.ID, testStart, testStart.Add(time.Hour))
		late := endBooking(roomB.ID, testStart, testStart.Add(3*time.Hour))

		report, err := NewReportService(f, clock.NewFixed(testStart.Add(4*time.Hour))).Daily(context.Background())
		if err != nil {
			t.Fatalf("daily: %v", err)
		}
		if len(report.TodayBookings) != 2 {
			t.Fatalf("got %d bookings, want 2", len(report.TodayBookings))
		}
		if report.TodayBookings[0].ID != late || report.TodayBookings[1].ID != early {
			t.Fatalf("order = %d,%d; want newest (%d) first", report.TodayBookings[0].ID, report.TodayBookings[1].ID, late)
		}
	})
}
