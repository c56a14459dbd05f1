package service

import (
	"context"
	"time"

	"github.com/iliyamo/workspace-booking/internal/clock"
	"github.com/iliyamo/workspace-booking/internal/model"
)

// ReportStore is the read-only surface the daily report derives from.
type ReportStore interface {
	RoomStatusCounts(ctx context.Context) (available, occupied int64, err error)
	CountActiveBookings(ctx context.Context) (int64, error)
	CompletedBookingsBetween(ctx context.Context, from, to time.Time) ([]model.BookingSummary, error)
	CountCustomers(ctx context.Context) (int64, error)
}

// DailyStats are the headline numbers for the dashboard.
type DailyStats struct {
	ActiveBookings   int64 `json:"active_bookings"`
	AvailableRooms   int64 `json:"available_rooms"`
	OccupiedRooms    int64 `json:"occupied_rooms"`
	TodayIncomeCents int64 `json:"today_income_cents"`
	TotalCustomers   int64 `json:"total_customers"`
}

// DailyReport bundles the stats with the bookings completed today.
type DailyReport struct {
	Stats         DailyStats             `json:"stats"`
	TodayBookings []model.BookingSummary `json:"today_bookings"`
}

// ReportService derives read-only statistics from current state.  It
// keeps no state of its own and never caches; every call recomputes a
// fresh snapshot.
type ReportService struct {
	store ReportStore
	clock clock.Clock
}

// NewReportService constructs the report service.
func NewReportService(store ReportStore, clk clock.Clock) *ReportService {
	return &ReportService{store: store, clock: clk}
}

// Daily reports on the window [local midnight, +24h): room counts by
// status, active booking count, the bookings completed today with
// their summed income, and the total customer count.
func (s *ReportService) Daily(ctx context.Context) (DailyReport, error) {
	now := s.clock.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	available, occupied, err := s.store.RoomStatusCounts(ctx)
	if err != nil {
		return DailyReport{}, err
	}
	active, err := s.store.CountActiveBookings(ctx)
	if err != nil {
		return DailyReport{}, err
	}
	completed, err := s.store.CompletedBookingsBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return DailyReport{}, err
	}
	customers, err := s.store.CountCustomers(ctx)
	if err != nil {
		return DailyReport{}, err
	}

	var income int64
	for _, b := range completed {
		income += b.TotalCostCents
	}
	return DailyReport{
		Stats: DailyStats{
			ActiveBookings:   active,
			AvailableRooms:   available,
			OccupiedRooms:    occupied,
			TodayIncomeCents: income,
			TotalCustomers:   customers,
		},
		TodayBookings: completed,
	}, nil
}
