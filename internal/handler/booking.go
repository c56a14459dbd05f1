package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/workspace-booking/internal/model"
	"github.com/iliyamo/workspace-booking/internal/queue"
	"github.com/iliyamo/workspace-booking/internal/repository"
	"github.com/iliyamo/workspace-booking/internal/service"
)

// BookingHandler drives the booking lifecycle over HTTP.  All business
// rules live in the service; this layer binds input, resolves the
// acting user from the token, and maps domain errors to status codes.
type BookingHandler struct {
	Svc      *service.BookingService
	Bookings *repository.BookingRepo
}

func NewBookingHandler(svc *service.BookingService, bookings *repository.BookingRepo) *BookingHandler {
	return &BookingHandler{Svc: svc, Bookings: bookings}
}

type createBookingReq struct {
	RoomID     uint64     `json:"room_id"`
	CustomerID uint64     `json:"customer_id"`
	Type       string     `json:"type"` // open | fixed
	StartsAt   *time.Time `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at"`
}

type addDrinkOrderReq struct {
	DrinkID  uint64 `json:"drink_id"`
	Quantity int    `json:"quantity"`
}

// bookingErr maps service and repository errors onto HTTP statuses:
// missing records are 404, the occupied-room race is 409, lifecycle
// and validation violations are 400.
func bookingErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrBookingNotFound):
		return jsonErr(c, http.StatusNotFound, "booking not found")
	case errors.Is(err, repository.ErrRoomNotFound):
		return jsonErr(c, http.StatusNotFound, "room not found")
	case errors.Is(err, repository.ErrCustomerNotFound):
		return jsonErr(c, http.StatusNotFound, "customer not found")
	case errors.Is(err, repository.ErrDrinkNotFound):
		return jsonErr(c, http.StatusNotFound, "drink not found")
	case errors.Is(err, repository.ErrDrinkOrderNotFound):
		return jsonErr(c, http.StatusNotFound, "drink order not found")
	case errors.Is(err, repository.ErrRoomOccupied):
		return jsonErr(c, http.StatusConflict, "room is occupied")
	case errors.Is(err, service.ErrBookingCompleted),
		errors.Is(err, service.ErrBookingAlreadyEnded),
		errors.Is(err, service.ErrInvalidBookingType),
		errors.Is(err, service.ErrEndTimeRequired),
		errors.Is(err, service.ErrEndBeforeStart),
		errors.Is(err, service.ErrInvalidQuantity):
		return jsonErr(c, http.StatusBadRequest, err.Error())
	default:
		return jsonErr(c, http.StatusInternalServerError, "booking operation failed")
	}
}

// List returns bookings with their associations, optionally filtered
// by ?status=active|completed.
func (h *BookingHandler) List(c echo.Context) error {
	var status model.BookingStatus
	switch s := c.QueryParam("status"); s {
	case "":
	case string(model.BookingStatusActive), string(model.BookingStatusCompleted):
		status = model.BookingStatus(s)
	default:
		return jsonErr(c, http.StatusBadRequest, "status must be active or completed")
	}
	bookings, err := h.Bookings.ListDetails(c.Request().Context(), status)
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "list bookings failed")
	}
	return jsonOK(c, http.StatusOK, bookings)
}

// Get returns one booking with room, customer, actor and drink orders.
func (h *BookingHandler) Get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return jsonErr(c, http.StatusBadRequest, "invalid booking id")
	}
	detail, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		return bookingErr(c, err)
	}
	return jsonOK(c, http.StatusOK, detail)
}

// Create opens a booking.  starts_at defaults to now when omitted.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid body")
	}
	if req.RoomID == 0 || req.CustomerID == 0 {
		return jsonErr(c, http.StatusBadRequest, "room_id and customer_id are required")
	}
	startsAt := time.Now()
	if req.StartsAt != nil {
		startsAt = *req.StartsAt
	}
	detail, err := h.Svc.Create(c.Request().Context(), service.CreateBookingInput{
		RoomID:     req.RoomID,
		CustomerID: req.CustomerID,
		Type:       model.BookingType(req.Type),
		StartsAt:   startsAt,
		EndsAt:     req.EndsAt,
		ActorID:    currentUserID(c),
	})
	if err != nil {
		return bookingErr(c, err)
	}
	return jsonOK(c, http.StatusCreated, detail)
}

// AddDrinkOrder attaches a drink line to an active booking.
func (h *BookingHandler) AddDrinkOrder(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return jsonErr(c, http.StatusBadRequest, "invalid booking id")
	}
	var req addDrinkOrderReq
	if err := c.Bind(&req); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid body")
	}
	if req.DrinkID == 0 {
		return jsonErr(c, http.StatusBadRequest, "drink_id is required")
	}
	order, err := h.Svc.AddDrinkOrder(c.Request().Context(), id, req.DrinkID, req.Quantity)
	if err != nil {
		return bookingErr(c, err)
	}
	return jsonOK(c, http.StatusCreated, order)
}

// End closes a booking, bills it, and publishes a completion event for
// downstream consumers.  The publish is fire-and-forget; a broker
// outage never fails the checkout.
func (h *BookingHandler) End(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return jsonErr(c, http.StatusBadRequest, "invalid booking id")
	}
	detail, err := h.Svc.End(c.Request().Context(), id)
	if err != nil {
		return bookingErr(c, err)
	}

	go func(d model.BookingDetail) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		ev := queue.BookingCompletedEvent{
			BookingID:       d.ID,
			Type:            string(d.Type),
			RoomID:          d.Room.ID,
			RoomName:        d.Room.Name,
			CustomerID:      d.Customer.ID,
			CustomerName:    d.Customer.Name,
			UserID:          d.User.ID,
			StartsAt:        d.StartsAt.UTC().Format(time.RFC3339),
			DrinkCount:      len(d.DrinkOrders),
			RoomCostCents:   d.RoomCostCents,
			DrinksCostCents: d.DrinksCostCents,
			TotalCostCents:  d.TotalCostCents,
			CompletedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		if d.EndsAt != nil {
			ev.EndsAt = d.EndsAt.UTC().Format(time.RFC3339)
		}
		_ = queue.PublishBookingCompleted(ctx, ev)
	}(detail)

	return jsonOK(c, http.StatusOK, detail)
}
