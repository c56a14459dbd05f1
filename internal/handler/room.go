package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/workspace-booking/internal/model"
	"github.com/iliyamo/workspace-booking/internal/repository"
)

// RoomHandler exposes the room catalog.  Reads are open to all staff;
// writes are admin-gated by the router.
type RoomHandler struct {
	Rooms *repository.RoomRepo
}

func NewRoomHandler(r *repository.RoomRepo) *RoomHandler { return &RoomHandler{Rooms: r} }

type roomReq struct {
	Name            string `json:"name"`
	HourlyRateCents int64  `json:"hourly_rate_cents"`
}

func (r roomReq) validate() string {
	if strings.TrimSpace(r.Name) == "" {
		return "name is required"
	}
	if r.HourlyRateCents < 0 {
		return "hourly_rate_cents must not be negative"
	}
	return ""
}

// List returns all rooms with their live status.
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "list rooms failed")
	}
	return jsonOK(c, http.StatusOK, rooms)
}

// Get returns one room.
func (h *RoomHandler) Get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return jsonErr(c, http.StatusBadRequest, "invalid room id")
	}
	room, err := h.Rooms.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return jsonErr(c, http.StatusNotFound, "room not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "load room failed")
	}
	return jsonOK(c, http.StatusOK, room)
}

// Create adds a room; new rooms start available.
func (h *RoomHandler) Create(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return jsonErr(c, http.StatusBadRequest, msg)
	}
	room := model.Room{
		Name:            strings.TrimSpace(req.Name),
		HourlyRateCents: req.HourlyRateCents,
		Status:          model.RoomStatusAvailable,
	}
	if err := h.Rooms.Create(c.Request().Context(), &room); err != nil {
		return jsonErr(c, http.StatusInternalServerError, "create room failed")
	}
	return jsonOK(c, http.StatusCreated, room)
}

// Update edits name and rate.  Status is owned by the booking
// lifecycle and cannot be set here.
func (h *RoomHandler) Update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return jsonErr(c, http.StatusBadRequest, "invalid room id")
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return jsonErr(c, http.StatusBadRequest, msg)
	}
	room, err := h.Rooms.Update(c.Request().Context(), id, strings.TrimSpace(req.Name), req.HourlyRateCents)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return jsonErr(c, http.StatusNotFound, "room not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "update room failed")
	}
	return jsonOK(c, http.StatusOK, room)
}

// Delete removes a room unless it has an active booking.
func (h *RoomHandler) Delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return jsonErr(c, http.StatusBadRequest, "invalid room id")
	}
	err := h.Rooms.Delete(c.Request().Context(), id)
	switch {
	case err == nil:
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, repository.ErrRoomNotFound):
		return jsonErr(c, http.StatusNotFound, "room not found")
	case errors.Is(err, repository.ErrRoomHasActiveBooking):
		return jsonErr(c, http.StatusConflict, "room has an active booking")
	default:
		return jsonErr(c, http.StatusInternalServerError, "delete room failed")
	}
}
