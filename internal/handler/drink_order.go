package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/workspace-booking/internal/service"
)

// DrinkOrderHandler removes mistaken drink lines.  Quantity edits are
// modeled as delete plus re-add, so removal is the only write here.
type DrinkOrderHandler struct {
	Svc *service.BookingService
}

func NewDrinkOrderHandler(svc *service.BookingService) *DrinkOrderHandler {
	return &DrinkOrderHandler{Svc: svc}
}

// Delete removes a drink order from its (still active) booking and
// resums the booking's costs.
func (h *DrinkOrderHandler) Delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return jsonErr(c, http.StatusBadRequest, "invalid drink order id")
	}
	if err := h.Svc.RemoveDrinkOrder(c.Request().Context(), id); err != nil {
		return bookingErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
