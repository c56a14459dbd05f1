package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/workspace-booking/internal/service"
)

// ReportHandler serves the read-only daily dashboard.
type ReportHandler struct {
	Svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{Svc: svc}
}

// Daily returns today's stats and the bookings completed today.
func (h *ReportHandler) Daily(c echo.Context) error {
	report, err := h.Svc.Daily(c.Request().Context())
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "build report failed")
	}
	return jsonOK(c, http.StatusOK, report)
}
