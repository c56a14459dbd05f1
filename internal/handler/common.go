// Package handler contains the HTTP handlers.  Handlers bind and
// validate request bodies, call into repositories and services, and
// translate domain errors to HTTP responses; business rules live in
// the service layer.
package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// jsonOK writes the success envelope all endpoints share.
func jsonOK(c echo.Context, status int, data any) error {
	return c.JSON(status, echo.Map{"success": true, "data": data})
}

// jsonErr writes the failure envelope with a human-readable message.
func jsonErr(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "error": msg})
}

// paramID parses a numeric path parameter.
func paramID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// currentUserID reads the user ID that JWTAuth stored from the sub
// claim.  JSON numbers arrive as float64.
func currentUserID(c echo.Context) uint64 {
	switch v := c.Get("user_id").(type) {
	case float64:
		return uint64(v)
	case uint64:
		return v
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
