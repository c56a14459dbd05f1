package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/workspace-booking/internal/model"
	"github.com/iliyamo/workspace-booking/internal/repository"
)

// DrinkHandler exposes the drink catalog.
type DrinkHandler struct {
	Drinks *repository.DrinkRepo
}

func NewDrinkHandler(r *repository.DrinkRepo) *DrinkHandler { return &DrinkHandler{Drinks: r} }

type drinkReq struct {
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	IsAvailable *bool  `json:"is_available"`
}

func (r drinkReq) validate() string {
	if strings.TrimSpace(r.Name) == "" {
		return "name is required"
	}
	if r.PriceCents < 0 {
		return "price_cents must not be negative"
	}
	return ""
}

func (h *DrinkHandler) List(c echo.Context) error {
	drinks, err := h.Drinks.List(c.Request().Context())
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "list drinks failed")
	}
	return jsonOK(c, http.StatusOK, drinks)
}

func (h *DrinkHandler) Get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return jsonErr(c, http.StatusBadRequest, "invalid drink id")
	}
	drink, err := h.Drinks.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrDrinkNotFound) {
			return jsonErr(c, http.StatusNotFound, "drink not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "load drink failed")
	}
	return jsonOK(c, http.StatusOK, drink)
}

func (h *DrinkHandler) Create(c echo.Context) error {
	var req drinkReq
	if err := c.Bind(&req); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return jsonErr(c, http.StatusBadRequest, msg)
	}
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	drink := model.Drink{
		Name:        strings.TrimSpace(req.Name),
		PriceCents:  req.PriceCents,
		IsAvailable: available,
	}
	if err := h.Drinks.Create(c.Request().Context(), &drink); err != nil {
		return jsonErr(c, http.StatusInternalServerError, "create drink failed")
	}
	return jsonOK(c, http.StatusCreated, drink)
}

// Update edits the catalog entry.  Existing order lines keep the price
// they were sold at.
func (h *DrinkHandler) Update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return jsonErr(c, http.StatusBadRequest, "invalid drink id")
	}
	var req drinkReq
	if err := c.Bind(&req); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return jsonErr(c, http.StatusBadRequest, msg)
	}
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	drink, err := h.Drinks.Update(c.Request().Context(), id, strings.TrimSpace(req.Name), req.PriceCents, available)
	if err != nil {
		if errors.Is(err, repository.ErrDrinkNotFound) {
			return jsonErr(c, http.StatusNotFound, "drink not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "update drink failed")
	}
	return jsonOK(c, http.StatusOK, drink)
}

func (h *DrinkHandler) Delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return jsonErr(c, http.StatusBadRequest, "invalid drink id")
	}
	if err := h.Drinks.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrDrinkNotFound) {
			return jsonErr(c, http.StatusNotFound, "drink not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "delete drink failed")
	}
	return c.NoContent(http.StatusNoContent)
}
