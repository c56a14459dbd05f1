package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/workspace-booking/internal/model"
	"github.com/iliyamo/workspace-booking/internal/repository"
)

// CustomerHandler exposes the customer registry.
type CustomerHandler struct {
	Customers *repository.CustomerRepo
}

func NewCustomerHandler(r *repository.CustomerRepo) *CustomerHandler {
	return &CustomerHandler{Customers: r}
}

type customerReq struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Notes *string `json:"notes"`
}

func (r customerReq) validate() string {
	if strings.TrimSpace(r.Name) == "" {
		return "name is required"
	}
	if strings.TrimSpace(r.Phone) == "" {
		return "phone is required"
	}
	return ""
}

func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.Customers.List(c.Request().Context())
	if err != nil {
		return jsonErr(c, http.StatusInternalServerError, "list customers failed")
	}
	return jsonOK(c, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return jsonErr(c, http.StatusBadRequest, "invalid customer id")
	}
	customer, err := h.Customers.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return jsonErr(c, http.StatusNotFound, "customer not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "load customer failed")
	}
	return jsonOK(c, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerReq
	if err := c.Bind(&req); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return jsonErr(c, http.StatusBadRequest, msg)
	}
	customer := model.Customer{
		Name:  strings.TrimSpace(req.Name),
		Phone: strings.TrimSpace(req.Phone),
		Notes: req.Notes,
	}
	if err := h.Customers.Create(c.Request().Context(), &customer); err != nil {
		return jsonErr(c, http.StatusInternalServerError, "create customer failed")
	}
	return jsonOK(c, http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return jsonErr(c, http.StatusBadRequest, "invalid customer id")
	}
	var req customerReq
	if err := c.Bind(&req); err != nil {
		return jsonErr(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return jsonErr(c, http.StatusBadRequest, msg)
	}
	customer, err := h.Customers.Update(c.Request().Context(), id,
		strings.TrimSpace(req.Name), strings.TrimSpace(req.Phone), req.Notes)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return jsonErr(c, http.StatusNotFound, "customer not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "update customer failed")
	}
	return jsonOK(c, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return jsonErr(c, http.StatusBadRequest, "invalid customer id")
	}
	if err := h.Customers.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return jsonErr(c, http.StatusNotFound, "customer not found")
		}
		return jsonErr(c, http.StatusInternalServerError, "delete customer failed")
	}
	return c.NoContent(http.StatusNoContent)
}
