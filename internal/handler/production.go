package handler

import (
	"net/http"

	"bakery-be/internal/order"

	"github.com/labstack/echo/v4"
)

type ProductionHandler struct {
	svc order.Service
}

func NewProductionHandler(svc order.Service) *ProductionHandler {
	return &ProductionHandler{svc: svc}
}

func (h *ProductionHandler) Today(c echo.Context) error {
	orders, err := h.svc.ProductionToday(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, order.ToResponseList(orders))
}

func (h *ProductionHandler) Late(c echo.Context) error {
	orders, err := h.svc.ProductionLate(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, order.ToResponseList(orders))
}

func (h *ProductionHandler) Upcoming(c echo.Context) error {
	orders, err := h.svc.ProductionUpcoming(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, order.ToResponseList(orders))
}

func (h *ProductionHandler) History(c echo.Context) error {
	orders, err := h.svc.ProductionHistory(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, order.ToResponseList(orders))
}
