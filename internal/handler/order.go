package handler

import (
	"errors"
	"net/http"

	"bakery-be/internal/order"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type createOrderRequest struct {
	CustomerName     string  `json:"customer_name"`
	CustomerPhone    *string `json:"customer_phone"`
	OrderDetails     string  `json:"order_details"`
	ImageURL         *string `json:"image_url"`
	OrderTotal       *int64  `json:"order_total"`
	DepositAmount    *int64  `json:"deposit_amount"`
	DeliveryDatetime string  `json:"delivery_datetime"`
}

// Create handles the generic order-entry endpoint. The total may stay
// unset here; unpriced orders are allowed on this surface.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Geçersiz istek"})
	}

	o, err := h.svc.Create(c.Request().Context(), order.CreateInput{
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		OrderDetails:     req.OrderDetails,
		ImageURL:         req.ImageURL,
		OrderTotal:       req.OrderTotal,
		DepositAmount:    req.DepositAmount,
		DeliveryDatetime: req.DeliveryDatetime,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, order.ToResponse(o))
}

func (h *OrderHandler) MarkReady(c echo.Context) error {
	id, err := orderIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	o, err := h.svc.MarkReady(c.Request().Context(), id)
	if errors.Is(err, order.ErrAlreadyReady) {
		return c.JSON(http.StatusOK, echo.Map{"message": "Sipariş zaten hazır"})
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Sipariş hazırlandı olarak işaretlendi",
		"order":   order.ToResponse(o),
	})
}
