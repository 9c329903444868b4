package handler

import (
	"net/http"
	"strconv"

	"bakery-be/internal/order"
	"bakery-be/internal/report"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	orderSvc  order.Service
	reportSvc report.Service
}

func NewAdminHandler(orderSvc order.Service, reportSvc report.Service) *AdminHandler {
	return &AdminHandler{orderSvc: orderSvc, reportSvc: reportSvc}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.reportSvc.Dashboard(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dashboard)
}

func (h *AdminHandler) RevenueRange(c echo.Context) error {
	result, err := h.reportSvc.RevenueRange(
		c.Request().Context(),
		c.QueryParam("from"),
		c.QueryParam("to"),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) ReportSummary(c echo.Context) error {
	summary, err := h.reportSvc.PeriodSummary(
		c.Request().Context(),
		c.QueryParam("start"),
		c.QueryParam("end"),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// Orders lists the attention queues (late / soon / no_deposit).
func (h *AdminHandler) Orders(c echo.Context) error {
	typ := c.QueryParam("type")

	orders, err := h.orderSvc.AdminAlerts(c.Request().Context(), typ)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"type":   typ,
		"count":  len(orders),
		"orders": order.ToResponseList(orders),
	})
}

func (h *AdminHandler) Active(c echo.Context) error {
	page, err := h.orderSvc.AdminActive(
		c.Request().Context(),
		queryInt(c, "page"),
		queryInt(c, "per_page"),
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, order.ToPageResponse(page, c.Path()))
}

func (h *AdminHandler) History(c echo.Context) error {
	page, err := h.orderSvc.AdminHistory(
		c.Request().Context(),
		queryInt(c, "page"),
		queryInt(c, "per_page"),
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, order.ToPageResponse(page, c.Path()))
}

func queryInt(c echo.Context, name string) int {
	n, _ := strconv.Atoi(c.QueryParam(name))
	return n
}
