package handler

import (
	"bakery-be/internal/middleware"
	"bakery-be/internal/user"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth       *AuthHandler
	Order      *OrderHandler
	Cashier    *CashierHandler
	Production *ProductionHandler
	Admin      *AdminHandler
}

// RegisterRoutes wires the role-gated API surface.
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	e.POST("/login", h.Auth.Login)

	api := e.Group("", middleware.JWTAuth)
	api.POST("/logout", h.Auth.Logout)

	// Any authenticated role may enter an order.
	api.POST("/orders", h.Order.Create)
	api.PATCH("/orders/:id/ready", h.Order.MarkReady,
		middleware.RequireRole(user.RoleProduction, user.RoleAdmin))

	production := api.Group("/production/orders")
	production.GET("/today", h.Production.Today)
	production.GET("/late", h.Production.Late)
	production.GET("/upcoming", h.Production.Upcoming)
	production.GET("/history", h.Production.History)

	cashier := api.Group("/cashier", middleware.RequireRole(user.RoleCashier))
	cashier.GET("/orders", h.Cashier.List)
	cashier.POST("/orders", h.Cashier.Create)
	cashier.PATCH("/orders/:id/paid", h.Cashier.MarkPaid)
	cashier.POST("/orders/upload-image", h.Cashier.UploadImage)
	cashier.GET("/orders/history", h.Cashier.History)

	admin := api.Group("/admin", middleware.RequireRole(user.RoleAdmin))
	admin.GET("/dashboard", h.Admin.Dashboard)
	admin.GET("/dashboard/revenue-range", h.Admin.RevenueRange)
	admin.GET("/orders", h.Admin.Orders)
	admin.GET("/orders/active", h.Admin.Active)
	admin.GET("/orders/history", h.Admin.History)
	admin.GET("/reports/summary", h.Admin.ReportSummary)
}
