package main

import (
	"net/http"

	"bakery-be/internal/config"
	"bakery-be/internal/db"
	"bakery-be/internal/handler"
	"bakery-be/internal/logger"
	"bakery-be/internal/middleware"
	"bakery-be/internal/order"
	"bakery-be/internal/report"
	"bakery-be/internal/user"

	"github.com/labstack/echo/v4"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	reportRepo := report.NewRepository(database)
	reportSvc := report.NewService(reportRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(logger.RequestIDMiddleware, logger.LoggingMiddleware, middleware.RateLimit)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.Static("/storage/orders", cfg.UploadDir)

	handler.RegisterRoutes(e, &handler.Handlers{
		Auth:       handler.NewAuthHandler(userSvc),
		Order:      handler.NewOrderHandler(orderSvc),
		Cashier:    handler.NewCashierHandler(orderSvc, cfg.UploadDir),
		Production: handler.NewProductionHandler(orderSvc),
		Admin:      handler.NewAdminHandler(orderSvc, reportSvc),
	})

	e.Logger.Fatal(e.Start(":" + cfg.AppPort))
}
