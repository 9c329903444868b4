package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bakery-be/internal/logger"
	"bakery-be/internal/order"
	"bakery-be/internal/report"
	"bakery-be/internal/user"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// respondError translates service errors into the HTTP error contract:
// 422 validation, 400/409 domain rules, 404 unknown order, 500 with an
// error detail for anything unexpected.
func respondError(c echo.Context, err error) error {
	var verr *order.ValidationError

	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"message": "Doğrulama hatası",
			"errors":  verr.Fields,
		})
	case errors.Is(err, order.ErrDepositExceedsTotal):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"message": "Kapora toplam tutardan büyük olamaz",
		})
	case errors.Is(err, order.ErrAlreadyPaid):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Bu sipariş zaten ödenmiş",
		})
	case errors.Is(err, order.ErrIllegalTransition):
		return c.JSON(http.StatusConflict, echo.Map{
			"message": "Durum geçişine izin verilmiyor",
		})
	case errors.Is(err, order.ErrOrderNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "Sipariş bulunamadı",
		})
	case errors.Is(err, report.ErrInvalidDate), errors.Is(err, report.ErrInvalidRange):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"message": err.Error(),
		})
	case errors.Is(err, user.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"message": "E-posta veya şifre hatalı",
		})
	default:
		logger.FromCtx(c.Request().Context()).Error("unhandled error", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Sunucu hatası",
			"error":   err.Error(),
		})
	}
}

func orderIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, order.ErrOrderNotFound
	}
	return uint(id), nil
}
