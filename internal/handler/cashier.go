package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"bakery-be/internal/order"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxUploadBytes = 5 << 20 // 5 MiB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type CashierHandler struct {
	svc       order.Service
	uploadDir string
}

func NewCashierHandler(svc order.Service, uploadDir string) *CashierHandler {
	return &CashierHandler{svc: svc, uploadDir: uploadDir}
}

// List returns the active queue: orders that have not been paid yet.
func (h *CashierHandler) List(c echo.Context) error {
	orders, err := h.svc.CashierActive(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, order.ToResponseList(orders))
}

type cashierCreateRequest struct {
	CustomerName     string  `json:"customer_name"`
	CustomerPhone    *string `json:"customer_phone"`
	OrderDetails     string  `json:"order_details"`
	TotalAmount      *int64  `json:"total_amount"`
	DepositAmount    *int64  `json:"deposit_amount"`
	DeliveryDatetime string  `json:"delivery_datetime"`
	ImageURL         *string `json:"image_url"`
}

// Create handles the cashier counter: a price is mandatory here.
func (h *CashierHandler) Create(c echo.Context) error {
	var req cashierCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Geçersiz istek"})
	}

	o, err := h.svc.Create(c.Request().Context(), order.CreateInput{
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		OrderDetails:     req.OrderDetails,
		ImageURL:         req.ImageURL,
		OrderTotal:       req.TotalAmount,
		DepositAmount:    req.DepositAmount,
		DeliveryDatetime: req.DeliveryDatetime,
		RequireTotal:     true,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Sipariş oluşturuldu",
		"order":   order.ToResponse(o),
	})
}

func (h *CashierHandler) MarkPaid(c echo.Context) error {
	id, err := orderIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	o, err := h.svc.CollectPayment(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Ödeme alındı",
		"order":   order.ToResponse(o),
	})
}

func (h *CashierHandler) History(c echo.Context) error {
	orders, err := h.svc.CashierHistory(
		c.Request().Context(),
		c.QueryParam("from"),
		c.QueryParam("to"),
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, order.ToResponseList(orders))
}

// UploadImage stores an order photo and returns its public URL.
func (h *CashierHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"message": "Görsel dosyası zorunludur",
		})
	}

	if file.Size > maxUploadBytes {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"message": "Görsel 5 MB'dan büyük olamaz",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"message": "Yalnızca jpg, jpeg, png ve webp yüklenebilir",
		})
	}

	src, err := file.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return respondError(c, err)
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return respondError(c, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Yüklendi",
		"image_url": "/storage/orders/" + name,
	})
}
