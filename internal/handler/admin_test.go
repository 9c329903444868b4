package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bakery-be/internal/order"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminOrdersListing(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("AdminAlerts", mock.Anything, "late").
		Return([]*order.Order{{ID: 1}, {ID: 2}}, nil)

	h := NewAdminHandler(svc, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders?type=late", nil)
	c := e.NewContext(req, rec)

	require.NoError(t, h.Orders(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "late", body["type"])
	assert.Equal(t, float64(2), body["count"])
	svc.AssertExpectations(t)
}

func TestAdminHistoryPagination(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("AdminHistory", mock.Anything, 2, 10).
		Return(&order.Page{
			Data: []*order.Order{{ID: 21}},
			Meta: order.PageMeta{CurrentPage: 2, LastPage: 3, PerPage: 10, Total: 25},
		}, nil)

	h := NewAdminHandler(svc, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/history?page=2&per_page=10", nil)
	c := e.NewContext(req, rec)
	c.SetPath("/api/admin/orders/history")

	require.NoError(t, h.History(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	meta, ok := body["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), meta["current_page"])
	assert.Equal(t, float64(25), meta["total"])

	links, ok := body["links"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/api/admin/orders/history?page=3&per_page=10", links["next"])
	assert.Equal(t, "/api/admin/orders/history?page=1&per_page=10", links["prev"])
}
