package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToResponse(t *testing.T) {
	total := int64(1500)
	remaining := int64(1000)
	delivery := time.Date(2026, 9, 1, 14, 0, 0, 0, time.Local)

	o := &Order{
		ID:               42,
		OrderNo:          "CNR-ABCDEF123456",
		CustomerName:     "Ayşe Yılmaz",
		OrderDetails:     "Doğum günü pastası",
		OrderTotal:       &total,
		DepositAmount:    500,
		RemainingAmount:  &remaining,
		DeliveryDatetime: delivery,
		Status:           StatusPreparing,
		CreatedBy:        7,
	}

	resp := ToResponse(o)
	require.NotNil(t, resp)
	assert.Equal(t, "2026-09-01 14:00", resp.DeliveryDatetime)
	assert.Equal(t, "preparing", resp.Status)
	assert.Equal(t, "Hazırlanıyor", resp.StatusLabel)
	assert.Equal(t, "orange", resp.StatusColor)
	assert.Nil(t, resp.CustomerPhone)
	assert.Equal(t, int64(1000), *resp.RemainingAmount)

	assert.Nil(t, ToResponse(nil))
}

func TestToPageResponse_Links(t *testing.T) {
	orders := []*Order{{ID: 1}, {ID: 2}}

	t.Run("MiddlePageHasBothLinks", func(t *testing.T) {
		page := newPage(orders, 2, 20, 45)
		resp := ToPageResponse(page, "/api/admin/orders/history")

		require.NotNil(t, resp.Links.Next)
		require.NotNil(t, resp.Links.Prev)
		assert.Equal(t, "/api/admin/orders/history?page=3&per_page=20", *resp.Links.Next)
		assert.Equal(t, "/api/admin/orders/history?page=1&per_page=20", *resp.Links.Prev)
	})

	t.Run("FirstPageHasNoPrev", func(t *testing.T) {
		page := newPage(orders, 1, 20, 45)
		resp := ToPageResponse(page, "/api/admin/orders/history")

		assert.NotNil(t, resp.Links.Next)
		assert.Nil(t, resp.Links.Prev)
	})

	t.Run("LastPageHasNoNext", func(t *testing.T) {
		page := newPage(orders, 3, 20, 45)
		resp := ToPageResponse(page, "/api/admin/orders/history")

		assert.Nil(t, resp.Links.Next)
		assert.NotNil(t, resp.Links.Prev)
	})

	t.Run("EmptyResultStillOnePage", func(t *testing.T) {
		page := newPage(nil, 1, 20, 0)
		resp := ToPageResponse(page, "/api/admin/orders/history")

		assert.Equal(t, 1, page.Meta.LastPage)
		assert.Nil(t, resp.Links.Next)
		assert.Nil(t, resp.Links.Prev)
		assert.NotNil(t, resp.Data)
		assert.Empty(t, resp.Data)
	})
}
