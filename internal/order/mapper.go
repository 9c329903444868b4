package order

import (
	"fmt"
	"time"
)

const deliveryTimeLayout = "2006-01-02 15:04"

type Response struct {
	ID               uint    `json:"id"`
	OrderNo          string  `json:"order_no"`
	CustomerName     string  `json:"customer_name"`
	CustomerPhone    *string `json:"customer_phone"`
	OrderDetails     string  `json:"order_details"`
	ImageURL         *string `json:"image_url"`
	OrderTotal       *int64  `json:"order_total"`
	DepositAmount    int64   `json:"deposit_amount"`
	RemainingAmount  *int64  `json:"remaining_amount"`
	DeliveryDatetime string  `json:"delivery_datetime"`
	Status           string  `json:"status"`
	StatusLabel      string  `json:"status_label"`
	StatusColor      string  `json:"status_color"`
	CreatedBy        uint    `json:"created_by"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func ToResponse(o *Order) *Response {
	if o == nil {
		return nil
	}

	return &Response{
		ID:               o.ID,
		OrderNo:          o.OrderNo,
		CustomerName:     o.CustomerName,
		CustomerPhone:    o.CustomerPhone,
		OrderDetails:     o.OrderDetails,
		ImageURL:         o.ImageURL,
		OrderTotal:       o.OrderTotal,
		DepositAmount:    o.DepositAmount,
		RemainingAmount:  o.RemainingAmount,
		DeliveryDatetime: o.DeliveryDatetime.Format(deliveryTimeLayout),
		Status:           string(o.Status),
		StatusLabel:      o.Status.Label(),
		StatusColor:      o.Status.Color(),
		CreatedBy:        o.CreatedBy,
		CreatedAt:        o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        o.UpdatedAt.Format(time.RFC3339),
	}
}

func ToResponseList(orders []*Order) []*Response {
	out := make([]*Response, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToResponse(o))
	}
	return out
}

type PageLinks struct {
	Next *string `json:"next"`
	Prev *string `json:"prev"`
}

type PageResponse struct {
	Data  []*Response `json:"data"`
	Meta  PageMeta    `json:"meta"`
	Links PageLinks   `json:"links"`
}

// ToPageResponse renders a page with next/prev links relative to the
// listing path.
func ToPageResponse(p *Page, basePath string) *PageResponse {
	resp := &PageResponse{
		Data: ToResponseList(p.Data),
		Meta: p.Meta,
	}

	if p.Meta.CurrentPage < p.Meta.LastPage {
		next := pageURL(basePath, p.Meta.CurrentPage+1, p.Meta.PerPage)
		resp.Links.Next = &next
	}
	if p.Meta.CurrentPage > 1 {
		prev := pageURL(basePath, p.Meta.CurrentPage-1, p.Meta.PerPage)
		resp.Links.Prev = &prev
	}

	return resp
}

func pageURL(basePath string, page, perPage int) string {
	return fmt.Sprintf("%s?page=%d&per_page=%d", basePath, page, perPage)
}
