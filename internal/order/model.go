package order

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusPaid      Status = "paid"
	StatusDelivered Status = "delivered"
)

var statusLabels = map[Status]string{
	StatusPending:   "Bekliyor",
	StatusPreparing: "Hazırlanıyor",
	StatusReady:     "Hazır",
	StatusPaid:      "Ödendi",
	StatusDelivered: "Teslim Edildi",
}

var statusColors = map[Status]string{
	StatusPending:   "grey",
	StatusPreparing: "orange",
	StatusReady:     "green",
	StatusPaid:      "green",
	StatusDelivered: "blue",
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human readable display label for the status.
func (s Status) Label() string {
	return statusLabels[s]
}

// Color returns the UI color tag for the status.
func (s Status) Color() string {
	return statusColors[s]
}

// Order is a single bakery order. Money fields are integer minor
// currency units. OrderTotal and RemainingAmount are nil until the
// order has been priced.
type Order struct {
	ID               uint
	OrderNo          string
	CustomerName     string
	CustomerPhone    *string
	OrderDetails     string
	ImageURL         *string
	OrderTotal       *int64
	DepositAmount    int64
	RemainingAmount  *int64
	DeliveryDatetime time.Time
	Status           Status
	CreatedBy        uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateInput carries the raw order-creation request. RequireTotal is
// set on the cashier surface, where an unpriced order is not allowed.
type CreateInput struct {
	CustomerName     string
	CustomerPhone    *string
	OrderDetails     string
	ImageURL         *string
	OrderTotal       *int64
	DepositAmount    *int64
	DeliveryDatetime string
	RequireTotal     bool
}

// AlertType selects the admin attention listing.
type AlertType string

const (
	AlertLate      AlertType = "late"
	AlertSoon      AlertType = "soon"
	AlertNoDeposit AlertType = "no_deposit"
)

const unsplashHost = "images.unsplash.com"

// NormalizeImageURL appends the standard resize query string to known
// image-hosting URLs. Idempotent: URLs that already carry a query
// string are left alone.
func NormalizeImageURL(url string) string {
	if strings.Contains(url, unsplashHost) && !strings.Contains(url, "?") {
		return url + "?w=800&q=80&auto=format"
	}
	return url
}

// ComputeRemaining computes the outstanding balance for a priced order,
// clamped at zero. Returns nil while the order is unpriced.
func ComputeRemaining(total *int64, deposit int64) *int64 {
	if total == nil {
		return nil
	}
	remaining := *total - deposit
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}
