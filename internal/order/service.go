package order

import (
	"context"
	"strings"
	"time"

	"bakery-be/internal/logger"
	"bakery-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxNameLen     = 255
	maxPhoneLen    = 50
	maxImageURLLen = 2000

	productionHistoryLimit = 200

	defaultPerPage = 20
	minPerPage     = 5
	maxPerPage     = 100
)

type Service interface {
	Create(ctx context.Context, in CreateInput) (*Order, error)
	MarkReady(ctx context.Context, id uint) (*Order, error)
	CollectPayment(ctx context.Context, id uint) (*Order, error)

	ProductionToday(ctx context.Context) ([]*Order, error)
	ProductionLate(ctx context.Context) ([]*Order, error)
	ProductionUpcoming(ctx context.Context) ([]*Order, error)
	ProductionHistory(ctx context.Context) ([]*Order, error)

	CashierActive(ctx context.Context) ([]*Order, error)
	CashierHistory(ctx context.Context, from, to string) ([]*Order, error)

	AdminAlerts(ctx context.Context, typ string) ([]*Order, error)
	AdminActive(ctx context.Context, page, perPage int) (*Page, error)
	AdminHistory(ctx context.Context, page, perPage int) (*Page, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// NewOrderNo generates a unique human readable order number.
func NewOrderNo() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "CNR-" + token[:12]
}

func (s *service) Create(ctx context.Context, in CreateInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "Create"))

	verr := newValidationError()

	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		verr.Fields["customer_name"] = "customer name is required"
	} else if len(name) > maxNameLen {
		verr.Fields["customer_name"] = "customer name is too long"
	}

	if in.CustomerPhone != nil && len(*in.CustomerPhone) > maxPhoneLen {
		verr.Fields["customer_phone"] = "customer phone is too long"
	}

	if strings.TrimSpace(in.OrderDetails) == "" {
		verr.Fields["order_details"] = "order details are required"
	}

	if in.OrderTotal == nil && in.RequireTotal {
		verr.Fields["order_total"] = "order total is required"
	}
	if in.OrderTotal != nil && *in.OrderTotal < 0 {
		verr.Fields["order_total"] = "order total must not be negative"
	}

	deposit := int64(0)
	if in.DepositAmount != nil {
		deposit = *in.DepositAmount
		if deposit < 0 {
			verr.Fields["deposit_amount"] = "deposit must not be negative"
		}
	}

	var delivery time.Time
	if strings.TrimSpace(in.DeliveryDatetime) == "" {
		verr.Fields["delivery_datetime"] = "delivery datetime is required"
	} else {
		var err error
		delivery, err = utils.ParseDateTime(in.DeliveryDatetime)
		if err != nil {
			verr.Fields["delivery_datetime"] = "delivery datetime is not a valid date"
		}
	}

	if in.ImageURL != nil && len(*in.ImageURL) > maxImageURLLen {
		verr.Fields["image_url"] = "image url is too long"
	}

	if len(verr.Fields) > 0 {
		log.Warn("order creation rejected", zap.Int("field_errors", len(verr.Fields)))
		return nil, verr
	}

	if in.OrderTotal != nil && deposit > *in.OrderTotal {
		log.Warn("deposit exceeds total",
			zap.Int64("deposit", deposit),
			zap.Int64("total", *in.OrderTotal),
		)
		return nil, ErrDepositExceedsTotal
	}

	imageURL := in.ImageURL
	if imageURL != nil {
		normalized := NormalizeImageURL(*imageURL)
		imageURL = &normalized
	}

	createdBy, _ := utils.GetUserIDFromContext(ctx)

	o := &Order{
		OrderNo:          NewOrderNo(),
		CustomerName:     name,
		CustomerPhone:    in.CustomerPhone,
		OrderDetails:     in.OrderDetails,
		ImageURL:         imageURL,
		OrderTotal:       in.OrderTotal,
		DepositAmount:    deposit,
		RemainingAmount:  ComputeRemaining(in.OrderTotal, deposit),
		DeliveryDatetime: delivery,
		Status:           StatusPreparing,
		CreatedBy:        createdBy,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	log.Info("order created",
		zap.String("order_no", o.OrderNo),
		zap.Uint("order_id", o.ID),
	)
	return o, nil
}

func (s *service) MarkReady(ctx context.Context, id uint) (*Order, error) {
	role := utils.GetUserRoleFromContext(ctx)
	return s.repo.MarkReady(ctx, id, role)
}

func (s *service) CollectPayment(ctx context.Context, id uint) (*Order, error) {
	return s.repo.CollectPayment(ctx, id)
}

func (s *service) ProductionToday(ctx context.Context) ([]*Order, error) {
	dayStart := startOfDay(time.Now())
	return s.repo.ProductionToday(ctx, dayStart, dayStart.AddDate(0, 0, 1))
}

func (s *service) ProductionLate(ctx context.Context) ([]*Order, error) {
	return s.repo.ProductionLate(ctx, time.Now())
}

func (s *service) ProductionUpcoming(ctx context.Context) ([]*Order, error) {
	// tomorrow onwards
	endOfToday := startOfDay(time.Now()).AddDate(0, 0, 1).Add(-time.Nanosecond)
	return s.repo.ProductionUpcoming(ctx, endOfToday)
}

func (s *service) ProductionHistory(ctx context.Context) ([]*Order, error) {
	return s.repo.ProductionHistory(ctx, productionHistoryLimit)
}

func (s *service) CashierActive(ctx context.Context) ([]*Order, error) {
	return s.repo.CashierActive(ctx)
}

func (s *service) CashierHistory(ctx context.Context, from, to string) ([]*Order, error) {
	verr := newValidationError()

	var fromAt, toAt *time.Time
	if from != "" {
		t, err := utils.ParseDateTime(from)
		if err != nil {
			verr.Fields["from"] = "from is not a valid date"
		} else {
			dayStart := startOfDay(t)
			fromAt = &dayStart
		}
	}
	if to != "" {
		t, err := utils.ParseDateTime(to)
		if err != nil {
			verr.Fields["to"] = "to is not a valid date"
		} else {
			dayEnd := startOfDay(t).AddDate(0, 0, 1)
			toAt = &dayEnd
		}
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}

	return s.repo.CashierHistory(ctx, fromAt, toAt)
}

func (s *service) AdminAlerts(ctx context.Context, typ string) ([]*Order, error) {
	return s.repo.AdminAlerts(ctx, AlertType(typ), time.Now())
}

func (s *service) AdminActive(ctx context.Context, page, perPage int) (*Page, error) {
	page, perPage = clampPage(page, perPage)

	orders, total, err := s.repo.AdminActive(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	return newPage(orders, page, perPage, total), nil
}

func (s *service) AdminHistory(ctx context.Context, page, perPage int) (*Page, error) {
	page, perPage = clampPage(page, perPage)

	orders, total, err := s.repo.AdminHistory(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	return newPage(orders, page, perPage, total), nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func clampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage == 0 {
		perPage = defaultPerPage
	}
	if perPage < minPerPage {
		perPage = minPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
