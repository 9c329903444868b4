package report

import (
	"context"
	"time"

	"bakery-be/internal/logger"
	"bakery-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	RevenueRange(ctx context.Context, from, to string) (*RangeRevenue, error)
	PeriodSummary(ctx context.Context, start, end string) (*Summary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "Dashboard"))

	now := time.Now()
	todayStart := startOfDay(now)
	tomorrowStart := todayStart.AddDate(0, 0, 1)
	dayAfterStart := todayStart.AddDate(0, 0, 2)
	weekStart := startOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)

	late, err := s.repo.CountLate(ctx, now)
	if err != nil {
		log.Error("failed to count late orders", zap.Error(err))
		return nil, err
	}

	soon, err := s.repo.CountDueSoon(ctx, now, now.Add(time.Hour))
	if err != nil {
		log.Error("failed to count due-soon orders", zap.Error(err))
		return nil, err
	}

	noDeposit, err := s.repo.CountNoDeposit(ctx)
	if err != nil {
		log.Error("failed to count no-deposit orders", zap.Error(err))
		return nil, err
	}

	todayRevenue, err := s.repo.PaidRevenueBetween(ctx, todayStart, tomorrowStart)
	if err != nil {
		log.Error("failed to sum today revenue", zap.Error(err))
		return nil, err
	}

	todayCount, err := s.repo.CountCreatedBetween(ctx, todayStart, tomorrowStart)
	if err != nil {
		log.Error("failed to count today orders", zap.Error(err))
		return nil, err
	}

	tomorrowCount, err := s.repo.CountDeliveriesBetween(ctx, tomorrowStart, dayAfterStart)
	if err != nil {
		log.Error("failed to count tomorrow deliveries", zap.Error(err))
		return nil, err
	}

	weekRevenue, err := s.repo.PaidRevenueBetween(ctx, weekStart, weekEnd)
	if err != nil {
		log.Error("failed to sum week revenue", zap.Error(err))
		return nil, err
	}

	seriesStart := todayStart.AddDate(0, 0, -6)
	daily, err := s.repo.DailyPaidRevenue(ctx, seriesStart, tomorrowStart)
	if err != nil {
		log.Error("failed to load daily revenue series", zap.Error(err))
		return nil, err
	}

	series := make([]DayRevenue, 0, 7)
	for i := 0; i < 7; i++ {
		day := seriesStart.AddDate(0, 0, i).Format("2006-01-02")
		series = append(series, DayRevenue{Date: day, Revenue: daily[day]})
	}

	dist, err := s.repo.StatusCounts(ctx)
	if err != nil {
		log.Error("failed to load status distribution", zap.Error(err))
		return nil, err
	}

	return &Dashboard{
		Today:              TodaySummary{Revenue: todayRevenue, OrderCount: todayCount},
		Tomorrow:           TomorrowSummary{OrderCount: tomorrowCount},
		Week:               WeekSummary{Revenue: weekRevenue},
		Last7DaysRevenue:   series,
		StatusDistribution: *dist,
		Alerts: Alerts{
			LateOrders:      late,
			SoonOrders:      soon,
			NoDepositOrders: noDeposit,
		},
	}, nil
}

func (s *service) RevenueRange(ctx context.Context, from, to string) (*RangeRevenue, error) {
	fromDay, toDay, err := parseRange(from, to)
	if err != nil {
		return nil, err
	}

	rangeStart := startOfDay(fromDay)
	rangeEnd := endOfDay(toDay)

	revenue, count, err := s.repo.PaidRevenueAndCountBetween(ctx, rangeStart, rangeEnd)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to sum revenue range", zap.Error(err))
		return nil, err
	}

	return &RangeRevenue{
		From:         rangeStart.Format("2006-01-02"),
		To:           toDay.Format("2006-01-02"),
		TotalRevenue: revenue,
		OrderCount:   count,
	}, nil
}

func (s *service) PeriodSummary(ctx context.Context, start, end string) (*Summary, error) {
	startDay, endDay, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	summary, err := s.repo.PeriodSummary(ctx, startOfDay(startDay), endOfDay(endDay))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to build period summary", zap.Error(err))
		return nil, err
	}

	return summary, nil
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	if from == "" || to == "" {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}

	fromDay, err := utils.ParseDateTime(from)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	toDay, err := utils.ParseDateTime(to)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}

	if startOfDay(toDay).Before(startOfDay(fromDay)) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}

	return fromDay, toDay, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Second)
}

// startOfWeek returns Monday 00:00 of the week containing t.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}
