package analytics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hoanvukhai/cafe-shop-management/internal/events"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/apperror"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/contextutil"
)

//go:generate mockgen -source=analytics_service.go -destination=mock/analytics_service_mock.go -package=mock
type Service interface {
	// ApplyOrderCompleted bồi số liệu từ sự kiện thanh toán, do consumer gọi.
	ApplyOrderCompleted(ctx context.Context, evt events.OrderLifecycleEvent) error

	Revenue(ctx context.Context, q PeriodQuery) (*RevenueResponse, error)
	BestSellers(ctx context.Context, q PeriodQuery) ([]BestSellerEntry, error)
	PeakHours(ctx context.Context, q PeriodQuery) ([]PeakHourEntry, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ApplyOrderCompleted(ctx context.Context, evt events.OrderLifecycleEvent) error {
	log := contextutil.GetLogger(ctx).Named("analytics.service")

	occurred := evt.OccurredAt.In(time.Local)
	date := occurred.Format("2006-01-02")

	var itemsSold int64
	for _, it := range evt.Items {
		itemsSold += int64(it.Quantity)
	}

	// Đánh dấu và bồi trong cùng một tx: consumer commit offset sau khi
	// ghi, message đọc lại sẽ bị dấu chặn thay vì cộng đúp doanh thu.
	return s.repo.Transaction(ctx, func(txRepo Repository) error {
		fresh, err := txRepo.MarkProcessed(ctx, evt.EventType+":"+evt.OrderID)
		if err != nil {
			return err
		}
		if !fresh {
			log.Debug(fmt.Sprintf("bỏ qua sự kiện replay của order %s", evt.OrderID))
			return nil
		}

		if err := txRepo.UpsertDailySale(ctx, date, 1, evt.Total, itemsSold); err != nil {
			return err
		}
		for _, it := range evt.Items {
			lineRevenue := it.Price * int64(it.Quantity)
			if err := txRepo.UpsertDishSale(ctx, date, it.DishID, it.DishName, int64(it.Quantity), lineRevenue); err != nil {
				return err
			}
		}
		if err := txRepo.UpsertHourlySale(ctx, date, occurred.Hour(), 1, evt.Total); err != nil {
			return err
		}

		log.Debug(fmt.Sprintf("đã ghi nhận order %s vào thống kê ngày %s", evt.OrderID, date))
		return nil
	})
}

func (s *service) Revenue(ctx context.Context, q PeriodQuery) (*RevenueResponse, error) {
	from, to, err := resolvePeriod(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.DailySalesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	resp := &RevenueResponse{From: from, To: to, ByDay: make([]RevenuePoint, 0, len(rows))}
	for _, d := range rows {
		resp.Orders += d.Orders
		resp.Revenue += d.Revenue
		resp.ItemsSold += d.ItemsSold
		resp.ByDay = append(resp.ByDay, RevenuePoint{Date: d.Date, Orders: d.Orders, Revenue: d.Revenue})
	}
	return resp, nil
}

func (s *service) BestSellers(ctx context.Context, q PeriodQuery) ([]BestSellerEntry, error) {
	from, to, err := resolvePeriod(q)
	if err != nil {
		return nil, err
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}
	return s.repo.TopDishesBetween(ctx, from, to, limit)
}

func (s *service) PeakHours(ctx context.Context, q PeriodQuery) ([]PeakHourEntry, error) {
	from, to, err := resolvePeriod(q)
	if err != nil {
		return nil, err
	}
	return s.repo.HourlySalesBetween(ctx, from, to)
}

// resolvePeriod đổi bộ lọc kỳ sang cặp ngày [from, to] dạng "2006-01-02".
func resolvePeriod(q PeriodQuery) (string, string, error) {
	now := time.Now()
	invalid := apperror.InvalidField("period")

	switch q.Period {
	case "", "day":
		day := now
		if q.Date != "" {
			parsed, err := time.ParseInLocation("2006-01-02", q.Date, time.Local)
			if err != nil {
				return "", "", invalid
			}
			day = parsed
		}
		d := day.Format("2006-01-02")
		return d, d, nil

	case "week":
		day := now
		if q.Date != "" {
			parsed, err := time.ParseInLocation("2006-01-02", q.Date, time.Local)
			if err != nil {
				return "", "", invalid
			}
			day = parsed
		}
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		monday := day.AddDate(0, 0, -(weekday - 1))
		return monday.Format("2006-01-02"), monday.AddDate(0, 0, 6).Format("2006-01-02"), nil

	case "month":
		if q.Month == "" {
			return "", "", invalid
		}
		parsed, err := time.ParseInLocation("2006-01", q.Month, time.Local)
		if err != nil {
			return "", "", invalid
		}
		return parsed.Format("2006-01-02"), parsed.AddDate(0, 1, -1).Format("2006-01-02"), nil

	case "year":
		if q.Year == "" {
			return "", "", invalid
		}
		year, err := strconv.Atoi(q.Year)
		if err != nil {
			return "", "", invalid
		}
		from := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
		return from.Format("2006-01-02"), from.AddDate(1, 0, -1).Format("2006-01-02"), nil
	}

	return "", "", invalid
}
