package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/hoanvukhai/cafe-shop-management/internal/events"

	"github.com/stretchr/testify/assert"
)

type fakeAnalyticsRepo struct {
	daily     map[string]*DailySale
	dishes    map[string]*DishSale // key: date|dish_id
	hourly    map[string]*HourlySale
	processed map[string]bool
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{
		daily:     make(map[string]*DailySale),
		dishes:    make(map[string]*DishSale),
		hourly:    make(map[string]*HourlySale),
		processed: make(map[string]bool),
	}
}

func (f *fakeAnalyticsRepo) Transaction(ctx context.Context, fn func(txRepo Repository) error) error {
	return fn(f)
}

func (f *fakeAnalyticsRepo) MarkProcessed(ctx context.Context, eventKey string) (bool, error) {
	if f.processed[eventKey] {
		return false, nil
	}
	f.processed[eventKey] = true
	return true, nil
}

func (f *fakeAnalyticsRepo) UpsertDailySale(ctx context.Context, date string, orders, revenue, itemsSold int64) error {
	d, ok := f.daily[date]
	if !ok {
		d = &DailySale{Date: date}
		f.daily[date] = d
	}
	d.Orders += orders
	d.Revenue += revenue
	d.ItemsSold += itemsSold
	return nil
}

func (f *fakeAnalyticsRepo) UpsertDishSale(ctx context.Context, date, dishID, dishName string, quantity, revenue int64) error {
	key := date + "|" + dishID
	d, ok := f.dishes[key]
	if !ok {
		d = &DishSale{Date: date, DishID: dishID, DishName: dishName}
		f.dishes[key] = d
	}
	d.Quantity += quantity
	d.Revenue += revenue
	return nil
}

func (f *fakeAnalyticsRepo) UpsertHourlySale(ctx context.Context, date string, hour int, orders, revenue int64) error {
	key := date + "|" + string(rune('0'+hour/10)) + string(rune('0'+hour%10))
	h, ok := f.hourly[key]
	if !ok {
		h = &HourlySale{Date: date, Hour: hour}
		f.hourly[key] = h
	}
	h.Orders += orders
	h.Revenue += revenue
	return nil
}

func (f *fakeAnalyticsRepo) DailySalesBetween(ctx context.Context, from, to string) ([]DailySale, error) {
	var out []DailySale
	for _, d := range f.daily {
		if d.Date >= from && d.Date <= to {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) TopDishesBetween(ctx context.Context, from, to string, limit int) ([]BestSellerEntry, error) {
	var out []BestSellerEntry
	for _, d := range f.dishes {
		if d.Date >= from && d.Date <= to {
			out = append(out, BestSellerEntry{DishID: d.DishID, DishName: d.DishName, Quantity: d.Quantity, Revenue: d.Revenue})
		}
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) HourlySalesBetween(ctx context.Context, from, to string) ([]PeakHourEntry, error) {
	var out []PeakHourEntry
	for _, h := range f.hourly {
		if h.Date >= from && h.Date <= to {
			out = append(out, PeakHourEntry{Hour: h.Hour, Orders: h.Orders, Revenue: h.Revenue})
		}
	}
	return out, nil
}

func completedEvent(orderID string, at time.Time) events.OrderLifecycleEvent {
	return events.OrderLifecycleEvent{
		EventType:      events.OrderCompletedEventType,
		OrderID:        orderID,
		SequenceNumber: "HD20250101-0001",
		TableNumber:    "Bàn 01",
		Total:          65000,
		Items: []events.OrderLineSnapshot{
			{DishID: "coffee_001", DishName: "Cà phê đen", Price: 20000, Quantity: 2},
			{DishID: "coffee_002", DishName: "Cà phê sữa", Price: 25000, Quantity: 1},
		},
		OccurredAt: at,
	}
}

func TestApplyOrderCompleted_AccumulatesAggregates(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := NewService(repo)

	at := time.Date(2025, 1, 1, 9, 30, 0, 0, time.Local)
	assert.NoError(t, svc.ApplyOrderCompleted(context.Background(), completedEvent("order_ab12cd34", at)))
	assert.NoError(t, svc.ApplyOrderCompleted(context.Background(), completedEvent("order_ef56gh78", at.Add(30*time.Minute))))

	day := repo.daily["2025-01-01"]
	assert.Equal(t, int64(2), day.Orders)
	assert.Equal(t, int64(130000), day.Revenue)
	assert.Equal(t, int64(6), day.ItemsSold)

	blackCoffee := repo.dishes["2025-01-01|coffee_001"]
	assert.Equal(t, int64(4), blackCoffee.Quantity)
	assert.Equal(t, int64(80000), blackCoffee.Revenue)

	nineAM := repo.hourly["2025-01-01|09"]
	assert.Equal(t, int64(2), nineAM.Orders)
}

func TestApplyOrderCompleted_ReplayedEventCountsOnce(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := NewService(repo)

	// Consumer đọc lại message đã xử lý (commit offset sau khi ghi)
	at := time.Date(2025, 1, 1, 9, 30, 0, 0, time.Local)
	evt := completedEvent("order_ab12cd34", at)
	assert.NoError(t, svc.ApplyOrderCompleted(context.Background(), evt))
	assert.NoError(t, svc.ApplyOrderCompleted(context.Background(), evt))

	day := repo.daily["2025-01-01"]
	assert.Equal(t, int64(1), day.Orders)
	assert.Equal(t, int64(65000), day.Revenue)
	assert.Equal(t, int64(3), day.ItemsSold)

	blackCoffee := repo.dishes["2025-01-01|coffee_001"]
	assert.Equal(t, int64(2), blackCoffee.Quantity)

	nineAM := repo.hourly["2025-01-01|09"]
	assert.Equal(t, int64(1), nineAM.Orders)
}

func TestRevenue_SumsRange(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := NewService(repo)

	svc.ApplyOrderCompleted(context.Background(), completedEvent("order_a1", time.Date(2025, 1, 1, 9, 0, 0, 0, time.Local)))
	svc.ApplyOrderCompleted(context.Background(), completedEvent("order_b2", time.Date(2025, 1, 2, 10, 0, 0, 0, time.Local)))
	svc.ApplyOrderCompleted(context.Background(), completedEvent("order_c3", time.Date(2025, 2, 1, 10, 0, 0, 0, time.Local)))

	resp, err := svc.Revenue(context.Background(), PeriodQuery{Period: "month", Month: "2025-01"})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), resp.Orders)
	assert.Equal(t, int64(130000), resp.Revenue)
}

func TestResolvePeriod_WeekStartsMonday(t *testing.T) {
	// 2025-01-01 là thứ Tư -> tuần từ 2024-12-30 đến 2025-01-05
	from, to, err := resolvePeriod(PeriodQuery{Period: "week", Date: "2025-01-01"})

	assert.NoError(t, err)
	assert.Equal(t, "2024-12-30", from)
	assert.Equal(t, "2025-01-05", to)
}

func TestResolvePeriod_InvalidMonth(t *testing.T) {
	_, _, err := resolvePeriod(PeriodQuery{Period: "month", Month: "tháng-một"})
	assert.Error(t, err)
}
