package analytics

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=analytics_repo.go -destination=mock/analytics_repo_mock.go -package=mock
type Repository interface {
	// Transaction chạy fn trên một Repository gắn transaction, để đánh dấu
	// sự kiện đã xử lý và bồi số liệu trong cùng một tx.
	Transaction(ctx context.Context, fn func(txRepo Repository) error) error

	// MarkProcessed ghi dấu sự kiện, trả về false nếu đã xử lý trước đó.
	MarkProcessed(ctx context.Context, eventKey string) (bool, error)

	UpsertDailySale(ctx context.Context, date string, orders, revenue, itemsSold int64) error
	UpsertDishSale(ctx context.Context, date, dishID, dishName string, quantity, revenue int64) error
	UpsertHourlySale(ctx context.Context, date string, hour int, orders, revenue int64) error

	DailySalesBetween(ctx context.Context, from, to string) ([]DailySale, error)
	TopDishesBetween(ctx context.Context, from, to string, limit int) ([]BestSellerEntry, error)
	HourlySalesBetween(ctx context.Context, from, to string) ([]PeakHourEntry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Transaction(ctx context.Context, fn func(txRepo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) MarkProcessed(ctx context.Context, eventKey string) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ProcessedEvent{EventKey: eventKey, ProcessedAt: time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) UpsertDailySale(ctx context.Context, date string, orders, revenue, itemsSold int64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.Assignments(map[string]any{
				"orders":     gorm.Expr("daily_sales.orders + ?", orders),
				"revenue":    gorm.Expr("daily_sales.revenue + ?", revenue),
				"items_sold": gorm.Expr("daily_sales.items_sold + ?", itemsSold),
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(&DailySale{Date: date, Orders: orders, Revenue: revenue, ItemsSold: itemsSold}).Error
}

func (r *repository) UpsertDishSale(ctx context.Context, date, dishID, dishName string, quantity, revenue int64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}, {Name: "dish_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("dish_sales.quantity + ?", quantity),
				"revenue":    gorm.Expr("dish_sales.revenue + ?", revenue),
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(&DishSale{Date: date, DishID: dishID, DishName: dishName, Quantity: quantity, Revenue: revenue}).Error
}

func (r *repository) UpsertHourlySale(ctx context.Context, date string, hour int, orders, revenue int64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}, {Name: "hour"}},
			DoUpdates: clause.Assignments(map[string]any{
				"orders":     gorm.Expr("hourly_sales.orders + ?", orders),
				"revenue":    gorm.Expr("hourly_sales.revenue + ?", revenue),
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(&HourlySale{Date: date, Hour: hour, Orders: orders, Revenue: revenue}).Error
}

func (r *repository) DailySalesBetween(ctx context.Context, from, to string) ([]DailySale, error) {
	var rows []DailySale
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) TopDishesBetween(ctx context.Context, from, to string, limit int) ([]BestSellerEntry, error) {
	var rows []BestSellerEntry
	err := r.db.WithContext(ctx).Raw(`
		SELECT dish_id, dish_name, SUM(quantity) AS quantity, SUM(revenue) AS revenue
		FROM dish_sales
		WHERE date >= ? AND date <= ?
		GROUP BY dish_id, dish_name
		ORDER BY quantity DESC, revenue DESC
		LIMIT ?
	`, from, to, limit).Scan(&rows).Error
	return rows, err
}

func (r *repository) HourlySalesBetween(ctx context.Context, from, to string) ([]PeakHourEntry, error) {
	var rows []PeakHourEntry
	err := r.db.WithContext(ctx).Raw(`
		SELECT hour, SUM(orders) AS orders, SUM(revenue) AS revenue
		FROM hourly_sales
		WHERE date >= ? AND date <= ?
		GROUP BY hour
		ORDER BY orders DESC, hour ASC
	`, from, to).Scan(&rows).Error
	return rows, err
}
