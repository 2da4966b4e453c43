package order

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=order_repo.go -destination=mock/order_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	FindByPublicID(ctx context.Context, publicID string) (*Order, error)
	FindActiveByTable(ctx context.Context, tableNumber string) (*Order, error)
	FindActive(ctx context.Context) ([]Order, error)
	List(ctx context.Context, status string, from, to *time.Time, offset, limit int) ([]Order, int64, error)

	CreateItem(ctx context.Context, it *OrderItem) error
	UpdateItem(ctx context.Context, it *OrderItem) error
	DeleteItem(ctx context.Context, id string) error
	FindItemByPublicID(ctx context.Context, orderID, itemPublicID string) (*OrderItem, error)
	ListPendingItems(ctx context.Context) ([]QueueEntry, error)

	SwapTables(ctx context.Context, orderID, toTable, otherOrderID, fromTable string) error
	DeleteByDateRange(ctx context.Context, from, to time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) Update(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Omit("Items").Save(o).Error
}

func (r *repository) FindByPublicID(ctx context.Context, publicID string) (*Order, error) {
	var o Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.created_at ASC")
		}).
		First(&o, "public_id = ?", publicID).Error
	return &o, err
}

func (r *repository) FindActiveByTable(ctx context.Context, tableNumber string) (*Order, error) {
	var o Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.created_at ASC")
		}).
		First(&o, "table_number = ? AND status = ?", tableNumber, StatusPending).Error
	return &o, err
}

func (r *repository) FindActive(ctx context.Context) ([]Order, error) {
	var rows []Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.created_at ASC")
		}).
		Where("status = ?", StatusPending).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) List(ctx context.Context, status string, from, to *time.Time, offset, limit int) ([]Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at < ?", *to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Order
	err := q.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.created_at ASC")
	}).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) CreateItem(ctx context.Context, it *OrderItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *repository) UpdateItem(ctx context.Context, it *OrderItem) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *repository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&OrderItem{}, "id = ?", id).Error
}

func (r *repository) FindItemByPublicID(ctx context.Context, orderID, itemPublicID string) (*OrderItem, error) {
	var it OrderItem
	err := r.db.WithContext(ctx).
		First(&it, "order_id = ? AND public_id = ?", orderID, itemPublicID).Error
	return &it, err
}

// ListPendingItems là hàng đợi pha chế: món pending của mọi order đang mở,
// món gọi trước pha trước.
func (r *repository) ListPendingItems(ctx context.Context) ([]QueueEntry, error) {
	var rows []QueueEntry
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			i.public_id   AS item_id,
			o.public_id   AS order_id,
			o.table_number,
			i.dish_id,
			i.dish_name,
			i.quantity,
			i.note,
			i.status,
			i.created_at
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.status = ? AND i.status = ?
		ORDER BY i.created_at ASC
	`, StatusPending, ItemStatusPending).Scan(&rows).Error
	return rows, err
}

// SwapTables đổi bàn bằng raw SQL để chạy trong cùng transaction
// với các bước kiểm tra của service. otherOrderID khác rỗng nghĩa là
// bàn đích đang có order mở: order đó nhận lại bàn cũ (hoán đổi).
func (r *repository) SwapTables(ctx context.Context, orderID, toTable, otherOrderID, fromTable string) error {
	const query = `
		UPDATE orders
		SET table_number = $2, modified_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`
	if r.tx != nil {
		if _, err := r.tx.ExecContext(ctx, query, orderID, toTable); err != nil {
			return err
		}
		if otherOrderID == "" {
			return nil
		}
		_, err := r.tx.ExecContext(ctx, query, otherOrderID, fromTable)
		return err
	}

	const gormQuery = "UPDATE orders SET table_number = ?, modified_at = NOW() WHERE id = ? AND status = 'pending'"
	if err := r.db.WithContext(ctx).Exec(gormQuery, toTable, orderID).Error; err != nil {
		return err
	}
	if otherOrderID == "" {
		return nil
	}
	return r.db.WithContext(ctx).Exec(gormQuery, fromTable, otherOrderID).Error
}

// DeleteByDateRange phục vụ reset dữ liệu ngày: xóa cứng order và item.
func (r *repository) DeleteByDateRange(ctx context.Context, from, to time.Time) (int64, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&Order{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := r.db.WithContext(ctx).
		Where("order_id IN ?", ids).
		Delete(&OrderItem{}).Error; err != nil {
		return 0, err
	}

	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&Order{})
	return res.RowsAffected, res.Error
}
