package counter

import (
	"context"
	"database/sql"
	"fmt"
)

// Số thứ tự đơn theo ngày: HD<yyyymmdd>-0001, HD<yyyymmdd>-0002, ...
const SequencePrefix = "HD"

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	NextValue(ctx context.Context, orderDate string) (int64, error)
	Reset(ctx context.Context, orderDate string) error
}

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// NextValue tăng counter của ngày bằng UPSERT nguyên tử để tránh race
// giữa các request tạo đơn đồng thời. orderDate dạng yyyymmdd.
func (r *repository) NextValue(ctx context.Context, orderDate string) (int64, error) {
	query := `
		INSERT INTO order_counters (order_date, last_value, updated_at)
		VALUES ($1, 1, now())
		ON CONFLICT (order_date) DO UPDATE
		SET last_value = order_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`

	var nextValue int64
	if err := r.queryRower().QueryRowContext(ctx, query, orderDate).Scan(&nextValue); err != nil {
		return 0, err
	}

	return nextValue, nil
}

func (r *repository) Reset(ctx context.Context, orderDate string) error {
	query := `
		INSERT INTO order_counters (order_date, last_value, updated_at)
		VALUES ($1, 0, now())
		ON CONFLICT (order_date) DO UPDATE
		SET last_value = 0, updated_at = now()
	`

	exec := r.execer()
	_, err := exec.ExecContext(ctx, query, orderDate)
	return err
}

func (r *repository) queryRower() interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// FormatSequence trả về số hóa đơn dạng HD20250101-0001
func FormatSequence(orderDate string, value int64) string {
	return fmt.Sprintf("%s%s-%04d", SequencePrefix, orderDate, value)
}
