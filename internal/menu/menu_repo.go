package menu

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=menu_repo.go -destination=mock/menu_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, m *MenuItem) error
	FindAll(ctx context.Context) ([]MenuItem, error)
	FindAvailable(ctx context.Context) ([]MenuItem, error)
	FindByID(ctx context.Context, id string) (*MenuItem, error)
	Update(ctx context.Context, m *MenuItem) error
	Delete(ctx context.Context, id string) error
	NextNumberForCategory(ctx context.Context, category string) (int64, error)
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

func (r *repository) Create(ctx context.Context, m *MenuItem) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindAll(ctx context.Context) ([]MenuItem, error) {
	var rows []MenuItem
	err := r.db.WithContext(ctx).
		Order("category ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAvailable(ctx context.Context) ([]MenuItem, error) {
	var rows []MenuItem
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Order("category ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*MenuItem, error) {
	var m MenuItem
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) Update(ctx context.Context, m *MenuItem) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&MenuItem{}, "id = ?", id).Error
}

// NextNumberForCategory lấy số thứ tự kế tiếp cho id món mới trong danh mục
// (coffee_013 -> 14). Dựa trên hậu tố lớn nhất, không phải COUNT, để không
// đụng id cũ sau khi xóa món.
func (r *repository) NextNumberForCategory(ctx context.Context, category string) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(CAST(RIGHT(id, 3) AS INT)), 0) + 1
		FROM menu_items
		WHERE category = ?
	`, category).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}
