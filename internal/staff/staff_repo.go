package staff

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_repo.go -destination=mock/staff_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s *Staff) error
	FindAll(ctx context.Context) ([]Staff, error)
	FindByUserID(ctx context.Context, userID string) (*Staff, error)
	Update(ctx context.Context, s *Staff) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Staff) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Staff, error) {
	var rows []Staff
	err := r.db.WithContext(ctx).Order("user_id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByUserID(ctx context.Context, userID string) (*Staff, error) {
	var s Staff
	err := r.db.WithContext(ctx).First(&s, "user_id = ?", userID).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *Staff) error {
	return r.db.WithContext(ctx).Save(s).Error
}
