package task

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *Task) error
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Task, error)
	FindAll(ctx context.Context) ([]Task, error)
	FindBySection(ctx context.Context, section string) ([]Task, error)
	ResetDaily(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Task{}, id).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *repository) FindAll(ctx context.Context) ([]Task, error) {
	var rows []Task
	err := r.db.WithContext(ctx).
		Order("section ASC, sort_order ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindBySection(ctx context.Context, section string) ([]Task, error) {
	var rows []Task
	err := r.db.WithContext(ctx).
		Where("section = ?", section).
		Order("sort_order ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

// ResetDaily bỏ dấu hoàn thành của việc sáng/chiều, việc định kỳ giữ nguyên.
func (r *repository) ResetDaily(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Task{}).
		Where("section IN ?", []string{SectionMorning, SectionAfternoon}).
		Updates(map[string]any{"completed": false, "today_completed": nil})
	return res.RowsAffected, res.Error
}
