package timesheet

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, r *Record) error
	Update(ctx context.Context, r *Record) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Record, error)
	FindOpenByUser(ctx context.Context, userID string) (*Record, error)
	List(ctx context.Context, userID, status string, from, to time.Time) ([]Record, error)
	ReplaceAdjustments(ctx context.Context, recordID string, adjustments []PayAdjustment) error
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

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) Update(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Omit("Adjustments").Save(rec).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Where("record_id = ?", id).
		Delete(&PayAdjustment{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&Record{}, "id = ?", id).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Preload("Adjustments").
		First(&rec, "id = ?", id).Error
	return &rec, err
}

func (r *repository) FindOpenByUser(ctx context.Context, userID string) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Preload("Adjustments").
		First(&rec, "user_id = ? AND check_out IS NULL", userID).Error
	return &rec, err
}

func (r *repository) List(ctx context.Context, userID, status string, from, to time.Time) ([]Record, error) {
	q := r.db.WithContext(ctx).
		Preload("Adjustments").
		Where("check_in >= ? AND check_in < ?", from, to)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []Record
	err := q.Order("check_in ASC").Find(&rows).Error
	return rows, err
}

// ReplaceAdjustments thay toàn bộ thưởng/phạt của một bản ghi.
func (r *repository) ReplaceAdjustments(ctx context.Context, recordID string, adjustments []PayAdjustment) error {
	if err := r.db.WithContext(ctx).
		Where("record_id = ?", recordID).
		Delete(&PayAdjustment{}).Error; err != nil {
		return err
	}
	if len(adjustments) == 0 {
		return nil
	}
	for i := range adjustments {
		adjustments[i].ID = 0
		adjustments[i].RecordID = recordID
	}
	return r.db.WithContext(ctx).Create(&adjustments).Error
}
