package timesheet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hoanvukhai/cafe-shop-management/internal/menu"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/contextutil"
	"github.com/hoanvukhai/cafe-shop-management/internal/staff"
	stafferrors "github.com/hoanvukhai/cafe-shop-management/internal/staff/errors"
	timesheeterrors "github.com/hoanvukhai/cafe-shop-management/internal/timesheet/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, userID string) (*RecordResponse, error)
	CheckOut(ctx context.Context, userID string) (*RecordResponse, error)
	GetOpenShift(ctx context.Context, userID string) (*RecordResponse, error)

	List(ctx context.Context, q ListQuery) ([]RecordResponse, error)
	Summary(ctx context.Context, q ListQuery) (*SummaryResponse, error)

	AdminCreate(ctx context.Context, req AdminCreateRequest) (*RecordResponse, error)
	AdminUpdate(ctx context.Context, id string, req AdminUpdateRequest) (*RecordResponse, error)
	AdminDelete(ctx context.Context, id string) error

	Approve(ctx context.Context, id, adminID string) (*RecordResponse, error)
	Reject(ctx context.Context, id, adminID string) (*RecordResponse, error)

	ExportExcel(ctx context.Context, q ListQuery) ([]byte, string, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	staffRepo staff.Repository
	menuRepo  menu.Repository
}

func NewService(db *sql.DB, repo Repository, staffRepo staff.Repository, menuRepo menu.Repository) Service {
	return &service{db: db, repo: repo, staffRepo: staffRepo, menuRepo: menuRepo}
}

// CheckIn mở ca mới. Còn ca chưa check-out thì không cho mở ca thứ hai.
func (s *service) CheckIn(ctx context.Context, userID string) (*RecordResponse, error) {
	log := contextutil.GetLogger(ctx).Named("timesheet.service")

	st, err := s.staffRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, stafferrors.ErrStaffNotFound
	}
	if !st.Active {
		return nil, stafferrors.ErrStaffInactive
	}

	if _, err := s.repo.FindOpenByUser(ctx, userID); err == nil {
		return nil, timesheeterrors.ErrAlreadyCheckedIn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	rec := &Record{
		ID:            uuid.NewString(),
		UserID:        userID,
		CheckIn:       now,
		SalaryPerHour: st.SalaryPerHour, // chụp đơn giá lúc check-in, đổi lương sau không ảnh hưởng ca cũ
		Status:        StatusPending,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		log.Error(fmt.Sprintf("check-in cho %s thất bại: %v", userID, err))
		return nil, err
	}

	log.Info(fmt.Sprintf("%s check-in lúc %s", userID, now.Format("15:04:05")))
	resp := s.toResponse(ctx, rec)
	return &resp, nil
}

func (s *service) CheckOut(ctx context.Context, userID string) (*RecordResponse, error) {
	log := contextutil.GetLogger(ctx).Named("timesheet.service")

	rec, err := s.repo.FindOpenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, timesheeterrors.ErrNoOpenShift
		}
		return nil, err
	}

	now := time.Now()
	rec.CheckOut = &now
	rec.Recompute()

	if err := s.repo.Update(ctx, rec); err != nil {
		log.Error(fmt.Sprintf("check-out cho %s thất bại: %v", userID, err))
		return nil, err
	}

	log.Info(fmt.Sprintf("%s check-out, lương ca %d", userID, rec.Salary))
	resp := s.toResponse(ctx, rec)
	return &resp, nil
}

func (s *service) GetOpenShift(ctx context.Context, userID string) (*RecordResponse, error) {
	rec, err := s.repo.FindOpenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, timesheeterrors.ErrNoOpenShift
		}
		return nil, err
	}
	resp := s.toResponse(ctx, rec)
	return &resp, nil
}

func (s *service) List(ctx context.Context, q ListQuery) ([]RecordResponse, error) {
	from, to, err := resolveRange(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.List(ctx, q.UserID, q.Status, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]RecordResponse, 0, len(rows))
	for i := range rows {
		out = append(out, s.toResponse(ctx, &rows[i]))
	}
	return out, nil
}

func (s *service) Summary(ctx context.Context, q ListQuery) (*SummaryResponse, error) {
	from, to, err := resolveRange(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.List(ctx, q.UserID, q.Status, from, to)
	if err != nil {
		return nil, err
	}

	byUser := make(map[string]*SummaryEntry)
	var order []string
	var total int64
	for i := range rows {
		rec := &rows[i]
		entry, ok := byUser[rec.UserID]
		if !ok {
			entry = &SummaryEntry{UserID: rec.UserID, UserName: s.staffName(ctx, rec.UserID)}
			byUser[rec.UserID] = entry
			order = append(order, rec.UserID)
		}
		entry.Shifts++
		if rec.CheckOut != nil {
			entry.TotalHours += rec.CheckOut.Sub(rec.CheckIn).Hours()
		}
		entry.TotalSalary += rec.Salary
		total += rec.Salary
	}

	resp := &SummaryResponse{From: from, To: to, Total: total}
	for _, userID := range order {
		resp.Entries = append(resp.Entries, *byUser[userID])
	}
	return resp, nil
}

func (s *service) AdminCreate(ctx context.Context, req AdminCreateRequest) (*RecordResponse, error) {
	st, err := s.staffRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		return nil, stafferrors.ErrStaffNotFound
	}
	if req.CheckOut != nil && !req.CheckOut.After(req.CheckIn) {
		return nil, timesheeterrors.ErrCheckOutBeforeCheckIn
	}

	adjustments, err := s.buildAdjustments(ctx, req.Adjustments)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		SalaryPerHour: st.SalaryPerHour,
		Status:        StatusPending,
		Note:          req.Note,
		Adjustments:   adjustments,
	}
	rec.Recompute()

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	resp := s.toResponse(ctx, rec)
	return &resp, nil
}

// AdminUpdate chỉ sửa được bản ghi pending. Sửa thưởng/phạt không được
// làm lệch giờ công và lương cơ bản đã tính.
func (s *service) AdminUpdate(ctx context.Context, id string, req AdminUpdateRequest) (*RecordResponse, error) {
	log := contextutil.GetLogger(ctx).Named("timesheet.service")

	rec, err := s.findRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Status != StatusPending {
		return nil, timesheeterrors.ErrRecordNotPending
	}

	if req.CheckIn != nil {
		rec.CheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		rec.CheckOut = req.CheckOut
	}
	if rec.CheckOut != nil && !rec.CheckOut.After(rec.CheckIn) {
		return nil, timesheeterrors.ErrCheckOutBeforeCheckIn
	}
	if req.Note != nil {
		rec.Note = *req.Note
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	if req.Adjustments != nil {
		adjustments, err := s.buildAdjustments(ctx, *req.Adjustments)
		if err != nil {
			return nil, err
		}
		if err := txRepo.ReplaceAdjustments(ctx, rec.ID, adjustments); err != nil {
			return nil, err
		}
		rec.Adjustments = adjustments
	}

	rec.Recompute()
	if err := txRepo.Update(ctx, rec); err != nil {
		log.Error(fmt.Sprintf("cập nhật bản ghi %s thất bại: %v", id, err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	resp := s.toResponse(ctx, rec)
	return &resp, nil
}

func (s *service) AdminDelete(ctx context.Context, id string) error {
	rec, err := s.findRecord(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, rec.ID)
}

func (s *service) Approve(ctx context.Context, id, adminID string) (*RecordResponse, error) {
	return s.confirm(ctx, id, adminID, StatusApproved)
}

func (s *service) Reject(ctx context.Context, id, adminID string) (*RecordResponse, error) {
	return s.confirm(ctx, id, adminID, StatusRejected)
}

// confirm chốt ca: phải check-out rồi mới duyệt được.
func (s *service) confirm(ctx context.Context, id, adminID, status string) (*RecordResponse, error) {
	log := contextutil.GetLogger(ctx).Named("timesheet.service")

	rec, err := s.findRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Status != StatusPending {
		return nil, timesheeterrors.ErrRecordNotPending
	}
	if rec.CheckOut == nil {
		return nil, timesheeterrors.ErrShiftStillOpen
	}

	now := time.Now()
	rec.Status = status
	rec.ConfirmedBy = &adminID
	rec.ConfirmedAt = &now

	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}

	log.Info(fmt.Sprintf("bản ghi %s chuyển %s bởi %s", id, status, adminID))
	resp := s.toResponse(ctx, rec)
	return &resp, nil
}

// buildAdjustments áp mức phạt mặc định 50% giá món khi phạt theo món
// mà không nhập số tiền.
func (s *service) buildAdjustments(ctx context.Context, inputs []AdjustmentInput) ([]PayAdjustment, error) {
	out := make([]PayAdjustment, 0, len(inputs))
	for _, in := range inputs {
		amount := in.Amount
		reason := in.Reason
		if in.MenuItemID != nil {
			dish, err := s.menuRepo.FindByID(ctx, *in.MenuItemID)
			if err != nil {
				return nil, err
			}
			if amount == 0 {
				amount = dish.Price / 2
			}
			if reason == "" {
				reason = "Đền món " + dish.Name
			}
		}
		out = append(out, PayAdjustment{
			Kind:       in.Kind,
			MenuItemID: in.MenuItemID,
			Reason:     reason,
			Amount:     amount,
		})
	}
	return out, nil
}

func (s *service) findRecord(ctx context.Context, id string) (*Record, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, timesheeterrors.ErrRecordNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *service) staffName(ctx context.Context, userID string) string {
	st, err := s.staffRepo.FindByUserID(ctx, userID)
	if err != nil {
		return ""
	}
	return st.Name
}

func (s *service) toResponse(ctx context.Context, rec *Record) RecordResponse {
	// Ca chưa check-out thì chưa có giờ công và lương cơ bản
	var duration *float64
	var base *int64
	if rec.CheckOut != nil {
		d := rec.CheckOut.Sub(rec.CheckIn).Hours()
		duration = &d
		base = &rec.BaseSalary
	}

	adjustments := make([]AdjustmentResponse, 0, len(rec.Adjustments))
	for _, adj := range rec.Adjustments {
		adjustments = append(adjustments, AdjustmentResponse{
			Kind:       adj.Kind,
			MenuItemID: adj.MenuItemID,
			Reason:     adj.Reason,
			Amount:     adj.Amount,
		})
	}

	return RecordResponse{
		ID:            rec.ID,
		ShiftLabel:    rec.CheckIn.Format(ShiftLabelLayout),
		UserID:        rec.UserID,
		UserName:      s.staffName(ctx, rec.UserID),
		CheckIn:       rec.CheckIn,
		CheckOut:      rec.CheckOut,
		DurationHours: duration,
		SalaryPerHour: rec.SalaryPerHour,
		BaseSalary:    base,
		Salary:        rec.Salary,
		Status:        rec.Status,
		Note:          rec.Note,
		ConfirmedBy:   rec.ConfirmedBy,
		ConfirmedAt:   rec.ConfirmedAt,
		Adjustments:   adjustments,
	}
}

// resolveRange đổi bộ lọc kỳ sang [from, to). Tuần bắt đầu thứ Hai.
func resolveRange(q ListQuery) (time.Time, time.Time, error) {
	now := time.Now()

	switch q.Period {
	case "", "day":
		day := now
		if q.Date != "" {
			parsed, err := time.ParseInLocation("2006-01-02", q.Date, time.Local)
			if err != nil {
				return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidPeriod
			}
			day = parsed
		}
		from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
		return from, from.AddDate(0, 0, 1), nil

	case "week":
		day := now
		if q.Date != "" {
			parsed, err := time.ParseInLocation("2006-01-02", q.Date, time.Local)
			if err != nil {
				return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidPeriod
			}
			day = parsed
		}
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7 // Chủ nhật là cuối tuần
		}
		monday := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local).
			AddDate(0, 0, -(weekday - 1))
		return monday, monday.AddDate(0, 0, 7), nil

	case "month":
		if q.Month == "" {
			return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidPeriod
		}
		parsed, err := time.ParseInLocation("2006-01", q.Month, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidPeriod
		}
		return parsed, parsed.AddDate(0, 1, 0), nil

	case "year":
		if q.Year == "" {
			return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidPeriod
		}
		year, err := strconv.Atoi(q.Year)
		if err != nil {
			return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidPeriod
		}
		from := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
		return from, from.AddDate(1, 0, 0), nil

	case "range":
		from, err := time.ParseInLocation("2006-01-02", q.From, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidPeriod
		}
		to, err := time.ParseInLocation("2006-01-02", q.To, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidPeriod
		}
		return from, to.AddDate(0, 0, 1), nil
	}

	return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidPeriod
}
