package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/hoanvukhai/cafe-shop-management/internal/shared/contextutil"
	taskerrors "github.com/hoanvukhai/cafe-shop-management/internal/task/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	GetChecklist(ctx context.Context) (*ChecklistResponse, error)
	Toggle(ctx context.Context, id uint) (*TaskResponse, error)

	Create(ctx context.Context, req CreateTaskRequest) (*TaskResponse, error)
	Update(ctx context.Context, id uint, req UpdateTaskRequest) (*TaskResponse, error)
	Delete(ctx context.Context, id uint) error

	ResetDaily(ctx context.Context) (int64, error)
	SweepOverdue(ctx context.Context) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetChecklist trả toàn bộ checklist. Việc định kỳ quá hạn được mở lại
// ngay lúc đọc, không chờ worker quét.
func (s *service) GetChecklist(ctx context.Context) (*ChecklistResponse, error) {
	if _, err := s.SweepOverdue(ctx); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &ChecklistResponse{
		Morning:   []TaskResponse{},
		Afternoon: []TaskResponse{},
		Weekly:    []TaskResponse{},
	}
	for _, t := range rows {
		tr := toResponse(t)
		switch t.Section {
		case SectionMorning:
			resp.Morning = append(resp.Morning, tr)
			if !t.Completed {
				resp.Pending.Morning++
			}
		case SectionAfternoon:
			resp.Afternoon = append(resp.Afternoon, tr)
			if !t.Completed {
				resp.Pending.Afternoon++
			}
		case SectionWeekly:
			resp.Weekly = append(resp.Weekly, tr)
			if !t.Completed {
				resp.Pending.Weekly++
			}
		}
	}
	return resp, nil
}

// Toggle đánh dấu xong/chưa xong. Với việc định kỳ, bỏ đánh dấu sẽ
// khôi phục mốc hoàn thành trước đó.
func (s *service) Toggle(ctx context.Context, id uint) (*TaskResponse, error) {
	log := contextutil.GetLogger(ctx).Named("task.service")

	t, err := s.findTask(ctx, id)
	if err != nil {
		return nil, err
	}

	today := Today()
	if t.Completed {
		// Bỏ đánh dấu: dấu hôm nay lui về làm mốc hoàn thành gần nhất
		// để chu kỳ định kỳ không mất lịch sử.
		t.Completed = false
		if t.TodayCompleted != nil {
			t.LastCompleted = t.TodayCompleted
		}
		t.TodayCompleted = nil
	} else {
		t.Completed = true
		if t.TodayCompleted != nil {
			t.LastCompleted = t.TodayCompleted
		}
		t.TodayCompleted = &today
	}

	if err := s.repo.Update(ctx, t); err != nil {
		log.Error(fmt.Sprintf("toggle việc %d thất bại: %v", id, err))
		return nil, err
	}

	resp := toResponse(*t)
	return &resp, nil
}

func (s *service) Create(ctx context.Context, req CreateTaskRequest) (*TaskResponse, error) {
	if !IsValidSection(req.Section) {
		return nil, taskerrors.ErrInvalidSection
	}
	if req.Section == SectionWeekly && req.FrequencyDays < 1 {
		return nil, taskerrors.ErrWeeklyNeedsFrequency
	}

	t := &Task{
		Description:   req.Description,
		Section:       req.Section,
		FrequencyDays: req.FrequencyDays,
		SortOrder:     req.SortOrder,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	resp := toResponse(*t)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateTaskRequest) (*TaskResponse, error) {
	t, err := s.findTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.FrequencyDays != nil {
		if t.Section == SectionWeekly && *req.FrequencyDays < 1 {
			return nil, taskerrors.ErrWeeklyNeedsFrequency
		}
		t.FrequencyDays = *req.FrequencyDays
	}
	if req.SortOrder != nil {
		t.SortOrder = *req.SortOrder
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	resp := toResponse(*t)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.findTask(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ResetDaily là nút "bắt đầu ngày mới" của quản lý: xóa dấu hoàn thành
// của việc sáng/chiều. Không chạy tự động lúc nửa đêm vì quán có hôm
// đóng cửa muộn qua ngày.
func (s *service) ResetDaily(ctx context.Context) (int64, error) {
	log := contextutil.GetLogger(ctx).Named("task.service")

	affected, err := s.repo.ResetDaily(ctx)
	if err != nil {
		log.Error(fmt.Sprintf("reset checklist thất bại: %v", err))
		return 0, err
	}

	log.Info(fmt.Sprintf("đã reset %d việc sáng/chiều", affected))
	return affected, nil
}

// SweepOverdue mở lại việc định kỳ đã quá FrequencyDays ngày.
func (s *service) SweepOverdue(ctx context.Context) (int, error) {
	rows, err := s.repo.FindBySection(ctx, SectionWeekly)
	if err != nil {
		return 0, err
	}

	today := Today()
	reopened := 0
	for i := range rows {
		t := &rows[i]
		if !t.IsOverdue(today) {
			continue
		}
		t.Reopen()
		if err := s.repo.Update(ctx, t); err != nil {
			return reopened, err
		}
		reopened++
	}

	if reopened > 0 {
		contextutil.GetLogger(ctx).Named("task.service").
			Info(fmt.Sprintf("đã mở lại %d việc định kỳ quá hạn", reopened))
	}
	return reopened, nil
}

func (s *service) findTask(ctx context.Context, id uint) (*Task, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, taskerrors.ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

func toResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:             t.ID,
		Description:    t.Description,
		Section:        t.Section,
		FrequencyDays:  t.FrequencyDays,
		Completed:      t.Completed,
		LastCompleted:  t.LastCompleted,
		TodayCompleted: t.TodayCompleted,
	}
}
