package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hoanvukhai/cafe-shop-management/internal/shared/contextutil"
	stafferrors "github.com/hoanvukhai/cafe-shop-management/internal/staff/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_service.go -destination=mock/staff_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]StaffResponse, error)
	GetByUserID(ctx context.Context, userID string) (*StaffResponse, error)
	Create(ctx context.Context, req CreateStaffRequest) (*StaffResponse, error)
	Update(ctx context.Context, userID string, req UpdateStaffRequest) (*StaffResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]StaffResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]StaffResponse, 0, len(rows))
	for _, st := range rows {
		out = append(out, toResponse(st))
	}
	return out, nil
}

func (s *service) GetByUserID(ctx context.Context, userID string) (*StaffResponse, error) {
	st, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, mapStaffError(err)
	}
	resp := toResponse(*st)
	return &resp, nil
}

func (s *service) Create(ctx context.Context, req CreateStaffRequest) (*StaffResponse, error) {
	log := contextutil.GetLogger(ctx).Named("staff.service")

	st := &Staff{
		UserID:        req.UserID,
		Name:          req.Name,
		Role:          req.Role,
		SalaryPerHour: req.SalaryPerHour,
		Active:        true,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		log.Error(fmt.Sprintf("tạo nhân viên %s thất bại: %v", req.UserID, err))
		return nil, mapStaffError(err)
	}

	log.Info(fmt.Sprintf("đã thêm nhân viên %s (%s)", st.Name, st.UserID))
	resp := toResponse(*st)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, userID string, req UpdateStaffRequest) (*StaffResponse, error) {
	log := contextutil.GetLogger(ctx).Named("staff.service")

	st, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, mapStaffError(err)
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Role != nil {
		st.Role = *req.Role
	}
	if req.SalaryPerHour != nil {
		st.SalaryPerHour = *req.SalaryPerHour
	}
	if req.Active != nil {
		st.Active = *req.Active
	}

	if err := s.repo.Update(ctx, st); err != nil {
		log.Error(fmt.Sprintf("cập nhật nhân viên %s thất bại: %v", userID, err))
		return nil, mapStaffError(err)
	}

	resp := toResponse(*st)
	return &resp, nil
}

func mapStaffError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stafferrors.ErrStaffNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return stafferrors.ErrStaffAlreadyExists
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return stafferrors.ErrStaffAlreadyExists
	}
	return err
}

func toResponse(s Staff) StaffResponse {
	return StaffResponse{
		UserID:        s.UserID,
		Name:          s.Name,
		Role:          s.Role,
		SalaryPerHour: s.SalaryPerHour,
		Active:        s.Active,
	}
}
