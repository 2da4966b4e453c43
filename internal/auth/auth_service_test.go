package auth

import (
	"context"
	"testing"

	autherrors "github.com/hoanvukhai/cafe-shop-management/internal/auth/errors"
	"github.com/hoanvukhai/cafe-shop-management/internal/staff"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	createFn      func(ctx context.Context, u *User) error
	findByEmailFn func(ctx context.Context, email string) (*User, error)
	findByIDFn    func(ctx context.Context, id string) (*User, error)
	updateFn      func(ctx context.Context, u *User) error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *User) error { return f.createFn(ctx, u) }
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*User, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeUserRepo) Update(ctx context.Context, u *User) error { return f.updateFn(ctx, u) }

type fakeStaffRepo struct {
	findByUserIDFn func(ctx context.Context, userID string) (*staff.Staff, error)
}

func (f *fakeStaffRepo) Create(ctx context.Context, s *staff.Staff) error { return nil }
func (f *fakeStaffRepo) FindAll(ctx context.Context) ([]staff.Staff, error) {
	return nil, nil
}
func (f *fakeStaffRepo) FindByUserID(ctx context.Context, userID string) (*staff.Staff, error) {
	return f.findByUserIDFn(ctx, userID)
}
func (f *fakeStaffRepo) Update(ctx context.Context, s *staff.Staff) error { return nil }

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	staffID := "user1"
	repo := &fakeUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return &User{
				ID:       "7b0f4a1e-9f0f-4ad0-a2a1-2f6f6f3a9c11",
				StaffID:  &staffID,
				Email:    email,
				Name:     "Bảo",
				Password: hashPassword(t, "matkhau123"),
				Role:     "employee",
				IsActive: true,
			}, nil
		},
	}
	svc := NewService(repo, &fakeStaffRepo{})

	access, refresh, resp, err := svc.Login(context.Background(), "bao@quan.vn", "matkhau123")

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "employee", resp.Role)
	assert.Equal(t, "Bảo", resp.Name)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return &User{Password: hashPassword(t, "matkhau123"), IsActive: true}, nil
		},
	}
	svc := NewService(repo, &fakeStaffRepo{})

	_, _, _, err := svc.Login(context.Background(), "bao@quan.vn", "sai-mat-khau")

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return &User{Password: hashPassword(t, "matkhau123"), IsActive: false}, nil
		},
	}
	svc := NewService(repo, &fakeStaffRepo{})

	_, _, _, err := svc.Login(context.Background(), "bao@quan.vn", "matkhau123")

	assert.ErrorIs(t, err, autherrors.ErrUserInactive)
}

func TestRefreshToken_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewService(&fakeUserRepo{}, &fakeStaffRepo{})

	_, _, _, err := svc.RefreshToken(context.Background(), "khong-phai-jwt")

	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &User{
		ID:       "7b0f4a1e-9f0f-4ad0-a2a1-2f6f6f3a9c11",
		Email:    "bao@quan.vn",
		Name:     "Bảo",
		Password: hashPassword(t, "matkhau123"),
		Role:     "employee",
		IsActive: true,
	}
	repo := &fakeUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) { return user, nil },
		findByIDFn: func(ctx context.Context, id string) (*User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	}
	svc := NewService(repo, &fakeStaffRepo{})

	_, refresh, _, err := svc.Login(context.Background(), user.Email, "matkhau123")
	assert.NoError(t, err)

	newAccess, newRefresh, resp, err := svc.RefreshToken(context.Background(), refresh)

	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, user.Email, resp.Email)
}

func TestRegister_StaffMustExist(t *testing.T) {
	staffID := "user99"
	staffRepo := &fakeStaffRepo{
		findByUserIDFn: func(ctx context.Context, userID string) (*staff.Staff, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(&fakeUserRepo{}, staffRepo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "moi@quan.vn",
		Name:     "Người mới",
		Password: "matkhau123",
		Role:     "employee",
		StaffID:  &staffID,
	})

	assert.Error(t, err)
}
