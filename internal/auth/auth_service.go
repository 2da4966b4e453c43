package auth

import (
	"context"
	"os"
	"time"

	autherrors "github.com/hoanvukhai/cafe-shop-management/internal/auth/errors"
	"github.com/hoanvukhai/cafe-shop-management/internal/staff"
	stafferrors "github.com/hoanvukhai/cafe-shop-management/internal/staff/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp UserResponse, err error)

	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp UserResponse, err error)

	GetMe(ctx context.Context, userID string) (*UserResponse, error)

	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)

	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

type service struct {
	repo      Repository
	staffRepo staff.Repository
}

func NewService(repo Repository, staffRepo staff.Repository) Service {
	return &service{repo: repo, staffRepo: staffRepo}
}

func (s *service) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp UserResponse, err error) {
	// 1. Lấy user theo email
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", "", UserResponse{}, autherrors.ErrInvalidCredentials
	}

	// 2. Đối chiếu password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", UserResponse{}, autherrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", "", UserResponse{}, autherrors.ErrUserInactive
	}

	// 3. Phát token (claims: user_id, name, role)
	accessToken, err = s.generateToken(user, time.Minute*15)
	if err != nil {
		return "", "", UserResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err = s.generateToken(user, time.Hour*24*7)
	if err != nil {
		return "", "", UserResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return accessToken, refreshToken, toUserResponse(user), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, UserResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return "", "", UserResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", UserResponse{}, autherrors.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", "", UserResponse{}, autherrors.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return "", "", UserResponse{}, autherrors.ErrUserNotFound
	}

	newAccessToken, err := s.generateToken(user, time.Minute*15)
	if err != nil {
		return "", "", UserResponse{}, autherrors.ErrTokenGenerationFailed
	}

	newRefreshToken, err := s.generateToken(user, time.Hour*24*7)
	if err != nil {
		return "", "", UserResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, toUserResponse(user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*UserResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := toUserResponse(u)
	return &resp, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	// 1. Hash password
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	// 2. Nếu gắn với nhân sự thì nhân sự phải tồn tại
	if req.StaffID != nil {
		if _, err := s.staffRepo.FindByUserID(ctx, *req.StaffID); err != nil {
			return UserResponse{}, stafferrors.ErrStaffNotFound
		}
	}

	// 3. Tạo user
	user := &User{
		ID:       uuid.NewString(),
		StaffID:  req.StaffID,
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashed),
		Role:     req.Role,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return UserResponse{}, autherrors.ErrEmailAlreadyRegistered
	}

	return toUserResponse(user), nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return autherrors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return autherrors.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.repo.Update(ctx, user)
}

// reusable token generator
func (s *service) generateToken(u *User, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"name":    u.Name,
		"role":    u.Role, // middleware enforce theo role qua Casbin
		"exp":     time.Now().Add(expiry).Unix(),
	}
	if u.StaffID != nil {
		claims["staff_id"] = *u.StaffID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func toUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		StaffID: u.StaffID,
		Email:   u.Email,
		Name:    u.Name,
		Role:    u.Role,
	}
}
