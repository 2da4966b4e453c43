package seed

import (
	"os"

	"github.com/hoanvukhai/cafe-shop-management/internal/auth"
	"github.com/hoanvukhai/cafe-shop-management/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Run nạp dữ liệu gốc của quán: menu, nhân sự, checklist, công thức,
// quyền theo vai trò và tài khoản admin đầu tiên. Chạy lại an toàn,
// bản ghi đã có thì giữ nguyên (ON CONFLICT DO NOTHING).
func Run(db *gorm.DB, logger *zap.Logger) error {
	log := logger.Named("seed")

	steps := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"menu_items", seedMenuItems},
		{"staff", seedStaff},
		{"tasks", seedTasks},
		{"recipes", seedRecipes},
		{"prep_instructions", seedPrepInstructions},
		{"role_permissions", seedRolePermissions},
		{"admin_user", seedAdminUser},
	}

	for _, s := range steps {
		if err := s.fn(db); err != nil {
			log.Error("seed step failed", zap.String("step", s.name), zap.Error(err))
			return err
		}
		log.Info("seed step done", zap.String("step", s.name))
	}
	return nil
}

func insertIgnoreDuplicates(db *gorm.DB, rows interface{}) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error
}

func seedRolePermissions(db *gorm.DB) error {
	rows := rolePermissions()
	return insertIgnoreDuplicates(db, &rows)
}

// seedAdminUser tạo tài khoản đăng nhập đầu tiên, gắn với user7 (chủ quán).
// Đổi mật khẩu ngay sau lần đăng nhập đầu.
func seedAdminUser(db *gorm.DB) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@cafe.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin12345"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminStaffID := "user7"
	user := auth.User{
		ID:       uuid.NewString(),
		StaffID:  &adminStaffID,
		Email:    email,
		Name:     "Admin",
		Password: string(hashed),
		Role:     "admin",
		IsActive: true,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&user).Error
}

func rolePermissions() []rbac.RolePermission {
	type perm struct{ resource, action string }

	adminPerms := []perm{
		{"menu", "read"},
		{"menu", "write"},
		{"recipe", "write"},
		{"staff", "read"},
		{"staff", "write"},
		{"order", "manage"},
		{"admin", "manage"},
		{"timesheet", "manage"},
		{"task", "manage"},
		{"analytics", "read"},
	}
	employeePerms := []perm{
		{"menu", "read"},
		{"staff", "read"},
	}

	var rows []rbac.RolePermission
	for _, p := range adminPerms {
		rows = append(rows, rbac.RolePermission{Role: "admin", Resource: p.resource, Action: p.action})
	}
	for _, p := range employeePerms {
		rows = append(rows, rbac.RolePermission{Role: "employee", Resource: p.resource, Action: p.action})
	}
	return rows
}
