package rbac

import "time"

// RolePermission là policy hàng của Casbin: role được làm action trên resource.
// Seed bởi cmd/migrate, admin có thể chỉnh trực tiếp trong DB.
type RolePermission struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Role      string `gorm:"type:varchar(30);not null;uniqueIndex:uq_role_permission"`
	Resource  string `gorm:"type:varchar(50);not null;uniqueIndex:uq_role_permission"`
	Action    string `gorm:"type:varchar(30);not null;uniqueIndex:uq_role_permission"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RolePermission) TableName() string {
	return "role_permissions"
}
