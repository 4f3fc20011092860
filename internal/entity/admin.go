package entity

import (
	"github.com/nums-lab/backend/pkg/enum"
	"golang.org/x/exp/slices"
)

type AdminRole string

var (
	AdminRoleAdmin      = enum.New(AdminRole("admin"))
	AdminRoleSuperAdmin = enum.New(AdminRole("super_admin"))
)

type Permission string

var (
	PermissionUserManage   = enum.New(Permission("user_manage"))
	PermissionThemeManage  = enum.New(Permission("theme_manage"))
	PermissionGameManage   = enum.New(Permission("game_manage"))
	PermissionAdminManage  = enum.New(Permission("admin_manage"))
	PermissionSystemManage = enum.New(Permission("system_manage"))
)

type Admin struct {
	Base
	UserID      string            `gorm:"type:varchar(36);uniqueIndex;not null"`
	User        User              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Role        AdminRole         `gorm:"type:varchar(20);not null;default:admin"`
	Permissions Array[Permission] `gorm:"type:json;not null"`
	IsActive    bool              `gorm:"not null;default:true"`
}

func (a *Admin) TableName() string {
	return "admins"
}

// HasPermissions reports whether the grant covers every required permission.
// A super admin holds all permissions.
func (a *Admin) HasPermissions(required ...Permission) bool {
	if a.Role == AdminRoleSuperAdmin {
		return true
	}

	for _, p := range required {
		if !slices.Contains(a.Permissions, p) {
			return false
		}
	}

	return true
}
