package models

import (
	"time"
)

// Admin roles
const (
	AdminRoleSuper     = "super_admin"
	AdminRoleValidator = "validator_admin"
)

// Admin account statuses
const (
	AccountStatusActive    = "active"
	AccountStatusPending   = "pending"
	AccountStatusSuspended = "suspended"
)

type User struct {
	UserID   uint       `gorm:"primaryKey;column:user_id" json:"user_id"`
	Name     string     `gorm:"column:name" json:"name"`
	Email    string     `gorm:"column:email;unique" json:"email"`
	Password string     `gorm:"column:password" json:"-"`
	CreateAt time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

type Admin struct {
	AdminID       uint       `gorm:"primaryKey;column:admin_id" json:"admin_id"`
	Name          string     `gorm:"column:name" json:"name"`
	Email         string     `gorm:"column:email;unique" json:"email"`
	Password      string     `gorm:"column:password" json:"-"`
	AdminRole     string     `gorm:"column:admin_role" json:"admin_role"` // super_admin|validator_admin
	Country       *string    `gorm:"column:country" json:"country,omitempty"`
	AccountStatus string     `gorm:"column:account_status" json:"account_status"` // active|pending|suspended
	CreateAt      time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

func (Admin) TableName() string {
	return "admins"
}

// IsValidAdminRole reports whether role is one of the known admin roles.
func IsValidAdminRole(role string) bool {
	return role == AdminRoleSuper || role == AdminRoleValidator
}

// IsValidAccountStatus reports whether status is a known account status.
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountStatusActive, AccountStatusPending, AccountStatusSuspended:
		return true
	}
	return false
}
