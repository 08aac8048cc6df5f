package models

import "time"

// AdminAction is the append-only audit trail of admin activity.
// Rows are written best-effort alongside the action they describe and
// are never updated or deleted.
type AdminAction struct {
	ActionID    uint      `gorm:"primaryKey;column:action_id" json:"action_id"`
	AdminEmail  string    `gorm:"column:admin_email;index" json:"admin_email"`
	Action      string    `gorm:"column:action" json:"action"`
	TargetType  string    `gorm:"column:target_type" json:"target_type"`
	TargetID    *string   `gorm:"column:target_id" json:"target_id,omitempty"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	IPAddress   string    `gorm:"column:ip_address" json:"ip_address"`
	UserAgent   *string   `gorm:"column:user_agent" json:"user_agent,omitempty"`
	CreateAt    time.Time `gorm:"column:create_at" json:"create_at"`
}

func (AdminAction) TableName() string { return "admin_actions" }
