package entity

import (
	"time"

	"gorm.io/gorm"
)

// User - registered student (or admin)
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool           `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Subscription - paywall state per user
type Subscription struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Plan      string         `gorm:"size:20;not null;default:free" json:"plan"` // free, premium
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// IsActive reports whether the subscription currently unlocks premium
// features.
func (s *Subscription) IsActive(now time.Time) bool {
	if s == nil || s.Plan != "premium" {
		return false
	}
	return s.ExpiresAt == nil || s.ExpiresAt.After(now)
}
