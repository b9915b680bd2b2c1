package entity

import (
	"time"

	"gorm.io/gorm"
)

// StudyPlan - persisted generator output; regeneration replaces the
// user's previous plan wholesale
type StudyPlan struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	UserID           uint           `gorm:"not null;index" json:"user_id"`
	Name             string         `gorm:"size:150;not null" json:"name"`
	StartDate        time.Time      `gorm:"not null" json:"start_date"`
	EndDate          time.Time      `gorm:"not null" json:"end_date"`
	DailyMinutes     int            `gorm:"not null" json:"daily_minutes"`
	FocusAreas       string         `gorm:"type:text;not null" json:"focus_areas"` // JSON array of focus areas with topic names
	Truncated        bool           `gorm:"default:false" json:"truncated"`
	RequestedMinutes int            `gorm:"default:0" json:"requested_minutes"`
	AvailableMinutes int            `gorm:"default:0" json:"available_minutes"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (StudyPlan) TableName() string {
	return "study_plans"
}

// StudySession - one scheduled block of a study plan, immutable once
// emitted
type StudySession struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	PlanID          uint           `gorm:"not null;index" json:"plan_id"`
	Day             time.Time      `gorm:"not null" json:"day"`
	TopicID         uint           `gorm:"not null;index" json:"topic_id"`
	DurationMinutes int            `gorm:"not null" json:"duration_minutes"`
	Position        int            `gorm:"not null;default:0" json:"position"` // order within the plan
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}
