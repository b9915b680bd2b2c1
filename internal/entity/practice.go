package entity

import (
	"time"

	"gorm.io/gorm"
)

// PracticeSession - one timed run of practice questions for a topic
type PracticeSession struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	SessionID     string         `gorm:"uniqueIndex;size:100;not null" json:"session_id"` // uuid
	UserID        uint           `gorm:"not null;index" json:"user_id"`
	TopicID       uint           `gorm:"not null;index" json:"topic_id"`
	ChapterID     uint           `gorm:"index" json:"chapter_id,omitempty"` // 0 means whole topic
	Difficulty    string         `gorm:"size:20" json:"difficulty,omitempty"`
	Status        string         `gorm:"size:20;not null;index;default:active" json:"status"` // active, completed
	QuestionCount int            `gorm:"not null" json:"question_count"`
	CorrectCount  int            `gorm:"default:0" json:"correct_count"`
	Score         int            `gorm:"default:0" json:"score"` // 0-100
	StartedAt     time.Time      `gorm:"autoCreateTime" json:"started_at"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PracticeSession) TableName() string {
	return "practice_sessions"
}

// PracticeAnswer - a single submitted answer within a session
type PracticeAnswer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	SessionID  string         `gorm:"size:100;not null;index" json:"session_id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	QuestionID uint           `gorm:"not null;index" json:"question_id"`
	Choice     int            `gorm:"not null" json:"choice"`
	IsCorrect  bool           `gorm:"not null" json:"is_correct"`
	AnsweredAt time.Time      `gorm:"autoCreateTime" json:"answered_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PracticeAnswer) TableName() string {
	return "practice_answers"
}

// TopicProgress - per user per topic answer aggregates, kept current by
// the practice usecase and read by the study plan generator
type TopicProgress struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          uint           `gorm:"not null;uniqueIndex:idx_user_topic" json:"user_id"`
	TopicID         uint           `gorm:"not null;uniqueIndex:idx_user_topic" json:"topic_id"`
	Attempted       int            `gorm:"default:0" json:"attempted"`
	Correct         int            `gorm:"default:0" json:"correct"`
	Accuracy        int            `gorm:"default:0" json:"accuracy"` // 0-100, derived
	LastPracticedAt *time.Time     `json:"last_practiced_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TopicProgress) TableName() string {
	return "topic_progress"
}

// StudyStreak - consecutive practice days per user
type StudyStreak struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	UserID       uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	CurrentDays  int            `gorm:"default:0" json:"current_days"`
	BestDays     int            `gorm:"default:0" json:"best_days"`
	LastPractice *time.Time     `json:"last_practice,omitempty"` // date only
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (StudyStreak) TableName() string {
	return "study_streaks"
}

// StudyRecommendation - cached AI study advice per user
type StudyRecommendation struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	GeneratedBy string         `gorm:"size:20;default:ai" json:"generated_by"` // ai, fallback
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (StudyRecommendation) TableName() string {
	return "study_recommendations"
}
