package entity

import (
	"time"

	"gorm.io/gorm"
)

// Topic - CFA Level I study area (e.g. "Ethical and Professional Standards")
type Topic struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"uniqueIndex;size:150;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	ExamWeight  int            `gorm:"default:0" json:"exam_weight"` // approximate exam weight in percent
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Topic) TableName() string {
	return "topics"
}

// Chapter - reading within a topic
type Chapter struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	TopicID   uint           `gorm:"not null;index" json:"topic_id"`
	Title     string         `gorm:"size:200;not null" json:"title"`
	Ordinal   int            `gorm:"not null;default:0" json:"ordinal"` // position within the topic
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Chapter) TableName() string {
	return "chapters"
}

// Question - multiple-choice practice question
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TopicID       uint           `gorm:"not null;index" json:"topic_id"`
	ChapterID     uint           `gorm:"not null;index" json:"chapter_id"`
	Prompt        string         `gorm:"type:text;not null" json:"prompt"`
	Options       string         `gorm:"type:text;not null" json:"options"` // JSON array of choices
	CorrectChoice int            `gorm:"not null" json:"-"`                 // index into Options
	Explanation   string         `gorm:"type:text" json:"explanation,omitempty"`
	Difficulty    string         `gorm:"size:20;not null;index;default:medium" json:"difficulty"` // easy, medium, hard
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
