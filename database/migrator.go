package database

import (
	"github.com/pradiptha/cfaprep-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Subscription{},
		&entity.Topic{},
		&entity.Chapter{},
		&entity.Question{},
		&entity.PracticeSession{},
		&entity.PracticeAnswer{},
		&entity.TopicProgress{},
		&entity.StudyStreak{},
		&entity.StudyRecommendation{},
		&entity.StudyPlan{},
		&entity.StudySession{},
	)
	return err
}
