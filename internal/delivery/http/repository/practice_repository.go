package repository

import (
	"time"

	"github.com/pradiptha/cfaprep-be/internal/entity"
	"gorm.io/gorm"
)

type (
	PracticeRepository interface {
		// Session operations
		CreateSession(db *gorm.DB, session *entity.PracticeSession) error
		UpdateSession(db *gorm.DB, session *entity.PracticeSession) error
		FindSessionBySessionID(db *gorm.DB, sessionID string) (*entity.PracticeSession, error)
		CountCompletedSessionsByUser(db *gorm.DB, userID uint) (int64, error)

		// Answer operations
		CreateAnswer(db *gorm.DB, answer *entity.PracticeAnswer) error
		FindAnswersBySessionID(db *gorm.DB, sessionID string) ([]entity.PracticeAnswer, error)
		FindExistingAnswer(db *gorm.DB, sessionID string, questionID uint) (*entity.PracticeAnswer, error)
		CountAnswersByUserSince(db *gorm.DB, userID uint, since time.Time) (int64, error)

		// Progress operations
		FindProgressByUserID(db *gorm.DB, userID uint) ([]entity.TopicProgress, error)
		FindProgressByUserAndTopic(db *gorm.DB, userID, topicID uint) (*entity.TopicProgress, error)
		UpsertProgress(db *gorm.DB, progress *entity.TopicProgress) error

		// Streak operations
		FindStreakByUserID(db *gorm.DB, userID uint) (*entity.StudyStreak, error)
		UpsertStreak(db *gorm.DB, streak *entity.StudyStreak) error

		// Recommendation cache operations
		FindRecommendationByUserID(db *gorm.DB, userID uint) (*entity.StudyRecommendation, error)
		UpsertRecommendation(db *gorm.DB, rec *entity.StudyRecommendation) error
	}

	practiceRepository struct {
		db *gorm.DB
	}
)

func NewPracticeRepository(db *gorm.DB) PracticeRepository {
	return &practiceRepository{db: db}
}

// Session operations
func (r *practiceRepository) CreateSession(db *gorm.DB, session *entity.PracticeSession) error {
	if db == nil {
		db = r.db
	}
	return db.Create(session).Error
}

func (r *practiceRepository) UpdateSession(db *gorm.DB, session *entity.PracticeSession) error {
	if db == nil {
		db = r.db
	}
	return db.Save(session).Error
}

func (r *practiceRepository) FindSessionBySessionID(db *gorm.DB, sessionID string) (*entity.PracticeSession, error) {
	if db == nil {
		db = r.db
	}
	var session entity.PracticeSession
	err := db.Where("session_id = ?", sessionID).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *practiceRepository) CountCompletedSessionsByUser(db *gorm.DB, userID uint) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.PracticeSession{}).
		Where("user_id = ? AND status = ?", userID, "completed").
		Count(&count).Error
	return count, err
}

// Answer operations
func (r *practiceRepository) CreateAnswer(db *gorm.DB, answer *entity.PracticeAnswer) error {
	if db == nil {
		db = r.db
	}
	return db.Create(answer).Error
}

func (r *practiceRepository) FindAnswersBySessionID(db *gorm.DB, sessionID string) ([]entity.PracticeAnswer, error) {
	if db == nil {
		db = r.db
	}
	var answers []entity.PracticeAnswer
	err := db.Where("session_id = ?", sessionID).Order("answered_at ASC, id ASC").Find(&answers).Error
	return answers, err
}

func (r *practiceRepository) FindExistingAnswer(db *gorm.DB, sessionID string, questionID uint) (*entity.PracticeAnswer, error) {
	if db == nil {
		db = r.db
	}
	var answer entity.PracticeAnswer
	err := db.Where("session_id = ? AND question_id = ?", sessionID, questionID).First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *practiceRepository) CountAnswersByUserSince(db *gorm.DB, userID uint, since time.Time) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.PracticeAnswer{}).
		Where("user_id = ? AND answered_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}

// Progress operations
func (r *practiceRepository) FindProgressByUserID(db *gorm.DB, userID uint) ([]entity.TopicProgress, error) {
	if db == nil {
		db = r.db
	}
	var progress []entity.TopicProgress
	err := db.Where("user_id = ?", userID).Order("topic_id ASC").Find(&progress).Error
	return progress, err
}

func (r *practiceRepository) FindProgressByUserAndTopic(db *gorm.DB, userID, topicID uint) (*entity.TopicProgress, error) {
	if db == nil {
		db = r.db
	}
	var progress entity.TopicProgress
	err := db.Where("user_id = ? AND topic_id = ?", userID, topicID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *practiceRepository) UpsertProgress(db *gorm.DB, progress *entity.TopicProgress) error {
	if db == nil {
		db = r.db
	}
	return db.Where("user_id = ? AND topic_id = ?", progress.UserID, progress.TopicID).
		Assign(progress).FirstOrCreate(progress).Error
}

// Streak operations
func (r *practiceRepository) FindStreakByUserID(db *gorm.DB, userID uint) (*entity.StudyStreak, error) {
	if db == nil {
		db = r.db
	}
	var streak entity.StudyStreak
	err := db.Where("user_id = ?", userID).First(&streak).Error
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

func (r *practiceRepository) UpsertStreak(db *gorm.DB, streak *entity.StudyStreak) error {
	if db == nil {
		db = r.db
	}
	return db.Where("user_id = ?", streak.UserID).Assign(streak).FirstOrCreate(streak).Error
}

// Recommendation cache operations
func (r *practiceRepository) FindRecommendationByUserID(db *gorm.DB, userID uint) (*entity.StudyRecommendation, error) {
	if db == nil {
		db = r.db
	}
	var rec entity.StudyRecommendation
	err := db.Where("user_id = ?", userID).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *practiceRepository) UpsertRecommendation(db *gorm.DB, rec *entity.StudyRecommendation) error {
	if db == nil {
		db = r.db
	}
	return db.Where("user_id = ?", rec.UserID).Assign(rec).FirstOrCreate(rec).Error
}
