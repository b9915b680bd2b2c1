package repository

import (
	"github.com/pradiptha/cfaprep-be/internal/entity"
	"gorm.io/gorm"
)

type (
	StudyPlanRepository interface {
		CreatePlan(db *gorm.DB, plan *entity.StudyPlan) error
		CreateSessions(db *gorm.DB, sessions []entity.StudySession) error
		DeletePlansByUserID(db *gorm.DB, userID uint) error
		DeletePlan(db *gorm.DB, userID, planID uint) error
		FindPlansByUserID(db *gorm.DB, userID uint) ([]entity.StudyPlan, error)
		FindPlanByID(db *gorm.DB, userID, planID uint) (*entity.StudyPlan, error)
		FindSessionsByPlanID(db *gorm.DB, planID uint) ([]entity.StudySession, error)
	}

	studyPlanRepository struct {
		db *gorm.DB
	}
)

func NewStudyPlanRepository(db *gorm.DB) StudyPlanRepository {
	return &studyPlanRepository{db: db}
}

func (r *studyPlanRepository) CreatePlan(db *gorm.DB, plan *entity.StudyPlan) error {
	if db == nil {
		db = r.db
	}
	return db.Create(plan).Error
}

func (r *studyPlanRepository) CreateSessions(db *gorm.DB, sessions []entity.StudySession) error {
	if db == nil {
		db = r.db
	}
	if len(sessions) == 0 {
		return nil
	}
	return db.Create(&sessions).Error
}

func (r *studyPlanRepository) DeletePlansByUserID(db *gorm.DB, userID uint) error {
	if db == nil {
		db = r.db
	}
	var plans []entity.StudyPlan
	if err := db.Where("user_id = ?", userID).Find(&plans).Error; err != nil {
		return err
	}
	for _, plan := range plans {
		if err := db.Where("plan_id = ?", plan.ID).Delete(&entity.StudySession{}).Error; err != nil {
			return err
		}
	}
	return db.Where("user_id = ?", userID).Delete(&entity.StudyPlan{}).Error
}

func (r *studyPlanRepository) DeletePlan(db *gorm.DB, userID, planID uint) error {
	if db == nil {
		db = r.db
	}
	result := db.Where("id = ? AND user_id = ?", planID, userID).Delete(&entity.StudyPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return db.Where("plan_id = ?", planID).Delete(&entity.StudySession{}).Error
}

func (r *studyPlanRepository) FindPlansByUserID(db *gorm.DB, userID uint) ([]entity.StudyPlan, error) {
	if db == nil {
		db = r.db
	}
	var plans []entity.StudyPlan
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&plans).Error
	return plans, err
}

func (r *studyPlanRepository) FindPlanByID(db *gorm.DB, userID, planID uint) (*entity.StudyPlan, error) {
	if db == nil {
		db = r.db
	}
	var plan entity.StudyPlan
	err := db.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *studyPlanRepository) FindSessionsByPlanID(db *gorm.DB, planID uint) ([]entity.StudySession, error) {
	if db == nil {
		db = r.db
	}
	var sessions []entity.StudySession
	err := db.Where("plan_id = ?", planID).Order("position ASC").Find(&sessions).Error
	return sessions, err
}
