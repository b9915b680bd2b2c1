package repository

import (
	"github.com/pradiptha/cfaprep-be/internal/entity"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		Create(db *gorm.DB, user *entity.User) error
		FindByEmail(db *gorm.DB, email string) (*entity.User, error)
		FindByID(db *gorm.DB, id uint) (*entity.User, error)

		// Subscription operations
		FindSubscriptionByUserID(db *gorm.DB, userID uint) (*entity.Subscription, error)
		UpsertSubscription(db *gorm.DB, sub *entity.Subscription) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	if db == nil {
		db = r.db
	}
	return db.Create(user).Error
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if db == nil {
		db = r.db
	}
	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(db *gorm.DB, id uint) (*entity.User, error) {
	if db == nil {
		db = r.db
	}
	var user entity.User
	err := db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindSubscriptionByUserID(db *gorm.DB, userID uint) (*entity.Subscription, error) {
	if db == nil {
		db = r.db
	}
	var sub entity.Subscription
	err := db.Where("user_id = ?", userID).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *userRepository) UpsertSubscription(db *gorm.DB, sub *entity.Subscription) error {
	if db == nil {
		db = r.db
	}
	return db.Where("user_id = ?", sub.UserID).Assign(sub).FirstOrCreate(sub).Error
}
