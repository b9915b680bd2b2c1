package repository

import (
	"github.com/pradiptha/cfaprep-be/internal/entity"
	"gorm.io/gorm"
)

type (
	ContentRepository interface {
		// Topic operations
		CreateTopic(db *gorm.DB, topic *entity.Topic) error
		UpdateTopic(db *gorm.DB, topic *entity.Topic) error
		DeleteTopic(db *gorm.DB, id uint) error
		FindTopicByID(db *gorm.DB, id uint) (*entity.Topic, error)
		FindAllTopics(db *gorm.DB) ([]entity.Topic, error)
		CountChaptersByTopic(db *gorm.DB, topicID uint) (int64, error)

		// Chapter operations
		CreateChapter(db *gorm.DB, chapter *entity.Chapter) error
		UpdateChapter(db *gorm.DB, chapter *entity.Chapter) error
		DeleteChapter(db *gorm.DB, id uint) error
		FindChapterByID(db *gorm.DB, id uint) (*entity.Chapter, error)
		FindChaptersByTopicID(db *gorm.DB, topicID uint) ([]entity.Chapter, error)

		// Question operations
		CreateQuestion(db *gorm.DB, question *entity.Question) error
		UpdateQuestion(db *gorm.DB, question *entity.Question) error
		DeleteQuestion(db *gorm.DB, id uint) error
		FindQuestionByID(db *gorm.DB, id uint) (*entity.Question, error)
		FindQuestions(db *gorm.DB, topicID, chapterID uint, difficulty string, limit, offset int) ([]entity.Question, int64, error)
		FindRandomQuestions(db *gorm.DB, topicID, chapterID uint, difficulty string, limit int) ([]entity.Question, error)
	}

	contentRepository struct {
		db *gorm.DB
	}
)

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// Topic operations
func (r *contentRepository) CreateTopic(db *gorm.DB, topic *entity.Topic) error {
	if db == nil {
		db = r.db
	}
	return db.Create(topic).Error
}

func (r *contentRepository) UpdateTopic(db *gorm.DB, topic *entity.Topic) error {
	if db == nil {
		db = r.db
	}
	return db.Save(topic).Error
}

func (r *contentRepository) DeleteTopic(db *gorm.DB, id uint) error {
	if db == nil {
		db = r.db
	}
	return db.Delete(&entity.Topic{}, id).Error
}

func (r *contentRepository) FindTopicByID(db *gorm.DB, id uint) (*entity.Topic, error) {
	if db == nil {
		db = r.db
	}
	var topic entity.Topic
	err := db.First(&topic, id).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *contentRepository) FindAllTopics(db *gorm.DB) ([]entity.Topic, error) {
	if db == nil {
		db = r.db
	}
	var topics []entity.Topic
	err := db.Order("id ASC").Find(&topics).Error
	return topics, err
}

func (r *contentRepository) CountChaptersByTopic(db *gorm.DB, topicID uint) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.Chapter{}).Where("topic_id = ?", topicID).Count(&count).Error
	return count, err
}

// Chapter operations
func (r *contentRepository) CreateChapter(db *gorm.DB, chapter *entity.Chapter) error {
	if db == nil {
		db = r.db
	}
	return db.Create(chapter).Error
}

func (r *contentRepository) UpdateChapter(db *gorm.DB, chapter *entity.Chapter) error {
	if db == nil {
		db = r.db
	}
	return db.Save(chapter).Error
}

func (r *contentRepository) DeleteChapter(db *gorm.DB, id uint) error {
	if db == nil {
		db = r.db
	}
	return db.Delete(&entity.Chapter{}, id).Error
}

func (r *contentRepository) FindChapterByID(db *gorm.DB, id uint) (*entity.Chapter, error) {
	if db == nil {
		db = r.db
	}
	var chapter entity.Chapter
	err := db.First(&chapter, id).Error
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *contentRepository) FindChaptersByTopicID(db *gorm.DB, topicID uint) ([]entity.Chapter, error) {
	if db == nil {
		db = r.db
	}
	var chapters []entity.Chapter
	err := db.Where("topic_id = ?", topicID).Order("ordinal ASC, id ASC").Find(&chapters).Error
	return chapters, err
}

// Question operations
func (r *contentRepository) CreateQuestion(db *gorm.DB, question *entity.Question) error {
	if db == nil {
		db = r.db
	}
	return db.Create(question).Error
}

func (r *contentRepository) UpdateQuestion(db *gorm.DB, question *entity.Question) error {
	if db == nil {
		db = r.db
	}
	return db.Save(question).Error
}

func (r *contentRepository) DeleteQuestion(db *gorm.DB, id uint) error {
	if db == nil {
		db = r.db
	}
	return db.Delete(&entity.Question{}, id).Error
}

func (r *contentRepository) FindQuestionByID(db *gorm.DB, id uint) (*entity.Question, error) {
	if db == nil {
		db = r.db
	}
	var question entity.Question
	err := db.First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *contentRepository) FindQuestions(db *gorm.DB, topicID, chapterID uint, difficulty string, limit, offset int) ([]entity.Question, int64, error) {
	if db == nil {
		db = r.db
	}
	query := db.Model(&entity.Question{})
	if topicID > 0 {
		query = query.Where("topic_id = ?", topicID)
	}
	if chapterID > 0 {
		query = query.Where("chapter_id = ?", chapterID)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []entity.Question
	err := query.Order("id ASC").Limit(limit).Offset(offset).Find(&questions).Error
	return questions, total, err
}

func (r *contentRepository) FindRandomQuestions(db *gorm.DB, topicID, chapterID uint, difficulty string, limit int) ([]entity.Question, error) {
	if db == nil {
		db = r.db
	}
	query := db.Where("topic_id = ?", topicID)
	if chapterID > 0 {
		query = query.Where("chapter_id = ?", chapterID)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	var questions []entity.Question
	err := query.Order("RANDOM()").Limit(limit).Find(&questions).Error
	return questions, err
}
