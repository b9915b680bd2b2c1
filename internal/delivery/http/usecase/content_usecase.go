package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/entity"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/repository"
	internalEntity "github.com/pradiptha/cfaprep-be/internal/entity"
	"github.com/pradiptha/cfaprep-be/internal/pkg/response"
	"gorm.io/gorm"
)

type ContentUsecase interface {
	// Public catalog reads
	ListTopics(ctx context.Context) ([]entity.TopicResponse, error)
	ListChapters(ctx context.Context, topicID uint) ([]entity.ChapterResponse, error)

	// Admin topic management
	CreateTopic(ctx context.Context, req entity.CreateTopicRequest) (*entity.TopicResponse, error)
	UpdateTopic(ctx context.Context, id uint, req entity.UpdateTopicRequest) (*entity.TopicResponse, error)
	DeleteTopic(ctx context.Context, id uint) error

	// Admin chapter management
	CreateChapter(ctx context.Context, req entity.CreateChapterRequest) (*entity.ChapterResponse, error)
	UpdateChapter(ctx context.Context, id uint, req entity.UpdateChapterRequest) (*entity.ChapterResponse, error)
	DeleteChapter(ctx context.Context, id uint) error

	// Admin question management
	ListQuestions(ctx context.Context, topicID, chapterID uint, difficulty string, page, pageSize int) ([]entity.QuestionResponse, *response.Meta, error)
	CreateQuestion(ctx context.Context, req entity.CreateQuestionRequest) (*entity.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, id uint, req entity.UpdateQuestionRequest) (*entity.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id uint) error
}

type ContentConfig struct {
	DB         *gorm.DB
	Repository repository.ContentRepository
}

type contentUsecase struct {
	cfg ContentConfig
}

func NewContentUsecase(cfg ContentConfig) ContentUsecase {
	return &contentUsecase{cfg: cfg}
}

func (u *contentUsecase) ListTopics(ctx context.Context) ([]entity.TopicResponse, error) {
	topics, err := u.cfg.Repository.FindAllTopics(nil)
	if err != nil {
		return nil, err
	}

	result := make([]entity.TopicResponse, 0, len(topics))
	for _, t := range topics {
		count, err := u.cfg.Repository.CountChaptersByTopic(nil, t.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, entity.TopicResponse{
			ID:           t.ID,
			Name:         t.Name,
			Description:  t.Description,
			ExamWeight:   t.ExamWeight,
			ChapterCount: count,
		})
	}
	return result, nil
}

func (u *contentUsecase) ListChapters(ctx context.Context, topicID uint) ([]entity.ChapterResponse, error) {
	if _, err := u.cfg.Repository.FindTopicByID(nil, topicID); err != nil {
		return nil, notFoundOr(err, "topic not found")
	}

	chapters, err := u.cfg.Repository.FindChaptersByTopicID(nil, topicID)
	if err != nil {
		return nil, err
	}

	result := make([]entity.ChapterResponse, 0, len(chapters))
	for _, c := range chapters {
		result = append(result, entity.ChapterResponse{
			ID:      c.ID,
			TopicID: c.TopicID,
			Title:   c.Title,
			Ordinal: c.Ordinal,
		})
	}
	return result, nil
}

func (u *contentUsecase) CreateTopic(ctx context.Context, req entity.CreateTopicRequest) (*entity.TopicResponse, error) {
	topic := &internalEntity.Topic{
		Name:        req.Name,
		Description: req.Description,
		ExamWeight:  req.ExamWeight,
	}
	if err := u.cfg.Repository.CreateTopic(nil, topic); err != nil {
		return nil, err
	}
	return &entity.TopicResponse{
		ID:          topic.ID,
		Name:        topic.Name,
		Description: topic.Description,
		ExamWeight:  topic.ExamWeight,
	}, nil
}

func (u *contentUsecase) UpdateTopic(ctx context.Context, id uint, req entity.UpdateTopicRequest) (*entity.TopicResponse, error) {
	topic, err := u.cfg.Repository.FindTopicByID(nil, id)
	if err != nil {
		return nil, notFoundOr(err, "topic not found")
	}

	if req.Name != "" {
		topic.Name = req.Name
	}
	if req.Description != "" {
		topic.Description = req.Description
	}
	if req.ExamWeight != nil {
		topic.ExamWeight = *req.ExamWeight
	}
	if err := u.cfg.Repository.UpdateTopic(nil, topic); err != nil {
		return nil, err
	}

	return &entity.TopicResponse{
		ID:          topic.ID,
		Name:        topic.Name,
		Description: topic.Description,
		ExamWeight:  topic.ExamWeight,
	}, nil
}

func (u *contentUsecase) DeleteTopic(ctx context.Context, id uint) error {
	if _, err := u.cfg.Repository.FindTopicByID(nil, id); err != nil {
		return notFoundOr(err, "topic not found")
	}
	return u.cfg.Repository.DeleteTopic(nil, id)
}

func (u *contentUsecase) CreateChapter(ctx context.Context, req entity.CreateChapterRequest) (*entity.ChapterResponse, error) {
	if _, err := u.cfg.Repository.FindTopicByID(nil, req.TopicID); err != nil {
		return nil, notFoundOr(err, "topic not found")
	}

	chapter := &internalEntity.Chapter{
		TopicID: req.TopicID,
		Title:   req.Title,
		Ordinal: req.Ordinal,
	}
	if err := u.cfg.Repository.CreateChapter(nil, chapter); err != nil {
		return nil, err
	}
	return &entity.ChapterResponse{
		ID:      chapter.ID,
		TopicID: chapter.TopicID,
		Title:   chapter.Title,
		Ordinal: chapter.Ordinal,
	}, nil
}

func (u *contentUsecase) UpdateChapter(ctx context.Context, id uint, req entity.UpdateChapterRequest) (*entity.ChapterResponse, error) {
	chapter, err := u.cfg.Repository.FindChapterByID(nil, id)
	if err != nil {
		return nil, notFoundOr(err, "chapter not found")
	}

	if req.Title != "" {
		chapter.Title = req.Title
	}
	if req.Ordinal != nil {
		chapter.Ordinal = *req.Ordinal
	}
	if err := u.cfg.Repository.UpdateChapter(nil, chapter); err != nil {
		return nil, err
	}

	return &entity.ChapterResponse{
		ID:      chapter.ID,
		TopicID: chapter.TopicID,
		Title:   chapter.Title,
		Ordinal: chapter.Ordinal,
	}, nil
}

func (u *contentUsecase) DeleteChapter(ctx context.Context, id uint) error {
	if _, err := u.cfg.Repository.FindChapterByID(nil, id); err != nil {
		return notFoundOr(err, "chapter not found")
	}
	return u.cfg.Repository.DeleteChapter(nil, id)
}

func (u *contentUsecase) ListQuestions(ctx context.Context, topicID, chapterID uint, difficulty string, page, pageSize int) ([]entity.QuestionResponse, *response.Meta, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	questions, total, err := u.cfg.Repository.FindQuestions(nil, topicID, chapterID, difficulty, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, nil, err
	}

	result := make([]entity.QuestionResponse, 0, len(questions))
	for i := range questions {
		resp, err := toQuestionResponse(&questions[i], true)
		if err != nil {
			return nil, nil, err
		}
		result = append(result, resp)
	}

	meta := &response.Meta{Page: page, PageSize: pageSize, TotalRows: total}
	return result, meta, nil
}

func (u *contentUsecase) CreateQuestion(ctx context.Context, req entity.CreateQuestionRequest) (*entity.QuestionResponse, error) {
	chapter, err := u.cfg.Repository.FindChapterByID(nil, req.ChapterID)
	if err != nil {
		return nil, notFoundOr(err, "chapter not found")
	}
	if chapter.TopicID != req.TopicID {
		return nil, fiber.NewError(fiber.StatusBadRequest, "chapter does not belong to the given topic")
	}
	if req.CorrectChoice >= len(req.Options) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "correct_choice is out of range")
	}

	optionsJSON, err := json.Marshal(req.Options)
	if err != nil {
		return nil, err
	}

	question := &internalEntity.Question{
		TopicID:       req.TopicID,
		ChapterID:     req.ChapterID,
		Prompt:        req.Prompt,
		Options:       string(optionsJSON),
		CorrectChoice: req.CorrectChoice,
		Explanation:   req.Explanation,
		Difficulty:    req.Difficulty,
	}
	if err := u.cfg.Repository.CreateQuestion(nil, question); err != nil {
		return nil, err
	}

	resp, err := toQuestionResponse(question, true)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (u *contentUsecase) UpdateQuestion(ctx context.Context, id uint, req entity.UpdateQuestionRequest) (*entity.QuestionResponse, error) {
	question, err := u.cfg.Repository.FindQuestionByID(nil, id)
	if err != nil {
		return nil, notFoundOr(err, "question not found")
	}

	if req.Prompt != "" {
		question.Prompt = req.Prompt
	}
	if len(req.Options) > 0 {
		optionsJSON, err := json.Marshal(req.Options)
		if err != nil {
			return nil, err
		}
		question.Options = string(optionsJSON)
	}
	if req.CorrectChoice != nil {
		question.CorrectChoice = *req.CorrectChoice
	}
	if req.Explanation != nil {
		question.Explanation = *req.Explanation
	}
	if req.Difficulty != "" {
		question.Difficulty = req.Difficulty
	}

	var options []string
	if err := json.Unmarshal([]byte(question.Options), &options); err != nil {
		return nil, err
	}
	if question.CorrectChoice >= len(options) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "correct_choice is out of range")
	}

	if err := u.cfg.Repository.UpdateQuestion(nil, question); err != nil {
		return nil, err
	}

	resp, err := toQuestionResponse(question, true)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (u *contentUsecase) DeleteQuestion(ctx context.Context, id uint) error {
	if _, err := u.cfg.Repository.FindQuestionByID(nil, id); err != nil {
		return notFoundOr(err, "question not found")
	}
	return u.cfg.Repository.DeleteQuestion(nil, id)
}

// toQuestionResponse decodes the options column; the correct choice and
// explanation are only included for admin reads.
func toQuestionResponse(q *internalEntity.Question, includeAnswer bool) (entity.QuestionResponse, error) {
	var options []string
	if err := json.Unmarshal([]byte(q.Options), &options); err != nil {
		return entity.QuestionResponse{}, fmt.Errorf("question %d has malformed options: %w", q.ID, err)
	}

	resp := entity.QuestionResponse{
		ID:         q.ID,
		TopicID:    q.TopicID,
		ChapterID:  q.ChapterID,
		Prompt:     q.Prompt,
		Options:    options,
		Difficulty: q.Difficulty,
	}
	if includeAnswer {
		choice := q.CorrectChoice
		resp.CorrectChoice = &choice
		resp.Explanation = q.Explanation
	}
	return resp, nil
}

// notFoundOr converts a gorm record-not-found into a 404, passing other
// errors through.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, msg)
	}
	return err
}
