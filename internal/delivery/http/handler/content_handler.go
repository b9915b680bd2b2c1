package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/domain"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/entity"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/usecase"
	"github.com/pradiptha/cfaprep-be/internal/pkg/response"
	"github.com/pradiptha/cfaprep-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
)

type (
	ContentHandler interface {
		ListTopics(ctx *fiber.Ctx) error
		ListChapters(ctx *fiber.Ctx) error
		CreateTopic(ctx *fiber.Ctx) error
		UpdateTopic(ctx *fiber.Ctx) error
		DeleteTopic(ctx *fiber.Ctx) error
		CreateChapter(ctx *fiber.Ctx) error
		UpdateChapter(ctx *fiber.Ctx) error
		DeleteChapter(ctx *fiber.Ctx) error
		ListQuestions(ctx *fiber.Ctx) error
		CreateQuestion(ctx *fiber.Ctx) error
		UpdateQuestion(ctx *fiber.Ctx) error
		DeleteQuestion(ctx *fiber.Ctx) error
	}

	contentHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.ContentUsecase
	}
)

func NewContentHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.ContentUsecase) ContentHandler {
	return &contentHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /topics
func (h *contentHandler) ListTopics(ctx *fiber.Ctx) error {
	result, err := h.usecase.ListTopics(ctx.UserContext())
	if err != nil {
		return response.NewFailed(domain.CONTENT_TOPIC_LIST_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CONTENT_TOPIC_LIST_SUCCESS, result, nil).Send(ctx)
}

// GET /topics/:topic_id/chapters
func (h *contentHandler) ListChapters(ctx *fiber.Ctx) error {
	topicID := paramUint(ctx, "topic_id")
	if topicID == 0 {
		return response.NewFailed(domain.CONTENT_CHAPTER_LIST_FAILED, fiber.NewError(fiber.StatusBadRequest, "topic_id is required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.ListChapters(ctx.UserContext(), topicID)
	if err != nil {
		return response.NewFailed(domain.CONTENT_CHAPTER_LIST_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CONTENT_CHAPTER_LIST_SUCCESS, result, nil).Send(ctx)
}

// POST /admin/topics
func (h *contentHandler) CreateTopic(ctx *fiber.Ctx) error {
	var req entity.CreateTopicRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.CONTENT_TOPIC_CREATE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.CreateTopic(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.CONTENT_TOPIC_CREATE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewCreated(domain.CONTENT_TOPIC_CREATE_SUCCESS, result).Send(ctx)
}

// PUT /admin/topics/:topic_id
func (h *contentHandler) UpdateTopic(ctx *fiber.Ctx) error {
	topicID := paramUint(ctx, "topic_id")
	if topicID == 0 {
		return response.NewFailed(domain.CONTENT_TOPIC_UPDATE_FAILED, fiber.NewError(fiber.StatusBadRequest, "topic_id is required"), h.logger).Send(ctx)
	}

	var req entity.UpdateTopicRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.CONTENT_TOPIC_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.UpdateTopic(ctx.UserContext(), topicID, req)
	if err != nil {
		return response.NewFailed(domain.CONTENT_TOPIC_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CONTENT_TOPIC_UPDATE_SUCCESS, result, nil).Send(ctx)
}

// DELETE /admin/topics/:topic_id
func (h *contentHandler) DeleteTopic(ctx *fiber.Ctx) error {
	topicID := paramUint(ctx, "topic_id")
	if topicID == 0 {
		return response.NewFailed(domain.CONTENT_TOPIC_DELETE_FAILED, fiber.NewError(fiber.StatusBadRequest, "topic_id is required"), h.logger).Send(ctx)
	}

	if err := h.usecase.DeleteTopic(ctx.UserContext(), topicID); err != nil {
		return response.NewFailed(domain.CONTENT_TOPIC_DELETE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CONTENT_TOPIC_DELETE_SUCCESS, nil, nil).Send(ctx)
}

// POST /admin/chapters
func (h *contentHandler) CreateChapter(ctx *fiber.Ctx) error {
	var req entity.CreateChapterRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.CONTENT_CHAPTER_CREATE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.CreateChapter(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.CONTENT_CHAPTER_CREATE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewCreated(domain.CONTENT_CHAPTER_CREATE_SUCCESS, result).Send(ctx)
}

// PUT /admin/chapters/:chapter_id
func (h *contentHandler) UpdateChapter(ctx *fiber.Ctx) error {
	chapterID := paramUint(ctx, "chapter_id")
	if chapterID == 0 {
		return response.NewFailed(domain.CONTENT_CHAPTER_UPDATE_FAILED, fiber.NewError(fiber.StatusBadRequest, "chapter_id is required"), h.logger).Send(ctx)
	}

	var req entity.UpdateChapterRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.CONTENT_CHAPTER_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.UpdateChapter(ctx.UserContext(), chapterID, req)
	if err != nil {
		return response.NewFailed(domain.CONTENT_CHAPTER_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CONTENT_CHAPTER_UPDATE_SUCCESS, result, nil).Send(ctx)
}

// DELETE /admin/chapters/:chapter_id
func (h *contentHandler) DeleteChapter(ctx *fiber.Ctx) error {
	chapterID := paramUint(ctx, "chapter_id")
	if chapterID == 0 {
		return response.NewFailed(domain.CONTENT_CHAPTER_DELETE_FAILED, fiber.NewError(fiber.StatusBadRequest, "chapter_id is required"), h.logger).Send(ctx)
	}

	if err := h.usecase.DeleteChapter(ctx.UserContext(), chapterID); err != nil {
		return response.NewFailed(domain.CONTENT_CHAPTER_DELETE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CONTENT_CHAPTER_DELETE_SUCCESS, nil, nil).Send(ctx)
}

// GET /admin/questions?topic_id=&chapter_id=&difficulty=&page=&page_size=
func (h *contentHandler) ListQuestions(ctx *fiber.Ctx) error {
	page := 1
	if v := strings.TrimSpace(ctx.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	pageSize := 20
	if v := strings.TrimSpace(ctx.Query("page_size")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			pageSize = n
		}
	}

	difficulty := strings.ToLower(strings.TrimSpace(ctx.Query("difficulty")))
	switch difficulty {
	case "", "easy", "medium", "hard":
		// ok
	default:
		return response.NewFailed(domain.CONTENT_QUESTION_LIST_FAILED, fiber.NewError(fiber.StatusBadRequest, "invalid difficulty"), h.logger).Send(ctx)
	}

	result, meta, err := h.usecase.ListQuestions(ctx.UserContext(), queryUint(ctx, "topic_id"), queryUint(ctx, "chapter_id"), difficulty, page, pageSize)
	if err != nil {
		return response.NewFailed(domain.CONTENT_QUESTION_LIST_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CONTENT_QUESTION_LIST_SUCCESS, result, meta).Send(ctx)
}

// POST /admin/questions
func (h *contentHandler) CreateQuestion(ctx *fiber.Ctx) error {
	var req entity.CreateQuestionRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.CONTENT_QUESTION_CREATE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.CreateQuestion(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.CONTENT_QUESTION_CREATE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewCreated(domain.CONTENT_QUESTION_CREATE_SUCCESS, result).Send(ctx)
}

// PUT /admin/questions/:question_id
func (h *contentHandler) UpdateQuestion(ctx *fiber.Ctx) error {
	questionID := paramUint(ctx, "question_id")
	if questionID == 0 {
		return response.NewFailed(domain.CONTENT_QUESTION_UPDATE_FAILED, fiber.NewError(fiber.StatusBadRequest, "question_id is required"), h.logger).Send(ctx)
	}

	var req entity.UpdateQuestionRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.CONTENT_QUESTION_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.UpdateQuestion(ctx.UserContext(), questionID, req)
	if err != nil {
		return response.NewFailed(domain.CONTENT_QUESTION_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CONTENT_QUESTION_UPDATE_SUCCESS, result, nil).Send(ctx)
}

// DELETE /admin/questions/:question_id
func (h *contentHandler) DeleteQuestion(ctx *fiber.Ctx) error {
	questionID := paramUint(ctx, "question_id")
	if questionID == 0 {
		return response.NewFailed(domain.CONTENT_QUESTION_DELETE_FAILED, fiber.NewError(fiber.StatusBadRequest, "question_id is required"), h.logger).Send(ctx)
	}

	if err := h.usecase.DeleteQuestion(ctx.UserContext(), questionID); err != nil {
		return response.NewFailed(domain.CONTENT_QUESTION_DELETE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CONTENT_QUESTION_DELETE_SUCCESS, nil, nil).Send(ctx)
}
