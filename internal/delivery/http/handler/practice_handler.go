package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/domain"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/entity"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/usecase"
	"github.com/pradiptha/cfaprep-be/internal/pkg/response"
	"github.com/pradiptha/cfaprep-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
)

type (
	PracticeHandler interface {
		StartSession(ctx *fiber.Ctx) error
		SubmitAnswer(ctx *fiber.Ctx) error
		CompleteSession(ctx *fiber.Ctx) error
		GetSessionReview(ctx *fiber.Ctx) error
	}

	practiceHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.PracticeUsecase
	}
)

func NewPracticeHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.PracticeUsecase) PracticeHandler {
	return &practiceHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /practice/sessions
func (h *practiceHandler) StartSession(ctx *fiber.Ctx) error {
	var req entity.StartSessionRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.PRACTICE_START_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.StartSession(ctx.UserContext(), currentUserID(ctx), req)
	if err != nil {
		return response.NewFailed(domain.PRACTICE_START_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewCreated(domain.PRACTICE_START_SUCCESS, result).Send(ctx)
}

// POST /practice/answers
func (h *practiceHandler) SubmitAnswer(ctx *fiber.Ctx) error {
	var req entity.SubmitAnswerRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.PRACTICE_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.SubmitAnswer(ctx.UserContext(), currentUserID(ctx), req)
	if err != nil {
		return response.NewFailed(domain.PRACTICE_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PRACTICE_ANSWER_SUCCESS, result, nil).Send(ctx)
}

// POST /practice/sessions/:session_id/complete
func (h *practiceHandler) CompleteSession(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.PRACTICE_COMPLETE_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.CompleteSession(ctx.UserContext(), currentUserID(ctx), sessionID)
	if err != nil {
		return response.NewFailed(domain.PRACTICE_COMPLETE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PRACTICE_COMPLETE_SUCCESS, result, nil).Send(ctx)
}

// GET /practice/sessions/:session_id
func (h *practiceHandler) GetSessionReview(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.PRACTICE_REVIEW_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.GetSessionReview(ctx.UserContext(), currentUserID(ctx), sessionID)
	if err != nil {
		return response.NewFailed(domain.PRACTICE_REVIEW_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PRACTICE_REVIEW_SUCCESS, result, nil).Send(ctx)
}
