package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/domain"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/usecase"
	"github.com/pradiptha/cfaprep-be/internal/pkg/response"
	"github.com/sirupsen/logrus"
)

type (
	ProgressHandler interface {
		ListTopicProgress(ctx *fiber.Ctx) error
		GetOverview(ctx *fiber.Ctx) error
		GetRecommendations(ctx *fiber.Ctx) error
	}

	progressHandler struct {
		logger  *logrus.Logger
		usecase usecase.ProgressUsecase
	}
)

func NewProgressHandler(logger *logrus.Logger, usecase usecase.ProgressUsecase) ProgressHandler {
	return &progressHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// GET /progress/topics
func (h *progressHandler) ListTopicProgress(ctx *fiber.Ctx) error {
	result, err := h.usecase.ListTopicProgress(ctx.UserContext(), currentUserID(ctx))
	if err != nil {
		return response.NewFailed(domain.PROGRESS_LIST_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROGRESS_LIST_SUCCESS, result, nil).Send(ctx)
}

// GET /progress/overview
func (h *progressHandler) GetOverview(ctx *fiber.Ctx) error {
	result, err := h.usecase.GetOverview(ctx.UserContext(), currentUserID(ctx))
	if err != nil {
		return response.NewFailed(domain.PROGRESS_OVERVIEW_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROGRESS_OVERVIEW_SUCCESS, result, nil).Send(ctx)
}

// GET /progress/recommendations
func (h *progressHandler) GetRecommendations(ctx *fiber.Ctx) error {
	result, err := h.usecase.GetRecommendations(ctx.UserContext(), currentUserID(ctx))
	if err != nil {
		return response.NewFailed(domain.PROGRESS_RECOMMENDATION_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROGRESS_RECOMMENDATION_SUCCESS, result, nil).Send(ctx)
}
