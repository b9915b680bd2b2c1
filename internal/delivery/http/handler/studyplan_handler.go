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
	StudyPlanHandler interface {
		Generate(ctx *fiber.Ctx) error
		List(ctx *fiber.Ctx) error
		Get(ctx *fiber.Ctx) error
		Delete(ctx *fiber.Ctx) error
	}

	studyPlanHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.StudyPlanUsecase
	}
)

func NewStudyPlanHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.StudyPlanUsecase) StudyPlanHandler {
	return &studyPlanHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /study-plans
func (h *studyPlanHandler) Generate(ctx *fiber.Ctx) error {
	var req entity.GeneratePlanRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.STUDYPLAN_GENERATE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Generate(ctx.UserContext(), currentUserID(ctx), req)
	if err != nil {
		return response.NewFailed(domain.STUDYPLAN_GENERATE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewCreated(domain.STUDYPLAN_GENERATE_SUCCESS, result).Send(ctx)
}

// GET /study-plans
func (h *studyPlanHandler) List(ctx *fiber.Ctx) error {
	result, err := h.usecase.List(ctx.UserContext(), currentUserID(ctx))
	if err != nil {
		return response.NewFailed(domain.STUDYPLAN_LIST_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.STUDYPLAN_LIST_SUCCESS, result, nil).Send(ctx)
}

// GET /study-plans/:plan_id
func (h *studyPlanHandler) Get(ctx *fiber.Ctx) error {
	planID := paramUint(ctx, "plan_id")
	if planID == 0 {
		return response.NewFailed(domain.STUDYPLAN_GET_FAILED, fiber.NewError(fiber.StatusBadRequest, "plan_id is required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.Get(ctx.UserContext(), currentUserID(ctx), planID)
	if err != nil {
		return response.NewFailed(domain.STUDYPLAN_GET_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.STUDYPLAN_GET_SUCCESS, result, nil).Send(ctx)
}

// DELETE /study-plans/:plan_id
func (h *studyPlanHandler) Delete(ctx *fiber.Ctx) error {
	planID := paramUint(ctx, "plan_id")
	if planID == 0 {
		return response.NewFailed(domain.STUDYPLAN_DELETE_FAILED, fiber.NewError(fiber.StatusBadRequest, "plan_id is required"), h.logger).Send(ctx)
	}

	if err := h.usecase.Delete(ctx.UserContext(), currentUserID(ctx), planID); err != nil {
		return response.NewFailed(domain.STUDYPLAN_DELETE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.STUDYPLAN_DELETE_SUCCESS, nil, nil).Send(ctx)
}
