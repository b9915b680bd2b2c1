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
	SubscriptionHandler interface {
		Status(ctx *fiber.Ctx) error
		Activate(ctx *fiber.Ctx) error
		Grant(ctx *fiber.Ctx) error
	}

	subscriptionHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.SubscriptionUsecase
	}
)

func NewSubscriptionHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.SubscriptionUsecase) SubscriptionHandler {
	return &subscriptionHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /subscription
func (h *subscriptionHandler) Status(ctx *fiber.Ctx) error {
	result, err := h.usecase.Status(ctx.UserContext(), currentUserID(ctx))
	if err != nil {
		return response.NewFailed(domain.SUBSCRIPTION_STATUS_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.SUBSCRIPTION_STATUS_SUCCESS, result, nil).Send(ctx)
}

// POST /subscription/activate
func (h *subscriptionHandler) Activate(ctx *fiber.Ctx) error {
	var req entity.ActivateSubscriptionRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.SUBSCRIPTION_ACTIVATE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Activate(ctx.UserContext(), currentUserID(ctx), req)
	if err != nil {
		return response.NewFailed(domain.SUBSCRIPTION_ACTIVATE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.SUBSCRIPTION_ACTIVATE_SUCCESS, result, nil).Send(ctx)
}

// POST /admin/subscription/grant
func (h *subscriptionHandler) Grant(ctx *fiber.Ctx) error {
	var req entity.GrantSubscriptionRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.SUBSCRIPTION_GRANT_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Grant(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.SUBSCRIPTION_GRANT_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.SUBSCRIPTION_GRANT_SUCCESS, result, nil).Send(ctx)
}
