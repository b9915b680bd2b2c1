package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/domain"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/entity"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/usecase"
	"github.com/pradiptha/cfaprep-be/internal/pkg/response"
	"github.com/pradiptha/cfaprep-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
)

type (
	AuthHandler interface {
		Register(ctx *fiber.Ctx) error
		Login(ctx *fiber.Ctx) error
		Profile(ctx *fiber.Ctx) error
	}

	authHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.AuthUsecase
	}
)

func NewAuthHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.AuthUsecase) AuthHandler {
	return &authHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /auth/register
func (h *authHandler) Register(ctx *fiber.Ctx) error {
	var req entity.RegisterRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.AUTH_REGISTER_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Register(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.AUTH_REGISTER_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewCreated(domain.AUTH_REGISTER_SUCCESS, result).Send(ctx)
}

// POST /auth/login
func (h *authHandler) Login(ctx *fiber.Ctx) error {
	var req entity.LoginRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.AUTH_LOGIN_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Login(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.AUTH_LOGIN_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.AUTH_LOGIN_SUCCESS, result, nil).Send(ctx)
}

// GET /auth/me
func (h *authHandler) Profile(ctx *fiber.Ctx) error {
	result, err := h.usecase.Profile(ctx.UserContext(), currentUserID(ctx))
	if err != nil {
		return response.NewFailed(domain.AUTH_PROFILE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.AUTH_PROFILE_SUCCESS, result, nil).Send(ctx)
}

// currentUserID reads the user id the auth middleware stored on the
// request. Routes behind the middleware always have it set.
func currentUserID(ctx *fiber.Ctx) uint {
	id, _ := ctx.Locals("user_id").(uint)
	return id
}

// paramUint parses a numeric path parameter, returning 0 when absent or
// malformed.
func paramUint(ctx *fiber.Ctx, name string) uint {
	n, err := strconv.ParseUint(ctx.Params(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}

// queryUint parses an optional numeric query parameter.
func queryUint(ctx *fiber.Ctx, name string) uint {
	n, err := strconv.ParseUint(ctx.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}
