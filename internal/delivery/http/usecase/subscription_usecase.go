package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/entity"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/repository"
	internalEntity "github.com/pradiptha/cfaprep-be/internal/entity"
	"gorm.io/gorm"
)

type SubscriptionUsecase interface {
	Status(ctx context.Context, userID uint) (*entity.SubscriptionResponse, error)
	Activate(ctx context.Context, userID uint, req entity.ActivateSubscriptionRequest) (*entity.SubscriptionResponse, error)
	Grant(ctx context.Context, req entity.GrantSubscriptionRequest) (*entity.SubscriptionResponse, error)
}

type SubscriptionConfig struct {
	DB         *gorm.DB
	Repository repository.UserRepository
}

type subscriptionUsecase struct {
	cfg SubscriptionConfig
}

func NewSubscriptionUsecase(cfg SubscriptionConfig) SubscriptionUsecase {
	return &subscriptionUsecase{cfg: cfg}
}

func (u *subscriptionUsecase) Status(ctx context.Context, userID uint) (*entity.SubscriptionResponse, error) {
	sub, err := u.cfg.Repository.FindSubscriptionByUserID(nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.SubscriptionResponse{Plan: "free"}, nil
		}
		return nil, err
	}
	return toSubscriptionResponse(sub), nil
}

// Activate upgrades the caller to premium for the requested number of
// months. Payment itself is out of scope; this endpoint is the hook the
// checkout callback lands on.
func (u *subscriptionUsecase) Activate(ctx context.Context, userID uint, req entity.ActivateSubscriptionRequest) (*entity.SubscriptionResponse, error) {
	return u.upgrade(ctx, userID, req.Months)
}

// Grant lets an admin hand out premium access directly.
func (u *subscriptionUsecase) Grant(ctx context.Context, req entity.GrantSubscriptionRequest) (*entity.SubscriptionResponse, error) {
	if _, err := u.cfg.Repository.FindByID(nil, req.UserID); err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	return u.upgrade(ctx, req.UserID, req.Months)
}

func (u *subscriptionUsecase) upgrade(ctx context.Context, userID uint, months int) (*entity.SubscriptionResponse, error) {
	if months < 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "months must be at least 1")
	}

	now := time.Now()
	sub, err := u.cfg.Repository.FindSubscriptionByUserID(nil, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if sub == nil {
		sub = &internalEntity.Subscription{UserID: userID}
	}

	// An unexpired premium subscription extends from its current expiry,
	// not from now.
	base := now
	if sub.IsActive(now) && sub.ExpiresAt != nil && sub.ExpiresAt.After(now) {
		base = *sub.ExpiresAt
	}
	expires := base.AddDate(0, months, 0)

	sub.Plan = "premium"
	sub.ExpiresAt = &expires

	err = u.cfg.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return u.cfg.Repository.UpsertSubscription(tx, sub)
	})
	if err != nil {
		return nil, err
	}
	return toSubscriptionResponse(sub), nil
}

func toSubscriptionResponse(sub *internalEntity.Subscription) *entity.SubscriptionResponse {
	resp := &entity.SubscriptionResponse{
		Plan:   sub.Plan,
		Active: sub.IsActive(time.Now()),
	}
	if sub.ExpiresAt != nil {
		resp.ExpiresAt = sub.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}
