package usecase

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/entity"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/repository"
	internalEntity "github.com/pradiptha/cfaprep-be/internal/entity"
	"github.com/pradiptha/cfaprep-be/internal/pkg/password"
	"github.com/pradiptha/cfaprep-be/internal/pkg/token"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	Register(ctx context.Context, req entity.RegisterRequest) (*entity.AuthResponse, error)
	Login(ctx context.Context, req entity.LoginRequest) (*entity.AuthResponse, error)
	Profile(ctx context.Context, userID uint) (*entity.UserResponse, error)
}

type AuthConfig struct {
	DB         *gorm.DB
	Repository repository.UserRepository
	Config     *viper.Viper
}

type authUsecase struct {
	cfg AuthConfig
}

func NewAuthUsecase(cfg AuthConfig) AuthUsecase {
	return &authUsecase{cfg: cfg}
}

func (u *authUsecase) Register(ctx context.Context, req entity.RegisterRequest) (*entity.AuthResponse, error) {
	_, err := u.cfg.Repository.FindByEmail(nil, req.Email)
	if err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "email is already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &internalEntity.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	}

	err = u.cfg.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.cfg.Repository.Create(tx, user); err != nil {
			return err
		}
		// Every account starts on the free tier.
		return u.cfg.Repository.UpsertSubscription(tx, &internalEntity.Subscription{
			UserID: user.ID,
			Plan:   "free",
		})
	})
	if err != nil {
		return nil, err
	}

	return u.authResponse(user)
}

func (u *authUsecase) Login(ctx context.Context, req entity.LoginRequest) (*entity.AuthResponse, error) {
	user, err := u.cfg.Repository.FindByEmail(nil, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
		}
		return nil, err
	}

	if !password.Verify(user.PasswordHash, req.Password) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
	}

	return u.authResponse(user)
}

func (u *authUsecase) Profile(ctx context.Context, userID uint) (*entity.UserResponse, error) {
	user, err := u.cfg.Repository.FindByID(nil, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (u *authUsecase) authResponse(user *internalEntity.User) (*entity.AuthResponse, error) {
	secret := u.cfg.Config.GetString("auth.jwt_secret")
	signed, err := token.Generate(user.ID, user.IsAdmin, secret)
	if err != nil {
		return nil, err
	}
	return &entity.AuthResponse{Token: signed, User: toUserResponse(user)}, nil
}

func toUserResponse(user *internalEntity.User) entity.UserResponse {
	return entity.UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		IsAdmin: user.IsAdmin,
	}
}
