package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/pkg/response"
	"gorm.io/gorm"
)

// RequirePremium gates features reserved for active premium
// subscribers. It must run after RequireAuth.
func (m *Middleware) RequirePremium() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID, _ := ctx.Locals("user_id").(uint)

		sub, err := m.UserRepository.FindSubscriptionByUserID(nil, userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewFailed("Failed to check subscription", err, m.Log).Send(ctx)
		}

		if !sub.IsActive(time.Now()) {
			return response.NewFailed("Premium subscription required", fiber.NewError(fiber.StatusPaymentRequired, "this feature requires an active premium subscription"), m.Log).Send(ctx)
		}
		return ctx.Next()
	}
}
