package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/pkg/response"
	"github.com/pradiptha/cfaprep-be/internal/pkg/token"
)

// RequireAuth verifies the bearer token and stores the caller's identity
// on the request locals.
func (m *Middleware) RequireAuth() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, err := token.FromRequest(ctx, m.Config.GetString("auth.jwt_secret"))
		if err != nil {
			return response.NewFailed("Unauthorized", err, m.Log).Send(ctx)
		}

		ctx.Locals("user_id", claims.UserID)
		ctx.Locals("is_admin", claims.IsAdmin)
		return ctx.Next()
	}
}

// RequireAdmin gates admin-only routes. It must run after RequireAuth.
func (m *Middleware) RequireAdmin() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		isAdmin, _ := ctx.Locals("is_admin").(bool)
		if !isAdmin {
			return response.NewFailed("Forbidden", fiber.NewError(fiber.StatusForbidden, "admin access required"), m.Log).Send(ctx)
		}
		return ctx.Next()
	}
}
