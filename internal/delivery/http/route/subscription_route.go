package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/handler"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/middleware"
)

func SetupSubscriptionRoute(api *fiber.App, handler handler.SubscriptionHandler, m *middleware.Middleware) {
	router := api.Group("/subscription", m.RequireAuth())
	{
		router.Get("/", handler.Status)
		router.Post("/activate", handler.Activate)
	}

	adminRouter := api.Group("/admin/subscription", m.RequireAuth(), m.RequireAdmin())
	{
		adminRouter.Post("/grant", handler.Grant)
	}
}
