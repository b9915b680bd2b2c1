package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/handler"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/middleware"
)

func SetupProgressRoute(api *fiber.App, handler handler.ProgressHandler, m *middleware.Middleware) {
	router := api.Group("/progress", m.RequireAuth())
	{
		router.Get("/topics", handler.ListTopicProgress)
		router.Get("/overview", handler.GetOverview)
		router.Get("/recommendations", m.RequirePremium(), handler.GetRecommendations)
	}
}
