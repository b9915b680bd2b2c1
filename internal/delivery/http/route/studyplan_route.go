package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/handler"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/middleware"
)

func SetupStudyPlanRoute(api *fiber.App, handler handler.StudyPlanHandler, m *middleware.Middleware) {
	router := api.Group("/study-plans", m.RequireAuth())
	{
		router.Post("/", m.RequirePremium(), handler.Generate)
		router.Get("/", handler.List)
		router.Get("/:plan_id", handler.Get)
		router.Delete("/:plan_id", handler.Delete)
	}
}
