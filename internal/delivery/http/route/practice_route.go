package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/handler"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/middleware"
)

func SetupPracticeRoute(api *fiber.App, handler handler.PracticeHandler, m *middleware.Middleware) {
	router := api.Group("/practice", m.RequireAuth())
	{
		router.Post("/sessions", handler.StartSession)
		router.Post("/answers", handler.SubmitAnswer)
		router.Post("/sessions/:session_id/complete", handler.CompleteSession)
		router.Get("/sessions/:session_id", handler.GetSessionReview)
	}
}
