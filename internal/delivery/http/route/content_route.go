package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/handler"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/middleware"
)

func SetupContentRoute(api *fiber.App, handler handler.ContentHandler, m *middleware.Middleware) {
	router := api.Group("/topics")
	{
		router.Get("/", handler.ListTopics)
		router.Get("/:topic_id/chapters", handler.ListChapters)
	}

	adminRouter := api.Group("/admin", m.RequireAuth(), m.RequireAdmin())
	{
		adminRouter.Post("/topics", handler.CreateTopic)
		adminRouter.Put("/topics/:topic_id", handler.UpdateTopic)
		adminRouter.Delete("/topics/:topic_id", handler.DeleteTopic)

		adminRouter.Post("/chapters", handler.CreateChapter)
		adminRouter.Put("/chapters/:chapter_id", handler.UpdateChapter)
		adminRouter.Delete("/chapters/:chapter_id", handler.DeleteChapter)

		adminRouter.Get("/questions", handler.ListQuestions)
		adminRouter.Post("/questions", handler.CreateQuestion)
		adminRouter.Put("/questions/:question_id", handler.UpdateQuestion)
		adminRouter.Delete("/questions/:question_id", handler.DeleteQuestion)
	}
}
