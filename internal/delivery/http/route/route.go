package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/handler"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/middleware"
)

type RouteConfig struct {
	Api                 *fiber.App
	Middleware          *middleware.Middleware
	AuthHandler         handler.AuthHandler
	ContentHandler      handler.ContentHandler
	PracticeHandler     handler.PracticeHandler
	ProgressHandler     handler.ProgressHandler
	StudyPlanHandler    handler.StudyPlanHandler
	SubscriptionHandler handler.SubscriptionHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	SetupAuthRoute(c.Api, c.AuthHandler, c.Middleware)
	SetupContentRoute(c.Api, c.ContentHandler, c.Middleware)
	SetupPracticeRoute(c.Api, c.PracticeHandler, c.Middleware)
	SetupProgressRoute(c.Api, c.ProgressHandler, c.Middleware)
	SetupStudyPlanRoute(c.Api, c.StudyPlanHandler, c.Middleware)
	SetupSubscriptionRoute(c.Api, c.SubscriptionHandler, c.Middleware)
}
