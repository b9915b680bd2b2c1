package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/handler"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/middleware"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/repository"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/route"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/usecase"
	"github.com/pradiptha/cfaprep-be/internal/pkg/llm"
	"github.com/pradiptha/cfaprep-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {
	userRepo := repository.NewUserRepository(config.DB)
	contentRepo := repository.NewContentRepository(config.DB)
	practiceRepo := repository.NewPracticeRepository(config.DB)
	studyPlanRepo := repository.NewStudyPlanRepository(config.DB)

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:            config.Log,
		Config:         config.Config,
		UserRepository: userRepo,
	})

	apiKey := ""
	model := ""
	baseURL := ""
	if config.Config != nil {
		apiKey = config.Config.GetString("llm.api_key")
		model = config.Config.GetString("llm.model")
		baseURL = config.Config.GetString("llm.base_url")
	}
	llmClient := llm.NewClient(apiKey, model, baseURL)

	authUsecase := usecase.NewAuthUsecase(usecase.AuthConfig{
		DB:         config.DB,
		Repository: userRepo,
		Config:     config.Config,
	})
	contentUsecase := usecase.NewContentUsecase(usecase.ContentConfig{
		DB:         config.DB,
		Repository: contentRepo,
	})
	practiceUsecase := usecase.NewPracticeUsecase(usecase.PracticeConfig{
		DB:         config.DB,
		Repository: practiceRepo,
		Content:    contentRepo,
		Users:      userRepo,
		Config:     config.Config,
	})
	progressUsecase := usecase.NewProgressUsecase(usecase.ProgressConfig{
		DB:         config.DB,
		Repository: practiceRepo,
		Content:    contentRepo,
		LLM:        llmClient,
		Config:     config.Config,
	})
	studyPlanUsecase := usecase.NewStudyPlanUsecase(usecase.StudyPlanConfig{
		DB:         config.DB,
		Repository: studyPlanRepo,
		Practice:   practiceRepo,
		Content:    contentRepo,
	})
	subscriptionUsecase := usecase.NewSubscriptionUsecase(usecase.SubscriptionConfig{
		DB:         config.DB,
		Repository: userRepo,
	})

	route.Setup(&route.RouteConfig{
		Api:                 config.Api,
		Middleware:          mid,
		AuthHandler:         handler.NewAuthHandler(config.Validator, config.Log, authUsecase),
		ContentHandler:      handler.NewContentHandler(config.Validator, config.Log, contentUsecase),
		PracticeHandler:     handler.NewPracticeHandler(config.Validator, config.Log, practiceUsecase),
		ProgressHandler:     handler.NewProgressHandler(config.Log, progressUsecase),
		StudyPlanHandler:    handler.NewStudyPlanHandler(config.Validator, config.Log, studyPlanUsecase),
		SubscriptionHandler: handler.NewSubscriptionHandler(config.Validator, config.Log, subscriptionUsecase),
	})
}
