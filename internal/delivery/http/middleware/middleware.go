package middleware

import (
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/repository"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type MiddlewareConfig struct {
	Log            *logrus.Logger
	Config         *viper.Viper
	UserRepository repository.UserRepository
}

type Middleware struct {
	Log            *logrus.Logger
	Config         *viper.Viper
	UserRepository repository.UserRepository
}

func NewMiddleware(c *MiddlewareConfig) *Middleware {
	if c == nil {
		return &Middleware{}
	}

	return &Middleware{
		Log:            c.Log,
		Config:         c.Config,
		UserRepository: c.UserRepository,
	}
}
