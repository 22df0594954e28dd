package middlewares

import (
	"sinan-service/internal/app/config"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}
}
