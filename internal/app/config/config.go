package config

import (
	"sinan-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		SQLite: SQLite{
			Path: utils.GetEnvString("SQLITE_PATH", "sinan.db"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":3000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			StaticDir:                  utils.GetEnvString("APP_STATIC_DIR", "dist"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
	}
}
