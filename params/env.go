package params

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const (
	PARAMS_PATH_ENV = "OVERLAYD_PARAMS_PATH"
	BASE_PATH_ENV   = "OVERLAYD_BASE_PATH"
)

// LoadEnv reads a .env file from the working directory, if there is one, and
// applies path overrides from the environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, using environment and defaults", "error", err)
	} else {
		slog.Info("loaded environment from .env file")
	}

	if p := os.Getenv(PARAMS_PATH_ENV); p != "" {
		ParamsPath = p
	}
	if p := os.Getenv(BASE_PATH_ENV); p != "" {
		BasePath = p
	}
}
