package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/linesmerrill/chatroom-api/models"
)

// Config holds the project config values
type Config struct {
	URL                 string        `env:"DB_URI,required=true"`
	DatabaseName        string        `env:"DB_NAME,default=chatroom"`
	BaseURL             string        `env:"BASE_URL"`
	Port                string        `env:"PORT,default=5000"`
	Environment         string        `env:"ENVIRONMENT,default=production"`
	BroadcastToken      string        `env:"BROADCAST_TOKEN,default=Todos"`
	InactivityThreshold time.Duration `env:"INACTIVITY_THRESHOLD,default=10s"`
	SweepInterval       time.Duration `env:"SWEEP_INTERVAL,default=15s"`
	QueryTimeout        time.Duration `env:"QUERY_TIMEOUT,default=10s"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT,default=30s"`
}

// New sets up all config related services. A .env file in the working
// directory is loaded first when present.
func New() (*Config, error) {
	_ = godotenv.Load()

	var conf Config
	if _, err := env.UnmarshalFromEnviron(&conf); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	//setup zap logger and replace default logger
	logger, err := setLogger(conf.Environment)
	if err != nil {
		return nil, err
	}
	_ = zap.ReplaceGlobals(logger)

	return &conf, nil
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().Errorw(message, "status", httpStatusCode, "error", err)
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	b, _ := json.Marshal(models.ErrorMessageResponse{
		Response: models.MessageError{Message: message, Error: errMsg},
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}
