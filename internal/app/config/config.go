package config

import (
	"riraku-service/internal/pkg/constvars"
	"riraku-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "riraku"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
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
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			ShutdownTimeout:          utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 10),
			MaxSelection:             utils.GetEnvInt("APP_MAX_SLOT_SELECTION", constvars.DefaultMaxSelection),
			TimelineOpenHour:         utils.GetEnvInt("APP_TIMELINE_OPEN_HOUR", 10),
			TimelineCloseHour:        utils.GetEnvInt("APP_TIMELINE_CLOSE_HOUR", 20),
			TimelineStepMinutes:      utils.GetEnvInt("APP_TIMELINE_STEP_MINUTES", 30),
			DefaultDurationMinutes:   utils.GetEnvInt("APP_DEFAULT_DURATION_MINUTES", 60),
			ConflictNoticeSeconds:    utils.GetEnvInt("APP_CONFLICT_NOTICE_SECONDS", constvars.ConflictNoticeSeconds),
			AvailabilityCacheSeconds: utils.GetEnvInt("APP_AVAILABILITY_CACHE_SECONDS", 30),
			SlotLockSeconds:          utils.GetEnvInt("APP_SLOT_LOCK_SECONDS", 30),
			AllowDemoSubmission:      utils.GetEnvBool("APP_ALLOW_DEMO_SUBMISSION", false),
			ReservationEventQueue:    utils.GetEnvString("APP_RABBITMQ_RESERVATION_QUEUE", "reservation_events"),
		},
		Upstream: Upstream{
			AvailabilityBaseURL: utils.GetEnvString("UPSTREAM_AVAILABILITY_BASE_URL", "http://localhost:5555"),
			ReservationBaseURL:  utils.GetEnvString("UPSTREAM_RESERVATION_BASE_URL", "http://localhost:5555"),
			TimeoutSeconds:      utils.GetEnvInt("UPSTREAM_TIMEOUT_SECONDS", 10),
		},
	}
}
