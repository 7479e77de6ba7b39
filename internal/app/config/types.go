package config

import (
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type DriverConfig struct {
	MongoDB  MongoDB
	Redis    Redis
	RabbitMQ RabbitMQ
	Logger   Logger
}

type MongoDB struct {
	Host     string
	Port     string
	DbName   string
	Username string
	Password string
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type RabbitMQ struct {
	Host     string
	Port     string
	Username string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App      App
	Upstream Upstream
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	EndpointPrefix           string
	ShutdownTimeout          int
	MaxRequests              int
	MaxSelection             int
	TimelineOpenHour         int
	TimelineCloseHour        int
	TimelineStepMinutes      int
	DefaultDurationMinutes   int
	ConflictNoticeSeconds    int
	AvailabilityCacheSeconds int
	SlotLockSeconds          int
	AllowDemoSubmission      bool
	ReservationEventQueue    string
}

type Upstream struct {
	AvailabilityBaseURL string
	ReservationBaseURL  string
	TimeoutSeconds      int
}

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}
