package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	StorageDriver string   `validate:"required,oneof=memory postgres"`
	Postgres      Postgres `validate:"required"`

	Kafka Kafka `validate:"required"`

	Cache    Cache    `validate:"required"`
	Checkout Checkout `validate:"required"`
	Store    Store

	DefaultLanguage string `validate:"required,oneof=ar en"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`
}

type Kafka struct {
	Enabled bool

	GroupID     string   `validate:"required"`
	Brokers     []string `validate:"required,min=1,dive,hostname_port"`
	StatusTopic string   `validate:"required"`
	EventsTopic string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

// Cache sizes the order tracking cache.
type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Checkout struct {
	SessionCapacity int           `validate:"gte=1"`
	SessionTTL      time.Duration `validate:"gt=0"`
	TrackingDelay   time.Duration `validate:"gte=0"`
	SlotCapacity    int           `validate:"gte=1"`
}

type Store struct {
	// StrictIDs makes mutations on unknown ids fail instead of being ignored.
	StrictIDs bool
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		StorageDriver: env("STORAGE_DRIVER", StorageMemory),

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "pharmacy"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Kafka: Kafka{
			Enabled:     envBool("KAFKA_ENABLED", false),
			GroupID:     env("KAFKA_GROUP_ID", "pharmacy-delivery-service"),
			Brokers:     strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			StatusTopic: env("KAFKA_STATUS_TOPIC", "order-status"),
			EventsTopic: env("KAFKA_EVENTS_TOPIC", "order-events"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Checkout: Checkout{
			SessionCapacity: envInt("SESSION_CAPACITY", 10000),
			SessionTTL:      envDuration("SESSION_TTL", time.Hour),
			TrackingDelay:   envDuration("CHECKOUT_TRACKING_DELAY", 3*time.Second),
			SlotCapacity:    envInt("SLOT_CAPACITY", 5),
		},

		Store: Store{
			StrictIDs: envBool("STORE_STRICT_IDS", false),
		},

		DefaultLanguage: env("DEFAULT_LANGUAGE", "ar"),
	}
}

// Validate skips the Postgres block for the memory driver and the Kafka block when
// Kafka is disabled.
func (c Config) Validate() error {
	validate := validator.New()

	var skip []string
	if c.StorageDriver != StoragePostgres {
		skip = append(skip, "Postgres")
	}
	if !c.Kafka.Enabled {
		skip = append(skip, "Kafka")
	}
	if len(skip) == 0 {
		return validate.Struct(c)
	}
	return validate.StructExcept(c, skip...)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
