package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	Environment   string
	Name          string
	Version       string
	LogLevel      string
	MigrationsDir string
	HTTP          HTTPConfig
	Postgres      PostgresConfig
	JWT           JWTConfig
	Redis         RedisConfig
	Availability  AvailabilityConfig
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxHeaderMB  int
}

type PostgresConfig struct {
	Host               string
	Port               string
	Username           string
	Password           string
	DBName             string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	MaxLifetime        time.Duration
}

type JWTConfig struct {
	SigningKey string
}

// RedisConfig включает общий кеш доступности, если задан Addr.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type AvailabilityConfig struct {
	CacheTTL               time.Duration
	CacheRead              bool
	DefaultServiceDuration int
}

func NewConfig() (*Config, error) {
	httpReadTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	httpWriteTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	postgresMaxLifetime, err := time.ParseDuration(getEnv("POSTGRES_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, err
	}

	cacheTTL, err := time.ParseDuration(getEnv("AVAILABILITY_CACHE_TTL", "10m"))
	if err != nil {
		return nil, err
	}
	if cacheTTL <= 0 {
		return nil, fmt.Errorf("AVAILABILITY_CACHE_TTL должен быть положительным: %s", cacheTTL)
	}

	defaultDuration := getEnvAsInt("AVAILABILITY_DEFAULT_SERVICE_DURATION", 60)
	if defaultDuration <= 0 {
		return nil, fmt.Errorf("AVAILABILITY_DEFAULT_SERVICE_DURATION должен быть положительным: %d", defaultDuration)
	}

	return &Config{
		Environment:   getEnv("APP_ENV", "development"),
		Name:          getEnv("APP_NAME", "consultly"),
		Version:       getEnv("APP_VERSION", "1.0.0"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "./migrations"),
		HTTP: HTTPConfig{
			Port:         getEnv("HTTP_PORT", "8080"),
			ReadTimeout:  httpReadTimeout,
			WriteTimeout: httpWriteTimeout,
			MaxHeaderMB:  getEnvAsInt("HTTP_MAX_HEADER_MB", 1),
		},
		Postgres: PostgresConfig{
			Host:               getEnv("POSTGRES_HOST", "localhost"),
			Port:               getEnv("POSTGRES_PORT", "5432"),
			Username:           getEnv("POSTGRES_USER", "postgres"),
			Password:           getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:             getEnv("POSTGRES_DB", "consultly"),
			SSLMode:            getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConnections:     getEnvAsInt("POSTGRES_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("POSTGRES_MAX_IDLE_CONNECTIONS", 5),
			MaxLifetime:        postgresMaxLifetime,
		},
		JWT: JWTConfig{
			SigningKey: getEnv("JWT_SIGNING_KEY", "your_secret_key"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "availability"),
		},
		Availability: AvailabilityConfig{
			CacheTTL:               cacheTTL,
			CacheRead:              getEnvAsBool("AVAILABILITY_CACHE_READ", false),
			DefaultServiceDuration: defaultDuration,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value := 0
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
