package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel    string
	LogEncoding string

	OrdersRequireAddresses bool

	CacheDriver   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	KafkaEnabled           bool
	KafkaBrokers           []string
	KafkaOrderChangedTopic string

	AddressServiceURL     string
	AddressServiceTimeout time.Duration

	TracingEnabled bool
	ServiceName    string

	BacklogCheckSchedule string
	BacklogThreshold     time.Duration
}

// LoadConfig reads .env.<GO_ENV> and then .env without overriding variables that are already
// set. Missing files are fine; the process environment always wins.
func LoadConfig() Config {
	env := getEnv("GO_ENV", "development")
	_ = godotenv.Load(fmt.Sprintf(".env.%s", env))
	_ = godotenv.Load()

	return Config{
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "tailoring"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogEncoding: getEnv("LOG_ENCODING", "json"),

		OrdersRequireAddresses: getEnvAsBool("ORDERS_REQUIRE_ADDRESSES", false),

		CacheDriver:   getEnv("CACHE_DRIVER", "noop"),
		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		CacheTTL:      getEnvAsDuration("CACHE_TTL", 5*time.Minute),

		KafkaEnabled:           getEnvAsBool("KAFKA_ENABLED", false),
		KafkaBrokers:           getEnvAsStringSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),

		AddressServiceURL:     getEnv("ADDRESS_SERVICE_URL", ""),
		AddressServiceTimeout: getEnvAsDuration("ADDRESS_SERVICE_TIMEOUT", 2*time.Second),

		TracingEnabled: getEnvAsBool("TRACING_ENABLED", false),
		ServiceName:    getEnv("SERVICE_NAME", "tailoring"),

		BacklogCheckSchedule: getEnv("BACKLOG_CHECK_SCHEDULE", "0 */5 * * * *"),
		BacklogThreshold:     getEnvAsDuration("BACKLOG_THRESHOLD", 24*time.Hour),
	}
}

// DSN is the libpq connection string shared by gorm and goose.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, defaultVal string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value, ok := os.LookupEnv(key); ok {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvAsStringSlice(key string, defaults []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		parts := strings.Split(value, ",")
		filtered := make([]string, 0, len(parts))
		for _, part := range parts {
			if p := strings.TrimSpace(part); p != "" {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	return defaults
}
