package cmd

import (
	"errors"
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

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers     []string
	KafkaTopicPrefix string

	JWTSecret string
	JWTTTL    time.Duration

	CancellationLockTTL   time.Duration
	OutboxBatchSize       int
	OutboxRetention       time.Duration
	BookingAPIBaseURL     string
	BookingAPIHTTPTimeout time.Duration
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads the given .env files (missing files are skipped) and then
// the process environment. Variables already set in the environment win.
func LoadConfig(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var errList []error
	config := Config{
		HTTPPort:   env("HTTP_PORT", "8080"),
		DBHost:     env("DB_HOST", "localhost"),
		DBPort:     env("DB_PORT", "5432"),
		DBUser:     env("DB_USER", "postgres"),
		DBPassword: env("DB_PASSWORD", ""),
		DBName:     env("DB_NAME", "fastex"),
		DBSslMode:  env("DB_SSLMODE", "disable"),

		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPassword: env("REDIS_PASSWORD", ""),
		RedisDB:       intEnv("REDIS_DB", 0, &errList),

		KafkaBrokers:     listEnv("KAFKA_BROKERS", "localhost:9092"),
		KafkaTopicPrefix: env("KAFKA_TOPIC_PREFIX", "fastex.notifications"),

		JWTSecret: env("JWT_SECRET", ""),
		JWTTTL:    durationEnv("JWT_TTL", 24*time.Hour, &errList),

		CancellationLockTTL:   durationEnv("CANCELLATION_LOCK_TTL", 30*time.Second, &errList),
		OutboxBatchSize:       intEnv("OUTBOX_BATCH_SIZE", 100, &errList),
		OutboxRetention:       durationEnv("OUTBOX_RETENTION", 7*24*time.Hour, &errList),
		BookingAPIBaseURL:     env("BOOKING_API_BASE_URL", "http://localhost:8080"),
		BookingAPIHTTPTimeout: durationEnv("BOOKING_API_HTTP_TIMEOUT", 10*time.Second, &errList),
	}

	if config.JWTSecret == "" {
		errList = append(errList, errors.New("JWT_SECRET is required"))
	}

	return config, errors.Join(errList...)
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func intEnv(key string, fallback int, errList *[]error) int {
	raw := env(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errList = append(*errList, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func durationEnv(key string, fallback time.Duration, errList *[]error) time.Duration {
	raw := env(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		*errList = append(*errList, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func listEnv(key, fallback string) []string {
	var out []string
	for _, part := range strings.Split(env(key, fallback), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
