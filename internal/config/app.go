package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Leganyst/scheduling-core/internal/scheduling"
)

// AppConfig — настройки процесса, кроме БД.
type AppConfig struct {
	ServiceName string
	GRPCAddr    string
	HTTPAddr    string
	LogLevel    string

	// Бизнес-календарь.
	ReferenceTZ    string
	LocalTZ        string
	BusinessOpen   scheduling.Clock
	BusinessClose  scheduling.Clock
	UpcomingWindow time.Duration

	// Блокировки по клиенту: Redis, если адрес задан, иначе in-process.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LockTTL       time.Duration

	// События встреч. Пустой список брокеров отключает публикацию.
	KafkaBrokers     []string
	KafkaTopicPrefix string

	OTelEnabled      bool
	OTelEndpoint     string
	OTelSampleRatio  float64
	OTelEnvironment  string
	OTelInsecureGRPC bool
}

// LoadDotEnv подгружает переменные из файлов .env (по умолчанию ./.env).
// Отсутствие файла ошибкой не считается: в контейнере всё приходит из окружения.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		ServiceName:      getEnv("SERVICE_NAME", "scheduling-core"),
		GRPCAddr:         getEnv("GRPC_ADDR", ":50051"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ReferenceTZ:      getEnv("REFERENCE_TZ", scheduling.ReferenceZoneName),
		LocalTZ:          getEnv("LOCAL_TZ", "Local"),
		UpcomingWindow:   time.Duration(getEnvInt("UPCOMING_WINDOW_MIN", 15)) * time.Minute,
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		LockTTL:          time.Duration(getEnvInt("LOCK_TTL_SEC", 10)) * time.Second,
		KafkaBrokers:     splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", "scheduling"),
		OTelEnabled:      getEnvBool("OTEL_ENABLED", false),
		OTelEndpoint:     getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		OTelSampleRatio:  getEnvFloat("OTEL_SAMPLING_RATIO", 1.0),
		OTelEnvironment:  getEnv("OTEL_ENVIRONMENT", "dev"),
		OTelInsecureGRPC: getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
	}

	var err error
	if cfg.BusinessOpen, err = scheduling.ParseClock(getEnv("BUSINESS_OPEN", "08:00")); err != nil {
		return nil, fmt.Errorf("BUSINESS_OPEN: %w", err)
	}
	if cfg.BusinessClose, err = scheduling.ParseClock(getEnv("BUSINESS_CLOSE", "22:00")); err != nil {
		return nil, fmt.Errorf("BUSINESS_CLOSE: %w", err)
	}
	if cfg.UpcomingWindow <= 0 {
		return nil, fmt.Errorf("UPCOMING_WINDOW_MIN must be positive")
	}
	if cfg.LockTTL <= 0 {
		return nil, fmt.Errorf("LOCK_TTL_SEC must be positive")
	}
	if cfg.OTelSampleRatio < 0 || cfg.OTelSampleRatio > 1 {
		return nil, fmt.Errorf("OTEL_SAMPLING_RATIO must be within [0, 1]")
	}

	return cfg, nil
}

// Calendar собирает бизнес-календарь из настроек.
func (c *AppConfig) Calendar() (scheduling.Calendar, error) {
	return scheduling.NewCalendar(c.ReferenceTZ, c.BusinessOpen, c.BusinessClose)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
