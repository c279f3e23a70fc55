package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	MongoString  string
	DBName       string
	PasetoSecret []byte
	RedisAddr    string
	UserCacheTTL time.Duration
	KafkaBrokers []string
	KafkaTopic   string
	LogLevel     string
	Environment  string
}

// LoadConfig reads the .env file (when present) and the process environment.
func LoadConfig() (*AppConfig, error) {
	// godotenv never overrides variables that are already set.
	_ = godotenv.Load()

	cfg := &AppConfig{
		Port:        getEnv("PORT", "3000"),
		MongoString: getEnv("MONGOSTRING", ""),
		DBName:      getEnv("DB_NAME", "leave-tracking-db"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "hr.leave.lifecycle.v1"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Environment: strings.ToLower(getEnv("ENVIRONMENT", "development")),
	}

	if cfg.MongoString == "" {
		return nil, fmt.Errorf("MONGOSTRING is not set")
	}

	secret, err := DecodePasetoSecret(getEnv("PASETO_SECRET", ""))
	if err != nil {
		return nil, err
	}
	cfg.PasetoSecret = secret

	cfg.UserCacheTTL, err = time.ParseDuration(getEnv("USER_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid USER_CACHE_TTL: %w", err)
	}
	if cfg.UserCacheTTL <= 0 {
		return nil, fmt.Errorf("USER_CACHE_TTL must be positive")
	}

	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}

	return cfg, nil
}

// DecodePasetoSecret accepts URL-safe or standard base64, padded or not, and
// requires exactly 32 bytes once decoded.
func DecodePasetoSecret(secret string) ([]byte, error) {
	if secret == "" {
		return nil, fmt.Errorf("PASETO_SECRET is not set")
	}

	var decoded []byte
	var err error
	for _, enc := range []*base64.Encoding{
		base64.URLEncoding,
		base64.RawURLEncoding,
		base64.StdEncoding,
		base64.RawStdEncoding,
	} {
		decoded, err = enc.DecodeString(secret)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("PASETO_SECRET is not valid base64: %w", err)
	}

	if len(decoded) != 32 {
		return nil, fmt.Errorf("PASETO_SECRET must decode to exactly 32 bytes, got %d", len(decoded))
	}
	return decoded, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
