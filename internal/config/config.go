package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds everything the API reads from the environment.
type Config struct {
	Port           string
	DBDriver       string // "mysql" or "sqlite"
	DBDSN          string
	GinMode        string
	CORSOrigins    []string
	RabbitURL      string // empty disables event publishing
	RabbitExchange string
	LogLevel       string
	ShutdownGrace  time.Duration
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Load reads .env (if present) and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("could not find or load .env file, relying on system environment variables")
	}

	driver := getEnv("DB_DRIVER", DriverMySQL)
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		DBDriver:       driver,
		DBDSN:          getEnv("DB_DSN_PRIMARY", defaultDSN(driver)),
		GinMode:        getEnv("GIN_MODE", "debug"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "*")),
		RabbitURL:      os.Getenv("RABBIT_URL"),
		RabbitExchange: getEnv("RABBIT_EXCHANGE", "shop_events"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ShutdownGrace:  getDuration("SHUTDOWN_GRACE", 10*time.Second),
	}
	return cfg
}

func defaultDSN(driver string) string {
	if driver == DriverSQLite {
		return "file:shop.db?_pragma=foreign_keys(1)"
	}
	return "root:root@tcp(127.0.0.1:3306)/shop?parseTime=true"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid duration, using default")
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
