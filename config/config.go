package config

import (
	"fmt"
	"os"
)

type Config struct {
	Env          string
	Port         string
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	SQLitePath   string
	ResetEnabled bool
}

func Load() *Config {
	env := getEnv("ENV", "dev")
	return &Config{
		Env:          env,
		Port:         getEnv("PORT", "8080"),
		DBDriver:     getEnv("DB_DRIVER", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", ""),
		DBName:       getEnv("DB_NAME", "blog"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		SQLitePath:   getEnv("SQLITE_PATH", "blog.db"),
		ResetEnabled: resetEnabled(env),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// The reset endpoints exist for test isolation; outside production they are
// on by default, in production they need an explicit opt-in.
func resetEnabled(env string) bool {
	if v := os.Getenv("ENABLE_RESET"); v != "" {
		return v == "true" || v == "1"
	}
	return env != "production"
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
