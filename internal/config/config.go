package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	JWT     JWTConfig
	Auth    AuthConfig
	Session SessionConfig
	Leave   LeaveConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AuthConfig holds sign-in behavior configuration
type AuthConfig struct {
	// LoginDelay is an artificial latency applied to login so the flow
	// resembles a real identity-provider round trip. Set to 0 in tests.
	LoginDelay time.Duration
}

// SessionConfig holds the persisted-session file location
type SessionConfig struct {
	FilePath string
}

// LeaveConfig holds annual leave entitlements in days per type
type LeaveConfig struct {
	VacationDays int
	SickDays     int
	PersonalDays int
}

func Load() (*Config, error) {
	// A missing .env is fine; the process environment takes over.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	loginDelay, err := time.ParseDuration(getEnv("AUTH_LOGIN_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_LOGIN_DELAY: %w", err)
	}
	config.Auth = AuthConfig{LoginDelay: loginDelay}

	config.Session = SessionConfig{
		FilePath: getEnv("SESSION_FILE", ".hrms_session.json"),
	}

	vacationDays, err := strconv.Atoi(getEnv("LEAVE_VACATION_DAYS", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_VACATION_DAYS: %w", err)
	}
	sickDays, err := strconv.Atoi(getEnv("LEAVE_SICK_DAYS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_SICK_DAYS: %w", err)
	}
	personalDays, err := strconv.Atoi(getEnv("LEAVE_PERSONAL_DAYS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_PERSONAL_DAYS: %w", err)
	}
	config.Leave = LeaveConfig{
		VacationDays: vacationDays,
		SickDays:     sickDays,
		PersonalDays: personalDays,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Auth.LoginDelay < 0 {
		return fmt.Errorf("AUTH_LOGIN_DELAY must not be negative")
	}
	if c.Leave.VacationDays < 0 || c.Leave.SickDays < 0 || c.Leave.PersonalDays < 0 {
		return fmt.Errorf("leave entitlements must not be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
