package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Upstream REST backend that owns all persistence, auth and email.
	BackendBaseURL string `mapstructure:"BACKEND_BASE_URL"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisWizardDB  int    `mapstructure:"REDIS_WIZARD_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Session lifetimes in minutes.
	WizardTTLMinutes       int `mapstructure:"WIZARD_TTL_MINUTES"`
	StaffSessionTTLMinutes int `mapstructure:"STAFF_SESSION_TTL_MINUTES"`

	// Service-hour windows for time-slot generation (24h clock).
	LunchStartHour  int `mapstructure:"LUNCH_START_HOUR"`
	LunchEndHour    int `mapstructure:"LUNCH_END_HOUR"`
	DinnerStartHour int `mapstructure:"DINNER_START_HOUR"`
	DinnerEndHour   int `mapstructure:"DINNER_END_HOUR"`

	// Login throttle: attempts per minute per client IP.
	LoginAttemptsPerMin int `mapstructure:"LOGIN_ATTEMPTS_PER_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BACKEND_BASE_URL", "http://127.0.0.1:8000")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_WIZARD_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("WIZARD_TTL_MINUTES", 30)
	viper.SetDefault("STAFF_SESSION_TTL_MINUTES", 720)
	viper.SetDefault("LUNCH_START_HOUR", 11)
	viper.SetDefault("LUNCH_END_HOUR", 14)
	viper.SetDefault("DINNER_START_HOUR", 17)
	viper.SetDefault("DINNER_END_HOUR", 21)
	viper.SetDefault("LOGIN_ATTEMPTS_PER_MIN", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
