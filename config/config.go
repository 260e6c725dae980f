package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB.
	DatabaseURL  string        `mapstructure:"DATABASE_URL"`
	DatabaseName string        `mapstructure:"DATABASE_NAME"`
	StoreTimeout time.Duration `mapstructure:"STORE_TIMEOUT"`

	// CORS origins.
	FrontendURL    string `mapstructure:"FRONTEND_URL"`
	DevFrontendURL string `mapstructure:"DEV_FRONTEND_URL"`

	// Booking rules.
	BookingWriteMode string `mapstructure:"BOOKING_WRITE_MODE"`
	OpenHour         int    `mapstructure:"OPEN_HOUR"`
	CloseHour        int    `mapstructure:"CLOSE_HOUR"`
	SlotMinutes      int    `mapstructure:"SLOT_MINUTES"`

	// Redis availability cache. Empty address disables it.
	RedisAddr            string        `mapstructure:"REDIS_ADDR"`
	RedisPassword        string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int           `mapstructure:"REDIS_CACHE_DB"`
	AvailabilityCacheTTL time.Duration `mapstructure:"AVAILABILITY_CACHE_TTL"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "tablebook")
	v.SetDefault("STORE_TIMEOUT", "5s")
	v.SetDefault("FRONTEND_URL", "")
	v.SetDefault("DEV_FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("BOOKING_WRITE_MODE", "atomic")
	v.SetDefault("OPEN_HOUR", 11)
	v.SetDefault("CLOSE_HOUR", 22)
	v.SetDefault("SLOT_MINUTES", 30)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("AVAILABILITY_CACHE_TTL", "30s")
}

// Load reads configuration from defaults, an optional config.yaml and the
// environment, in increasing order of precedence.
func Load() (Config, error) {
	v := viper.New()
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfig populates AppConfig and exits the process if that is not possible.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// AllowedOrigin is the single frontend origin CORS lets through.
func (c Config) AllowedOrigin() string {
	if c.Env == "production" {
		return c.FrontendURL
	}
	return c.DevFrontendURL
}
