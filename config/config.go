package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar Clipper specifics
	Extractor      ExtractorConfig
	GoogleCalendar GoogleCalendarConfig
	Telemetry      TelemetryConfig
	Cache          CacheConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ExtractorConfig points at the AI extraction backend.
type ExtractorConfig struct {
	BaseURL string
	Timeout time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	Timezone        string
}

// TelemetryConfig points at the optional save-outcome sink. An empty
// URL disables reporting.
type TelemetryConfig struct {
	URL string
}

type CacheConfig struct {
	MaxItems int
	TTL      time.Duration
}

type RateLimitConfig struct {
	ExtractPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Extraction backend
	cfg.Extractor.BaseURL = viper.GetString("extractor.base_url")
	cfg.Extractor.Timeout = viper.GetDuration("extractor.timeout")
	if extractorURL := viper.GetString("extractor_base_url"); extractorURL != "" {
		cfg.Extractor.BaseURL = extractorURL
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Telemetry
	cfg.Telemetry.URL = viper.GetString("telemetry.url")
	if telemetryURL := viper.GetString("telemetry_url"); telemetryURL != "" {
		cfg.Telemetry.URL = telemetryURL
	}

	// Cache & rate limit
	cfg.Cache.MaxItems = viper.GetInt("cache.max_items")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.RateLimit.ExtractPerMin = viper.GetInt("rate_limit.extract_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("extractor.timeout", "15s")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timezone", "UTC")
	viper.SetDefault("cache.max_items", 20)
	viper.SetDefault("cache.ttl", "1h")
	viper.SetDefault("rate_limit.extract_per_min", 60)
}
