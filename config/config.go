package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Daycraft specifics
	Calendar       CalendarConfig
	Store          StoreConfig
	Planner        PlannerConfig
	GoogleCalendar GoogleCalendarConfig
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

type RateLimitConfig struct {
	PerMin int // zero disables
}

// CalendarConfig drives every date computation.
type CalendarConfig struct {
	Timezone     string
	FirstWeekday time.Weekday
}

type StoreConfig struct {
	Driver      string // file or postgres
	Path        string
	PostgresDSN string
}

type PlannerConfig struct {
	CapacityMinutes int
	StaleDays       int
	DeferThreshold  int
	DeepWorkMorning bool
}

// GoogleCalendarConfig is optional; an empty CredentialsPath disables event
// booking.
type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/daycraft/.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/daycraft/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Calendar
	cfg.Calendar.Timezone = v.GetString("calendar.timezone")
	weekday, err := parseWeekday(v.GetString("calendar.first_weekday"))
	if err != nil {
		return nil, err
	}
	cfg.Calendar.FirstWeekday = weekday

	// Store
	cfg.Store.Driver = strings.ToLower(v.GetString("store.driver"))
	cfg.Store.Path = v.GetString("store.path")
	cfg.Store.PostgresDSN = v.GetString("store.postgres_dsn")
	if dsn := v.GetString("database_url"); dsn != "" {
		cfg.Store.PostgresDSN = dsn
	}

	// Planner
	cfg.Planner.CapacityMinutes = v.GetInt("planner.capacity_minutes")
	cfg.Planner.StaleDays = v.GetInt("planner.stale_days")
	cfg.Planner.DeferThreshold = v.GetInt("planner.defer_threshold")
	cfg.Planner.DeepWorkMorning = v.GetBool("planner.deep_work_morning")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 120)

	v.SetDefault("calendar.timezone", "UTC")
	v.SetDefault("calendar.first_weekday", "sunday")

	v.SetDefault("store.driver", StoreDriverFile)
	v.SetDefault("store.path", "daycraft-tasks.json")

	v.SetDefault("planner.capacity_minutes", 480)
	v.SetDefault("planner.stale_days", 7)
	v.SetDefault("planner.defer_threshold", 3)
	v.SetDefault("planner.deep_work_morning", false)

	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 {
		return errors.New("http_server.port must be positive")
	}
	if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
		return fmt.Errorf("calendar.timezone: %w", err)
	}
	switch c.Store.Driver {
	case StoreDriverFile:
		if c.Store.Path == "" {
			return errors.New("store.path is required for the file driver")
		}
	case StoreDriverPostgres:
		if c.Store.PostgresDSN == "" {
			return errors.New("store.postgres_dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("store.driver %q: must be %s or %s", c.Store.Driver, StoreDriverFile, StoreDriverPostgres)
	}
	if c.RateLimit.PerMin < 0 {
		return errors.New("rate_limit.per_min must not be negative")
	}
	return nil
}

func parseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("calendar.first_weekday %q is not a weekday name", s)
}
