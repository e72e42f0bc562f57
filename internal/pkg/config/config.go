package config

import (
	"fmt"
	"strings"
	"time"

	"facility-booking/internal/domain/booking"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (booking policy, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Events  EventsConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type EventsConfig struct {
	Brokers string `envconfig:"KAFKA_BROKERS" default:""`
	Topic   string `envconfig:"KAFKA_TOPIC" default:"reservation-events"`
}

// BrokerList splits the comma-separated broker string, dropping blanks.
func (c EventsConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if trimmed := strings.TrimSpace(b); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}
	return brokers
}

// BookingConfig mirrors booking.Policy so the window can be tuned per
// environment. Defaults are the production policy.
type BookingConfig struct {
	OpenHour       int `envconfig:"BOOKING_OPEN_HOUR" default:"14"`
	CloseHour      int `envconfig:"BOOKING_CLOSE_HOUR" default:"22"`
	SlotMinutes    int `envconfig:"BOOKING_SLOT_MINUTES" default:"15"`
	MinDurationMin int `envconfig:"BOOKING_MIN_DURATION_MIN" default:"30"`
	MaxDurationMin int `envconfig:"BOOKING_MAX_DURATION_MIN" default:"180"`
	HorizonDays    int `envconfig:"BOOKING_HORIZON_DAYS" default:"7"`
	CutoffHours    int `envconfig:"BOOKING_CUTOFF_HOURS" default:"12"`
}

func (c BookingConfig) Policy() booking.Policy {
	return booking.Policy{
		OpenHour:       c.OpenHour,
		CloseHour:      c.CloseHour,
		SlotMinutes:    c.SlotMinutes,
		MinDurationMin: c.MinDurationMin,
		MaxDurationMin: c.MaxDurationMin,
		HorizonDays:    c.HorizonDays,
		CutoffHours:    c.CutoffHours,
	}
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Booking: BookingConfig{
			OpenHour:       14,
			CloseHour:      22,
			SlotMinutes:    15,
			MinDurationMin: 30,
			MaxDurationMin: 180,
			HorizonDays:    7,
			CutoffHours:    12,
		},
	}
}
