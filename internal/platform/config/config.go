package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// AcademicYearStart is the calendar year whose August opens the wallet set.
	AcademicYearStart int
	ReportStateMode   domain.ReportStateMode
	// ReportGatewayDelay is the simulated backend round trip used when AMQP is not configured.
	ReportGatewayDelay time.Duration

	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// SessionTTL is how long an unused session is kept; MaxSessions caps how many are held.
	SessionTTL  time.Duration
	MaxSessions int

	// RateLimit uses the limiter's formatted rate, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string
}

// UsesDatabase reports whether the ledger is kept in Postgres.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// UsesAMQP reports whether report events go to a broker.
func (c *Config) UsesAMQP() bool {
	return c.AMQPURL != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("ACADEMIC_YEAR_START", defaultAcademicYearStart(time.Now()))
	v.SetDefault("REPORT_STATE_MODE", string(domain.ReportStateSingle))
	v.SetDefault("REPORT_GATEWAY_DELAY", "1500ms")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "pres.reports")
	v.SetDefault("AMQP_QUEUE", "pres.reports.events")
	v.SetDefault("SESSION_TTL", "12h")
	v.SetDefault("MAX_SESSIONS", 10000)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   v.GetString("PGSQL_URL"),
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		AMQPURL:       v.GetString("AMQP_URL"),
		AMQPExchange:  v.GetString("AMQP_EXCHANGE"),
		AMQPQueue:     v.GetString("AMQP_QUEUE"),
		RateLimit:     v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		slog.Info("PGSQL_URL not set, keeping the ledger in memory")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, defaulting", slog.String("port", cfg.Port))
	}

	cfg.AcademicYearStart = v.GetInt("ACADEMIC_YEAR_START")
	if cfg.AcademicYearStart < 2000 || cfg.AcademicYearStart > 9998 {
		return nil, fmt.Errorf("invalid ACADEMIC_YEAR_START %q", v.GetString("ACADEMIC_YEAR_START"))
	}

	mode := domain.ReportStateMode(strings.ToLower(strings.TrimSpace(v.GetString("REPORT_STATE_MODE"))))
	switch mode {
	case domain.ReportStateSingle, domain.ReportStatePerWallet:
		cfg.ReportStateMode = mode
	default:
		return nil, fmt.Errorf("invalid REPORT_STATE_MODE %q: want %q or %q", mode, domain.ReportStateSingle, domain.ReportStatePerWallet)
	}

	delayStr := v.GetString("REPORT_GATEWAY_DELAY")
	delay, err := time.ParseDuration(delayStr)
	if err != nil || delay < 0 {
		delay = 1500 * time.Millisecond
		slog.Warn("Invalid REPORT_GATEWAY_DELAY, defaulting",
			slog.String("value", delayStr),
			slog.Duration("delay", delay))
	}
	cfg.ReportGatewayDelay = delay

	ttlStr := v.GetString("SESSION_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = 12 * time.Hour
		slog.Warn("Invalid SESSION_TTL, defaulting",
			slog.String("value", ttlStr),
			slog.Duration("ttl", ttl))
	}
	cfg.SessionTTL = ttl

	cfg.MaxSessions = v.GetInt("MAX_SESSIONS")
	if cfg.MaxSessions <= 0 {
		return nil, fmt.Errorf("invalid MAX_SESSIONS %q", v.GetString("MAX_SESSIONS"))
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// defaultAcademicYearStart returns the year whose August began the current academic year.
func defaultAcademicYearStart(now time.Time) int {
	if now.Month() >= time.August {
		return now.Year()
	}
	return now.Year() - 1
}
