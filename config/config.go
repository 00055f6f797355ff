package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Session store kinds.
const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	SiteURL     string

	BackendURL          string
	BackendTimeout      time.Duration
	BackendJWTSecret    string
	BackendWaitAttempts uint

	SessionStore         string
	DBUrl                string
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	CookieSecure         bool

	CORSAllowedOrigins []string

	MailProvider          string
	MailFromAddress       string
	MailFromName          string
	OfficeNotifyEmail     string
	AWSRegion             string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string
	SESInsecureSkipVerify bool
	MailRetryAttempts     uint
	MailRetryDelay        time.Duration
	MailNotifyTimeout     time.Duration
}

// IsProduction reports whether GO_ENV is production.
func (c *Config) IsProduction() bool { return c.Environment == "production" }

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the environment is the only source.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	var errs []string
	r := reader{errs: &errs}

	cfg := &Config{
		Environment: env,
		Port:        r.str("PORT", "8080"),
		SiteURL:     r.str("SITE_URL", ""),

		BackendURL:          r.str("BACKEND_URL", "http://localhost:8000/api"),
		BackendTimeout:      r.dur("BACKEND_TIMEOUT", 10*time.Second),
		BackendJWTSecret:    os.Getenv("BACKEND_JWT_SECRET"),
		BackendWaitAttempts: r.count("BACKEND_WAIT_ATTEMPTS", 5),

		SessionStore:         strings.ToLower(r.str("SESSION_STORE", SessionStoreMemory)),
		DBUrl:                os.Getenv("DATABASE_URL"),
		SessionTTL:           r.dur("SESSION_TTL", 24*time.Hour),
		SessionSweepInterval: r.dur("SESSION_SWEEP_INTERVAL", 10*time.Minute),
		CookieSecure:         r.flag("COOKIE_SECURE", env == "production"),

		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),

		MailProvider:          strings.ToLower(r.str("MAIL_PROVIDER", "noop")),
		MailFromAddress:       os.Getenv("MAIL_FROM_ADDRESS"),
		MailFromName:          os.Getenv("MAIL_FROM_NAME"),
		OfficeNotifyEmail:     os.Getenv("OFFICE_NOTIFY_EMAIL"),
		AWSRegion:             r.str("AWS_REGION", "ap-northeast-2"),
		AWSAccessKeyID:        os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SESInsecureSkipVerify: r.flag("SES_INSECURE_SKIP_VERIFY", false),
		MailRetryAttempts:     r.count("MAIL_RETRY_ATTEMPTS", 3),
		MailRetryDelay:        r.dur("MAIL_RETRY_DELAY", 2*time.Second),
		MailNotifyTimeout:     r.dur("MAIL_NOTIFY_TIMEOUT", 3*time.Second),
	}

	if cfg.SiteURL == "" {
		cfg.SiteURL = "http://localhost:" + cfg.Port
	}
	switch cfg.SessionStore {
	case SessionStoreMemory:
	case SessionStorePostgres:
		if cfg.DBUrl == "" {
			errs = append(errs, "DATABASE_URL is required when SESSION_STORE=postgres")
		}
	default:
		errs = append(errs, fmt.Sprintf("SESSION_STORE must be %q or %q", SessionStoreMemory, SessionStorePostgres))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

// reader parses typed environment variables and collects parse errors.
type reader struct {
	errs *[]string
}

func (r reader) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (r reader) dur(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		*r.errs = append(*r.errs, fmt.Sprintf("%s must be a non-negative duration, got %q", key, v))
		return def
	}
	return d
}

func (r reader) count(key string, def uint) uint {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil || n == 0 {
		*r.errs = append(*r.errs, fmt.Sprintf("%s must be a positive integer, got %q", key, v))
		return def
	}
	return uint(n)
}

func (r reader) flag(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*r.errs = append(*r.errs, fmt.Sprintf("%s must be a boolean, got %q", key, v))
		return def
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
