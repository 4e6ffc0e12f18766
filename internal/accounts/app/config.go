package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/notify"
	"github.com/aussiebroadwan/freelancehub/pkg/jwtx"
)

type Config struct {
	Issuer         string // Optional: issuer claim for session and reset tokens (default: freelancehub-accounts)
	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: path to SQLite database file (default: ./accounts.db)
	DatabaseDSN    string // Required for postgres: connection string
	PepperFile     string // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SecretFile     string // Optional: path to file containing the token signing secret (default: ./secret)
	PublicURL      string // Optional: external base URL used in reset links (default: http://localhost:8080)

	SessionTTL   time.Duration // Session lifetime without "remember me" (default: 24h)
	RememberTTL  time.Duration // Session lifetime with "remember me" (default: 30 days)
	CookieSecure bool          // Mark the session cookie Secure (default: true outside dev)

	ResetTTL         time.Duration // Reset link lifetime (default: 30m)
	ResetSingleUse   string        // off, store or redis (default: off)
	HideUnknownEmail bool          // Answer reset requests for unknown emails like known ones (default: false)

	TrustedProxies []string // Proxies allowed to set X-Forwarded-For and X-Real-IP (default: none)

	RedisAddr     string // Required for ResetSingleUse=redis
	RedisPassword string
	RedisDB       int

	SMTPHost      string // Optional: unset logs mail instead of sending it
	SMTPPort      int    // (default: 587)
	SMTPUsername  string
	SMTPPassword  string
	MailSender    string        // (default: noreply@freelancehub.com)
	NotifyTimeout time.Duration // Per-mail deadline (default: 10s)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	env := getEnvOrDefault("ENV", "dev")

	cfg := Config{
		Issuer:         getEnvOrDefault("ACCOUNTS_ISSUER", "freelancehub-accounts"),
		DatabaseDriver: strings.ToLower(getEnvOrDefault("ACCOUNTS_DATABASE_DRIVER", "sqlite")),
		DatabaseFile:   getEnvOrDefault("ACCOUNTS_DATABASE_FILE", "accounts.db"),
		DatabaseDSN:    os.Getenv("ACCOUNTS_DATABASE_DSN"),
		PepperFile:     getEnvOrDefault("ACCOUNTS_PEPPER_FILE", "pepper"),
		SecretFile:     getEnvOrDefault("ACCOUNTS_SECRET_FILE", "secret"),
		PublicURL:      getEnvOrDefault("ACCOUNTS_PUBLIC_URL", "http://localhost:8080"),

		SessionTTL:   getEnvDurationOrDefault("ACCOUNTS_SESSION_TTL", jwtx.DefaultSessionTTL),
		RememberTTL:  getEnvDurationOrDefault("ACCOUNTS_REMEMBER_TTL", jwtx.DefaultRememberTTL),
		CookieSecure: getEnvBoolOrDefault("ACCOUNTS_COOKIE_SECURE", env != "dev"),

		ResetTTL:         getEnvDurationOrDefault("ACCOUNTS_RESET_TTL", jwtx.DefaultResetTTL),
		ResetSingleUse:   strings.ToLower(getEnvOrDefault("ACCOUNTS_RESET_SINGLE_USE", "off")),
		HideUnknownEmail: getEnvBoolOrDefault("ACCOUNTS_RESET_HIDE_UNKNOWN_EMAIL", false),

		TrustedProxies: getEnvListOrDefault("TRUSTED_PROXIES", nil),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvIntOrDefault("REDIS_DB", 0),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		MailSender:    getEnvOrDefault("MAIL_SENDER", notify.DefaultSender),
		NotifyTimeout: getEnvDurationOrDefault("NOTIFY_TIMEOUT", 10*time.Second),

		Env:                  env,
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvListOrDefault splits a comma separated value, dropping empty items.
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
