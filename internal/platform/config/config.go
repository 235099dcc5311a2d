package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr           string
	DirectoryPath  string
	WatchDirectory bool
	AdminToken     string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration
	SessionTTL     time.Duration
	Redis          RedisConfig
	SMS            SMSConfig
}

// RedisConfig configures the session store. An empty URL keeps sessions in
// process memory.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// SMSConfig configures follow-up delivery. Without Twilio credentials the
// follow-up endpoint is not mounted.
type SMSConfig struct {
	AccountSID      string
	AuthToken       string
	BaseURL         string
	FromNumber      string
	PerMinute       int
	BreakerFailures int
	BreakerCooldown time.Duration
}

// Enabled reports whether follow-up texts can be sent.
func (c SMSConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != ""
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var errs []error
	cfg := Server{
		Addr:           stringEnv("HOTLINE_ADDR", ":8080"),
		DirectoryPath:  stringEnv("HOTLINE_DIRECTORY_PATH", "configs/contacts.yaml"),
		WatchDirectory: boolEnv("HOTLINE_WATCH_DIRECTORY", true, &errs),
		AdminToken:     os.Getenv("HOTLINE_ADMIN_TOKEN"),
		LogLevel:       stringEnv("HOTLINE_LOG_LEVEL", "info"),
		LogFormat:      stringEnv("HOTLINE_LOG_FORMAT", "json"),
		RequestTimeout: durationEnv("HOTLINE_REQUEST_TIMEOUT", 10*time.Second, &errs),
		SessionTTL:     durationEnv("HOTLINE_SESSION_TTL", 2*time.Hour, &errs),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     intEnv("REDIS_POOL_SIZE", 10, &errs),
			MinIdleConns: intEnv("REDIS_MIN_IDLE_CONNS", 2, &errs),
			DialTimeout:  durationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second, &errs),
			ReadTimeout:  durationEnv("REDIS_READ_TIMEOUT", 3*time.Second, &errs),
			WriteTimeout: durationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second, &errs),
		},
		SMS: SMSConfig{
			AccountSID:      os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:       os.Getenv("TWILIO_AUTH_TOKEN"),
			BaseURL:         os.Getenv("TWILIO_BASE_URL"),
			FromNumber:      os.Getenv("HOTLINE_SMS_FROM"),
			PerMinute:       intEnv("HOTLINE_SMS_PER_MINUTE", 2, &errs),
			BreakerFailures: intEnv("HOTLINE_SMS_BREAKER_FAILURES", 5, &errs),
			BreakerCooldown: durationEnv("HOTLINE_SMS_BREAKER_COOLDOWN", 30*time.Second, &errs),
		},
	}
	if len(errs) > 0 {
		return Server{}, errs[0]
	}
	return cfg, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string, fallback bool, errs *[]error) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return b
}

func intEnv(key string, fallback int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func durationEnv(key string, fallback time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}
