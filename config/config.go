package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mcuadros/go-defaults"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Environment variables that override the defaults.
const (
	EnvBaseURL        = "USERS_API_BASE_URL"
	EnvFixturesFile   = "USERS_API_FIXTURES"
	EnvReportDir      = "USERS_API_REPORT_DIR"
	EnvTimeoutMS      = "USERS_API_TIMEOUT_MS"
	EnvStartupTimeout = "USERS_API_STARTUP_TIMEOUT"
	EnvLogLevel       = "USERS_API_LOG_LEVEL"
)

// Config holds the settings for a test run.
type Config struct {
	// BaseURL is the API under test.
	BaseURL string `default:"https://jsonplaceholder.typicode.com/"`

	// FixturesFile is a YAML or JSON file of payload templates. If empty, the built-in
	// templates are used.
	FixturesFile string

	// ReportDir is where timestamped JSON reports are written. An empty value disables the
	// report.
	ReportDir string `default:"reports"`

	// TimeoutMS is the per-request timeout. If undefined, requests have no timeout of their own.
	TimeoutMS ldvalue.OptionalInt

	// StartupTimeout bounds the reachability check done before the tests start.
	StartupTimeout time.Duration `default:"10s"`

	// LogLevel is the runner's log level: debug, info, warn, or error.
	LogLevel string `default:"info"`
}

// Default returns a Config with every field at its default value.
func Default() *Config {
	cfg := &Config{}
	defaults.SetDefaults(cfg)
	return cfg
}

// Load returns the defaults overridden by any environment variables that are set. getenv is
// normally os.Getenv.
func Load(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if v := getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := getenv(EnvFixturesFile); v != "" {
		cfg.FixturesFile = v
	}
	if v := getenv(EnvReportDir); v != "" {
		cfg.ReportDir = v
	}
	if v := getenv(EnvTimeoutMS); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("%s must be a non-negative integer: %q", EnvTimeoutMS, v)
		}
		cfg.TimeoutMS = ldvalue.NewOptionalInt(ms)
	}
	if v := getenv(EnvStartupTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s must be a duration: %w", EnvStartupTimeout, err)
		}
		cfg.StartupTimeout = d
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}

// RequestTimeout returns the per-request timeout, or zero for none.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.TimeoutMS.OrElse(0)) * time.Millisecond
}
