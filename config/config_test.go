package config

import (
	"testing"
	"time"

	"github.com/apitesting/users-api-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(name string) string { return values[name] }
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, servicedef.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "reports", cfg.ReportDir)
	assert.Equal(t, "", cfg.FixturesFile)
	assert.Equal(t, 10*time.Second, cfg.StartupTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.TimeoutMS.IsDefined())
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout())
}

func TestLoadFromEnvironment(t *testing.T) {
	cfg, err := Load(envOf(map[string]string{
		EnvBaseURL:        "http://localhost:3000/",
		EnvFixturesFile:   "testdata/users.json",
		EnvReportDir:      "out",
		EnvTimeoutMS:      "2500",
		EnvStartupTimeout: "1m",
		EnvLogLevel:       "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/", cfg.BaseURL)
	assert.Equal(t, "testdata/users.json", cfg.FixturesFile)
	assert.Equal(t, "out", cfg.ReportDir)
	assert.Equal(t, 2500*time.Millisecond, cfg.RequestTimeout())
	assert.Equal(t, time.Minute, cfg.StartupTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load(envOf(map[string]string{EnvTimeoutMS: "soon"}))
	assert.Error(t, err)

	_, err = Load(envOf(map[string]string{EnvTimeoutMS: "-1"}))
	assert.Error(t, err)

	_, err = Load(envOf(map[string]string{EnvStartupTimeout: "10"}))
	assert.Error(t, err)
}
