package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "advent.yml")

	validConfig := `year: 2023
input_dir: "puzzles"
session_file: "~/.aoc"
log_level: "info"
http:
  timeout: 5s
  retries: 0
cache:
  backend: "redis"
  redis_url: "redis://localhost:6379/0"
  scope_by_session: true
bench:
  samples: 50
  warmup: 1s
`
	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	config, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, 2023, config.Year)
	assert.Equal(t, "puzzles", config.InputDir)
	assert.Equal(t, "~/.aoc", config.SessionFile)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, 5*time.Second, config.HTTP.Timeout)
	assert.Equal(t, 0, *config.HTTP.Retries)
	assert.Equal(t, defaultBaseURL, config.HTTP.BaseURL)
	assert.Equal(t, BackendRedis, config.Cache.Backend)
	assert.True(t, config.Cache.ScopeBySession)
	assert.Equal(t, 50, config.Bench.Samples)
	assert.Equal(t, time.Second, config.Bench.Warmup)
	assert.Equal(t, defaultBenchMeasurement, config.Bench.Measurement)
}

func TestLoad_FileNotFound(t *testing.T) {
	config, err := Load("/nonexistent/advent.yml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "advent.yml")

	invalidYAML := `year: 2024
cache:
  - this is invalid
    yaml syntax
`
	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	config, err := Load(configPath)
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoad_InvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "advent.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("cache:\n  backend: redis\n"), 0644))

	config, err := Load(configPath)
	assert.Nil(t, config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "redis_url is required")
}

func TestDefault(t *testing.T) {
	config := Default()
	assert.Equal(t, 2024, config.Year)
	assert.Equal(t, "input", config.InputDir)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, defaultHTTPTimeout, config.HTTP.Timeout)
	assert.Equal(t, 3, *config.HTTP.Retries)
	assert.Equal(t, defaultUserAgent, config.HTTP.UserAgent)
	assert.Equal(t, BackendFile, config.Cache.Backend)
	assert.False(t, config.Cache.ScopeBySession)
	assert.Equal(t, 20, config.Bench.Samples)
	assert.Equal(t, 4, config.Bench.Prefetch)
}

func TestValidate_Errors(t *testing.T) {
	negative := -1
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"year too early", Config{Year: 2014}, "year must be 2015 or later"},
		{"bad log level", Config{LogLevel: "trace"}, "invalid log_level: trace"},
		{"negative retries", Config{HTTP: &HTTPConfig{Retries: &negative}}, "http.retries must be >= 0"},
		{"negative timeout", Config{HTTP: &HTTPConfig{Timeout: -time.Second}}, "http.timeout must be positive"},
		{"unknown backend", Config{Cache: &CacheConfig{Backend: "s3"}}, "invalid cache.backend: s3"},
		{"redis without url", Config{Cache: &CacheConfig{Backend: BackendRedis}}, "cache.redis_url is required"},
		{"one sample", Config{Bench: &BenchConfig{Samples: 1}}, "bench.samples must be >= 2"},
		{"negative prefetch", Config{Bench: &BenchConfig{Prefetch: -2}}, "bench.prefetch must be >= 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	config := &Config{Year: 2022, InputDir: "from-file"}
	err := config.ApplyEnv(env(map[string]string{
		"AOC_SESSION":      "abc123",
		"AOC_SESSION_FILE": "/tmp/session",
		"AOC_YEAR":         "2024",
		"AOC_INPUT_DIR":    "from-env",
		"AOC_REDIS_URL":    "redis://cache:6379",
		"AOC_LOG_LEVEL":    "debug",
	}))
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, "abc123", config.Session)
	assert.Equal(t, "/tmp/session", config.SessionFile)
	assert.Equal(t, 2024, config.Year)
	assert.Equal(t, "from-env", config.InputDir)
	assert.Equal(t, BackendRedis, config.Cache.Backend)
	assert.Equal(t, "redis://cache:6379", config.Cache.RedisURL)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestApplyEnv_RedisURLKeepsExplicitBackend(t *testing.T) {
	config := &Config{Cache: &CacheConfig{Backend: BackendFile}}
	require.NoError(t, config.ApplyEnv(env(map[string]string{"AOC_REDIS_URL": "redis://cache:6379"})))
	assert.Equal(t, BackendFile, config.Cache.Backend)
}

func TestApplyEnv_InvalidYear(t *testing.T) {
	config := &Config{}
	err := config.ApplyEnv(env(map[string]string{"AOC_YEAR": "twenty"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid AOC_YEAR")
}

func TestResolve_MissingDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)

	config, err := Resolve(path, false, env(map[string]string{"AOC_YEAR": "2023"}))
	require.NoError(t, err)
	assert.Equal(t, 2023, config.Year)
	assert.Equal(t, "input", config.InputDir)
}

func TestResolve_MissingExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")

	config, err := Resolve(path, true, env(nil))
	assert.Nil(t, config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("year: 2021\nlog_level: error\n"), 0644))

	config, err := Resolve(path, false, env(map[string]string{"AOC_LOG_LEVEL": "info"}))
	require.NoError(t, err)
	assert.Equal(t, 2021, config.Year)
	assert.Equal(t, "info", config.LogLevel)
}

func TestResolve_InvalidEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)

	_, err := Resolve(path, false, env(map[string]string{"AOC_LOG_LEVEL": "loud"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log_level: loud")
}

func TestApplyEnv_EmptyValuesAreIgnored(t *testing.T) {
	config := &Config{InputDir: "from-file"}
	require.NoError(t, config.ApplyEnv(env(map[string]string{
		"AOC_INPUT_DIR": "",
		"AOC_REDIS_URL": "",
	})))
	require.NoError(t, config.Validate())
	assert.Equal(t, "from-file", config.InputDir)
	assert.Equal(t, BackendFile, config.Cache.Backend)
}
