package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = "advent.yml"

const (
	defaultYear        = 2024
	firstYear          = 2015
	defaultInputDir    = "input"
	defaultLogLevel    = "warn"
	defaultBaseURL     = "https://adventofcode.com"
	defaultUserAgent   = "github.com/dyluth/advent"
	defaultHTTPTimeout = 30 * time.Second
	defaultHTTPRetries = 3

	defaultBenchSamples     = 20
	defaultBenchWarmup      = 500 * time.Millisecond
	defaultBenchMeasurement = 2 * time.Second
	defaultBenchPrefetch    = 4

	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config represents advent.yml after environment overrides
type Config struct {
	Year        int    `yaml:"year"`
	InputDir    string `yaml:"input_dir"`
	SessionFile string `yaml:"session_file,omitempty"`
	LogLevel    string `yaml:"log_level"`

	HTTP  *HTTPConfig  `yaml:"http,omitempty"`
	Cache *CacheConfig `yaml:"cache,omitempty"`
	Bench *BenchConfig `yaml:"bench,omitempty"`

	// Session is only ever taken from AOC_SESSION, never from the file.
	Session string `yaml:"-"`
}

// HTTPConfig controls how inputs are downloaded
type HTTPConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	Retries   *int          `yaml:"retries,omitempty"` // Transport-level retries (0 = none, default = 3)
	UserAgent string        `yaml:"user_agent"`
}

// CacheConfig selects where downloaded inputs are kept
type CacheConfig struct {
	Backend        string `yaml:"backend"` // "file" or "redis"
	RedisURL       string `yaml:"redis_url,omitempty"`
	ScopeBySession bool   `yaml:"scope_by_session"`
}

// BenchConfig controls the benchmark harness
type BenchConfig struct {
	Samples     int           `yaml:"samples"`
	Warmup      time.Duration `yaml:"warmup"`
	Measurement time.Duration `yaml:"measurement"`
	Prefetch    int           `yaml:"prefetch"`
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	c := &Config{}
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("config: defaults are invalid: %v", err))
	}
	return c
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.Year == 0 {
		c.Year = defaultYear
	}
	if c.Year < firstYear {
		return fmt.Errorf("year must be %d or later, got %d", firstYear, c.Year)
	}
	if c.InputDir == "" {
		c.InputDir = defaultInputDir
	}

	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %s (must be 'debug', 'info', 'warn', or 'error')", c.LogLevel)
	}

	if c.HTTP == nil {
		c.HTTP = &HTTPConfig{}
	}
	if err := c.HTTP.validate(); err != nil {
		return err
	}

	if c.Cache == nil {
		c.Cache = &CacheConfig{}
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = BackendFile
	}
	switch c.Cache.Backend {
	case BackendFile:
	case BackendRedis:
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("cache.redis_url is required when cache.backend is 'redis'")
		}
	default:
		return fmt.Errorf("invalid cache.backend: %s (must be 'file' or 'redis')", c.Cache.Backend)
	}

	if c.Bench == nil {
		c.Bench = &BenchConfig{}
	}
	return c.Bench.validate()
}

func (h *HTTPConfig) validate() error {
	if h.BaseURL == "" {
		h.BaseURL = defaultBaseURL
	}
	if h.UserAgent == "" {
		h.UserAgent = defaultUserAgent
	}
	if h.Timeout == 0 {
		h.Timeout = defaultHTTPTimeout
	}
	if h.Timeout < 0 {
		return fmt.Errorf("http.timeout must be positive, got %s", h.Timeout)
	}
	if h.Retries == nil {
		retries := defaultHTTPRetries
		h.Retries = &retries
	}
	if *h.Retries < 0 {
		return fmt.Errorf("http.retries must be >= 0 (0 = no retries), got %d", *h.Retries)
	}
	return nil
}

func (b *BenchConfig) validate() error {
	if b.Samples == 0 {
		b.Samples = defaultBenchSamples
	}
	if b.Warmup == 0 {
		b.Warmup = defaultBenchWarmup
	}
	if b.Measurement == 0 {
		b.Measurement = defaultBenchMeasurement
	}
	if b.Prefetch == 0 {
		b.Prefetch = defaultBenchPrefetch
	}
	if b.Samples < 2 {
		return fmt.Errorf("bench.samples must be >= 2, got %d", b.Samples)
	}
	if b.Warmup < 0 || b.Measurement < 0 {
		return fmt.Errorf("bench.warmup and bench.measurement must be positive")
	}
	if b.Prefetch < 1 {
		return fmt.Errorf("bench.prefetch must be >= 1, got %d", b.Prefetch)
	}
	return nil
}

// ApplyEnv overrides fields from AOC_* environment variables. lookup is
// usually os.LookupEnv. Empty values count as unset.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	lookup = nonEmpty(lookup)
	if v, ok := lookup("AOC_SESSION"); ok {
		c.Session = v
	}
	if v, ok := lookup("AOC_SESSION_FILE"); ok {
		c.SessionFile = v
	}
	if v, ok := lookup("AOC_YEAR"); ok {
		year, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid AOC_YEAR %q: %w", v, err)
		}
		c.Year = year
	}
	if v, ok := lookup("AOC_INPUT_DIR"); ok {
		c.InputDir = v
	}
	if v, ok := lookup("AOC_REDIS_URL"); ok {
		if c.Cache == nil {
			c.Cache = &CacheConfig{}
		}
		c.Cache.RedisURL = v
		if c.Cache.Backend == "" {
			c.Cache.Backend = BackendRedis
		}
	}
	if v, ok := lookup("AOC_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return nil
}

func nonEmpty(lookup func(string) (string, bool)) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}
}

// Load reads and validates advent.yml from the specified path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Resolve loads the configuration for a command invocation. A missing file
// is only an error when the path was given explicitly. Environment
// overrides are applied before validation.
func Resolve(path string, explicit bool, lookup func(string) (string, bool)) (*Config, error) {
	var config Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.ApplyEnv(lookup); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}
