package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type ServerConfig struct {
	Port         string
	ServiceName  string
	MetricsAddr  string
	PprofAddr    string
	OTLPEndpoint string
	PageCacheTTL time.Duration
}

// E2EConfig drives the browser assertion runner.
type E2EConfig struct {
	BaseURL           string
	Driver            string
	Headless          bool
	AssertTimeout     time.Duration
	NavigationTimeout time.Duration
	Parallelism       int
	SuitePath         string
	Filter            string
}

type Config struct {
	Server   ServerConfig
	E2E      E2EConfig
	LogLevel string
}

var drivers = []string{"playwright", "chromedp", "document"}

func Load() (*Config, error) {
	cacheTTL, err := getEnvDuration("PAGE_CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}
	assertTimeout, err := getEnvDuration("E2E_ASSERT_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	navTimeout, err := getEnvDuration("E2E_NAVIGATION_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	parallelism, err := getEnvInt("E2E_PARALLELISM", 4)
	if err != nil {
		return nil, err
	}
	headless, err := getEnvBool("E2E_HEADLESS", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8091"),
			ServiceName:  getEnvOrDefault("SERVICE_NAME", "nextapp"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			PprofAddr:    os.Getenv("PPROF_ADDR"),
			OTLPEndpoint: os.Getenv("OTLP_ENDPOINT"),
			PageCacheTTL: cacheTTL,
		},
		E2E: E2EConfig{
			BaseURL:           strings.TrimRight(getEnvOrDefault("E2E_BASE_URL", "http://localhost:8091"), "/"),
			Driver:            getEnvOrDefault("E2E_DRIVER", "playwright"),
			Headless:          headless,
			AssertTimeout:     assertTimeout,
			NavigationTimeout: navTimeout,
			Parallelism:       parallelism,
			SuitePath:         os.Getenv("E2E_SUITE"),
			Filter:            os.Getenv("E2E_FILTER"),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.E2E.Parallelism < 1 {
		return errors.Errorf("E2E_PARALLELISM must be at least 1, got %d", c.E2E.Parallelism)
	}
	known := false
	for _, d := range drivers {
		if c.E2E.Driver == d {
			known = true
			break
		}
	}
	if !known {
		return errors.Errorf("E2E_DRIVER must be one of %s, got %q", strings.Join(drivers, ", "), c.E2E.Driver)
	}
	if c.E2E.AssertTimeout <= 0 || c.E2E.NavigationTimeout <= 0 {
		return errors.New("E2E timeouts must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return d, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Wrapf(err, "invalid %s", key)
	}
	return b, nil
}
