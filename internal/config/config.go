package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"folio.dev/internal/catalog"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	DataFile        string        `env:"DATA_FILE" envDefault:"data/projects.json"`
	DataURL         string        `env:"DATA_URL"` // remote projects.json, wins over DATA_FILE
	ContentDir      string        `env:"CONTENT_DIR" envDefault:"content"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"static"`
	AssetsDir       string        `env:"ASSETS_DIR" envDefault:"assets"`
	BasePath        string        `env:"BASE_PATH" envDefault:"/"`
	Fallback        string        `env:"FALLBACK" envDefault:"builtin"` // builtin | error
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	Watch           bool          `env:"WATCH" envDefault:"true"`
	Debounce        time.Duration `env:"DEBOUNCE" envDefault:"150ms"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT" envDefault:"5s"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given variables instead of the
// process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if _, err := catalog.ParsePolicy(cfg.Fallback); err != nil {
		return nil, fmt.Errorf("load config: FALLBACK: %w", err)
	}
	if cfg.Debounce <= 0 {
		return nil, fmt.Errorf("load config: DEBOUNCE must be positive, got %s", cfg.Debounce)
	}
	return &cfg, nil
}

// Policy returns the validated fallback policy
func (c *Config) Policy() catalog.Policy {
	p, _ := catalog.ParsePolicy(c.Fallback)
	return p
}

// Source builds the project source: the remote URL when set, else the file
func (c *Config) Source() catalog.Source {
	if c.DataURL != "" {
		return catalog.HTTPSource{URL: c.DataURL}
	}
	return catalog.FileSource{Path: c.DataFile}
}
