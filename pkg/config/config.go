package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"newsmap/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Fetch struct {
		Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Per-feed fetch timeout"`
		UserAgent    string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Newsmap/1.0,description=User agent for feed requests"`
		ItemsPerFeed int           `yaml:"items_per_feed" json:"items_per_feed" jsonschema:"default=10,description=Maximum items taken from each feed"`
	} `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`

	Aggregate struct {
		Limit         int `yaml:"limit" json:"limit" jsonschema:"default=50,description=Maximum records in a response"`
		MaxConcurrent int `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=10,description=Maximum concurrent source fetches"`
	} `yaml:"aggregate" json:"aggregate" jsonschema:"description=Aggregation configuration"`

	Translate TranslateConfig `yaml:"translate" json:"translate" jsonschema:"description=Translation configuration"`

	// Sources and Cities default to the compiled-in tables when empty.
	// City order matters: location detection is first-match-wins.
	Sources []domain.Source `yaml:"sources" json:"sources" jsonschema:"description=News feed sources"`
	Cities  []domain.City   `yaml:"cities" json:"cities" jsonschema:"description=Gazetteer of locations for detection"`
}

// TranslateConfig holds translation settings
type TranslateConfig struct {
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Remote translation call timeout"`
	CacheTTL time.Duration `yaml:"cache_ttl" json:"cache_ttl" jsonschema:"description=Translation cache TTL (0 = never expire)"`
	OpenAI   OpenAIConfig  `yaml:"openai" json:"openai" jsonschema:"description=Optional OpenAI fallback translator"`
}

// OpenAIConfig holds the optional OpenAI fallback translator settings
type OpenAIConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable OpenAI fallback when the primary translator fails"`
	APIKey  string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model   string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=20s,description=Request timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// fetch
	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 15 * time.Second
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "Newsmap/1.0"
	}
	if c.Fetch.ItemsPerFeed == 0 {
		c.Fetch.ItemsPerFeed = 10
	}

	// aggregate
	if c.Aggregate.Limit == 0 {
		c.Aggregate.Limit = 50
	}
	if c.Aggregate.MaxConcurrent == 0 {
		c.Aggregate.MaxConcurrent = 10
	}

	// translate
	if c.Translate.Timeout == 0 {
		c.Translate.Timeout = 15 * time.Second
	}
	if c.Translate.OpenAI.Model == "" {
		c.Translate.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Translate.OpenAI.Timeout == 0 {
		c.Translate.OpenAI.Timeout = 20 * time.Second
	}

	// static tables
	if len(c.Sources) == 0 {
		c.Sources = DefaultSources()
	}
	if len(c.Cities) == 0 {
		c.Cities = DefaultCities()
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}
	if cfg.Fetch.ItemsPerFeed < 1 {
		return fmt.Errorf("fetch items_per_feed must be at least 1")
	}
	if cfg.Aggregate.Limit < 1 {
		return fmt.Errorf("aggregate limit must be at least 1")
	}
	if cfg.Aggregate.MaxConcurrent < 1 {
		return fmt.Errorf("aggregate max_concurrent must be at least 1")
	}

	for i, src := range cfg.Sources {
		if src.Name == "" {
			return fmt.Errorf("source %d: name is required", i)
		}
		if src.URL == "" {
			return fmt.Errorf("source %q: url is required", src.Name)
		}
		switch src.Type {
		case domain.LocalityLocal, domain.LocalityInternational:
		default:
			return fmt.Errorf("source %q: type must be local or international", src.Name)
		}
	}

	for i, city := range cfg.Cities {
		if city.Name == "" {
			return fmt.Errorf("city %d: name is required", i)
		}
	}

	if cfg.Translate.OpenAI.Enabled && cfg.Translate.OpenAI.APIKey == "" {
		return fmt.Errorf("translate.openai.api_key is required when the fallback is enabled")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
