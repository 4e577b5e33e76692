package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/skyharvest/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:space_data.db?mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=1,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=1,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	NASA NASAConfig `yaml:"nasa" json:"nasa" jsonschema:"description=Upstream API configuration"`

	Harvest HarvestConfig `yaml:"harvest" json:"harvest" jsonschema:"description=Incremental harvest settings"`
}

// NASAConfig holds upstream API settings
type NASAConfig struct {
	APIKey  string        `yaml:"api_key" json:"api_key" jsonschema:"default=DEMO_KEY,description=API key (can use environment variable)"`
	APODURL string        `yaml:"apod_url" json:"apod_url" jsonschema:"default=https://api.nasa.gov/planetary/apod,description=Picture of the day endpoint"`
	FeedURL string        `yaml:"neo_feed_url" json:"neo_feed_url" jsonschema:"default=https://api.nasa.gov/neo/rest/v1/feed,description=Near-earth-object feed endpoint"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Timeout of a single request"`
}

// HarvestConfig holds settings of the incremental pipelines
type HarvestConfig struct {
	MaxItems   int      `yaml:"max_items" json:"max_items" jsonschema:"default=25,minimum=1,description=Maximum new records per run"`
	Epoch      string   `yaml:"epoch" json:"epoch" jsonschema:"default=2024-01-01,description=Start date used on an empty store (YYYY-MM-DD)"`
	WindowDays int      `yaml:"window_days" json:"window_days" jsonschema:"default=7,minimum=1,maximum=7,description=Days in a near-earth-object feed window"`
	Keywords   []string `yaml:"keywords" json:"keywords" jsonschema:"description=Keywords counted by the analyze command"`
}

// Default returns configuration with all defaults set, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
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

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:space_data.db?mode=rwc&_txlock=immediate&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 1
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 1
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for upstream
	if cfg.NASA.APIKey == "" {
		cfg.NASA.APIKey = "DEMO_KEY"
	}
	if cfg.NASA.APODURL == "" {
		cfg.NASA.APODURL = "https://api.nasa.gov/planetary/apod"
	}
	if cfg.NASA.FeedURL == "" {
		cfg.NASA.FeedURL = "https://api.nasa.gov/neo/rest/v1/feed"
	}
	if cfg.NASA.Timeout == 0 {
		cfg.NASA.Timeout = 30 * time.Second
	}

	// set defaults for harvest
	if cfg.Harvest.MaxItems == 0 {
		cfg.Harvest.MaxItems = 25
	}
	if cfg.Harvest.Epoch == "" {
		cfg.Harvest.Epoch = "2024-01-01"
	}
	if cfg.Harvest.WindowDays == 0 {
		cfg.Harvest.WindowDays = 7
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Harvest.MaxItems < 1 {
		return fmt.Errorf("harvest.max_items must be at least 1")
	}
	if cfg.Harvest.WindowDays < 1 || cfg.Harvest.WindowDays > 7 {
		return fmt.Errorf("harvest.window_days must be between 1 and 7")
	}
	if _, err := domain.ParseDate(cfg.Harvest.Epoch); err != nil {
		return fmt.Errorf("harvest.epoch: %w", err)
	}
	if cfg.NASA.Timeout < time.Second {
		return fmt.Errorf("nasa.timeout must be at least 1 second")
	}
	return nil
}

// EpochDate returns parsed harvest epoch, zero time if it is not a valid date
func (c *Config) EpochDate() time.Time {
	t, err := domain.ParseDate(c.Harvest.Epoch)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ConnMaxLifetime returns database connection lifetime as duration
func (c *Config) ConnMaxLifetime() time.Duration {
	return time.Duration(c.Database.ConnMaxLifetime) * time.Second
}
