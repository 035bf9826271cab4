package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	HTTP            HTTPConfig    `yaml:"http"`
	GRPC            GRPCConfig    `yaml:"grpc"`
	Square          SquareConfig  `yaml:"square"`
	Logging         LoggingConfig `yaml:"logging"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type GRPCConfig struct {
	Addr string `yaml:"addr"`
}

type SquareConfig struct {
	Delay time.Duration `yaml:"delay"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

func Default() Config {
	return Config{
		HTTP:            HTTPConfig{Addr: ":8080"},
		GRPC:            GRPCConfig{Addr: ":50051"},
		Square:          SquareConfig{Delay: time.Second},
		Logging:         LoggingConfig{Level: "info", Format: "json"},
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load reads path on top of the defaults, applies KATA_* environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("KATA_HTTP_ADDR"); v != "" {
		c.HTTP.Addr = v
	}
	if v := os.Getenv("KATA_GRPC_ADDR"); v != "" {
		c.GRPC.Addr = v
	}
	if v := os.Getenv("KATA_SQUARE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: KATA_SQUARE_DELAY: %v", ErrInvalidConfig, err)
		}
		c.Square.Delay = d
	}
	if v := os.Getenv("KATA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("KATA_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return fmt.Errorf("%w: http.addr is required", ErrInvalidConfig)
	}
	if c.GRPC.Addr == "" {
		return fmt.Errorf("%w: grpc.addr is required", ErrInvalidConfig)
	}
	if c.Square.Delay <= 0 {
		return fmt.Errorf("%w: square.delay must be positive", ErrInvalidConfig)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown_timeout must be positive", ErrInvalidConfig)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}
