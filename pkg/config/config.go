// Package config loads the pagewindow configuration from a YAML file,
// an optional .env file and PAGEWINDOW_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/sgaunet/pagewindow/pkg/window"
)

// Default values applied to settings left empty.
const (
	DefaultListen   = ":8081"
	DefaultLogLevel = "info"
	DefaultPageSize = 50
)

// Environment variables overriding the file settings.
const (
	EnvLogLevel       = "PAGEWINDOW_LOGLEVEL"
	EnvListen         = "PAGEWINDOW_LISTEN"
	EnvPageSize       = "PAGEWINDOW_PAGESIZE"
	EnvWindowSize     = "PAGEWINDOW_WINDOW_SIZE"
	EnvWindowStrategy = "PAGEWINDOW_WINDOW_STRATEGY"
)

// ErrInvalidConfig is returned when the configuration does not pass validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// WindowConfig holds the page window settings.
type WindowConfig struct {
	Size     int    `yaml:"size"     validate:"gte=1,lte=100"`
	Strategy string `yaml:"strategy" validate:"oneof=center section"`
}

// Config is the struct for the configuration
type Config struct {
	LogLevel string       `yaml:"loglevel" validate:"oneof=debug info warn error"`
	Listen   string       `yaml:"listen"   validate:"required"`
	PageSize int          `yaml:"pagesize" validate:"gte=1,lte=10000"`
	Window   WindowConfig `yaml:"window"`
}

// Strategy returns the configured window strategy.
// Call it on a validated Config.
func (c Config) Strategy() window.Strategy {
	return window.Strategy(c.Window.Strategy)
}

// Calculator returns a window calculator using the configured size and strategy.
func (c Config) Calculator() window.Calculator {
	return window.NewCalculator(c.Window.Size, c.Strategy())
}

// ReadYamlCnxFile reads a yaml file and returns a Config struct
func ReadYamlCnxFile(filename string) (Config, error) {
	var config Config

	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		return config, fmt.Errorf("error reading YAML file: %w", err)
	}

	err = yaml.Unmarshal(yamlFile, &config)
	if err != nil {
		return config, fmt.Errorf("error parsing YAML file: %w", err)
	}
	return config, nil
}

// Load builds the configuration: .env file (if present), YAML file (if filename is not empty),
// environment overrides, defaults, then validation.
func Load(filename string) (Config, error) {
	var cfg Config
	var err error

	// A missing .env file is not an error
	if err = godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("error loading .env file: %w", err)
	}

	if filename != "" {
		if cfg, err = ReadYamlCnxFile(filename); err != nil {
			return cfg, err
		}
	}

	if err = cfg.applyEnv(); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()

	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvListen); ok {
		c.Listen = v
	}
	if v, ok := os.LookupEnv(EnvWindowStrategy); ok {
		c.Window.Strategy = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvPageSize, &c.PageSize},
		{EnvWindowSize, &c.Window.Size},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number: %w", ErrInvalidConfig, e.name, err)
		}
		*e.dst = n
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Window.Size == 0 {
		c.Window.Size = window.DefaultSize
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Window.Strategy = strings.ToLower(strings.TrimSpace(c.Window.Strategy))
	if c.Window.Strategy == "" {
		c.Window.Strategy = window.DefaultStrategy.String()
	}
}

// Validate checks every setting against its constraints.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
