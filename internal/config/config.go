package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Environment variables read after the config file
const (
	EnvHeight   = "HANOI_HEIGHT"
	EnvRules    = "HANOI_RULES"
	EnvTheme    = "HANOI_THEME"
	EnvLogLevel = "HANOI_LOG_LEVEL"
)

// Config holds the application configuration
type Config struct {
	Height   int    `yaml:"height" json:"height" validate:"min=1,max=20"`
	Rules    string `yaml:"rules" json:"rules" validate:"oneof=classic strict"`
	Theme    string `yaml:"theme" json:"theme" validate:"oneof=off blue green gray"`
	LogLevel string `yaml:"log_level" json:"log_level" validate:"oneof=trace debug info warn error disabled"`
	Plain    bool   `yaml:"plain" json:"plain"`
}

var validate = validator.New()

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Height:   3,
		Rules:    "classic",
		Theme:    "off",
		LogLevel: "warn",
	}
}

// configPath returns the path to the config file
func configPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "hanoi", "config.yaml")
}

// ConfigPath returns the path where the default config file should be located
func ConfigPath() string {
	return configPath()
}

// Load reads the configuration from path, or from the default location when path is empty.
// A missing default file falls back to defaults; a missing explicit file is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = configPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(data), cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// LoadEnv loads a dotenv file into the process environment.
// With an empty path an optional ./.env is read and its absence ignored.
func LoadEnv(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from HANOI_* variables found through lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvHeight); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s: %q", EnvHeight, v)
		}
		c.Height = n
	}
	if v, ok := lookup(EnvRules); ok && v != "" {
		c.Rules = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvTheme); ok && v != "" {
		c.Theme = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}

// Validate checks field ranges and enumerations
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var details strings.Builder
	for _, fe := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "min", "max":
			details.WriteString(fmt.Sprintf("%s must be between 1 and 20, got %v", strings.ToLower(fe.Field()), fe.Value()))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s], got %q", strings.ToLower(fe.Field()), fe.Param(), fe.Value()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", details.String())
}
