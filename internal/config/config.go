// Package config resolves runtime settings. Later layers override earlier
// ones: defaults, the YAML config file, the environment (including a .env
// file) and finally command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/donghyun81/daily-glow-up-compass/internal/calendar"
	"github.com/donghyun81/daily-glow-up-compass/internal/constants"
	"github.com/donghyun81/daily-glow-up-compass/internal/keyring"
	"github.com/donghyun81/daily-glow-up-compass/internal/models"
)

// StorageKeyring makes the storage location come from the OS keyring.
const StorageKeyring = "keyring"

type Config struct {
	Storage    string                   `yaml:"storage"`
	Timezone   string                   `yaml:"timezone"`
	MaxBytes   int                      `yaml:"max_bytes"`
	Debug      bool                     `yaml:"debug"`
	GoalLabels map[models.GoalID]string `yaml:"goal_labels,omitempty"`
}

// Overrides carries flag values. Zero values leave the lower layers alone.
type Overrides struct {
	Storage  string
	Timezone string
	MaxBytes int
	Debug    bool
}

func Default() Config {
	return Config{
		Storage:  constants.DefaultConfigPath,
		Timezone: constants.DefaultTimezone,
	}
}

// DefaultPath is the config file location under the user's config dir.
func DefaultPath() string {
	return filepath.Join(constants.DefaultConfigDir, constants.DefaultConfigFile)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// LoadFile reads a YAML config file on top of the defaults. A missing file
// is not an error.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	expanded, err := ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", expanded, err)
	}
	return cfg, nil
}

// WriteFile stores cfg as YAML, creating the parent directory.
func WriteFile(path string, cfg Config) error {
	expanded, err := ExpandHome(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(expanded, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadDotEnv loads variables from a .env file into the process
// environment. Variables that are already set win. A missing file is
// ignored.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from GLOWUP_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(constants.EnvPrefix + "STORAGE"); ok && v != "" {
		c.Storage = v
	}
	if v, ok := lookup(constants.EnvPrefix + "TIMEZONE"); ok && v != "" {
		c.Timezone = v
	}
	if v, ok := lookup(constants.EnvPrefix + "MAX_BYTES"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sMAX_BYTES %q: %w", constants.EnvPrefix, v, err)
		}
		c.MaxBytes = n
	}
	if v, ok := lookup(constants.EnvPrefix + "DEBUG"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sDEBUG %q: %w", constants.EnvPrefix, v, err)
		}
		c.Debug = b
	}
	return nil
}

func (c *Config) Apply(o Overrides) {
	if o.Storage != "" {
		c.Storage = o.Storage
	}
	if o.Timezone != "" {
		c.Timezone = o.Timezone
	}
	if o.MaxBytes > 0 {
		c.MaxBytes = o.MaxBytes
	}
	if o.Debug {
		c.Debug = true
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Storage) == "" {
		return errors.New("storage location cannot be empty")
	}
	if !calendar.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("invalid timezone %q", c.Timezone)
	}
	if c.MaxBytes < 0 {
		return fmt.Errorf("max_bytes must not be negative, got %d", c.MaxBytes)
	}
	return nil
}

// Load resolves the full configuration: file, .env, environment, flags.
func Load(path, dotenv string, o Overrides) (Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}
	if dotenv != "" {
		if err := LoadDotEnv(dotenv); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	cfg.Apply(o)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// StorageLocation returns the backend location, reading it from the
// keyring when configured so and expanding "~" for file paths.
func (c Config) StorageLocation() (string, error) {
	if c.Storage == StorageKeyring {
		location, err := keyring.GetStorageLocation()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return "", fmt.Errorf("storage is set to keyring but nothing is stored, run '%s keyring set' first", constants.AppName)
			}
			return "", err
		}
		return location, nil
	}
	return ExpandHome(c.Storage)
}

// ConfigDir is the directory holding logs and the config file.
func ConfigDir() (string, error) {
	return ExpandHome(constants.DefaultConfigDir)
}
