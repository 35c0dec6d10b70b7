package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	dirName  = ".counterdash"
	fileName = "config.yaml"

	// MaxLoginDelay bounds the simulated sign-in latency
	MaxLoginDelay = time.Minute
)

// Config represents the user's configuration
type Config struct {
	LoginDelay time.Duration `yaml:"login_delay"` // Simulated sign-in latency
	LogLevel   string        `yaml:"log_level"`   // debug, info, warn or error
	LogFile    string        `yaml:"log_file"`    // Where structured logs are written
	Debug      bool          `yaml:"debug"`       // Show the activity panel
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LoginDelay: time.Second,
		LogLevel:   "info",
		LogFile:    defaultLogFile(),
	}
}

func defaultLogFile() string {
	dir, err := globalConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "counterdash.log")
	}
	return filepath.Join(dir, "counterdash.log")
}

// globalConfigDir returns the global config directory path (~/.counterdash)
func globalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dirName), nil
}

// globalConfigPath returns the global config file path (~/.counterdash/config.yaml)
func globalConfigPath() (string, error) {
	dir, err := globalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// projectConfigPath returns the project-level config path (.counterdash/config.yaml in cwd)
func projectConfigPath() string {
	return filepath.Join(dirName, fileName)
}

// Load reads the config from disk, checking project config first, then global.
// Environment variables override file values. A missing file is not an error.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if there is none
func findConfigFile() (string, error) {
	if _, err := os.Stat(projectConfigPath()); err == nil {
		return projectConfigPath(), nil
	}

	globalPath, err := globalConfigPath()
	if err != nil {
		// No home directory: defaults only
		return "", nil
	}
	if _, err := os.Stat(globalPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat config %s: %w", globalPath, err)
	}
	return globalPath, nil
}

func (c *Config) applyEnv() {
	c.LoginDelay = envDuration("COUNTERDASH_LOGIN_DELAY", c.LoginDelay)
	c.LogLevel = envStr("COUNTERDASH_LOG_LEVEL", c.LogLevel)
	c.LogFile = envStr("COUNTERDASH_LOG_FILE", c.LogFile)
	c.Debug = envBool("COUNTERDASH_DEBUG", c.Debug)
}

func (c *Config) validate() error {
	if c.LoginDelay < 0 || c.LoginDelay > MaxLoginDelay {
		return fmt.Errorf("login_delay must be between 0 and %s, got %s", MaxLoginDelay, c.LoginDelay)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file must not be empty")
	}
	return nil
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", s)
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
