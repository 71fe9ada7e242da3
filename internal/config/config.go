package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the unified application configuration
type Config struct {
	Board     string `toml:"board"`      // Board document to open
	AssumeYes bool   `toml:"assume_yes"` // Skip delete confirmations
	LogDir    string `toml:"log_dir"`    // Empty logs to stderr
	LogLevel  string `toml:"log_level"`
}

// CLIFlags holds parsed CLI flags. Nil pointers mean "not given".
type CLIFlags struct {
	Board     string
	AssumeYes *bool
	LogLevel  string
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Board:    "board.md",
		LogLevel: "warn",
	}
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		path = ""
	}
	return LoadFrom(path, flags)
}

// LoadFrom is Load with an explicit config file path ("" skips the file)
func LoadFrom(path string, flags CLIFlags) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	// Priority 2: Environment variables override config file
	if envBoard := strings.TrimSpace(os.Getenv("MDBOARD_BOARD")); envBoard != "" {
		cfg.Board = envBoard
	}
	if envLevel := strings.TrimSpace(os.Getenv("MDBOARD_LOG_LEVEL")); envLevel != "" {
		cfg.LogLevel = envLevel
	}
	if envYes := strings.TrimSpace(os.Getenv("MDBOARD_ASSUME_YES")); envYes != "" {
		yes, err := strconv.ParseBool(envYes)
		if err != nil {
			return nil, fmt.Errorf("parse MDBOARD_ASSUME_YES: %w", err)
		}
		cfg.AssumeYes = yes
	}

	// Priority 1: CLI flags override everything
	if flags.Board != "" {
		cfg.Board = flags.Board
	}
	if flags.AssumeYes != nil {
		cfg.AssumeYes = *flags.AssumeYes
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}

	cfg.Board = expandPath(cfg.Board)
	cfg.LogDir = expandPath(cfg.LogDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded values
func (c Config) Validate() error {
	if strings.TrimSpace(c.Board) == "" {
		return errors.New("board path is required")
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid log_level: %q", c.LogLevel)
	}
	return nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	if envPath := strings.TrimSpace(os.Getenv("MDBOARD_CONFIG")); envPath != "" {
		return expandPath(envPath), nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "mdboard", "config.toml"), nil
}

// loadConfigFile decodes the TOML file over cfg. A missing or empty file is not an error.
func loadConfigFile(path string, cfg *Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return nil
	}

	if err := toml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("decode toml: %w", err)
	}
	return nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return writeDefaults(configPath)
}

func writeDefaults(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
