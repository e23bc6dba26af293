package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ning0612/fileporter/internal/domain"
	"github.com/Ning0612/fileporter/internal/logger"
)

// Config represents the complete configuration for fileporter
type Config struct {
	// Log configures the diagnostic logger
	Log LogConfig `mapstructure:"log"`

	// History configures the operation journal
	History HistoryConfig `mapstructure:"history"`

	// Backup configures the backup operation
	Backup BackupConfig `mapstructure:"backup"`
}

// LogConfig holds diagnostic logger settings
type LogConfig struct {
	Level  string        `mapstructure:"level"`
	Format string        `mapstructure:"format"`
	File   LogFileConfig `mapstructure:"file"`
}

// LogFileConfig holds rotating file output settings
type LogFileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// HistoryConfig holds operation journal settings
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DataDir string `mapstructure:"data_dir"`
}

// BackupConfig holds backup operation settings
type BackupConfig struct {
	Suffix string `mapstructure:"suffix"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills empty fields with built-in values
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.File.Path == "" {
		c.Log.File.Path = filepath.Join(defaultDataDir(), "fileporter.log")
	}
	if c.Log.File.MaxSizeMB == 0 {
		c.Log.File.MaxSizeMB = 10
	}
	if c.Log.File.MaxAgeDays == 0 {
		c.Log.File.MaxAgeDays = 30
	}
	if c.Log.File.MaxBackups == 0 {
		c.Log.File.MaxBackups = 5
	}
	if c.History.DataDir == "" {
		c.History.DataDir = defaultDataDir()
	}
	if c.Backup.Suffix == "" {
		c.Backup.Suffix = ".bak"
	}
}

// defaultDataDir returns the default location for logs and the journal
func defaultDataDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".fileporter")
	}
	return ".fileporter"
}

// Validate checks if the configuration is complete and consistent
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level: %s", domain.ErrConfigInvalid, c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format: %s", domain.ErrConfigInvalid, c.Log.Format)
	}

	if c.Log.File.Enabled && c.Log.File.Path == "" {
		return fmt.Errorf("%w: log file enabled but path is empty", domain.ErrConfigInvalid)
	}

	if c.History.Enabled && c.History.DataDir == "" {
		return fmt.Errorf("%w: history enabled but data_dir is empty", domain.ErrConfigInvalid)
	}

	if !strings.HasPrefix(c.Backup.Suffix, ".") {
		return fmt.Errorf("%w: backup suffix must begin with a dot: %s", domain.ErrConfigInvalid, c.Backup.Suffix)
	}

	return nil
}

// LoggerConfig converts the log section into a logger configuration
func (c *Config) LoggerConfig() logger.Config {
	outputs := []logger.OutputConfig{
		{Type: logger.OutputStderr},
	}
	if c.Log.File.Enabled {
		outputs = append(outputs, logger.OutputConfig{Type: logger.OutputFile})
	}

	return logger.Config{
		Level:   logger.ParseLevel(c.Log.Level),
		Format:  logger.ParseFormat(c.Log.Format),
		Outputs: outputs,
		File: logger.FileConfig{
			Enabled:    c.Log.File.Enabled,
			Path:       c.Log.File.Path,
			MaxSizeMB:  c.Log.File.MaxSizeMB,
			MaxAgeDays: c.Log.File.MaxAgeDays,
			MaxBackups: c.Log.File.MaxBackups,
			Compress:   c.Log.File.Compress,
		},
	}
}
