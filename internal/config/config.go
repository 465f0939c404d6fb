package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeBatch = "batch"
	ModeStdio = "stdio"

	// Output format constants
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	// Default values
	DefaultCatalogDirectory = "data"
	DefaultOutputPath       = "artnet_results.csv"
	DefaultLogLevel         = "info"
	DefaultMaxFileSize      = 100 * 1024 * 1024 // 100MB
)

// Config holds all configuration for the catalog extractor
type Config struct {
	// Mode selects between one-shot batch extraction and the MCP stdio server
	Mode string

	// Catalog input configuration
	CatalogDirectory string
	MaxFileSize      int64 // Maximum catalog file size in bytes

	// Output configuration
	OutputPath   string
	OutputFormat string // "csv" or "xlsx"

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Mode:             ModeBatch,
		CatalogDirectory: DefaultCatalogDirectory,
		MaxFileSize:      DefaultMaxFileSize,
		OutputPath:       DefaultOutputPath,
		OutputFormat:     FormatCSV,
		Version:          "1.0.0",
		ServerName:       "art-valuation",
		LogLevel:         DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand the catalog directory if needed
	if cfg.CatalogDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.CatalogDirectory); err == nil {
			cfg.CatalogDirectory = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("ART_VALUATION")
	viper.AutomaticEnv()

	// Define flags with Viper
	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("dir", cfg.CatalogDirectory)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("format", cfg.OutputFormat)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Run mode: 'batch' for one-shot extraction, 'stdio' for MCP standard I/O")
	pflag.String("dir", cfg.CatalogDirectory, "Directory containing auction catalog PDF files")
	pflag.String("output", cfg.OutputPath, "Output table path (batch mode only)")
	pflag.String("format", cfg.OutputFormat, "Output table format: 'csv' or 'xlsx'")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum catalog file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("format", pflag.Lookup("format"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nart-valuation - Extracts artwork records from auction catalog PDFs into a table\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                     # batch mode over ./data (default)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/catalogs             # batch mode with custom directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --output=sales.xlsx --format=xlsx   # write an XLSX workbook instead\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=stdio                        # serve extraction tools over MCP\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  ART_VALUATION_MODE         Run mode\n")
		fmt.Fprintf(os.Stderr, "  ART_VALUATION_DIR          Catalog directory\n")
		fmt.Fprintf(os.Stderr, "  ART_VALUATION_OUTPUT       Output table path\n")
		fmt.Fprintf(os.Stderr, "  ART_VALUATION_FORMAT       Output table format\n")
		fmt.Fprintf(os.Stderr, "  ART_VALUATION_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  ART_VALUATION_MAXFILESIZE  Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.CatalogDirectory = viper.GetString("dir")
	cfg.OutputPath = viper.GetString("output")
	cfg.OutputFormat = viper.GetString("format")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate mode
	if c.Mode != ModeBatch && c.Mode != ModeStdio {
		return errors.New("mode must be either 'batch' or 'stdio'")
	}

	// Validate catalog directory
	if c.CatalogDirectory == "" {
		return errors.New("catalog directory cannot be empty")
	}

	// Validate output configuration (batch mode only)
	if c.IsBatchMode() {
		if c.OutputPath == "" {
			return errors.New("output path cannot be empty")
		}
		if c.OutputFormat != FormatCSV && c.OutputFormat != FormatXLSX {
			return fmt.Errorf("invalid output format: %s (must be 'csv' or 'xlsx')", c.OutputFormat)
		}
	}

	// Validate max file size
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsBatchMode returns true if the extractor runs once and exits
func (c *Config) IsBatchMode() bool {
	return c.Mode == ModeBatch
}

// IsStdioMode returns true if the extractor serves MCP over standard I/O
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, CatalogDirectory: %s, OutputPath: %s, OutputFormat: %s, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.CatalogDirectory, c.OutputPath, c.OutputFormat, c.LogLevel, c.MaxFileSize)
}
