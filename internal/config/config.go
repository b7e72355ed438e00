// =============================================================================
// Travel Ticket Report Generator - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. Settings come from three layers, later layers winning:
//
//   1. Built-in defaults
//   2. The YAML configuration file (config.yaml)
//   3. Environment variables prefixed TICKET_REPORT_
//
// The environment layer exists so operators can redirect directories or
// raise the log level on a scheduled run without editing the file.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/gmtravel/ticket-report-generator/internal/render"
)

// EnvPrefix is the prefix of environment variable overrides, e.g.
// TICKET_REPORT_OUTPUT_DIR.
const EnvPrefix = "TICKET_REPORT"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is the directory scanned for ledger exports when the file
	// paths are not given explicitly.
	// Default: "./input"
	InputDir string `yaml:"input_dir" envconfig:"INPUT_DIR"`

	// OutputDir is the directory where generated reports are written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`

	// ArchiveDir is the directory where ledger exports are moved after a
	// successful run. Files are only moved on success.
	// Default: "./input_archive"
	ArchiveDir string `yaml:"archive_dir" envconfig:"ARCHIVE_DIR"`

	// =========================================================================
	// INPUT DISCOVERY
	// =========================================================================

	// ClientPattern is the glob used to find the client ledger inside
	// InputDir. The agency export names client files with "CLIENTE" in
	// the name.
	// Default: "*CLIENTE*.xls*"
	ClientPattern string `yaml:"client_pattern" envconfig:"CLIENT_PATTERN"`

	// SupplierPattern is the glob used to find the supplier ledger.
	// Default: "*FORNECEDOR*.xls*"
	SupplierPattern string `yaml:"supplier_pattern" envconfig:"SUPPLIER_PATTERN"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputNameFormat defines the generated report file name.
	// Placeholders:
	//   {timestamp} - run start time (YYYYMMDD_HHMMSS)
	//   {uuid}      - a random UUID
	// Default: "relatorio_{timestamp}_{uuid}.xlsx"
	OutputNameFormat string `yaml:"output_name_format" envconfig:"OUTPUT_NAME_FORMAT"`

	// =========================================================================
	// ARCHIVAL SETTINGS
	// =========================================================================

	// ArchiveRetentionDays prunes archived ledgers older than this many
	// days after each successful run. Zero keeps archives forever.
	// Default: 0
	ArchiveRetentionDays int `yaml:"archive_retention_days" envconfig:"ARCHIVE_RETENTION_DAYS"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`

	// =========================================================================
	// STYLING SETTINGS
	// =========================================================================

	// Styling overrides the report's visual constants. Every field is
	// optional; unset fields keep the template defaults.
	Styling StylingConfig `yaml:"styling"`
}

// StylingConfig mirrors render.StyleConfig in the configuration file.
type StylingConfig struct {
	// HeaderFill is the RGB fill of header rows. Default: "EC7233"
	HeaderFill string `yaml:"header_fill" envconfig:"HEADER_FILL"`

	// TotalFill is the RGB fill of total rows. Default: "D0CECE"
	TotalFill string `yaml:"total_fill" envconfig:"TOTAL_FILL"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration file, applies defaults and environment
// overrides, and ensures the working directories exist.
//
// PARAMETERS:
//   - path: the YAML configuration file; a missing file is not an error,
//     the defaults simply apply
//
// RETURNS:
//   - the effective configuration
//   - an error if the file is malformed or a directory cannot be created
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
		}
	case os.IsNotExist(err):
		// No file, run on defaults.
	default:
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	applyDefaults(&cfg)

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := ensureDirectories(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./input_archive"
	}
	if cfg.ClientPattern == "" {
		cfg.ClientPattern = "*CLIENTE*.xls*"
	}
	if cfg.SupplierPattern == "" {
		cfg.SupplierPattern = "*FORNECEDOR*.xls*"
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = "relatorio_{timestamp}_{uuid}.xlsx"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	defaults := render.DefaultStyleConfig()
	if cfg.Styling.HeaderFill == "" {
		cfg.Styling.HeaderFill = defaults.HeaderFill
	}
	if cfg.Styling.TotalFill == "" {
		cfg.Styling.TotalFill = defaults.TotalFill
	}
}

// ensureDirectories creates the working directories when missing.
func ensureDirectories(cfg *Config) error {
	for _, dir := range []string{cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// StyleConfig translates the styling section into the renderer's form.
func (c *Config) StyleConfig() render.StyleConfig {
	styles := render.DefaultStyleConfig()
	styles.HeaderFill = c.Styling.HeaderFill
	styles.TotalFill = c.Styling.TotalFill
	return styles
}
