// Package config provides configuration management for gnredlist.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - General: data_dir, project, version, split_year, jobs_number
//   - API: base_url, timeout, delay, search_size, user_agent, csrf_token, cookie
//   - Harvest: reuse_threshold
//   - Output: sqlite
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Force, WithProgress (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNREDLIST_ prefix with underscores for nesting:
//
//	GNREDLIST_DATA_DIR=/data/iucn
//	GNREDLIST_SPLIT_YEAR=2010
//	GNREDLIST_API_DELAY=1000
//	GNREDLIST_LOG_LEVEL=info
package config

import (
	"path/filepath"
)

// Config represents the complete gnredlist configuration.
type Config struct {
	// DataDir is the root of the data tree. Raw rows and the final table
	// are stored under DataDir/raw_data/Project/Version.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// Project groups downloads that belong to one study.
	Project string `mapstructure:"project" yaml:"project"`

	// Version is the dataset version tag, usually the Red List release.
	Version string `mapstructure:"version" yaml:"version"`

	// SplitYear separates "pre" and "post" period summaries. Assessments
	// published before SplitYear go to "pre", the rest go to "post".
	SplitYear int `mapstructure:"split_year" yaml:"split_year"`

	// JobsNumber is the number of concurrent harvesting workers.
	// Each worker keeps its own request throttle.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// API contains settings of the Red List web API.
	API APIConfig `mapstructure:"api" yaml:"api"`

	// Harvest contains settings specific to the harvest command.
	Harvest HarvestConfig `mapstructure:"harvest" yaml:"harvest"`

	// Output determines which artifacts the aggregate command creates.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Database contains PostgreSQL settings used by the export command.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Force makes harvest download all species, ignoring rows that
	// already exist.
	Force bool `mapstructure:"-" yaml:"-"`

	// WithProgress shows a progress bar during harvesting.
	WithProgress bool `mapstructure:"-" yaml:"-"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// APIConfig contains settings for the remote Red List service.
type APIConfig struct {
	// BaseURL is the root URL of the Red List website.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Timeout of a single HTTP request in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`

	// Delay is the minimal spacing between consecutive requests of one
	// worker in milliseconds.
	Delay int `mapstructure:"delay" yaml:"delay"`

	// SearchSize is the number of candidates requested from the search
	// endpoint.
	SearchSize int `mapstructure:"search_size" yaml:"search_size"`

	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`

	// CSRFToken is sent as X-Csrf-Token header if not empty.
	CSRFToken string `mapstructure:"csrf_token" yaml:"csrf_token"`

	// Cookie is sent as Cookie header if not empty.
	Cookie string `mapstructure:"cookie" yaml:"cookie"`
}

// HarvestConfig contains settings of the harvest command.
type HarvestConfig struct {
	// ReuseThreshold is the share of the species list (0, 1] that must
	// already be on disk for harvesting to be skipped.
	ReuseThreshold float64 `mapstructure:"reuse_threshold" yaml:"reuse_threshold"`
}

// OutputConfig contains settings of aggregated output.
type OutputConfig struct {
	// SQLite enables writing the final table into an SQLite file next to
	// the CSV file.
	SQLite bool `mapstructure:"sqlite" yaml:"sqlite"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of values inserted per batch during export.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		DataDir:    "data",
		Project:    "bio_threat",
		Version:    "v.6.2025",
		SplitYear:  2010,
		JobsNumber: 2,
		API: APIConfig{
			BaseURL:    "https://www.iucnredlist.org",
			Timeout:    10,
			Delay:      1000,
			SearchSize: 10,
			UserAgent:  DefaultUserAgent,
		},
		Harvest: HarvestConfig{
			ReuseThreshold: 0.8,
		},
		Output: OutputConfig{
			SQLite: true,
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "redlist",
			SSLMode:   "disable",
			BatchSize: 10_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

// RawDir returns the directory that holds the species list and all
// outputs of the configured project and version.
func (c *Config) RawDir() string {
	return filepath.Join(c.DataDir, "raw_data", c.Project, c.Version)
}

// ListPath returns the path to the newline-delimited species list.
func (c *Config) ListPath() string {
	return filepath.Join(c.RawDir(), ListFile)
}

// RowsDir returns the directory with per-species rows.
func (c *Config) RowsDir() string {
	return filepath.Join(c.RawDir(), RowsDirName)
}

// TablePath returns the path of the final CSV table.
func (c *Config) TablePath() string {
	return filepath.Join(c.RawDir(), TableName+".csv")
}

// SQLitePath returns the path of the final SQLite table.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.RawDir(), TableName+".sqlite")
}
