package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnredlist"

	// DefaultUserAgent imitates a desktop browser, the Red List website
	// rejects requests without one.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// ListFile is the name of the species list inside RawDir.
	ListFile = "list.txt"

	// RowsDirName is the directory inside RawDir that keeps one CSV file
	// per species.
	RowsDirName = "red_list_assessment_details"

	// TableName is the base name of the final time-series table.
	TableName = "iucn_species_assessment_details_time_series"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnredlist by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnredlist/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnredlist/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
