// Package iofs prepares directories and files gnredlist needs on disk.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/gnredlist/pkg/config"
)

// ConfigYAML is the default configuration written to a fresh config
// directory.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config and log directories under homeDir.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	return touchDirs(dirs)
}

// EnsureDataDirs creates the project directory and the directory of
// per-species rows.
func EnsureDataDirs(cfg *config.Config) error {
	return touchDirs([]string{cfg.RawDir(), cfg.RowsDir()})
}

func touchDirs(dirs []string) error {
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless it already
// exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}
