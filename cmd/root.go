/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/internal/iofs"
	"github.com/gnames/gnredlist/internal/iologger"
	gnredlist "github.com/gnames/gnredlist/pkg"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = getRootCmd()

// getRootCmd creates the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	res := &cobra.Command{
		Version: fmt.Sprintf(
			"version: %s\nbuild:   %s", gnredlist.Version, gnredlist.Build,
		),
		Use:   "gnredlist",
		Short: "Builds time series of IUCN Red List assessments",
		Long: `gnredlist downloads the assessment history of species from the
IUCN Red List website and merges it into one time-series table.

Species names are read from list.txt in the data directory of the
project:

  <data_dir>/raw_data/<project>/<version>/list.txt

Every species is saved as a separate row, so interrupted downloads
can be continued. The aggregated table is saved as CSV and SQLite,
and can be exported to PostgreSQL.

Configuration is read from ~/.config/gnredlist/config.yaml and
GNREDLIST_* environment variables.`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnredlist version" prefix
	res.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	res.Flags().BoolP("version", "V", false, "version for gnredlist")

	res.PersistentFlags().String("data-dir", "",
		"root directory of downloaded and generated data")
	res.PersistentFlags().String("project", "",
		"project name used in data paths")
	res.PersistentFlags().String("release", "",
		"dataset version used in data paths")

	res.AddCommand(
		getHarvestCmd(),
		getAggregateCmd(),
		getRunCmd(),
		getExportCmd(),
		getConfigCmd(),
	)
	return res
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	err = iologger.Init(config.LogDir(homeDir), defaultLog, false)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})
	cfg.Update(pathFlags(cmd))

	// Reconfigure logging with user's settings, keep the bootstrap records
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"data_dir", cfg.RawDir(),
	)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadConfigError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadConfigError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNREDLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// General configuration
	v.BindEnv("data_dir", "GNREDLIST_DATA_DIR")
	v.BindEnv("project", "GNREDLIST_PROJECT")
	v.BindEnv("version", "GNREDLIST_VERSION")
	v.BindEnv("split_year", "GNREDLIST_SPLIT_YEAR")
	v.BindEnv("jobs_number", "GNREDLIST_JOBS_NUMBER")

	// Red List API
	v.BindEnv("api.base_url", "GNREDLIST_API_BASE_URL")
	v.BindEnv("api.timeout", "GNREDLIST_API_TIMEOUT")
	v.BindEnv("api.delay", "GNREDLIST_API_DELAY")
	v.BindEnv("api.search_size", "GNREDLIST_API_SEARCH_SIZE")
	v.BindEnv("api.user_agent", "GNREDLIST_API_USER_AGENT")
	v.BindEnv("api.csrf_token", "GNREDLIST_API_CSRF_TOKEN")
	v.BindEnv("api.cookie", "GNREDLIST_API_COOKIE")

	v.BindEnv("harvest.reuse_threshold", "GNREDLIST_HARVEST_REUSE_THRESHOLD")
	v.BindEnv("output.sqlite", "GNREDLIST_OUTPUT_SQLITE")

	// Database configuration
	v.BindEnv("database.host", "GNREDLIST_DATABASE_HOST")
	v.BindEnv("database.port", "GNREDLIST_DATABASE_PORT")
	v.BindEnv("database.user", "GNREDLIST_DATABASE_USER")
	v.BindEnv("database.password", "GNREDLIST_DATABASE_PASSWORD")
	v.BindEnv("database.database", "GNREDLIST_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "GNREDLIST_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "GNREDLIST_DATABASE_BATCH_SIZE")

	// Log configuration
	v.BindEnv("log.level", "GNREDLIST_LOG_LEVEL")
	v.BindEnv("log.format", "GNREDLIST_LOG_FORMAT")
	v.BindEnv("log.destination", "GNREDLIST_LOG_DESTINATION")

	v.AutomaticEnv()
}
