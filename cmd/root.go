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
	"github.com/gnames/pokedb/internal/iofs"
	"github.com/gnames/pokedb/internal/iologger"
	app "github.com/gnames/pokedb/pkg"
	"github.com/gnames/pokedb/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "pokedb",
		Short:   "Builds a PostgreSQL database of pokemon and analyzes it",
		Long: `pokedb ingests the pokemon catalog from a public API into a
PostgreSQL database and computes statistics of the stored data.

Workflow:
  1. pokedb create     - create the database schema
  2. pokedb populate   - fetch catalog entries and store them
  3. pokedb analyze    - build a dataset, save statistics and charts

The fixed list of types can be restored with 'pokedb reseed'.

Configuration: ~/.config/pokedb/config.yaml
Logs: ~/.local/share/pokedb/logs/pokedb.log`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "pokedb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for pokedb")

	rootCmd.AddCommand(
		getCreateCmd(),
		getReseedCmd(),
		getPopulateCmd(),
		getAnalyzeCmd(),
	)
	return rootCmd
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
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

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

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = cfg.Validate(); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if cfg.Database.IsDefault() {
		slog.Warn("Database settings are not configured, using defaults",
			"host", cfg.Database.Host,
			"database", cfg.Database.Database,
		)
		gn.Warn(
			"Database is not configured, using <em>%s</em> on %s",
			cfg.Database.Database, cfg.Database.Host,
		)
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
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
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We bind them manually so we can see clearly which env variables are
	// allowed. They match the fields included in config.ToOptions().
	v.SetEnvPrefix("POKEDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	_ = v.BindEnv("database.url", "POKEDB_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("database.host", "POKEDB_DATABASE_HOST")
	_ = v.BindEnv("database.port", "POKEDB_DATABASE_PORT")
	_ = v.BindEnv("database.user", "POKEDB_DATABASE_USER")
	_ = v.BindEnv("database.password", "POKEDB_DATABASE_PASSWORD")
	_ = v.BindEnv("database.database", "POKEDB_DATABASE_DATABASE")
	_ = v.BindEnv("database.ssl_mode", "POKEDB_DATABASE_SSL_MODE")

	// Catalog API
	_ = v.BindEnv("api.base_url", "POKEDB_API_BASE_URL", "POKEMON_API_BASE_URL")
	_ = v.BindEnv("api.timeout_sec", "POKEDB_API_TIMEOUT_SEC")

	// Ingestion
	_ = v.BindEnv("ingest.total", "POKEDB_INGEST_TOTAL", "TOTAL_POKEMON")
	_ = v.BindEnv("ingest.reseed_types", "POKEDB_INGEST_RESEED_TYPES")
	_ = v.BindEnv("ingest.metrics_file", "POKEDB_INGEST_METRICS_FILE")

	// Report
	_ = v.BindEnv("report.output_dir", "POKEDB_REPORT_OUTPUT_DIR")
	_ = v.BindEnv("report.bins", "POKEDB_REPORT_BINS")
	_ = v.BindEnv("report.top_k", "POKEDB_REPORT_TOP_K")
	_ = v.BindEnv("report.format", "POKEDB_REPORT_FORMAT")

	// Log configuration
	_ = v.BindEnv("log.level", "POKEDB_LOG_LEVEL")
	_ = v.BindEnv("log.format", "POKEDB_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "POKEDB_LOG_DESTINATION")

	v.AutomaticEnv()
}
