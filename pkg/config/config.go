// Package config provides configuration management for pokedb.
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
// - Default config (from New()) is always valid
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
// - The config is loaded once at startup and is not re-read during a run
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: url, host, port, user, password, database, ssl_mode
//   - API: base_url, timeout_sec
//   - Ingest: total, reseed_types, metrics_file
//   - Report: output_dir, bins, top_k, format
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Ingest.FirstID, Ingest.LastID (per-command id range)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use POKEDB_ prefix with underscores for nesting:
//
//	POKEDB_DATABASE_HOST=localhost
//	POKEDB_API_BASE_URL=https://pokeapi.co/api/v2/pokemon/
//	POKEDB_INGEST_TOTAL=251
//	POKEDB_LOG_LEVEL=info
//
// DATABASE_URL and POKEMON_API_BASE_URL are honored as well.
package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Config represents the complete pokedb configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// API contains settings of the remote catalog.
	API APIConfig `mapstructure:"api" yaml:"api"`

	// Ingest contains settings specific to the populate command.
	Ingest IngestConfig `mapstructure:"ingest" yaml:"ingest"`

	// Report contains settings of the analyze command.
	Report ReportConfig `mapstructure:"report" yaml:"report"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, logs and report directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// URL is a complete connection string. When it is set, it takes
	// precedence over the individual fields below.
	URL string `mapstructure:"url" yaml:"url"`

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
}

// APIConfig describes the remote paginated catalog.
type APIConfig struct {
	// BaseURL is the URL prefix of a single catalog entry. The numeric id
	// of the entry is appended to it.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// TimeoutSec limits the duration of one fetch.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// IngestConfig contains settings for walking the catalog.
type IngestConfig struct {
	// Total is the size of the catalog. Ids from 1 to Total are ingested.
	Total int `mapstructure:"total" yaml:"total"`

	// ReseedTypes truncates and refills the types table with the fixed
	// vocabulary before ingestion.
	ReseedTypes bool `mapstructure:"reseed_types" yaml:"reseed_types"`

	// MetricsFile is a path of a Prometheus textfile where the run summary
	// is written. Empty value disables the output.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`

	// FirstID is the first id of the run. Runtime-only, default is 1.
	FirstID int `mapstructure:"-" yaml:"-"`

	// LastID is the last id of the run. Runtime-only, default is Total.
	LastID int `mapstructure:"-" yaml:"-"`
}

// ReportConfig contains settings of the statistics report and charts.
type ReportConfig struct {
	// OutputDir is where charts and the statistics report are saved.
	// Empty value means the current working directory.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// Bins is the number of histogram bins.
	Bins int `mapstructure:"bins" yaml:"bins"`

	// TopK limits the type combination ranking.
	TopK int `mapstructure:"top_k" yaml:"top_k"`

	// Format of the statistics report: 'json' or 'yaml'.
	Format string `mapstructure:"format" yaml:"format"`
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
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "pokedb",
			SSLMode:  "disable",
		},
		API: APIConfig{
			BaseURL:    DefaultBaseURL,
			TimeoutSec: 30,
		},
		Ingest: IngestConfig{
			Total: DefaultTotal,
		},
		Report: ReportConfig{
			Bins:   20,
			TopK:   20,
			Format: "json",
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

// IsDefault is true when no connection string was given and all
// connection fields keep their built-in values.
func (d DatabaseConfig) IsDefault() bool {
	return d.URL == "" && d == New().Database
}

// DSN returns the connection string for the database.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	if d.Host == "" || d.User == "" || d.Database == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Database,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

// IDRange returns the first and last ids of the ingestion run.
func (c *Config) IDRange() (int, int) {
	first, last := c.Ingest.FirstID, c.Ingest.LastID
	if first <= 0 {
		first = 1
	}
	if last <= 0 {
		last = c.Ingest.Total
	}
	return first, last
}

// Validate checks that the settings required for a run are present.
// It is called once at startup, a failure is fatal.
func (c *Config) Validate() error {
	if c.Database.DSN() == "" {
		return ConfigInvalidError("database",
			"connection string, or host, user and database must be set")
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		return ConfigInvalidError("api.base_url",
			"must be an absolute http(s) URL, got '"+c.API.BaseURL+"'")
	}

	if c.Ingest.Total < 1 {
		return ConfigInvalidError("ingest.total",
			"catalog size has to be a positive number")
	}

	first, last := c.IDRange()
	if first > last {
		return ConfigInvalidError("ingest",
			fmt.Sprintf("first id %d is larger than last id %d", first, last))
	}

	switch strings.ToLower(c.Report.Format) {
	case "json", "yaml":
	default:
		return ConfigInvalidError("report.format",
			"must be 'json' or 'yaml'")
	}
	return nil
}
