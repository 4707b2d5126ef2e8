package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseURL sets a complete PostgreSQL connection string.
// It takes precedence over host, port, user, password and database.
func OptDatabaseURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database URL", s) {
			c.Database.URL = s
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptAPIBaseURL sets the URL prefix of catalog entries.
func OptAPIBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("API Base URL", s) {
			c.API.BaseURL = s
		}
	}
}

// OptAPITimeoutSec sets the timeout of one fetch in seconds.
func OptAPITimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("API Timeout", i) {
			c.API.TimeoutSec = i
		}
	}
}

// OptIngestTotal sets the size of the catalog.
func OptIngestTotal(i int) Option {
	return func(c *Config) {
		if isValidInt("Ingest Total", i) {
			c.Ingest.Total = i
		}
	}
}

// OptIngestReseedTypes sets whether types are reseeded before ingestion.
func OptIngestReseedTypes(b bool) Option {
	return func(c *Config) {
		c.Ingest.ReseedTypes = b
	}
}

// OptIngestMetricsFile sets the Prometheus textfile path of run metrics.
func OptIngestMetricsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Ingest Metrics File", s) {
			c.Ingest.MetricsFile = s
		}
	}
}

// OptIngestFirstID sets the first id of the run.
// Runtime-only field - not in ToOptions().
func OptIngestFirstID(i int) Option {
	return func(c *Config) {
		if isValidInt("First ID", i) {
			c.Ingest.FirstID = i
		}
	}
}

// OptIngestLastID sets the last id of the run.
// Runtime-only field - not in ToOptions().
func OptIngestLastID(i int) Option {
	return func(c *Config) {
		if isValidInt("Last ID", i) {
			c.Ingest.LastID = i
		}
	}
}

// OptReportOutputDir sets the directory of charts and report.
func OptReportOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Report Output Dir", s) {
			c.Report.OutputDir = s
		}
	}
}

// OptReportBins sets the number of histogram bins.
func OptReportBins(i int) Option {
	return func(c *Config) {
		if isValidInt("Report Bins", i) {
			c.Report.Bins = i
		}
	}
}

// OptReportTopK sets the length of the type combinations ranking.
func OptReportTopK(i int) Option {
	return func(c *Config) {
		if isValidInt("Report Top K", i) {
			c.Report.TopK = i
		}
	}
}

// OptReportFormat sets the statistics report format.
// Valid values: "json", "yaml".
func OptReportFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Report.Format", s) {
			c.Report.Format = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
