package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDataDir sets the root of the data tree.
func OptDataDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data Directory", s) {
			c.DataDir = s
		}
	}
}

// OptProject sets the project name used in data paths.
func OptProject(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Project", s) {
			c.Project = s
		}
	}
}

// OptVersion sets the dataset version tag used in data paths.
func OptVersion(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Version", s) {
			c.Version = s
		}
	}
}

// OptSplitYear sets the year that separates "pre" and "post" periods.
func OptSplitYear(i int) Option {
	return func(c *Config) {
		if isValidYear("Split Year", i) {
			c.SplitYear = i
		}
	}
}

// OptJobsNumber sets the number of concurrent harvesting workers.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptAPIBaseURL sets the root URL of the Red List service.
func OptAPIBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "/")
	return func(c *Config) {
		if isValidURL("API Base URL", s) {
			c.API.BaseURL = s
		}
	}
}

// OptAPITimeout sets HTTP request timeout in seconds.
func OptAPITimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("API Timeout", i) {
			c.API.Timeout = i
		}
	}
}

// OptAPIDelay sets minimal spacing between requests of one worker in
// milliseconds. The delay must be positive, throttling cannot be turned
// off through configuration.
func OptAPIDelay(i int) Option {
	return func(c *Config) {
		if isValidInt("API Delay", i) {
			c.API.Delay = i
		}
	}
}

// OptAPISearchSize sets the number of search candidates to request.
func OptAPISearchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("API Search Size", i) {
			c.API.SearchSize = i
		}
	}
}

// OptAPIUserAgent sets the User-Agent header.
func OptAPIUserAgent(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("API User Agent", s) {
			c.API.UserAgent = s
		}
	}
}

// OptAPICSRFToken sets the X-Csrf-Token header.
func OptAPICSRFToken(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("API CSRF Token", s) {
			c.API.CSRFToken = s
		}
	}
}

// OptAPICookie sets the Cookie header.
func OptAPICookie(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("API Cookie", s) {
			c.API.Cookie = s
		}
	}
}

// OptHarvestReuseThreshold sets the share of existing rows that makes
// harvesting unnecessary. Valid range is (0, 1].
func OptHarvestReuseThreshold(f float64) Option {
	return func(c *Config) {
		if isValidFraction("Harvest Reuse Threshold", f) {
			c.Harvest.ReuseThreshold = f
		}
	}
}

// OptOutputSQLite enables or disables the SQLite copy of the final table.
func OptOutputSQLite(b bool) Option {
	return func(c *Config) {
		c.Output.SQLite = b
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

// OptDatabaseBatchSize sets the number of values inserted per batch.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
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

// OptForce makes harvest ignore already downloaded rows.
// Runtime-only field - not in ToOptions().
func OptForce(b bool) Option {
	return func(c *Config) {
		c.Force = b
	}
}

// OptWithProgress toggles the harvest progress bar.
// Runtime-only field - not in ToOptions().
func OptWithProgress(b bool) Option {
	return func(c *Config) {
		c.WithProgress = b
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
