// Package app provides the application container wrapping all
// dependencies and services.
package app

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig application configuration
type AppConfig struct {
	File     string         `yaml:"-"` // config file path, not serialized
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	App      AppSettings    `yaml:"app"`
	Tracer   TracerConfig   `yaml:"tracer"`
}

// ServerConfig server configuration
type ServerConfig struct {
	// RunMode run mode
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort HTTP port
	HttpPort string `yaml:"http-port" default:":9000"`
	// ReadTimeout read timeout in seconds
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout write timeout in seconds
	WriteTimeout int `yaml:"write-timeout" default:"60"`
	// PrivateHttpListen private HTTP listen address (metrics, pprof)
	PrivateHttpListen string `yaml:"private-http-listen" default:":9001"`
}

// LogConfig log configuration
type LogConfig struct {
	// Level log level, see zapcore.ParseLevel
	Level string `yaml:"level" default:"info"`
	// File log file path, empty logs to stderr
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production enables JSON output
	Production bool `yaml:"production" default:"true"`
}

// DatabaseConfig database configuration
type DatabaseConfig struct {
	// Type database type: postgres, mysql or sqlite
	Type string `yaml:"type" default:"sqlite"`
	// DSN full connection descriptor; overridden by DATABASE_URL
	DSN string `yaml:"dsn"`
	// Path sqlite database file path
	Path string `yaml:"path" default:"storage/database/db.sqlite3"`
	// UserName user name
	UserName string `yaml:"username"`
	// Password password
	Password string `yaml:"password"`
	// Host host
	Host string `yaml:"host"`
	// Name database name
	Name string `yaml:"name"`
	// TablePrefix table name prefix
	TablePrefix string `yaml:"table-prefix"`
	// Charset character set
	Charset string `yaml:"charset" default:"utf8mb4"`
	// ParseTime whether to parse time
	ParseTime bool `yaml:"parse-time" default:"true"`
	// MaxIdleConns max idle connections, default 10
	MaxIdleConns int `yaml:"max-idle-conns" default:"10"`
	// MaxOpenConns max open connections, default 100
	MaxOpenConns int `yaml:"max-open-conns" default:"100"`
	// ConnMaxLifetime max connection lifetime, e.g. 30m, 1h
	ConnMaxLifetime string `yaml:"conn-max-lifetime" default:"30m"`
	// ConnMaxIdleTime max idle connection lifetime, e.g. 10m
	ConnMaxIdleTime string `yaml:"conn-max-idle-time" default:"10m"`
}

// AppSettings application settings
type AppSettings struct {
	// DefaultContextTimeout request context timeout in seconds
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"60"`
	// NoteStatsCron cron expression driving the stats task
	NoteStatsCron string `yaml:"note-stats-cron" default:"*/1 * * * *"`
	// RateLimitCapacity token bucket capacity for the notes route
	RateLimitCapacity int64 `yaml:"rate-limit-capacity" default:"100"`
}

// TracerConfig request tracing configuration
type TracerConfig struct {
	// Enabled whether tracing is on
	Enabled bool `yaml:"enabled" default:"true"`
	// Header trace ID header name, default X-Trace-ID
	Header string `yaml:"header" default:"X-Trace-ID"`
}

// envOverrides are the deployment-environment knobs. The connection
// descriptor arrives out-of-band from the hosting environment and wins
// over anything in the file.
type envOverrides struct {
	DatabaseURL string `env:"DATABASE_URL"`
	Port        string `env:"PORT"`
}

// LoadConfig loads configuration from a yaml file, fills defaults and
// applies environment overrides. Returns the config and the file's
// absolute path.
func LoadConfig(f string) (*AppConfig, string, error) {
	data, err := os.ReadFile(f)
	if err != nil {
		return nil, "", errors.Wrap(err, "read config file")
	}

	c := &AppConfig{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, "", errors.Wrap(err, "parse config file")
	}
	if err := defaults.Set(c); err != nil {
		return nil, "", errors.Wrap(err, "apply config defaults")
	}
	if err := c.applyEnv(); err != nil {
		return nil, "", err
	}

	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", errors.Wrap(err, "resolve config path")
	}
	c.File = realpath

	return c, realpath, nil
}

// NewDefaultConfig returns a config with defaults and environment
// overrides applied, without reading a file. Used by tests.
func NewDefaultConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := defaults.Set(c); err != nil {
		return nil, errors.Wrap(err, "apply config defaults")
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *AppConfig) applyEnv() error {
	var eo envOverrides
	if err := env.Parse(&eo); err != nil {
		return errors.Wrap(err, "parse environment")
	}
	if eo.DatabaseURL != "" {
		c.Database.Type = "postgres"
		c.Database.DSN = eo.DatabaseURL
	}
	if eo.Port != "" {
		c.Server.HttpPort = ":" + eo.Port
	}
	return nil
}

// Save writes the current configuration back to its file.
func (c *AppConfig) Save() error {
	if c.File == "" {
		return errors.New("config file path is empty")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	return os.WriteFile(c.File, data, 0644)
}
