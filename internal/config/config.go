package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by goinertia,
// e.g. GOINERTIA_LOG_LEVEL for log.level.
const EnvPrefix = "GOINERTIA"

// Config holds the settings shared by every command.
type Config struct {
	Unit    string        `mapstructure:"unit"`
	Verbose bool          `mapstructure:"verbose"`
	Angles  string        `mapstructure:"angles"`
	Log     LogConfig     `mapstructure:"log"`
	Report  ReportConfig  `mapstructure:"report"`
	Diagram DiagramConfig `mapstructure:"diagram"`
	Server  ServerConfig  `mapstructure:"server"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ReportConfig struct {
	Title  string `mapstructure:"title"`
	Author string `mapstructure:"author"`
}

// DiagramConfig is the image size in inches.
type DiagramConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Unit:    "cm",
		Verbose: false,
		Angles:  "math",
		Log:     LogConfig{Level: "warn", Format: "console"},
		Report:  ReportConfig{Title: "Moments of Inertia - Report"},
		Diagram: DiagramConfig{Width: 8, Height: 6},
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("unit", d.Unit)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("angles", d.Angles)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("report.title", d.Report.Title)
	v.SetDefault("report.author", d.Report.Author)
	v.SetDefault("diagram.width", d.Diagram.Width)
	v.SetDefault("diagram.height", d.Diagram.Height)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. A .env file in the working directory is
// loaded into the environment first when present. When path is empty the
// file .goinertia.{yaml,json,toml} is searched in the working directory and
// the home directory; a missing file is not an error in that case.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".goinertia")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// normalize lowercases the keyword settings.
func (c *Config) normalize() {
	c.Angles = strings.ToLower(strings.TrimSpace(c.Angles))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

// Validate rejects settings no command can work with. Keywords match
// regardless of case.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Angles) {
	case "math", "clockwise":
	default:
		return fmt.Errorf("invalid angles convention %q (want math or clockwise)", c.Angles)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "disabled", "off":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", c.Log.Format)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Diagram.Width <= 0 || c.Diagram.Height <= 0 {
		return fmt.Errorf("diagram size must be positive, got %gx%g", c.Diagram.Width, c.Diagram.Height)
	}
	if strings.TrimSpace(c.Unit) == "" {
		return errors.New("unit must not be empty")
	}
	return nil
}
