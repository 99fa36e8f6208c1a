package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tofu702/solarstats/internal/sun"
)

// EnvPrefix prefixes every environment override, e.g. SOLARSTATS_SERVER_PORT.
const EnvPrefix = "SOLARSTATS"

// Config holds all configuration for our application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Site    SiteConfig    `mapstructure:"site"`
	Data    DataConfig    `mapstructure:"data"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	HealthPort      int           `mapstructure:"health_port"`
	StaticDir       string        `mapstructure:"static_dir"`
	RateLimit       float64       `mapstructure:"rate_limit"`
	RateLimitBurst  int           `mapstructure:"rate_limit_burst"`
	MaxRangeDays    int           `mapstructure:"max_range_days"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// SiteConfig is the default location used when a request does not name one.
type SiteConfig struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
	Timezone  string  `mapstructure:"timezone"`
}

// Location converts the site to the calculator's input type.
func (s SiteConfig) Location() sun.Location {
	return sun.Location{Latitude: s.Latitude, Longitude: s.Longitude, Timezone: s.Timezone}
}

type DataConfig struct {
	Dir string `mapstructure:"dir"`
	// ExampleFile backs the example endpoint; empty disables it.
	ExampleFile string `mapstructure:"example_file"`
}

// ExamplePath resolves ExampleFile against Dir when it is relative.
func (d DataConfig) ExamplePath() string {
	if d.ExampleFile == "" || filepath.IsAbs(d.ExampleFile) {
		return d.ExampleFile
	}
	return filepath.Join(d.Dir, d.ExampleFile)
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from defaults, an optional .env file, the YAML file
// at path (missing is fine) and SOLARSTATS_* environment variables, in
// increasing order of precedence. $VAR references inside the YAML are
// expanded before parsing.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		data, err := readExpanded(path)
		if err != nil {
			return nil, err
		}
		if data != nil {
			if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// readExpanded returns the YAML at path with environment variables expanded,
// or nil when the file does not exist.
func readExpanded(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Round-trip through a map so malformed YAML is reported before expansion
	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal raw config: %w", err)
	}
	if rawConfig == nil {
		return nil, nil
	}

	data, err = yaml.Marshal(rawConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal raw config: %w", err)
	}

	return []byte(os.ExpandEnv(string(data))), nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	// Existing environment variables win over the file.
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks value ranges that the rest of the program relies on.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.HealthPort < 0 || c.Server.HealthPort > 65535 {
		return fmt.Errorf("server.health_port must be between 0 and 65535, got %d", c.Server.HealthPort)
	}
	if c.Server.HealthPort == c.Server.Port {
		return fmt.Errorf("server.health_port must differ from server.port (%d)", c.Server.Port)
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be positive, got %v", c.Server.RateLimit)
	}
	if c.Server.RateLimitBurst < 1 {
		return fmt.Errorf("server.rate_limit_burst must be at least 1, got %d", c.Server.RateLimitBurst)
	}
	if c.Server.MaxRangeDays < 1 {
		return fmt.Errorf("server.max_range_days must be at least 1, got %d", c.Server.MaxRangeDays)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}

	if _, err := c.Site.Location().Validate(); err != nil {
		return fmt.Errorf("site: %w", err)
	}

	if c.Data.Dir == "" {
		return errors.New("data.dir must not be empty")
	}

	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.health_port", 0)
	v.SetDefault("server.static_dir", "static")
	v.SetDefault("server.rate_limit", 50)
	v.SetDefault("server.rate_limit_burst", 100)
	v.SetDefault("server.max_range_days", 3660)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("site.latitude", 37.5585485)
	v.SetDefault("site.longitude", -121.9481288)
	v.SetDefault("site.timezone", "America/Los_Angeles")

	v.SetDefault("data.dir", "data")
	v.SetDefault("data.example_file", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
