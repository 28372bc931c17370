package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Provider kinds.
const (
	ProviderHTTP     = "http"
	ProviderSQLite   = "sqlite"
	ProviderPostgres = "postgres"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Provider  ProviderConfig  `yaml:"provider"`
	Profile   ProfileConfig   `yaml:"profile"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type ProviderConfig struct {
	Kind       string         `yaml:"kind"`
	BaseURL    string         `yaml:"base_url"`
	Timeout    time.Duration  `yaml:"timeout"`
	SQLitePath string         `yaml:"sqlite_path"`
	Database   DatabaseConfig `yaml:"database"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type ProfileConfig struct {
	Age      int    `yaml:"age"`
	Timezone string `yaml:"timezone"`
}

type DashboardConfig struct {
	StepIntervalMinutes int `yaml:"step_interval_minutes"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	port := d.Port
	if port == 0 {
		port = 5432
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {sslmode}}.Encode(),
	}
	return u.String()
}

// Location resolves the profile time zone. Empty means the host's zone.
func (p ProfileConfig) Location() (*time.Location, error) {
	if p.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(p.Timezone)
}

func defaults() *Config {
	return &Config{
		Server:    ServerConfig{Host: "127.0.0.1", Port: 8080},
		Provider:  ProviderConfig{Kind: ProviderHTTP, Timeout: 30 * time.Second},
		Dashboard: DashboardConfig{StepIntervalMinutes: 30},
		Tailscale: TailscaleConfig{Hostname: "healthdash"},
	}
}

// LoadDotEnv loads variables from a .env file into the process environment
// without overwriting ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads config from a YAML file, then applies environment variable overrides.
// An empty path skips the file and starts from defaults. Env vars use the
// prefix HEALTHDASH_:
//
//	HEALTHDASH_SERVER_HOST, HEALTHDASH_SERVER_PORT,
//	HEALTHDASH_PROVIDER_KIND, HEALTHDASH_PROVIDER_URL, HEALTHDASH_PROVIDER_TIMEOUT,
//	HEALTHDASH_SQLITE_PATH,
//	HEALTHDASH_DB_HOST, HEALTHDASH_DB_PORT, HEALTHDASH_DB_NAME,
//	HEALTHDASH_DB_USER, HEALTHDASH_DB_PASSWORD, HEALTHDASH_DB_SSLMODE,
//	HEALTHDASH_PROFILE_AGE, HEALTHDASH_TIMEZONE, HEALTHDASH_STEP_INTERVAL,
//	HEALTHDASH_TAILSCALE_ENABLED, HEALTHDASH_TAILSCALE_HOSTNAME, HEALTHDASH_TAILSCALE_STATE_DIR
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	setString("HEALTHDASH_SERVER_HOST", &cfg.Server.Host)
	setInt("HEALTHDASH_SERVER_PORT", &cfg.Server.Port)

	setString("HEALTHDASH_PROVIDER_KIND", &cfg.Provider.Kind)
	setString("HEALTHDASH_PROVIDER_URL", &cfg.Provider.BaseURL)
	if v := os.Getenv("HEALTHDASH_PROVIDER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Provider.Timeout = d
		}
	}
	setString("HEALTHDASH_SQLITE_PATH", &cfg.Provider.SQLitePath)

	db := &cfg.Provider.Database
	setString("HEALTHDASH_DB_HOST", &db.Host)
	setInt("HEALTHDASH_DB_PORT", &db.Port)
	setString("HEALTHDASH_DB_NAME", &db.Name)
	setString("HEALTHDASH_DB_USER", &db.User)
	setString("HEALTHDASH_DB_PASSWORD", &db.Password)
	setString("HEALTHDASH_DB_SSLMODE", &db.SSLMode)

	setInt("HEALTHDASH_PROFILE_AGE", &cfg.Profile.Age)
	setString("HEALTHDASH_TIMEZONE", &cfg.Profile.Timezone)
	setInt("HEALTHDASH_STEP_INTERVAL", &cfg.Dashboard.StepIntervalMinutes)

	if v := os.Getenv("HEALTHDASH_TAILSCALE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = b
		}
	}
	setString("HEALTHDASH_TAILSCALE_HOSTNAME", &cfg.Tailscale.Hostname)
	setString("HEALTHDASH_TAILSCALE_STATE_DIR", &cfg.Tailscale.StateDir)
}

func (c *Config) validate() error {
	if !c.Tailscale.Enabled && c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}

	switch c.Provider.Kind {
	case ProviderHTTP:
		if c.Provider.BaseURL == "" {
			return fmt.Errorf("provider.base_url is required for the http provider")
		}
	case ProviderSQLite:
		if c.Provider.SQLitePath == "" {
			return fmt.Errorf("provider.sqlite_path is required for the sqlite provider")
		}
	case ProviderPostgres:
		db := c.Provider.Database
		if db.Host == "" {
			return fmt.Errorf("provider.database.host is required")
		}
		if db.Name == "" {
			return fmt.Errorf("provider.database.name is required")
		}
		if db.User == "" {
			return fmt.Errorf("provider.database.user is required")
		}
	default:
		return fmt.Errorf("provider.kind must be %q, %q or %q, got %q",
			ProviderHTTP, ProviderSQLite, ProviderPostgres, c.Provider.Kind)
	}

	if c.Profile.Age <= 0 || c.Profile.Age >= 120 {
		return fmt.Errorf("profile.age must be between 1 and 119, got %d", c.Profile.Age)
	}
	if _, err := c.Profile.Location(); err != nil {
		return fmt.Errorf("profile.timezone: %w", err)
	}
	if n := c.Dashboard.StepIntervalMinutes; n <= 0 || n > 1440 {
		return fmt.Errorf("dashboard.step_interval_minutes must be between 1 and 1440, got %d", n)
	}
	return nil
}
