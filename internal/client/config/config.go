package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Storage selects where the session slots live.
type Storage struct {
	Backend   string `mapstructure:"backend" validate:"oneof=sqlite memory redis"`
	Path      string `mapstructure:"path"`
	RedisAddr string `mapstructure:"redis_addr" validate:"required_if=Backend redis"`
}

// Welcome feeds the static setup screen.
type Welcome struct {
	UserName    string `mapstructure:"user_name"`
	ProjectName string `mapstructure:"project_name"`
	GithubURL   string `mapstructure:"github_url"`
}

// Config holds runtime settings for the Boot_Lang client.
//
// APIURL, when set, wins over the Hostname based default (see
// client.ResolveBaseURL).
type Config struct {
	APIURL         string        `mapstructure:"api_url"`
	Hostname       string        `mapstructure:"hostname"`
	TenantPrefix   string        `mapstructure:"tenant_prefix"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	LogLevel       string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Storage        Storage       `mapstructure:"storage"`
	Welcome        Welcome       `mapstructure:"welcome"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = ""
	c.Hostname = "localhost"
	c.TenantPrefix = "/api/tenant_1/poc_idea_1"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
	c.Storage = Storage{Backend: "sqlite", Path: defaultDBPath()}
	c.Welcome = Welcome{ProjectName: "Boot_Lang"}
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "bootlang.db"
	}
	return filepath.Join(dir, "bootlang", "session.db")
}

// dotEnvFile is read from the working directory when present.
var dotEnvFile = ".env"

// LoadConfig builds a Config from defaults, then the config file, the
// environment and finally the flags in fs that were set. fs may be nil.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	v := newViper(cfg)

	if err := parseFile(v, configPath(fs)); err != nil {
		return nil, err
	}
	if err := parseEnv(v, dotEnvFile); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := parseFlags(cfg, fs); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the enumerated and required settings.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// newViper seeds a viper instance with cfg as defaults so every key is
// known to the env lookup.
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetDefault("api_url", cfg.APIURL)
	v.SetDefault("hostname", cfg.Hostname)
	v.SetDefault("tenant_prefix", cfg.TenantPrefix)
	v.SetDefault("request_timeout", cfg.RequestTimeout)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("storage.backend", cfg.Storage.Backend)
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("storage.redis_addr", cfg.Storage.RedisAddr)
	v.SetDefault("welcome.user_name", cfg.Welcome.UserName)
	v.SetDefault("welcome.project_name", cfg.Welcome.ProjectName)
	v.SetDefault("welcome.github_url", cfg.Welcome.GithubURL)
	return v
}
