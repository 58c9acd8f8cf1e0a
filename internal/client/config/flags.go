package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by RegisterFlags.
const (
	FlagConfig       = "config"
	FlagAPIURL       = "api-url"
	FlagHostname     = "hostname"
	FlagTenantPrefix = "tenant-prefix"
	FlagTimeout      = "timeout"
	FlagLogLevel     = "log-level"
	FlagStorage      = "storage"
	FlagDBPath       = "db"
	FlagRedisAddr    = "redis-addr"
)

// RegisterFlags defines the client flags on fs. Defaults shown in help
// come from LoadDefaults; only flags the user sets override other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to a JSON or YAML config file")
	fs.StringP(FlagAPIURL, "a", d.APIURL, "backend base URL (overrides the hostname default)")
	fs.String(FlagHostname, d.Hostname, "hostname used to pick the default backend")
	fs.String(FlagTenantPrefix, d.TenantPrefix, "path prefix of the tenant task API")
	fs.Duration(FlagTimeout, d.RequestTimeout, "per-request timeout")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	fs.String(FlagStorage, d.Storage.Backend, "session storage backend: sqlite, memory, redis")
	fs.String(FlagDBPath, d.Storage.Path, "sqlite session database path")
	fs.String(FlagRedisAddr, d.Storage.RedisAddr, "redis address for the redis backend")
}

func configPath(fs *pflag.FlagSet) string {
	if fs == nil || fs.Lookup(FlagConfig) == nil {
		return ""
	}
	p, _ := fs.GetString(FlagConfig)
	return p
}

// parseFlags copies the flags set on fs into cfg.
func parseFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	strs := map[string]*string{
		FlagAPIURL:       &cfg.APIURL,
		FlagHostname:     &cfg.Hostname,
		FlagTenantPrefix: &cfg.TenantPrefix,
		FlagLogLevel:     &cfg.LogLevel,
		FlagStorage:      &cfg.Storage.Backend,
		FlagDBPath:       &cfg.Storage.Path,
		FlagRedisAddr:    &cfg.Storage.RedisAddr,
	}
	for name, dst := range strs {
		if !fs.Changed(name) {
			continue
		}
		val, err := fs.GetString(name)
		if err != nil {
			return fmt.Errorf("failed to read flag %s: %w", name, err)
		}
		*dst = val
	}

	if fs.Changed(FlagTimeout) {
		d, err := fs.GetDuration(FlagTimeout)
		if err != nil {
			return fmt.Errorf("failed to read flag %s: %w", FlagTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}
