// Package config loads the service configuration consumed by the store,
// tracing and middleware packages.
//
// Precedence: KATANA_* environment variables, then .env files, then
// defaults.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "KATANA"

type Config struct {
	AppName         string        `mapstructure:"name" validate:"required"`
	AppVersion      string        `mapstructure:"version" validate:"required"`
	AppDomain       string        `mapstructure:"domain" validate:"required"`
	AppServiceGroup string        `mapstructure:"service_group" validate:"required"`
	APIBaseURL      string        `mapstructure:"base_url" validate:"required,url"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl" validate:"gt=0"`
	CacheShards     int           `mapstructure:"cache_shards" validate:"gt=0"`

	once     sync.Once
	cache    *bigcache.BigCache
	cacheErr error
}

func defaults(v *viper.Viper) {
	v.SetDefault("name", "katana-client")
	v.SetDefault("version", "v1.0.0")
	v.SetDefault("domain", "inventory")
	v.SetDefault("service_group", "katana")
	v.SetDefault("base_url", "https://api.katanamrp.com/v1")
	v.SetDefault("cache_ttl", "10m")
	v.SetDefault("cache_shards", 64)
}

// Load reads the configuration. With no files given, an optional ".env"
// in the working directory is used; named files must exist.
func Load(files ...string) (*Config, error) {
	v := viper.New()
	defaults(v)

	dotenv, err := readDotenv(files)
	if err != nil {
		return nil, err
	}
	prefix := envPrefix + "_"
	for k, val := range dotenv {
		if strings.HasPrefix(k, prefix) {
			v.SetDefault(strings.ToLower(strings.TrimPrefix(k, prefix)), val)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readDotenv(files []string) (map[string]string, error) {
	if len(files) > 0 {
		m, err := godotenv.Read(files...)
		if err != nil {
			return nil, fmt.Errorf("reading env files: %w", err)
		}
		return m, nil
	}

	m, err := godotenv.Read()
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading .env: %w", err)
	}
	return m, nil
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	// bigcache requires a power of two.
	if c.CacheShards&(c.CacheShards-1) != 0 {
		return fmt.Errorf("invalid config: cache_shards must be a power of two, got %d", c.CacheShards)
	}
	return nil
}

func (c *Config) Name() string         { return c.AppName }
func (c *Config) Version() string      { return c.AppVersion }
func (c *Config) Domain() string       { return c.AppDomain }
func (c *Config) ServiceGroup() string { return c.AppServiceGroup }
func (c *Config) BaseURL() string      { return c.APIBaseURL }

// Cache returns the shared bigcache instance, creating it on first use.
func (c *Config) Cache() (*bigcache.BigCache, error) {
	c.once.Do(func() {
		bc := bigcache.DefaultConfig(c.CacheTTL)
		bc.Shards = c.CacheShards
		bc.Verbose = false
		c.cache, c.cacheErr = bigcache.New(context.Background(), bc)
	})
	return c.cache, c.cacheErr
}

// APICache implements interfaces.Config; it is nil when the cache could
// not be created.
func (c *Config) APICache() *bigcache.BigCache {
	cache, err := c.Cache()
	if err != nil {
		return nil
	}
	return cache
}

// Close releases the cache. A Config that has been closed never builds one.
func (c *Config) Close() error {
	c.once.Do(func() {})
	if c.cache == nil {
		return nil
	}
	return c.cache.Close()
}
