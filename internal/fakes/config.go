package fakes

import (
	"github.com/allegro/bigcache/v3"
)

type MockConfig struct {
	domain       string
	serviceGroup string
	name         string
	version      string
	baseURL      string
	apiCache     *bigcache.BigCache
}

// Implement the interface methods
func (c *MockConfig) Name() string {
	return c.name
}

func (c *MockConfig) BaseURL() string {
	return c.baseURL
}

func (c *MockConfig) APICache() *bigcache.BigCache {
	return c.apiCache
}

func (c *MockConfig) Domain() string {
	return c.domain
}

func (c *MockConfig) ServiceGroup() string {
	return c.serviceGroup
}

func (c *MockConfig) Version() string {
	return c.version
}

// WithCache attaches a cache to the config.
func (c *MockConfig) WithCache(cache *bigcache.BigCache) *MockConfig {
	c.apiCache = cache
	return c
}

func NewConfig(d, sg, n, v, baseURL string) *MockConfig {
	return &MockConfig{
		domain:       d,
		serviceGroup: sg,
		name:         n,
		version:      v,
		baseURL:      baseURL,
	}
}
