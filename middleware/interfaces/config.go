package interfaces

import (
	"github.com/allegro/bigcache/v3"
)

type Config interface {
	Domain() string
	ServiceGroup() string
	Version() string
	Name() string
	BaseURL() string // Katana API root, e.g. https://api.katanamrp.com/v1
	APICache() *bigcache.BigCache
}
