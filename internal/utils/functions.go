package utils

import (
	"fmt"
	"strings"

	"github.com/grasp-labs/ds-go-katana-models/middleware/interfaces"
)

// GetMajorVersion reduces a semantic version to its major part ("v1.4.2" -> "v1").
func GetMajorVersion(v string) string {
	version := strings.TrimPrefix(strings.TrimSpace(v), "v")
	parts := strings.Split(version, ".")
	if len(parts) > 0 && parts[0] != "" {
		return "v" + parts[0]
	}
	return "v1"
}

// CreateServicePrincipleID renders domain.group.name.vN for cfg.
func CreateServicePrincipleID(cfg interfaces.Config) string {
	mv := GetMajorVersion(cfg.Version())
	return fmt.Sprintf("%s.%s.%s.%s", cfg.Domain(), cfg.ServiceGroup(), cfg.Name(), mv)
}
