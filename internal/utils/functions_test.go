package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grasp-labs/ds-go-katana-models/internal/fakes"
	"github.com/grasp-labs/ds-go-katana-models/internal/utils"
)

func TestGetMajorVersion(t *testing.T) {
	assert.Equal(t, "v1", utils.GetMajorVersion("v1.0.0-alpha.1"))
	assert.Equal(t, "v2", utils.GetMajorVersion("2.3.4"))
	assert.Equal(t, "v1", utils.GetMajorVersion(""))
}

func TestCreateServicePrincipleID(t *testing.T) {
	cfg := fakes.NewConfig("inventory", "katana", "stocktake-sync", "v3.1.0", "https://api.katanamrp.com/v1")
	assert.Equal(t, "inventory.katana.stocktake-sync.v3", utils.CreateServicePrincipleID(cfg))
}
