package normalize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

func chdirToTempDir(t *testing.T) {
	t.Helper()
	original, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(original)) })
}

func TestLoadCachedDatasheet_MissingFileReturnsNilNil(t *testing.T) {
	chdirToTempDir(t)

	product, err := LoadCachedDatasheet("acme-tenant", "M1-1120-3")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestLoadCachedDatasheet_FlattensNestedGroupsAndBullets(t *testing.T) {
	chdirToTempDir(t)

	path := filepath.Join("data", "acme-tenant", "products")
	require.NoError(t, os.MkdirAll(path, 0o755))

	contents := `{
		"electrical_specs": {"system_voltage_raw": "120/240V"},
		"mechanical_specs": {"weight": 4.5},
		"overview": "Protects downline equipment from surges.",
		"key_features": {"bullets": ["Fast response time", "UL listed"]}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(path, "M1-1120-3.json"), []byte(contents), 0o644))

	product, err := LoadCachedDatasheet("acme-tenant", "M1-1120-3")
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.Equal(t, models.SourceDatasheet, product.SourceType)
	assert.Equal(t, 0.95, product.Confidence)
	assert.Equal(t, "120/240V", product.Specs["System Voltage"])
	assert.Equal(t, "4.5", product.Specs["Weight"])

	var overviewFound, bulletsFound int
	for _, section := range product.VerbatimSections {
		if section.Heading == "Overview" {
			overviewFound++
			assert.Equal(t, "Protects downline equipment from surges.", section.Text)
		}
		if section.Heading == "Key Feature" {
			bulletsFound++
		}
	}
	assert.Equal(t, 1, overviewFound)
	assert.Equal(t, 2, bulletsFound)
}

func TestFieldToSpecLabel_StripsRawSuffixAndTitleCases(t *testing.T) {
	assert.Equal(t, "System Voltage", fieldToSpecLabel("system_voltage_raw"))
	assert.Equal(t, "Max Continuous Operating Voltage", fieldToSpecLabel("max_continuous_operating_voltage"))
}
