package normalize

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

// datasheetCachePath builds the well-known per-tenant path for a cached
// datasheet JSON.
func datasheetCachePath(tenant, mpn string) string {
	return filepath.Join("data", tenant, "products", mpn+".json")
}

// LoadCachedDatasheet reads the cached datasheet JSON for mpn, if
// present, returning an ExtractedProduct with sourceType datasheet and
// confidence 0.95. Returns (nil, nil) when no cache file exists — that is
// not treated as an error, since the cache is read-only and optional from
// the pipeline's perspective.
func LoadCachedDatasheet(tenant, mpn string) (*models.ExtractedProduct, error) {
	path := datasheetCachePath(tenant, mpn)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read datasheet cache: %w", err)
	}

	var rawDatasheet map[string]interface{}
	if err := json.Unmarshal(raw, &rawDatasheet); err != nil {
		return nil, fmt.Errorf("failed to parse datasheet cache: %w", err)
	}

	product := &models.ExtractedProduct{
		MPN:          mpn,
		SourceType:   models.SourceDatasheet,
		Confidence:   0.95,
		Specs:        map[string]string{},
		RawDatasheet: rawDatasheet,
	}

	flattenDatasheetGroups(rawDatasheet, product.Specs)
	product.VerbatimSections = extractDatasheetVerbatimSections(rawDatasheet)

	return product, nil
}

// datasheetGroups are the nested spec groups flattened into the specs
// map during datasheet-JSON preprocessing.
var datasheetGroups = []string{"electrical_specs", "mechanical_specs", "safety_and_compliance"}

// flattenDatasheetGroups flattens each nested group into specs: strip a
// trailing "_raw" suffix from the field name, replace underscores with
// spaces, and title-case the words.
func flattenDatasheetGroups(raw map[string]interface{}, specs map[string]string) {
	for _, groupName := range datasheetGroups {
		group, ok := raw[groupName].(map[string]interface{})
		if !ok {
			continue
		}
		for field, value := range group {
			key := fieldToSpecLabel(field)
			if strValue, ok := valueToString(value); ok && strValue != "" {
				if _, exists := specs[key]; !exists {
					specs[key] = strValue
				}
			}
		}
	}
}

func fieldToSpecLabel(field string) string {
	field = strings.TrimSuffix(field, "_raw")
	field = strings.ReplaceAll(field, "_", " ")
	return titleCaseWords(field)
}

func titleCaseWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) == 0 {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func valueToString(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return fmt.Sprintf("%g", val), true
	case bool:
		return fmt.Sprintf("%t", val), true
	default:
		return "", false
	}
}

// datasheetVerbatimFields maps raw-JSON field names to the verbatim
// section heading they populate.
var datasheetVerbatimFields = map[string]string{
	"overview":           "Overview",
	"system_description": "System Description",
}

// bulletFieldNames are the field names tolerated for key-feature bullet
// lists, across both legacy-flat and nested datasheet JSON shapes.
var bulletFieldNames = []string{"raw_bullets", "bullets", "items", "raw"}

// extractDatasheetVerbatimSections pulls overview/system-description text
// and key-feature bullets out of the raw datasheet JSON, tolerating both
// a legacy flat shape and a nested shape with multiple bullet field
// names.
func extractDatasheetVerbatimSections(raw map[string]interface{}) []models.VerbatimSection {
	var sections []models.VerbatimSection

	for field, heading := range datasheetVerbatimFields {
		if text, ok := raw[field].(string); ok && text != "" {
			sections = append(sections, models.VerbatimSection{Heading: heading, Text: text})
		}
	}

	bullets := collectBullets(raw)
	for _, bullet := range bullets {
		sections = append(sections, models.VerbatimSection{Heading: "Key Feature", Text: bullet})
	}

	return sections
}

func collectBullets(raw map[string]interface{}) []string {
	// Legacy flat shape: bullets live directly on the top-level object.
	for _, field := range bulletFieldNames {
		if bullets, ok := extractBulletList(raw[field]); ok {
			return bullets
		}
	}

	// Nested shape: bullets live under a "key_features" group.
	if group, ok := raw["key_features"].(map[string]interface{}); ok {
		for _, field := range bulletFieldNames {
			if bullets, ok := extractBulletList(group[field]); ok {
				return bullets
			}
		}
	}

	return nil
}

func extractBulletList(v interface{}) ([]string, bool) {
	items, ok := v.([]interface{})
	if !ok || len(items) == 0 {
		return nil, false
	}
	bullets := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			bullets = append(bullets, s)
		}
	}
	if len(bullets) == 0 {
		return nil, false
	}
	return bullets, true
}
