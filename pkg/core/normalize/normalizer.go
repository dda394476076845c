package normalize

import (
	"fmt"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

// Normalize implements the Normalizer stage contract: merge a list of
// ExtractedProduct into one NormalizedProduct. Throws on empty input.
//
// If tenant is non-empty, a cached datasheet JSON exists for
// BaseMPN(canonicalMPN) and no input product has sourceType datasheet,
// it is loaded and prepended to the
// input list before merging. If canonicalMPN ends in RA, the RA overlay
// is applied after merging.
func Normalize(tenant, canonicalMPN string, products []models.ExtractedProduct) (models.NormalizedProduct, error) {
	products, err := withDatasheetInjection(tenant, canonicalMPN, products)
	if err != nil {
		return models.NormalizedProduct{}, err
	}

	if len(products) == 0 {
		return models.NormalizedProduct{}, fmt.Errorf("normalizer requires at least one extracted product")
	}

	merged := models.NormalizedProduct{
		MPN:   canonicalMPN,
		Specs: map[string]models.SpecValue{},
	}

	var images []models.ImageRef
	var datasheets []models.DatasheetRef
	var sections []models.VerbatimSection

	confidenceSum := 0.0
	for _, product := range products {
		mergeSpecs(merged.Specs, product)
		mergeAncillary(&images, &datasheets, &sections, product)
		confidenceSum += product.Confidence
	}

	merged.Images = images
	merged.Datasheets = datasheets
	merged.VerbatimSections = sections
	merged.OverallConfidence = confidenceSum / float64(len(products))

	merged.Manufacturer = resolveManufacturer(products)
	merged.CanonicalTitle, merged.DisplayTitle = resolveTitle(products, merged.Manufacturer, canonicalMPN)

	if IsRAVariant(canonicalMPN) {
		ApplyRAOverlay(&merged)
	}

	return merged, nil
}

// withDatasheetInjection loads a cached datasheet product and prepends it
// to the input list, but only when one wasn't already supplied.
func withDatasheetInjection(tenant, canonicalMPN string, products []models.ExtractedProduct) ([]models.ExtractedProduct, error) {
	for _, p := range products {
		if p.SourceType == models.SourceDatasheet {
			return products, nil
		}
	}

	if tenant == "" {
		return products, nil
	}

	cached, err := LoadCachedDatasheet(tenant, BaseMPN(canonicalMPN))
	if err != nil {
		return nil, err
	}
	if cached == nil {
		return products, nil
	}

	return append([]models.ExtractedProduct{*cached}, products...), nil
}

// resolveManufacturer prefers the first non-empty manufacturer from an
// OEM source, else the first non-empty manufacturer from any source.
func resolveManufacturer(products []models.ExtractedProduct) string {
	for _, p := range products {
		if p.SourceType == models.SourceOEM && p.Manufacturer != "" {
			return p.Manufacturer
		}
	}
	for _, p := range products {
		if p.Manufacturer != "" {
			return p.Manufacturer
		}
	}
	return ""
}

// resolveTitle prefers the OEM-source canonical/display title, else the
// first source with a non-empty canonicalTitle, else "<manufacturer> <mpn>".
func resolveTitle(products []models.ExtractedProduct, manufacturer, mpn string) (canonical string, display string) {
	for _, p := range products {
		if p.SourceType == models.SourceOEM && p.CanonicalTitle != "" {
			return p.CanonicalTitle, p.DisplayTitle
		}
	}
	for _, p := range products {
		if p.CanonicalTitle != "" {
			return p.CanonicalTitle, p.DisplayTitle
		}
	}
	fallback := manufacturer + " " + mpn
	return fallback, fallback
}
