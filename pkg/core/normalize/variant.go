package normalize

import (
	"strings"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

const raSuffix = "RA"
const remoteAlarmKey = "Remote Alarm"
const raVariantSourceTag = "variant:RA"
const raVariantConfidence = 0.95

// IsRAVariant reports whether the requested canonical MPN carries the
// remote-alarm variant suffix.
func IsRAVariant(mpn string) bool {
	return strings.HasSuffix(strings.ToUpper(mpn), raSuffix)
}

// BaseMPN strips the RA suffix, so discovery and crawl can operate on
// the base part while the overlay re-adds the variant content later.
func BaseMPN(mpn string) string {
	if IsRAVariant(mpn) {
		return mpn[:len(mpn)-len(raSuffix)]
	}
	return mpn
}

// ApplyRAOverlay injects "Remote Alarm: Yes" and a "Variant" verbatim
// section into an already-merged NormalizedProduct. It is idempotent: a
// second application does not duplicate the Remote Alarm spec entry or
// the Variant section.
func ApplyRAOverlay(product *models.NormalizedProduct) {
	if _, exists := product.Specs[remoteAlarmKey]; !exists {
		product.Specs[remoteAlarmKey] = models.SpecValue{
			Value:      "Yes",
			Sources:    []string{raVariantSourceTag},
			Confidence: raVariantConfidence,
		}
	}

	for _, section := range product.VerbatimSections {
		if section.Heading == "Variant" {
			return
		}
	}

	product.VerbatimSections = append(product.VerbatimSections, models.VerbatimSection{
		Heading: "Variant",
		Text:    "Includes remote alarm for system monitoring.",
		Source:  raVariantSourceTag,
	})
}
