package html

import "github.com/Zareef13/Partly-MVP-V1/pkg/models"

const (
	titleWeight      = 0.15
	specsWeight      = 0.30
	imagesWeight     = 0.20
	datasheetsWeight = 0.25
	overviewWeight   = 0.10

	lowQualityThreshold = 0.30

	minTitleLength    = 15
	minOverviewLength = 40
)

// qualityScore combines five binary presence features with fixed weights.
// Formula: hasTitle*0.15 + hasSpecs*0.30 + hasImages*0.20 +
// hasDatasheets*0.25 + hasOverview*0.10.
func qualityScore(product models.ExtractedProduct, overview string) float64 {
	score := 0.0

	if len(product.DisplayTitle) > minTitleLength {
		score += titleWeight
	}
	if len(product.Specs) > 0 {
		score += specsWeight
	}
	if len(product.Images) > 0 {
		score += imagesWeight
	}
	if len(product.Datasheets) > 0 {
		score += datasheetsWeight
	}
	if len(overview) > minOverviewLength {
		score += overviewWeight
	}

	return score
}
