package synthesize

import "strings"

const maxContentConfidence = 0.85
const imageConfidenceWeight = 0.1
const datasheetConfidenceWeight = 0.1

// contentConfidence computes:
// min(0.85, (keyFeaturesReferencingInputSpecs / totalInputSpecs)
//
//	+ 0.1*hasImages + 0.1*hasDatasheets)
func contentConfidence(out *rawSynthesis, payload Payload) float64 {
	referencing := countKeyFeaturesReferencingSpecs(out.KeyFeatures, payload.Specs)

	ratio := 0.0
	if total := len(payload.Specs); total > 0 {
		ratio = float64(referencing) / float64(total)
	}

	score := ratio
	if len(payload.Images) > 0 {
		score += imageConfidenceWeight
	}
	if len(payload.Datasheets) > 0 {
		score += datasheetConfidenceWeight
	}

	if score > maxContentConfidence {
		return maxContentConfidence
	}
	return score
}

// countKeyFeaturesReferencingSpecs counts distinct spec keys referenced by
// a "Label: Value" keyFeature string whose Label is present in specs.
func countKeyFeaturesReferencingSpecs(keyFeatures []string, specs map[string]string) int {
	seen := map[string]bool{}
	count := 0
	for _, kf := range keyFeatures {
		label, _, found := strings.Cut(kf, ":")
		if !found {
			continue
		}
		label = strings.TrimSpace(label)
		if _, ok := specs[label]; ok && !seen[label] {
			seen[label] = true
			count++
		}
	}
	return count
}
