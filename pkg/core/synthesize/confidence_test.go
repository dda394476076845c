package synthesize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentConfidence_AllSpecsReferencedPlusImagesAndDatasheets(t *testing.T) {
	out := &rawSynthesis{KeyFeatures: []string{"System Voltage: 120/240V", "Weight: 4.5 lb"}}
	payload := Payload{
		Specs:      map[string]string{"System Voltage": "120/240V", "Weight": "4.5 lb"},
		Images:     []string{"https://acme.com/a.jpg"},
		Datasheets: []DatasheetEntry{{URL: "https://acme.com/ds.pdf"}},
	}

	score := contentConfidence(out, payload)
	assert.InDelta(t, maxContentConfidence, score, 0.0001, "ratio capped by maxContentConfidence")
	assert.LessOrEqual(t, score, maxContentConfidence)
}

func TestContentConfidence_PartialReferenceRatio(t *testing.T) {
	out := &rawSynthesis{KeyFeatures: []string{"System Voltage: 120/240V"}}
	payload := Payload{Specs: map[string]string{"System Voltage": "120/240V", "Weight": "4.5 lb"}}

	score := contentConfidence(out, payload)
	assert.InDelta(t, 0.5, score, 0.0001)
}

func TestContentConfidence_NoSpecsIsZeroRatio(t *testing.T) {
	out := &rawSynthesis{}
	payload := Payload{Specs: map[string]string{}}

	assert.Equal(t, 0.0, contentConfidence(out, payload))
}

func TestCountKeyFeaturesReferencingSpecs_DedupesRepeatedLabel(t *testing.T) {
	count := countKeyFeaturesReferencingSpecs(
		[]string{"System Voltage: 120V", "System Voltage: 120V again", "Weight: 4.5 lb", "Unmapped: X"},
		map[string]string{"System Voltage": "120V", "Weight": "4.5 lb"},
	)
	assert.Equal(t, 2, count)
}
