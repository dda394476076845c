package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

func TestDiscoveryConfidenceScore(t *testing.T) {
	assert.Equal(t, 0.9, discoveryConfidenceScore(models.ConfidenceHigh))
	assert.Equal(t, 0.6, discoveryConfidenceScore(models.ConfidenceMedium))
	assert.Equal(t, 0.3, discoveryConfidenceScore(models.ConfidenceLow))
}

func TestCrawlConfidenceScore(t *testing.T) {
	assert.Equal(t, tier1CrawlConfidence, crawlConfidenceScore(false))
	assert.Equal(t, tier2CrawlConfidence, crawlConfidenceScore(true))
}

func TestBlend_WeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, discoveryWeight+crawlWeight+extractionWeight+synthesisWeight, 0.0001)
}

func TestBlend_AllOnesYieldsOne(t *testing.T) {
	assert.InDelta(t, 1.0, blend(1, 1, 1, 1), 0.0001)
}

func TestUsable_BoundaryAtThreshold(t *testing.T) {
	assert.True(t, usable(usableThreshold))
	assert.False(t, usable(usableThreshold-0.0001))
}
