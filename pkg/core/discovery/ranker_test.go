package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

func TestRankCandidates_IdenticalFeatureVectorsScoreEqually(t *testing.T) {
	fv := models.FeatureVector{MPNInURL: 1, MPNInTitle: 1, MfgInText: 0, ProductPath: 1, DomainTrust: 0.4, JunkPath: 0}
	candidates := []models.SearchCandidate{
		{URL: "https://a.com", Features: fv},
		{URL: "https://b.com", Features: fv},
	}

	ranked := rankCandidates(candidates)
	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
}

func TestRankCandidates_HigherFeaturesScoreHigher(t *testing.T) {
	strong := models.FeatureVector{MPNInURL: 1, MPNInTitle: 1, MfgInText: 1, ProductPath: 1, DomainTrust: 0.9, JunkPath: 0}
	weak := models.FeatureVector{MPNInURL: 0, MPNInTitle: 0, MfgInText: 0, ProductPath: 0, DomainTrust: 0, JunkPath: 1}

	candidates := []models.SearchCandidate{
		{URL: "https://weak.com", Features: weak},
		{URL: "https://strong.com", Features: strong},
	}

	ranked := rankCandidates(candidates)
	require.Len(t, ranked, 2)
	assert.Equal(t, "https://strong.com", ranked[0].URL)
}

func TestConfidenceFromScores(t *testing.T) {
	assert.Equal(t, models.ConfidenceLow, confidenceFromScores(nil))

	one := []models.SearchCandidate{{Score: 0.7}}
	assert.Equal(t, models.ConfidenceHigh, confidenceFromScores(one))

	highGap := []models.SearchCandidate{{Score: 0.9}, {Score: 0.6}}
	assert.Equal(t, models.ConfidenceHigh, confidenceFromScores(highGap))

	mediumGap := []models.SearchCandidate{{Score: 0.7}, {Score: 0.62}}
	assert.Equal(t, models.ConfidenceMedium, confidenceFromScores(mediumGap))

	lowGap := []models.SearchCandidate{{Score: 0.51}, {Score: 0.50}}
	assert.Equal(t, models.ConfidenceLow, confidenceFromScores(lowGap))
}

func TestLogistic(t *testing.T) {
	assert.InDelta(t, 0.5, logistic(0), 0.0001)
	assert.Greater(t, logistic(1), 0.5)
	assert.Less(t, logistic(-1), 0.5)
}
