package discovery

import (
	"math"
	"sort"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

// Fixed, hand-initialized scoring weights, one per feature in the order
// (mpnInUrl, mpnInTitle, mfgInText, productPath, domainTrust, junkPath).
// Formula: score = logistic(w . centeredFeatures + bias), bias = 0.
var rankWeights = [6]float64{4.2, 3.4, 2.6, 2.0, 1.6, -3.8}

const rankBias = 0.0

// Confidence separation thresholds: the gap between the top two scores,
// not their absolute value, decides confidence.
const (
	highSeparationGap   = 0.15
	mediumSeparationGap = 0.05
)

// rankCandidates centers each feature across the candidate set, applies
// the fixed linear combination, squashes with the logistic function, and
// sorts candidates descending by score. Candidates with identical feature
// vectors receive identical scores; ties break by original insertion
// order (stable sort).
func rankCandidates(candidates []models.SearchCandidate) []models.SearchCandidate {
	if len(candidates) == 0 {
		return candidates
	}

	means := meanFeatures(candidates)

	for i := range candidates {
		fv := candidates[i].Features
		centered := [6]float64{
			fv.MPNInURL - means[0],
			fv.MPNInTitle - means[1],
			fv.MfgInText - means[2],
			fv.ProductPath - means[3],
			fv.DomainTrust - means[4],
			fv.JunkPath - means[5],
		}

		linear := rankBias
		for j := 0; j < 6; j++ {
			linear += rankWeights[j] * centered[j]
		}
		candidates[i].Score = logistic(linear)
	}

	stableSortDescending(candidates)
	return candidates
}

func meanFeatures(candidates []models.SearchCandidate) [6]float64 {
	var sum [6]float64
	n := float64(len(candidates))
	for _, c := range candidates {
		sum[0] += c.Features.MPNInURL
		sum[1] += c.Features.MPNInTitle
		sum[2] += c.Features.MfgInText
		sum[3] += c.Features.ProductPath
		sum[4] += c.Features.DomainTrust
		sum[5] += c.Features.JunkPath
	}
	for i := range sum {
		sum[i] /= n
	}
	return sum
}

func logistic(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// stableSortDescending sorts by Score descending, preserving relative
// order among equal scores (insertion-order tie-break).
func stableSortDescending(candidates []models.SearchCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}

// confidenceFromScores derives discovery confidence from the separation
// between the top two scores: a single candidate is always high
// confidence; otherwise the gap against design-constant thresholds.
func confidenceFromScores(ranked []models.SearchCandidate) models.Confidence {
	if len(ranked) == 0 {
		return models.ConfidenceLow
	}
	if len(ranked) == 1 {
		return models.ConfidenceHigh
	}

	gap := ranked[0].Score - ranked[1].Score
	switch {
	case gap > highSeparationGap:
		return models.ConfidenceHigh
	case gap > mediumSeparationGap:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
