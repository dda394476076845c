package pipeline

import "github.com/Zareef13/Partly-MVP-V1/pkg/models"

// Final confidence blend weights: discovery 25%, crawl 20%, extraction
// 30%, synthesis 25%.
const (
	discoveryWeight  = 0.25
	crawlWeight      = 0.20
	extractionWeight = 0.30
	synthesisWeight  = 0.25
)

// usableThreshold is the confidence floor above which a FinalResult is
// usable.
const usableThreshold = 0.65

// tier1CrawlConfidence and tier2CrawlConfidence are the crawl-confidence
// inputs to the blend: 0.85 when Tier-1 (cheap fetch) succeeded, 0.6
// otherwise (Tier-2 headless escalation was used).
const (
	tier1CrawlConfidence = 0.85
	tier2CrawlConfidence = 0.6
)

// discoveryConfidenceScore maps Discovery's coarse {high,medium,low}
// rating onto the numeric scale the blend formula uses.
func discoveryConfidenceScore(c models.Confidence) float64 {
	switch c {
	case models.ConfidenceHigh:
		return 0.9
	case models.ConfidenceMedium:
		return 0.6
	default:
		return 0.3
	}
}

// crawlConfidenceScore maps a CrawlResult onto the blend's crawl term.
func crawlConfidenceScore(usedHeadless bool) float64 {
	if usedHeadless {
		return tier2CrawlConfidence
	}
	return tier1CrawlConfidence
}

// blend computes the final confidence: 0.25*dc + 0.20*cc + 0.30*ec + 0.25*sc.
func blend(dc, cc, ec, sc float64) float64 {
	return discoveryWeight*dc + crawlWeight*cc + extractionWeight*ec + synthesisWeight*sc
}

func usable(confidence float64) bool {
	return confidence >= usableThreshold
}
