package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectModels_StandardHyphenated(t *testing.T) {
	text := "MODEL NUMBER M1-1120-3\nSome other line M2-2240-6 appears too"
	models := DetectModels(text)

	assert.Contains(t, models, "M1-1120-3")
	assert.Contains(t, models, "M2-2240-6")
}

func TestDetectModels_SpaceSeparatedCanonicalizesToHyphenated(t *testing.T) {
	text := "M1 1120 3"
	models := DetectModels(text)

	assert.Contains(t, models, "M1-1120-3")
}

func TestDetectModels_HeaderAdjacentOnlyKeepsHyphenatedTokens(t *testing.T) {
	text := "MODEL NUMBER: M1-1120-3 OTHER"
	models := DetectModels(text)

	assert.Contains(t, models, "M1-1120-3")
	assert.NotContains(t, models, "OTHER")
}

func TestDetectModels_DedupesPreservingFirstSeenOrder(t *testing.T) {
	text := "M1-1120-3 appears twice: M1-1120-3 and then M2-2240-6"
	models := DetectModels(text)

	assert.Equal(t, []string{"M1-1120-3", "M2-2240-6"}, models)
}

func TestCanonicalizeModel(t *testing.T) {
	assert.Equal(t, "M1-1120-3", canonicalizeModel("M1 1120 3"))
	assert.Equal(t, "M1-1120-3", canonicalizeModel("M1-1120-3"))
}
