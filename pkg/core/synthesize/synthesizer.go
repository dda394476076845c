package synthesize

import (
	"context"
	"fmt"
	"strings"

	"github.com/Zareef13/Partly-MVP-V1/pkg/core/llm"
	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

// Synthesize implements the Synthesizer stage contract: build a
// fact-only payload from product, call the LLM under a strict
// fact-grounded prompt, tolerantly parse its JSON response, post-validate
// and score it, and return a SynthesisOutput. Throws only on malformed
// LLM JSON or a provider-level HTTP failure.
func Synthesize(ctx context.Context, provider llm.Provider, product models.NormalizedProduct) (models.SynthesisOutput, error) {
	payload := BuildPayload(product)

	prompt, err := buildPrompt(payload)
	if err != nil {
		return models.SynthesisOutput{}, err
	}

	response, err := provider.GenerateStructured(ctx, systemPrompt, prompt)
	if err != nil {
		return models.SynthesisOutput{}, fmt.Errorf("synthesis LLM call failed: %w", err)
	}

	raw, err := parseResponse(response)
	if err != nil {
		return models.SynthesisOutput{}, err
	}

	enforceGrounding(raw, payload)
	postValidate(raw, payload)
	score := contentConfidence(raw, payload)

	return models.SynthesisOutput{
		CanonicalTitle:   raw.CanonicalTitle,
		DisplayTitle:     raw.DisplayTitle,
		KeyFeatures:      raw.KeyFeatures,
		Overview:         raw.Overview,
		ShortDescription: raw.ShortDescription,
		LongDescription:  raw.LongDescription,
		BulletHighlights: raw.BulletHighlights,
		SEODescription:   raw.SEODescription,
		Disclaimers:      raw.Disclaimers,
		Confidence:       score,
	}, nil
}

// enforceGrounding drops any "Label: Value" keyFeature whose Label is not
// present, as-is, in the input specs map. The prompt instructs the model
// not to invent labels; this is the backstop that holds regardless of
// what the model actually returns.
func enforceGrounding(out *rawSynthesis, payload Payload) {
	grounded := make([]string, 0, len(out.KeyFeatures))
	for _, kf := range out.KeyFeatures {
		label, _, found := strings.Cut(kf, ":")
		if !found {
			continue
		}
		if _, ok := payload.Specs[strings.TrimSpace(label)]; ok {
			grounded = append(grounded, kf)
		}
	}
	out.KeyFeatures = grounded
}
