package synthesize

import (
	"encoding/json"
	"fmt"

	"github.com/Zareef13/Partly-MVP-V1/pkg/core/utils"
)

// rawSynthesis is the LLM's strict JSON contract, parsed before
// post-validation and confidence scoring are applied.
type rawSynthesis struct {
	CanonicalTitle   string   `json:"canonicalTitle"`
	DisplayTitle     string   `json:"displayTitle"`
	KeyFeatures      []string `json:"keyFeatures"`
	Overview         string   `json:"overview"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	BulletHighlights []string `json:"bulletHighlights"`
	SEODescription   string   `json:"seoDescription"`
	Disclaimers      []string `json:"disclaimers"`
}

// parseResponse applies the tolerant-JSON recipe: strip BOM and fenced
// code blocks, locate the first balanced-brace object, parse it; on
// failure sanitize bare-word tokens and retry; raise if still invalid.
func parseResponse(response string) (*rawSynthesis, error) {
	jsonStr, err := utils.ExtractBalancedJSON(response)
	if err != nil {
		return nil, fmt.Errorf("no JSON object found in synthesis response: %w", err)
	}

	var parsed rawSynthesis
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err == nil {
		return &parsed, nil
	}

	sanitized := utils.SanitizeBareTokens(jsonStr)
	if err := json.Unmarshal([]byte(sanitized), &parsed); err == nil {
		return &parsed, nil
	}

	if _, err := utils.SmartParse(sanitized, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse synthesis LLM response as JSON: %w", err)
	}

	return &parsed, nil
}
