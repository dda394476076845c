package synthesize

import (
	"encoding/json"
	"fmt"
	"strings"
)

// systemPrompt is the fact-grounded contract every synthesis call sends.
// Mirrors the teacher's table_mapper_agent.go fallback-to-hardcoded-prompt
// style: one literal template, no prompt-library indirection, since this
// domain has exactly one synthesis prompt shape.
const systemPrompt = `You are a technical copywriter for an industrial electrical parts catalog.
You write ONLY from the facts given to you. You never invent specification
values, certifications, category terms, or numeric facts that are not present
in the input. If the input is sparse, write sparse, honest copy rather than
padding it with invented detail. Multi-paragraph overviews are fine when the
input's verbatim descriptors are rich; otherwise keep it brief.`

// buildPrompt renders the fact-only Payload into the user turn of the
// synthesis call and states the strict output contract.
func buildPrompt(payload Payload) (string, error) {
	factsJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal synthesis payload: %w", err)
	}

	var b strings.Builder
	b.WriteString("FACTS (the only information you may draw on):\n")
	b.Write(factsJSON)
	b.WriteString(`

Produce a single JSON object with exactly these fields:
{
  "canonicalTitle": "<product title, must reference the MPN or manufacturer>",
  "displayTitle": "<short display title>",
  "keyFeatures": ["<Label: Value>", ...],
  "overview": "<prose, may be multiple paragraphs if facts are rich>",
  "shortDescription": "<one sentence>",
  "longDescription": "<prose>",
  "bulletHighlights": ["<short bullet>", ...],
  "seoDescription": "<160 characters or fewer>",
  "disclaimers": ["<disclaimer>", ...]
}

Rules:
- Every "Label: Value" string in keyFeatures MUST use a Label that appears
  exactly as a key in the facts' specs map. Do not invent labels.
- Never state a numeric value that does not appear in the facts.
- disclaimers may be an empty array; the caller appends standard ones.
- Output strict JSON only, no markdown fencing, no commentary.`)

	return b.String(), nil
}
