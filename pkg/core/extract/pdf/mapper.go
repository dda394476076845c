package pdf

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Zareef13/Partly-MVP-V1/pkg/core/llm"
	"github.com/Zareef13/Partly-MVP-V1/pkg/core/utils"
)

// MappingResult is the LLM column-mapper's strict JSON contract: the
// target model plus its spec values, with null preserved for N/A.
type MappingResult struct {
	Model string             `json:"model"`
	Specs map[string]*string `json:"specs"`
}

// MapColumn sends the assembled raw rows, plus the full detected model
// list, to an LLM and asks it to extract only targetModel's column. If
// targetModel is empty, the first detected model is used.
func MapColumn(ctx context.Context, provider llm.Provider, doc ParsedDocument, targetModel string) (*MappingResult, error) {
	if targetModel == "" {
		if len(doc.DetectedModels) == 0 {
			return nil, fmt.Errorf("no target model provided and none detected")
		}
		targetModel = doc.DetectedModels[0]
	}

	systemPrompt, userPrompt := buildMappingPrompt(doc, targetModel)

	response, err := provider.GenerateStructured(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("LLM column-mapping call failed: %w", err)
	}

	return parseMappingResponse(response)
}

func buildMappingPrompt(doc ParsedDocument, targetModel string) (string, string) {
	systemPrompt := "You are an electrical-parts datasheet analyst. Map raw datasheet rows to a single model's specification values, preserving units exactly as written."

	var rows strings.Builder
	for _, row := range doc.RawRows {
		rows.WriteString(fmt.Sprintf("%s: %s\n", row.Key, row.Raw))
	}

	userPrompt := fmt.Sprintf(`The datasheet lists these models: %s

Extract ONLY the column for model %q from the rows below. Normalize spec names.
Preserve units exactly as written. If a value is not applicable or missing for
this model, return null for that key.

RAW ROWS:
%s

Output strict JSON:
{
  "model": %q,
  "specs": {"<normalized key>": "<value with unit>" | null}
}`, strings.Join(doc.DetectedModels, ", "), targetModel, rows.String(), targetModel)

	return systemPrompt, userPrompt
}

func parseMappingResponse(response string) (*MappingResult, error) {
	jsonStr, err := utils.ExtractBalancedJSON(response)
	if err != nil {
		return nil, fmt.Errorf("no JSON found in LLM response: %w", err)
	}

	var result MappingResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err == nil {
		return &result, nil
	}

	sanitized := utils.SanitizeBareTokens(jsonStr)
	if err := json.Unmarshal([]byte(sanitized), &result); err == nil {
		return &result, nil
	}

	if _, err := utils.SmartParse(sanitized, &result); err != nil {
		return nil, fmt.Errorf("failed to parse LLM column-mapping response: %w", err)
	}

	return &result, nil
}
