package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON errors from LLM outputs.
// Uses github.com/RealAlexandreAI/json-repair for intelligent repair.
// Supported repairs:
// - Missing quotes around keys
// - Single quotes instead of double quotes
// - Unclosed arrays/objects
// - TRUE/FALSE/Null instead of true/false/null
// - Trailing commas
// - Comments in JSON
// - Leading/trailing whitespace and markdown code blocks
func RepairJSON(malformedJSON string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformedJSON)
	if err != nil {
		return "", fmt.Errorf("JSON_REPAIR_FAILED: %v", err)
	}
	return repaired, nil
}

// ParseHJSON parses Human-friendly JSON (Hjson) and returns standard JSON.
// Hjson supports:
// - Comments (# // /* */)
// - Unquoted keys
// - Unquoted strings
// - Optional commas
// - Multiline strings
//
// This is perfect for parsing human-written configuration or lenient LLM outputs.
func ParseHJSON(hjsonData string) (string, error) {
	var result interface{}
	err := hjson.Unmarshal([]byte(hjsonData), &result)
	if err != nil {
		return "", fmt.Errorf("HJSON_PARSE_ERROR: %v", err)
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("JSON_MARSHAL_ERROR: %v", err)
	}

	return string(jsonBytes), nil
}

// SmartParse tries multiple parsing strategies to extract valid JSON into
// schema. Order of attempts:
// 1. Standard JSON parse
// 2. JSON repair
// 3. Hjson parse (most lenient)
func SmartParse(input string, schema interface{}) (string, error) {
	if err := json.Unmarshal([]byte(input), schema); err == nil {
		return input, nil
	}

	repaired, err := RepairJSON(input)
	if err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return repaired, nil
		}
	}

	hjsonResult, err := ParseHJSON(input)
	if err == nil {
		if err := json.Unmarshal([]byte(hjsonResult), schema); err == nil {
			return hjsonResult, nil
		}
	}

	return "", fmt.Errorf("SMART_PARSE_FAILED: all parsing strategies failed for input")
}

// ExtractBalancedJSON locates the first complete, brace-balanced JSON
// object in text, tolerating leading prose, a UTF-8 BOM, and fenced code
// blocks (```json ... ``` or ``` ... ```) around it. It returns an error
// if no balanced object is found.
func ExtractBalancedJSON(text string) (string, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	text = stripCodeFence(text)

	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", fmt.Errorf("EXTRACT_JSON_FAILED: no '{' found in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// inside a string literal, braces don't count
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("EXTRACT_JSON_FAILED: unbalanced braces in response")
}

// stripCodeFence removes a single outer ```...``` or ```json...``` wrapper.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.LastIndex(trimmed, "```"); idx != -1 {
		trimmed = trimmed[:idx]
	}
	return trimmed
}

// SanitizeBareTokens quotes common un-quoted bare-word tokens that LLMs
// sometimes leave in JSON values or inside JSON arrays (e.g. a stray N/A or
// TBD token used in place of a quoted string or null), turning N/A into
// "N/A", so that a second parse attempt can succeed. It is intentionally
// conservative: it only touches tokens that are clearly not valid JSON
// literals.
func SanitizeBareTokens(jsonText string) string {
	replacer := strings.NewReplacer(
		": N/A", `: "N/A"`,
		": TBD", `: "TBD"`,
		":N/A", `:"N/A"`,
		":TBD", `:"TBD"`,
		"[N/A", `["N/A"`,
		"[TBD", `["TBD"`,
		", N/A", `, "N/A"`,
		", TBD", `, "TBD"`,
		",N/A", `,"N/A"`,
		",TBD", `,"TBD"`,
	)
	return replacer.Replace(jsonText)
}
