package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBalancedJSON_PlainObject(t *testing.T) {
	out, err := ExtractBalancedJSON(`{"a": 1}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, out)
}

func TestExtractBalancedJSON_FencedWithLeadingProse(t *testing.T) {
	input := "Here is the JSON:\n```json\n{\"a\": {\"b\": 1}}\n```"
	out, err := ExtractBalancedJSON(input)
	require.NoError(t, err)
	assert.Equal(t, `{"a": {"b": 1}}`, out)
}

func TestExtractBalancedJSON_BracesInsideStringDoNotAffectDepth(t *testing.T) {
	out, err := ExtractBalancedJSON(`{"note": "use { and } carefully"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"note": "use { and } carefully"}`, out)
}

func TestExtractBalancedJSON_NoBraceErrors(t *testing.T) {
	_, err := ExtractBalancedJSON("just some text")
	assert.Error(t, err)
}

func TestExtractBalancedJSON_UnbalancedErrors(t *testing.T) {
	_, err := ExtractBalancedJSON(`{"a": 1`)
	assert.Error(t, err)
}

func TestSanitizeBareTokens_QuotesKnownBareWords(t *testing.T) {
	out := SanitizeBareTokens(`{"a": N/A, "b":TBD}`)
	assert.Equal(t, `{"a": "N/A", "b":"TBD"}`, out)
}

func TestSanitizeBareTokens_LeavesOtherTextUnchanged(t *testing.T) {
	out := SanitizeBareTokens(`{"a": "fine"}`)
	assert.Equal(t, `{"a": "fine"}`, out)
}

func TestSmartParse_FallsBackToRepairOnTrailingComma(t *testing.T) {
	var target map[string]string
	parsed, err := SmartParse(`{"a": "1",}`, &target)
	require.NoError(t, err)
	assert.NotEmpty(t, parsed)
	assert.Equal(t, "1", target["a"])
}

func TestSmartParse_AllStrategiesFail(t *testing.T) {
	var target map[string]string
	_, err := SmartParse("not json in any dialect !!!", &target)
	assert.Error(t, err)
}

func TestParseHJSON_UnquotedKeysAndComments(t *testing.T) {
	out, err := ParseHJSON("{\n  # a comment\n  model: M1-1120-3\n}")
	require.NoError(t, err)
	assert.Contains(t, out, `"model":"M1-1120-3"`)
}
