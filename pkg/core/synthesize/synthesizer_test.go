package synthesize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

// fakeProvider returns a scripted response string, ignoring the prompt
// content, so the parse/ground/validate pipeline can be exercised without
// a live LLM call.
type fakeProvider struct {
	response string
	err      error
}

func (f *fakeProvider) GenerateStructured(_ context.Context, _, _ string) (string, error) {
	return f.response, f.err
}

func TestSynthesize_GroundedKeyFeaturesSurvive(t *testing.T) {
	provider := &fakeProvider{response: `{
		"canonicalTitle": "M1-1120-3 Surge Protection Device",
		"displayTitle": "M1-1120-3",
		"keyFeatures": ["System Voltage: 120/240V", "Fabricated Spec: invented"],
		"overview": "Protects downline equipment.",
		"shortDescription": "Surge protection for panels.",
		"seoDescription": "Short SEO text",
		"disclaimers": []
	}`}

	product := models.NormalizedProduct{
		MPN:          "M1-1120-3",
		Manufacturer: "Acme",
		Specs: map[string]models.SpecValue{
			"System Voltage": {Value: "120/240V"},
		},
	}

	out, err := Synthesize(context.Background(), provider, product)
	require.NoError(t, err)

	assert.Equal(t, []string{"System Voltage: 120/240V"}, out.KeyFeatures, "ungrounded label must be dropped")
	assert.Contains(t, out.Disclaimers, installationDisclaimer)
}

func TestSynthesize_ProviderErrorPropagates(t *testing.T) {
	provider := &fakeProvider{err: assert.AnError}

	_, err := Synthesize(context.Background(), provider, models.NormalizedProduct{MPN: "M1-1120-3"})
	assert.Error(t, err)
}

func TestSynthesize_MalformedJSONErrors(t *testing.T) {
	provider := &fakeProvider{response: "not json at all"}

	_, err := Synthesize(context.Background(), provider, models.NormalizedProduct{MPN: "M1-1120-3"})
	assert.Error(t, err)
}
