package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize_KnownAliasesCollapseToCanonicalForm(t *testing.T) {
	assert.Equal(t, "System Voltage", Canonicalize("Voltage"))
	assert.Equal(t, "System Voltage", Canonicalize("system voltage"))
	assert.Equal(t, "Max Continuous Operating Voltage (VRMS)", Canonicalize("Max Continuous Operating Voltage"))
}

func TestCanonicalize_UnknownKeyPassesThroughUnchanged(t *testing.T) {
	assert.Equal(t, "Some Unmapped Spec", Canonicalize("Some Unmapped Spec"))
}

func TestCanonicalize_IsIdempotent(t *testing.T) {
	once := Canonicalize("voltage")
	twice := Canonicalize(once)
	assert.Equal(t, once, twice)
}
