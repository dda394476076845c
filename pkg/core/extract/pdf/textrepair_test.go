package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_UnicodeDashesAndWhitespace(t *testing.T) {
	raw := "Model‑Number:   M1–1120‑3\nClamping Voltage:\t\t600V"
	got := NormalizeText(raw)

	assert.Equal(t, "Model-Number: M1-1120-3\nClamping Voltage: 600V", got)
}

func TestNormalizeText_PreservesLineBreaks(t *testing.T) {
	raw := "line one\nline two\nline three"
	assert.Equal(t, raw, NormalizeText(raw))
}

func TestRepairColumnFractures_InsertsSpaceBetweenLabelAndModel(t *testing.T) {
	repaired := RepairColumnFractures("Model NumberM1-1120-3")
	assert.Equal(t, "Model Number M1-1120-3", repaired)
}

func TestRepairColumnFractures_DigitPrefixedModel(t *testing.T) {
	repaired := RepairColumnFractures("Rating 1M1-1120-3")
	assert.Equal(t, "Rating 1 M1-1120-3", repaired)
}

func TestRepairColumnFractures_NoFractureLeavesTextUnchanged(t *testing.T) {
	text := "Model Number M1-1120-3"
	assert.Equal(t, text, RepairColumnFractures(text))
}
