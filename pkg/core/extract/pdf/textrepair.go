package pdf

import (
	"regexp"
	"strings"
)

var unicodeDashes = strings.NewReplacer(
	"‐", "-", "‑", "-", "‒", "-", "–", "-", "—", "-", "―", "-",
	" ", " ",
)

var whitespaceRun = regexp.MustCompile(`[ \t]+`)

// columnFractureRepairs insert a space between a fused label/value pair,
// e.g. "Model NumberM1-1120-3" -> "Model Number M1-1120-3", by matching a
// trailing lowercase letter or digit directly followed by a model-token
// prefix.
var columnFractureRepairs = []*regexp.Regexp{
	regexp.MustCompile(`([a-z])([A-Z]{1,3}\d?-\d{3,4})`),
	regexp.MustCompile(`(\d)([A-Z]{1,3}\d?-\d{3,4})`),
}

// NormalizeText converts unicode dashes to ASCII hyphens, non-breaking
// spaces to ordinary spaces, and collapses runs of horizontal whitespace
// while preserving line breaks.
func NormalizeText(raw string) string {
	normalized := unicodeDashes.Replace(raw)

	lines := strings.Split(normalized, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(whitespaceRun.ReplaceAllString(line, " "), " ")
	}
	return strings.Join(lines, "\n")
}

// RepairColumnFractures inserts a space between a trailing letter/digit
// and a following model-token prefix, undoing the PDF extractor's
// tendency to fuse adjacent table cells into one token.
func RepairColumnFractures(text string) string {
	repaired := text
	for _, pattern := range columnFractureRepairs {
		repaired = pattern.ReplaceAllString(repaired, "$1 $2")
	}
	return repaired
}
