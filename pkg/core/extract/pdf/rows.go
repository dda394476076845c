package pdf

import (
	"fmt"
	"strings"
)

const minRawRows = 18
const minOverviewLineLength = 50

// RawRow is one in-table line split into its label fragment and the full
// right-hand-side column string, before any per-model mapping.
type RawRow struct {
	Key string
	Raw string
}

// ParsedDocument is everything the row-assembly pass recovers from the
// repaired text, ready for the LLM column-mapping pass.
type ParsedDocument struct {
	DetectedModels []string
	RawRows        []RawRow
	Features       []string
	OverviewText   string
	SidebarBullets []string
}

// labelPrefixRepairs maps PDF column-break fragments — left over after a
// line gets split mid-label by the page layout — to their full spec
// label. This is a small, hand-maintained dictionary; entries are added
// as new datasheet layouts are observed.
var labelPrefixRepairs = map[string]string{
	"Nomi":        "Nominal AC Line Voltage (VRMS)",
	"Freq":        "Frequency Range - USA/Euro Std",
	"Warr":        "Warranty",
	"Encl osure Size": "Enclosure Size (HxWxD)",
	"Max Cont":    "Max Continuous Operating Voltage (VRMS)",
	"Surge":       "Surge Current Rating",
	"Resp":        "Response Time",
	"Clam":        "Clamping Voltage",
	"Oper":        "Operating Temperature Range",
	"Humi":        "Humidity Range",
	"Moun":        "Mounting",
	"Term":        "Termination",
	"Wire":        "Wire Size Range",
	"Dime":        "Dimensions",
	"Weig":        "Weight",
	"Enclosure Rat": "Enclosure Rating",
	"UL List":     "UL Listing",
	"CSA":         "CSA Certification",
	"Agen":        "Agency Approvals",
	"Life":        "Life Expectancy",
	"MTBF":        "MTBF",
	"Inst":        "Installation",
	"SCCR":        "Short-Circuit Current Rating (SCCR)",
	"kAIC":        "Interrupting Rating (kAIC)",
	"Indi":        "Indicator Type",
}

var tableSentinels = []string{"KEY FEATURES", "PAGE 2", "PAGE 3", "UL 1449", "CSA C22.2", "STANDARDS"}

// AssembleRows walks repaired lines, opening a spec table once a "Model
// Number" line with multiple model tokens is seen, and closing it on a
// sentinel heading. Lines outside the table feed the overview/bullets/
// features captures.
func AssembleRows(repairedText string, detectedModels []string) ParsedDocument {
	lines := strings.Split(repairedText, "\n")

	doc := ParsedDocument{DetectedModels: detectedModels}
	inTable := false
	collectingFeatures := false
	var currentFeature strings.Builder

	flushFeature := func() {
		if currentFeature.Len() > 0 {
			doc.Features = append(doc.Features, strings.TrimSpace(currentFeature.String()))
			currentFeature.Reset()
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		upper := strings.ToUpper(trimmed)

		if strings.HasPrefix(upper, "MODEL NUMBER") && countModelTokensIn(trimmed, detectedModels) > 1 {
			inTable = true
			collectingFeatures = false
			continue
		}

		if isSentinel(upper, tableSentinels) {
			inTable = false
		}

		if strings.Contains(upper, "KEY FEATURES") {
			collectingFeatures = true
			inTable = false
			continue
		}

		if inTable {
			key, raw := splitTableLine(trimmed)
			if key != "" {
				doc.RawRows = append(doc.RawRows, RawRow{Key: key, Raw: raw})
			}
			continue
		}

		if collectingFeatures {
			if strings.HasPrefix(trimmed, "•") {
				flushFeature()
				currentFeature.WriteString(strings.TrimSpace(strings.TrimPrefix(trimmed, "•")))
			} else if isContinuationLine(trimmed) && currentFeature.Len() > 0 {
				currentFeature.WriteString(" ")
				currentFeature.WriteString(trimmed)
			} else {
				flushFeature()
				collectingFeatures = false
			}
			continue
		}

		if len(trimmed) > minOverviewLineLength && containsDomainTerm(trimmed) {
			if doc.OverviewText != "" {
				doc.OverviewText += " "
			}
			doc.OverviewText += trimmed
			continue
		}

		if isSidebarBullet(trimmed) {
			doc.SidebarBullets = append(doc.SidebarBullets, trimmed)
		}
	}
	flushFeature()

	doc.Features = dedupPreserveOrder(doc.Features)
	return doc
}

// splitTableLine applies the label-prefix repair dictionary, returning
// the canonical key and the full right-hand-side column string.
func splitTableLine(line string) (string, string) {
	for prefix, full := range labelPrefixRepairs {
		if strings.HasPrefix(line, prefix) {
			return full, strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

func countModelTokensIn(line string, models []string) int {
	count := 0
	for _, m := range models {
		if strings.Contains(line, m) {
			count++
		}
	}
	return count
}

func isSentinel(upper string, sentinels []string) bool {
	for _, s := range sentinels {
		if strings.Contains(upper, s) {
			return true
		}
	}
	return false
}

var domainTerms = []string{"surge", "spd", "isolates", "downline", "equipment", "panels"}

func containsDomainTerm(line string) bool {
	lower := strings.ToLower(line)
	for _, term := range domainTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

var sidebarCalloutTerms = []string{"spd", "sccr", "kaic", "type 1", "type 2"}

// isSidebarBullet recognizes a safety/callout line: it ends with "!" and
// references one of the sidebar callout terms.
func isSidebarBullet(line string) bool {
	if !strings.HasSuffix(line, "!") {
		return false
	}
	lower := strings.ToLower(line)
	for _, term := range sidebarCalloutTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// isContinuationLine identifies a feature-bullet continuation: indented
// (leading whitespace trimmed away earlier, so we instead check for a
// lowercase-starting line) rather than a new top-level sentence.
func isContinuationLine(line string) bool {
	if line == "" {
		return false
	}
	first := rune(line[0])
	return first >= 'a' && first <= 'z'
}

// CheckRowCountGate throws when fewer than 18 raw rows survived parsing.
func CheckRowCountGate(doc ParsedDocument) error {
	if len(doc.RawRows) < minRawRows {
		return fmt.Errorf("pdf row-count gate failed: only %d rows parsed (need >= %d)", len(doc.RawRows), minRawRows)
	}
	return nil
}
