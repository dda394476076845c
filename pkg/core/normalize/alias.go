// Package normalize implements the Normalizer stage: merging every
// ExtractedProduct gathered for an MPN into one NormalizedProduct, with
// alias collapsing, confidence-weighted precedence, and the RA variant
// overlay.
package normalize

import "strings"

// specAliases collapses semantically duplicate spec keys to a single
// canonical form. This is a small, hand-maintained static table — per
// the design note on spec aliasing, a reimplementation should treat this
// as a config surface rather than inlined logic, but the data itself
// stays a literal Go table since there is no runtime-reload requirement.
var specAliases = map[string]string{
	"system voltage":                  "System Voltage",
	"voltage":                         "System Voltage",
	"nominal ac line voltage vrms":    "Nominal AC Line Voltage (VRMS)",
	"nominal ac line voltage (vrms)":  "Nominal AC Line Voltage (VRMS)",
	"max continuous operating voltage vrms": "Max Continuous Operating Voltage (VRMS)",
	"max continuous operating voltage":      "Max Continuous Operating Voltage (VRMS)",
	"frequency":                       "Frequency Range - USA/Euro Std",
	"frequency range":                 "Frequency Range - USA/Euro Std",
	"warranty period":                 "Warranty",
	"enclosure":                       "Enclosure Size (HxWxD)",
	"enclosure dimensions":            "Enclosure Size (HxWxD)",
	"operating temp":                  "Operating Temperature Range",
	"operating temperature":           "Operating Temperature Range",
	"humidity":                        "Humidity Range",
	"mounting type":                   "Mounting",
	"termination type":                "Termination",
	"wire size":                       "Wire Size Range",
	"dimension":                       "Dimensions",
	"weight":                          "Weight",
	"sku":                             "SKU",
	"ul listing":                      "UL Listing",
	"csa certification":               "CSA Certification",
	"agency approval":                 "Agency Approvals",
	"sccr":                            "Short-Circuit Current Rating (SCCR)",
	"kaic":                            "Interrupting Rating (kAIC)",
	"response time":                   "Response Time",
	"clamping voltage":                "Clamping Voltage",
}

// Canonicalize applies the alias map to a spec key. It is idempotent:
// Canonicalize(Canonicalize(k)) == Canonicalize(k).
func Canonicalize(key string) string {
	lookupKey := strings.ToLower(strings.TrimSpace(key))
	if canonical, ok := specAliases[lookupKey]; ok {
		return canonical
	}
	return key
}
