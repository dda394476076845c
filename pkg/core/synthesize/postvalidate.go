package synthesize

import (
	"fmt"
	"strings"

	"github.com/Zareef13/Partly-MVP-V1/pkg/core/utils"
)

const maxSEODescriptionLength = 160

var tldFragments = []string{".com", ".net", ".org", ".io"}

const missingSpecMarker = "Not specified"

const installationDisclaimer = "Installation should follow local electrical codes and be performed by qualified personnel."
const missingSpecDisclaimer = "Some specifications were not provided and are listed as Not specified."

// postValidate applies the post-validation rules in place: the TLD-title
// guard, disclaimer injection, the 160-char SEO hard-truncation, and the
// deterministic overview/short-description fallbacks.
func postValidate(out *rawSynthesis, payload Payload) {
	guardTitleAgainstTLD(out, payload)

	out.Overview = utils.CleanMarkdown(out.Overview)
	out.ShortDescription = utils.CleanMarkdown(out.ShortDescription)
	out.LongDescription = utils.CleanMarkdown(out.LongDescription)
	out.SEODescription = utils.CleanMarkdown(out.SEODescription)

	out.SEODescription = truncateSEODescription(out.SEODescription)

	out.Disclaimers = appendDisclaimerIfMissing(out.Disclaimers, installationDisclaimer)
	if hasMissingSpec(payload.Specs) {
		out.Disclaimers = appendDisclaimerIfMissing(out.Disclaimers, missingSpecDisclaimer)
	}

	if strings.TrimSpace(out.Overview) == "" && len(out.KeyFeatures) >= 4 {
		out.Overview = fallbackOverview(payload, out.KeyFeatures)
	}
	if strings.TrimSpace(out.ShortDescription) == "" && len(out.KeyFeatures) >= 1 {
		out.ShortDescription = fallbackShortDescription(payload, out.KeyFeatures)
	}
}

// guardTitleAgainstTLD replaces a canonical title that is just a site name
// or bare domain (contains a TLD fragment) with "<manufacturer> <mpn>".
func guardTitleAgainstTLD(out *rawSynthesis, payload Payload) {
	lower := strings.ToLower(out.CanonicalTitle)
	for _, tld := range tldFragments {
		if strings.Contains(lower, tld) {
			out.CanonicalTitle = fmt.Sprintf("%s %s", payload.Manufacturer, payload.MPN)
			return
		}
	}
}

func truncateSEODescription(s string) string {
	if len(s) <= maxSEODescriptionLength {
		return s
	}
	return s[:maxSEODescriptionLength]
}

func appendDisclaimerIfMissing(disclaimers []string, disclaimer string) []string {
	for _, d := range disclaimers {
		if d == disclaimer {
			return disclaimers
		}
	}
	return append(disclaimers, disclaimer)
}

func hasMissingSpec(specs map[string]string) bool {
	for _, v := range specs {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || trimmed == missingSpecMarker {
			return true
		}
	}
	return false
}

func fallbackOverview(payload Payload, keyFeatures []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The %s %s delivers ", payload.Manufacturer, payload.MPN)
	b.WriteString(strings.Join(keyFeatures, "; "))
	b.WriteString(".")
	return b.String()
}

func fallbackShortDescription(payload Payload, keyFeatures []string) string {
	return fmt.Sprintf("%s %s — %s.", payload.Manufacturer, payload.MPN, keyFeatures[0])
}
