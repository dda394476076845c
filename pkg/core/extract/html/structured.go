package html

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// bcDataPattern locates an embedded "var BCData = {...}" (or similarly
// assigned) blob inside an inline <script> tag.
var bcDataPattern = regexp.MustCompile(`BCData\s*=\s*(\{.*?\})\s*;?\s*(?:</script>|$)`)

type bcDataPayload struct {
	ProductAttributes struct {
		Weight struct {
			Formatted string `json:"formatted"`
		} `json:"weight"`
		SKU string `json:"sku"`
	} `json:"product_attributes"`
}

// promoteStructuredData scans inline scripts for an embedded BCData blob,
// promoting its weight and SKU into specs when the corresponding key isn't
// already present. JSON-LD Product blocks are not read here.
func promoteStructuredData(doc *goquery.Document, specs map[string]string) {
	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		content := sel.Text()
		if m := bcDataPattern.FindStringSubmatch(content); m != nil {
			var payload bcDataPayload
			if err := json.Unmarshal([]byte(m[1]), &payload); err == nil {
				if payload.ProductAttributes.Weight.Formatted != "" {
					insertIfAbsent(specs, "Weight", payload.ProductAttributes.Weight.Formatted)
				}
				if payload.ProductAttributes.SKU != "" {
					insertIfAbsent(specs, "SKU", payload.ProductAttributes.SKU)
				}
			}
		}
	})
}

// jsonLDProduct is the subset of schema.org Product fields this extractor
// reads from a <script type="application/ld+json"> block.
type jsonLDProduct struct {
	Type        string `json:"@type"`
	Description string `json:"description"`
	Brand       struct {
		Name string `json:"name"`
	} `json:"brand"`
}

// jsonLDDescription returns the description field of the first JSON-LD
// Product block found, URI-decoded when possible.
func jsonLDDescription(doc *goquery.Document) string {
	description, _ := firstJSONLDProduct(doc)
	return description
}

// jsonLDBrand returns brand.name of the first JSON-LD Product block found,
// or "" when absent. The source's own Product block silently dropped
// brand.name even when present; per the design note on JSON-LD
// manufacturer handling, this is deliberately not replicated — brand.name
// is threaded through as a manufacturer fallback instead of being
// discarded.
func jsonLDBrand(doc *goquery.Document) string {
	_, brand := firstJSONLDProduct(doc)
	return brand
}

// firstJSONLDProduct scans every <script type="application/ld+json">
// block for the first schema.org Product entry and returns its
// description (URI-decoded when possible) and brand.name.
func firstJSONLDProduct(doc *goquery.Document) (description, brand string) {
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var product jsonLDProduct
		if err := json.Unmarshal([]byte(sel.Text()), &product); err != nil {
			return true
		}
		if !strings.Contains(product.Type, "Product") {
			return true
		}
		if product.Description != "" {
			if decoded, err := url.QueryUnescape(product.Description); err == nil {
				description = decoded
			} else {
				description = product.Description
			}
		}
		brand = strings.TrimSpace(product.Brand.Name)
		return false
	})
	return description, brand
}

// descriptionPromotionRules are the deterministic regex-to-spec
// promotions run over the page's overview text (meta description, else the
// JSON-LD Product description). This promoter is scoped to SurgePure-shaped
// surge-protection descriptions via surgeDescriptionHints; a reimplementation
// covering other product families should add its own rule set rather than
// silently widen this one (see design notes on description promotion).
var descriptionPromotionRules = []struct {
	pattern *regexp.Regexp
	key     string
	value   func(match []string) string
}{
	{regexp.MustCompile(`(\d{3}/\d{3}V)`), "System Voltage", func(m []string) string {
		return strings.Replace(m[1], "V", " V", 1)
	}},
	{regexp.MustCompile(`(?i)single[\s-]phase`), "Phase", func(m []string) string { return "Single Phase" }},
	{regexp.MustCompile(`(\d{2,4})\s?A\b`), "Max Service Size", func(m []string) string { return m[1] + " A" }},
	{regexp.MustCompile(`(?i)downline|sub-panel`), "Application", func(m []string) string { return "Downline / Sub-panel Protection" }},
	{regexp.MustCompile(`(?i)surge protection`), "Product Type", func(m []string) string { return "Surge Protection Device" }},
}

// surgeDescriptionHints detects surge-protection copy (surge, SPD,
// downline or sub-panel markers); descriptions without it are not promoted.
var surgeDescriptionHints = regexp.MustCompile(`(?i)surge|\bspd\b|downline|sub-panel`)

// promoteFromDescription applies the deterministic regex promoter over
// description text, only filling keys that are still absent. It does
// nothing unless surgeDescriptionHints matches the description.
func promoteFromDescription(description string, specs map[string]string) {
	if description == "" || !surgeDescriptionHints.MatchString(description) {
		return
	}
	for _, rule := range descriptionPromotionRules {
		if _, exists := specs[rule.key]; exists {
			continue
		}
		if m := rule.pattern.FindStringSubmatch(description); m != nil {
			specs[rule.key] = rule.value(m)
		}
	}
}

func insertIfAbsent(specs map[string]string, key, value string) {
	if _, exists := specs[key]; !exists {
		specs[key] = value
	}
}
