// Package html implements the HTML Extractor stage: turning a crawled
// page's rendered HTML into an ExtractedProduct, with a set of ordered
// guardrails that bail out before any expensive parsing when the page
// clearly isn't a usable product page.
package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

var challengePageMarkers = []string{
	"__cf_chl", "cf-challenge", "attention required", "verify you are human",
}

// maxChallengePageLength is the length below which challenge-page
// markers are trusted; a long page containing these phrases in passing
// (e.g. in a blog post about bot detection) is not necessarily blocked.
const maxChallengePageLength = 12000

// ExtractResult is the HTML Extractor's output contract: either Ok with
// a populated Product, or not Ok with a Reason drawn from the extractor's
// failure taxonomy.
type ExtractResult struct {
	Ok      bool
	Reason  models.ExtractFailureReason
	Product models.ExtractedProduct
	Quality float64
}

// Input bundles the HTML Extractor's contract input fields.
type Input struct {
	HTML         string
	SourceURL    string
	MPN          string
	Manufacturer string
}

// distributorMarkers are URL path substrings typical of a product-detail
// page (on a reseller's or a manufacturer's site), used by the non-product
// guardrail as an alternative to an MPN match. They do not decide the
// source type; classifySource does that from distributor host names.
var distributorMarkers = []string{"/product", "/products", "/p/", "/item", "/sku"}

// Extract runs the HTML Extractor stage. It never mutates its Input.
func Extract(in Input) ExtractResult {
	if in.HTML == "" {
		return ExtractResult{Ok: false, Reason: models.ExtractNoHTML}
	}

	if len(in.HTML) < maxChallengePageLength && containsChallengeMarker(in.HTML) {
		return ExtractResult{Ok: false, Reason: models.ExtractBlocked}
	}

	normalizedMPN := normalizeToken(in.MPN)
	normalizedHTML := normalizeToken(in.HTML)
	lowerURL := strings.ToLower(in.SourceURL)

	mpnPresent := normalizedMPN != "" && strings.Contains(normalizedHTML, normalizedMPN)
	distributorShaped := containsAny(lowerURL, distributorMarkers)
	if !mpnPresent && !distributorShaped {
		return ExtractResult{Ok: false, Reason: models.ExtractNonProduct}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(in.HTML))
	if err != nil {
		return ExtractResult{Ok: false, Reason: models.ExtractParseError}
	}

	product := models.ExtractedProduct{
		MPN:          in.MPN,
		Manufacturer: in.Manufacturer,
		SourceURL:    in.SourceURL,
		SourceType:   classifySource(lowerURL),
		Specs:        map[string]string{},
	}

	if product.Manufacturer == "" {
		product.Manufacturer = jsonLDBrand(doc)
	}

	product.DisplayTitle = resolveDisplayTitle(doc)
	product.CanonicalTitle = resolveCanonicalTitle(doc, in.MPN, product.Manufacturer, product.DisplayTitle)

	overview := resolveOverview(doc)
	if overview != "" {
		product.VerbatimSections = append(product.VerbatimSections, models.VerbatimSection{
			Heading: "Overview",
			Text:    overview,
			Source:  in.SourceURL,
		})
	}

	product.Datasheets = extractDatasheets(doc, in.SourceURL)
	product.Images = extractImages(doc, in.SourceURL)

	mergeSpecs(product.Specs, extractTableSpecs(doc))
	mergeSpecs(product.Specs, extractDefinitionListSpecs(doc))

	promoteStructuredData(doc, product.Specs)
	promoteFromDescription(overview, product.Specs)

	quality := qualityScore(product, overview)
	product.Confidence = quality

	if quality < lowQualityThreshold {
		return ExtractResult{Ok: false, Reason: models.ExtractLowQuality, Product: product, Quality: quality}
	}

	return ExtractResult{Ok: true, Product: product, Quality: quality}
}

func classifySource(lowerURL string) models.SourceType {
	if containsAny(lowerURL, []string{"digikey", "mouser", "newark", "alliedelec", "grainger", "rexel", "wesco", "platt", "automationdirect"}) {
		return models.SourceDistributor
	}
	return models.SourceOEM
}

func normalizeToken(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

func containsChallengeMarker(html string) bool {
	lower := strings.ToLower(html)
	return containsAny(lower, challengePageMarkers)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func mergeSpecs(dst, src map[string]string) {
	for k, v := range src {
		if _, exists := dst[k]; !exists {
			dst[k] = v
		}
	}
}
