// Package crawler implements the pipeline's second stage: turning a URL
// into rendered HTML via a cheap HTTP fetch, escalating to a headless
// browser only when the cheap fetch can't be trusted.
package crawler

import (
	"regexp"
	"strings"
)

const (
	minValidHTMLLength  = 1000
	minUsableHTMLLength = 8000
	minMPNTokens        = 5
	minProductCards     = 3
	minNavElements      = 2
)

var challengeMarkers = []string{"enable javascript", "captcha"}

var mpnTokenPattern = regexp.MustCompile(`\b[A-Z]{1,4}[-\d][A-Z0-9-]{2,}\b`)

var productGridPhrases = []string{"featured products", "categories", "shop by"}

// isHTMLValid reports the minimal bar for a response body being usable
// HTML at all: long enough, and free of the markers a bot-challenge page
// leaves behind.
func isHTMLValid(body string) bool {
	if len(body) < minValidHTMLLength {
		return false
	}
	lower := strings.ToLower(body)
	for _, marker := range challengeMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

// looksLikeHomepage applies the homepage heuristic: at least two nav
// elements and either marketing grid phrasing or several product-card
// class occurrences.
func looksLikeHomepage(lower string) bool {
	navCount := strings.Count(lower, "<nav")
	if navCount < minNavElements {
		return false
	}

	for _, phrase := range productGridPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	return strings.Count(lower, "product-card") >= minProductCards
}

// hasSpecMarkup reports whether the page contains recognizable spec
// markup: the words "specification"/"technical data", a table, or a
// definition list.
func hasSpecMarkup(lower string) bool {
	if strings.Contains(lower, "specification") || strings.Contains(lower, "technical data") {
		return true
	}
	if strings.Contains(lower, "<table") {
		return true
	}
	if strings.Contains(lower, "<dl") {
		return true
	}
	return false
}

// hasDatasheetLink reports whether a ".pdf" occurs near "datasheet" or
// "download" text, a loose textual proximity check rather than a DOM walk.
func hasDatasheetLink(lower string) bool {
	if !strings.Contains(lower, ".pdf") {
		return false
	}
	return strings.Contains(lower, "datasheet") || strings.Contains(lower, "download")
}

// looksLikeProductPage applies the product-page-shape check: not
// homepage-like, has a heading, and has either spec markup or a
// datasheet link.
func looksLikeProductPage(body string) bool {
	lower := strings.ToLower(body)

	if looksLikeHomepage(lower) {
		return false
	}
	if !strings.Contains(lower, "<h1") && !strings.Contains(lower, "<title") {
		return false
	}

	return hasSpecMarkup(lower) || hasDatasheetLink(lower)
}

// isUsableSignal applies the usable-signal shape: long enough, and either
// table/def-list markup, a PDF with datasheet/manual wording, or at least
// five MPN-like tokens.
func isUsableSignal(body string) bool {
	if len(body) <= minUsableHTMLLength {
		return false
	}
	lower := strings.ToLower(body)

	if strings.Contains(lower, "<table") || strings.Contains(lower, "<dl") {
		return true
	}
	if strings.Contains(lower, ".pdf") && (strings.Contains(lower, "datasheet") || strings.Contains(lower, "manual")) {
		return true
	}

	return len(mpnTokenPattern.FindAllString(body, minMPNTokens)) >= minMPNTokens
}

// passesTier1 bundles the three Tier-1 validation checks: HTML-validity,
// product-page shape, and usable-signal shape.
func passesTier1(body string) bool {
	return isHTMLValid(body) && looksLikeProductPage(body) && isUsableSignal(body)
}
