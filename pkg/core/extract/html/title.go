package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resolveDisplayTitle picks the first non-empty of OpenGraph title,
// Twitter title, first h1, document title.
func resolveDisplayTitle(doc *goquery.Document) string {
	if v := metaContent(doc, "property", "og:title"); v != "" {
		return v
	}
	if v := metaContent(doc, "name", "twitter:title"); v != "" {
		return v
	}
	if v := strings.TrimSpace(doc.Find("h1").First().Text()); v != "" {
		return v
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// resolveCanonicalTitle picks a title candidate that actually names the
// part. The canonical title must contain the normalized MPN among the
// h1/OG-title/document-title candidates; if none qualifies, fall back to
// "<manufacturer> <mpn>". A canonical title is never allowed to be a bare
// site name or domain.
func resolveCanonicalTitle(doc *goquery.Document, mpn, manufacturer, displayTitle string) string {
	normalizedMPN := normalizeToken(mpn)

	candidates := []string{
		strings.TrimSpace(doc.Find("h1").First().Text()),
		metaContent(doc, "property", "og:title"),
		strings.TrimSpace(doc.Find("title").First().Text()),
	}

	for _, c := range candidates {
		if c == "" || looksLikeBareSiteName(c) {
			continue
		}
		if normalizedMPN != "" && strings.Contains(normalizeToken(c), normalizedMPN) {
			return c
		}
	}

	return strings.TrimSpace(manufacturer + " " + mpn)
}

// looksLikeBareSiteName rejects very short titles or titles that are just
// a domain-shaped token (e.g. "Acme.com").
func looksLikeBareSiteName(s string) bool {
	if len(s) < 4 {
		return true
	}
	trimmed := strings.TrimSpace(s)
	if strings.Count(trimmed, " ") == 0 && (strings.Contains(trimmed, ".com") || strings.Contains(trimmed, ".net")) {
		return true
	}
	return false
}

// resolveOverview picks the first non-empty of meta description, then
// JSON-LD Product description (handled in structured.go).
func resolveOverview(doc *goquery.Document) string {
	if v := metaContent(doc, "name", "description"); v != "" {
		return v
	}
	if v := jsonLDDescription(doc); v != "" {
		return v
	}
	return ""
}

func metaContent(doc *goquery.Document, attr, value string) string {
	var result string
	doc.Find("meta").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if v, ok := sel.Attr(attr); ok && v == value {
			if content, ok := sel.Attr("content"); ok {
				result = strings.TrimSpace(content)
				return false
			}
		}
		return true
	})
	return result
}
