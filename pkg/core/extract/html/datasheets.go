package html

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

const maxDatasheets = 5

// extractDatasheets scans every anchor, scores it against a table of
// datasheet-link signals, keeps positive-scoring links deduplicated by
// URL (retaining the max score), and returns the top five.
func extractDatasheets(doc *goquery.Document, pageURL string) []models.DatasheetRef {
	scored := map[string]models.DatasheetRef{}

	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || href == "" {
			return
		}
		absolute := resolveURL(pageURL, href)
		text := strings.ToLower(a.Text())
		lowerHref := strings.ToLower(href)

		score := 0
		if strings.HasSuffix(lowerHref, ".pdf") {
			score += 3
		}
		if strings.Contains(text, "datasheet") || strings.Contains(text, "data sheet") {
			score += 2
		}
		if strings.Contains(text, "spec") {
			score += 2
		}
		if strings.Contains(text, "manual") {
			score += 1
		}
		if strings.Contains(text, "privacy") || strings.Contains(text, "terms") || strings.Contains(text, "catalog") {
			score -= 3
		}

		if score <= 0 {
			return
		}

		if existing, exists := scored[absolute]; !exists || score > existing.Score {
			scored[absolute] = models.DatasheetRef{URL: absolute, Label: strings.TrimSpace(a.Text()), Score: score}
		}
	})

	return topDatasheets(scored, maxDatasheets)
}

func topDatasheets(scored map[string]models.DatasheetRef, limit int) []models.DatasheetRef {
	refs := make([]models.DatasheetRef, 0, len(scored))
	for _, r := range scored {
		refs = append(refs, r)
	}
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].Score > refs[j].Score })
	if len(refs) > limit {
		refs = refs[:limit]
	}
	return refs
}

func resolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
