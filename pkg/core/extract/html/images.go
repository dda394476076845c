package html

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

const maxImages = 3
const ogImageScore = 5

var rejectedImageMarkers = []string{"logo", "icon", "sprite", "placeholder", "spinner"}
var commonImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// extractImages seeds an OpenGraph image at score 5, then scans <img>
// elements, rejecting obvious chrome (logos, icons, sprites, spinners)
// and scoring the rest, deduplicating by absolute URL and keeping the top
// three.
func extractImages(doc *goquery.Document, pageURL string) []models.ImageRef {
	scored := map[string]int{}

	if og := metaContent(doc, "property", "og:image"); og != "" {
		scored[resolveURL(pageURL, og)] = ogImageScore
	}

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}
		lowerSrc := strings.ToLower(src)
		if containsAny(lowerSrc, rejectedImageMarkers) {
			return
		}

		score := 1
		if strings.Contains(lowerSrc, "product") || strings.Contains(lowerSrc, "media") {
			score += 2
		}
		if containsAny(lowerSrc, commonImageExtensions) {
			score += 1
		}

		absolute := resolveURL(pageURL, src)
		if existing, exists := scored[absolute]; !exists || score > existing {
			scored[absolute] = score
		}
	})

	return topImages(scored, maxImages)
}

func topImages(scored map[string]int, limit int) []models.ImageRef {
	refs := make([]models.ImageRef, 0, len(scored))
	for u, s := range scored {
		refs = append(refs, models.ImageRef{URL: u, Score: s})
	}
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].Score > refs[j].Score })
	if len(refs) > limit {
		refs = refs[:limit]
	}
	return refs
}
