// Package discovery implements the pipeline's first stage: turning an
// (mpn, manufacturer) pair into a ranked set of candidate product URLs via
// an external search API.
package discovery

import (
	"net/url"
	"strings"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

// junkPathMarkers flags candidates that are almost never a product page.
var junkPathMarkers = []string{
	"/search", "?q=", "&q=", "/blog", "/forum", "reddit.com", "stackexchange.com",
}

// Domain trust prior constants, per the discovery scoring table.
const (
	trustForumReddit = -0.7
	trustBlog        = -0.6
	trustViewer      = -0.4
	trustDatasheet   = -0.3
	trustDistributor = 0.9
	trustMfgShaped   = 0.4
	trustNeutral     = 0.0
)

// majorDistributors are well-known major electronics distributor hosts.
// This is a small static table, not an exhaustive registry.
var majorDistributors = map[string]bool{
	"digikey.com":     true,
	"mouser.com":      true,
	"newark.com":      true,
	"alliedelec.com":  true,
	"grainger.com":    true,
	"automationdirect.com": true,
	"platt.com":       true,
	"rexel.com":       true,
	"wesco.com":       true,
}

// domainTrustPrior computes the continuous domain-trust prior for a host:
// strong negatives for forum/blog/viewer/generic-datasheet hosts, a
// strong positive for known major distributors, a moderate positive for
// manufacturer-shaped hosts (exactly two dot-separated labels), otherwise
// neutral.
func domainTrustPrior(host string) float64 {
	h := strings.ToLower(host)
	h = strings.TrimPrefix(h, "www.")

	switch {
	case strings.Contains(h, "reddit") || strings.Contains(h, "forum"):
		return trustForumReddit
	case strings.Contains(h, "blog"):
		return trustBlog
	case strings.Contains(h, "viewer"):
		return trustViewer
	case strings.Contains(h, "datasheet"):
		return trustDatasheet
	}

	if majorDistributors[h] {
		return trustDistributor
	}

	if isManufacturerShaped(h) {
		return trustMfgShaped
	}

	return trustNeutral
}

// isManufacturerShaped reports whether a host has exactly two
// dot-separated labels, e.g. "acme.com" but not "shop.acme.com" or
// plain "acme".
func isManufacturerShaped(host string) bool {
	parts := strings.Split(host, ".")
	return len(parts) == 2
}

// computeFeatures builds the six-dimensional feature vector for one
// candidate relative to the target mpn/manufacturer.
func computeFeatures(candURL, title, snippet, mpn, manufacturer string) models.FeatureVector {
	u, err := url.Parse(candURL)
	var host, path string
	if err == nil {
		host = u.Host
		path = strings.ToLower(u.Path)
	} else {
		path = strings.ToLower(candURL)
	}

	lowerMPN := strings.ToLower(mpn)
	lowerMfg := strings.ToLower(manufacturer)
	lowerTitle := strings.ToLower(title)
	lowerSnippet := strings.ToLower(snippet)
	lowerURL := strings.ToLower(candURL)

	fv := models.FeatureVector{
		MPNInURL:    boolFloat(lowerMPN != "" && strings.Contains(lowerURL, lowerMPN)),
		MPNInTitle:  boolFloat(lowerMPN != "" && strings.Contains(lowerTitle, lowerMPN)),
		MfgInText:   boolFloat(lowerMfg != "" && (strings.Contains(lowerTitle, lowerMfg) || strings.Contains(lowerSnippet, lowerMfg))),
		ProductPath: boolFloat(strings.Contains(path, "/product") || strings.Contains(path, "/products")),
		DomainTrust: domainTrustPrior(host),
		JunkPath:    boolFloat(containsAny(lowerURL, junkPathMarkers)),
	}
	return fv
}

func boolFloat(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
