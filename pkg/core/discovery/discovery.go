package discovery

import (
	"context"
	"fmt"
	"strings"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

const maxBackupURLs = 3
const maxPDFURLs = 3

// Discover implements the Discovery stage contract: given an mpn and
// manufacturer, issue a primary search, rank the organic results, and
// return a primary URL plus backups and any PDF links. It never throws
// on ranking ambiguity — only a search-backend HTTP failure propagates.
func Discover(ctx context.Context, client SearchClient, mpn, manufacturer string) (models.DiscoveryResult, error) {
	primaryQuery := fmt.Sprintf(`"%s" "%s"`, mpn, manufacturer)

	results, err := client.Search(ctx, primaryQuery)
	if err != nil {
		return models.DiscoveryResult{}, fmt.Errorf("discovery search failed: %w", err)
	}

	candidates := toCandidates(results, mpn, manufacturer)
	ranked := rankCandidates(candidates)

	usable := filterUsable(ranked)
	if len(usable) > 0 {
		return buildResult(usable), nil
	}

	return fallbackToPDFSearch(ctx, client, mpn)
}

// toCandidates converts raw organic results into feature-scored
// SearchCandidate values (score is filled in later by rankCandidates).
func toCandidates(results []organicResult, mpn, manufacturer string) []models.SearchCandidate {
	candidates := make([]models.SearchCandidate, 0, len(results))
	for _, r := range results {
		if r.Link == "" {
			continue
		}
		candidates = append(candidates, models.SearchCandidate{
			URL:      r.Link,
			Title:    r.Title,
			Snippet:  r.Snippet,
			Features: computeFeatures(r.Link, r.Title, r.Snippet, mpn, manufacturer),
		})
	}
	return candidates
}

// filterUsable drops candidates whose junk-path feature fires or whose
// score is non-positive — these never qualify as a usable product URL.
func filterUsable(ranked []models.SearchCandidate) []models.SearchCandidate {
	usable := make([]models.SearchCandidate, 0, len(ranked))
	for _, c := range ranked {
		if c.Features.JunkPath == 1.0 {
			continue
		}
		if c.Score <= 0 {
			continue
		}
		usable = append(usable, c)
	}
	return usable
}

func buildResult(ranked []models.SearchCandidate) models.DiscoveryResult {
	result := models.DiscoveryResult{
		PrimaryProductURL: ranked[0].URL,
		Confidence:        confidenceFromScores(ranked),
	}

	backups := make([]string, 0, maxBackupURLs)
	pdfs := make([]string, 0, maxPDFURLs)
	for _, c := range ranked[1:] {
		if strings.HasSuffix(strings.ToLower(c.URL), ".pdf") {
			if len(pdfs) < maxPDFURLs {
				pdfs = append(pdfs, c.URL)
			}
			continue
		}
		if len(backups) < maxBackupURLs {
			backups = append(backups, c.URL)
		}
	}
	result.BackupURLs = backups
	result.PDFURLs = pdfs
	return result
}

// fallbackToPDFSearch reissues a datasheet-scoped query and emits only
// PDF URLs, for when no usable product page turned up.
func fallbackToPDFSearch(ctx context.Context, client SearchClient, mpn string) (models.DiscoveryResult, error) {
	fallbackQuery := fmt.Sprintf(`"%s" datasheet pdf`, mpn)

	results, err := client.Search(ctx, fallbackQuery)
	if err != nil {
		return models.DiscoveryResult{}, fmt.Errorf("discovery fallback search failed: %w", err)
	}

	pdfs := make([]string, 0, maxPDFURLs)
	for _, r := range results {
		if strings.HasSuffix(strings.ToLower(r.Link), ".pdf") {
			pdfs = append(pdfs, r.Link)
			if len(pdfs) >= maxPDFURLs {
				break
			}
		}
	}

	confidence := models.ConfidenceLow
	if len(pdfs) > 0 {
		confidence = models.ConfidenceMedium
	}

	return models.DiscoveryResult{
		PrimaryProductURL: "",
		BackupURLs:        nil,
		PDFURLs:           pdfs,
		Confidence:        confidence,
	}, nil
}
