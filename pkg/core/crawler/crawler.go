package crawler

import (
	"context"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

// Crawl implements the Crawler stage contract: fetch url, escalating from
// a cheap HTTP GET to a headless browser only when Tier-1 fails. It never
// throws; every outcome is expressed in the returned CrawlResult.
func Crawl(ctx context.Context, pool *BrowserPool, url string) models.CrawlResult {
	body, ok, fetchErr := tier1Fetch(ctx, url)
	if ok {
		return models.CrawlResult{
			FinalURL:            url,
			HTML:                body,
			UsedHeadlessBrowser: false,
			ContentType:         "text/html",
			CrawlConfidence:     models.ConfidenceHigh,
		}
	}

	if body == "" && fetchErr != nil {
		return models.CrawlResult{
			FinalURL:        url,
			CrawlConfidence: models.ConfidenceLow,
			FallbackReason:  models.FallbackFetchFailed,
		}
	}

	return tier2Escalate(ctx, pool, url)
}

// tier2Escalate launches (or reuses) a headless browser, navigates to
// url, and classifies the rendered result.
func tier2Escalate(ctx context.Context, pool *BrowserPool, url string) models.CrawlResult {
	html, err := pool.renderedHTML(ctx, url)
	if err != nil {
		return models.CrawlResult{
			FinalURL:        url,
			CrawlConfidence: models.ConfidenceLow,
			FallbackReason:  models.FallbackCaptchaOrJS,
		}
	}

	if isUsableSignal(html) {
		return models.CrawlResult{
			FinalURL:            url,
			HTML:                html,
			UsedHeadlessBrowser: true,
			ContentType:         "text/html",
			CrawlConfidence:     models.ConfidenceMedium,
		}
	}

	return models.CrawlResult{
		FinalURL:            url,
		HTML:                html,
		UsedHeadlessBrowser: true,
		ContentType:         "text/html",
		CrawlConfidence:     models.ConfidenceLow,
		FallbackReason:      models.FallbackNonProduct,
	}
}

// CrawlWithBackups tries the primary URL then up to three backup URLs,
// stopping at the first CrawlResult whose HTML is non-empty.
func CrawlWithBackups(ctx context.Context, pool *BrowserPool, primary string, backups []string) models.CrawlResult {
	candidates := make([]string, 0, 1+len(backups))
	if primary != "" {
		candidates = append(candidates, primary)
	}
	candidates = append(candidates, backups...)

	if len(candidates) == 0 {
		return models.CrawlResult{CrawlConfidence: models.ConfidenceLow, FallbackReason: models.FallbackFetchFailed}
	}

	var last models.CrawlResult
	for _, u := range candidates {
		result := Crawl(ctx, pool, u)
		last = result
		if result.HTML != "" {
			return result
		}
	}

	return last
}
