// Package pipeline wires Discovery, the Crawler, the two Extractors, the
// Normalizer, and the Synthesizer into a single five-stage pipeline per
// MPN.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Zareef13/Partly-MVP-V1/pkg/core/crawler"
	"github.com/Zareef13/Partly-MVP-V1/pkg/core/discovery"
	htmlextract "github.com/Zareef13/Partly-MVP-V1/pkg/core/extract/html"
	pdfextract "github.com/Zareef13/Partly-MVP-V1/pkg/core/extract/pdf"
	"github.com/Zareef13/Partly-MVP-V1/pkg/core/llm"
	"github.com/Zareef13/Partly-MVP-V1/pkg/core/normalize"
	"github.com/Zareef13/Partly-MVP-V1/pkg/core/synthesize"
	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

// pdfSourceConfidence is the per-source confidence assigned to an
// ExtractedProduct built from a live PDF Extractor run (as opposed to a
// cached datasheet JSON, which the Normalizer itself injects at 0.95).
// The row-count gate (>=18 rows) already guarantees a reasonably
// complete table, so this is fixed rather than computed.
const pdfSourceConfidence = 0.80

const raPatchSentence = "Includes remote alarm for system monitoring."

// Orchestrator holds the stage dependencies for one pipeline run: a
// pooled headless browser, a cached LLM provider, and the HTTP search
// client, all process-wide for the lifetime of a run.
type Orchestrator struct {
	SearchClient discovery.SearchClient
	BrowserPool  *crawler.BrowserPool
	LLMProvider  llm.Provider

	// Tenant scopes the on-disk datasheet cache the Normalizer reads
	// from (data/<tenant>/products/<mpn>.json). Empty disables the cache
	// lookup.
	Tenant string

	// Verbose gates the stage-transition/fallback log lines, matching
	// the teacher's fmt.Printf/log.Printf diagnostic style rather than
	// introducing a logging library for this ambient concern.
	Verbose bool
}

func (o *Orchestrator) logf(format string, args ...interface{}) {
	if o.Verbose {
		log.Printf(format, args...)
	}
}

// RunForProduct executes the full five-stage pipeline for one (mpn,
// manufacturer) pair. A non-nil error is returned only for genuinely
// exceptional, propagating failures: a search-backend HTTP failure, a
// PDF row-count underflow, or an LLM JSON-parse failure. Weak-evidence
// outcomes (no usable URLs, every crawl candidate failing, extraction
// below the quality floor) are expressed as a non-usable FinalResult
// instead.
func (o *Orchestrator) RunForProduct(ctx context.Context, mpn, manufacturer string) (models.FinalResult, error) {
	isRA := normalize.IsRAVariant(mpn)
	baseMPN := normalize.BaseMPN(mpn)

	o.logf("[discovery] mpn=%s manufacturer=%s", baseMPN, manufacturer)
	disc, err := discovery.Discover(ctx, o.SearchClient, baseMPN, manufacturer)
	if err != nil {
		return models.FinalResult{}, fmt.Errorf("discovery stage failed: %w", err)
	}

	if disc.PrimaryProductURL == "" && len(disc.BackupURLs) == 0 && len(disc.PDFURLs) == 0 {
		o.logf("[discovery] no usable URLs for %s", baseMPN)
		return nonUsableResult(mpn, manufacturer, models.FailureNoProductURLs, models.ConfidenceBreakdown{
			Discovery: discoveryConfidenceScore(disc.Confidence),
		}), nil
	}
	dc := discoveryConfidenceScore(disc.Confidence)

	var products []models.ExtractedProduct
	var crawlResult models.CrawlResult
	htmlAttempted := false
	htmlQuality := 0.0

	if disc.PrimaryProductURL != "" || len(disc.BackupURLs) > 0 {
		o.logf("[crawl] trying %s + %d backups", disc.PrimaryProductURL, len(disc.BackupURLs))
		crawlResult = crawler.CrawlWithBackups(ctx, o.BrowserPool, disc.PrimaryProductURL, disc.BackupURLs)

		if crawlResult.HTML == "" && len(disc.PDFURLs) == 0 {
			o.logf("[crawl] failed, no PDF fallback available")
			return nonUsableResult(mpn, manufacturer, models.FailureCrawlFailed, models.ConfidenceBreakdown{
				Discovery: dc,
			}), nil
		}

		if crawlResult.HTML != "" {
			htmlAttempted = true
			o.logf("[extract/html] source=%s headless=%v", crawlResult.FinalURL, crawlResult.UsedHeadlessBrowser)
			extractResult := htmlextract.Extract(htmlextract.Input{
				HTML:         crawlResult.HTML,
				SourceURL:    crawlResult.FinalURL,
				MPN:          baseMPN,
				Manufacturer: manufacturer,
			})
			htmlQuality = extractResult.Quality

			if extractResult.Ok || len(extractResult.Product.Specs) > 0 {
				products = append(products, extractResult.Product)
			}

			if !extractResult.Ok && len(products) == 0 && len(disc.PDFURLs) == 0 {
				o.logf("[extract/html] failed reason=%s quality=%.2f", extractResult.Reason, extractResult.Quality)
				return nonUsableResult(mpn, manufacturer, models.FailureLowExtractionQuality, models.ConfidenceBreakdown{
					Discovery:  dc,
					Crawl:      crawlConfidenceScore(crawlResult.UsedHeadlessBrowser),
					Extraction: extractResult.Quality,
				}), nil
			}
		}
	}

	if len(products) == 0 && len(disc.PDFURLs) > 0 {
		o.logf("[extract/pdf] falling back to %s", disc.PDFURLs[0])
		pdfResult, err := pdfextract.Extract(ctx, o.LLMProvider, disc.PDFURLs[0], baseMPN)
		if err != nil {
			return models.FinalResult{}, fmt.Errorf("pdf extraction failed: %w", err)
		}
		products = append(products, pdfExtractedProduct(*pdfResult, baseMPN, manufacturer, disc.PDFURLs[0]))
	}

	if len(products) == 0 {
		o.logf("[extract] no usable evidence from any source")
		return nonUsableResult(mpn, manufacturer, models.FailureLowExtractionQuality, models.ConfidenceBreakdown{
			Discovery:  dc,
			Crawl:      crawlConfidenceScore(crawlResult.UsedHeadlessBrowser),
			Extraction: htmlQuality,
		}), nil
	}

	o.logf("[normalize] merging %d extracted product(s)", len(products))
	normalized, err := normalize.Normalize(o.Tenant, mpn, products)
	if err != nil {
		return models.FinalResult{}, fmt.Errorf("normalize stage failed: %w", err)
	}

	o.logf("[synthesize] generating catalog content")
	synthesisOutput, err := synthesize.Synthesize(ctx, o.LLMProvider, normalized)
	if err != nil {
		return models.FinalResult{}, fmt.Errorf("synthesize stage failed: %w", err)
	}

	cc := crawlConfidenceScore(crawlResult.UsedHeadlessBrowser)
	if !htmlAttempted {
		// No HTML crawl ran (PDF-only discovery path); the Tier-2 value is
		// used as a neutral stand-in (see DESIGN.md Open Question).
		cc = tier2CrawlConfidence
	}
	ec := extractionConfidence(products, htmlAttempted, htmlQuality)
	sc := synthesisOutput.Confidence

	finalConfidence := blend(dc, cc, ec, sc)
	finalUsable := usable(finalConfidence)

	result := models.FinalResult{
		MPN:              mpn,
		Manufacturer:     normalized.Manufacturer,
		CanonicalTitle:   synthesisOutput.CanonicalTitle,
		DisplayTitle:     synthesisOutput.DisplayTitle,
		KeyFeatures:      synthesisOutput.KeyFeatures,
		Overview:         synthesisOutput.Overview,
		ShortDescription: synthesisOutput.ShortDescription,
		LongDescription:  synthesisOutput.LongDescription,
		BulletHighlights: synthesisOutput.BulletHighlights,
		SEODescription:   synthesisOutput.SEODescription,
		Disclaimers:      synthesisOutput.Disclaimers,
		ConfidenceBreakdown: models.ConfidenceBreakdown{
			Discovery:  dc,
			Crawl:      cc,
			Extraction: ec,
			Synthesis:  sc,
		},
		Confidence:  finalConfidence,
		Usable:      finalUsable,
		ProductType: deriveProductType(normalized),
		Images:      normalized.Images,
		Datasheets:  normalized.Datasheets,
		SourceURL:   primarySourceURL(products, crawlResult),
	}

	if finalUsable && isRA {
		applyRAPostSynthesisPatch(&result, mpn)
	}

	result.SpecTable = buildSpecTable(result.KeyFeatures)

	return result, nil
}

// nonUsableResult builds the non-usable FinalResult shape for a weak-
// evidence stage outcome: usable false, the stage's failureReason, and
// whatever confidence breakdown was computed before the failure.
func nonUsableResult(mpn, manufacturer string, reason models.PipelineFailureReason, breakdown models.ConfidenceBreakdown) models.FinalResult {
	return models.FinalResult{
		MPN:                 mpn,
		Manufacturer:        manufacturer,
		ConfidenceBreakdown: breakdown,
		Usable:              false,
		FailureReason:       reason,
	}
}

// extractionConfidence summarizes the extraction stage's contribution to
// the blend: the HTML quality score when an HTML extraction ran, else
// the mean per-source confidence across whatever products were gathered
// (covers the PDF-only path).
func extractionConfidence(products []models.ExtractedProduct, htmlAttempted bool, htmlQuality float64) float64 {
	if htmlAttempted {
		return htmlQuality
	}
	if len(products) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range products {
		sum += p.Confidence
	}
	return sum / float64(len(products))
}

// deriveProductType reads the merged "Product Type" spec, if any source
// contributed one (e.g. the HTML Extractor's description regex promoter).
func deriveProductType(normalized models.NormalizedProduct) string {
	if v, ok := normalized.Specs["Product Type"]; ok {
		return v.Value
	}
	return ""
}

func primarySourceURL(products []models.ExtractedProduct, crawlResult models.CrawlResult) string {
	if crawlResult.FinalURL != "" {
		return crawlResult.FinalURL
	}
	for _, p := range products {
		if p.SourceURL != "" {
			return p.SourceURL
		}
	}
	return ""
}

// buildSpecTable splits each "Label: Value" keyFeature on its first colon.
func buildSpecTable(keyFeatures []string) []models.SpecRow {
	rows := make([]models.SpecRow, 0, len(keyFeatures))
	for _, kf := range keyFeatures {
		label, value, found := strings.Cut(kf, ":")
		if !found {
			continue
		}
		rows = append(rows, models.SpecRow{Label: strings.TrimSpace(label), Value: strings.TrimSpace(value)})
	}
	return rows
}

// applyRAPostSynthesisPatch overwrites displayTitle to the RA-suffixed
// MPN, appends "Remote Alarm: Yes" to keyFeatures (if not already present
// from the merged specs), and appends the fixed sentence to overview/
// shortDescription/longDescription.
func applyRAPostSynthesisPatch(result *models.FinalResult, raMPN string) {
	result.DisplayTitle = raMPN

	const remoteAlarmFeature = "Remote Alarm: Yes"
	if !containsString(result.KeyFeatures, remoteAlarmFeature) {
		result.KeyFeatures = append(result.KeyFeatures, remoteAlarmFeature)
	}

	result.Overview = appendSentence(result.Overview, raPatchSentence)
	result.ShortDescription = appendSentence(result.ShortDescription, raPatchSentence)
	result.LongDescription = appendSentence(result.LongDescription, raPatchSentence)
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}

func appendSentence(text, sentence string) string {
	if text == "" {
		return sentence
	}
	return text + " " + sentence
}

// pdfExtractedProduct converts a PDF Extractor Result into the
// ExtractedProduct shape the Normalizer expects, used when Discovery
// produced only PDF URLs.
func pdfExtractedProduct(result pdfextract.Result, mpn, manufacturer, pdfURL string) models.ExtractedProduct {
	specs := make(map[string]string, len(result.Specs))
	for _, entry := range result.Specs {
		specs[entry.Key] = entry.Value
	}

	var sections []models.VerbatimSection
	if result.OverviewText != "" {
		sections = append(sections, models.VerbatimSection{
			Heading: "Overview",
			Text:    result.OverviewText,
			Source:  pdfURL,
		})
	}
	for _, bullet := range result.SidebarBullets {
		sections = append(sections, models.VerbatimSection{
			Heading: "Key Feature",
			Text:    bullet,
			Source:  pdfURL,
		})
	}
	for _, feature := range result.Features {
		sections = append(sections, models.VerbatimSection{
			Heading: "Key Feature",
			Text:    feature,
			Source:  pdfURL,
		})
	}

	return models.ExtractedProduct{
		MPN:              mpn,
		Manufacturer:     manufacturer,
		SourceURL:        pdfURL,
		SourceType:       models.SourcePDF,
		Confidence:       pdfSourceConfidence,
		Specs:            specs,
		VerbatimSections: sections,
		Datasheets: []models.DatasheetRef{
			{URL: pdfURL, Label: "Datasheet", Score: 3},
		},
	}
}
