// Package models defines the record types shared across every stage of the
// product-enrichment pipeline: Discovery, Crawler, HTML/PDF Extractors,
// Normalizer, and Synthesizer. Records are plain structs with JSON tags,
// mirroring the teacher repo's pkg/models/fsap.go convention of keeping
// cross-stage data shapes in one place, separate from the logic that
// produces or consumes them.
package models

// SourceType classifies where a piece of evidence about a part came from.
type SourceType string

const (
	SourceOEM         SourceType = "oem"
	SourceDistributor SourceType = "distributor"
	SourcePDF         SourceType = "pdf"
	SourceDatasheet   SourceType = "datasheet"
	SourceUnknown     SourceType = "unknown"
)

// Confidence is a coarse, three-level confidence rating used by Discovery
// and the Crawler, where precise probabilities aren't meaningful (the
// underlying decision is a relative-separation heuristic, not a calibrated
// probability).
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// FallbackReason explains why a CrawlResult didn't reach the happy path.
type FallbackReason string

const (
	FallbackFetchFailed FallbackReason = "fetch_failed"
	FallbackInvalidHTML FallbackReason = "invalid_html"
	FallbackNonProduct  FallbackReason = "non_product"
	FallbackCaptchaOrJS FallbackReason = "captcha_or_js"
)

// ExtractFailureReason is the discriminant for a failed HTML extraction.
type ExtractFailureReason string

const (
	ExtractNoHTML     ExtractFailureReason = "no_html"
	ExtractBlocked    ExtractFailureReason = "blocked"
	ExtractNonProduct ExtractFailureReason = "non_product"
	ExtractParseError ExtractFailureReason = "parse_error"
	ExtractLowQuality ExtractFailureReason = "low_quality"
)

// PipelineFailureReason is the discriminant surfaced on a non-usable
// FinalResult, naming which stage gave up and why.
type PipelineFailureReason string

const (
	FailureNoProductURLs        PipelineFailureReason = "NO_PRODUCT_URLS"
	FailureCrawlFailed          PipelineFailureReason = "CRAWL_FAILED"
	FailureLowExtractionQuality PipelineFailureReason = "LOW_EXTRACTION_QUALITY"
)

// SearchCandidate is one ranked organic result from Discovery. Discarded
// after ranking except for the URL triad that Discovery returns.
type SearchCandidate struct {
	URL      string        `json:"url"`
	Title    string        `json:"title"`
	Snippet  string        `json:"snippet"`
	Features FeatureVector `json:"features"`
	Score    float64       `json:"score"`
}

// FeatureVector is Discovery's six interpretable, per-candidate scalars.
type FeatureVector struct {
	MPNInURL    float64 `json:"mpn_in_url"`
	MPNInTitle  float64 `json:"mpn_in_title"`
	MfgInText   float64 `json:"mfg_in_text"`
	ProductPath float64 `json:"product_path"`
	DomainTrust float64 `json:"domain_trust"`
	JunkPath    float64 `json:"junk_path"`
}

// DiscoveryResult is Discovery's output contract.
type DiscoveryResult struct {
	PrimaryProductURL string     `json:"primary_product_url"`
	BackupURLs        []string   `json:"backup_urls"`
	PDFURLs           []string   `json:"pdf_urls"`
	Confidence        Confidence `json:"confidence"`
}

// CrawlResult is the output of one Crawler fetch attempt.
// Invariant: HTML == "" implies CrawlConfidence == ConfidenceLow.
type CrawlResult struct {
	FinalURL            string         `json:"final_url"`
	HTML                string         `json:"html"`
	UsedHeadlessBrowser bool           `json:"used_headless_browser"`
	ContentType         string         `json:"content_type"`
	CrawlConfidence     Confidence     `json:"crawl_confidence"`
	FallbackReason      FallbackReason `json:"fallback_reason,omitempty"` // empty when not applicable
}

// VerbatimSection is a passage of source text retained as-is, e.g. an
// "Overview" or "Key Feature" blurb pulled from a datasheet or page.
type VerbatimSection struct {
	Heading string `json:"heading,omitempty"` // optional
	Text    string `json:"text"`
	Source  string `json:"source,omitempty"` // optional source URL or tag
}

// ImageRef is a single catalog image candidate.
type ImageRef struct {
	URL   string `json:"url"`
	Score int    `json:"score"`
}

// DatasheetRef is a single datasheet link candidate.
type DatasheetRef struct {
	URL   string `json:"url"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// ExtractedProduct is the evidence extracted from one source (an HTML page
// or a PDF datasheet). Extractors never write a spec value they did not
// see; every non-empty spec value is a non-empty trimmed string.
type ExtractedProduct struct {
	MPN              string                 `json:"mpn"`
	Manufacturer     string                 `json:"manufacturer"`
	SourceURL        string                 `json:"source_url"`
	SourceType       SourceType             `json:"source_type"`
	Confidence       float64                `json:"confidence"` // per-source confidence in [0,1]
	CanonicalTitle   string                 `json:"canonical_title"`
	DisplayTitle     string                 `json:"display_title"`
	Specs            map[string]string      `json:"specs"`
	VerbatimSections []VerbatimSection      `json:"verbatim_sections"`
	Images           []ImageRef             `json:"images"`
	Datasheets       []DatasheetRef         `json:"datasheets"`
	RawDatasheet     map[string]interface{} `json:"raw_datasheet,omitempty"` // optional, present for sourceType == datasheet
}

// SpecValue is one merged spec entry in a NormalizedProduct: the
// highest-confidence value seen for a canonical key, plus every source
// URL that contributed a value for that key (even losing ones).
type SpecValue struct {
	Value      string   `json:"value"`
	Sources    []string `json:"sources"`
	Confidence float64  `json:"confidence"`
}

// NormalizedProduct is the Normalizer's single merged view across every
// ExtractedProduct handed to it.
type NormalizedProduct struct {
	MPN               string               `json:"mpn"`
	Manufacturer      string               `json:"manufacturer"`
	CanonicalTitle    string               `json:"canonical_title"`
	DisplayTitle      string               `json:"display_title"`
	Specs             map[string]SpecValue `json:"specs"`
	VerbatimSections  []VerbatimSection    `json:"verbatim_sections"`
	Images            []ImageRef           `json:"images"`
	Datasheets        []DatasheetRef       `json:"datasheets"`
	OverallConfidence float64              `json:"overall_confidence"` // mean of per-source confidences
}

// SynthesisOutput is the Synthesizer's generated catalog content.
// Invariant: every "Label: Value" in KeyFeatures has Label present, as-is,
// in the input specs map; no numeric value appears that wasn't in the input.
type SynthesisOutput struct {
	CanonicalTitle   string   `json:"canonical_title"`
	DisplayTitle     string   `json:"display_title"`
	KeyFeatures      []string `json:"key_features"` // "Label: Value" strings
	Overview         string   `json:"overview"`
	ShortDescription string   `json:"short_description"`
	LongDescription  string   `json:"long_description"`
	BulletHighlights []string `json:"bullet_highlights"`
	SEODescription   string   `json:"seo_description"` // <= 160 chars
	Disclaimers      []string `json:"disclaimers"`
	Confidence       float64  `json:"confidence"` // in [0,1]
}

// ConfidenceBreakdown surfaces each stage's contribution to the final
// blended confidence, so a caller can explain a low-confidence result.
type ConfidenceBreakdown struct {
	Discovery  float64 `json:"discovery"`
	Crawl      float64 `json:"crawl"`
	Extraction float64 `json:"extraction"`
	Synthesis  float64 `json:"synthesis"`
}

// FinalResult is the pipeline's return value for one MPN.
// Invariant: Usable == (Confidence >= 0.65).
type FinalResult struct {
	MPN              string   `json:"mpn"`
	Manufacturer     string   `json:"manufacturer"`
	CanonicalTitle   string   `json:"canonical_title"`
	DisplayTitle     string   `json:"display_title"`
	KeyFeatures      []string `json:"key_features"`
	Overview         string   `json:"overview"`
	ShortDescription string   `json:"short_description"`
	LongDescription  string   `json:"long_description"`
	BulletHighlights []string `json:"bullet_highlights"`
	SEODescription   string   `json:"seo_description"`
	Disclaimers      []string `json:"disclaimers"`

	ConfidenceBreakdown ConfidenceBreakdown   `json:"confidence_breakdown"`
	Confidence          float64               `json:"confidence"`
	Usable              bool                  `json:"usable"`
	FailureReason       PipelineFailureReason `json:"failure_reason,omitempty"` // empty when Usable or when a stage threw

	ProductType string         `json:"product_type,omitempty"` // derived, may be empty
	Images      []ImageRef     `json:"images"`
	Datasheets  []DatasheetRef `json:"datasheets"`
	SourceURL   string         `json:"source_url"`

	// SpecTable is KeyFeatures split on the first colon into {Label, Value}.
	SpecTable []SpecRow `json:"spec_table"`
}

// SpecRow is one row of FinalResult.SpecTable.
type SpecRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
