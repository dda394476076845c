package pdf

import (
	"context"
	"fmt"
	"os"

	"github.com/Zareef13/Partly-MVP-V1/pkg/core/llm"
)

// Result is the PDF Extractor's output contract.
type Result struct {
	DetectedModels []string
	Specs          []SpecEntry
	RawRows        []RawRow
	Features       []string
	RawText        string
	OverviewText   string
	SidebarBullets []string
}

// SpecEntry is one mapped spec value for the target model.
type SpecEntry struct {
	Model  string
	Key    string
	Value  string
	Source string
}

// Extract runs the full PDF Extractor pipeline: download, text
// extraction, column repair, model detection, row assembly, the
// row-count gate, and LLM column mapping. It throws on download failure
// or when fewer than 18 spec rows survive parsing, per the stage
// contract.
func Extract(ctx context.Context, provider llm.Provider, pdfURL string, targetModel string) (*Result, error) {
	path, err := Download(ctx, pdfURL)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	rawText, err := ExtractText(ctx, path)
	if err != nil {
		return nil, err
	}

	normalized := NormalizeText(rawText)
	repaired := RepairColumnFractures(normalized)

	detectedModels := DetectModels(repaired)
	parsed := AssembleRows(repaired, detectedModels)

	if err := CheckRowCountGate(parsed); err != nil {
		return nil, err
	}

	mapping, err := MapColumn(ctx, provider, parsed, targetModel)
	if err != nil {
		return nil, fmt.Errorf("pdf column mapping failed: %w", err)
	}

	specs := make([]SpecEntry, 0, len(mapping.Specs))
	for key, value := range mapping.Specs {
		if value == nil {
			continue
		}
		specs = append(specs, SpecEntry{Model: mapping.Model, Key: key, Value: *value, Source: pdfURL})
	}

	return &Result{
		DetectedModels: detectedModels,
		Specs:          specs,
		RawRows:        parsed.RawRows,
		Features:       parsed.Features,
		RawText:        rawText,
		OverviewText:   parsed.OverviewText,
		SidebarBullets: parsed.SidebarBullets,
	}, nil
}
