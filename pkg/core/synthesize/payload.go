// Package synthesize implements the Synthesizer stage: turning a
// NormalizedProduct's fact-only payload into generated catalog content
// via an LLM, under a strict fact-grounded prompt.
package synthesize

import "github.com/Zareef13/Partly-MVP-V1/pkg/models"

// Payload is the fact-only view of a NormalizedProduct handed to the
// LLM: spec values, image URLs, datasheet URL+label pairs, and verbatim
// descriptor strings. No confidences or sources are included, so the
// model can't anchor generated text on provenance it shouldn't see.
type Payload struct {
	MPN              string            `json:"mpn"`
	Manufacturer     string            `json:"manufacturer"`
	Specs            map[string]string `json:"specs"`
	Images           []string          `json:"images"`
	Datasheets       []DatasheetEntry  `json:"datasheets"`
	VerbatimSections []string          `json:"verbatimSections"`
}

// DatasheetEntry is one fact-only datasheet reference.
type DatasheetEntry struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// BuildPayload strips confidence/source metadata from a NormalizedProduct.
func BuildPayload(product models.NormalizedProduct) Payload {
	specs := make(map[string]string, len(product.Specs))
	for key, value := range product.Specs {
		specs[key] = value.Value
	}

	images := make([]string, 0, len(product.Images))
	for _, img := range product.Images {
		images = append(images, img.URL)
	}

	datasheets := make([]DatasheetEntry, 0, len(product.Datasheets))
	for _, ds := range product.Datasheets {
		datasheets = append(datasheets, DatasheetEntry{URL: ds.URL, Label: ds.Label})
	}

	sections := make([]string, 0, len(product.VerbatimSections))
	for _, s := range product.VerbatimSections {
		sections = append(sections, s.Text)
	}

	return Payload{
		MPN:              product.MPN,
		Manufacturer:     product.Manufacturer,
		Specs:            specs,
		Images:           images,
		Datasheets:       datasheets,
		VerbatimSections: sections,
	}
}
