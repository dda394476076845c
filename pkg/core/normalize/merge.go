package normalize

import "github.com/Zareef13/Partly-MVP-V1/pkg/models"

// mergeSpecs folds one source product's specs into the accumulating spec
// map, applying alias canonicalization first. For each (key, value): if
// the canonical key is absent, insert with the source's confidence; else
// if the source's confidence strictly exceeds the stored confidence,
// replace value and confidence. Sources are always unioned regardless of
// which value wins.
func mergeSpecs(merged map[string]models.SpecValue, product models.ExtractedProduct) {
	for rawKey, value := range product.Specs {
		key := Canonicalize(rawKey)
		existing, exists := merged[key]

		if !exists {
			merged[key] = models.SpecValue{
				Value:      value,
				Sources:    []string{product.SourceURL},
				Confidence: product.Confidence,
			}
			continue
		}

		existing.Sources = appendUnique(existing.Sources, product.SourceURL)
		if product.Confidence > existing.Confidence {
			existing.Value = value
			existing.Confidence = product.Confidence
		}
		merged[key] = existing
	}
}

func appendUnique(sources []string, source string) []string {
	for _, s := range sources {
		if s == source {
			return sources
		}
	}
	return append(sources, source)
}

// mergeAncillary flattens images, datasheets, and verbatim sections
// across every source product, attaching the source URL.
func mergeAncillary(images *[]models.ImageRef, datasheets *[]models.DatasheetRef, sections *[]models.VerbatimSection, product models.ExtractedProduct) {
	*images = append(*images, product.Images...)
	*datasheets = append(*datasheets, product.Datasheets...)

	for _, section := range product.VerbatimSections {
		if section.Source == "" {
			section.Source = product.SourceURL
		}
		*sections = append(*sections, section)
	}
}
