package pipeline

import (
	"strings"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

// ExportRow is one row of the Excel export. Producing these values is a
// pure transform owned by the core; writing an actual .xlsx file is the
// external collaborator's job.
type ExportRow struct {
	MPN              string
	Manufacturer     string
	Features         string // newline-separated bullets
	Overview         string
	TechnicalSpecs   string // "key: value unit; …"
	DescriptionHTML  string
	ImageLink        string
	DatasheetLink    string
}

// ToExportRow transforms a FinalResult into its Excel export row shape.
func ToExportRow(r models.FinalResult) ExportRow {
	return ExportRow{
		MPN:             r.MPN,
		Manufacturer:    r.Manufacturer,
		Features:        strings.Join(r.KeyFeatures, "\n"),
		Overview:        r.Overview,
		TechnicalSpecs:  formatSpecTable(r.SpecTable),
		DescriptionHTML: toDescriptionHTML(r.LongDescription),
		ImageLink:       firstImageURL(r.Images),
		DatasheetLink:   firstDatasheetURL(r.Datasheets),
	}
}

// formatSpecTable renders SpecTable rows as "key: value unit; …".
func formatSpecTable(rows []models.SpecRow) string {
	parts := make([]string, 0, len(rows))
	for _, row := range rows {
		parts = append(parts, row.Label+": "+row.Value)
	}
	return strings.Join(parts, "; ")
}

// toDescriptionHTML wraps each non-empty paragraph of a long description
// in a <p> tag, splitting on blank lines.
func toDescriptionHTML(longDescription string) string {
	paragraphs := strings.Split(longDescription, "\n\n")
	var b strings.Builder
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(p)
		b.WriteString("</p>")
	}
	return b.String()
}

func firstImageURL(images []models.ImageRef) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

func firstDatasheetURL(datasheets []models.DatasheetRef) string {
	if len(datasheets) == 0 {
		return ""
	}
	return datasheets[0].URL
}
