package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

func TestToExportRow_MapsEveryField(t *testing.T) {
	result := models.FinalResult{
		MPN:             "M1-1120-3",
		Manufacturer:    "Acme",
		KeyFeatures:     []string{"System Voltage: 120/240V", "Weight: 4.5 lb"},
		Overview:        "Protects downline equipment.",
		LongDescription: "Paragraph one.\n\nParagraph two.",
		SpecTable: []models.SpecRow{
			{Label: "System Voltage", Value: "120/240V"},
			{Label: "Weight", Value: "4.5 lb"},
		},
		Images:     []models.ImageRef{{URL: "https://acme.com/a.jpg"}, {URL: "https://acme.com/b.jpg"}},
		Datasheets: []models.DatasheetRef{{URL: "https://acme.com/ds.pdf"}},
	}

	row := ToExportRow(result)

	assert.Equal(t, "M1-1120-3", row.MPN)
	assert.Equal(t, "Acme", row.Manufacturer)
	assert.Equal(t, "System Voltage: 120/240V\nWeight: 4.5 lb", row.Features)
	assert.Equal(t, "Protects downline equipment.", row.Overview)
	assert.Equal(t, "System Voltage: 120/240V; Weight: 4.5 lb", row.TechnicalSpecs)
	assert.Equal(t, "<p>Paragraph one.</p><p>Paragraph two.</p>", row.DescriptionHTML)
	assert.Equal(t, "https://acme.com/a.jpg", row.ImageLink)
	assert.Equal(t, "https://acme.com/ds.pdf", row.DatasheetLink)
}

func TestToExportRow_EmptyImagesAndDatasheetsYieldEmptyLinks(t *testing.T) {
	row := ToExportRow(models.FinalResult{MPN: "M1-1120-3"})
	assert.Empty(t, row.ImageLink)
	assert.Empty(t, row.DatasheetLink)
	assert.Empty(t, row.TechnicalSpecs)
}

func TestToDescriptionHTML_SkipsBlankParagraphs(t *testing.T) {
	html := toDescriptionHTML("First.\n\n\n\nSecond.")
	assert.Equal(t, "<p>First.</p><p>Second.</p>", html)
}
