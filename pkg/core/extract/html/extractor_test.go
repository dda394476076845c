package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

func fullProductPage() string {
	return `<html><head>
<title>M1-1120-3 Surge Protection Device | Acme</title>
<meta property="og:title" content="M1-1120-3 Surge Protection Device">
<meta name="description" content="The M1-1120-3 protects downline equipment from transient surges.">
<meta property="og:image" content="/images/m1-1120-3-product.jpg">
</head><body>
<h1>M1-1120-3 Surge Protection Device</h1>
<table>
<tr><th>Spec</th><th>Value</th></tr>
<tr><td>System Voltage:</td><td>120/240V</td></tr>
<tr><td>Max Continuous Operating Voltage</td><td>150V</td></tr>
</table>
<a href="/datasheet.pdf">Download Datasheet</a>
<img src="/images/m1-1120-3-product-front.jpg">
<img src="/images/site-logo.png">
</body></html>`
}

func TestExtract_EmptyHTML(t *testing.T) {
	result := Extract(Input{HTML: "", SourceURL: "https://acme.com/p", MPN: "M1-1120-3"})
	assert.False(t, result.Ok)
	assert.Equal(t, models.ExtractNoHTML, result.Reason)
}

func TestExtract_ChallengePageIsBlocked(t *testing.T) {
	body := strings.Repeat("a", 500) + "please verify you are human" + strings.Repeat("b", 500)
	result := Extract(Input{HTML: body, SourceURL: "https://acme.com/p", MPN: "M1-1120-3"})
	assert.False(t, result.Ok)
	assert.Equal(t, models.ExtractBlocked, result.Reason)
}

func TestExtract_NonProductPage(t *testing.T) {
	body := "<html><body><h1>About Us</h1><p>We are a great company with no mention of any part number here.</p></body></html>"
	result := Extract(Input{HTML: body, SourceURL: "https://acme.com/about", MPN: "M1-1120-3"})
	assert.False(t, result.Ok)
	assert.Equal(t, models.ExtractNonProduct, result.Reason)
}

func TestExtract_FullProductPageSucceeds(t *testing.T) {
	result := Extract(Input{HTML: fullProductPage(), SourceURL: "https://acme.com/products/m1-1120-3", MPN: "M1-1120-3", Manufacturer: "Acme"})

	require.True(t, result.Ok)
	assert.Equal(t, "M1-1120-3 Surge Protection Device", result.Product.CanonicalTitle)
	assert.Equal(t, "120/240V", result.Product.Specs["System Voltage"])
	require.Len(t, result.Product.Datasheets, 1)
	assert.Contains(t, result.Product.Datasheets[0].URL, "datasheet.pdf")
	assert.NotEmpty(t, result.Product.Images)
	assert.Equal(t, models.SourceOEM, result.Product.SourceType)
}

func TestExtract_LowQualityBelowFloor(t *testing.T) {
	body := `<html><body><h1>M1-1120-3</h1><p>distributor /product page with nothing else</p></body></html>`
	result := Extract(Input{HTML: body, SourceURL: "https://someshop.com/product/m1-1120-3", MPN: "M1-1120-3"})
	assert.False(t, result.Ok)
	assert.Equal(t, models.ExtractLowQuality, result.Reason)
}

func TestQualityScore_ExactFloorIsNotRejected(t *testing.T) {
	// hasTitle(0.15) + hasOverview(0.10) + hasImages(0.20) = 0.45, too high;
	// use just specs(0.30) alone, which sits exactly on the 0.30 floor and
	// is therefore not rejected by the strict less-than test.
	product := models.ExtractedProduct{Specs: map[string]string{"A": "B"}}
	score := qualityScore(product, "")
	assert.InDelta(t, 0.30, score, 0.0001)
	assert.False(t, score < lowQualityThreshold, "0.30 should not be < the 0.30 floor")
}
