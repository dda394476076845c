package crawler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productPageHTML() string {
	body := `<html><head><title>M1-1120-3 | Acme</title></head><body>
<h1>M1-1120-3 Surge Protection Device</h1>
<table><tr><td>Voltage</td><td>120V</td></tr><tr><td>Current</td><td>200A</td></tr><tr><td>Phase</td><td>Single</td></tr></table>
<a href="/datasheet.pdf">Datasheet</a>
</body></html>`
	return body + strings.Repeat(" ", minUsableHTMLLength)
}

func TestTier1Fetch_SucceedsOnUsablePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(productPageHTML()))
	}))
	defer server.Close()

	body, ok, err := tier1Fetch(t.Context(), server.URL)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, body)
}

func TestTier1Fetch_FailsOnChallengePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", minValidHTMLLength) + "please enable javascript"))
	}))
	defer server.Close()

	_, ok, _ := tier1Fetch(t.Context(), server.URL)
	assert.False(t, ok)
}

func TestTier1Fetch_FailsOnNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, ok, err := tier1Fetch(t.Context(), server.URL)
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestCrawl_Tier1Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(productPageHTML()))
	}))
	defer server.Close()

	result := Crawl(t.Context(), NewBrowserPool(), server.URL)
	assert.NotEmpty(t, result.HTML)
	assert.False(t, result.UsedHeadlessBrowser)
	assert.Equal(t, "high", string(result.CrawlConfidence))
}

func TestCrawl_FetchFailureReportsLowConfidence(t *testing.T) {
	result := Crawl(t.Context(), NewBrowserPool(), "http://127.0.0.1:1")
	assert.Empty(t, result.HTML)
	assert.Equal(t, "low", string(result.CrawlConfidence))
}

func TestCrawlWithBackups_StopsAtFirstUsableHTML(t *testing.T) {
	goodServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(productPageHTML()))
	}))
	defer goodServer.Close()

	result := CrawlWithBackups(t.Context(), NewBrowserPool(), "http://127.0.0.1:1", []string{goodServer.URL})
	assert.NotEmpty(t, result.HTML)
}

func TestCrawlWithBackups_NoCandidatesIsFetchFailed(t *testing.T) {
	result := CrawlWithBackups(t.Context(), NewBrowserPool(), "", nil)
	assert.Empty(t, result.HTML)
	assert.Equal(t, "low", string(result.CrawlConfidence))
}
