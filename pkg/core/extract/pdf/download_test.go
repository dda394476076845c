package pdf

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownload_WritesBodyToTempFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/pdf", r.Header.Get("Accept"))
		w.Write([]byte("%PDF-1.4 fake content"))
	}))
	defer server.Close()

	path, err := Download(t.Context(), server.URL)
	require.NoError(t, err)
	defer os.Remove(path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake content", string(body))
}

func TestDownload_RetriesWithPermissiveAcceptOn403(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Header.Get("Accept") == "application/pdf" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte("%PDF-1.4 retried content"))
	}))
	defer server.Close()

	path, err := Download(t.Context(), server.URL)
	require.NoError(t, err)
	defer os.Remove(path)

	assert.Equal(t, 2, calls)
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 retried content", string(body))
}

func TestDownload_BothAttemptsFailingPropagatesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Download(t.Context(), server.URL)
	assert.Error(t, err)
}
