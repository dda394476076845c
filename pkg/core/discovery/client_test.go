package discovery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSearchClient_OrganicShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))
		var body searchRequestBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 10, body.Num)

		json.NewEncoder(w).Encode(map[string]any{
			"organic": []map[string]string{{"link": "https://acme.com", "title": "Acme"}},
		})
	}))
	defer server.Close()

	client := NewHTTPSearchClient(server.URL, "test-key")
	results, err := client.Search(t.Context(), `"M1-1120-3" "Acme"`)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "https://acme.com", results[0].Link)
}

func TestHTTPSearchClient_ResultsShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{{"link": "https://mouser.com", "title": "Mouser"}},
		})
	}))
	defer server.Close()

	client := NewHTTPSearchClient(server.URL, "test-key")
	results, err := client.Search(t.Context(), `"M1-1120-3" "Acme"`)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "https://mouser.com", results[0].Link)
}

func TestHTTPSearchClient_NonOKStatusErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPSearchClient(server.URL, "test-key")
	_, err := client.Search(t.Context(), "query")
	assert.Error(t, err)
}
