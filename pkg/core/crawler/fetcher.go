package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	tier1Attempts = 2
	tier1Deadline = 10 * time.Second
	realisticUA   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

// tier1Fetch performs up to two plain HTTP GETs at the given URL, each
// bounded by a 10-second deadline, following redirects and presenting a
// realistic user-agent. It returns the first response body that passes
// Tier-1 validation; otherwise it returns the last body fetched (possibly
// empty) and ok=false.
func tier1Fetch(ctx context.Context, url string) (body string, ok bool, fetchErr error) {
	client := &http.Client{Timeout: tier1Deadline}

	for attempt := 0; attempt < tier1Attempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, tier1Deadline)
		b, err := fetchOnce(attemptCtx, client, url)
		cancel()

		if err != nil {
			fetchErr = err
			continue
		}
		body = b
		fetchErr = nil

		if passesTier1(body) {
			return body, true, nil
		}
	}

	return body, false, fetchErr
}

func fetchOnce(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", realisticUA)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(content), nil
}
