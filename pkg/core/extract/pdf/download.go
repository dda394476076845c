// Package pdf implements the PDF Extractor stage: downloading a
// datasheet, converting it to text, repairing its fused columns, and
// assembling a per-model spec table via an LLM mapping pass.
package pdf

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

const realisticUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Download fetches a PDF from url into a temp file and returns its path.
// If the first attempt fails for any reason (an HTTP 403, another non-200
// status, or a transport error), it retries once with a more permissive
// Accept header.
func Download(ctx context.Context, url string) (string, error) {
	body, err := downloadOnce(ctx, url, "application/pdf")
	if err != nil {
		body, err = downloadOnce(ctx, url, "*/*")
		if err != nil {
			return "", fmt.Errorf("pdf download failed: %w", err)
		}
	}

	f, err := os.CreateTemp("", "datasheet-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(body); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	return f.Name(), nil
}

func downloadOnce(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", realisticUA)
	req.Header.Set("Accept", accept)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
