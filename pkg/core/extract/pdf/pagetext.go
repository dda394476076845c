package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ExtractText opens pdfPath and concatenates the text of every page,
// adapted from the page-by-page conversion lifecycle: open once, walk
// NumPage(), always close on every exit path.
func ExtractText(ctx context.Context, pdfPath string) (string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if pageCount == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	var sb strings.Builder
	for pageNum := 0; pageNum < pageCount; pageNum++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		text, err := doc.Text(pageNum)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", pageNum+1, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
