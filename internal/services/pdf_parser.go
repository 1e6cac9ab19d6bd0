package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFTextExtractor is the local TextExtractor: it pulls the stored resume
// from the object store and extracts embedded text directly, without an OCR
// call. Used when EXTRACTOR=local; scanned (image-only) PDFs need the OCR
// path instead.
type PDFTextExtractor struct {
	store ObjectStore
}

func NewPDFTextExtractor(store ObjectStore) *PDFTextExtractor {
	return &PDFTextExtractor{store: store}
}

func (p *PDFTextExtractor) ExtractText(ctx context.Context, objectKey string) (string, error) {
	data, err := p.store.Get(ctx, objectKey)
	if err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", objectKey, err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	text := CleanText(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text content found in %s", objectKey)
	}

	return text, nil
}

// CleanText trims every line and drops empty ones.
func CleanText(text string) string {
	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
