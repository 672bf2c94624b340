package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"interview-ai-backend/internal/domain"
	"interview-ai-backend/internal/domain/ports/adapter"
)

// Compile-time check
var _ adapter.TextExtractor = (*Extractor)(nil)

// Extractor pulls plain text out of uploaded resume documents. The format is
// chosen by file extension: .pdf, .docx and .txt are supported.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", domain.ErrExtraction)
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	case ".txt":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: text file is not valid UTF-8", domain.ErrExtraction)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFile, filepath.Ext(filename))
	}
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: read pdf: %v", domain.ErrExtraction, err)
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var docxTags = regexp.MustCompile(`<[^>]+>`)

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: parse docx: %v", domain.ErrExtraction, err)
	}
	defer doc.Close()

	// GetContent returns the raw document XML. Paragraph closers become
	// newlines before the remaining tags are dropped.
	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	return docxTags.ReplaceAllString(content, ""), nil
}
