package adapter

// TextExtractor pulls plain text out of an uploaded document. Malformed
// input fails with domain.ErrExtraction; unknown types with
// domain.ErrUnsupportedFile.
type TextExtractor interface {
	Extract(filename string, data []byte) (string, error)
}
