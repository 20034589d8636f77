package slides

import "io"

// Extractor pulls the text of every text-bearing shape out of a PPTX deck
type Extractor interface {
	// Extract reads the deck from r and returns each shape's text followed by
	// a newline, in slide order then shape order.
	Extract(r io.ReaderAt, size int64) (string, error)
	// ExtractFile is Extract for a deck on disk.
	ExtractFile(path string) (string, error)
}

// New creates a PPTX Extractor
func New() Extractor {
	return &implExtractor{}
}
