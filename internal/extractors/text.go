package extractors

import (
	"fmt"
	"unicode/utf8"

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
)

// Ensure Text implements the interface.
var _ driven.Extractor = (*Text)(nil)

// Text extracts plain UTF-8 text files verbatim. It is also the
// fallback for unrecognised extensions.
type Text struct{}

// NewText creates the plain text extractor.
func NewText() *Text {
	return &Text{}
}

// Type returns the handled source type.
func (e *Text) Type() domain.SourceType {
	return domain.SourceTypeTxt
}

// Extract decodes the bytes as UTF-8 and returns them unchanged.
func (e *Text) Extract(_ string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: file is not valid UTF-8", domain.ErrExtraction)
	}
	return string(data), nil
}
