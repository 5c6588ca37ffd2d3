package extractors

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps source types to their extractors.
type Registry struct {
	extractors map[domain.SourceType]driven.Extractor
}

// NewRegistry creates a registry pre-populated with the standard
// extractors for txt, csv, json and pdf.
func NewRegistry() *Registry {
	r := &Registry{
		extractors: make(map[domain.SourceType]driven.Extractor),
	}
	r.Register(NewText())
	r.Register(NewCSV())
	r.Register(NewJSON())
	r.Register(NewPDF())
	return r
}

// Register adds an extractor, replacing any previous one for the same
// source type.
func (r *Registry) Register(e driven.Extractor) {
	r.extractors[e.Type()] = e
}

// Get returns the extractor for the given source type.
func (r *Registry) Get(sourceType domain.SourceType) (driven.Extractor, error) {
	e, ok := r.extractors[sourceType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, sourceType)
	}
	return e, nil
}

// TypeForFilename resolves the source type from a filename's
// extension. Unrecognised extensions fall back to plain text.
func TypeForFilename(filename string) domain.SourceType {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	return domain.SourceTypeForExtension(ext)
}
