package extractors

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
)

// Ensure JSON implements the interface.
var _ driven.Extractor = (*JSON)(nil)

// JSON flattens an arbitrary JSON value into indented "key: value"
// lines. Arrays get "[index]:" prefixes and nested objects recurse
// with increasing indent. Object keys are emitted in sorted order so
// extraction is deterministic.
type JSON struct{}

// NewJSON creates the JSON extractor.
func NewJSON() *JSON {
	return &JSON{}
}

// Type returns the handled source type.
func (e *JSON) Type() domain.SourceType {
	return domain.SourceTypeJSON
}

// Extract parses the bytes as a JSON value and flattens it.
func (e *JSON) Extract(_ string, data []byte) (string, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return "", fmt.Errorf("%w: invalid JSON: %v", domain.ErrExtraction, err)
	}

	var b strings.Builder
	flattenJSON(&b, value, "")
	return b.String(), nil
}

func flattenJSON(b *strings.Builder, value any, prefix string) {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if isComposite(v[k]) {
				fmt.Fprintf(b, "%s%s:\n", prefix, k)
				flattenJSON(b, v[k], prefix+"  ")
			} else {
				fmt.Fprintf(b, "%s%s: %s\n", prefix, k, leafString(v[k]))
			}
		}
	case []any:
		for i, item := range v {
			if isComposite(item) {
				fmt.Fprintf(b, "%s[%d]:\n", prefix, i)
				flattenJSON(b, item, prefix+"  ")
			} else {
				fmt.Fprintf(b, "%s[%d]: %s\n", prefix, i, leafString(item))
			}
		}
	default:
		fmt.Fprintf(b, "%s%s\n", prefix, leafString(v))
	}
}

func isComposite(value any) bool {
	switch value.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

// leafString renders a scalar the way JavaScript string interpolation
// would, keeping extracted text stable across the two clients.
func leafString(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
