package extractors

import (
	"fmt"
	"strings"

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
)

// Ensure CSV implements the interface.
var _ driven.Extractor = (*CSV)(nil)

// CSV flattens a comma-separated file with a header row into readable
// "Row N: header: value, ..." lines.
//
// Fields are split on bare commas: a comma inside a quoted field
// mis-splits the row. This matches the snapshot-compatible browser
// client and is documented behaviour, not a parser to harden.
type CSV struct{}

// NewCSV creates the CSV extractor.
func NewCSV() *CSV {
	return &CSV{}
}

// Type returns the handled source type.
func (e *CSV) Type() domain.SourceType {
	return domain.SourceTypeCSV
}

// Extract renders each non-blank data row against the header row.
func (e *CSV) Extract(_ string, data []byte) (string, error) {
	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return "", fmt.Errorf("%w: CSV file has no header row", domain.ErrExtraction)
	}

	headers := splitFields(lines[0])

	var b strings.Builder
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		values := splitFields(lines[i])
		pairs := make([]string, len(headers))
		for j, header := range headers {
			value := ""
			if j < len(values) {
				value = values[j]
			}
			pairs[j] = header + ": " + value
		}

		fmt.Fprintf(&b, "Row %d: %s\n", i, strings.Join(pairs, ", "))
	}

	return b.String(), nil
}

// splitFields splits a CSV line on commas, trimming whitespace and
// stripping double quotes from each field.
func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i, f := range fields {
		fields[i] = strings.ReplaceAll(strings.TrimSpace(f), `"`, "")
	}
	return fields
}
