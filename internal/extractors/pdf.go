package extractors

import (
	"fmt"
	"math"
	"strconv"

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
)

// Ensure PDF implements the interface.
var _ driven.Extractor = (*PDF)(nil)

// PDF is a documented placeholder: no text is extracted. The returned
// blob explains the limitation and embeds the original filename and a
// human-formatted byte size, so the "content" that gets chunked and
// indexed is at least honest about what it is.
type PDF struct{}

// NewPDF creates the PDF placeholder extractor.
func NewPDF() *PDF {
	return &PDF{}
}

// Type returns the handled source type.
func (e *PDF) Type() domain.SourceType {
	return domain.SourceTypePDF
}

// Extract returns the fixed explanation text.
func (e *PDF) Extract(filename string, data []byte) (string, error) {
	return fmt.Sprintf(`PDF Processing Not Available

To use this document with retrieval, convert the PDF to TXT format and
upload the TXT file instead. PDF text extraction requires a dedicated
parser and is intentionally not part of this pipeline.

File: %s
Size: %s`, filename, FormatByteSize(int64(len(data)))), nil
}

var byteUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatByteSize renders a byte count with the largest 1024-based unit
// that keeps the value at or above one, rounded to two decimals with
// trailing zeros dropped: 1536 -> "1.5 KB".
func FormatByteSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i < 0 {
		i = 0
	}
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}

	value := float64(bytes) / math.Pow(1024, float64(i))
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + byteUnits[i]
}
