package driving

import "context"

// IngestResult reports the outcome of ingesting one file. A batch of
// files produces one result per file so callers see a mixed
// success/failure summary rather than all-or-nothing.
type IngestResult struct {
	// DocumentID is the ID assigned to the document. Empty when
	// ingestion failed before the document was created.
	DocumentID string

	// Name is the original filename.
	Name string

	// Chunks is the number of chunks produced.
	Chunks int

	// Err is the ingestion failure for this file, if any. A file
	// with a non-nil Err was not inserted into the index.
	Err error

	// PersistErr reports an autosave failure after a successful
	// ingestion. The document remains in the in-memory index; only
	// durability is degraded.
	PersistErr error
}

// Succeeded returns true if the file made it into the index.
func (r IngestResult) Succeeded() bool {
	return r.Err == nil
}

// IngestService runs the document ingestion pipeline: extraction,
// chunking, embedding, index insertion and autosave.
type IngestService interface {
	// IngestFile ingests a single uploaded file.
	IngestFile(ctx context.Context, filename string, data []byte) IngestResult

	// IngestBatch ingests several files independently; one file's
	// failure does not abort the others. Results are in input order.
	IngestBatch(ctx context.Context, files []NamedFile) []IngestResult
}

// NamedFile is an uploaded file: a name plus its raw bytes.
type NamedFile struct {
	Name string
	Data []byte
}
