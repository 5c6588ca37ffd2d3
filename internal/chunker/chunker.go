// Package chunker splits document text into overlapping retrieval
// chunks. It picks one of two strategies per document: character
// windows for CJK-dominant text, sentence packing for everything else.
package chunker

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/veldt-labs/ragvault/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = domain.DefaultChunkSize

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = domain.DefaultChunkOverlap

// cjkThreshold is the CJK character density above which character
// windowing replaces sentence packing.
const cjkThreshold = 0.3

// Chunker splits text into overlapping chunks. Chunking is a pure
// function of the input text and the configured size/overlap.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a chunker. An overlap that reaches the chunk size would
// stall the character-mode window advance, so it is rejected outright
// rather than clamped.
func New(opts ...Option) (*Chunker, error) {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.overlap >= c.chunkSize {
		return nil, fmt.Errorf("%w: overlap %d must be smaller than chunk size %d",
			domain.ErrInvalidChunking, c.overlap, c.chunkSize)
	}

	return c, nil
}

// ChunkSize returns the configured chunk size.
func (c *Chunker) ChunkSize() int { return c.chunkSize }

// Overlap returns the configured overlap.
func (c *Chunker) Overlap() int { return c.overlap }

// Chunk splits content into ordered chunks for the given document.
// Empty content yields no chunks. Sequence numbers are contiguous
// from 0.
func (c *Chunker) Chunk(documentID, content string) []domain.Chunk {
	if content == "" {
		return nil
	}

	if isMostlyCJK(content) {
		return c.chunkByCharacters(documentID, content)
	}
	return c.chunkBySentences(documentID, content)
}

// chunkByCharacters emits fixed-size rune windows stepping by
// chunkSize-overlap. Every rune of the input is covered by at least
// one window.
func (c *Chunker) chunkByCharacters(documentID, content string) []domain.Chunk {
	runes := []rune(content)
	total := len(runes)

	var chunks []domain.Chunk
	seq := 0

	for i := 0; i < total; {
		end := i + c.chunkSize
		if end > total {
			end = total
		}

		window := string(runes[i:end])
		if trimmed := strings.TrimSpace(window); trimmed != "" {
			start := i
			last := end - 1
			chunks = append(chunks, domain.Chunk{
				ID:         chunkID(documentID, seq),
				DocumentID: documentID,
				Sequence:   seq,
				Content:    trimmed,
				Length:     end - i,
				StartChar:  &start,
				EndChar:    &last,
			})
			seq++
		}

		// The window reaching the end of the text is final; stepping
		// past it would emit a redundant suffix window.
		if i+c.chunkSize >= total {
			break
		}
		i += c.chunkSize - c.overlap
	}

	return chunks
}

// chunkBySentences greedily packs sentences into chunks up to the size
// budget, then seeds each following chunk with trailing sentences of
// the previous one up to the overlap budget. The sentence that
// triggered the boundary opens the new chunk, so no sentence is ever
// dropped.
func (c *Chunker) chunkBySentences(documentID, content string) []domain.Chunk {
	sentences := splitSentences(content)
	if len(sentences) == 0 {
		return nil
	}

	var chunks []domain.Chunk
	var current []string
	currentLen := 0
	first := 0
	seq := 0

	for i, sentence := range sentences {
		sentenceLen := runeLen(sentence)

		if currentLen+sentenceLen > c.chunkSize && len(current) > 0 {
			chunks = append(chunks, sentenceChunk(documentID, seq, current, currentLen, first, i-1))
			seq++

			seed, seedLen, seedStart := c.overlapSeed(sentences, i)
			current = append(seed, sentence)
			currentLen = seedLen + sentenceLen
			if len(seed) > 0 {
				first = seedStart
			} else {
				first = i
			}
			continue
		}

		if len(current) == 0 {
			first = i
		}
		current = append(current, sentence)
		currentLen += sentenceLen
	}

	if len(current) > 0 {
		chunks = append(chunks, sentenceChunk(documentID, seq, current, currentLen, first, len(sentences)-1))
	}

	return chunks
}

// overlapSeed walks backwards from the boundary sentence, collecting
// whole sentences while their combined length stays within the overlap
// budget. It returns the seed sentences in document order, their
// combined length, and the index of the earliest seeded sentence.
func (c *Chunker) overlapSeed(sentences []string, boundary int) ([]string, int, int) {
	var seed []string
	chars := 0
	start := boundary

	for i := boundary - 1; i >= 0; i-- {
		sentenceLen := runeLen(sentences[i])
		if chars+sentenceLen > c.overlap {
			break
		}
		seed = append([]string{sentences[i]}, seed...)
		chars += sentenceLen
		start = i
	}

	return seed, chars, start
}

func sentenceChunk(documentID string, seq int, sentences []string, length, startSentence, endSentence int) domain.Chunk {
	start := startSentence
	end := endSentence
	return domain.Chunk{
		ID:            chunkID(documentID, seq),
		DocumentID:    documentID,
		Sequence:      seq,
		Content:       strings.TrimSpace(strings.Join(sentences, " ")),
		Length:        length,
		StartSentence: &start,
		EndSentence:   &end,
	}
}

// splitSentences scans the text rune by rune, closing a sentence at
// each terminator and absorbing any whitespace that immediately
// follows it into the same sentence. Trailing unterminated text
// becomes a final sentence.
func splitSentences(content string) []string {
	runes := []rune(content)

	var sentences []string
	var current []rune

	for i := 0; i < len(runes); i++ {
		current = append(current, runes[i])

		if !isTerminator(runes[i]) {
			continue
		}

		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			current = append(current, runes[j])
			j++
		}

		if s := strings.TrimSpace(string(current)); s != "" {
			sentences = append(sentences, s)
		}
		current = current[:0]
		i = j - 1
	}

	if s := strings.TrimSpace(string(current)); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

// isTerminator reports whether r ends a sentence. Both ASCII and
// full-width CJK punctuation close sentences.
func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？':
		return true
	default:
		return false
	}
}

// isMostlyCJK reports whether more than 30% of the text's characters
// fall in the CJK ranges (Chinese U+4E00-U+9FFF, Japanese kana
// U+3040-U+30FF, Korean hangul U+AC00-U+D7AF).
func isMostlyCJK(content string) bool {
	total := 0
	cjk := 0
	for _, r := range content {
		total++
		if isCJK(r) {
			cjk++
		}
	}
	if total == 0 {
		return false
	}
	return float64(cjk) > float64(total)*cjkThreshold
}

func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3040 && r <= 0x30FF) ||
		(r >= 0xAC00 && r <= 0xD7AF)
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func chunkID(documentID string, seq int) string {
	return fmt.Sprintf("%s_chunk_%d", documentID, seq)
}
