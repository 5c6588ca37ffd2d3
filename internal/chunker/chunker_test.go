package chunker

import (
	"errors"
	"strings"
	"testing"

	"github.com/veldt-labs/ragvault/internal/core/domain"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c, err := New()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.chunkSize != DefaultChunkSize {
			t.Errorf("expected chunkSize %d, got %d", DefaultChunkSize, c.chunkSize)
		}
		if c.overlap != DefaultChunkOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultChunkOverlap, c.overlap)
		}
	})

	t.Run("custom size and overlap", func(t *testing.T) {
		c, err := New(WithChunkSize(500), WithOverlap(100))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.chunkSize != 500 || c.overlap != 100 {
			t.Errorf("expected 500/100, got %d/%d", c.chunkSize, c.overlap)
		}
	})

	t.Run("overlap equal to chunk size rejected", func(t *testing.T) {
		_, err := New(WithChunkSize(100), WithOverlap(100))
		if !errors.Is(err, domain.ErrInvalidChunking) {
			t.Errorf("expected ErrInvalidChunking, got %v", err)
		}
	})

	t.Run("overlap above chunk size rejected", func(t *testing.T) {
		_, err := New(WithChunkSize(100), WithOverlap(150))
		if !errors.Is(err, domain.ErrInvalidChunking) {
			t.Errorf("expected ErrInvalidChunking, got %v", err)
		}
	})

	t.Run("zero values ignored", func(t *testing.T) {
		c, err := New(WithChunkSize(0), WithOverlap(-1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.chunkSize != DefaultChunkSize || c.overlap != DefaultChunkOverlap {
			t.Errorf("expected defaults, got %d/%d", c.chunkSize, c.overlap)
		}
	})
}

func TestChunk_EmptyContent(t *testing.T) {
	c, _ := New()
	if chunks := c.Chunk("doc", ""); len(chunks) != 0 {
		t.Errorf("expected 0 chunks for empty content, got %d", len(chunks))
	}
}

func TestChunk_SentenceMode(t *testing.T) {
	// Three English sentences against a 20-character budget: each
	// sentence is too close to the budget to share a chunk, and none
	// fits the 5-character overlap seed.
	c, err := New(WithChunkSize(20), WithOverlap(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chunks := c.Chunk("doc", "Hello world. This is a test. Another sentence here.")
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}

	want := []string{"Hello world.", "This is a test.", "Another sentence here."}
	for i, chunk := range chunks {
		if chunk.Content != want[i] {
			t.Errorf("chunk %d: expected %q, got %q", i, want[i], chunk.Content)
		}
		if chunk.Sequence != i {
			t.Errorf("chunk %d: expected sequence %d, got %d", i, i, chunk.Sequence)
		}
		if chunk.StartSentence == nil || chunk.EndSentence == nil {
			t.Fatalf("chunk %d: sentence offsets not set", i)
		}
		if *chunk.StartSentence != i || *chunk.EndSentence != i {
			t.Errorf("chunk %d: expected sentence range [%d,%d], got [%d,%d]",
				i, i, i, *chunk.StartSentence, *chunk.EndSentence)
		}
	}
}

func TestChunk_SentenceOverlapSeeding(t *testing.T) {
	c, err := New(WithChunkSize(10), WithOverlap(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chunks := c.Chunk("doc", "A b. C d. E f.")
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}

	if chunks[0].Content != "A b. C d." {
		t.Errorf("chunk 0: got %q", chunks[0].Content)
	}
	// "C d." (4 chars) fits the 5-char overlap budget and seeds the
	// second chunk; the boundary sentence "E f." follows it.
	if chunks[1].Content != "C d. E f." {
		t.Errorf("chunk 1: got %q", chunks[1].Content)
	}
	if *chunks[1].StartSentence != 1 || *chunks[1].EndSentence != 2 {
		t.Errorf("chunk 1: expected sentence range [1,2], got [%d,%d]",
			*chunks[1].StartSentence, *chunks[1].EndSentence)
	}
}

func TestChunk_NoSentenceLostAtBoundary(t *testing.T) {
	c, err := New(WithChunkSize(25), WithOverlap(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content := "First point here. Second point here. Third point here. Fourth point here."
	chunks := c.Chunk("doc", content)

	joined := ""
	for _, chunk := range chunks {
		joined += " " + chunk.Content
	}
	for _, sentence := range []string{"First point here.", "Second point here.", "Third point here.", "Fourth point here."} {
		if !strings.Contains(joined, sentence) {
			t.Errorf("sentence %q missing from chunk output", sentence)
		}
	}
}

func TestChunk_CharacterMode(t *testing.T) {
	// 100 Chinese characters trigger character mode (100% CJK).
	content := strings.Repeat("中文测试文档内容示例", 10)
	c, err := New(WithChunkSize(30), WithOverlap(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chunks := c.Chunk("doc", content)
	if len(chunks) != 5 {
		t.Fatalf("expected 5 chunks, got %d", len(chunks))
	}

	// Step is chunkSize-overlap = 20; final window is clipped.
	wantStarts := []int{0, 20, 40, 60, 80}
	for i, chunk := range chunks {
		if chunk.StartChar == nil || chunk.EndChar == nil {
			t.Fatalf("chunk %d: char offsets not set", i)
		}
		if *chunk.StartChar != wantStarts[i] {
			t.Errorf("chunk %d: expected start %d, got %d", i, wantStarts[i], *chunk.StartChar)
		}
	}
	if last := chunks[len(chunks)-1]; *last.EndChar != 99 {
		t.Errorf("expected final window clipped to rune 99, got %d", *last.EndChar)
	}
}

func TestChunk_CharacterModeCoversEveryRune(t *testing.T) {
	content := strings.Repeat("中文字符覆盖测试", 17) // 136 runes
	c, err := New(WithChunkSize(31), WithOverlap(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chunks := c.Chunk("doc", content)
	covered := make([]bool, len([]rune(content)))
	for _, chunk := range chunks {
		for i := *chunk.StartChar; i <= *chunk.EndChar; i++ {
			covered[i] = true
		}
	}
	for i, ok := range covered {
		if !ok {
			t.Fatalf("rune %d not covered by any chunk", i)
		}
	}
}

func TestChunk_SequencesContiguous(t *testing.T) {
	c, err := New(WithChunkSize(50), WithOverlap(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content := strings.Repeat("One more sentence goes right here. ", 20)
	chunks := c.Chunk("doc-9", content)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if chunk.Sequence != i {
			t.Errorf("chunk %d: expected sequence %d, got %d", i, i, chunk.Sequence)
		}
		if chunk.DocumentID != "doc-9" {
			t.Errorf("chunk %d: wrong document id %q", i, chunk.DocumentID)
		}
		wantID := "doc-9_chunk_" + string(rune('0'+i))
		if i < 10 && chunk.ID != wantID {
			t.Errorf("chunk %d: expected id %q, got %q", i, wantID, chunk.ID)
		}
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "mixed terminators",
			content: "One. Two! Three?",
			want:    []string{"One.", "Two!", "Three?"},
		},
		{
			name:    "cjk terminators",
			content: "第一句。第二句！第三句？",
			want:    []string{"第一句。", "第二句！", "第三句？"},
		},
		{
			name:    "unterminated tail",
			content: "Complete sentence. trailing fragment",
			want:    []string{"Complete sentence.", "trailing fragment"},
		},
		{
			name:    "whitespace only",
			content: "   \n\t  ",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d sentences, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sentence %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestIsMostlyCJK(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"pure english", "The quick brown fox jumps over the lazy dog.", false},
		{"pure chinese", "这是一份完全使用中文撰写的测试文档", true},
		{"korean", "한국어로 작성된 문서입니다 한국어로 작성된", true},
		{"light sprinkle", "mostly English text with 中文 inside of it", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isMostlyCJK(tt.content); got != tt.want {
				t.Errorf("isMostlyCJK(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
