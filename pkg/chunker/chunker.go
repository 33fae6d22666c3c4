package chunker

import (
	"fmt"

	"github.com/google/uuid"
)

// chunkNamespace is the fixed UUIDv5 namespace for chunk identities.
// Changing it re-keys every stored chunk, so treat it as frozen.
var chunkNamespace = uuid.MustParse("8f0c3f9a-52e1-4f6d-9b1e-6d2a7c4e9b31")

// Chunk is a window of a learn block's content. Start is the rune offset
// of the window within the source text.
type Chunk struct {
	Index int
	Start int
	Text  string
}

// Split cuts text into overlapping windows of at most chunkSize runes.
// Character-based rather than tokenizer-aware, which keeps chunk offsets
// stable across provider changes. Empty input yields no chunks.
func Split(text string, chunkSize int, overlap int) []Chunk {
	runes := []rune(text)
	totalLen := len(runes)
	if totalLen == 0 {
		return []Chunk{}
	}

	if totalLen <= chunkSize {
		return []Chunk{{Index: 0, Start: 0, Text: text}}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	var chunks []Chunk
	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Start: i,
			Text:  string(runes[i:end]),
		})

		if end == totalLen {
			break
		}
	}

	return chunks
}

// ChunkID derives the stable identity of a chunk from its learn block and
// start offset. Re-indexing the same content yields the same IDs, which is
// what makes the embedding upsert idempotent.
func ChunkID(learnBlockID uuid.UUID, startOffset int) uuid.UUID {
	return uuid.NewSHA1(chunkNamespace, []byte(fmt.Sprintf("%s:%d", learnBlockID, startOffset)))
}
