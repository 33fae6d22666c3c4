package entity

import (
	"time"

	"github.com/google/uuid"
)

// CourseEmbedding is one indexed chunk of a learn block. Id is the
// deterministic chunk identity (derived from learn block id + start
// offset), which makes re-indexing an upsert instead of an append.
type CourseEmbedding struct {
	Id             uuid.UUID
	CourseId       uuid.UUID
	ModuleId       uuid.UUID
	LearnBlockId   uuid.UUID
	ChunkIndex     int
	Document       string
	EmbeddingValue []float32
	CreatedAt      time.Time
}
