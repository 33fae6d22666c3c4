package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// CourseEmbedding rows use the deterministic chunk identity as primary
// key, so re-indexing the same content upserts instead of duplicating.
// No soft delete here: stale chunks are hard-removed on re-index.
type CourseEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CourseId       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ModuleId       uuid.UUID       `gorm:"type:uuid;not null;index"`
	LearnBlockId   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ChunkIndex     int             `gorm:"not null;default:0"`
	Document       string          `gorm:"type:text;not null"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(1536)"` // text-embedding-3-small dimensionality
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (CourseEmbedding) TableName() string {
	return "course_embeddings"
}
