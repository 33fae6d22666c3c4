package contract

import (
	"context"

	"ai-course-be/internal/entity"
	"ai-course-be/internal/repository/specification"

	"github.com/google/uuid"
)

// CourseScope restricts a similarity search to one course and,
// optionally, one module of that course.
type CourseScope struct {
	CourseID uuid.UUID
	ModuleID *uuid.UUID
}

// ScoredCourseEmbedding wraps CourseEmbedding with its similarity score
type ScoredCourseEmbedding struct {
	Embedding  *entity.CourseEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type CourseEmbeddingRepository interface {
	// Upsert writes chunks under their deterministic identity. Re-running
	// with unchanged content overwrites rows with identical data, which
	// is what makes indexing idempotent.
	Upsert(ctx context.Context, embeddings []*entity.CourseEmbedding) error

	// DeleteStale removes the course's chunk rows whose identity is not
	// in keep. Used after a re-index so shrunk content leaves no orphans.
	DeleteStale(ctx context.Context, courseId uuid.UUID, keep []uuid.UUID) error

	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CourseEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilarWithScore runs a filtered cosine similarity search,
	// ordered by descending similarity.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, scope CourseScope) ([]*ScoredCourseEmbedding, error)
}
