package contract

import (
	"context"

	"ai-course-be/internal/entity"

	"github.com/google/uuid"
)

// CourseContentRepository persists and reads the synthesized course graph
// (modules, learn blocks, practices, questions).
type CourseContentRepository interface {
	// CreateModuleGraph inserts the full module tree for a course. The
	// caller is responsible for running it inside a transaction and for
	// having assigned contiguous positions beforehand.
	CreateModuleGraph(ctx context.Context, courseId uuid.UUID, modules []*entity.Module) error

	// FindActiveLearnBlocks returns every learn block of the course's
	// active modules, ordered by (module position, block position).
	// CourseId is populated on each returned block.
	FindActiveLearnBlocks(ctx context.Context, courseId uuid.UUID) ([]*entity.LearnBlock, error)

	// FindLearnBlockScope resolves a learn block to its (course, module)
	// scope and the owning course's status. Returns nil when the block or
	// any of its ancestors is missing or soft-deleted.
	FindLearnBlockScope(ctx context.Context, learnBlockId uuid.UUID) (*entity.LearnBlockScope, error)

	// CountModules reports how many active modules a course has.
	CountModules(ctx context.Context, courseId uuid.UUID) (int64, error)
}
