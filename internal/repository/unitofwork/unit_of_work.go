package unitofwork

import (
	"context"

	"ai-course-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CourseRepository() contract.CourseRepository
	CourseFileRepository() contract.CourseFileRepository
	CourseContentRepository() contract.CourseContentRepository
	CourseEmbeddingRepository() contract.CourseEmbeddingRepository
}
