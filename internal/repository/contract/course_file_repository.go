package contract

import (
	"context"

	"ai-course-be/internal/entity"

	"github.com/google/uuid"
)

type CourseFileRepository interface {
	Create(ctx context.Context, file *entity.CourseFile) error
	FindAllByCourseId(ctx context.Context, courseId uuid.UUID) ([]*entity.CourseFile, error)
}
