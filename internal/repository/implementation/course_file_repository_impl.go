package implementation

import (
	"context"

	"ai-course-be/internal/entity"
	"ai-course-be/internal/mapper"
	"ai-course-be/internal/model"
	"ai-course-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseFileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CourseFileMapper
}

func NewCourseFileRepository(db *gorm.DB) contract.CourseFileRepository {
	return &CourseFileRepositoryImpl{
		db:     db,
		mapper: mapper.NewCourseFileMapper(),
	}
}

func (r *CourseFileRepositoryImpl) Create(ctx context.Context, file *entity.CourseFile) error {
	m := &model.CourseFile{
		Id:        file.Id,
		CourseId:  file.CourseId,
		FileName:  file.FileName,
		FilePath:  file.FilePath,
		CreatedAt: file.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*file = *r.mapper.ToEntity(m)
	return nil
}

func (r *CourseFileRepositoryImpl) FindAllByCourseId(ctx context.Context, courseId uuid.UUID) ([]*entity.CourseFile, error) {
	var models []*model.CourseFile
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
