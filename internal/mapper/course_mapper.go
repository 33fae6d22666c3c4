package mapper

import (
	"time"

	"ai-course-be/internal/entity"
	"ai-course-be/internal/model"

	"gorm.io/gorm"
)

type CourseMapper struct{}

func NewCourseMapper() *CourseMapper {
	return &CourseMapper{}
}

func (m *CourseMapper) ToEntity(c *model.Course) *entity.Course {
	if c == nil {
		return nil
	}

	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Course{
		Id:           c.Id,
		Title:        c.Title,
		Description:  c.Description,
		ModulesCount: c.ModulesCount,
		Summary:      c.Summary,
		Status:       entity.CourseStatus(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
		IsDeleted:    c.DeletedAt.Valid,
	}
}

func (m *CourseMapper) ToModel(c *entity.Course) *model.Course {
	if c == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	} else if c.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Course{
		Id:           c.Id,
		Title:        c.Title,
		Description:  c.Description,
		ModulesCount: c.ModulesCount,
		Summary:      c.Summary,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *CourseMapper) ToEntities(courses []*model.Course) []*entity.Course {
	entities := make([]*entity.Course, len(courses))
	for i, c := range courses {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type CourseFileMapper struct{}

func NewCourseFileMapper() *CourseFileMapper {
	return &CourseFileMapper{}
}

func (m *CourseFileMapper) ToEntity(f *model.CourseFile) *entity.CourseFile {
	if f == nil {
		return nil
	}
	return &entity.CourseFile{
		Id:        f.Id,
		CourseId:  f.CourseId,
		FileName:  f.FileName,
		FilePath:  f.FilePath,
		CreatedAt: f.CreatedAt,
	}
}

func (m *CourseFileMapper) ToEntities(files []*model.CourseFile) []*entity.CourseFile {
	entities := make([]*entity.CourseFile, len(files))
	for i, f := range files {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
