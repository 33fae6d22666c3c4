package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByCourseID filters child records by their owning course
type ByCourseID struct {
	CourseID uuid.UUID
}

func (s ByCourseID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("course_id = ?", s.CourseID)
}

// ByModuleID filters child records by their owning module
type ByModuleID struct {
	ModuleID uuid.UUID
}

func (s ByModuleID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("module_id = ?", s.ModuleID)
}

// ByStatus filters courses by lifecycle status
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
