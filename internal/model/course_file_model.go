package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseFile struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	FileName  string         `gorm:"type:varchar(255);not null"`
	FilePath  string         `gorm:"type:varchar(512);not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (CourseFile) TableName() string {
	return "course_files"
}
