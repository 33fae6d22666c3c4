package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Description  string         `gorm:"type:text"`
	ModulesCount int            `gorm:"not null;default:3"`
	Summary      string         `gorm:"type:text"`
	Status       string         `gorm:"type:varchar(20);not null;default:'draft';index"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Course) TableName() string {
	return "courses"
}
