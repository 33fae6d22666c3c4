package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LearnBlock struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ModuleId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Position  int            `gorm:"not null"`
	Content   string         `gorm:"type:text;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (LearnBlock) TableName() string {
	return "learn_blocks"
}
