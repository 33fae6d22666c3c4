package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Practice struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ModuleId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Position  int            `gorm:"not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Practice) TableName() string {
	return "practices"
}
