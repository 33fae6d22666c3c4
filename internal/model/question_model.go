package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PracticeId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Position      int            `gorm:"not null"`
	QuestionType  string         `gorm:"type:varchar(10);not null"`
	Prompt        string         `gorm:"type:text;not null"`
	CorrectAnswer string         `gorm:"type:varchar(10)"` // closed only: A, B or C
	ExampleAnswer string         `gorm:"type:text"`        // open only
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Question) TableName() string {
	return "questions"
}

type QuestionOption struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuestionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Position   int       `gorm:"not null"`
	Text       string    `gorm:"type:text;not null"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}

type QuestionKeyword struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuestionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Keyword    string    `gorm:"type:varchar(255);not null"`
}

func (QuestionKeyword) TableName() string {
	return "question_keywords"
}
