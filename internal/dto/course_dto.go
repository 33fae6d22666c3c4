package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCourseRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	ModulesCount int    `json:"modules_count" validate:"omitempty,min=1,max=20"`
}

type CreateCourseResponse struct {
	Id uuid.UUID `json:"id"`
}

type CourseResponse struct {
	Id           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ModulesCount int        `json:"modules_count"`
	Summary      string     `json:"summary,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type CourseStatusResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type RegisterCourseFileRequest struct {
	FileName string `json:"file_name" validate:"required"`
	FilePath string `json:"file_path" validate:"required"`
}

type RegisterCourseFileResponse struct {
	Id uuid.UUID `json:"id"`
}
