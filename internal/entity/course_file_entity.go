package entity

import (
	"time"

	"github.com/google/uuid"
)

// CourseFile points at one raw source document on disk. The upload flow
// that creates these rows lives outside this core.
type CourseFile struct {
	Id        uuid.UUID
	CourseId  uuid.UUID
	FileName  string
	FilePath  string
	CreatedAt time.Time
}
