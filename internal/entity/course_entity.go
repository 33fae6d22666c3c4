package entity

import (
	"time"

	"github.com/google/uuid"
)

// CourseStatus is the course's position in its authoring lifecycle.
// It gates which pipelines are allowed to run against the course.
type CourseStatus string

const (
	StatusDraft     CourseStatus = "draft"
	StatusGenerated CourseStatus = "generated"
	StatusApproved  CourseStatus = "approved"
	StatusPublished CourseStatus = "published"
	StatusArchived  CourseStatus = "archived"
)

// statusTransitions is the full transition table:
// draft -> generated -> approved -> published, plus approved -> archived.
var statusTransitions = map[CourseStatus][]CourseStatus{
	StatusDraft:     {StatusGenerated},
	StatusGenerated: {StatusApproved},
	StatusApproved:  {StatusPublished, StatusArchived},
	StatusPublished: {},
	StatusArchived:  {},
}

func (s CourseStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s CourseStatus) CanTransitionTo(next CourseStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Queryable reports whether the mentor pipeline may answer questions about
// this course. Answering stays available after archiving.
func (s CourseStatus) Queryable() bool {
	return s == StatusApproved || s == StatusArchived
}

type Course struct {
	Id           uuid.UUID
	Title        string
	Description  string
	ModulesCount int
	Summary      string
	Status       CourseStatus
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}
