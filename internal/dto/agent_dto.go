package dto

import "github.com/google/uuid"

type GenerateCourseResponse struct {
	CourseId     string `json:"course_id"`
	ModuleCount  int    `json:"module_count"`
	SummaryChars int    `json:"summary_chars"`
}

type IndexCourseResponse struct {
	CourseId         string   `json:"course_id"`
	DocumentsIndexed int      `json:"documents_indexed"`
	ChunksCreated    int      `json:"chunks_created"`
	Failures         []string `json:"failures,omitempty"`
}

// PublishIndexCourseMessage is the payload of an async re-index request
// on the course index topic.
type PublishIndexCourseMessage struct {
	CourseId uuid.UUID `json:"course_id"`
}
