package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuestionType discriminates the two supported question shapes.
type QuestionType string

const (
	QuestionTypeClosed QuestionType = "closed"
	QuestionTypeOpen   QuestionType = "open"
)

func (t QuestionType) Valid() bool {
	return t == QuestionTypeClosed || t == QuestionTypeOpen
}

type Module struct {
	Id          uuid.UUID
	CourseId    uuid.UUID
	Title       string
	Description string
	Position    int
	LearnBlocks []*LearnBlock
	Practices   []*Practice
	CreatedAt   time.Time
	IsDeleted   bool
}

// LearnBlock is the unit of educational content that gets indexed for
// retrieval. CourseId is denormalized from the owning module when loaded
// through the content repository so indexing doesn't need extra lookups.
type LearnBlock struct {
	Id        uuid.UUID
	ModuleId  uuid.UUID
	CourseId  uuid.UUID
	Position  int
	Content   string
	CreatedAt time.Time
	IsDeleted bool
}

type Practice struct {
	Id        uuid.UUID
	ModuleId  uuid.UUID
	Position  int
	Questions []*Question
	CreatedAt time.Time
	IsDeleted bool
}

// Question carries both variants of the closed/open union. Which detail
// fields are meaningful is decided by Type; Validate enforces the shape
// exhaustively before anything reaches the database.
type Question struct {
	Id         uuid.UUID
	PracticeId uuid.UUID
	Position   int
	Type       QuestionType
	Prompt     string

	// closed
	CorrectAnswer string
	Options       []*QuestionOption

	// open
	ExampleAnswer string
	Keywords      []string

	CreatedAt time.Time
	IsDeleted bool
}

type QuestionOption struct {
	Id         uuid.UUID
	QuestionId uuid.UUID
	Position   int
	Text       string
}

// LearnBlockScope resolves a learn block to its (course, module) filter
// plus the owning course's status, in one lookup.
type LearnBlockScope struct {
	LearnBlockId uuid.UUID
	ModuleId     uuid.UUID
	CourseId     uuid.UUID
	CourseStatus CourseStatus
}
