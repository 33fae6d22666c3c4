package generation

import (
	"fmt"
	"strings"

	"ai-course-be/pkg/loader"

	"github.com/google/uuid"
)

// State is the typed payload threaded through the generation pipeline.
// Each phase fills in the fields the next one reads.
type State struct {
	CourseId     uuid.UUID
	Title        string
	Description  string
	ModulesCount int
	Documents    []loader.Document
	Summary      string
	Course       *SynthesizedCourse
}

// SynthesizedCourse is the structured output of the synthesis phase,
// matching the JSON shape the model is asked to produce.
type SynthesizedCourse struct {
	Modules []SynthesizedModule `json:"modules"`
}

type SynthesizedModule struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	LearnBlocks []SynthesizedLearnBlock `json:"learn_blocks"`
	Practices   []SynthesizedPractice   `json:"practices"`
}

type SynthesizedLearnBlock struct {
	Content string `json:"content"`
}

type SynthesizedPractice struct {
	Questions []SynthesizedQuestion `json:"questions"`
}

type SynthesizedQuestion struct {
	Type string `json:"type"`
	Text string `json:"text"`

	// closed
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Options       []string `json:"options,omitempty"`

	// open
	ExampleAnswer string   `json:"example_answer,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
}

// Validate checks the structural rules before anything is persisted:
// at least one module, every module has a learn block, and each question
// carries exactly the fields its type requires.
func (c *SynthesizedCourse) Validate() error {
	if len(c.Modules) == 0 {
		return fmt.Errorf("synthesized course has no modules")
	}

	for mi, module := range c.Modules {
		if strings.TrimSpace(module.Title) == "" {
			return fmt.Errorf("module %d has no title", mi+1)
		}
		if len(module.LearnBlocks) == 0 {
			return fmt.Errorf("module %q has no learn blocks", module.Title)
		}
		for bi, block := range module.LearnBlocks {
			if strings.TrimSpace(block.Content) == "" {
				return fmt.Errorf("module %q learn block %d is empty", module.Title, bi+1)
			}
		}
		for pi, practice := range module.Practices {
			if len(practice.Questions) == 0 {
				return fmt.Errorf("module %q practice %d has no questions", module.Title, pi+1)
			}
			for qi, q := range practice.Questions {
				if err := q.validate(); err != nil {
					return fmt.Errorf("module %q practice %d question %d: %w", module.Title, pi+1, qi+1, err)
				}
			}
		}
	}

	return nil
}

func (q *SynthesizedQuestion) validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question text is empty")
	}

	switch q.Type {
	case "closed":
		if q.CorrectAnswer == "" {
			return fmt.Errorf("closed question has no correct answer")
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("closed question needs at least two options")
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("correct answer is not among the options")
		}
		if q.ExampleAnswer != "" || len(q.Keywords) > 0 {
			return fmt.Errorf("closed question carries open-question fields")
		}
	case "open":
		if q.ExampleAnswer == "" {
			return fmt.Errorf("open question has no example answer")
		}
		if len(q.Keywords) == 0 {
			return fmt.Errorf("open question has no keywords")
		}
		if q.CorrectAnswer != "" || len(q.Options) > 0 {
			return fmt.Errorf("open question carries closed-question fields")
		}
	default:
		return fmt.Errorf("unknown question type %q", q.Type)
	}

	return nil
}
