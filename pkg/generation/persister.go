package generation

import (
	"context"
	"fmt"
	"log"

	"ai-course-be/internal/entity"
	"ai-course-be/internal/repository/unitofwork"
	"ai-course-be/pkg/apperr"
)

// Persister writes the synthesized course graph, the summary, and the
// draft -> generated transition in a single transaction. Either the whole
// generated course lands or nothing does.
type Persister struct {
	logger *log.Logger
}

func NewPersister(logger *log.Logger) *Persister {
	return &Persister{logger: logger}
}

func (p *Persister) Persist(ctx context.Context, uow unitofwork.UnitOfWork, state *State) error {
	if state.Course == nil {
		return apperr.MissingInput("persist", "synthesized course")
	}
	if state.Summary == "" {
		return apperr.MissingInput("persist", "summary")
	}

	modules := buildModuleGraph(state.Course)

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin persist transaction: %w", err)
	}

	if err := uow.CourseContentRepository().CreateModuleGraph(ctx, state.CourseId, modules); err != nil {
		_ = uow.Rollback()
		return fmt.Errorf("persist module graph: %w", err)
	}

	if err := uow.CourseRepository().UpdateSummary(ctx, state.CourseId, state.Summary); err != nil {
		_ = uow.Rollback()
		return fmt.Errorf("persist summary: %w", err)
	}

	if err := uow.CourseRepository().UpdateStatus(ctx, state.CourseId, entity.StatusGenerated); err != nil {
		_ = uow.Rollback()
		return fmt.Errorf("update course status: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("commit persist transaction: %w", err)
	}

	p.logger.Printf("[PERSIST] Stored %d modules for course %s", len(modules), state.CourseId)
	return nil
}

// buildModuleGraph maps the synthesized structure onto entities, assigning
// contiguous 1-based positions at every level.
func buildModuleGraph(course *SynthesizedCourse) []*entity.Module {
	modules := make([]*entity.Module, 0, len(course.Modules))

	for mi, sm := range course.Modules {
		module := &entity.Module{
			Title:       sm.Title,
			Description: sm.Description,
			Position:    mi + 1,
		}

		for bi, sb := range sm.LearnBlocks {
			module.LearnBlocks = append(module.LearnBlocks, &entity.LearnBlock{
				Position: bi + 1,
				Content:  sb.Content,
			})
		}

		for pi, sp := range sm.Practices {
			practice := &entity.Practice{
				Position: pi + 1,
			}
			for qi, sq := range sp.Questions {
				question := &entity.Question{
					Position:      qi + 1,
					Type:          entity.QuestionType(sq.Type),
					Prompt:        sq.Text,
					CorrectAnswer: sq.CorrectAnswer,
					ExampleAnswer: sq.ExampleAnswer,
					Keywords:      sq.Keywords,
				}
				for oi, opt := range sq.Options {
					question.Options = append(question.Options, &entity.QuestionOption{
						Position: oi + 1,
						Text:     opt,
					})
				}
				practice.Questions = append(practice.Questions, question)
			}
			module.Practices = append(module.Practices, practice)
		}

		modules = append(modules, module)
	}

	return modules
}
