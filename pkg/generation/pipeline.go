package generation

import (
	"context"
	"fmt"
	"log"

	"ai-course-be/internal/entity"
	"ai-course-be/internal/repository/unitofwork"
	"ai-course-be/pkg/apperr"
	"ai-course-be/pkg/llm"
	"ai-course-be/pkg/loader"
)

// Pipeline orchestrates course generation in four phases:
// Load -> Summarize -> Synthesize -> Persist. It only runs against draft
// courses and leaves the course in generated on success.
type Pipeline struct {
	fileLoader  *loader.FileLoader
	summarizer  *Summarizer
	synthesizer *Synthesizer
	persister   *Persister
	logger      *log.Logger
}

func NewPipeline(fileLoader *loader.FileLoader, llmProvider llm.LLMProvider, logger *log.Logger) *Pipeline {
	return &Pipeline{
		fileLoader:  fileLoader,
		summarizer:  NewSummarizer(llmProvider, logger),
		synthesizer: NewSynthesizer(llmProvider, logger),
		persister:   NewPersister(logger),
		logger:      logger,
	}
}

// Result reports what generation produced.
type Result struct {
	CourseId     string
	ModuleCount  int
	SummaryChars int
}

func (p *Pipeline) Execute(ctx context.Context, uow unitofwork.UnitOfWork, course *entity.Course) (*Result, error) {
	if course.Status != entity.StatusDraft {
		return nil, apperr.NewPrecondition("generate course", string(course.Status), string(entity.StatusDraft))
	}

	state := &State{
		CourseId:     course.Id,
		Title:        course.Title,
		Description:  course.Description,
		ModulesCount: course.ModulesCount,
	}

	p.logger.Printf("[PIPELINE] Starting generation for course %s", course.Id)

	// Phase 1: load source documents
	files, err := uow.CourseFileRepository().FindAllByCourseId(ctx, course.Id)
	if err != nil {
		return nil, fmt.Errorf("list course files: %w", err)
	}
	if len(files) == 0 {
		return nil, apperr.MissingInput("load", "course files")
	}

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.FilePath
	}

	documents, skipped, err := p.fileLoader.LoadAll(paths)
	if err != nil {
		return nil, fmt.Errorf("load course files: %w", err)
	}
	for _, path := range skipped {
		p.logger.Printf("[LOAD] Skipping missing source file %s", path)
	}
	if len(documents) == 0 {
		return nil, apperr.MissingInput("load", "readable course files")
	}
	state.Documents = documents
	p.logger.Printf("[LOAD] Loaded %d documents (%d skipped)", len(documents), len(skipped))

	// Phase 2: summarize
	if err := p.summarizer.Summarize(ctx, state); err != nil {
		return nil, err
	}

	// Phase 3: synthesize
	if err := p.synthesizer.Synthesize(ctx, state); err != nil {
		return nil, err
	}

	// Phase 4: persist atomically
	if err := p.persister.Persist(ctx, uow, state); err != nil {
		return nil, err
	}

	return &Result{
		CourseId:     course.Id.String(),
		ModuleCount:  len(state.Course.Modules),
		SummaryChars: len([]rune(state.Summary)),
	}, nil
}
