package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"ai-course-be/internal/constant"
	"ai-course-be/pkg/apperr"
	"ai-course-be/pkg/llm"
)

// Synthesizer turns a course summary into the full structured course.
type Synthesizer struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewSynthesizer(llmProvider llm.LLMProvider, logger *log.Logger) *Synthesizer {
	return &Synthesizer{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (s *Synthesizer) Synthesize(ctx context.Context, state *State) error {
	if strings.TrimSpace(state.Summary) == "" {
		return apperr.MissingInput("synthesize", "summary")
	}

	modulesCount := state.ModulesCount
	if modulesCount < constant.MinModuleCount {
		modulesCount = constant.MinModuleCount
	}

	prompt := fmt.Sprintf(constant.SynthesizePromptTemplate, modulesCount, state.Summary)

	raw, err := s.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.4),
		llm.WithJSONMode(),
	)
	if err != nil {
		return apperr.NewProvider("llm", "synthesize", err)
	}

	course, err := parseSynthesizedCourse(raw)
	if err != nil {
		return apperr.NewProvider("llm", "synthesize", err)
	}

	if err := course.Validate(); err != nil {
		return apperr.NewProvider("llm", "synthesize", fmt.Errorf("invalid course structure: %w", err))
	}

	if len(course.Modules) != modulesCount {
		s.logger.Printf("[SYNTHESIZE] Requested %d modules, model produced %d", modulesCount, len(course.Modules))
	} else {
		s.logger.Printf("[SYNTHESIZE] Produced %d modules", len(course.Modules))
	}

	state.Course = course
	return nil
}

// parseSynthesizedCourse tolerates models that wrap the JSON object in
// markdown fences or prose by extracting the outermost object.
func parseSynthesizedCourse(raw string) (*SynthesizedCourse, error) {
	raw = strings.TrimSpace(raw)

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("response contains no JSON object")
	}

	var course SynthesizedCourse
	if err := json.Unmarshal([]byte(raw[start:end+1]), &course); err != nil {
		return nil, fmt.Errorf("parse course JSON: %w", err)
	}

	return &course, nil
}
