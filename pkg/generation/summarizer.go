package generation

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ai-course-be/internal/constant"
	"ai-course-be/pkg/apperr"
	"ai-course-be/pkg/llm"
)

// Summarizer condenses the loaded source documents, anchored on the
// course title and description, into a summary bounded by
// SummaryMaxChars.
type Summarizer struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewSummarizer(llmProvider llm.LLMProvider, logger *log.Logger) *Summarizer {
	return &Summarizer{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (s *Summarizer) Summarize(ctx context.Context, state *State) error {
	if len(state.Documents) == 0 {
		return apperr.MissingInput("summarize", "documents")
	}

	var sb strings.Builder
	for _, doc := range state.Documents {
		sb.WriteString(fmt.Sprintf("--- %s ---\n", doc.FileName))
		sb.WriteString(doc.Content)
		sb.WriteString("\n\n")
	}

	prompt := fmt.Sprintf(constant.SummarizePromptTemplate, state.Title, state.Description, sb.String())

	summary, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		return apperr.NewProvider("llm", "summarize", err)
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return apperr.NewProvider("llm", "summarize", fmt.Errorf("empty summary"))
	}

	// Hard cap so the summary column and the synthesis prompt stay bounded.
	runes := []rune(summary)
	if len(runes) > constant.SummaryMaxChars {
		summary = string(runes[:constant.SummaryMaxChars])
	}

	s.logger.Printf("[SUMMARIZE] Produced summary of %d chars from %d documents",
		len(summary), len(state.Documents))

	state.Summary = summary
	return nil
}
