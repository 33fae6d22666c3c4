package mentor

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ai-course-be/internal/constant"
	"ai-course-be/internal/repository/contract"
	"ai-course-be/pkg/llm"
)

// Generator produces the grounded answer. It never returns an error:
// with no context it returns the fixed refusal, and on provider failure
// the fixed apology, so learners always get a usable reply.
type Generator struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewGenerator(llmProvider llm.LLMProvider, logger *log.Logger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (g *Generator) Generate(ctx context.Context, question string, chunks []*contract.ScoredCourseEmbedding) string {
	if len(chunks) == 0 {
		return constant.MentorNoContextAnswer
	}

	var sb strings.Builder
	for i, c := range chunks {
		sb.WriteString(fmt.Sprintf("[Chunk %d]\n", i+1))
		sb.WriteString(c.Embedding.Document)
		sb.WriteString("\n\n")
	}

	prompt := fmt.Sprintf(constant.MentorPromptTemplate, sb.String(), question)

	answer, err := g.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.5),
		llm.WithMaxTokens(300),
	)
	if err != nil {
		g.logger.Printf("[GENERATE] Provider failed: %v", err)
		return constant.MentorErrorAnswer
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return constant.MentorErrorAnswer
	}

	// Hard cap regardless of what the model produced.
	runes := []rune(answer)
	if len(runes) > constant.AnswerMaxChars {
		answer = string(runes[:constant.AnswerMaxChars])
	}

	return answer
}
