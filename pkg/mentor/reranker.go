package mentor

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"ai-course-be/internal/constant"
	"ai-course-be/internal/repository/contract"
	"ai-course-be/pkg/llm"
)

// Reranker asks the model to reorder retrieved chunks by relevance and
// keeps the top few. Any failure, a provider error, unparseable output,
// or no valid indices, falls back to the similarity order. Reranking is
// an optimization and must never lose an answer.
type Reranker struct {
	llmProvider llm.LLMProvider
	keepTop     int
	logger      *log.Logger
}

func NewReranker(llmProvider llm.LLMProvider, keepTop int, logger *log.Logger) *Reranker {
	return &Reranker{
		llmProvider: llmProvider,
		keepTop:     keepTop,
		logger:      logger,
	}
}

func (r *Reranker) Rerank(ctx context.Context, question string, candidates []*contract.ScoredCourseEmbedding) []*contract.ScoredCourseEmbedding {
	if len(candidates) <= r.keepTop {
		return candidates
	}

	var sb strings.Builder
	for i, c := range candidates {
		sb.WriteString(fmt.Sprintf("%d. %s\n\n", i+1, c.Embedding.Document))
	}

	prompt := fmt.Sprintf(constant.RerankPromptTemplate, question, sb.String())

	raw, err := r.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0))
	if err != nil {
		r.logger.Printf("[RERANK] Provider failed, keeping similarity order: %v", err)
		return candidates[:r.keepTop]
	}

	indices := parseRankedIndices(raw, len(candidates))
	if len(indices) == 0 {
		r.logger.Printf("[RERANK] Unparseable response %q, keeping similarity order", truncate(raw, 60))
		return candidates[:r.keepTop]
	}

	if len(indices) > r.keepTop {
		indices = indices[:r.keepTop]
	}

	reranked := make([]*contract.ScoredCourseEmbedding, 0, len(indices))
	for _, idx := range indices {
		reranked = append(reranked, candidates[idx-1])
	}

	r.logger.Printf("[RERANK] Kept %d of %d candidates", len(reranked), len(candidates))
	return reranked
}

// parseRankedIndices extracts 1-based candidate indices from a
// comma-separated model response. Out-of-range values, duplicates, and
// non-numeric tokens are discarded.
func parseRankedIndices(raw string, candidateCount int) []int {
	seen := map[int]bool{}
	var indices []int

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		idx, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		if idx < 1 || idx > candidateCount || seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}

	return indices
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
