package mentor

import (
	"context"
	"log"

	"ai-course-be/internal/repository/contract"
	"ai-course-be/internal/repository/unitofwork"
	"ai-course-be/pkg/apperr"
	"ai-course-be/pkg/embedding"
)

// Retriever embeds the learner's question and runs the scoped similarity
// search against the course embeddings.
type Retriever struct {
	embeddingProvider embedding.EmbeddingProvider
	topK              int
	logger            *log.Logger
}

func NewRetriever(embeddingProvider embedding.EmbeddingProvider, topK int, logger *log.Logger) *Retriever {
	return &Retriever{
		embeddingProvider: embeddingProvider,
		topK:              topK,
		logger:            logger,
	}
}

func (r *Retriever) Retrieve(ctx context.Context, uow unitofwork.UnitOfWork, question string, scope contract.CourseScope) ([]*contract.ScoredCourseEmbedding, error) {
	resp, err := r.embeddingProvider.Generate(question, embedding.TaskTypeQuery)
	if err != nil {
		return nil, apperr.NewProvider("embedding", "embed query", err)
	}

	candidates, err := uow.CourseEmbeddingRepository().SearchSimilarWithScore(ctx, resp.Embedding.Values, r.topK, scope)
	if err != nil {
		return nil, err
	}

	r.logger.Printf("[RETRIEVE] Found %d candidates for course %s", len(candidates), scope.CourseID)
	return candidates, nil
}
