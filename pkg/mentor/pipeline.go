package mentor

import (
	"context"
	"log"

	"ai-course-be/internal/constant"
	"ai-course-be/internal/entity"
	"ai-course-be/internal/repository/contract"
	"ai-course-be/internal/repository/memory"
	"ai-course-be/internal/repository/unitofwork"
	"ai-course-be/pkg/apperr"
	"ai-course-be/pkg/embedding"
	"ai-course-be/pkg/llm"

	"github.com/google/uuid"
)

// Pipeline answers learner questions about one learn block in three
// phases: Retrieve -> Rerank -> Generate. The question is scoped to the
// block's course (and module) and only runs against courses whose
// lifecycle allows answering.
type Pipeline struct {
	retriever *Retriever
	reranker  *Reranker
	generator *Generator
	scopeRepo *memory.ScopeRepository
	logger    *log.Logger
}

func NewPipeline(
	llmProvider llm.LLMProvider,
	embeddingProvider embedding.EmbeddingProvider,
	scopeRepo *memory.ScopeRepository,
	topK int,
	logger *log.Logger,
) *Pipeline {
	if topK <= 0 {
		topK = constant.RetrieveTopK
	}
	return &Pipeline{
		retriever: NewRetriever(embeddingProvider, topK, logger),
		reranker:  NewReranker(llmProvider, constant.RerankKeepTop, logger),
		generator: NewGenerator(llmProvider, logger),
		scopeRepo: scopeRepo,
		logger:    logger,
	}
}

// Source points at a chunk that grounded the answer.
type Source struct {
	ChunkId      uuid.UUID
	LearnBlockId uuid.UUID
	Similarity   float64
}

// Answer is the mentor's reply plus the material it was grounded on.
// Sources is empty for the fixed fallback replies.
type Answer struct {
	Reply   string
	Sources []Source
}

func (p *Pipeline) Execute(ctx context.Context, uow unitofwork.UnitOfWork, learnBlockId uuid.UUID, question string) (*Answer, error) {
	scope, err := p.resolveScope(ctx, uow, learnBlockId)
	if err != nil {
		return nil, err
	}
	if scope == nil {
		p.logger.Printf("[PIPELINE] Learn block %s not found", learnBlockId)
		return &Answer{Reply: constant.MentorBlockNotFoundAnswer}, nil
	}

	if !scope.CourseStatus.Queryable() {
		return nil, apperr.NewPrecondition("ask mentor", string(scope.CourseStatus),
			string(entity.StatusApproved)+" or "+string(entity.StatusArchived))
	}

	p.logger.Printf("[PIPELINE] Answering question on learn block %s (course %s)", learnBlockId, scope.CourseId)

	searchScope := contract.CourseScope{
		CourseID: scope.CourseId,
		ModuleID: &scope.ModuleId,
	}

	candidates, err := p.retriever.Retrieve(ctx, uow, question, searchScope)
	if err != nil {
		p.logger.Printf("[RETRIEVE] Failed: %v", err)
		return &Answer{Reply: constant.MentorErrorAnswer}, nil
	}

	chunks := p.reranker.Rerank(ctx, question, candidates)

	reply := p.generator.Generate(ctx, question, chunks)

	sources := make([]Source, 0, len(chunks))
	for _, c := range chunks {
		sources = append(sources, Source{
			ChunkId:      c.Embedding.Id,
			LearnBlockId: c.Embedding.LearnBlockId,
			Similarity:   c.Similarity,
		})
	}

	return &Answer{Reply: reply, Sources: sources}, nil
}

// resolveScope looks up the learn block's (course, module) scope, going
// through the cache first. Cache entries expire quickly so a lifecycle
// change is observed within minutes.
func (p *Pipeline) resolveScope(ctx context.Context, uow unitofwork.UnitOfWork, learnBlockId uuid.UUID) (*entity.LearnBlockScope, error) {
	if p.scopeRepo != nil {
		if scope, found := p.scopeRepo.Get(learnBlockId.String()); found {
			return scope, nil
		}
	}

	scope, err := uow.CourseContentRepository().FindLearnBlockScope(ctx, learnBlockId)
	if err != nil {
		return nil, err
	}
	if scope != nil && p.scopeRepo != nil {
		p.scopeRepo.Save(scope)
	}
	return scope, nil
}
