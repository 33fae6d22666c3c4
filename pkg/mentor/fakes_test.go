package mentor

import (
	"context"
	"fmt"

	"ai-course-be/internal/entity"
	"ai-course-be/internal/repository/contract"
	"ai-course-be/internal/repository/specification"
	"ai-course-be/pkg/embedding"
	"ai-course-be/pkg/llm"

	"github.com/google/uuid"
)

type scriptedLLM struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (s *scriptedLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	s.prompts = append(s.prompts, prompt)
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", fmt.Errorf("scriptedLLM: unexpected call %d", i)
}

func (s *scriptedLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("scriptedLLM: empty history")
	}
	return s.Generate(ctx, history[len(history)-1].Content, opts...)
}

type fakeEmbedder struct {
	err   error
	calls int
}

func (f *fakeEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{1, 0, 0}},
	}, nil
}

type fakeContentRepo struct {
	scopes      map[uuid.UUID]*entity.LearnBlockScope
	scopeLookups int
}

func (r *fakeContentRepo) CreateModuleGraph(ctx context.Context, courseId uuid.UUID, modules []*entity.Module) error {
	return nil
}
func (r *fakeContentRepo) FindActiveLearnBlocks(ctx context.Context, courseId uuid.UUID) ([]*entity.LearnBlock, error) {
	return nil, nil
}
func (r *fakeContentRepo) FindLearnBlockScope(ctx context.Context, learnBlockId uuid.UUID) (*entity.LearnBlockScope, error) {
	r.scopeLookups++
	return r.scopes[learnBlockId], nil
}
func (r *fakeContentRepo) CountModules(ctx context.Context, courseId uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeEmbeddingRepo struct {
	results   []*contract.ScoredCourseEmbedding
	lastLimit int
	lastScope contract.CourseScope
	err       error
}

func (r *fakeEmbeddingRepo) Upsert(ctx context.Context, embeddings []*entity.CourseEmbedding) error {
	return nil
}
func (r *fakeEmbeddingRepo) DeleteStale(ctx context.Context, courseId uuid.UUID, keep []uuid.UUID) error {
	return nil
}
func (r *fakeEmbeddingRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CourseEmbedding, error) {
	return nil, nil
}
func (r *fakeEmbeddingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (r *fakeEmbeddingRepo) SearchSimilarWithScore(ctx context.Context, emb []float32, limit int, scope contract.CourseScope) ([]*contract.ScoredCourseEmbedding, error) {
	r.lastLimit = limit
	r.lastScope = scope
	return r.results, r.err
}

type fakeUnitOfWork struct {
	contentRepo   *fakeContentRepo
	embeddingRepo *fakeEmbeddingRepo
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		contentRepo:   &fakeContentRepo{scopes: map[uuid.UUID]*entity.LearnBlockScope{}},
		embeddingRepo: &fakeEmbeddingRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) CourseRepository() contract.CourseRepository         { return nil }
func (u *fakeUnitOfWork) CourseFileRepository() contract.CourseFileRepository { return nil }
func (u *fakeUnitOfWork) CourseContentRepository() contract.CourseContentRepository {
	return u.contentRepo
}
func (u *fakeUnitOfWork) CourseEmbeddingRepository() contract.CourseEmbeddingRepository {
	return u.embeddingRepo
}

func scoredChunk(doc string, similarity float64) *contract.ScoredCourseEmbedding {
	return &contract.ScoredCourseEmbedding{
		Embedding: &entity.CourseEmbedding{
			Id:           uuid.New(),
			LearnBlockId: uuid.New(),
			Document:     doc,
		},
		Similarity: similarity,
	}
}
