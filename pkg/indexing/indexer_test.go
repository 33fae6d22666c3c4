package indexing

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"ai-course-be/internal/entity"
	"ai-course-be/internal/repository/contract"
	"ai-course-be/internal/repository/specification"
	"ai-course-be/pkg/apperr"
	"ai-course-be/pkg/chunker"
	"ai-course-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// fakeEmbedder derives a tiny vector from the text length so results are
// deterministic. Texts containing failOn return an error.
type fakeEmbedder struct {
	failOn string
	calls  int
}

func (f *fakeEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.calls++
	if f.failOn != "" && strings.Contains(text, f.failOn) {
		return nil, fmt.Errorf("embedding backend down")
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{
			Values: []float32{float32(len(text)), 1, 0},
		},
	}, nil
}

type fakeContentRepo struct {
	blocks []*entity.LearnBlock
}

func (r *fakeContentRepo) CreateModuleGraph(ctx context.Context, courseId uuid.UUID, modules []*entity.Module) error {
	return nil
}
func (r *fakeContentRepo) FindActiveLearnBlocks(ctx context.Context, courseId uuid.UUID) ([]*entity.LearnBlock, error) {
	return r.blocks, nil
}
func (r *fakeContentRepo) FindLearnBlockScope(ctx context.Context, learnBlockId uuid.UUID) (*entity.LearnBlockScope, error) {
	return nil, nil
}
func (r *fakeContentRepo) CountModules(ctx context.Context, courseId uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeEmbeddingRepo struct {
	upserted  []*entity.CourseEmbedding
	keep      []uuid.UUID
	failUpser bool
}

func (r *fakeEmbeddingRepo) Upsert(ctx context.Context, embeddings []*entity.CourseEmbedding) error {
	if r.failUpser {
		return fmt.Errorf("upsert failed")
	}
	r.upserted = append(r.upserted, embeddings...)
	return nil
}
func (r *fakeEmbeddingRepo) DeleteStale(ctx context.Context, courseId uuid.UUID, keep []uuid.UUID) error {
	r.keep = keep
	return nil
}
func (r *fakeEmbeddingRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CourseEmbedding, error) {
	return nil, nil
}
func (r *fakeEmbeddingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.upserted)), nil
}
func (r *fakeEmbeddingRepo) SearchSimilarWithScore(ctx context.Context, emb []float32, limit int, scope contract.CourseScope) ([]*contract.ScoredCourseEmbedding, error) {
	return nil, nil
}

type fakeUnitOfWork struct {
	contentRepo   *fakeContentRepo
	embeddingRepo *fakeEmbeddingRepo
	began         int
	committed     int
	rolledBack    int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		contentRepo:   &fakeContentRepo{},
		embeddingRepo: &fakeEmbeddingRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { u.began++; return nil }
func (u *fakeUnitOfWork) Commit() error                   { u.committed++; return nil }
func (u *fakeUnitOfWork) Rollback() error                 { u.rolledBack++; return nil }

func (u *fakeUnitOfWork) CourseRepository() contract.CourseRepository         { return nil }
func (u *fakeUnitOfWork) CourseFileRepository() contract.CourseFileRepository { return nil }
func (u *fakeUnitOfWork) CourseContentRepository() contract.CourseContentRepository {
	return u.contentRepo
}
func (u *fakeUnitOfWork) CourseEmbeddingRepository() contract.CourseEmbeddingRepository {
	return u.embeddingRepo
}

func approvedCourse() *entity.Course {
	return &entity.Course{Id: uuid.New(), Status: entity.StatusApproved}
}

func TestIndexer_RejectsUnapprovedCourse(t *testing.T) {
	idx := NewIndexer(&fakeEmbedder{}, discardLogger())

	course := &entity.Course{Id: uuid.New(), Status: entity.StatusDraft}
	_, err := idx.Execute(context.Background(), newFakeUnitOfWork(), course)
	assert.True(t, apperr.IsPrecondition(err))
}

func TestIndexer_IndexesAllBlocks(t *testing.T) {
	course := approvedCourse()
	moduleId := uuid.New()
	uow := newFakeUnitOfWork()
	uow.contentRepo.blocks = []*entity.LearnBlock{
		{Id: uuid.New(), ModuleId: moduleId, CourseId: course.Id, Content: "short block"},
		{Id: uuid.New(), ModuleId: moduleId, CourseId: course.Id, Content: strings.Repeat("b", 1200)},
	}

	idx := NewIndexer(&fakeEmbedder{}, discardLogger())
	report, err := idx.Execute(context.Background(), uow, course)
	require.NoError(t, err)

	// 1 chunk from the short block, 3 overlapping windows from the long one.
	assert.Equal(t, 2, report.DocumentsIndexed)
	assert.Equal(t, 4, report.ChunksCreated)
	assert.Empty(t, report.Failures)
	assert.Len(t, uow.embeddingRepo.upserted, 4)
	assert.Len(t, uow.embeddingRepo.keep, 4)
	assert.Equal(t, 1, uow.committed)

	for _, e := range uow.embeddingRepo.upserted {
		assert.Equal(t, course.Id, e.CourseId)
		assert.Equal(t, moduleId, e.ModuleId)
		assert.NotEmpty(t, e.EmbeddingValue)
	}
}

func TestIndexer_IdentityIsStableAcrossRuns(t *testing.T) {
	course := approvedCourse()
	block := &entity.LearnBlock{Id: uuid.New(), ModuleId: uuid.New(), CourseId: course.Id, Content: strings.Repeat("c", 800)}

	run := func() []*entity.CourseEmbedding {
		uow := newFakeUnitOfWork()
		uow.contentRepo.blocks = []*entity.LearnBlock{block}
		idx := NewIndexer(&fakeEmbedder{}, discardLogger())
		_, err := idx.Execute(context.Background(), uow, course)
		require.NoError(t, err)
		return uow.embeddingRepo.upserted
	}

	first := run()
	second := run()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Id, second[i].Id)
	}
}

func TestIndexer_AccumulatesPerChunkFailures(t *testing.T) {
	course := approvedCourse()
	uow := newFakeUnitOfWork()
	uow.contentRepo.blocks = []*entity.LearnBlock{
		{Id: uuid.New(), ModuleId: uuid.New(), CourseId: course.Id, Content: "good content"},
		{Id: uuid.New(), ModuleId: uuid.New(), CourseId: course.Id, Content: "POISON content"},
	}

	idx := NewIndexer(&fakeEmbedder{failOn: "POISON"}, discardLogger())
	report, err := idx.Execute(context.Background(), uow, course)
	require.NoError(t, err)

	assert.Equal(t, 1, report.ChunksCreated)
	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0], "embedding backend down")

	// The failed chunk's identity stays in the keep set so a previously
	// stored row for it is not deleted as stale.
	assert.Len(t, uow.embeddingRepo.keep, 2)
	assert.Len(t, uow.embeddingRepo.upserted, 1)
}

func TestIndexer_SkipsEmptyBlocks(t *testing.T) {
	course := approvedCourse()
	uow := newFakeUnitOfWork()
	uow.contentRepo.blocks = []*entity.LearnBlock{
		{Id: uuid.New(), ModuleId: uuid.New(), CourseId: course.Id, Content: ""},
	}

	idx := NewIndexer(&fakeEmbedder{}, discardLogger())
	report, err := idx.Execute(context.Background(), uow, course)
	require.NoError(t, err)

	assert.Equal(t, 0, report.DocumentsIndexed)
	assert.Equal(t, 0, report.ChunksCreated)
	// Stale deletion still runs so wiped content removes its rows.
	assert.Equal(t, 1, uow.committed)
	assert.Empty(t, uow.embeddingRepo.keep)
}

func TestIndexer_RollsBackOnUpsertFailure(t *testing.T) {
	course := approvedCourse()
	uow := newFakeUnitOfWork()
	uow.embeddingRepo.failUpser = true
	uow.contentRepo.blocks = []*entity.LearnBlock{
		{Id: uuid.New(), ModuleId: uuid.New(), CourseId: course.Id, Content: "content"},
	}

	idx := NewIndexer(&fakeEmbedder{}, discardLogger())
	_, err := idx.Execute(context.Background(), uow, course)
	require.Error(t, err)
	assert.Equal(t, 1, uow.rolledBack)
	assert.Equal(t, 0, uow.committed)
}

func TestIndexer_ChunkIdentityMatchesChunker(t *testing.T) {
	course := approvedCourse()
	blockId := uuid.New()
	uow := newFakeUnitOfWork()
	uow.contentRepo.blocks = []*entity.LearnBlock{
		{Id: blockId, ModuleId: uuid.New(), CourseId: course.Id, Content: "stable"},
	}

	idx := NewIndexer(&fakeEmbedder{}, discardLogger())
	_, err := idx.Execute(context.Background(), uow, course)
	require.NoError(t, err)

	require.Len(t, uow.embeddingRepo.upserted, 1)
	assert.Equal(t, chunker.ChunkID(blockId, 0), uow.embeddingRepo.upserted[0].Id)
}
