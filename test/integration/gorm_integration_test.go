package integration

import (
	"context"
	"os"
	"testing"

	"ai-course-be/internal/entity"
	"ai-course-be/internal/repository/contract"
	"ai-course-be/internal/repository/specification"
	"ai-course-be/internal/repository/unitofwork"
	"ai-course-be/pkg/chunker"
	"ai-course-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// These tests need a real Postgres with the pgvector extension. They are
// skipped unless TEST_DATABASE_URL is set.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	_ = godotenv.Load("../../.env")

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := database.NewGormDB(dsn)
	require.NoError(t, err)
	return db
}

func TestCourseLifecyclePersistence(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	course := &entity.Course{
		Title:        "Integration Course",
		Description:  "lifecycle roundtrip",
		ModulesCount: 2,
		Status:       entity.StatusDraft,
	}
	require.NoError(t, uow.CourseRepository().Create(ctx, course))
	defer db.Exec("DELETE FROM courses WHERE id = ?", course.Id)

	require.NoError(t, uow.CourseRepository().UpdateStatus(ctx, course.Id, entity.StatusGenerated))
	require.NoError(t, uow.CourseRepository().UpdateSummary(ctx, course.Id, "a short summary"))

	loaded, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: course.Id})
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, entity.StatusGenerated, loaded.Status)
	assert.Equal(t, "a short summary", loaded.Summary)
}

func TestEmbeddingUpsertIsIdempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	repo := uow.CourseEmbeddingRepository()

	courseId := uuid.New()
	blockId := uuid.New()
	defer db.Exec("DELETE FROM course_embeddings WHERE course_id = ?", courseId)

	vec := make([]float32, 1536)
	vec[0] = 1

	row := &entity.CourseEmbedding{
		Id:             chunker.ChunkID(blockId, 0),
		CourseId:       courseId,
		ModuleId:       uuid.New(),
		LearnBlockId:   blockId,
		ChunkIndex:     0,
		Document:       "first version",
		EmbeddingValue: vec,
	}

	require.NoError(t, repo.Upsert(ctx, []*entity.CourseEmbedding{row}))

	// Same identity with new content must overwrite, not duplicate.
	row.Document = "second version"
	require.NoError(t, repo.Upsert(ctx, []*entity.CourseEmbedding{row}))

	count, err := repo.Count(ctx, specification.Filter("course_id", courseId))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	rows, err := repo.FindAll(ctx, specification.Filter("course_id", courseId))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "second version", rows[0].Document)
}

func TestDeleteStaleKeepsListedChunks(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	repo := uow.CourseEmbeddingRepository()

	courseId := uuid.New()
	blockId := uuid.New()
	defer db.Exec("DELETE FROM course_embeddings WHERE course_id = ?", courseId)

	vec := make([]float32, 1536)
	keepId := chunker.ChunkID(blockId, 0)
	staleId := chunker.ChunkID(blockId, 450)

	rows := []*entity.CourseEmbedding{
		{Id: keepId, CourseId: courseId, ModuleId: uuid.New(), LearnBlockId: blockId, ChunkIndex: 0, Document: "keep", EmbeddingValue: vec},
		{Id: staleId, CourseId: courseId, ModuleId: uuid.New(), LearnBlockId: blockId, ChunkIndex: 1, Document: "stale", EmbeddingValue: vec},
	}
	require.NoError(t, repo.Upsert(ctx, rows))

	require.NoError(t, repo.DeleteStale(ctx, courseId, []uuid.UUID{keepId}))

	remaining, err := repo.FindAll(ctx, specification.Filter("course_id", courseId))
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keepId, remaining[0].Id)
}

func TestSearchSimilarWithScoreOrdersByDistance(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	repo := uow.CourseEmbeddingRepository()

	courseId := uuid.New()
	blockId := uuid.New()
	defer db.Exec("DELETE FROM course_embeddings WHERE course_id = ?", courseId)

	near := make([]float32, 1536)
	near[0] = 1
	far := make([]float32, 1536)
	far[1] = 1

	rows := []*entity.CourseEmbedding{
		{Id: chunker.ChunkID(blockId, 0), CourseId: courseId, ModuleId: uuid.New(), LearnBlockId: blockId, ChunkIndex: 0, Document: "near", EmbeddingValue: near},
		{Id: chunker.ChunkID(blockId, 450), CourseId: courseId, ModuleId: uuid.New(), LearnBlockId: blockId, ChunkIndex: 1, Document: "far", EmbeddingValue: far},
	}
	require.NoError(t, repo.Upsert(ctx, rows))

	query := make([]float32, 1536)
	query[0] = 1

	results, err := repo.SearchSimilarWithScore(ctx, query, 10, contract.CourseScope{CourseID: courseId})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "near", results[0].Embedding.Document)
	assert.Greater(t, results[0].Similarity, results[1].Similarity)
}
