package implementation

import (
	"context"

	"ai-course-be/internal/entity"
	"ai-course-be/internal/mapper"
	"ai-course-be/internal/model"
	"ai-course-be/internal/repository/contract"
	"ai-course-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CourseEmbeddingMapper
}

func NewCourseEmbeddingRepository(db *gorm.DB) contract.CourseEmbeddingRepository {
	return &CourseEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewCourseEmbeddingMapper(),
	}
}

func (r *CourseEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert relies on the deterministic chunk identity as primary key:
// ON CONFLICT (id) DO UPDATE makes re-indexing unchanged content a
// storage-level no-op instead of an append.
func (r *CourseEmbeddingRepositoryImpl) Upsert(ctx context.Context, embeddings []*entity.CourseEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}

	models := r.mapper.ToModels(embeddings)

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "embedding_value", "chunk_index", "updated_at"}),
		}).
		Create(models).Error
}

func (r *CourseEmbeddingRepositoryImpl) DeleteStale(ctx context.Context, courseId uuid.UUID, keep []uuid.UUID) error {
	query := r.db.WithContext(ctx).Where("course_id = ?", courseId)
	if len(keep) > 0 {
		query = query.Where("id NOT IN ?", keep)
	}
	return query.Delete(&model.CourseEmbedding{}).Error
}

func (r *CourseEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CourseEmbedding, error) {
	var models []*model.CourseEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CourseEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.CourseEmbedding{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns chunks with similarity scores for one
// course (optionally narrowed to a module).
// Cosine distance in pgvector is 1 - cosine_similarity, so we compute
// 1 - (embedding_value <=> query_vector) and order by it descending.
func (r *CourseEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, scope contract.CourseScope) ([]*contract.ScoredCourseEmbedding, error) {
	if limit <= 0 {
		limit = 10
	}

	type result struct {
		model.CourseEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	query := r.db.WithContext(ctx).
		Table("course_embeddings").
		Select("course_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("course_id = ?", scope.CourseID)

	if scope.ModuleID != nil {
		query = query.Where("module_id = ?", *scope.ModuleID)
	}

	err := query.
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredCourseEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredCourseEmbedding{
			Embedding:  r.mapper.ToEntity(&res.CourseEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
