package mapper

import (
	"ai-course-be/internal/entity"
	"ai-course-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type CourseEmbeddingMapper struct{}

func NewCourseEmbeddingMapper() *CourseEmbeddingMapper {
	return &CourseEmbeddingMapper{}
}

func (m *CourseEmbeddingMapper) ToEntity(e *model.CourseEmbedding) *entity.CourseEmbedding {
	if e == nil {
		return nil
	}
	return &entity.CourseEmbedding{
		Id:             e.Id,
		CourseId:       e.CourseId,
		ModuleId:       e.ModuleId,
		LearnBlockId:   e.LearnBlockId,
		ChunkIndex:     e.ChunkIndex,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *CourseEmbeddingMapper) ToModel(e *entity.CourseEmbedding) *model.CourseEmbedding {
	if e == nil {
		return nil
	}
	return &model.CourseEmbedding{
		Id:             e.Id,
		CourseId:       e.CourseId,
		ModuleId:       e.ModuleId,
		LearnBlockId:   e.LearnBlockId,
		ChunkIndex:     e.ChunkIndex,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *CourseEmbeddingMapper) ToEntities(models []*model.CourseEmbedding) []*entity.CourseEmbedding {
	entities := make([]*entity.CourseEmbedding, len(models))
	for i, e := range models {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *CourseEmbeddingMapper) ToModels(embeddings []*entity.CourseEmbedding) []*model.CourseEmbedding {
	models := make([]*model.CourseEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = m.ToModel(e)
	}
	return models
}
