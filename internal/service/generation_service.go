package service

import (
	"context"

	"ai-course-be/internal/dto"
	"ai-course-be/internal/repository/specification"
	"ai-course-be/internal/repository/unitofwork"
	"ai-course-be/pkg/apperr"
	"ai-course-be/pkg/generation"

	"github.com/google/uuid"
)

type IGenerationService interface {
	Generate(ctx context.Context, courseId uuid.UUID) (*dto.GenerateCourseResponse, error)
}

type generationService struct {
	uowFactory unitofwork.RepositoryFactory
	pipeline   *generation.Pipeline
}

func NewGenerationService(uowFactory unitofwork.RepositoryFactory, pipeline *generation.Pipeline) IGenerationService {
	return &generationService{
		uowFactory: uowFactory,
		pipeline:   pipeline,
	}
}

func (s *generationService) Generate(ctx context.Context, courseId uuid.UUID) (*dto.GenerateCourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: courseId})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.NewNotFound("course", courseId.String())
	}

	result, err := s.pipeline.Execute(ctx, uow, course)
	if err != nil {
		return nil, err
	}

	return &dto.GenerateCourseResponse{
		CourseId:     result.CourseId,
		ModuleCount:  result.ModuleCount,
		SummaryChars: result.SummaryChars,
	}, nil
}
