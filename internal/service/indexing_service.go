package service

import (
	"context"
	"encoding/json"

	"ai-course-be/internal/dto"
	"ai-course-be/internal/repository/specification"
	"ai-course-be/internal/repository/unitofwork"
	"ai-course-be/pkg/apperr"
	"ai-course-be/pkg/indexing"

	"github.com/google/uuid"
)

type IIndexingService interface {
	Index(ctx context.Context, courseId uuid.UUID) (*dto.IndexCourseResponse, error)
	// IndexAsync queues the run on the course index topic instead of
	// executing it inline.
	IndexAsync(ctx context.Context, courseId uuid.UUID) error
}

type indexingService struct {
	uowFactory       unitofwork.RepositoryFactory
	indexer          *indexing.Indexer
	publisherService IPublisherService
}

func NewIndexingService(
	uowFactory unitofwork.RepositoryFactory,
	indexer *indexing.Indexer,
	publisherService IPublisherService,
) IIndexingService {
	return &indexingService{
		uowFactory:       uowFactory,
		indexer:          indexer,
		publisherService: publisherService,
	}
}

func (s *indexingService) Index(ctx context.Context, courseId uuid.UUID) (*dto.IndexCourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: courseId})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.NewNotFound("course", courseId.String())
	}

	report, err := s.indexer.Execute(ctx, uow, course)
	if err != nil {
		return nil, err
	}

	return &dto.IndexCourseResponse{
		CourseId:         courseId.String(),
		DocumentsIndexed: report.DocumentsIndexed,
		ChunksCreated:    report.ChunksCreated,
		Failures:         report.Failures,
	}, nil
}

func (s *indexingService) IndexAsync(ctx context.Context, courseId uuid.UUID) error {
	payload, err := json.Marshal(dto.PublishIndexCourseMessage{CourseId: courseId})
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payload)
}
