package service

import (
	"context"
	"encoding/json"

	"ai-course-be/internal/dto"
	"ai-course-be/internal/entity"
	"ai-course-be/internal/pkg/logger"
	"ai-course-be/internal/repository/specification"
	"ai-course-be/internal/repository/unitofwork"
	"ai-course-be/pkg/apperr"

	"github.com/google/uuid"
)

type ICourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CreateCourseResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.CourseResponse, error)
	GetAll(ctx context.Context, limit, offset int) ([]*dto.CourseResponse, error)
	AddFile(ctx context.Context, courseId uuid.UUID, req *dto.RegisterCourseFileRequest) (*dto.RegisterCourseFileResponse, error)
	Approve(ctx context.Context, id uuid.UUID) (*dto.CourseStatusResponse, error)
	Publish(ctx context.Context, id uuid.UUID) (*dto.CourseStatusResponse, error)
	Archive(ctx context.Context, id uuid.UUID) (*dto.CourseStatusResponse, error)
}

type courseService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	sysLogger        logger.ILogger
}

func NewCourseService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) ICourseService {
	return &courseService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		sysLogger:        sysLogger,
	}
}

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CreateCourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course := &entity.Course{
		Title:        req.Title,
		Description:  req.Description,
		ModulesCount: req.ModulesCount,
		Status:       entity.StatusDraft,
	}
	if course.ModulesCount <= 0 {
		course.ModulesCount = 3
	}

	if err := uow.CourseRepository().Create(ctx, course); err != nil {
		return nil, err
	}

	s.sysLogger.Info("course", "Course created", map[string]interface{}{
		"course_id": course.Id.String(),
		"title":     course.Title,
	})

	return &dto.CreateCourseResponse{Id: course.Id}, nil
}

func (s *courseService) Show(ctx context.Context, id uuid.UUID) (*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.NewNotFound("course", id.String())
	}

	return toCourseResponse(course), nil
}

func (s *courseService) GetAll(ctx context.Context, limit, offset int) ([]*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	courses, err := uow.CourseRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		result = append(result, toCourseResponse(course))
	}
	return result, nil
}

func (s *courseService) AddFile(ctx context.Context, courseId uuid.UUID, req *dto.RegisterCourseFileRequest) (*dto.RegisterCourseFileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: courseId})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.NewNotFound("course", courseId.String())
	}
	// Sources are frozen once generation has run.
	if course.Status != entity.StatusDraft {
		return nil, apperr.NewPrecondition("add course file", string(course.Status), string(entity.StatusDraft))
	}

	file := &entity.CourseFile{
		CourseId: courseId,
		FileName: req.FileName,
		FilePath: req.FilePath,
	}
	if err := uow.CourseFileRepository().Create(ctx, file); err != nil {
		return nil, err
	}

	return &dto.RegisterCourseFileResponse{Id: file.Id}, nil
}

func (s *courseService) Approve(ctx context.Context, id uuid.UUID) (*dto.CourseStatusResponse, error) {
	res, err := s.transition(ctx, id, entity.StatusApproved)
	if err != nil {
		return nil, err
	}

	// Approval makes the course indexable; kick off indexing in the
	// background so the approval request stays fast.
	payload, err := json.Marshal(dto.PublishIndexCourseMessage{CourseId: id})
	if err == nil {
		if pubErr := s.publisherService.Publish(ctx, payload); pubErr != nil {
			s.sysLogger.Warn("course", "Failed to publish index request", map[string]interface{}{
				"course_id": id.String(),
				"error":     pubErr.Error(),
			})
		}
	}

	return res, nil
}

func (s *courseService) Publish(ctx context.Context, id uuid.UUID) (*dto.CourseStatusResponse, error) {
	return s.transition(ctx, id, entity.StatusPublished)
}

func (s *courseService) Archive(ctx context.Context, id uuid.UUID) (*dto.CourseStatusResponse, error) {
	return s.transition(ctx, id, entity.StatusArchived)
}

func (s *courseService) transition(ctx context.Context, id uuid.UUID, next entity.CourseStatus) (*dto.CourseStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.NewNotFound("course", id.String())
	}

	if !course.Status.CanTransitionTo(next) {
		return nil, apperr.NewPrecondition("transition to "+string(next), string(course.Status), string(next))
	}

	if err := uow.CourseRepository().UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	s.sysLogger.Info("course", "Course status changed", map[string]interface{}{
		"course_id": id.String(),
		"from":      string(course.Status),
		"to":        string(next),
	})

	return &dto.CourseStatusResponse{Id: id, Status: string(next)}, nil
}

func toCourseResponse(course *entity.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		Id:           course.Id,
		Title:        course.Title,
		Description:  course.Description,
		ModulesCount: course.ModulesCount,
		Summary:      course.Summary,
		Status:       string(course.Status),
		CreatedAt:    course.CreatedAt,
		UpdatedAt:    course.UpdatedAt,
	}
}
