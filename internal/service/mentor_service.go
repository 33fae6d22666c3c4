package service

import (
	"context"

	"ai-course-be/internal/dto"
	"ai-course-be/internal/repository/unitofwork"
	"ai-course-be/pkg/mentor"

	"github.com/google/uuid"
)

type IMentorService interface {
	Ask(ctx context.Context, learnBlockId uuid.UUID, req *dto.AskMentorRequest) (*dto.AskMentorResponse, error)
}

type mentorService struct {
	uowFactory unitofwork.RepositoryFactory
	pipeline   *mentor.Pipeline
}

func NewMentorService(uowFactory unitofwork.RepositoryFactory, pipeline *mentor.Pipeline) IMentorService {
	return &mentorService{
		uowFactory: uowFactory,
		pipeline:   pipeline,
	}
}

func (s *mentorService) Ask(ctx context.Context, learnBlockId uuid.UUID, req *dto.AskMentorRequest) (*dto.AskMentorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	answer, err := s.pipeline.Execute(ctx, uow, learnBlockId, req.Question)
	if err != nil {
		return nil, err
	}

	sources := make([]dto.MentorSourceDTO, 0, len(answer.Sources))
	for _, src := range answer.Sources {
		sources = append(sources, dto.MentorSourceDTO{
			ChunkId:      src.ChunkId,
			LearnBlockId: src.LearnBlockId,
			Similarity:   src.Similarity,
		})
	}

	return &dto.AskMentorResponse{
		Answer:  answer.Reply,
		Sources: sources,
	}, nil
}
