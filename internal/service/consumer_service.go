package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-course-be/internal/dto"
	"ai-course-be/internal/repository/specification"
	"ai-course-be/internal/repository/unitofwork"
	"ai-course-be/pkg/apperr"
	"ai-course-be/pkg/indexing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the course index topic and runs the indexer for
// each requested course. Ack/Nack policy: malformed payloads, missing
// courses, and lifecycle violations are acked (retrying cannot fix them);
// everything else is nacked for redelivery.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	indexer    *indexing.Indexer
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	indexer *indexing.Indexer,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		indexer:    indexer,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIndexCourseMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal index message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing index request for course %s", payload.CourseId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: payload.CourseId})
	if err != nil {
		log.Printf("[ERROR] Failed to get course %s: %v", payload.CourseId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if course == nil {
		log.Printf("[WARN] Course not found, dropping index request: %s", payload.CourseId)
		msg.Ack()
		return
	}

	report, err := cs.indexer.Execute(ctx, uow, course)
	if err != nil {
		if apperr.IsPrecondition(err) {
			// The course left the approved state before we got here.
			// Redelivery cannot change that.
			log.Printf("[WARN] Dropping index request for course %s: %v", payload.CourseId, err)
			msg.Ack()
			return
		}
		log.Printf("[ERROR] Indexing course %s failed: %v", payload.CourseId, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Indexed course %s: %d documents, %d chunks, %d failures",
		payload.CourseId, report.DocumentsIndexed, report.ChunksCreated, len(report.Failures))
	msg.Ack()
}
