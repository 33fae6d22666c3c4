package indexing

import (
	"context"
	"fmt"
	"log"

	"ai-course-be/internal/constant"
	"ai-course-be/internal/entity"
	"ai-course-be/internal/repository/unitofwork"
	"ai-course-be/pkg/apperr"
	"ai-course-be/pkg/chunker"
	"ai-course-be/pkg/embedding"

	"github.com/google/uuid"
)

// Indexer chunks the learn blocks of an approved course, embeds each
// chunk, and upserts the result under deterministic chunk identities.
// Re-running against unchanged content rewrites identical rows, and
// stale rows from shrunk content are removed afterwards.
type Indexer struct {
	embeddingProvider embedding.EmbeddingProvider
	logger            *log.Logger
}

func NewIndexer(embeddingProvider embedding.EmbeddingProvider, logger *log.Logger) *Indexer {
	return &Indexer{
		embeddingProvider: embeddingProvider,
		logger:            logger,
	}
}

// Report summarizes one indexing run. A run with Failures is partial:
// the listed chunks were skipped, everything else was written.
type Report struct {
	DocumentsIndexed int
	ChunksCreated    int
	Failures         []string
}

func (i *Indexer) Execute(ctx context.Context, uow unitofwork.UnitOfWork, course *entity.Course) (*Report, error) {
	if course.Status != entity.StatusApproved {
		return nil, apperr.NewPrecondition("index course", string(course.Status), string(entity.StatusApproved))
	}

	blocks, err := uow.CourseContentRepository().FindActiveLearnBlocks(ctx, course.Id)
	if err != nil {
		return nil, fmt.Errorf("list learn blocks: %w", err)
	}

	i.logger.Printf("[INDEX] Indexing course %s: %d learn blocks", course.Id, len(blocks))

	report := &Report{}
	var embeddings []*entity.CourseEmbedding
	// keep holds every identity derived from current content, including
	// chunks whose embedding failed this run. Stale deletion must not
	// remove rows that merely failed to re-embed.
	var keep []uuid.UUID

	for _, block := range blocks {
		chunks := chunker.Split(block.Content, constant.ChunkWindowSize, constant.ChunkOverlap)
		if len(chunks) == 0 {
			continue
		}
		report.DocumentsIndexed++

		for _, chunk := range chunks {
			chunkId := chunker.ChunkID(block.Id, chunk.Start)
			keep = append(keep, chunkId)

			resp, err := i.embeddingProvider.Generate(chunk.Text, embedding.TaskTypeDocument)
			if err != nil {
				failure := fmt.Sprintf("learn block %s chunk %d: %v", block.Id, chunk.Index, err)
				report.Failures = append(report.Failures, failure)
				i.logger.Printf("[INDEX] Skipping chunk: %s", failure)
				continue
			}

			embeddings = append(embeddings, &entity.CourseEmbedding{
				Id:             chunkId,
				CourseId:       block.CourseId,
				ModuleId:       block.ModuleId,
				LearnBlockId:   block.Id,
				ChunkIndex:     chunk.Index,
				Document:       chunk.Text,
				EmbeddingValue: resp.Embedding.Values,
			})
			report.ChunksCreated++
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin index transaction: %w", err)
	}

	if len(embeddings) > 0 {
		if err := uow.CourseEmbeddingRepository().Upsert(ctx, embeddings); err != nil {
			_ = uow.Rollback()
			return nil, fmt.Errorf("upsert embeddings: %w", err)
		}
	}

	if err := uow.CourseEmbeddingRepository().DeleteStale(ctx, course.Id, keep); err != nil {
		_ = uow.Rollback()
		return nil, fmt.Errorf("delete stale embeddings: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit index transaction: %w", err)
	}

	i.logger.Printf("[INDEX] Course %s indexed: %d documents, %d chunks, %d failures",
		course.Id, report.DocumentsIndexed, report.ChunksCreated, len(report.Failures))

	return report, nil
}
