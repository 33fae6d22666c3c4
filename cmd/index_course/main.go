package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"ai-course-be/internal/config"
	"ai-course-be/internal/repository/specification"
	"ai-course-be/internal/repository/unitofwork"
	"ai-course-be/pkg/database"
	"ai-course-be/pkg/embedding"
	"ai-course-be/pkg/indexing"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Operator tool: index (or re-index) one approved course without going
// through the HTTP API or the message queue.
func main() {
	courseIdFlag := flag.String("course", "", "course ID to index (required)")
	verbose := flag.Bool("v", false, "show indexer logs")
	flag.Parse()

	if *courseIdFlag == "" {
		color.Red("Usage: index_course -course <course-id> [-v]")
		os.Exit(1)
	}

	courseId, err := uuid.Parse(*courseIdFlag)
	if err != nil {
		color.Red("Invalid course ID: %v", err)
		os.Exit(1)
	}

	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	embeddingProvider, err := embedding.NewEmbeddingProvider(
		cfg.AI.EmbeddingProvider, cfg.AI.EmbeddingModel, cfg.AI.OpenAIAPIKey, cfg.AI.OllamaBaseURL)
	if err != nil {
		color.Red("Failed to initialize embedding provider: %v", err)
		os.Exit(1)
	}

	indexerLogger := log.New(io.Discard, "", 0)
	if *verbose {
		indexerLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(context.Background())

	course, err := uow.CourseRepository().FindOne(context.Background(), specification.ByID{ID: courseId})
	if err != nil {
		color.Red("Failed to load course: %v", err)
		os.Exit(1)
	}
	if course == nil {
		color.Red("Course not found: %s", courseId)
		os.Exit(1)
	}

	color.Cyan("Indexing course %q (%s, status: %s)", course.Title, course.Id, course.Status)

	indexer := indexing.NewIndexer(embeddingProvider, indexerLogger)

	report, err := indexer.Execute(context.Background(), uow, course)
	if err != nil {
		color.Red("Indexing failed: %v", err)
		os.Exit(1)
	}

	color.Green("Done: %d documents, %d chunks", report.DocumentsIndexed, report.ChunksCreated)
	if len(report.Failures) > 0 {
		color.Yellow("%d chunks failed:", len(report.Failures))
		for _, f := range report.Failures {
			color.Yellow("  - %s", f)
		}
	}
}
