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
	"ai-course-be/pkg/generation"
	"ai-course-be/pkg/llm/factory"
	"ai-course-be/pkg/loader"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Operator tool: run the generation pipeline for one course without
// going through the HTTP API.
func main() {
	courseIdFlag := flag.String("course", "", "course ID to generate (required)")
	verbose := flag.Bool("v", false, "show pipeline phase logs")
	flag.Parse()

	if *courseIdFlag == "" {
		color.Red("Usage: generate_course -course <course-id> [-v]")
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

	llmProvider, err := factory.NewLLMProvider(cfg.AI.LLMProvider, cfg.AI.LLMModel, cfg.AI.OpenAIAPIKey, cfg.AI.OllamaBaseURL)
	if err != nil {
		color.Red("Failed to initialize LLM provider: %v", err)
		os.Exit(1)
	}

	pipelineLogger := log.New(io.Discard, "", 0)
	if *verbose {
		pipelineLogger = log.New(os.Stdout, "", log.LstdFlags)
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

	color.Cyan("Generating course %q (%s, status: %s)", course.Title, course.Id, course.Status)

	pipeline := generation.NewPipeline(loader.NewFileLoader(cfg.App.SourceFilesDir), llmProvider, pipelineLogger)

	result, err := pipeline.Execute(context.Background(), uow, course)
	if err != nil {
		color.Red("Generation failed: %v", err)
		os.Exit(1)
	}

	color.Green("Done: %d modules, %d summary chars", result.ModuleCount, result.SummaryChars)
}
