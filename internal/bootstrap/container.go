package bootstrap

import (
	"log"
	"os"

	"ai-course-be/internal/config"
	"ai-course-be/internal/controller"
	"ai-course-be/internal/pkg/logger"
	"ai-course-be/internal/repository/memory"
	"ai-course-be/internal/repository/unitofwork"
	"ai-course-be/internal/service"
	"ai-course-be/pkg/embedding"
	"ai-course-be/pkg/generation"
	"ai-course-be/pkg/indexing"
	"ai-course-be/pkg/llm/factory"
	"ai-course-be/pkg/loader"
	"ai-course-be/pkg/mentor"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CourseController controller.ICourseController
	AgentController  controller.IAgentController
	MentorController controller.IMentorController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Pipeline phase logs use a plain stdlib logger with phase markers.
	pipelineLogger := log.New(os.Stdout, "", log.LstdFlags)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingProvider, err := embedding.NewEmbeddingProvider(
		cfg.AI.EmbeddingProvider,
		cfg.AI.EmbeddingModel,
		cfg.AI.OpenAIAPIKey,
		cfg.AI.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s (%s)", cfg.AI.EmbeddingProvider, cfg.AI.EmbeddingModel)

	llmProvider, err := factory.NewLLMProvider(
		cfg.AI.LLMProvider,
		cfg.AI.LLMModel,
		cfg.AI.OpenAIAPIKey,
		cfg.AI.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.AI.LLMProvider, cfg.AI.LLMModel)

	// 4. Pipelines
	fileLoader := loader.NewFileLoader(cfg.App.SourceFilesDir)
	generationPipeline := generation.NewPipeline(fileLoader, llmProvider, pipelineLogger)
	indexer := indexing.NewIndexer(embeddingProvider, pipelineLogger)

	scopeRepo := memory.NewScopeRepository()
	mentorPipeline := mentor.NewPipeline(
		llmProvider,
		embeddingProvider,
		scopeRepo,
		cfg.AI.RetrieveTopK,
		pipelineLogger,
	)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.IndexCourseTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.IndexCourseTopic,
		uowFactory,
		indexer,
	)

	courseService := service.NewCourseService(uowFactory, publisherService, sysLogger)
	generationService := service.NewGenerationService(uowFactory, generationPipeline)
	indexingService := service.NewIndexingService(uowFactory, indexer, publisherService)
	mentorService := service.NewMentorService(uowFactory, mentorPipeline)

	// 6. Controllers
	return &Container{
		CourseController: controller.NewCourseController(courseService),
		AgentController:  controller.NewAgentController(generationService, indexingService),
		MentorController: controller.NewMentorController(mentorService),
		ConsumerService:  consumerService,
	}
}
