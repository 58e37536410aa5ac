package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"talent-match/internal/config"
	"talent-match/internal/handlers"
	"talent-match/internal/logger"
	"talent-match/internal/repositories"
	"talent-match/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.Logger.Level, Format: cfg.Logger.Format})
	logger.Info().Msg("✅ Config loaded successfully")

	// Load the matching taxonomy (keywords, section headers, redaction vocab)
	taxonomy, err := config.LoadTaxonomy(cfg.Matching.TaxonomyPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to load taxonomy")
	}

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to initialize database")
	}

	// Initialize repositories
	jobRepo := repositories.NewJobRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	ingestionRepo := repositories.NewIngestionRepository(db)
	rankingRepo := repositories.NewRankingRepository(db)
	logger.Info().Msg("✅ Repositories initialized successfully")

	// Initialize storage
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to create upload directory")
	}

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.EmbedModel,
		cfg.Gemini.NERModel,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to initialize Gemini AI")
	}
	logger.Info().Msg("✅ Gemini AI initialized successfully")

	// Initialize Qdrant
	vectorIndex, err := services.NewQdrantIndex(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to initialize Qdrant")
	}
	if err := vectorIndex.InitCollection(); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to initialize Qdrant collection")
	}
	logger.Info().Msg("✅ Qdrant initialized successfully")

	// Initialize pipeline stages
	extractor := services.NewDocumentTextExtractor()
	segmenter := services.NewSectionSegmenter(taxonomy)
	estimator := services.NewExperienceEstimator()
	skillExtractor := services.NewSkillExtractor(taxonomy, geminiService)
	scorer := services.NewSimilarityScorer(geminiService, cfg.Matching.DefaultTargetExperience)
	redactor := services.NewPrivacyRedactor(taxonomy, geminiService)

	registry := services.NewTaskRegistry()
	pipeline := services.NewIngestionPipeline(
		jobRepo,
		ingestionRepo,
		extractor,
		segmenter,
		estimator,
		skillExtractor,
		scorer,
		geminiService,
		vectorIndex,
		registry,
	)
	logger.Info().Msg("✅ Services initialized successfully")

	// Initialize handlers
	jobHandler := handlers.NewJobHandler(jobRepo, geminiService, skillExtractor, cfg.Matching)
	uploadHandler := handlers.NewUploadHandler(jobRepo, storageService, pipeline, cfg.Storage.MaxFileSize)
	rankingHandler := handlers.NewRankingHandler(rankingRepo)
	candidateHandler := handlers.NewCandidateHandler(candidateRepo, redactor, geminiService, vectorIndex)
	batchHandler := handlers.NewBatchHandler(registry)
	logger.Info().Msg("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Talent Match API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) * 20,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/jobs", jobHandler.HandleCreateJob)
	api.Get("/jobs", jobHandler.HandleListJobs)
	api.Get("/jobs/:id/rankings", rankingHandler.HandleGetRankings)
	api.Post("/jobs/:id/cvs", uploadHandler.HandleUploadCVs)
	api.Get("/batches/:id", batchHandler.HandleGetBatch)
	api.Delete("/batches/:id", batchHandler.HandleCancelBatch)
	api.Get("/candidates/:id/cv", candidateHandler.HandleGetCV)
	api.Post("/candidates/search", candidateHandler.HandleSearchCandidates)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Talent Match API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/jobs",
				"GET /api/v1/jobs",
				"GET /api/v1/jobs/:id/rankings",
				"POST /api/v1/jobs/:id/cvs",
				"GET /api/v1/batches/:id",
				"DELETE /api/v1/batches/:id",
				"GET /api/v1/candidates/:id/cv",
				"POST /api/v1/candidates/search",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info().Msg("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("❌ Server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("🚀 Server starting")

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
