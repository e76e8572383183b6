package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/linkedin-analyzer/internal/config"
	"alfredoptarigan/linkedin-analyzer/internal/handlers"
	"alfredoptarigan/linkedin-analyzer/internal/report"
	"alfredoptarigan/linkedin-analyzer/internal/repositories"
	"alfredoptarigan/linkedin-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	var analysisRepo repositories.AnalysisRepository
	if cfg.Database.Enabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		analysisRepo = repositories.NewAnalysisRepository(db)
		log.Println("✅ Repositories initialized successfully")
	} else {
		log.Println("⚠️  DB_ENABLED=false, analyses will not be logged")
	}

	// Initialize LLM
	llmService, err := services.NewLLMService(services.LLMOptions{
		Provider:        cfg.LLM.Provider,
		AnthropicAPIKey: cfg.LLM.AnthropicAPIKey,
		AnthropicModel:  cfg.LLM.AnthropicModel,
		GeminiAPIKey:    cfg.LLM.GeminiAPIKey,
		GeminiModel:     cfg.LLM.GeminiModel,
		MaxTokens:       cfg.LLM.MaxTokens,
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM: %v", err)
	}
	log.Printf("✅ LLM provider %s initialized successfully\n", llmService.Name())

	// Initialize services
	analyzerService := services.NewAnalyzerService(
		llmService,
		services.NewPDFParserService(),
		analysisRepo,
		cfg.LLM.MaxRetries,
	)
	verifier := services.NewTurnstileVerifier(services.TurnstileOptions{
		Secret:   cfg.Security.TurnstileSecretKey,
		FailOpen: !cfg.IsProduction(),
	})
	generator := report.NewGenerator(report.NewPDFRenderer(cfg.Report.ChromePath))
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzerService,
		verifier,
		cfg.Upload.MaxPDFSize,
		cfg.Upload.MaxImageSize,
		cfg.IsProduction(),
	)
	adminHandler := handlers.NewAdminHandler(analysisRepo, cfg.Security.AdminKey)
	reportHandler := handlers.NewReportHandler(analysisRepo, generator)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "LinkedIn Profile Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 3 * time.Minute,
		BodyLimit:    int(cfg.Upload.MaxPDFSize + 2*cfg.Upload.MaxImageSize + 1024*1024),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Use(limiter.New(limiter.Config{
		Max:          cfg.RateLimit.GlobalMax,
		Expiration:   cfg.RateLimit.GlobalWindow,
		LimitReached: handlers.LimitReached,
	}))

	analyzeLimiter := limiter.New(limiter.Config{
		Max:        cfg.RateLimit.AnalyzeMax,
		Expiration: cfg.RateLimit.AnalyzeWindow,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "analyze:" + c.IP()
		},
		LimitReached: handlers.LimitReached,
	})

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "healthy",
			"provider": llmService.Name(),
			"time":     time.Now(),
		})
	})

	// API endpoints
	api.Post("/analyze", analyzeLimiter, analyzeHandler.HandleAnalyze)
	api.Post("/report", reportHandler.HandleRenderReport)
	api.Get("/analyses/:id/report", reportHandler.HandleAnalysisReport)
	api.Get("/admin/analyses", adminHandler.HandleListAnalyses)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "LinkedIn Profile Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"POST /api/v1/report",
				"GET /api/v1/analyses/:id/report",
				"GET /api/v1/admin/analyses",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
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
