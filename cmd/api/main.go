package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"careercopilot/verifier/internal/auth"
	"careercopilot/verifier/internal/config"
	"careercopilot/verifier/internal/handlers"
	"careercopilot/verifier/internal/repositories"
	"careercopilot/verifier/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	docRepo := repositories.NewDocumentRepository(db)
	verRepo := repositories.NewVerificationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize object store
	ctx := context.Background()
	store, err := services.NewObjectStore(ctx, cfg.AWS.Region, cfg.AWS.Bucket)
	if err != nil {
		log.Fatalf("❌ Failed to initialize object store: %v", err)
	}
	log.Println("✅ Object store initialized successfully")

	// Initialize extraction services
	textractService, err := services.NewTextractService(ctx, cfg.AWS.Region, cfg.AWS.Bucket)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Textract: %v", err)
	}

	var textExtractor services.TextExtractor = textractService
	if cfg.Storage.Extractor == "local" {
		textExtractor = services.NewPDFTextExtractor(store)
		log.Println("✅ Using local PDF text extraction")
	}

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize pipeline services
	resumeParser := services.NewResumeParserService(geminiService, cfg.Worker.RetryMaxAttempts)
	reportService := services.NewReportService(geminiService, cfg.Worker.RetryMaxAttempts)

	verifierService := services.NewVerifierService(
		verRepo,
		docRepo,
		store,
		textractService,
		textExtractor,
		resumeParser,
		reportService,
	)
	log.Println("✅ Verifier service initialized")

	// Initialize worker
	worker := services.NewWorker(
		verRepo,
		verifierService,
		cfg.Worker.Concurrency,
	)
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize external endpoint clients
	faceService := services.NewFaceVerifyService(cfg.Endpoints.FaceVerifyURL, cfg.Endpoints.HTTPTimeout)
	questionService := services.NewQuestionService(cfg.Endpoints.QuestionGenURL, cfg.Endpoints.HTTPTimeout)
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiration)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(faceService, jwtService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	resumeHandler := handlers.NewResumeHandler(services.NewResumeBuilderService())
	uploadHandler := handlers.NewUploadHandler(docRepo, store, cfg.Storage.MaxFileSize)
	verifyHandler := handlers.NewVerifyHandler(verRepo, docRepo, worker)
	resultHandler := handlers.NewResultHandler(verRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Career Copilot Verification API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
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

	// Face login creates the session; everything else requires one
	api.Post("/auth/face", authHandler.HandleFaceLogin)

	protected := api.Group("", auth.Middleware(jwtService))
	protected.Post("/questions", questionHandler.HandleGenerateQuestions)
	protected.Post("/resume/build", resumeHandler.HandleBuildResume)
	protected.Post("/upload", uploadHandler.HandleUpload)
	protected.Post("/verify", verifyHandler.HandleVerify)
	protected.Get("/verify/:id", resultHandler.HandleGetResult)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Career Copilot Verification API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/auth/face",
				"POST /api/v1/questions",
				"POST /api/v1/resume/build",
				"POST /api/v1/upload",
				"POST /api/v1/verify",
				"GET /api/v1/verify/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

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
