package cli

import (
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
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"resume-analyzer/internal/config"
	"resume-analyzer/internal/handlers"
	"resume-analyzer/internal/repositories"
	"resume-analyzer/internal/services"
)

// NewServeCmd builds the CLI subcommand to start the server.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database. A failure degrades persistence instead of
	// killing the process.
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Printf("⚠️  Database unavailable, continuing degraded: %v\n", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	scoreRepo := repositories.NewScoreRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	extractor := services.NewExtractorService()

	sessions := newSessionStore(cfg)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI. Without a key, analysis degrades to a
	// structured error payload.
	var gemini services.GeminiService
	if cfg.Gemini.APIKey != "" {
		gemini, err = services.NewGeminiService(cfg.Gemini.APIKey)
		if err != nil {
			log.Printf("⚠️  Gemini unavailable, analysis degraded: %v\n", err)
			gemini = nil
		} else {
			log.Println("✅ Gemini AI initialized successfully")
		}
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set, analysis degraded")
	}
	analyzer := services.NewAnalyzerService(gemini)

	// Load assessment banks
	banks := services.DefaultAssessments()
	if cfg.Assessment.BanksPath != "" {
		loaded, err := services.LoadBanksFile(cfg.Assessment.BanksPath)
		if err != nil {
			return fmt.Errorf("failed to load assessment banks: %w", err)
		}
		banks = loaded
		log.Printf("✅ Loaded %d assessment banks from %s\n", len(banks), cfg.Assessment.BanksPath)
	}

	assessmentService := services.NewAssessmentService(banks, scoreRepo)
	scoreService := services.NewScoreService(scoreRepo)
	log.Println("✅ Assessment engine initialized")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, sessions, cfg.Session.CookieName, cfg.Session.TTL)
	resumeHandler := handlers.NewResumeHandler(storageService, extractor, analyzer, cfg.Storage.MaxFileSize)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	scoresHandler := handlers.NewScoresHandler(scoreService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
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
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	guard := handlers.RequireSession(sessions, cfg.Session.CookieName)
	handlers.RegisterRoutes(api, guard, authHandler, resumeHandler, assessmentHandler, scoresHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	return app.Listen(addr)
}

func newSessionStore(cfg *config.Config) services.SessionStore {
	if cfg.Redis.Addr == "" {
		log.Println("✅ Using in-memory session store")
		return services.NewMemorySessionStore(cfg.Session.TTL)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	log.Printf("✅ Using Redis session store at %s\n", cfg.Redis.Addr)
	return services.NewRedisSessionStore(client, cfg.Session.TTL)
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
