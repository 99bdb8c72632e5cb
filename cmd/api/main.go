package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/config"
	"alfredoptarigan/resume-ats/internal/handlers"
	"alfredoptarigan/resume-ats/internal/logger"
	"alfredoptarigan/resume-ats/internal/repositories"
	"alfredoptarigan/resume-ats/internal/services"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()
	log.Info("config loaded", zap.String("env", cfg.Server.Env))

	// History is optional; without it the service needs no database.
	recorder := repositories.NewNopRecorder()
	if cfg.History.Enabled {
		db, err := config.InitDatabase(cfg, log)
		if err != nil {
			log.Fatal("failed to initialize database", zap.Error(err))
		}
		recorder = repositories.NewRepositoryRecorder(repositories.NewAnalysisRepository(db))
		log.Info("analysis history enabled")
	}

	metrics := services.NewMetrics()

	extractor := services.NewTextExtractor(services.NewPDFParserService())
	analyzer := services.NewAnalyzerService(extractor, recorder, metrics, log)
	uploadService := services.NewUploadService(cfg.Upload.MaxFileSize)

	// The model is loaded on first use and kept for the life of the process.
	modelHandle := services.NewModelHandle(
		services.GeminiLoader(cfg.Gemini.APIKey, cfg.Gemini.Model),
		metrics,
		log,
	)
	composer := services.NewComposerService(modelHandle, metrics)
	log.Info("services initialized")

	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzer,
		uploadService,
		cfg.Analyzer.DefaultSkills,
		cfg.Upload.MaxFiles,
	)
	composeHandler := handlers.NewComposeHandler(composer)
	generateHandler := handlers.NewGenerateHandler(composer)
	historyHandler := handlers.NewHistoryHandler(recorder)

	app := fiber.New(fiber.Config{
		AppName:      "Resume Composer & ATS Analyzer",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    cfg.BodyLimit(),
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":       "healthy",
			"time":         time.Now(),
			"model_loaded": composer.ModelLoaded(),
			"history":      recorder.Enabled(),
		})
	})

	api.Post("/compose", composeHandler.HandleCompose)
	api.Post("/compose/download", composeHandler.HandleDownload)
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Get("/analyses", historyHandler.HandleListAnalyses)
	api.Get("/analyses/:id", historyHandler.HandleGetAnalysis)
	api.Post("/generate", generateHandler.HandleGenerate)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Composer & ATS Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/compose",
				"POST /api/v1/compose/download",
				"POST /api/v1/analyze",
				"GET /api/v1/analyses",
				"GET /api/v1/analyses/:id",
				"POST /api/v1/generate",
			},
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
