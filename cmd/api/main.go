// @title Quiz Board API
// @version 1.0
// @description Quiz authoring, grading and leaderboards.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "quiz-board/cmd/api/docs"
	"quiz-board/internal/adapter"
	"quiz-board/internal/cache"
	"quiz-board/internal/config"
	"quiz-board/internal/database"
	"quiz-board/internal/domain"
	"quiz-board/internal/handler"
	"quiz-board/internal/logger"
	"quiz-board/internal/metrics"
	"quiz-board/internal/middleware"
	"quiz-board/internal/repository"
	"quiz-board/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Redis is optional: without it answer keys and leaderboards are read
	// from the database on every request and sessions are unavailable.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, running without cache", zap.Error(err))
	} else {
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	}

	appMetrics := metrics.New()

	// Repositories
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	resultRepository := repository.NewSQLXResultRepository(db)
	leaderboardRepository := repository.NewSQLXLeaderboardRepository(db)
	categoryRepository := repository.NewSQLXCategoryRepository(db)

	// Services
	authService, err := service.NewAuthService(cfg.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	answerKeys := service.NewAnswerKeyStore(quizRepository, cacheAdapter, cfg.Cache.AnswerKeyTTL, appMetrics)
	leaderboardService := service.NewLeaderboardService(
		leaderboardRepository, resultRepository, cacheAdapter,
		cfg.Cache.LeaderboardTTL, cfg.Leaderboard.WeekStart, appMetrics,
	)
	submissionService := service.NewSubmissionService(answerKeys, resultRepository, quizRepository, leaderboardService, appMetrics)
	quizService := service.NewQuizService(quizRepository, categoryRepository, resultRepository)
	resultService := service.NewResultService(resultRepository)
	categoryService := service.NewCategoryService(categoryRepository)
	sessionService := service.NewSessionService(answerKeys, submissionService, cacheAdapter, cfg.Cache.SessionTTL)

	// Handlers
	quizHandler := handler.NewQuizHandler(quizService, submissionService)
	resultHandler := handler.NewResultHandler(resultService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	healthHandler := handler.NewHealthHandler(db, cacheAdapter)
	validate := middleware.NewValidationMiddleware()
	protected := middleware.Protected(authService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(appMetrics))
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))

	app.Get("/health", healthHandler.Check)
	app.Get("/metrics", adaptor.HTTPHandler(appMetrics.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	quiz := api.Group("/quiz")
	quiz.Post("/create", middleware.OptionalAuth(authService), quizHandler.CreateQuiz)
	quiz.Get("/get", quizHandler.ListQuizzes)
	quiz.Get("/get/:slug", protected, quizHandler.GetQuizBySlug)
	quiz.Get("/user/:userId", quizHandler.ListQuizzesByUser)
	quiz.Get("/category/:slug", quizHandler.ListQuizzesByCategory)
	quiz.Get("/statistics/:quizId", validate.ValidateQuizIDParam("quizId"), quizHandler.GetQuizStatistics)
	quiz.Post("/finish", protected, quizHandler.FinishQuiz)

	result := api.Group("/result")
	result.Get("/user/:userId", resultHandler.ListByUser)
	result.Get("/quiz/:quizId", validate.ValidateQuizIDParam("quizId"), resultHandler.ListByQuiz)

	board := api.Group("/leaderboard")
	board.Get("/", leaderboardHandler.GetAll)
	board.Get("/weekly", leaderboardHandler.GetWeekly)
	board.Get("/user/:userId", leaderboardHandler.GetByUser)

	category := api.Group("/category")
	category.Post("/create", protected, categoryHandler.CreateCategory)
	category.Get("/get", categoryHandler.ListCategories)

	session := api.Group("/session", protected)
	session.Post("/start", sessionHandler.Start)
	session.Post("/:id/answer", sessionHandler.Answer)
	session.Get("/:id", sessionHandler.Get)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
