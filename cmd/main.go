package main

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/certprep/config"
	"github.com/lshigami/certprep/database"
	_ "github.com/lshigami/certprep/docs" // Swagger docs
	"github.com/lshigami/certprep/internal/cache"
	adminctrl "github.com/lshigami/certprep/internal/controller/admin"
	userctrl "github.com/lshigami/certprep/internal/controller/user"
	"github.com/lshigami/certprep/internal/logger"
	"github.com/lshigami/certprep/internal/repository"
	"github.com/lshigami/certprep/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Certification Exam Prep API
// @version 1.0
// @description Mock exams sampled by exam area quotas, scoring with per-area grades, AI study analysis and review tracking of missed questions.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	// Defaults until the configured level is known.
	logger.Init("info", false)

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			func(cfg *config.Config) config.ExamConfig { return cfg.Exam },
			database.NewDatabase,
			cache.NewExamResultCache,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewCategoryRepository,
			repository.NewQuestionRepository,
			repository.NewMockExamRepository,
			repository.NewMockExamAnswerRepository,
			repository.NewReviewItemRepository,
			repository.NewPracticeAttemptRepository,
		),

		// Services Layer
		fx.Provide(
			func(repo repository.QuestionRepository) service.QuestionCatalog { return repo },
			service.NewQuestionSampler,
			service.NewScorer,
			service.NewSystemClock,
			service.NewGeminiTextGenerator,
			service.NewAnalysisService,
			service.NewReviewItemService,
			service.NewMockExamService,
			service.NewPracticeService,
			service.NewCategoryService,
			service.NewQuestionService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewCatalogController,
			userctrl.NewMockExamController,
			userctrl.NewPracticeController,
			userctrl.NewReviewController,
		),

		fx.Invoke(ApplyLogConfig),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(CloseResultCacheOnStop),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

// ApplyLogConfig re-initializes the global logger with the configured level.
func ApplyLogConfig(cfg *config.Config) {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutes mounts every API route under /api/v1.
func RegisterRoutes(
	router *gin.Engine,
	catalogCtrl *adminctrl.CatalogController,
	examCtrl *userctrl.MockExamController,
	practiceCtrl *userctrl.PracticeController,
	reviewCtrl *userctrl.ReviewController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		categories := adminAPIGroup.Group("/categories")
		categories.POST("", catalogCtrl.CreateCategory)
		categories.GET("", catalogCtrl.ListCategories)
		categories.DELETE("/:id", catalogCtrl.DeleteCategory)

		questions := adminAPIGroup.Group("/questions")
		questions.POST("", catalogCtrl.CreateQuestion)
		questions.GET("", catalogCtrl.ListQuestions)
		questions.GET("/:id", catalogCtrl.GetQuestion)
		questions.PUT("/:id", catalogCtrl.UpdateQuestion)
		questions.DELETE("/:id", catalogCtrl.DeleteQuestion)

		adminAPIGroup.GET("/catalog/coverage", catalogCtrl.Coverage)
	}

	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/exam-config", examCtrl.GetExamConfig)

		exams := userAPIGroup.Group("/mock-exams")
		exams.POST("", examCtrl.StartExam)
		exams.GET("", examCtrl.ListExams)
		exams.GET("/:exam_id", examCtrl.GetExam)
		exams.PUT("/:exam_id/answers/:question_number", examCtrl.RecordAnswer)
		exams.POST("/:exam_id/finish", examCtrl.FinishExam)
		exams.GET("/:exam_id/result", examCtrl.GetResult)

		userAPIGroup.POST("/practice/answers", practiceCtrl.SubmitAnswer)
		userAPIGroup.GET("/practice/attempts", practiceCtrl.ListAttempts)

		reviews := userAPIGroup.Group("/review-items")
		reviews.GET("", reviewCtrl.ListItems)
		reviews.GET("/stats", reviewCtrl.Stats)
		reviews.GET("/questions", reviewCtrl.ReviewQuestions)
		reviews.POST("/backfill", reviewCtrl.Backfill)
	}
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	catalogCtrl *adminctrl.CatalogController,
	examCtrl *userctrl.MockExamController,
	practiceCtrl *userctrl.PracticeController,
	reviewCtrl *userctrl.ReviewController,
) {
	RegisterRoutes(router, catalogCtrl, examCtrl, practiceCtrl, reviewCtrl)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Certprep API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// CloseResultCacheOnStop releases the Redis connection pool when one is in use.
func CloseResultCacheOnStop(lc fx.Lifecycle, resultCache service.ExamResultCache) {
	closer, ok := resultCache.(io.Closer)
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return closer.Close()
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
