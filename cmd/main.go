package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/sciencegrader/config"
	"github.com/lshigami/sciencegrader/database"
	_ "github.com/lshigami/sciencegrader/docs" // Swagger docs - auto-generated
	"github.com/lshigami/sciencegrader/internal/controller"
	studentctrl "github.com/lshigami/sciencegrader/internal/controller/student"
	teacherctrl "github.com/lshigami/sciencegrader/internal/controller/teacher"
	"github.com/lshigami/sciencegrader/internal/logger"
	"github.com/lshigami/sciencegrader/internal/middleware"
	"github.com/lshigami/sciencegrader/internal/model"
	"github.com/lshigami/sciencegrader/internal/monitoring"
	"github.com/lshigami/sciencegrader/internal/repository"
	"github.com/lshigami/sciencegrader/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Science Essay Grader API
// @version 1.0
// @description Grades short science answers with an LLM and serves the teacher dashboard.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey TeacherPassword
// @in header
// @name X-Teacher-Password
func main() {
	// Bootstrap logger until the configured one is installed.
	logger.Init("info", true, "")
	monitoring.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewSubmissionRepository,
		),

		fx.Provide(
			service.NewGeminiLLMService,
			service.NewQuestionService,
			service.NewGradingService,
			service.NewDashboardService,
		),

		fx.Provide(
			studentctrl.NewStudentController,
			teacherctrl.NewDashboardController,
			controller.NewHealthController,
		),

		fx.Invoke(ConfigureLogger),
		fx.Invoke(AutoMigrateDB),
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
		log.Error().Err(err).Msg("Application stop failed")
	}
}

func ConfigureLogger(cfg *config.Config) {
	logger.Init(cfg.Log.Level, cfg.Server.Mode == "debug", cfg.Log.File)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(monitoring.MetricsMiddleware())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.TeacherPasswordHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 || cfg.Server.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.CORSAllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", monitoring.PrometheusHandler())

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	llm service.GeminiLLMService,
	studentCtrl *studentctrl.StudentController,
	dashboardCtrl *teacherctrl.DashboardController,
	healthCtrl *controller.HealthController,
) {
	router.GET("/health", healthCtrl.HealthCheck)

	api := router.Group("/api/v1")
	studentCtrl.RegisterRoutes(api, middleware.RateLimiter(cfg.Server.SubmitRatePerMin, time.Minute))
	dashboardCtrl.RegisterRoutes(api, middleware.TeacherAuth(cfg.TeacherPassword))

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
		// Grading waits on several LLM calls.
		WriteTimeout: cfg.Gemini.GradingTimeout + 30*time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Science grader server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err := server.Shutdown(shutdownCtx)
			if closer, ok := llm.(io.Closer); ok {
				if cerr := closer.Close(); cerr != nil {
					log.Warn().Err(cerr).Msg("Failed to close Gemini client")
				}
			}
			return err
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.StudentSubmission{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
