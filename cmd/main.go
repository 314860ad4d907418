package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tally/config"
	"github.com/lshigami/Tally/database"
	_ "github.com/lshigami/Tally/docs" // Swagger docs - generated by swag init
	recordctrl "github.com/lshigami/Tally/internal/controller/record"
	templatectrl "github.com/lshigami/Tally/internal/controller/template"
	"github.com/lshigami/Tally/internal/logger"
	"github.com/lshigami/Tally/internal/middleware"
	"github.com/lshigami/Tally/internal/repository"
	"github.com/lshigami/Tally/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Tally Test Score API
// @version 1.0
// @description Records mock-test results per subject, scores them under flat or negative marking, and keeps reusable marking templates.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			database.NewGate,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewTestRepository,
			repository.NewSubjectEntryRepository,
			repository.NewTemplateRepository,
		),

		fx.Provide(
			service.NewRecordService,
			service.NewTemplateService,
		),

		fx.Provide(
			recordctrl.NewRecordController,
			templatectrl.NewTemplateController,
		),

		fx.Invoke(ApplyLogLevel),
		fx.Invoke(MigrateDB),
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

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func ApplyLogLevel(cfg *config.Config) {
	logger.SetLevel(cfg.Log.Level)
}

func MigrateDB(db *gorm.DB) error {
	return database.Migrate(db)
}

// RegisterRoutesAndStartServer mounts the API under /api/v1 and ties the
// HTTP server and the database handle to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	recordCtrl *recordctrl.RecordController,
	templateCtrl *templatectrl.TemplateController,
) {
	api := router.Group("/api/v1")
	recordCtrl.RegisterRoutes(api)
	templateCtrl.RegisterRoutes(api)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Tally server starting on port %s", cfg.Server.Port)
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
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}
