package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio-api/adapters/http"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	portfolioUC "github.com/khoahotran/portfolio-api/internal/application/usecase/portfolio"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/portfolio-api/internal/application/usecase/project"
	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/metrics"
	"github.com/khoahotran/portfolio-api/pkg/tracing"
)

const serviceName = "portfolio-api"

func main() {

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	appLogger.Info("Start Portfolio API Server...", zap.String("env", cfg.App.Env), zap.String("db_driver", cfg.DB.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Observability
	shutdownTracer, err := tracing.Setup(ctx, cfg.Tracing.OTLPEndpoint, serviceName, httpAdapter.APIVersion, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize tracer", err)
	}
	collector := metrics.NewCollector("portfolio")

	// Document store
	backend, err := persistence.OpenDocumentStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot open document store", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = persistence.NewRedisClient(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Redis", err)
		}
	}
	store := persistence.Decorate(backend, redisClient, cfg, appLogger, collector)

	// Events
	var events service.EventPublisher = service.NopPublisher{}
	var kafkaClient *event.KafkaProducerClient
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err = event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka", err)
		}
		events = kafkaClient
	} else {
		appLogger.Info("Kafka brokers not configured, change events are dropped")
	}

	// Repositories
	profileRepo := persistence.NewProfileRepo(store)
	skillRepo := persistence.NewSkillRepo(store)
	experienceRepo := persistence.NewExperienceRepo(store)
	projectRepo := persistence.NewProjectRepo(store)

	// Use Cases
	getPortfolioUseCase := portfolioUC.NewGetPortfolioUseCase(profileRepo, skillRepo, experienceRepo, projectRepo, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, events, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo, events, appLogger)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo, events, appLogger)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, events, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, events, appLogger)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, events, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Portfolio:  httpAdapter.NewPortfolioHandler(getPortfolioUseCase, store, appLogger),
		Profile:    httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		Skill:      httpAdapter.NewSkillHandler(skillUseCase, appLogger),
		Experience: httpAdapter.NewExperienceHandler(experienceUseCase, appLogger),
		Project: httpAdapter.NewProjectHandler(
			createProjectUseCase,
			listProjectsUseCase,
			updateProjectUseCase,
			deleteProjectUseCase,
			appLogger,
		),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(handlers, httpAdapter.RouterOptions{
		CORSOrigins: cfg.App.CORSOrigins,
		Metrics:     collector,
		Logger:      appLogger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}

	store.Close()
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			appLogger.Error("Failed to close Redis client", err)
		}
	}
	if kafkaClient != nil {
		kafkaClient.Close()
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		appLogger.Error("Failed to flush tracer", err)
	}

	appLogger.Info("Server exited")
}
