package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/sms-api/api/swagger"
	"github.com/noah-isme/sms-api/internal/dto"
	"github.com/noah-isme/sms-api/internal/handler"
	internalmiddleware "github.com/noah-isme/sms-api/internal/middleware"
	"github.com/noah-isme/sms-api/internal/registry"
	"github.com/noah-isme/sms-api/internal/repository"
	"github.com/noah-isme/sms-api/internal/service"
	"github.com/noah-isme/sms-api/pkg/cache"
	"github.com/noah-isme/sms-api/pkg/config"
	"github.com/noah-isme/sms-api/pkg/database"
	"github.com/noah-isme/sms-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/sms-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/sms-api/pkg/middleware/requestid"
)

// @title Student Management System API
// @version 1.0.0
// @description Students, instructors, courses, enrollments and grades.
// @BasePath /api/v1/sms
// @schemes http

const shutdownTimeout = 15 * time.Second

type stores struct {
	students    service.StudentRepository
	instructors service.InstructorRepository
	courses     service.CourseRepository
	enrollments service.EnrollmentRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	dependents := make(map[string]handler.Pinger)

	repos, db, err := openStores(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("storage init failed", "error", err)
	}
	if db != nil {
		defer db.Close()
		dependents["postgres"] = handler.PingFunc(db.PingContext)
	}

	cacheRepo, redisClient, err := openCache(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("cache init failed", "error", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		dependents["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	metrics := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr)
	validate := dto.NewValidator()

	svc := handler.Services{
		Students:    service.NewStudentService(repos.students, cacheSvc, metrics, validate, logr),
		Instructors: service.NewInstructorService(repos.instructors, cacheSvc, metrics, validate, logr),
		Courses:     service.NewCourseService(repos.courses, cacheSvc, metrics, validate, logr),
		Enrollments: service.NewEnrollmentService(repos.enrollments, cacheSvc, metrics, validate, logr),
		Catalog:     service.NewCatalogService(cacheSvc, cfg.Cache.CatalogTTL),
		Transcripts: service.NewTranscriptService(repos.students, repos.enrollments, cfg.Export.InstitutionName, logr),
		Metrics:     metrics,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))
	r.Use(internalmiddleware.WithResponseMeta())

	handler.NewRouter(svc, dependents, logr).Register(r, cfg.APIPrefix)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting",
			"addr", srv.Addr,
			"env", cfg.Env,
			"storage", cfg.Storage.Driver,
			"cache", cfg.Cache.Driver,
			"prefix", cfg.APIPrefix,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down", zap.Duration("timeout", shutdownTimeout))
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

func openStores(cfg *config.Config, logr *zap.Logger) (stores, *sqlx.DB, error) {
	if !cfg.UsesPostgres() {
		reg := registry.NewSynchronized(nil)
		logr.Info("using in-memory storage")
		return stores{
			students:    repository.NewMemoryStudentRepository(reg),
			instructors: repository.NewMemoryInstructorRepository(reg),
			courses:     repository.NewMemoryCourseRepository(reg),
			enrollments: repository.NewMemoryEnrollmentRepository(reg),
		}, nil, nil
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return stores{}, nil, err
	}
	if cfg.Storage.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return stores{}, nil, fmt.Errorf("migrate schema: %w", err)
		}
		logr.Info("schema migrated")
	}
	return stores{
		students:    repository.NewStudentRepository(db),
		instructors: repository.NewInstructorRepository(db),
		courses:     repository.NewCourseRepository(db),
		enrollments: repository.NewEnrollmentRepository(db),
	}, db, nil
}

func openCache(cfg *config.Config, logr *zap.Logger) (service.CacheRepository, *redis.Client, error) {
	if !cfg.UsesRedis() {
		return repository.NewMemoryCacheRepository(), nil, nil
	}
	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewRedisCacheRepository(client, logr), client, nil
}
