package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"internmatch/internal/app"
	"internmatch/internal/config"
	apphttp "internmatch/internal/http"
	"internmatch/internal/http/handlers"
	httpmw "internmatch/internal/http/middleware"
	"internmatch/internal/observability"
	"internmatch/internal/repository/records"
	"internmatch/internal/security"
	"internmatch/internal/seed"
	"internmatch/internal/store"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	metrics := observability.NewMetrics()

	var recordStore store.Store
	if cfg.PostgresDSN != "" {
		pg := store.NewPostgres(store.PostgresConfig{
			DSN:             cfg.PostgresDSN,
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxIdle:     cfg.DBConnMaxIdle,
			ConnMaxLifetime: cfg.DBConnMaxLife,
		})
		defer pg.Close()
		recordStore = pg
	} else {
		fileStore, err := store.NewFile(cfg.StorePath)
		if err != nil {
			log.Fatalf("failed to open store: %v", err)
		}
		recordStore = fileStore
	}

	if cfg.SeedData {
		if err := seed.Run(context.Background(), recordStore); err != nil {
			log.Fatalf("failed to seed store: %v", err)
		}
	}

	userRepo := records.NewUserRepository(recordStore)
	jobRepo := records.NewJobRepository(recordStore)
	applicationRepo := records.NewApplicationRepository(recordStore)
	assignmentRepo := records.NewAssignmentRepository(recordStore)
	progressRepo := records.NewStudentAssignmentRepository(recordStore)
	analyticsRepo := records.NewAnalyticsRepository(recordStore)

	sessions := security.NewSessionProvider(cfg.SessionSecret)

	matchService := app.NewMatchService(jobRepo, userRepo, analyticsRepo, cfg.MatchKeywords)
	assignmentService := app.NewAssignmentService(assignmentRepo, progressRepo, userRepo, analyticsRepo, metrics)
	jobService := app.NewJobService(jobRepo, applicationRepo, userRepo, matchService, analyticsRepo, metrics)
	authService := app.NewAuthService(userRepo, analyticsRepo)

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisAddr != "" {
		limiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:       handlers.NewAuthHandler(authService, sessions, cfg.SessionTTL, limiter),
		JobHandler:        handlers.NewJobHandler(jobService, matchService, assignmentService, limiter),
		AssignmentHandler: handlers.NewAssignmentHandler(assignmentService, limiter),
		SessionMiddleware: httpmw.NewSessionMiddleware(sessions),
		Logger:            logger,
		Metrics:           metrics,
		RequestTimeout:    cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
