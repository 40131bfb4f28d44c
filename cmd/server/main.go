package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	redis_cache "lostnfound-board/internal/cache/redis"
	"lostnfound-board/internal/config"
	delivery_http "lostnfound-board/internal/delivery/http"
	auth_http "lostnfound-board/internal/delivery/http/auth"
	post_http "lostnfound-board/internal/delivery/http/post"
	metrics_server "lostnfound-board/internal/delivery/metrics"
	"lostnfound-board/internal/logger"
	prometheus_metrics "lostnfound-board/internal/metrics/prometheus"
	comment_postgres "lostnfound-board/internal/repository/comment/postgres"
	post_postgres "lostnfound-board/internal/repository/post/postgres"
	"lostnfound-board/internal/repository/postgres"
	user_postgres "lostnfound-board/internal/repository/user/postgres"
	post_service "lostnfound-board/internal/service/post"
	user_service "lostnfound-board/internal/service/user"
	"lostnfound-board/internal/session"
	"lostnfound-board/internal/storage"
	"lostnfound-board/internal/sweeper"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	uploads, err := storage.NewFileStore(cfg.Uploads.Dir, cfg.Uploads.MaxSize, log)
	if err != nil {
		log.Error("Failed to create upload store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	postCache := redis_cache.NewPostCache(redisClient, log)
	sessions := session.NewRedisStore(redisClient, cfg.Session.TTL, log)

	unitOfWork := postgres.NewPostgresUOW(pool, log, metrics)
	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	commentRepo := comment_postgres.NewCommentRepository(pool, log, metrics)
	userRepo := user_postgres.NewUserRepository(pool, log, metrics)

	originalPostService := post_service.NewPostService(postRepo, commentRepo, userRepo, unitOfWork, uploads, cfg.Sweep.MaxAge, log)
	postService := post_service.NewPostServiceCacheDecorator(originalPostService, postCache, log, metrics)

	userService := user_service.NewUserService(userRepo, log)

	postAPI := post_http.NewPostHTTPService(postService, log)
	authAPI := auth_http.NewAuthHTTPService(userService, sessions, cfg.Session, log)

	httpServer := delivery_http.NewServer(cfg, postAPI, authAPI, sessions, log, metrics)
	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)
	sweepJob := sweeper.New(postService, cfg.Sweep.Interval, log, metrics)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)
	sweepDone := make(chan bool, 1)

	sweepCtx, sweepCancel := context.WithCancel(ctx)
	defer sweepCancel()

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	go func() {
		if err := sweepJob.Run(sweepCtx); err != nil {
			log.Error("Sweeper error", slog.String("error", err.Error()))
		}
		sweepDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	sweepCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone
	<-sweepDone

	log.Info("Server exited")
}
