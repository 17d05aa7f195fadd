package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"vocational-api/internal/config"
	"vocational-api/internal/db"
	apihttp "vocational-api/internal/http"
	"vocational-api/internal/repository"
	"vocational-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	questionRepo := repository.NewPgQuestionRepository(pool)
	courseRepo := repository.NewPgCourseRepository(pool)
	assessmentRepo := repository.NewPgAssessmentRepository(pool)
	feedbackRepo := repository.NewPgFeedbackRepository(pool)

	storeBackoff := time.Duration(cfg.StoreRetryBackoffMS) * time.Millisecond
	assessmentSvc := service.NewAssessmentService(
		logger, questionRepo, courseRepo, assessmentRepo,
		cfg.TopCourses, cfg.StoreRetryAttempts, storeBackoff,
	)
	feedbackSvc := service.NewFeedbackService(
		logger, assessmentRepo, feedbackRepo,
		cfg.StoreRetryAttempts, storeBackoff,
	)

	var submitLimiter service.SubmitRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			submitLimiter = service.NewRedisSubmitRateLimiter(
				redisClient,
				time.Duration(cfg.SubmitRateWindowSec)*time.Second,
				cfg.SubmitRateMax,
			)
		}
		cancel()
	}

	assessmentHandler := apihttp.NewAssessmentHandler(logger, questionRepo, assessmentSvc)
	feedbackHandler := apihttp.NewFeedbackHandler(logger, feedbackSvc)
	router := apihttp.NewRouter(logger, assessmentHandler, feedbackHandler, submitLimiter)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
