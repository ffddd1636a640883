package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/madrasaty/exam-backend/internal/config"
	"github.com/madrasaty/exam-backend/internal/database"
	"github.com/madrasaty/exam-backend/internal/handler"
	"github.com/madrasaty/exam-backend/internal/logger"
	"github.com/madrasaty/exam-backend/internal/router"
	"github.com/madrasaty/exam-backend/internal/service"
	"github.com/madrasaty/exam-backend/internal/store/postgres"
	"github.com/madrasaty/exam-backend/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting exam backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Store and Services ─────────────────────────────────
	st := postgres.NewStore(pool)

	identityService := service.NewIdentityService(st, log)
	examService := service.NewExamService(st, rdb, cfg.ExamCacheTTL, log)
	submissionService := service.NewSubmissionService(st, log)

	// ─── Bootstrap Seed ────────────────────────────────────────────────
	// Guarantee at least one teacher account exists so a fresh install is
	// usable immediately.
	if err := identityService.EnsureDefaultTeacher(ctx, cfg.DefaultTeacherName, cfg.DefaultTeacherCode); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed default teacher")
	}

	// ─── Prewarm Redis Cache ───────────────────────────────────────────
	// Load existing exams into Redis BEFORE accepting traffic so the first
	// readers after a restart do not all hit PostgreSQL.
	if err := examService.PrewarmCache(ctx); err != nil {
		log.Warn().Err(err).Msg("Cache prewarm failed")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(identityService),
		Exam:       handler.NewExamHandler(examService),
		Submission: handler.NewSubmissionHandler(submissionService),
	}
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
