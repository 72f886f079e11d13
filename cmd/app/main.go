package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"vivaleve/config"
	"vivaleve/internal/application/usecase"
	"vivaleve/internal/infrastructure/celebrate"
	"vivaleve/internal/infrastructure/security"
	"vivaleve/internal/infrastructure/store"
	"vivaleve/internal/metrics"
	handlers "vivaleve/internal/transport/http"
	"vivaleve/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	metrics.Register()
	log.Info("starting_application")

	st, err := store.Open(cfg.DataPath)
	if err != nil {
		log.Fatal("store_open_failed", zap.Error(err))
	}

	engine := usecase.NewEngine(log)
	events := celebrate.NewQueue(32, log)
	hasher := security.NewPasswordHasher()
	tokens := security.NewTokenManager(cfg.JWTSecret, 24*time.Hour)
	session := usecase.NewSession(st, engine, hasher, events, log)

	// Pick the previous session back up so the app opens where it left off.
	if err := session.Resume(context.Background()); err != nil {
		log.Warn("session_resume_failed", zap.Error(err))
	}

	// The rollover check also runs on every login; the scheduler covers
	// sessions that stay open across midnight.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 0 * * *", func() {
		if err := session.CheckRollover(context.Background()); err != nil {
			log.Error("rollover_check_failed", zap.Error(err))
		}
	}); err != nil {
		log.Fatal("scheduler_setup_failed", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	gin.SetMode(cfg.GinMode)
	router := handlers.NewRouter(handlers.NewHandler(session, tokens, events, log), tokens, session, log)

	srv := &http.Server{
		Addr:         cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("starting_http_server", zap.String("addr", cfg.HTTPPort))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http_server_failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting_down_server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server_forced_shutdown", zap.Error(err))
	}
	log.Info("server_stopped")
}
