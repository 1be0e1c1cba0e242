package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/cache"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/config"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/extract"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/handler"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/llm"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/repository/postgres"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/router"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/service"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/storage/s3"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/worker"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	orgRepo := postgres.NewOrganizationRepo(db)
	userRepo := postgres.NewUserRepo(db)
	docRepo := postgres.NewDocumentRepo(db)

	storage, err := s3.NewS3Client(&cfg.S3)
	if err != nil {
		return err
	}

	resultCache := cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	limiter := worker.NewLimiter(&cfg.Limiter)
	modelClient := llm.NewClient(&cfg.LLM, limiter)
	orchestrator := extract.NewOrchestrator(modelClient, &cfg.Extract)

	authService := service.NewAuthService(userRepo, orgRepo, cfg.JWT)
	userService := service.NewUserService(userRepo)
	docService := service.NewDocumentService(
		docRepo, storage, orchestrator, resultCache,
		&cfg.S3, &cfg.Extract, cfg.LLM.Model,
	)

	engine := router.Setup(cfg, authService, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Document: handler.NewDocumentHandler(docService),
		User:     handler.NewUserHandler(userService),
		Health:   handler.NewHealthHandler(db),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server: listening on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Printf("server: received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("server: stopped")
	return nil
}
