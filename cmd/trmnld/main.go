// Package main is the entry point for the TRMNL device server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/byos/trmnl-go/internal/config"
	"github.com/byos/trmnl-go/internal/imaging"
	"github.com/byos/trmnl-go/internal/server"
	"github.com/byos/trmnl-go/internal/storage/sqlite"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	store, err := sqlite.NewFileStore(cfg.DBPath)
	if err != nil {
		logger.Fatal("Failed to open device store", zap.Error(err), zap.String("path", cfg.DBPath))
	}
	defer store.Close()

	encoder := imaging.DetectEncoder(logger, time.Duration(cfg.Images.EncoderTimeout)*time.Second)
	images, err := imaging.NewStore(cfg.Images.Dir, encoder)
	if err != nil {
		logger.Fatal("Failed to prepare image directory", zap.Error(err))
	}

	srv := server.New(logger, cfg, store, images)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      srv.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server",
			zap.Int("port", cfg.Server.Port),
			zap.String("images_dir", cfg.Images.Dir),
			zap.String("encoder", encoder.Name()))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
}
