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

	"taxifare/internal/app"
	intconfig "taxifare/internal/config"
	router "taxifare/internal/http"
	"taxifare/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := utils.InitLogger(env.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	// No UI until the query has finished.
	table, err := app.LoadTable(context.Background(), env, intconfig.OpenDB)
	if err != nil {
		logger.Fatal("load trips", zap.Error(err))
	}

	r, err := router.NewRouter(env, table)
	if err != nil {
		logger.Fatal("build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
}
