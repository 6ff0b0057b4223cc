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

	"go.uber.org/zap"

	"github.com/linesmerrill/chatroom-api/api/handlers"
	"github.com/linesmerrill/chatroom-api/api/scheduler"
	"github.com/linesmerrill/chatroom-api/config"
)

func main() {
	conf, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	a := handlers.App{Config: *conf}
	if err := a.Initialize(); err != nil { //initialize database and router
		zap.S().Fatalw("failed to initialize chatroom-api", "error", err)
	}

	// evict participants that stopped sending heartbeats
	sweeper := scheduler.NewScheduler(a.Presence, conf.SweepInterval, conf.InactivityThreshold, conf.QueryTimeout)
	if err := sweeper.Start(); err != nil {
		zap.S().Fatalw("failed to start inactivity sweep", "error", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", conf.Port),
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       conf.RequestTimeout,
		WriteTimeout:      conf.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zap.S().Infow("chatroom-api is up and running",
			"port", conf.Port,
			"url", conf.BaseURL,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalw("http server failed", "error", err)
		}
	}()

	<-ctx.Done()
	zap.S().Info("shutting down chatroom-api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.S().Errorw("failed to shut down http server", "error", err)
	}
	sweeper.Stop()
	if err := a.Close(shutdownCtx); err != nil {
		zap.S().Errorw("failed to disconnect from database", "error", err)
	}
	_ = zap.L().Sync()
}
