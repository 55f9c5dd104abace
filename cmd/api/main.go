package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	_ "pawpal/docs"
	"pawpal/internal/platform/config"
	"pawpal/internal/platform/logger"
	"pawpal/internal/router"
)

// @title PawPal API
// @version 1.0
// @description Planificador diario de cuidado de mascotas: owners, mascotas, tareas y generación de plan.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid config", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	handler, recurrenceSvc := router.NewRouter(router.Options{DSN: cfg.DBDSN, Log: log})

	// Rollover de recurrencia: corre una vez al día (ROLLOVER_TIME) y
	// reabre las tareas daily/weekly que ya vencieron.
	c := cron.New()
	if _, err := c.AddFunc(cfg.CronSpec(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := recurrenceSvc.Rollover(ctx); err != nil {
			log.Error("rollover failed", map[string]any{"err": err.Error()})
		}
	}); err != nil {
		log.Error("invalid rollover spec", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
	c.Start()
	defer func() {
		<-c.Stop().Done()
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
