package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ledgerline/go-billing/internal/config"
	"github.com/ledgerline/go-billing/internal/db"
	"github.com/ledgerline/go-billing/internal/server"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := newLogger(cfg.App.Dev)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	dbConn, err := db.Connect(cfg.Database, log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	if cfg.App.Migrations || *migrateOnlyFlag {
		if err := db.Migrate(dbConn); err != nil {
			log.Fatal("migrations failed", zap.Error(err))
		}
		log.Info("migrations applied")
	}
	if *migrateOnlyFlag {
		return
	}
	if cfg.App.Seed {
		if err := db.Seed(dbConn, log); err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
	}

	handler := withLogging(log, server.New(dbConn, log))
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
	log.Info("server stopped")
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// withLogging logs one line per request.
func withLogging(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}
