package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"example.com/mergington/internal/api"
	"example.com/mergington/internal/auth"
	"example.com/mergington/internal/config"
	"example.com/mergington/internal/credentials"
	"example.com/mergington/internal/domain"
	"example.com/mergington/internal/session"
	httptransport "example.com/mergington/internal/transport/http"
)

func main() {
	// Optional .env for local dev; env vars win.
	_ = godotenv.Load()

	cfg := config.Load()

	creds := credentials.NewFile(cfg.TeachersFile)

	var sessionOpts []session.StoreOption
	if cfg.SessionTTL > 0 {
		sessionOpts = append(sessionOpts, session.WithTTL(cfg.SessionTTL))
	}
	sessions := session.NewStore(creds, sessionOpts...)

	registry := domain.NewRegistry(
		domain.DefaultActivities(),
		domain.WithCapacityEnforcement(cfg.EnforceCapacity),
	)

	handler := api.NewHandler(registry, sessions)
	router := api.NewRouter(handler, auth.NewMiddleware(sessions), cfg.StaticDir)

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address: cfg.HTTPAddress,
	}, router)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("activities service listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
