package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staffdesk/api"
	"staffdesk/internal/config"
	"staffdesk/internal/db"
	"staffdesk/internal/nav"
	"staffdesk/internal/repository/statetree"
	"staffdesk/internal/session"
	"staffdesk/internal/store"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Starting staffdesk server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	conn, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}

	st, err := store.New(ctx, conn, nil)
	if err != nil {
		log.Fatalf("Failed to init store: %v", err)
	}

	// Load seeds the defaults when the stored state is missing or corrupt.
	tree, err := st.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load state: %v", err)
	}

	repo := statetree.New(tree, st, nil)
	guard := session.NewGuard(repo, st, nil)
	router := nav.NewRouter()

	// Re-establish the persisted session, if its account still exists.
	if sess, err := guard.Restore(ctx); err != nil {
		log.Fatalf("Failed to restore session: %v", err)
	} else if sess != nil {
		log.Printf("Restored session for %s", sess.Email)
	}

	handler := api.SetupRoutes(cfg, version, buildTime, repo, guard, router)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := conn.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}

	log.Println("Server exited")
}
