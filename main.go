package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// newCORS allows the dashboard front end to call the API from origins.
func newCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
}

func main() {
	// Set properties of the predefined Logger: entry prefix, no timestamps
	// (the platform log collector adds them).
	log.SetPrefix("lg/adaptive-tdee-api: ")
	log.SetFlags(0)

	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env: %v", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Unable to open %s store: %v", cfg.StoreDriver, err)
	}
	defer store.Close()

	if cfg.CheckinCron != "" {
		sched, err := startScheduler(cfg.CheckinCron, store)
		if err != nil {
			log.Fatal(err)
		}
		defer sched.Stop()
	}

	router := gin.Default()
	router.SetTrustedProxies(nil)
	newHandler(store).registerRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newCORS(cfg.CORSOrigins).Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("Starting gin app on :%s (%s store)...", cfg.Port, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
