// Command phyloflow-server provides a REST API for the alignment and
// tree-inference engine.
//
// Usage:
//
//	phyloflow-server [options]
//
// Options:
//
//	-port     Port to listen on (default: from settings, 8080)
//	-host     Host to bind to (default: from settings, localhost)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/phyloflow/phyloflow-go/api/handlers"
	"github.com/phyloflow/phyloflow-go/api/middleware"
	"github.com/phyloflow/phyloflow-go/config"
)

func main() {
	cfg := config.New()
	port := flag.Int("port", cfg.Server.Port, "Port to listen on")
	host := flag.String("host", cfg.Server.Host, "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Sequence endpoints
		r.Route("/sequence", func(r chi.Router) {
			r.Post("/info", handlers.SequenceInfoHandler)
			r.Post("/validate", handlers.ValidateHandler)
		})

		// Alignment endpoints
		r.Route("/align", func(r chi.Router) {
			r.Post("/global", handlers.GlobalAlignHandler)
			r.Post("/local", handlers.LocalAlignHandler)
		})

		// Distance endpoints
		r.Route("/distance", func(r chi.Router) {
			r.Post("/matrix", handlers.DistanceMatrixHandler)
		})

		// Tree endpoints
		r.Route("/tree", func(r chi.Router) {
			r.Post("/build", handlers.BuildTreeHandler)
			r.Post("/compare", handlers.CompareTreesHandler)
		})
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("PhyloFlow API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
