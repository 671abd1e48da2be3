package main

import (
	"net/http"
	"os"
	"time"

	"github.com/qcoinlab/go-qcc/internal/coin/quantum"
	"github.com/qcoinlab/go-qcc/internal/handlers"
	"github.com/qcoinlab/go-qcc/internal/logger"
)

func main() {
	log := logger.Logger()

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Local state-vector simulator backend
	backend := quantum.NewSimulator()
	mux := handlers.NewServeMux(backend)

	// Create server with timeouts
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      loggingMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Str("port", port).Str("backend", backend.Name()).Msg("server starting")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	log := logger.Logger()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote", r.RemoteAddr).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
