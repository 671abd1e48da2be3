package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/qcoinlab/go-qcc/internal/coin/quantum"
	"github.com/qcoinlab/go-qcc/internal/handlers"
	"github.com/qcoinlab/go-qcc/internal/logger"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the search API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.Logger()

			backend := quantum.NewSimulator()
			server := &http.Server{
				Addr:         fmt.Sprintf(":%d", port),
				Handler:      handlers.NewServeMux(backend),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			log.Info().Int("port", port).Str("backend", backend.Name()).Msg("server starting")
			return server.ListenAndServe()
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "listen port")

	return cmd
}
