package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/hmans/gradebook/internal/graph"
	"github.com/hmans/gradebook/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the GraphQL server",
	Long: `Start an HTTP server that serves the GraphQL API.

The server exposes:
  - GraphQL endpoint at /graphql (POST, or GET with a query parameter)
  - GraphQL Playground at /graphql (GET from a browser) for interactive queries
  - Health check at /healthz

Examples:
  # Start server on the configured port (3000 by default)
  gradebook serve

  # Start server on a custom port with seed files from another directory
  gradebook serve --port 8080 --data ./fixtures`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		return runServer()
	},
}

func runServer() error {
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	es := graph.NewExecutableSchema(graph.Config{
		Resolvers: graph.NewResolver(book),
	})
	srv := server.New(cfg.Server, es, logger)

	// Set up signal handling with context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to listen for server errors
	serverErr := make(chan error, 1)

	go func() {
		fmt.Printf("Starting server at http://localhost:%d/\n", cfg.Server.Port)
		fmt.Printf("GraphQL Playground: http://localhost:%d%s\n", cfg.Server.Port, server.Endpoint)
		serverErr <- srv.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		fmt.Printf("\nShutting down...\n")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		fmt.Println("Server stopped")
	}

	return nil
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 3000, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
