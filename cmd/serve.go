package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/epeers/exposure/config"
	"github.com/epeers/exposure/internal/handlers"
	"github.com/epeers/exposure/internal/staticdata"
)

var servePort string

// serveCmd implements the 'exposure serve' command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the exposure analysis HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (defaults to PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	port := servePort
	if port == "" {
		port = cfg.Port
	}

	tables, err := staticdata.Load()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: handlers.NewRouter(tables),
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}
