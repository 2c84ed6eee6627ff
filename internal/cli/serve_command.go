package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tasktrack/internal/api"
	"tasktrack/internal/config"
	"tasktrack/internal/logging"
	"tasktrack/internal/observability"
	"tasktrack/internal/server"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	api    api.API
	config *config.Config
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{api: app.api, config: app.config}
}

// Execute starts the web server and blocks until interrupted
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	metrics := observability.NewMetrics(c.config.Server.MetricsNamespace)
	srv := server.New(c.config, c.api, metrics)

	httpServer := &http.Server{
		Addr:    c.config.Server.Addr,
		Handler: srv.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Listening on http://%s\n", c.config.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	case sig := <-stop:
		logging.Debugf("received signal %v, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.config.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	fmt.Println("Server stopped")
	return nil
}
