package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"zelo/internal/infrastructure/config"
	"zelo/internal/infrastructure/database"
	httpRouter "zelo/internal/interfaces/http"
	"zelo/internal/shared/constants"
	"zelo/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Zelo HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ginMode := mapEnvToGinMode(env)
	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, ginMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	container, err := httpRouter.NewContainer(cmd.Context(), cfg, database.Get(), log)
	if err != nil {
		log.Fatalw("failed to build container", "error", err)
	}
	defer container.Shutdown()

	container.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Infow("server stopped")
	return nil
}

func mapEnvToGinMode(env string) string {
	switch env {
	case constants.EnvProduction:
		return gin.ReleaseMode
	case constants.EnvTest:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
