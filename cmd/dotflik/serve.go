package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotflik/dotflik/internal/api"
	"github.com/dotflik/dotflik/internal/api/handlers"
	"github.com/dotflik/dotflik/internal/database"
	"github.com/dotflik/dotflik/internal/grpcserver"
	"github.com/dotflik/dotflik/internal/pagination"
	"github.com/dotflik/dotflik/internal/repository"
	"github.com/dotflik/dotflik/internal/services"
	"github.com/dotflik/dotflik/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (and gRPC, when enabled)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			defer logger.Sync()

			logger.Info("Database config: Driver=%s, Host=%s, Port=%d, Database=%s",
				cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

			db, err := database.Connect(cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					logger.Error("Failed to close database connection: %v", err)
				}
			}()

			gdb, err := database.NewGormDB(db, cfg)
			if err != nil {
				return err
			}

			factory := pagination.NewFactory()
			gate := pagination.NewGate(factory)
			movieSvc := services.NewMovieService(repository.NewMovieRepository(gdb), factory, cfg.Pagination.MaxPageSize)
			starSvc := services.NewStarService(repository.NewStarRepository(gdb), factory, cfg.Pagination.MaxPageSize)
			genreSvc := services.NewGenreService(repository.NewGenreRepository(db))

			h := handlers.NewHandlers(db, movieSvc, genreSvc, starSvc)
			srv := &http.Server{
				Addr:         cfg.Server.Address,
				Handler:      api.SetupRouter(h, gate, cfg),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			errCh := make(chan error, 2)
			go func() {
				logger.Info("Starting Dotflik API server on %s", cfg.Server.Address)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- fmt.Errorf("http server: %w", err)
				}
			}()

			var grpcSrv *grpcserver.Server
			if cfg.GRPC.Enabled {
				lis, err := net.Listen("tcp", cfg.GRPC.Address)
				if err != nil {
					return fmt.Errorf("failed to listen on %s: %w", cfg.GRPC.Address, err)
				}
				grpcSrv = grpcserver.New(lis, gate, grpcserver.NewCatalog(movieSvc, starSvc))
				go func() {
					if err := grpcSrv.Start(); err != nil {
						errCh <- fmt.Errorf("grpc server: %w", err)
					}
				}()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			select {
			case <-ctx.Done():
			case err := <-errCh:
				logger.Error("Server failed: %v", err)
			}

			logger.Info("Shutting down server...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if grpcSrv != nil {
				if err := grpcSrv.Stop(shutdownTimeout); err != nil {
					logger.Warn("gRPC server forced to stop: %v", err)
				}
			}
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}

			logger.Info("Server exited")
			return nil
		},
	}
}
