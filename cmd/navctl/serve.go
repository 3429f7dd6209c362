package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/Beep206/CyberVPN-sub013/internal/config"
	"github.com/Beep206/CyberVPN-sub013/internal/engine"
	"github.com/Beep206/CyberVPN-sub013/internal/logging"
	httpadapter "github.com/Beep206/CyberVPN-sub013/pkg/adapters/http"
	redisstore "github.com/Beep206/CyberVPN-sub013/pkg/adapters/redis"
	"github.com/Beep206/CyberVPN-sub013/pkg/deeplink"
	"github.com/Beep206/CyberVPN-sub013/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the debug API server",
	Long:  `Serves the decision and deep-link inspection API over HTTP, with Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		table, err := loadTable(cmd)
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Listen = ":" + port
		}

		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		// When redis is configured, the live pending-route slot is
		// exposed through the pending endpoints. The decide endpoint
		// itself stays dry-run either way.
		var store ports.PendingRouteStore
		if cfg.Redis.Addr != "" {
			client := backend.NewClient(&backend.Options{Addr: cfg.Redis.Addr})
			if err := client.Ping(cmd.Context()).Err(); err != nil {
				return fmt.Errorf("redis %s unreachable: %w", cfg.Redis.Addr, err)
			}
			opts := []redisstore.Option{}
			if cfg.Redis.Key != "" {
				opts = append(opts, redisstore.WithKey(cfg.Redis.Key))
			}
			if ttl := cfg.Redis.TTLDuration(); ttl > 0 {
				opts = append(opts, redisstore.WithTTL(ttl))
			}
			store = redisstore.NewFromClient(client, opts...)
			logger.Info("pending-route store backend", "addr", cfg.Redis.Addr)
		}

		eng := engine.New(cfg.NavPaths(), engine.WithLogger(logger))
		handler := httpadapter.NewHandler(
			engine.NewEvaluator(eng, logger),
			deeplink.NewInterpreter(table),
			store,
			logger,
		)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting debug API server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutdown requested", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("closing server: %w", err)
				}
			}
			logger.Info("server stopped")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config)")
}
