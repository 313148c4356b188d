package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/redhat-data-and-ai/bookroster/internal/httpapi/server"
	"github.com/redhat-data-and-ai/bookroster/pkg/cache"
	"github.com/redhat-data-and-ai/bookroster/pkg/client"
	"github.com/redhat-data-and-ai/bookroster/pkg/config"
	"github.com/redhat-data-and-ai/bookroster/pkg/logger"
	"github.com/redhat-data-and-ai/bookroster/pkg/seed"
	"github.com/redhat-data-and-ai/bookroster/pkg/store"
	"github.com/redhat-data-and-ai/bookroster/pkg/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("command failed")
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "bookroster",
		Short:         "Companies, employees and their reading lists over a key-value store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newSeedCommand(), newHealthCommand())
	return root
}

func newServeCommand() *cobra.Command {
	var skipSeed bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, dataStore, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := telemetry.Shutdown(shutdownCtx); err != nil {
					logrus.WithError(err).Warn("failed to flush metrics")
				}
			}()
			defer closeStore(dataStore)

			if !skipSeed && cfg.Seed.File != "" {
				if err := applySeed(ctx, dataStore, cfg.Seed.File); err != nil {
					return err
				}
			}

			return server.NewAPIServer(cfg, dataStore).Start(ctx)
		},
	}
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "do not apply the configured seed file on start")
	return cmd
}

func newSeedCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the records of a seed file and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, dataStore, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(dataStore)
			if file == "" {
				file = cfg.Seed.File
			}
			if file == "" {
				return fmt.Errorf("no seed file given and seed.file is not configured")
			}
			return applySeed(cmd.Context(), dataStore, file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "seed file, defaults to seed.file from the configuration")
	return cmd
}

func newHealthCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check a running server and its store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := client.New(client.Config{BaseURL: addr, RetryCount: 1})
			if err != nil {
				return err
			}
			if err := c.Healthz(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "http://localhost:5000", "server base URL")
	return cmd
}

// bootstrap loads the configuration and wires logging, metrics, the cache and the store
func bootstrap(ctx context.Context) (*config.AppConfig, *store.Store, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.Logging)

	if cfg.Telemetry.ServiceVersion == "" {
		cfg.Telemetry.ServiceVersion = cfg.App.Version
	}
	if err := telemetry.Setup(ctx, cfg.Telemetry); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	kv, err := cache.New(&cfg.Cache)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"driver":      cfg.Cache.Driver,
		"environment": cfg.App.Environment,
	}).Info("store initialized")
	return cfg, store.New(kv), nil
}

func closeStore(dataStore *store.Store) {
	if err := dataStore.Close(); err != nil {
		logrus.WithError(err).Warn("failed to close the store")
	}
}

func applySeed(ctx context.Context, dataStore *store.Store, path string) error {
	f, err := seed.Load(path)
	if err != nil {
		return err
	}
	_, err = seed.Apply(ctx, dataStore, f)
	return err
}
