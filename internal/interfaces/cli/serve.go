package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/baobabprince/HebrewFamilyTree/internal/domain/tree"
	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/logging"
	prom "github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/prometheus"
	httpiface "github.com/baobabprince/HebrewFamilyTree/internal/interfaces/http"
)

// newServeCmd runs the kinship query API over the loaded record set.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the kinship query API",
		Long:  "Loads the GEDCOM file and serves health, metrics and kinship query\nendpoints.  With gedcom.watch enabled, the record set is rebuilt whenever\nthe file changes on disk.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			cfg := cliCtx.Config
			logger := cliCtx.Logger

			registry := prometheus.NewRegistry()
			metrics := prom.New(registry)

			state := httpiface.NewState(tree.Gender(cfg.Notify.DefaultGender), logger, metrics)
			if err := state.LoadFile(cfg.Gedcom.InputFile); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Gedcom.Watch {
				if err := state.Watch(ctx, cfg.Gedcom.InputFile); err != nil {
					return err
				}
				logger.Info("watching GEDCOM file for changes",
					logging.String("path", cfg.Gedcom.InputFile))
			}

			server := httpiface.NewServer(cfg.Server, httpiface.RouterConfig{
				State:    state,
				Logger:   logger,
				Metrics:  metrics,
				Registry: registry,
			})

			errCh := make(chan error, 1)
			go func() { errCh <- server.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
				defer cancel()
				return server.Stop(shutdownCtx)
			}
		},
	}
}
