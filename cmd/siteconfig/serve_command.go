package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/baskeboler/siteconfig"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(ctx *commandContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site configuration as JSON over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			srv := siteconfig.NewServer(cfg, siteconfig.WithLogger(logger))

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(addr)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("serve: %w", err)
				}
				return nil
			case <-runCtx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return <-errCh
		},
	}

	cmd.Flags().StringVar(&addr, "addr", siteconfig.EnvOr("SITECONFIG_ADDR", ":3000"), "Listen address")
	return cmd
}
