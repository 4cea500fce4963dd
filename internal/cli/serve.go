package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scratchbook/internal/httpserver"
	"github.com/mesh-intelligence/scratchbook/internal/httpserver/deps"
	"github.com/mesh-intelligence/scratchbook/internal/images"
	"github.com/mesh-intelligence/scratchbook/pkg/scratchbook"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only browse API",
		Long: `Serve exposes the catalog over HTTP for browsing: items, statistics, map
counts, documents, websites, exports and images. Nothing can be changed
through it, and it listens on loopback unless --addr says otherwise.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.settings.ListenAddr
			}
			srv := httpserver.New(addr, deps.Deps{
				Logger:    a.log,
				StartTime: time.Now(),
				Version:   scratchbook.Version,
				Catalog:   c,
				Images:    images.NewStore(a.dataDir),
				PageSize:  a.settings.PageSize,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() { errc <- srv.Start() }()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				return err
			}
			return <-errc
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: listen_addr from config)")
	return cmd
}
