package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AntonioJCosta/lolbunny/internal/config"
	"github.com/AntonioJCosta/lolbunny/internal/core/services/redirect"
	"github.com/AntonioJCosta/lolbunny/internal/handlers/httpapi"
	"github.com/AntonioJCosta/lolbunny/internal/logging"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the 'serve' subcommand.
func NewServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the redirect server.",
		Long: `Serves the help page on /, redirects /search/<text> and /search?q=<text>,
and exposes /opensearch.xml and /info/healthcheck.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServeCmd(ctx, a)
		},
	}

	cmd.Flags().String("addr", ":8000", "Address to listen on.")
	cmd.Flags().String("public-url", "http://localhost:8000", "URL the server is reachable at, used in the search descriptor.")
	mustBind(a.viper, config.KeyServerAddr, cmd.Flags().Lookup("addr"))
	mustBind(a.viper, config.KeyServerPublicURL, cmd.Flags().Lookup("public-url"))

	return cmd
}

func runServeCmd(ctx context.Context, a *app) error {
	// The help page is rendered up front; failing here is a startup error,
	// never a per-request one.
	if _, err := a.svc.HelpPage(); err != nil {
		return fmt.Errorf("could not render help page: %w", err)
	}

	srv, err := httpapi.NewServer(a.svc, httpapi.Options{
		Addr:            a.config.Server.Addr,
		PublicURL:       a.config.Server.PublicURL,
		ShutdownTimeout: a.config.Server.ShutdownTimeout,
		Title:           redirect.DefaultTitle,
	}, logging.WithComponent(a.log, "http"))
	if err != nil {
		return fmt.Errorf("could not create server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return err
	}
	a.log.Info().Msg("server stopped")
	return nil
}
