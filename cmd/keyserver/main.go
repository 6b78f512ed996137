package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"timecapsule/internal/app"
	"timecapsule/internal/logging"
	"timecapsule/internal/relay"
	"timecapsule/internal/services/custody"
	"timecapsule/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		home   string
		listen string
		debug  bool
	)
	cmd := &cobra.Command{
		Use:           "keyserver",
		Short:         "Hold server shares until each letter's unlock time",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.Logger{Verbose: true, Debug: debug}
			err := serve(cmd.Context(), home, listen, log)
			if err != nil {
				log.Errorf("%v", err)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&home, "home", "", "data dir (default ~/.timecapsule)")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default :8080)")
	cmd.Flags().BoolVar(&debug, "debug", false, "debug output")
	return cmd
}

// serve runs the key server until ctx is done or SIGINT/SIGTERM arrives.
func serve(ctx context.Context, home, listen string, log logging.Logger) error {
	cfg, err := app.Load(home)
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.Listen = listen
	}
	if cfg.Passphrase == "" {
		return app.ErrPassphraseRequired
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return err
	}

	log.Debugf("config: listen=%s home=%s", cfg.Listen, cfg.Home)
	custodian := custody.New(store.NewShareFileStore(cfg.Home), cfg.Passphrase, nil)
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           relay.Handler(custodian, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Infof("key server listening on %s (home %s)", cfg.Listen, cfg.Home)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
