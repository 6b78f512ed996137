package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timecapsule/internal/app"
	"timecapsule/internal/logging"
	"timecapsule/internal/output"
)

var (
	home       string
	passphrase string
	keyServer  string
	linkBase   string
	verbose    bool
	debug      bool

	wire *app.Wire
	log  logging.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "capsule",
		Short:         "Seal letters that can only be opened after a chosen time",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log = logging.Logger{Verbose: verbose, Debug: debug}

			cfg, err := app.Load(home)
			if err != nil {
				return err
			}
			// Flags win over file and environment
			flags := cmd.Flags()
			if flags.Changed("passphrase") {
				cfg.Passphrase = passphrase
			}
			if flags.Changed("key-server") {
				cfg.KeyServer = keyServer
			}
			if flags.Changed("link-base") {
				cfg.LinkBase = linkBase
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}
			log.Debugf("home=%s key_server=%q", cfg.Home, cfg.KeyServer)

			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.timecapsule)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting locally held server shares")
	root.PersistentFlags().StringVar(&keyServer, "key-server", "", "key server base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVar(&linkBase, "link-base", "", "base URL used in share links")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "debug output")

	root.AddCommand(
		sealCmd(), openCmd(), listCmd(),
		combineCmd(), checkSharesCmd(), splitCmd(),
		hashCmd(), proofCmd(), configCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.PrintError(err.Error()))
		return err
	}
	return nil
}
