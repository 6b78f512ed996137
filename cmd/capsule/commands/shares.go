package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"timecapsule/internal/crypto"
	"timecapsule/internal/domain"
	"timecapsule/internal/output"
)

// combine <client> <server>: print the recovered key.
func combineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combine <client-share> <server-share>",
		Short: "Recover a key from two shares",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := wire.Shares.Combine(domain.Share(args[0]), domain.Share(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
}

func checkSharesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-shares <client-share> <server-share>",
		Short: "Report whether two shares combine",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !wire.Shares.Verify(domain.Share(args[0]), domain.Share(args[1])) {
				return fmt.Errorf("shares do not combine")
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.PrintSuccess("shares combine"))
			return nil
		},
	}
}

// split <secret>: split a base64url secret into --count shares.
func splitCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "split <secret>",
		Short: "Split a base64url secret into 2-of-n shares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := wire.Shares.Decode(domain.Share(args[0]))
			if err != nil {
				return err
			}
			defer crypto.Wipe(secret)

			shares, err := wire.Shares.Split(secret, count)
			if err != nil {
				return err
			}
			for _, sh := range shares {
				fmt.Fprintln(cmd.OutOrStdout(), sh)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 2, "number of shares (any two recover the secret)")
	return cmd
}
