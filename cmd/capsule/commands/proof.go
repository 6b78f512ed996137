package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"timecapsule/internal/domain"
	"timecapsule/internal/output"
)

// hash [text]: print the SHA-256 digest of text, a file or base64 input.
func hashCmd() *cobra.Command {
	var (
		file    string
		encoded bool
	)
	cmd := &cobra.Command{
		Use:   "hash [text]",
		Short: "Print the SHA-256 hex digest of the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				digest domain.Digest
				err    error
			)
			switch {
			case file != "":
				var b []byte
				if b, err = os.ReadFile(file); err != nil {
					return err
				}
				digest = wire.Proofs.HashBuffer(b)
			case len(args) == 1 && encoded:
				digest, err = wire.Proofs.HashBase64(args[0])
			case len(args) == 1:
				digest = wire.Proofs.HashText(args[0])
			default:
				var b []byte
				if b, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return err
				}
				digest = wire.Proofs.HashBuffer(b)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), digest)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "hash the contents of a file")
	cmd.Flags().BoolVar(&encoded, "base64", false, "treat the argument as standard base64 and hash the decoded bytes")
	return cmd
}

func proofCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proof",
		Short: "Create and verify ciphertext proofs",
	}
	cmd.AddCommand(proofCreateCmd(), proofVerifyCmd())
	return cmd
}

func proofCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <ciphertext-base64>",
		Short: "Build a proof record for base64 ciphertext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := wire.Proofs.CreateProof(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		},
	}
}

func proofVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <ciphertext-base64> <hash>",
		Short: "Check base64 ciphertext against an expected hash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !wire.Proofs.Verify(args[0], domain.Digest(args[1])) {
				return fmt.Errorf("proof does not match")
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.PrintSuccess("proof matches"))
			return nil
		},
	}
}
