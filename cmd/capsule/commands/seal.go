package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"timecapsule/internal/crypto"
	"timecapsule/internal/domain"
	"timecapsule/internal/output"
	"timecapsule/internal/services/letter"
)

var unlockLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}

// parseUnlock accepts an absolute time (RFC 3339 or date) or, via in, a
// duration from now.
func parseUnlock(at string, in time.Duration, now time.Time) (time.Time, error) {
	if in > 0 {
		if at != "" {
			return time.Time{}, fmt.Errorf("use either --at or --in, not both")
		}
		return now.Add(in), nil
	}
	if at == "" {
		return time.Time{}, fmt.Errorf("unlock time required (--at or --in)")
	}
	for _, layout := range unlockLayouts {
		if t, err := time.ParseInLocation(layout, at, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse unlock time %q", at)
}

// seal [message]: encrypt a letter and print the share link.
func sealCmd() *cobra.Command {
	var (
		at   string
		in   time.Duration
		file string
	)
	cmd := &cobra.Command{
		Use:   "seal [message]",
		Short: "Encrypt a letter until an unlock time",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.RequireCustody(); err != nil {
				return err
			}
			if wire.Config.LocalCustody() {
				log.Warnf("no key server configured; the server share stays in %s", wire.Config.Home)
			}
			unlockAt, err := parseUnlock(at, in, time.Now())
			if err != nil {
				return err
			}

			var body []byte
			switch {
			case file != "":
				if body, err = os.ReadFile(file); err != nil {
					return err
				}
			case len(args) == 1:
				body = []byte(args[0])
			default:
				if body, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			defer crypto.Wipe(body)

			var (
				l           domain.Letter
				clientShare domain.Share
			)
			err = withSpinner("Sealing letter...", func() error {
				var sealErr error
				l, clientShare, sealErr = wire.Letters.Seal(cmd.Context(), body, unlockAt)
				return sealErr
			})
			if err != nil {
				return err
			}
			log.Infof("letter %s sealed (%d bytes)", l.ID, len(body))

			link := letter.ShareLink(wire.Config.LinkBase, l.ID, clientShare)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, output.PrintSuccess("Letter sealed"))
			fmt.Fprintln(out, output.Field("id", l.ID.String()))
			fmt.Fprintln(out, output.Field("unlocks", output.When(l.UnlockAt)))
			fmt.Fprintln(out, output.Field("proof", l.Proof.Hash.String()))
			fmt.Fprintln(out, output.Field("share", crypto.Fingerprint([]byte(clientShare))))
			fmt.Fprintln(out, output.BoxStyle.Render(link))
			fmt.Fprintln(out, output.PrintWarning("The link holds the only copy of the client share. Keep it safe."))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "unlock time (RFC 3339, \"2006-01-02 15:04\" or \"2006-01-02\")")
	cmd.Flags().DurationVar(&in, "in", 0, "unlock after this duration (e.g. 720h)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the letter from a file")
	return cmd
}
