package commands

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"timecapsule/internal/domain"
	"timecapsule/internal/output"
	"timecapsule/internal/services/custody"
	"timecapsule/internal/services/letter"
)

// open <link> | open --id <id> --share <share>: decrypt an unlocked letter.
func openCmd() *cobra.Command {
	var (
		idText string
		share  string
	)
	cmd := &cobra.Command{
		Use:   "open [link]",
		Short: "Open a letter once its unlock time has passed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.RequireCustody(); err != nil {
				return err
			}

			var (
				id          domain.LetterID
				clientShare domain.Share
				err         error
			)
			if len(args) == 1 {
				id, clientShare, err = letter.ParseShareLink(args[0])
			} else {
				if idText == "" || share == "" {
					return fmt.Errorf("a share link or both --id and --share are required")
				}
				id, err = uuid.Parse(idText)
				clientShare = domain.Share(share)
			}
			if err != nil {
				return err
			}

			var plaintext []byte
			err = withSpinner("Opening letter...", func() error {
				var openErr error
				plaintext, openErr = wire.Letters.Open(cmd.Context(), id, clientShare)
				return openErr
			})
			var sealed *custody.SealedError
			switch {
			case errors.As(err, &sealed):
				return fmt.Errorf("letter is still sealed; it unlocks %s", output.When(sealed.UnlockAt))
			case errors.Is(err, domain.ErrIntegrity):
				return fmt.Errorf("letter failed its integrity check and was not decrypted")
			case err != nil:
				return err
			}
			log.Infof("letter %s opened", id)

			fmt.Fprintln(cmd.OutOrStdout(), string(plaintext))
			return nil
		},
	}
	cmd.Flags().StringVar(&idText, "id", "", "letter id")
	cmd.Flags().StringVar(&share, "share", "", "client share (base64url)")
	return cmd
}
