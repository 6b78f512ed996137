package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timecapsule/internal/output"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored letters",
		RunE: func(cmd *cobra.Command, args []string) error {
			letters, err := wire.Letters.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(letters) == 0 {
				fmt.Fprintln(out, output.PrintInfo("No letters yet"))
				return nil
			}
			now := time.Now()
			fmt.Fprintln(out, output.TitleStyle.Render(fmt.Sprintf("%d letter(s)", len(letters))))
			for _, l := range letters {
				fmt.Fprintf(out, "%s  %-8s  %s\n", l.ID, output.Status(l.UnlockAt, now), output.When(l.UnlockAt))
			}
			return nil
		},
	}
}
