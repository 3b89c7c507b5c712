package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stempel/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "List days with missing entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			incomplete, err := app.Ledger.ListIncomplete(context.Background())
			if err != nil {
				return err
			}
			if len(incomplete) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("All recorded days are complete."))
				return nil
			}
			for _, day := range incomplete {
				for _, field := range day.MissingFields {
					fmt.Fprintf(cmd.OutOrStdout(), "Missing %s for %s\n", field, day.Date)
				}
			}
			return nil
		},
	}
}
