package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRmCmd(app *App) *cobra.Command {
	var date string
	var noteID int64

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a day record or a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			hasDate := cmd.Flags().Changed("date")
			hasID := cmd.Flags().Changed("id")

			if hasDate == hasID {
				return fmt.Errorf("pass exactly one of --date or --id")
			}

			if hasDate {
				if err := validateDate(date); err != nil {
					return err
				}
				if err := app.Ledger.RemoveDay(ctx, date); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", date)
				return nil
			}

			if err := app.Ledger.RemoveNote(ctx, noteID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed note %d\n", noteID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Remove the record for this day (YYYY-MM-DD)")
	cmd.Flags().Int64VarP(&noteID, "id", "i", 0, "Remove the note with this id")

	return cmd
}
