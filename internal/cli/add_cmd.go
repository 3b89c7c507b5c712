package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stempel/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var date, start, end, note string
	var breakMin int
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record or update a workday",
		Long: `Record start time, end time, break and notes for a day.

Passing -s or -e without a value stamps the current time. Without any
field flags on an interactive terminal, a form collects the values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := validateDate(date); err != nil {
				return err
			}

			u := domain.DayUpdate{}
			if cmd.Flags().Changed("start") {
				if err := validateClock(start); err != nil {
					return err
				}
				u.StartTime = domain.StrPtr(start)
			}
			if cmd.Flags().Changed("end") {
				if err := validateClock(end); err != nil {
					return err
				}
				u.EndTime = domain.StrPtr(end)
			}
			if cmd.Flags().Changed("break") {
				u.BreakMinutes = domain.IntPtr(breakMin)
			}

			if u.IsEmpty() && note == "" {
				if !app.interactive() {
					return fmt.Errorf("nothing to add: pass at least one of --start, --end, --break or --note")
				}
				var err error
				u, note, err = runAddForm(date)
				if err != nil {
					return err
				}
				if u.IsEmpty() && note == "" {
					return nil
				}
			}

			if !u.IsEmpty() {
				if err := app.Ledger.AddOrUpdateDay(ctx, date, u, overwrite); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s\n", date)
			}
			if note != "" {
				id, err := app.Ledger.AddNote(ctx, date, note)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added note %d for %s\n", id, date)
			}
			return nil
		},
	}

	now := time.Now()
	cmd.Flags().StringVarP(&date, "date", "d", now.Format("2006-01-02"), "Day to record (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start time (HH:MM)")
	cmd.Flags().StringVarP(&end, "end", "e", "", "End time (HH:MM)")
	cmd.Flags().IntVarP(&breakMin, "break", "b", 0, "Break length in minutes")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Attach a note to the day")
	cmd.Flags().BoolVarP(&overwrite, "overwrite", "o", true, "Replace already recorded fields (--overwrite=false only fills gaps)")

	// Bare -s / -e stamp the current clock time.
	cmd.Flags().Lookup("start").NoOptDefVal = now.Format("15:04")
	cmd.Flags().Lookup("end").NoOptDefVal = now.Format("15:04")

	return cmd
}
