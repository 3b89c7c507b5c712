package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/stempel/internal/cli/formatter"
	"github.com/alexanderramin/stempel/internal/service"
	"github.com/spf13/cobra"
)

// formatValue adapts formatter.Format to the pflag.Value interface so
// --format rejects unknown names at parse time.
type formatValue struct {
	f *formatter.Format
}

func (v formatValue) String() string { return string(*v.f) }

func (v formatValue) Set(s string) error {
	parsed, err := formatter.ParseFormat(s)
	if err != nil {
		return err
	}
	*v.f = parsed
	return nil
}

func (v formatValue) Type() string { return "format" }

func newShowCmd(app *App) *cobra.Command {
	var date, month, year string
	var all, withNotes bool
	format := formatter.FormatTable

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show recorded days with overtime balances",
		Long: `Show recorded days with worked hours, overtime and the running balance.

Without a selector the current month is shown. Bare -m and -y select the
current month or year; the balance column always reflects the full
history, not just the shown window.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildFilter(cmd, date, month, year, all)
			if err != nil {
				return err
			}

			rows, err := app.Ledger.QueryDays(context.Background(), f, withNotes)
			if err != nil {
				return err
			}
			if len(rows) == 0 && format == formatter.FormatTable {
				fmt.Fprintln(cmd.OutOrStdout(), "No days recorded for this selection.")
				return nil
			}

			out, err := formatter.FormatDays(rows, format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	now := time.Now()
	cmd.Flags().StringVarP(&date, "date", "d", "", "Show a single day (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&month, "month", "m", "", "Show a month (MM, default current)")
	cmd.Flags().StringVarP(&year, "year", "y", "", "Show a year (YYYY, default current)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show the entire history")
	cmd.Flags().BoolVarP(&withNotes, "notes", "n", false, "Include notes")
	cmd.Flags().VarP(formatValue{&format}, "format", "f", "Output format: table, json or markdown")

	// Bare -m / -y mean "the current one".
	cmd.Flags().Lookup("month").NoOptDefVal = now.Format("01")
	cmd.Flags().Lookup("year").NoOptDefVal = now.Format("2006")

	return cmd
}

// buildFilter maps the selector flags onto a service.Filter. A date or
// --all excludes everything else; month and year combine; no selector
// defaults to the current month.
func buildFilter(cmd *cobra.Command, date, month, year string, all bool) (service.Filter, error) {
	hasDate := cmd.Flags().Changed("date")
	hasMonth := cmd.Flags().Changed("month")
	hasYear := cmd.Flags().Changed("year")

	if hasDate && (hasMonth || hasYear || all) {
		return service.Filter{}, fmt.Errorf("--date cannot be combined with other selectors")
	}
	if all && (hasMonth || hasYear) {
		return service.Filter{}, fmt.Errorf("--all cannot be combined with other selectors")
	}

	switch {
	case hasDate:
		if err := validateDate(date); err != nil {
			return service.Filter{}, err
		}
		return service.Filter{Date: date}, nil
	case all:
		return service.Filter{All: true}, nil
	case hasMonth:
		if err := validateMonth(month); err != nil {
			return service.Filter{}, err
		}
		m, _ := strconv.Atoi(month)
		f := service.Filter{Month: fmt.Sprintf("%02d", m)}
		if hasYear {
			if err := validateYear(year); err != nil {
				return service.Filter{}, err
			}
			f.Year = year
		}
		return f, nil
	case hasYear:
		if err := validateYear(year); err != nil {
			return service.Filter{}, err
		}
		return service.Filter{Year: year}, nil
	default:
		return service.Filter{Month: time.Now().Format("01")}, nil
	}
}
