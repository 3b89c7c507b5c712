package formatter

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/alexanderramin/stempel/internal/domain"
	"github.com/alexanderramin/stempel/internal/report"
	"github.com/alexanderramin/stempel/internal/service"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Format selects the rendering of query results.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatMarkdown:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format %q (want table, json or markdown)", s)
	}
}

// FormatDays renders query results in the requested format. Rounding to
// two decimals happens here, at the rendering boundary.
func FormatDays(rows []service.DayWithNotes, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return renderJSON(rows)
	case FormatMarkdown:
		return renderMarkdown(rows), nil
	case FormatTable:
		return renderTable(rows), nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

type noteJSON struct {
	ID   int64  `json:"id"`
	Text string `json:"note"`
}

type dayJSON struct {
	Date                    string      `json:"date"`
	StartTime               *string     `json:"start_time"`
	EndTime                 *string     `json:"end_time"`
	BreakMinutes            *int        `json:"break_minutes"`
	WorkingHours            *float64    `json:"working_hours"`
	OvertimeHours           *float64    `json:"overtime_hours"`
	CumulativeOvertimeHours float64     `json:"cumulative_overtime_hours"`
	Notes                   *[]noteJSON `json:"notes,omitempty"`
}

func renderJSON(rows []service.DayWithNotes) (string, error) {
	out := make([]dayJSON, 0, len(rows))
	for _, row := range rows {
		d := dayJSON{
			Date:                    row.Date,
			StartTime:               row.StartTime,
			EndTime:                 row.EndTime,
			BreakMinutes:            row.BreakMinutes,
			WorkingHours:            round2Ptr(row.WorkingHours),
			OvertimeHours:           round2Ptr(row.OvertimeHours),
			CumulativeOvertimeHours: report.Round2(row.CumulativeOvertimeHours),
		}
		if row.Notes != nil {
			notes := make([]noteJSON, 0, len(row.Notes))
			for _, n := range row.Notes {
				notes = append(notes, noteJSON{ID: n.ID, Text: n.Text})
			}
			d.Notes = &notes
		}
		out = append(out, d)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling day records: %w", err)
	}
	return string(data) + "\n", nil
}

func renderTable(rows []service.DayWithNotes) string {
	withNotes := anyNotesRequested(rows)

	headers := []string{"DATE", "START", "END", "BREAK", "WORKED", "OVERTIME", "BALANCE"}
	if withNotes {
		headers = append(headers, "NOTE ID", "NOTE")
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		day := []string{
			row.Date,
			optionalCell(row.StartTime),
			optionalCell(row.EndTime),
			optionalIntCell(row.BreakMinutes),
			hoursCell(row.WorkingHours),
			signedHoursCell(row.OvertimeHours),
			Balance(row.CumulativeOvertimeHours, fmt.Sprintf("%+.2f", report.Round2(row.CumulativeOvertimeHours))),
		}
		if !withNotes {
			cells = append(cells, day)
			continue
		}
		if len(row.Notes) == 0 {
			cells = append(cells, append(day, Dim("--"), ""))
			continue
		}
		// One row per note, repeating the day columns like the classic
		// joined view.
		for _, n := range row.Notes {
			cells = append(cells, append(day, strconv.FormatInt(n.ID, 10), n.Text))
		}
	}

	return RenderTable(headers, cells)
}

func renderMarkdown(rows []service.DayWithNotes) string {
	withNotes := anyNotesRequested(rows)

	t := table.NewWriter()
	t.Style().Format.Header = text.FormatDefault
	header := table.Row{"date", "start", "end", "break", "worked", "overtime", "balance"}
	if withNotes {
		header = append(header, "note id", "note")
	}
	t.AppendHeader(header)

	for _, row := range rows {
		day := table.Row{
			row.Date,
			domain.StrFromPtrWithDefault("", row.StartTime),
			domain.StrFromPtrWithDefault("", row.EndTime),
			optionalIntPlain(row.BreakMinutes),
			hoursPlain(row.WorkingHours),
			signedHoursPlain(row.OvertimeHours),
			fmt.Sprintf("%+.2f", report.Round2(row.CumulativeOvertimeHours)),
		}
		if !withNotes {
			t.AppendRow(day)
			continue
		}
		if len(row.Notes) == 0 {
			t.AppendRow(append(day, "", ""))
			continue
		}
		for _, n := range row.Notes {
			t.AppendRow(append(day, n.ID, n.Text))
		}
	}

	return t.RenderMarkdown() + "\n"
}

func anyNotesRequested(rows []service.DayWithNotes) bool {
	for _, row := range rows {
		if row.Notes != nil {
			return true
		}
	}
	return false
}

func round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := report.Round2(*v)
	return &r
}

func optionalCell(s *string) string {
	if s == nil {
		return Dim("--")
	}
	return *s
}

func optionalIntCell(v *int) string {
	if v == nil {
		return Dim("--")
	}
	return strconv.Itoa(*v)
}

func optionalIntPlain(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func hoursCell(v *float64) string {
	if v == nil {
		return Dim("--")
	}
	return fmt.Sprintf("%.2f", report.Round2(*v))
}

func signedHoursCell(v *float64) string {
	if v == nil {
		return Dim("--")
	}
	return fmt.Sprintf("%+.2f", report.Round2(*v))
}

func hoursPlain(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", report.Round2(*v))
}

func signedHoursPlain(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%+.2f", report.Round2(*v))
}
