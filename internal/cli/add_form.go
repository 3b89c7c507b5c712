package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/stempel/internal/cli/formatter"
	"github.com/alexanderramin/stempel/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// stempelHuhTheme adapts the huh base theme to the ledger's palette.
func stempelHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runAddForm collects the day fields interactively. Blank inputs are
// treated as "leave unset".
func runAddForm(date string) (domain.DayUpdate, string, error) {
	var start, end, breakStr, note string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Start time for %s (HH:MM, blank to skip)", date)).
				Placeholder("08:00").
				Value(&start).
				Validate(validateOptionalClock),
			huh.NewInput().
				Title("End time (HH:MM, blank to skip)").
				Placeholder("16:30").
				Value(&end).
				Validate(validateOptionalClock),
			huh.NewInput().
				Title("Break minutes (blank to skip)").
				Placeholder("30").
				Value(&breakStr).
				Validate(validateOptionalInt),
			huh.NewInput().
				Title("Note (blank for none)").
				Value(&note),
		),
	).WithTheme(stempelHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return domain.DayUpdate{}, "", fmt.Errorf("running add form: %w", err)
	}

	u := domain.DayUpdate{}
	if start != "" {
		u.StartTime = domain.StrPtr(start)
	}
	if end != "" {
		u.EndTime = domain.StrPtr(end)
	}
	if breakStr != "" {
		// Validated above.
		b, _ := strconv.Atoi(breakStr)
		u.BreakMinutes = domain.IntPtr(b)
	}
	return u, note, nil
}
