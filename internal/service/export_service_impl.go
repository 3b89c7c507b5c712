package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/stempel/internal/domain"
	"github.com/alexanderramin/stempel/internal/repository"
)

type exportService struct {
	days   repository.DayRepo
	notes  repository.NoteRepo
	config repository.ConfigRepo
}

func NewExportService(days repository.DayRepo, notes repository.NoteRepo, config repository.ConfigRepo) ExportService {
	return &exportService{days: days, notes: notes, config: config}
}

// Dump writes work_hours.dump, notes.dump and config.dump into destDir.
// Each file holds a header line followed by one comma-separated row per
// entry; NULL columns render as empty.
func (s *exportService) Dump(ctx context.Context, destDir string) error {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("creating dump directory: %w", err)
	}

	days, err := s.days.ListAll(ctx)
	if err != nil {
		return err
	}
	dayRows := make([][]string, 0, len(days))
	for _, d := range days {
		dayRows = append(dayRows, []string{
			d.Date,
			domain.StrFromPtrWithDefault("", d.StartTime),
			domain.StrFromPtrWithDefault("", d.EndTime),
			optionalIntString(d.BreakMinutes),
		})
	}
	if err := writeDump(destDir, "work_hours",
		[]string{"date", "start_time", "end_time", "break_minutes"}, dayRows); err != nil {
		return err
	}

	notes, err := s.notes.ListAll(ctx)
	if err != nil {
		return err
	}
	noteRows := make([][]string, 0, len(notes))
	for _, n := range notes {
		noteRows = append(noteRows, []string{fmt.Sprintf("%d", n.ID), n.Date, n.Text})
	}
	if err := writeDump(destDir, "notes", []string{"id", "date", "note"}, noteRows); err != nil {
		return err
	}

	entries, err := s.config.List(ctx)
	if err != nil {
		return err
	}
	configRows := make([][]string, 0, len(entries))
	for _, e := range entries {
		configRows = append(configRows, []string{e.Key, e.Value})
	}
	return writeDump(destDir, "config", []string{"key", "value"}, configRows)
}

func writeDump(destDir, table string, header []string, rows [][]string) error {
	var b strings.Builder
	b.WriteString(strings.Join(header, ", "))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row, ", "))
		b.WriteString("\n")
	}

	path := filepath.Join(destDir, table+".dump")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing %s dump: %w", table, err)
	}
	return nil
}

func optionalIntString(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}
