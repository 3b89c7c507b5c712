package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/stempel/internal/cli"
	"github.com/alexanderramin/stempel/internal/db"
	"github.com/alexanderramin/stempel/internal/repository"
	"github.com/alexanderramin/stempel/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env in the working directory; absence is fine.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.stempel/stempel.db
	dbPath := os.Getenv("STEMPEL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".stempel", "stempel.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	dayRepo := repository.NewSQLiteDayRepo(database)
	noteRepo := repository.NewSQLiteNoteRepo(database)
	configRepo := repository.NewSQLiteConfigRepo(database)

	app := &cli.App{
		Ledger: service.NewLedgerService(dayRepo, noteRepo, configRepo),
		Config: service.NewConfigService(configRepo),
		Export: service.NewExportService(dayRepo, noteRepo, configRepo),
	}

	// Detect interactive terminal for the add form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
