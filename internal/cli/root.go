package cli

import (
	"github.com/alexanderramin/stempel/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Ledger service.LedgerService
	Config service.ConfigService
	Export service.ExportService

	// IsInteractive reports whether stdin is attached to a terminal.
	// Commands only launch forms when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "stempel" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "stempel",
		Short: "Personal work-time and overtime ledger",
	}

	root.AddCommand(
		newAddCmd(app),
		newRmCmd(app),
		newShowCmd(app),
		newCheckCmd(app),
		newDumpCmd(app),
		newConfigCmd(app),
	)

	return root
}
