package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newDumpCmd(app *App) *cobra.Command {
	var destination string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump all tables to plain-text files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Export.Dump(context.Background(), destination); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dumped database to %s\n", destination)
			return nil
		},
	}

	cmd.Flags().StringVarP(&destination, "destination", "d", "", "Directory to write the dump files into")
	_ = cmd.MarkFlagRequired("destination")

	return cmd
}
