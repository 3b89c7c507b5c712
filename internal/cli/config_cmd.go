package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stempel/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration values",
	}

	cmd.AddCommand(
		newConfigSetCmd(app),
		newConfigListCmd(app),
		newConfigRmCmd(app),
	)

	return cmd
}

func newConfigSetCmd(app *App) *cobra.Command {
	var key, value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a configuration value",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Config.Set(context.Background(), key, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Configuration key")
	cmd.Flags().StringVarP(&value, "value", "v", "", "Configuration value")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newConfigListCmd(app *App) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if key != "" {
				value, err := app.Config.Get(ctx, key)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
				return nil
			}

			entries, err := app.Config.List(ctx)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Key, e.Value})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"KEY", "VALUE"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Show only this key")

	return cmd
}

func newConfigRmCmd(app *App) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a configuration value",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Config.Delete(context.Background(), key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", key)
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Configuration key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
