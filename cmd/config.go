package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfekete/roomctl/internal/config"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize roomctl configuration",
	}

	cmd.AddCommand(newConfigShowCmd(app), newConfigInitCmd(app))

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config file: %s\n", app.cfg.Path)
			fmt.Fprintf(out, "api base url: %s\n", app.cfg.BaseURL)
			fmt.Fprintf(out, "token path: %s\n", app.cfg.TokenPath)
			fmt.Fprintf(out, "pass entry: %s\n", app.cfg.PassEntry)
			return nil
		},
	}
}

func newConfigInitCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the current configuration to disk for editing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.WriteDefault(app.cfg); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", app.cfg.Path)
			return err
		},
	}
}
