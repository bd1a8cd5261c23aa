// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/caesar/internal/config"
	"github.com/toeirei/caesar/internal/i18n"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var system bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to a config file",
		Long: `Writes the resolved settings (defaults merged with any existing file,
environment and flags) to caesar.yaml in the user config directory, or
the system directory with --system.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			path, err := config.WriteConfigFile(&cfg, system)
			if err != nil {
				return fmt.Errorf("could not write config file: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide config instead of the user config")

	cmd.AddCommand(initCmd)
	return cmd
}
