// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"
	"github.com/toeirei/caesar/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the full-screen interface",
		Long:  `Runs the encrypt and decrypt flows in a full-screen terminal interface. Press ctrl+y on a result to copy it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(a.engine)
		},
	}
}
