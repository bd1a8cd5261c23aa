// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/caesar/internal/logging"
)

func newDebugCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Dump resolved settings, flags and environment",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- CAESAR DEBUG ---")

			b, err := json.MarshalIndent(a.cfg, "", "  ")
			if err != nil {
				logging.Errorf("could not marshal settings: %v", err)
			} else {
				fmt.Fprintln(out, "-- settings --")
				fmt.Fprintln(out, string(b))
			}

			fmt.Fprintf(out, "dictionary words loaded: %d\n", a.engine.Words().Len())

			fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				fmt.Fprintf(out, "%s = %s\n", f.Name, f.Value.String())
			})

			fmt.Fprintln(out, "-- environment (CAESAR_*) --")
			for _, e := range os.Environ() {
				if strings.HasPrefix(e, "CAESAR_") {
					fmt.Fprintln(out, e)
				}
			}
			fmt.Fprintln(out, "--- END DEBUG ---")
		},
	}
}
