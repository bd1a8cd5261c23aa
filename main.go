// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Caesar.
//
// Usage:
//
//	go run . [flags]
//	./caesar [flags]
//
// This launches the interactive menu. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/caesar/internal/logging"
	"github.com/toeirei/caesar/ui/cli"
)

// main is the entrypoint for the Caesar CLI.
func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("caesar: %v", err)
		os.Exit(1)
	}
}
