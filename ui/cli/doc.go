// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Caesar using Cobra.
// It wires configuration, logging, localisation and the dictionary, then
// hands control to the line shell or the TUI. CLI code should remain thin
// and delegate behaviour to the internal packages.
package cli
