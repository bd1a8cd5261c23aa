// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Caesar using the Cobra
// library. It defines the root command, which runs the interactive line
// shell, its subcommands, the persistent flags, and the service wiring that
// every command shares.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/caesar/buildvars"
	"github.com/toeirei/caesar/internal/config"
	"github.com/toeirei/caesar/internal/core"
	"github.com/toeirei/caesar/internal/dictionary"
	"github.com/toeirei/caesar/internal/i18n"
	"github.com/toeirei/caesar/internal/logging"
	"github.com/toeirei/caesar/internal/shell"
	"github.com/toeirei/caesar/internal/tui"
	"golang.org/x/term"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// flagKeys maps config keys onto the persistent flags that override them.
var flagKeys = map[string]string{
	"dictionary.source": "dict",
	"language":          "lang",
}

// app carries the services built once per invocation.
type app struct {
	cfg    config.Config
	engine *core.Engine
}

// setup resolves configuration, then initialises logging, i18n and the
// dictionary. A dictionary that cannot be loaded is not an error.
func (a *app) setup(cmd *cobra.Command) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath, flagKeys)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := logging.SetLevel(a.cfg.Log.Level); err != nil {
		logging.Warnf("%v", err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logging.SetDebug(true)
	}

	i18n.Init(a.cfg.Language)

	words := dictionary.LoadOrEmpty(cmd.Context(), dictionary.Options{
		Source: a.cfg.Dictionary.Source,
		Table:  a.cfg.Dictionary.Table,
		Column: a.cfg.Dictionary.Column,
	})
	a.engine = core.NewEngine(words, nil)
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "caesar",
		Short: "Caesar encrypts and decrypts text with a shift cipher.",
		Long: `Caesar encrypts text under a random shift key and decrypts ciphertext
by trying every key and keeping the one whose output contains the most
dictionary words.

Running without a subcommand starts the interactive menu. Text typed at
the menu instead of a choice is encrypted when it already reads like
English and decrypted otherwise.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			var opts []shell.Option
			if isTerminal(in) {
				opts = append(opts, shell.WithTitleStyle(tui.TitleStyle))
			}
			return shell.New(a.engine, in, cmd.OutOrStdout(), opts...).Run(cmd.Context())
		},
	}

	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().String("config", "", "config file (default is caesar.yaml in the user config dir)")
	cmd.PersistentFlags().String("dict", dictionary.DefaultSource, "Word list: a file (.zst/.gz allowed) or a sqlite://, postgres:// or mysql:// URL")
	cmd.PersistentFlags().String("lang", "en", `Message language ("en", "de")`)

	cmd.AddCommand(newTUICmd(a))
	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(newDebugCmd(a))

	return cmd
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion prefers linker-injected values, then module build
// info, then the VCS stamp.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && resolvedCommit != "" && resolvedCommit != "dev" {
		resolvedVersion = resolvedCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
