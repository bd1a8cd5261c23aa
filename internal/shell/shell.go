// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package shell implements the line-based interactive menu: numbered
// choices, prompts for text, and freeform input routed by mode detection.
package shell // import "github.com/toeirei/caesar/internal/shell"

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/caesar/internal/core"
	"github.com/toeirei/caesar/internal/detect"
	"github.com/toeirei/caesar/internal/i18n"
	"github.com/toeirei/caesar/internal/logging"
)

// Action is one entry of the main menu.
type Action int

const (
	ActionEncrypt Action = iota + 1
	ActionDecrypt
	ActionExit
)

// Actions lists the menu in display order; an action's number is its index
// plus one.
var Actions = []Action{ActionEncrypt, ActionDecrypt, ActionExit}

// Label returns the translated menu label.
func (a Action) Label() string {
	switch a {
	case ActionEncrypt:
		return i18n.T("menu.encrypt")
	case ActionDecrypt:
		return i18n.T("menu.decrypt")
	case ActionExit:
		return i18n.T("menu.exit")
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseChoice maps a menu line onto an action. ok is false for anything that
// is not an integer between 1 and len(Actions).
func ParseChoice(line string) (Action, bool) {
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(Actions) {
		return 0, false
	}
	return Actions[n-1], true
}

// errExit unwinds the loop when the user picks Exit.
var errExit = errors.New("exit requested")

// Shell drives the menu over a reader and a writer.
type Shell struct {
	engine *core.Engine
	in     *bufio.Reader
	out    io.Writer
	title  *lipgloss.Style
}

// Option configures a Shell.
type Option func(*Shell)

// WithTitleStyle renders the menu title with style. Meant for terminals;
// the default is unstyled text.
func WithTitleStyle(style lipgloss.Style) Option {
	return func(s *Shell) { s.title = &style }
}

// New returns a Shell reading lines from in and writing to out.
func New(engine *core.Engine, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		engine: engine,
		in:     bufio.NewReader(in),
		out:    out,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the user exits or input ends. Both are normal
// terminations and return nil.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.step()
		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}
	}
}

// step prints the menu once and handles the chosen action.
func (s *Shell) step() error {
	s.println()
	title := i18n.T("menu.title")
	if s.title != nil {
		title = s.title.Render(title)
	}
	s.println(title)
	for i, a := range Actions {
		s.println(i18n.T("menu.item", i+1, a.Label()))
	}
	s.println()

	line, err := s.readLine()
	if err != nil {
		return err
	}
	if action, ok := ParseChoice(line); ok {
		return s.dispatch(action, nil)
	}
	return s.autoDetect(line)
}

func (s *Shell) autoDetect(text string) error {
	switch s.engine.Route(text) {
	case detect.ModeEncrypt:
		return s.dispatch(ActionEncrypt, &text)
	default:
		return s.dispatch(ActionDecrypt, &text)
	}
}

// dispatch runs action. A nil text makes the action prompt for one.
func (s *Shell) dispatch(action Action, text *string) error {
	switch action {
	case ActionEncrypt:
		return s.encrypt(text)
	case ActionDecrypt:
		return s.decrypt(text)
	case ActionExit:
		return errExit
	}
	logging.Warnf("unknown menu action %d", int(action))
	return nil
}

func (s *Shell) prompt(text *string, messageID string) (string, error) {
	if text != nil {
		return *text, nil
	}
	s.println()
	fmt.Fprint(s.out, i18n.T(messageID))
	return s.readLine()
}

func (s *Shell) encrypt(text *string) error {
	input, err := s.prompt(text, "prompt.encrypt")
	if err != nil {
		return err
	}
	if res, ok := s.engine.Encrypt(input); ok {
		s.println(res.Text)
	}
	return nil
}

func (s *Shell) decrypt(text *string) error {
	input, err := s.prompt(text, "prompt.decrypt")
	if err != nil {
		return err
	}
	res, ok := s.engine.Decrypt(input)
	if !ok {
		return nil
	}
	switch res.Outcome {
	case core.OutcomeDetected:
		s.println(res.Text)
		return nil
	case core.OutcomeUndetected:
		s.println(i18n.T("decrypt.undetected"))
	case core.OutcomeNoDictionary:
		s.println(i18n.T("decrypt.no_dictionary"))
	}
	s.listCandidates(res.Candidates)
	return nil
}

func (s *Shell) listCandidates(candidates []detect.Candidate) {
	s.println(i18n.T("decrypt.all_header"))
	for _, c := range candidates {
		s.println(i18n.T("decrypt.candidate", c.Key, c.Text))
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned normally; io.EOF only follows it.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}
