// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides a full-screen alternative to the line shell. It runs
// the same encrypt and decrypt flows; typing at the menu behaves like
// freeform input and is routed by mode detection.
package tui // import "github.com/toeirei/caesar/internal/tui"

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/caesar/internal/core"
	"github.com/toeirei/caesar/internal/detect"
	"github.com/toeirei/caesar/internal/i18n"
	"github.com/toeirei/caesar/internal/shell"
)

type viewState int

const (
	stateMenu viewState = iota
	stateInput
	stateResult
)

// actionAuto marks freeform input typed straight into the menu.
const actionAuto shell.Action = 0

type model struct {
	engine *core.Engine
	state  viewState
	cursor int
	action shell.Action
	input  textinput.Model

	lines  []string // rendered result
	output string   // text put on the clipboard
	status string
	err    bool

	copy          func(string) error
	width, height int
}

func newModel(engine *core.Engine) *model {
	ti := textinput.New()
	ti.Placeholder = i18n.T("tui.input_placeholder")
	ti.CharLimit = 0
	ti.Width = 60
	return &model{
		engine: engine,
		input:  ti,
		copy:   clipboard.WriteAll,
	}
}

// Run starts the TUI on the alternate screen and blocks until the user quits.
func Run(engine *core.Engine) error {
	_, err := tea.NewProgram(newModel(engine), tea.WithAltScreen()).Run()
	return err
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Width > 8 {
			m.input.Width = msg.Width - 8
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateInput:
			return m.updateInput(msg)
		case stateResult:
			return m.updateResult(msg)
		}
	}
	return m, nil
}

func (m *model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyUp, tea.KeyShiftTab:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown, tea.KeyTab:
		if m.cursor < len(shell.Actions)-1 {
			m.cursor++
		}
	case tea.KeyEnter:
		action := shell.Actions[m.cursor]
		if action == shell.ActionExit {
			return m, tea.Quit
		}
		return m, m.startInput(action, "")
	case tea.KeyRunes, tea.KeySpace:
		if action, ok := shell.ParseChoice(string(msg.Runes)); ok && msg.Type == tea.KeyRunes {
			if action == shell.ActionExit {
				return m, tea.Quit
			}
			return m, m.startInput(action, "")
		}
		return m, m.startInput(actionAuto, string(msg.Runes))
	}
	return m, nil
}

func (m *model) startInput(action shell.Action, seed string) tea.Cmd {
	m.state = stateInput
	m.action = action
	m.status = ""
	m.input.SetValue(seed)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input.Blur()
		m.state = stateMenu
		return m, nil
	case tea.KeyEnter:
		m.input.Blur()
		m.submit(m.input.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "enter":
		m.state = stateMenu
		m.status = ""
	case "ctrl+y":
		if m.output == "" {
			return m, nil
		}
		if err := m.copy(m.output); err != nil {
			m.status = i18n.T("tui.copy_failed", err)
			m.err = true
		} else {
			m.status = i18n.T("tui.copied")
			m.err = false
		}
	}
	return m, nil
}

// submit runs the chosen flow and stores the rendered result.
func (m *model) submit(text string) {
	action := m.action
	if action == actionAuto {
		if m.engine.Route(text) == detect.ModeEncrypt {
			action = shell.ActionEncrypt
		} else {
			action = shell.ActionDecrypt
		}
	}

	m.state = stateResult
	m.lines = nil
	m.output = ""
	m.status = ""

	switch action {
	case shell.ActionEncrypt:
		res, ok := m.engine.Encrypt(text)
		if !ok {
			m.lines = []string{i18n.T("tui.nothing")}
			return
		}
		m.output = res.Text
		m.lines = []string{res.Text, keyStyle.Render(i18n.T("tui.key_used", res.Key))}
	case shell.ActionDecrypt:
		res, ok := m.engine.Decrypt(text)
		if !ok {
			m.lines = []string{i18n.T("tui.nothing")}
			return
		}
		switch res.Outcome {
		case core.OutcomeDetected:
			m.output = res.Text
			m.lines = []string{res.Text, keyStyle.Render(i18n.T("tui.key_used", res.Key))}
			return
		case core.OutcomeUndetected:
			m.lines = append(m.lines, errorStyle.Render(i18n.T("decrypt.undetected")))
		case core.OutcomeNoDictionary:
			m.lines = append(m.lines, errorStyle.Render(i18n.T("decrypt.no_dictionary")))
		}
		m.lines = append(m.lines, i18n.T("decrypt.all_header"))
		all := make([]string, 0, len(res.Candidates))
		for _, c := range res.Candidates {
			line := i18n.T("decrypt.candidate", c.Key, c.Text)
			m.lines = append(m.lines, line)
			all = append(all, line)
		}
		m.output = strings.Join(all, "\n")
	}
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(i18n.T("tui.title")))
	b.WriteString("\n\n")

	switch m.state {
	case stateMenu:
		b.WriteString(i18n.T("menu.title"))
		b.WriteString("\n\n")
		for i, a := range shell.Actions {
			label := i18n.T("menu.item", i+1, a.Label())
			if i == m.cursor {
				b.WriteString(selectedItemStyle.Render("> " + label))
			} else {
				b.WriteString(itemStyle.Render(label))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(i18n.T("tui.help_menu")))
	case stateInput:
		switch m.action {
		case shell.ActionEncrypt:
			b.WriteString(i18n.T("prompt.encrypt"))
		case shell.ActionDecrypt:
			b.WriteString(i18n.T("prompt.decrypt"))
		}
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(i18n.T("tui.help_input")))
	case stateResult:
		for _, l := range m.lines {
			b.WriteString(l)
			b.WriteString("\n")
		}
		if m.status != "" {
			b.WriteString("\n")
			if m.err {
				b.WriteString(errorStyle.Render(m.status))
			} else {
				b.WriteString(successStyle.Render(m.status))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(i18n.T("tui.help_result")))
	}
	return docStyle.Render(b.String())
}
