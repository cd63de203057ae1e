package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/indent"
)

// authModel is the sign-in screen. Any name or email works; returning
// students can pick themselves from the known-users list.
type authModel struct {
	common *commonModel
	input  textinput.Model
	known  []string
	cursor int // 0 = the input field, 1..n = known users
}

func newAuthModel(common *commonModel) authModel {
	input := textinput.New()
	input.Placeholder = "you@example.com"
	input.CharLimit = 254
	input.Width = 40

	return authModel{
		common: common,
		input:  input,
		known:  common.app.Store.KnownUsers(),
	}
}

func (m authModel) update(msg tea.Msg) (authModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, m.syncFocus()
		case "down", "ctrl+n":
			if m.cursor < len(m.known) {
				m.cursor++
			}
			return m, m.syncFocus()
		case "enter":
			user := strings.TrimSpace(m.input.Value())
			if m.cursor > 0 {
				user = m.known[m.cursor-1]
			}
			if user == "" {
				return m, nil
			}
			return m, func() tea.Msg {
				if err := m.common.app.Store.SignIn(user); err != nil {
					return errMsg{err}
				}
				return signedInMsg(user)
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *authModel) syncFocus() tea.Cmd {
	if m.cursor == 0 {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m authModel) view() string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("Yahoooo Study") + "\n\n")
	b.WriteString("Sign in to get started.\n\n")
	b.WriteString(m.input.View() + "\n")

	if len(m.known) > 0 {
		b.WriteString("\n" + subtleStyle.Render("or pick a saved profile:") + "\n")
		for i, user := range m.known {
			line := "  " + user
			if m.cursor == i+1 {
				line = selectedStyle.Render("> " + user)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n" + subtleStyle.Render("enter: sign in • ctrl+c: quit"))
	return indent.String(b.String(), 2)
}
