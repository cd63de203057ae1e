package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/reenas3520-oss/yahoooo-study/chat"
)

// chatModel is the tutoring conversation screen. The transcript itself
// lives in the accumulator; this model only renders snapshots pushed
// through the event channel.
type chatModel struct {
	common     *commonModel
	viewport   viewport.Model
	input      textinput.Model
	transcript []chat.Message
	sending    bool
}

func newChatModel(common *commonModel) chatModel {
	input := textinput.New()
	input.Placeholder = "ask your tutor…"
	input.CharLimit = 2000
	input.Width = 60

	return chatModel{
		common:   common,
		viewport: viewport.New(80, 20),
		input:    input,
	}
}

func (m *chatModel) resize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height - 4
	m.input.Width = width - 4
	m.viewport.SetContent(m.renderTranscript())
}

func (m *chatModel) setTranscript(messages []chat.Message) {
	m.transcript = messages
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(m.renderTranscript())
	if atBottom {
		m.viewport.GotoBottom()
	}
	if len(messages) > 0 {
		last := messages[len(messages)-1]
		if last.Role == chat.RoleModel && !last.IsStreaming {
			m.sending = false
		}
	}
}

func (m chatModel) update(msg tea.Msg) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backMsg{} }
		case "ctrl+s":
			return m, m.speakLastReply()
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.sending {
				return m, nil
			}
			m.input.SetValue("")
			m.sending = true
			return m, m.send(text)
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// send delivers the message and blocks until the reply is sealed. The
// transcript updates arrive separately through the event channel, so the
// view streams while this command runs.
func (m chatModel) send(text string) tea.Cmd {
	app := m.common.app
	return func() tea.Msg {
		if err := app.Chat.SendMessage(context.Background(), text); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

// speakLastReply toggles playback of the tutor's most recent complete
// reply.
func (m chatModel) speakLastReply() tea.Cmd {
	var text string
	for i := len(m.transcript) - 1; i >= 0; i-- {
		msg := m.transcript[i]
		if msg.Role == chat.RoleModel && !msg.IsStreaming {
			text = msg.Text
			break
		}
	}
	if text == "" {
		return nil
	}

	app := m.common.app
	return func() tea.Msg {
		if err := app.Speech.Speak(context.Background(), text); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m chatModel) renderTranscript() string {
	width := m.viewport.Width - 4
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for _, msg := range m.transcript {
		var label string
		switch msg.Role {
		case chat.RoleUser:
			label = studentStyle.Render("You")
		default:
			label = tutorStyle.Render("Tutor")
		}

		text := msg.Text
		if msg.IsStreaming {
			text += " ▌"
		}
		b.WriteString(label + "\n")
		b.WriteString(wordwrap.String(text, width) + "\n\n")
	}
	return b.String()
}

func (m chatModel) view() string {
	header := titleStyle.Render("Tutor")
	help := subtleStyle.Render("enter: send • ctrl+s: read last reply aloud • esc: back")
	return header + "\n" + m.viewport.View() + "\n" + m.input.View() + "\n" + help
}
