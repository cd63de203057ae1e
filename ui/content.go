package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"

	"github.com/reenas3520-oss/yahoooo-study/study"
)

type contentRenderedMsg string

// contentModel shows one generated markdown artifact in a scrollable
// viewport.
type contentModel struct {
	common   *commonModel
	viewport viewport.Model
	title    string
	markdown string // raw source, used for speaking and copying
}

func newContentModel(common *commonModel) contentModel {
	return contentModel{common: common, viewport: viewport.New(80, 24)}
}

func (m *contentModel) resize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height - 2
}

// load stores the raw markdown and kicks off the glamour render.
func (m *contentModel) load(title, markdown string) tea.Cmd {
	m.title = title
	m.markdown = markdown
	m.viewport.GotoTop()
	return renderWithGlamour(*m, markdown)
}

func renderWithGlamour(m contentModel, md string) tea.Cmd {
	return func() tea.Msg {
		s, err := glamourRender(m, md)
		if err != nil {
			log.Error("error rendering with Glamour", "error", err)
			return errMsg{err}
		}
		return contentRenderedMsg(s)
	}
}

func glamourRender(m contentModel, markdown string) (string, error) {
	if !m.common.cfg.GlamourEnabled {
		return markdown, nil
	}

	width := int(m.common.cfg.GlamourMaxWidth) //nolint:gosec
	if m.viewport.Width > 0 && m.viewport.Width < width {
		width = m.viewport.Width
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(glamourStyleName(m.common.cfg.GlamourStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}

func (m contentModel) update(msg tea.Msg) (contentModel, tea.Cmd) {
	switch msg := msg.(type) {
	case contentRenderedMsg:
		m.viewport.SetContent(string(msg))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return backMsg{} }
		case "s":
			return m, m.speak()
		case "c":
			if err := clipboard.WriteAll(m.markdown); err != nil {
				return m, func() tea.Msg { return errMsg{err} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// speak toggles playback of the whole document. Speak runs in its own
// command because a cache miss blocks on the provider.
func (m contentModel) speak() tea.Cmd {
	app := m.common.app
	text := m.markdown
	return func() tea.Msg {
		if err := app.Speech.Speak(context.Background(), text); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m contentModel) view() string {
	header := titleStyle.Render(m.title)
	help := subtleStyle.Render("s: read aloud • c: copy • esc: back")
	return header + "\n" + m.viewport.View() + "\n" + help
}

// renderPlan lays a study plan out as markdown for the content view.
func renderPlan(days []study.PlanDay) string {
	var b strings.Builder
	b.WriteString("# 7-Day Study Plan\n")
	for _, day := range days {
		fmt.Fprintf(&b, "\n## Day %d: %s\n\n", day.Day, day.Topic)
		for _, task := range day.Tasks {
			fmt.Fprintf(&b, "- %s\n", task)
		}
		if len(day.Review) > 0 {
			b.WriteString("\n**Review:**\n\n")
			for _, item := range day.Review {
				fmt.Fprintf(&b, "- %s\n", item)
			}
		}
	}
	return b.String()
}
