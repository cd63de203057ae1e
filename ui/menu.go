package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/indent"

	"github.com/reenas3520-oss/yahoooo-study/study"
)

type (
	openChatMsg struct{}
	backMsg     struct{}
)

// menuAction is one entry on the chapter menu.
type menuAction struct {
	label string
	run   func(m menuModel) tea.Cmd
}

var menuActions = []menuAction{
	{label: "Chat with a tutor", run: func(menuModel) tea.Cmd {
		return func() tea.Msg { return openChatMsg{} }
	}},
	{label: "Summary", run: func(m menuModel) tea.Cmd {
		return m.generate("summary", func(ctx context.Context) (tea.Msg, error) {
			text, err := m.common.app.Generator.Summary(ctx, m.topic)
			return contentMsg{title: "Summary", markdown: text}, err
		})
	}},
	{label: "Study notes", run: func(m menuModel) tea.Cmd {
		return m.generate("notes", func(ctx context.Context) (tea.Msg, error) {
			text, err := m.common.app.Generator.Notes(ctx, m.topic)
			return contentMsg{title: "Study Notes", markdown: text}, err
		})
	}},
	{label: "Homework questions", run: func(m menuModel) tea.Cmd {
		return m.generate("homework", func(ctx context.Context) (tea.Msg, error) {
			text, err := m.common.app.Generator.Homework(ctx, m.topic)
			return contentMsg{title: "Homework", markdown: text}, err
		})
	}},
	{label: "Flashcards", run: func(m menuModel) tea.Cmd {
		return m.generate("flashcards", func(ctx context.Context) (tea.Msg, error) {
			cards, err := m.common.app.Generator.Flashcards(ctx, m.topic)
			return flashcardsMsg(cards), err
		})
	}},
	{label: "Quiz", run: func(m menuModel) tea.Cmd {
		return m.generate("quiz", func(ctx context.Context) (tea.Msg, error) {
			questions, err := m.common.app.Generator.Quiz(ctx, m.topic)
			return quizMsg(questions), err
		})
	}},
	{label: "7-day study plan", run: func(m menuModel) tea.Cmd {
		return m.generate("study plan", func(ctx context.Context) (tea.Msg, error) {
			days, err := m.common.app.Generator.StudyPlan(ctx)
			return planMsg(days), err
		})
	}},
	{label: "Concept diagram", run: func(m menuModel) tea.Cmd {
		return m.generate("diagram", func(ctx context.Context) (tea.Msg, error) {
			images, err := m.common.app.Generator.Diagrams(ctx, m.topic, 1)
			if err != nil {
				return nil, err
			}
			paths, err := saveImages(m.topic.Chapter, images)
			if err != nil {
				return nil, err
			}
			return diagramsMsg(paths), nil
		})
	}},
}

// menuModel offers the study actions for the chosen chapter.
type menuModel struct {
	common *commonModel
	topic  study.Topic
	cursor int
}

func newMenuModel(common *commonModel) menuModel {
	return menuModel{common: common}
}

func (m *menuModel) setTopic(topic study.Topic) {
	m.topic = topic
	m.cursor = 0
}

// generate runs one provider call under the busy flag. A second action
// while one is running is rejected and surfaces as a status message.
func (m menuModel) generate(name string, fn func(ctx context.Context) (tea.Msg, error)) tea.Cmd {
	app := m.common.app
	return func() tea.Msg {
		var msg tea.Msg
		err := app.Dispatcher.Perform(name, func() error {
			var err error
			msg, err = fn(context.Background())
			return err
		})
		if err != nil {
			return errMsg{err}
		}
		return msg
	}
}

func (m menuModel) update(msg tea.Msg) (menuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "ctrl+p", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "ctrl+n", "j":
			if m.cursor < len(menuActions)-1 {
				m.cursor++
			}
		case "enter":
			return m, menuActions[m.cursor].run(m)
		case "esc", "q":
			return m, func() tea.Msg { return backMsg{} }
		}
	}
	return m, nil
}

func (m menuModel) view() string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render(m.topic.Chapter) + "\n")
	b.WriteString(subtleStyle.Render(breadcrumb(m.topic, stepChapter)) + "\n\n")

	for i, action := range menuActions {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+action.label) + "\n")
		} else {
			b.WriteString("  " + action.label + "\n")
		}
	}

	b.WriteString("\n" + subtleStyle.Render("enter: go • ctrl+o: settings • esc: change chapter"))
	return indent.String(b.String(), 2)
}
