package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/indent"
	"github.com/sahilm/fuzzy"

	"github.com/reenas3520-oss/yahoooo-study/study"
)

type topicChosenMsg study.Topic

// pickerStep is one level of the class/subject/book/chapter drill-down.
type pickerStep int

const (
	stepClass pickerStep = iota
	stepSubject
	stepBook
	stepChapter
)

func (s pickerStep) title() string {
	return map[pickerStep]string{
		stepClass:   "Which class are you in?",
		stepSubject: "Pick a subject",
		stepBook:    "Pick a textbook",
		stepChapter: "Pick a chapter",
	}[s]
}

// pickerModel walks the curriculum catalog. Chapter lists are long, so
// that step gets a fuzzy filter.
type pickerModel struct {
	common *commonModel
	step   pickerStep
	topic  study.Topic

	options []string
	cursor  int
	filter  textinput.Model
}

func newPickerModel(common *commonModel) pickerModel {
	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.Prompt = "/"
	filter.Width = 40

	m := pickerModel{common: common, filter: filter}
	m.options = study.Classes()
	return m
}

// visible returns the options under the current filter, fuzzy-matched for
// the chapter step.
func (m pickerModel) visible() []string {
	query := strings.TrimSpace(m.filter.Value())
	if m.step != stepChapter || query == "" {
		return m.options
	}
	matches := fuzzy.Find(query, m.options)
	out := make([]string, len(matches))
	for i, match := range matches {
		out[i] = match.Str
	}
	return out
}

func (m pickerModel) update(msg tea.Msg) (pickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		filtering := m.step == stepChapter && m.filter.Focused()

		switch msg.String() {
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
			return m, nil
		case "/":
			if m.step == stepChapter && !filtering {
				return m, m.filter.Focus()
			}
		case "esc":
			if filtering {
				m.filter.Blur()
				m.filter.SetValue("")
				m.cursor = 0
				return m, nil
			}
			m.pop()
			return m, nil
		case "q":
			if !filtering {
				m.pop()
				return m, nil
			}
		case "enter":
			visible := m.visible()
			if len(visible) == 0 {
				return m, nil
			}
			return m.choose(visible[m.cursor])
		}

		if filtering {
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			if m.cursor >= len(m.visible()) {
				m.cursor = 0
			}
			return m, cmd
		}
	}
	return m, nil
}

// choose records the selection and advances to the next step, emitting
// the finished topic from the last one.
func (m pickerModel) choose(value string) (pickerModel, tea.Cmd) {
	switch m.step {
	case stepClass:
		m.topic.Class = value
		m.options = study.Subjects(value)
	case stepSubject:
		m.topic.Subject = value
		m.options = study.Books(m.topic.Class, value)
	case stepBook:
		m.topic.Book = value
		m.options = study.Chapters(m.topic.Class, m.topic.Subject, value)
	case stepChapter:
		m.topic.Chapter = value
		topic := m.topic
		m.reset()
		return m, func() tea.Msg { return topicChosenMsg(topic) }
	}
	m.step++
	m.cursor = 0
	m.filter.Blur()
	m.filter.SetValue("")
	return m, nil
}

// pop steps back one level, or back to the class list from the start.
func (m *pickerModel) pop() {
	switch m.step {
	case stepClass:
		return
	case stepSubject:
		m.options = study.Classes()
	case stepBook:
		m.options = study.Subjects(m.topic.Class)
	case stepChapter:
		m.options = study.Books(m.topic.Class, m.topic.Subject)
	}
	m.step--
	m.cursor = 0
	m.filter.Blur()
	m.filter.SetValue("")
}

func (m *pickerModel) reset() {
	m.step = stepClass
	m.options = study.Classes()
	m.cursor = 0
	m.filter.Blur()
	m.filter.SetValue("")
}

func (m pickerModel) view() string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render(m.step.title()) + "\n")
	if m.topic.Class != "" {
		b.WriteString(subtleStyle.Render(breadcrumb(m.topic, m.step)) + "\n")
	}
	b.WriteString("\n")

	if m.step == stepChapter {
		b.WriteString(m.filter.View() + "\n\n")
	}

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(subtleStyle.Render("nothing matches") + "\n")
	}
	maxRows := m.common.height - 10
	if maxRows < 5 {
		maxRows = 5
	}
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	for i := start; i < len(visible) && i < start+maxRows; i++ {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+visible[i]) + "\n")
		} else {
			b.WriteString("  " + visible[i] + "\n")
		}
	}

	help := "enter: select • ctrl+o: settings • esc: back"
	if m.step == stepChapter {
		help = "enter: select • /: filter • ctrl+o: settings • esc: back"
	}
	b.WriteString("\n" + subtleStyle.Render(help))
	return indent.String(b.String(), 2)
}

func breadcrumb(topic study.Topic, step pickerStep) string {
	parts := []string{fmt.Sprintf("Class %s", topic.Class)}
	if step > stepSubject && topic.Subject != "" {
		parts = append(parts, topic.Subject)
	}
	if step > stepBook && topic.Book != "" {
		parts = append(parts, topic.Book)
	}
	return strings.Join(parts, " › ")
}
