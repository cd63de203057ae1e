package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/reenas3520-oss/yahoooo-study/study"
)

// quizModel runs through a generated multiple-choice quiz, scoring as it
// goes.
type quizModel struct {
	common    *commonModel
	questions []study.QuizQuestion
	index     int
	cursor    int
	answered  bool
	picked    int
	score     int
	finished  bool
}

func newQuizModel(common *commonModel, questions []study.QuizQuestion) quizModel {
	return quizModel{common: common, questions: questions}
}

func (m quizModel) update(msg tea.Msg) (quizModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return backMsg{} }
		case "up", "k":
			if !m.answered && m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if !m.answered && m.cursor < len(m.current().Options)-1 {
				m.cursor++
			}
		case "enter":
			if m.finished {
				return m, func() tea.Msg { return backMsg{} }
			}
			if !m.answered {
				m.answered = true
				m.picked = m.cursor
				if m.current().Options[m.picked] == m.current().CorrectAnswer {
					m.score++
				}
				return m, nil
			}
			if m.index == len(m.questions)-1 {
				m.finished = true
				return m, nil
			}
			m.index++
			m.cursor = 0
			m.answered = false
		}
	}
	return m, nil
}

func (m quizModel) current() study.QuizQuestion {
	return m.questions[m.index]
}

func (m quizModel) view() string {
	if len(m.questions) == 0 {
		return indent.String("\nno questions\n", 2)
	}

	var b strings.Builder
	if m.finished {
		b.WriteString("\n" + titleStyle.Render("Quiz complete!") + "\n\n")
		b.WriteString(fmt.Sprintf("You scored %s out of %d.\n",
			keywordStyle.Render(fmt.Sprintf("%d", m.score)), len(m.questions)))
		b.WriteString("\n" + subtleStyle.Render("enter: back to menu"))
		return indent.String(b.String(), 2)
	}

	q := m.current()
	b.WriteString("\n" + titleStyle.Render(fmt.Sprintf("Question %d of %d", m.index+1, len(m.questions))) + "\n\n")
	b.WriteString(wordwrap.String(q.Question, 70) + "\n\n")

	for i, opt := range q.Options {
		prefix := "  "
		label := opt
		switch {
		case m.answered && opt == q.CorrectAnswer:
			label = keywordStyle.Render(opt + " ✓")
		case m.answered && i == m.picked:
			label = errorStyle.Render(opt + " ✗")
		case !m.answered && i == m.cursor:
			prefix = ""
			label = selectedStyle.Render("> " + opt)
		}
		b.WriteString(prefix + label + "\n")
	}

	help := "enter: answer • esc: quit quiz"
	if m.answered {
		help = "enter: next question • esc: quit quiz"
	}
	b.WriteString("\n" + subtleStyle.Render(help))
	return indent.String(b.String(), 2)
}
