package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/reenas3520-oss/yahoooo-study/study"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 2).
	Width(60)

// flashcardsModel flips through a generated deck.
type flashcardsModel struct {
	common  *commonModel
	cards   []study.Flashcard
	index   int
	flipped bool
}

func newFlashcardsModel(common *commonModel, cards []study.Flashcard) flashcardsModel {
	return flashcardsModel{common: common, cards: cards}
}

func (m flashcardsModel) update(msg tea.Msg) (flashcardsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return backMsg{} }
		case " ", "enter":
			m.flipped = !m.flipped
		case "right", "n":
			if m.index < len(m.cards)-1 {
				m.index++
				m.flipped = false
			}
		case "left", "p":
			if m.index > 0 {
				m.index--
				m.flipped = false
			}
		case "s":
			return m, m.speak()
		}
	}
	return m, nil
}

// speak toggles playback of the visible side of the card.
func (m flashcardsModel) speak() tea.Cmd {
	card := m.cards[m.index]
	text := card.Question
	if m.flipped {
		text = card.Answer
	}
	app := m.common.app
	return func() tea.Msg {
		if err := app.Speech.Speak(context.Background(), text); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m flashcardsModel) view() string {
	if len(m.cards) == 0 {
		return indent.String("\nno flashcards\n", 2)
	}
	card := m.cards[m.index]

	side := "Q"
	text := card.Question
	if m.flipped {
		side = "A"
		text = card.Answer
	}

	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render(fmt.Sprintf("Flashcard %d of %d", m.index+1, len(m.cards))) + "\n\n")
	b.WriteString(cardStyle.Render(keywordStyle.Render(side+": ")+wordwrap.String(text, 54)) + "\n")
	b.WriteString("\n" + subtleStyle.Render("space: flip • ←/→: prev/next • s: read aloud • esc: back"))
	return indent.String(b.String(), 2)
}
