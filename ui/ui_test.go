package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reenas3520-oss/yahoooo-study/study"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// drive feeds keys into the picker, collecting the topic once emitted.
func drive(t *testing.T, m pickerModel, keys ...string) (pickerModel, *study.Topic) {
	t.Helper()
	var topic *study.Topic
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.update(keyMsg(k))
		if cmd == nil {
			continue
		}
		if msg, ok := cmd().(topicChosenMsg); ok {
			chosen := study.Topic(msg)
			topic = &chosen
		}
	}
	return m, topic
}

// TestPickerDrillDown tests selecting the first option at every level.
func TestPickerDrillDown(t *testing.T) {
	common := &commonModel{cfg: Config{}, app: &App{}, height: 40}
	m := newPickerModel(common)

	m, topic := drive(t, m, "enter", "enter", "enter", "down", "enter")
	if topic == nil {
		t.Fatal("picker never emitted a topic")
	}
	if err := topic.Validate(); err != nil {
		t.Errorf("picked topic %+v fails validation: %v", *topic, err)
	}
	if m.step != stepClass {
		t.Errorf("picker step = %v after choice, want reset to class", m.step)
	}
}

// TestPickerBackNavigation tests that esc walks back up the hierarchy.
func TestPickerBackNavigation(t *testing.T) {
	common := &commonModel{cfg: Config{}, app: &App{}, height: 40}
	m := newPickerModel(common)

	m, _ = drive(t, m, "enter", "enter")
	if m.step != stepBook {
		t.Fatalf("step = %v, want stepBook", m.step)
	}

	m, _ = drive(t, m, "esc")
	if m.step != stepSubject {
		t.Errorf("step = %v after esc, want stepSubject", m.step)
	}
	m, _ = drive(t, m, "esc", "esc", "esc")
	if m.step != stepClass {
		t.Errorf("step = %v, want stepClass (esc at top is a no-op)", m.step)
	}
}

// TestPickerChapterFilter tests the fuzzy chapter filter.
func TestPickerChapterFilter(t *testing.T) {
	common := &commonModel{cfg: Config{}, app: &App{}, height: 40}
	m := newPickerModel(common)

	// Class 9 -> Science -> NCERT, then filter for "grav".
	m, _ = drive(t, m, "enter", "down", "down", "down", "enter", "enter")
	if m.step != stepChapter {
		t.Fatalf("step = %v, want stepChapter", m.step)
	}

	m, _ = drive(t, m, "/", "g", "r", "a", "v")
	visible := m.visible()
	if len(visible) == 0 {
		t.Fatal("filter matched nothing")
	}
	if visible[0] != "Gravitation" {
		t.Errorf("top match = %q, want Gravitation", visible[0])
	}

	_, topic := drive(t, m, "enter")
	if topic == nil || topic.Chapter != "Gravitation" {
		t.Errorf("chose %+v, want Gravitation", topic)
	}
}

// TestQuizScoring tests answer checking and the final score.
func TestQuizScoring(t *testing.T) {
	questions := []study.QuizQuestion{
		{
			Question:      "2 + 2?",
			Options:       []string{"3", "4", "5", "6"},
			CorrectAnswer: "4",
		},
		{
			Question:      "Capital of India?",
			Options:       []string{"Mumbai", "Kolkata", "New Delhi", "Chennai"},
			CorrectAnswer: "New Delhi",
		},
	}
	common := &commonModel{cfg: Config{}, app: &App{}}
	m := newQuizModel(common, questions)

	// Right answer for question one.
	m, _ = m.update(keyMsg("down"))
	m, _ = m.update(keyMsg("enter"))
	if m.score != 1 {
		t.Fatalf("score = %d after correct answer, want 1", m.score)
	}

	// Wrong answer for question two.
	m, _ = m.update(keyMsg("enter")) // advance
	m, _ = m.update(keyMsg("enter")) // pick "Mumbai"
	if m.score != 1 {
		t.Fatalf("score = %d after wrong answer, want 1", m.score)
	}

	m, _ = m.update(keyMsg("enter"))
	if !m.finished {
		t.Error("quiz not finished after last question")
	}
}

// TestFlashcardFlip tests flip and navigation state.
func TestFlashcardFlip(t *testing.T) {
	cards := []study.Flashcard{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	}
	common := &commonModel{cfg: Config{}, app: &App{}}
	m := newFlashcardsModel(common, cards)

	m, _ = m.update(keyMsg(" "))
	if !m.flipped {
		t.Error("space did not flip the card")
	}
	m, _ = m.update(keyMsg("n"))
	if m.index != 1 || m.flipped {
		t.Errorf("after next: index = %d flipped = %v, want 1 false", m.index, m.flipped)
	}
	m, _ = m.update(keyMsg("n"))
	if m.index != 1 {
		t.Errorf("index = %d past deck end, want 1", m.index)
	}
}
