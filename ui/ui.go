// Package ui provides the terminal UI: sign-in, chapter picking, study
// material views and the tutoring chat.
package ui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/reenas3520-oss/yahoooo-study/chat"
	"github.com/reenas3520-oss/yahoooo-study/provider"
	"github.com/reenas3520-oss/yahoooo-study/speech"
	"github.com/reenas3520-oss/yahoooo-study/study"
)

const statusMessageTimeout = time.Second * 3

// NewProgram returns a new Tea program wired to the app services.
// Playback, busy and transcript changes arrive through an event channel
// so background goroutines never touch the model directly.
func NewProgram(cfg Config, app *App) *tea.Program {
	log.Debug("starting ui", "glamour", cfg.GlamourEnabled, "style", cfg.GlamourStyle)

	events := make(chan tea.Msg, 32)
	app.Speech.OnStateChange(func(s speech.State) {
		events <- playbackChangedMsg(s)
	})
	app.Dispatcher.OnBusyChange(func(busy bool) {
		events <- busyChangedMsg(busy)
	})
	app.Chat.OnUpdate(func(messages []chat.Message) {
		events <- transcriptMsg(messages)
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.EnableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return tea.NewProgram(newModel(cfg, app, events), opts...)
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

type (
	statusTimeoutMsg   struct{}
	busyChangedMsg     bool
	playbackChangedMsg speech.State
	transcriptMsg      []chat.Message
	signedInMsg        string

	contentMsg struct {
		title    string
		markdown string
	}
	flashcardsMsg []study.Flashcard
	quizMsg       []study.QuizQuestion
	planMsg       []study.PlanDay
	diagramsMsg   []string // saved image paths
)

// state is the top-level application state.
type state int

const (
	stateAuth state = iota
	statePicker
	stateMenu
	stateChat
	stateContent
	stateFlashcards
	stateQuiz
	stateSettings
)

func (s state) String() string {
	return map[state]string{
		stateAuth:       "signing in",
		statePicker:     "picking a chapter",
		stateMenu:       "choosing an action",
		stateChat:       "chatting with the tutor",
		stateContent:    "reading",
		stateFlashcards: "reviewing flashcards",
		stateQuiz:       "taking a quiz",
		stateSettings:   "adjusting settings",
	}[s]
}

// Common stuff we'll need to access in all models.
type commonModel struct {
	cfg    Config
	app    *App
	width  int
	height int
}

type model struct {
	common *commonModel
	state  state
	events chan tea.Msg

	user  string
	topic study.Topic

	busy     bool
	playback speech.State
	spinner  spinner.Model
	status   string

	// Sub-models
	auth       authModel
	picker     pickerModel
	menu       menuModel
	chat       chatModel
	content    contentModel
	flashcards flashcardsModel
	quiz       quizModel
	settings   settingsModel

	// Screen to return to when settings closes.
	settingsReturn state
}

func newModel(cfg Config, app *App, events chan tea.Msg) tea.Model {
	common := &commonModel{cfg: cfg, app: app}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#ED567A"))

	m := model{
		common:  common,
		state:   stateAuth,
		events:  events,
		spinner: sp,
		auth:    newAuthModel(common),
		picker:  newPickerModel(common),
		menu:    newMenuModel(common),
		chat:    newChatModel(common),
		content: newContentModel(common),
	}

	if user, ok := app.Store.CurrentUser(); ok {
		m.user = user
		m.state = statePicker
	}
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(awaitEvent(m.events), m.spinner.Tick, m.auth.input.Focus())
}

// awaitEvent relays one background event into the program, re-armed after
// every delivery.
func awaitEvent(events chan tea.Msg) tea.Cmd {
	return func() tea.Msg { return <-events }
}

func setStatusTimeout() tea.Cmd {
	return tea.Tick(statusMessageTimeout, func(time.Time) tea.Msg {
		return statusTimeoutMsg{}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.common.width = msg.Width
		m.common.height = msg.Height
		m.content.resize(msg.Width, msg.Height-2)
		m.chat.resize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+o":
			if m.user != "" && (m.state == statePicker || m.state == stateMenu) {
				m.settingsReturn = m.state
				m.settings = newSettingsModel(m.common, m.user)
				m.state = stateSettings
				return m, m.settings.name.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case busyChangedMsg:
		m.busy = bool(msg)
		return m, awaitEvent(m.events)

	case playbackChangedMsg:
		m.playback = speech.State(msg)
		return m, awaitEvent(m.events)

	case transcriptMsg:
		m.chat.setTranscript([]chat.Message(msg))
		return m, awaitEvent(m.events)

	case errMsg:
		log.Error("action failed", "state", m.state.String(), "error", msg.err)
		m.status = errorStyle.Render(friendlyError(msg.err))
		return m, setStatusTimeout()

	case statusTimeoutMsg:
		m.status = ""
		return m, nil

	case signedInMsg:
		m.user = string(msg)
		m.state = statePicker
		return m, nil

	case topicChosenMsg:
		m.topic = study.Topic(msg)
		m.menu.setTopic(m.topic)
		m.state = stateMenu
		return m, nil

	case openChatMsg:
		m.state = stateChat
		m.common.app.Chat.StartSession(m.topic, m.speechLanguage())
		return m, m.chat.input.Focus()

	case contentMsg:
		m.state = stateContent
		return m, m.content.load(msg.title, msg.markdown)

	case flashcardsMsg:
		m.flashcards = newFlashcardsModel(m.common, []study.Flashcard(msg))
		m.state = stateFlashcards
		return m, nil

	case quizMsg:
		m.quiz = newQuizModel(m.common, []study.QuizQuestion(msg))
		m.state = stateQuiz
		return m, nil

	case planMsg:
		m.state = stateContent
		return m, m.content.load("7-Day Study Plan", renderPlan([]study.PlanDay(msg)))

	case diagramsMsg:
		m.state = stateContent
		return m, m.content.load("Diagrams", renderGallery("Diagrams", []string(msg)))

	case settingsSavedMsg:
		m.status = keywordStyle.Render("Settings saved")
		m.state = m.settingsReturn
		return m, setStatusTimeout()

	case backMsg:
		m.back()
		return m, nil
	}

	// Route everything else to the active sub-model.
	var cmd tea.Cmd
	switch m.state {
	case stateAuth:
		m.auth, cmd = m.auth.update(msg)
	case statePicker:
		m.picker, cmd = m.picker.update(msg)
	case stateMenu:
		m.menu, cmd = m.menu.update(msg)
	case stateChat:
		m.chat, cmd = m.chat.update(msg)
	case stateContent:
		m.content, cmd = m.content.update(msg)
	case stateFlashcards:
		m.flashcards, cmd = m.flashcards.update(msg)
	case stateQuiz:
		m.quiz, cmd = m.quiz.update(msg)
	case stateSettings:
		m.settings, cmd = m.settings.update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// back pops one level of the screen hierarchy, stopping any playback the
// screen owned.
func (m *model) back() {
	m.common.app.Speech.Stop()
	switch m.state {
	case statePicker:
		m.user = ""
		if err := m.common.app.Store.SignOut(); err != nil {
			log.Error("sign-out failed", "error", err)
		}
		m.state = stateAuth
	case stateMenu:
		m.state = statePicker
	case stateChat, stateContent, stateFlashcards, stateQuiz:
		m.state = stateMenu
	case stateSettings:
		m.state = m.settingsReturn
	}
}

func (m model) speechLanguage() string {
	if sp, ok := m.common.app.Store.SpeechSettings(m.user); ok {
		return sp.Language
	}
	return speech.LanguageEnglish
}

func (m model) View() string {
	var body string
	switch m.state {
	case stateAuth:
		body = m.auth.view()
	case statePicker:
		body = m.picker.view()
	case stateMenu:
		body = m.menu.view()
	case stateChat:
		body = m.chat.view()
	case stateContent:
		body = m.content.view()
	case stateFlashcards:
		body = m.flashcards.view()
	case stateQuiz:
		body = m.quiz.view()
	case stateSettings:
		body = m.settings.view()
	}
	return body + "\n" + m.statusBarView()
}

func (m model) statusBarView() string {
	var b strings.Builder

	if m.busy {
		b.WriteString(busyStyle.Render(m.spinner.View() + "working"))
		b.WriteString(" ")
	}
	if m.playback.IsPlaying {
		b.WriteString(speakingStyle.Render("speaking"))
		b.WriteString(" ")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString(" ")
	}

	left := b.String()
	right := ""
	if m.user != "" {
		right = subtleStyle.Render(m.user)
	}

	gap := m.common.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Width(m.common.width).Render(left + strings.Repeat(" ", gap) + right)
}

// friendlyError converts known failures into something a student can act
// on.
func friendlyError(err error) string {
	if !provider.IsRecoverableError(err) {
		return "No API key configured. Set STUDY_API_KEY and restart."
	}
	if errors.Is(err, provider.ErrUnavailable) || errors.Is(err, provider.ErrNoResult) {
		return "Couldn't reach the tutor service. Check your connection and API key."
	}
	msg := err.Error()
	if len(msg) > 80 {
		msg = msg[:80] + "…"
	}
	return msg
}
