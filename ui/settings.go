package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/indent"

	"github.com/reenas3520-oss/yahoooo-study/internal/store"
	"github.com/reenas3520-oss/yahoooo-study/speech"
)

type (
	avatarMsg        string // path of a freshly generated avatar
	settingsSavedMsg struct{}
)

// languageOption pairs a reply-language code with its menu label.
type languageOption struct {
	code  string
	label string
}

var languageOptions = []languageOption{
	{speech.LanguageEnglish, "English"},
	{speech.LanguageHindi, "Hindi (हिन्दी)"},
	{speech.LanguageMixed, "Hinglish (Mix)"},
}

// voiceOptions are the voices the speech model accepts.
var voiceOptions = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}

// Rows of the settings form, top to bottom.
const (
	rowName = iota
	rowAvatarPrompt
	rowLanguage
	rowVoice
	rowGenerateAvatar
	rowSave
	rowCount
)

// settingsModel edits the signed-in student's profile and speech
// preferences. Nothing is persisted until Save.
type settingsModel struct {
	common *commonModel
	user   string

	name     textinput.Model
	prompt   textinput.Model
	avatar   string
	language int
	voice    int
	cursor   int
}

func newSettingsModel(common *commonModel, user string) settingsModel {
	name := textinput.New()
	name.CharLimit = 64
	name.Width = 40

	prompt := textinput.New()
	prompt.Placeholder = "a friendly blue robot, digital art"
	prompt.CharLimit = 200
	prompt.Width = 40

	m := settingsModel{common: common, user: user, name: name, prompt: prompt}

	if p, ok := common.app.Store.Profile(user); ok {
		m.name.SetValue(p.Name)
		m.avatar = p.Avatar
	}
	if sp, ok := common.app.Store.SpeechSettings(user); ok {
		m.language = indexOf(languageCodes(), sp.Language)
		m.voice = indexOf(voiceOptions, sp.Voice)
	}

	m.name.Focus()
	return m
}

func languageCodes() []string {
	codes := make([]string, len(languageOptions))
	for i, opt := range languageOptions {
		codes[i] = opt.code
	}
	return codes
}

// indexOf falls back to the first option for unknown values.
func indexOf(options []string, value string) int {
	for i, opt := range options {
		if opt == value {
			return i
		}
	}
	return 0
}

func (m settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case avatarMsg:
		m.avatar = string(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backMsg{} }
		case "up", "shift+tab":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, m.syncFocus()
		case "down", "tab":
			if m.cursor < rowCount-1 {
				m.cursor++
			}
			return m, m.syncFocus()
		case "left":
			m.cycle(-1)
			return m, nil
		case "right":
			m.cycle(1)
			return m, nil
		case "enter":
			switch m.cursor {
			case rowGenerateAvatar:
				return m, m.generateAvatar()
			case rowSave:
				return m, m.save()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.cursor {
	case rowName:
		m.name, cmd = m.name.Update(msg)
	case rowAvatarPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	}
	return m, cmd
}

func (m *settingsModel) syncFocus() tea.Cmd {
	m.name.Blur()
	m.prompt.Blur()
	switch m.cursor {
	case rowName:
		return m.name.Focus()
	case rowAvatarPrompt:
		return m.prompt.Focus()
	}
	return nil
}

// cycle steps the option under the cursor. Other rows ignore it.
func (m *settingsModel) cycle(step int) {
	switch m.cursor {
	case rowLanguage:
		m.language = (m.language + step + len(languageOptions)) % len(languageOptions)
	case rowVoice:
		m.voice = (m.voice + step + len(voiceOptions)) % len(voiceOptions)
	}
}

// generateAvatar renders a new profile picture under the busy flag and
// saves it next to the diagrams. The profile keeps the path, not the
// bytes.
func (m settingsModel) generateAvatar() tea.Cmd {
	app := m.common.app
	prompt := strings.TrimSpace(m.prompt.Value())
	if prompt == "" {
		prompt = m.prompt.Placeholder
	}
	return func() tea.Msg {
		var path string
		err := app.Dispatcher.Perform("avatar", func() error {
			payload, err := app.Generator.Avatar(context.Background(), prompt)
			if err != nil {
				return err
			}
			paths, err := saveImages("avatar", []string{payload})
			if err != nil {
				return err
			}
			path = paths[0]
			return nil
		})
		if err != nil {
			return errMsg{err}
		}
		return avatarMsg(path)
	}
}

// save persists the profile and speech preference and points the playback
// controller at the new voice.
func (m settingsModel) save() tea.Cmd {
	app := m.common.app
	user := m.user
	profile := store.Profile{Name: strings.TrimSpace(m.name.Value()), Avatar: m.avatar}
	if profile.Name == "" {
		profile.Name = user
	}
	pref := store.Speech{
		Voice:    voiceOptions[m.voice],
		Language: languageOptions[m.language].code,
	}
	return func() tea.Msg {
		if err := app.Store.SaveProfile(user, profile); err != nil {
			return errMsg{err}
		}
		if err := app.Store.SaveSpeechSettings(user, pref); err != nil {
			return errMsg{err}
		}
		app.Speech.SetVoice(pref.Language, pref.Voice)
		return settingsSavedMsg{}
	}
}

func (m settingsModel) view() string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("Settings") + "\n\n")

	b.WriteString(m.row(rowName, "Display name  "+m.name.View()))
	b.WriteString(m.row(rowAvatarPrompt, "Avatar prompt "+m.prompt.View()))
	b.WriteString(m.row(rowLanguage, "Tutor language  "+m.optionView(rowLanguage)))
	b.WriteString(m.row(rowVoice, "Speech voice    "+m.optionView(rowVoice)))
	b.WriteString("\n")
	b.WriteString(m.row(rowGenerateAvatar, "[ Generate avatar ]"))
	b.WriteString(m.row(rowSave, "[ Save ]"))

	if m.avatar != "" {
		b.WriteString("\n" + subtleStyle.Render("avatar: "+m.avatar) + "\n")
	}
	b.WriteString("\n" + subtleStyle.Render("↑/↓: move • ←/→: change • enter: run • esc: back"))
	return indent.String(b.String(), 2)
}

func (m settingsModel) row(row int, body string) string {
	if m.cursor == row {
		return selectedStyle.Render("> ") + body + "\n"
	}
	return "  " + body + "\n"
}

func (m settingsModel) optionView(row int) string {
	var label string
	switch row {
	case rowLanguage:
		label = languageOptions[m.language].label
	case rowVoice:
		label = voiceOptions[m.voice]
	}
	return keywordStyle.Render("‹ " + label + " ›")
}
