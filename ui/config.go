package ui

// Config contains TUI-specific settings. Values come from the config file
// and environment via the root command.
type Config struct {
	GlamourStyle    string `env:"STUDY_STYLE" envDefault:"auto"`
	GlamourMaxWidth uint   `env:"STUDY_WIDTH" envDefault:"100"`
	GlamourEnabled  bool   `env:"STUDY_GLAMOUR" envDefault:"true"`
	EnableMouse     bool   `env:"STUDY_MOUSE" envDefault:"false"`
}
