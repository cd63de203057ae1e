// Package main provides the entry point for the yahoooo-study CLI
// application.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/reenas3520-oss/yahoooo-study/chat"
	"github.com/reenas3520-oss/yahoooo-study/dispatch"
	"github.com/reenas3520-oss/yahoooo-study/internal/store"
	"github.com/reenas3520-oss/yahoooo-study/provider"
	"github.com/reenas3520-oss/yahoooo-study/speech"
	"github.com/reenas3520-oss/yahoooo-study/speech/audio"
	"github.com/reenas3520-oss/yahoooo-study/study"
	"github.com/reenas3520-oss/yahoooo-study/ui"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile string
	style      string
	width      uint
	mouse      bool

	rootCmd = &cobra.Command{
		Use:   "yahoooo-study",
		Short: "An AI study buddy for the NCERT curriculum, in your terminal",
		Long: "\nPick a class, subject and chapter, then chat with a tutor, generate " +
			"summaries, notes, flashcards and quizzes, and have any of it read aloud.",
		SilenceErrors: false,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runTUI()
		},
	}
)

func validateOptions(cmd *cobra.Command) error {
	width = viper.GetUint("width")
	mouse = viper.GetBool("mouse")
	style = viper.GetString("style")

	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	if !isTerminal && cmd == rootCmd {
		return errors.New("this program needs a terminal to run")
	}

	// Detect terminal width
	if !cmd.Flags().Changed("width") { //nolint:nestif
		if isTerminal && width == 0 {
			w, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err == nil {
				width = uint(w) //nolint:gosec
			}
			if width > 120 {
				width = 120
			}
		}
		if width == 0 {
			width = 80
		}
	}
	return nil
}

func runTUI() error {
	cfg, err := env.ParseAs[ui.Config]()
	if err != nil {
		return fmt.Errorf("error parsing config: %v", err)
	}
	cfg.GlamourStyle = style
	cfg.GlamourMaxWidth = width
	cfg.EnableMouse = mouse

	providerCfg, err := env.ParseAs[provider.Config]()
	if err != nil {
		return fmt.Errorf("error parsing provider config: %v", err)
	}
	if v := viper.GetString("api_key"); v != "" && providerCfg.APIKey == "" {
		providerCfg.APIKey = v
	}

	speechCfg, err := env.ParseAs[speech.Config]()
	if err != nil {
		return fmt.Errorf("error parsing speech config: %v", err)
	}
	if err := speechCfg.Validate(); err != nil {
		return fmt.Errorf("invalid speech config: %w", err)
	}

	statePath := viper.GetString("state_file")
	if statePath == "" {
		statePath, err = store.DefaultPath()
		if err != nil {
			return err
		}
	}
	st, err := store.Open(statePath)
	if err != nil {
		return fmt.Errorf("opening state: %w", err)
	}

	device, err := audio.NewOtoDevice()
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}

	client, err := provider.NewClient(providerCfg)
	if err != nil {
		return err
	}
	dispatcher := dispatch.New()

	controller := speech.NewController(device, client, speechCfg)
	controller.UseTracker(dispatcher)
	defer func() {
		if err := controller.Shutdown(); err != nil {
			log.Error("audio shutdown failed", "error", err)
		}
	}()

	// A returning user's saved preference wins over the config.
	if user, ok := st.CurrentUser(); ok {
		if sp, ok := st.SpeechSettings(user); ok {
			controller.SetVoice(sp.Language, sp.Voice)
		}
	}

	app := &ui.App{
		Store:      st,
		Generator:  study.NewGenerator(client),
		Chat:       chat.NewAccumulator(chat.WithClient(client)),
		Speech:     controller,
		Dispatcher: dispatcher,
	}

	// Run Bubble Tea program
	if _, err := ui.NewProgram(cfg, app).Run(); err != nil {
		return fmt.Errorf("unable to run tui program: %w", err)
	}
	return nil
}

// setupLog redirects logging to a file when debugging, since stderr
// belongs to the TUI.
func setupLog() (func() error, error) {
	log.SetOutput(io.Discard)
	if os.Getenv("STUDY_DEBUG") == "" {
		return func() error { return nil }, nil
	}

	scope := gap.NewScope(gap.User, "yahoooo-study")
	path, err := scope.LogPath("debug.log")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	return f.Close, nil
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	// Assigned here rather than in the composite literal to avoid an
	// initialization cycle between rootCmd and validateOptions.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return validateOptions(cmd)
	}
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.Flags().StringVarP(&style, "style", "s", "auto", "style name or JSON path")
	rootCmd.Flags().UintVarP(&width, "width", "w", 0, "word-wrap at width (set to 0 to disable)")
	rootCmd.Flags().BoolVarP(&mouse, "mouse", "m", false, "enable mouse wheel")
	_ = rootCmd.Flags().MarkHidden("mouse")

	// Config bindings
	_ = viper.BindPFlag("style", rootCmd.Flags().Lookup("style"))
	_ = viper.BindPFlag("width", rootCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("mouse", rootCmd.Flags().Lookup("mouse"))

	viper.SetDefault("style", "auto")
	viper.SetDefault("width", 0)
	viper.SetDefault("state_file", "")

	rootCmd.AddCommand(configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "yahoooo-study")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not load find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "yahoooo-study")}, dirs...)
	}

	if c := os.Getenv("STUDY_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("yahoooo-study")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("study")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		return
	}

	if viper.ConfigFileUsed() == "" {
		configFile = filepath.Join(dirs[0], "yahoooo-study.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
