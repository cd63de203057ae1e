package speech

import "fmt"

// Languages recognized by the tutor and the speech pipeline.
const (
	// LanguageEnglish is the default; no language directive is added.
	LanguageEnglish = "en"
	// LanguageHindi forces responses entirely in Hindi.
	LanguageHindi = "hi"
	// LanguageMixed allows a natural Hindi/English mix.
	LanguageMixed = "mix"
)

// Config contains speech playback configuration.
type Config struct {
	Voice        string `yaml:"voice" env:"STUDY_TTS_VOICE" envDefault:"alloy"`
	Language     string `yaml:"language" env:"STUDY_TTS_LANGUAGE" envDefault:"en"`
	CacheEntries int    `yaml:"cache_entries" env:"STUDY_TTS_CACHE_ENTRIES" envDefault:"256"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Voice:        "alloy",
		Language:     LanguageEnglish,
		CacheEntries: 256,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Language {
	case LanguageEnglish, LanguageHindi, LanguageMixed:
	default:
		return fmt.Errorf("invalid language %q: must be one of [en hi mix]", c.Language)
	}
	if c.Voice == "" {
		return fmt.Errorf("voice cannot be empty")
	}
	if c.CacheEntries < 1 || c.CacheEntries > 10000 {
		return fmt.Errorf("cache_entries must be between 1 and 10000, got %d", c.CacheEntries)
	}
	return nil
}
