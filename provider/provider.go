// Package provider implements the remote content provider used for text,
// structured, image and speech generation.
package provider

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/log"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// Tier selects the model quality for plain text generation.
type Tier int

const (
	// TierFast is the default model used for conversational content.
	TierFast Tier = iota
	// TierQuality is the slower model used for long-form study material.
	TierQuality
)

// String returns the string representation of the tier.
func (t Tier) String() string {
	switch t {
	case TierFast:
		return "fast"
	case TierQuality:
		return "quality"
	default:
		return "unknown"
	}
}

// Config holds configuration for the provider client.
type Config struct {
	APIKey            string        `yaml:"api_key" env:"STUDY_API_KEY"`
	BaseURL           string        `yaml:"base_url" env:"STUDY_API_BASE_URL"`
	FastModel         string        `yaml:"fast_model" env:"STUDY_FAST_MODEL" envDefault:"gpt-4o-mini"`
	QualityModel      string        `yaml:"quality_model" env:"STUDY_QUALITY_MODEL" envDefault:"gpt-4o"`
	ImageModel        string        `yaml:"image_model" env:"STUDY_IMAGE_MODEL" envDefault:"dall-e-3"`
	SpeechModel       string        `yaml:"speech_model" env:"STUDY_SPEECH_MODEL" envDefault:"tts-1"`
	RequestTimeout    time.Duration `yaml:"request_timeout" env:"STUDY_REQUEST_TIMEOUT" envDefault:"60s"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"STUDY_REQUESTS_PER_MINUTE" envDefault:"60"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		FastModel:         "gpt-4o-mini",
		QualityModel:      "gpt-4o",
		ImageModel:        "dall-e-3",
		SpeechModel:       "tts-1",
		RequestTimeout:    60 * time.Second,
		RequestsPerMinute: 60,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.FastModel == "" || c.QualityModel == "" {
		return errors.New("text models cannot be empty")
	}
	if c.RequestTimeout < time.Second {
		return fmt.Errorf("request timeout must be at least 1 second, got %v", c.RequestTimeout)
	}
	if c.RequestsPerMinute < 1 {
		return fmt.Errorf("requests per minute must be positive, got %d", c.RequestsPerMinute)
	}
	return nil
}

// Client talks to the remote generative API. A missing API key degrades
// every call to ErrUnavailable instead of crashing the process.
type Client struct {
	api     *openai.Client
	config  Config
	limiter *rate.Limiter
}

// NewClient creates a provider client from the given configuration.
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("provider config: %w", err)
	}

	c := &Client{
		config:  config,
		limiter: rate.NewLimiter(rate.Limit(float64(config.RequestsPerMinute)/60.0), 2),
	}

	if config.APIKey == "" {
		log.Warn("no provider API key configured; AI features will be unavailable")
		return c, nil
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	c.api = openai.NewClientWithConfig(clientConfig)
	return c, nil
}

// ready reserves a rate limiter slot and reports whether the client can
// issue requests at all.
func (c *Client) ready(ctx context.Context) error {
	if c.api == nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, ErrMissingAPIKey)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	return nil
}

// model returns the configured model name for a tier.
func (c *Client) model(tier Tier) string {
	if tier == TierQuality {
		return c.config.QualityModel
	}
	return c.config.FastModel
}

// GenerateText requests plain text for a prompt at the given quality tier.
func (c *Client) GenerateText(ctx context.Context, prompt string, tier Tier) (string, error) {
	if err := c.ready(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model(tier),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", classify(err)
	}
	text := completionText(resp)
	if text == "" {
		return "", ErrNoResult
	}
	return text, nil
}

// GenerateStructured requests a JSON response for a prompt and decodes it
// into dst. Shape validation beyond JSON well-formedness belongs to the
// caller, which knows the expected schema.
func (c *Client) GenerateStructured(ctx context.Context, prompt string, dst any) error {
	if err := c.ready(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model(TierFast),
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Respond with a single JSON object that exactly matches the shape requested by the user. No prose, no code fences.",
			},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return classify(err)
	}

	text := completionText(resp)
	if text == "" {
		return ErrNoResult
	}
	return DecodeStructured(text, dst)
}

// DecodeStructured decodes a raw JSON payload into dst, tolerating the
// code fences some models wrap JSON in despite instructions.
func DecodeStructured(payload string, dst any) error {
	payload = strings.TrimSpace(payload)
	payload = strings.TrimPrefix(payload, "```json")
	payload = strings.TrimPrefix(payload, "```")
	payload = strings.TrimSuffix(payload, "```")
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return ErrNoResult
	}
	if err := sonic.UnmarshalString(payload, dst); err != nil {
		return fmt.Errorf("structured response did not parse: %w", err)
	}
	return nil
}

// GenerateImages requests count base64-encoded images for a prompt. The
// image API produces one image per request, so this issues count requests.
func (c *Client) GenerateImages(ctx context.Context, prompt string, count int) ([]string, error) {
	if count < 1 {
		count = 1
	}
	if err := c.ready(ctx); err != nil {
		return nil, err
	}

	images := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
		resp, err := c.api.CreateImage(ctx, openai.ImageRequest{
			Model:          c.config.ImageModel,
			Prompt:         prompt,
			N:              1,
			Size:           openai.CreateImageSize1024x1024,
			ResponseFormat: openai.CreateImageResponseFormatB64JSON,
		})
		cancel()
		if err != nil {
			// Partial output is still useful for a gallery.
			if len(images) > 0 {
				log.Warn("image generation stopped early", "generated", len(images), "requested", count, "err", err)
				return images, nil
			}
			return nil, classify(err)
		}
		for _, d := range resp.Data {
			if d.B64JSON != "" {
				images = append(images, d.B64JSON)
			}
		}
	}
	if len(images) == 0 {
		return nil, ErrNoResult
	}
	return images, nil
}

// GenerateSpeech synthesizes speech for text and returns the raw PCM
// payload base64-encoded. The payload is 24kHz mono signed 16-bit LE.
func (c *Client) GenerateSpeech(ctx context.Context, text, voice, languageHint string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrNoResult
	}
	if err := c.ready(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	log.Debug("requesting speech", "voice", voice, "language", languageHint, "chars", len(text))

	resp, err := c.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(c.config.SpeechModel),
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatPcm,
	})
	if err != nil {
		return "", classify(err)
	}
	defer resp.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp)
	if err != nil {
		return "", fmt.Errorf("%w: reading speech payload: %s", ErrUnavailable, err)
	}
	if len(raw) == 0 {
		return "", ErrNoResult
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// completionText extracts the text of the first choice, if any.
func completionText(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// classify converts transport and API failures into the provider error
// taxonomy while keeping the cause in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %s", ErrUnavailable, apiErr.Message)
	}
	return fmt.Errorf("%w: %s", ErrUnavailable, err)
}
