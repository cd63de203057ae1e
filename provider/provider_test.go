package provider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestConfigValidate tests configuration validation rules.
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty fast model",
			mutate:  func(c *Config) { c.FastModel = "" },
			wantErr: true,
		},
		{
			name:    "empty quality model",
			mutate:  func(c *Config) { c.QualityModel = "" },
			wantErr: true,
		},
		{
			name:    "timeout too small",
			mutate:  func(c *Config) { c.RequestTimeout = 100 * time.Millisecond },
			wantErr: true,
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.RequestsPerMinute = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestMissingAPIKeyDegrades tests that a keyless client fails calls with
// ErrUnavailable instead of crashing.
func TestMissingAPIKeyDegrades(t *testing.T) {
	client, err := NewClient(DefaultConfig())
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	ctx := context.Background()

	if _, err := client.GenerateText(ctx, "hello", TierFast); !errors.Is(err, ErrUnavailable) {
		t.Errorf("GenerateText() error = %v, want ErrUnavailable", err)
	}
	if err := client.GenerateStructured(ctx, "hello", &struct{}{}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("GenerateStructured() error = %v, want ErrUnavailable", err)
	}
	if _, err := client.GenerateImages(ctx, "hello", 1); !errors.Is(err, ErrUnavailable) {
		t.Errorf("GenerateImages() error = %v, want ErrUnavailable", err)
	}
	if _, err := client.GenerateSpeech(ctx, "hello", "alloy", "en"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("GenerateSpeech() error = %v, want ErrUnavailable", err)
	}

	session := client.OpenChat("be helpful")
	if _, err := session.SendStream(ctx, "hello"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("SendStream() error = %v, want ErrUnavailable", err)
	}
}

// TestOpenChatHandlesAreDistinct tests that every session gets its own
// identity so a replaced handle can be told apart from the current one.
func TestOpenChatHandlesAreDistinct(t *testing.T) {
	client, err := NewClient(DefaultConfig())
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	a := client.OpenChat("first")
	b := client.OpenChat("second")
	if a.ID() == b.ID() {
		t.Errorf("OpenChat() produced identical session ids: %v", a.ID())
	}
}

// TestDecodeStructured tests JSON payload decoding including fenced output.
func TestDecodeStructured(t *testing.T) {
	type item struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	type payload struct {
		Cards []item `json:"cards"`
	}

	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    int
	}{
		{
			name:  "plain json",
			input: `{"cards":[{"question":"q","answer":"a"}]}`,
			want:  1,
		},
		{
			name:  "fenced json",
			input: "```json\n{\"cards\":[{\"question\":\"q\",\"answer\":\"a\"},{\"question\":\"q2\",\"answer\":\"a2\"}]}\n```",
			want:  2,
		},
		{
			name:    "empty payload",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "not json",
			input:   "Sure! Here are your flashcards:",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out payload
			err := DecodeStructured(tt.input, &out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeStructured() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && len(out.Cards) != tt.want {
				t.Errorf("DecodeStructured() decoded %d cards, want %d", len(out.Cards), tt.want)
			}
		})
	}
}

// TestTierString tests the Tier String() method.
func TestTierString(t *testing.T) {
	if TierFast.String() != "fast" || TierQuality.String() != "quality" {
		t.Errorf("Tier.String() = %q/%q, want fast/quality", TierFast, TierQuality)
	}
	if Tier(42).String() != "unknown" {
		t.Errorf("Tier(42).String() = %q, want unknown", Tier(42))
	}
}
