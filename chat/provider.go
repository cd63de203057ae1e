package chat

import (
	"context"

	"github.com/reenas3520-oss/yahoooo-study/provider"
)

// WithClient adapts a provider client into an Opener.
func WithClient(c *provider.Client) Opener {
	return func(systemInstruction string) Session {
		return providerSession{c.OpenChat(systemInstruction)}
	}
}

type providerSession struct {
	*provider.ChatSession
}

func (s providerSession) SendStream(ctx context.Context, message string) (Stream, error) {
	stream, err := s.ChatSession.SendStream(ctx, message)
	if err != nil {
		return nil, err
	}
	return stream, nil
}
