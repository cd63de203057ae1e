package provider

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
)

// ChatSession is an open conversation handle. History lives in memory and
// dies with the session; starting a new topic means a new session.
type ChatSession struct {
	id      uuid.UUID
	client  *Client
	history []openai.ChatCompletionMessage
	mu      sync.Mutex
}

// OpenChat opens a new conversation session primed with a system
// instruction. The handle is usable even without an API key; sends will
// fail with ErrUnavailable.
func (c *Client) OpenChat(systemInstruction string) *ChatSession {
	s := &ChatSession{
		id:     uuid.New(),
		client: c,
		history: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
		},
	}
	log.Debug("opened chat session", "session", s.id)
	return s
}

// ID returns the session identifier.
func (s *ChatSession) ID() uuid.UUID {
	return s.id
}

// SendStream sends a user message and returns the model's reply as a
// finite, non-restartable stream of text chunks. The user message and the
// completed reply are committed to the session history.
func (s *ChatSession) SendStream(ctx context.Context, message string) (*MessageStream, error) {
	if err := s.client.ready(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.history = append(s.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})
	messages := make([]openai.ChatCompletionMessage, len(s.history))
	copy(messages, s.history)
	s.mu.Unlock()

	stream, err := s.client.api.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    s.client.model(TierFast),
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return nil, classify(err)
	}

	return &MessageStream{session: s, stream: stream}, nil
}

// MessageStream is a lazy sequence of text chunks for one model reply.
type MessageStream struct {
	session *ChatSession
	stream  *openai.ChatCompletionStream
	full    strings.Builder
	done    bool
}

// Recv returns the next text chunk. It returns io.EOF once the reply is
// complete; any other error terminates the stream. A finished stream
// cannot be read again.
func (m *MessageStream) Recv() (string, error) {
	if m.done {
		return "", ErrStreamClosed
	}

	for {
		resp, err := m.stream.Recv()
		if errors.Is(err, io.EOF) {
			m.finish()
			return "", io.EOF
		}
		if err != nil {
			m.done = true
			return "", classify(err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		chunk := resp.Choices[0].Delta.Content
		if chunk == "" {
			continue
		}
		m.full.WriteString(chunk)
		return chunk, nil
	}
}

// Close releases the underlying stream. Safe to call more than once.
func (m *MessageStream) Close() error {
	if m.stream != nil {
		return m.stream.Close()
	}
	return nil
}

// finish commits the assembled reply to the session history.
func (m *MessageStream) finish() {
	m.done = true
	reply := m.full.String()
	if reply == "" {
		return
	}
	m.session.mu.Lock()
	m.session.history = append(m.session.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: reply,
	})
	m.session.mu.Unlock()
}
