// Package chat accumulates a tutoring conversation: one live session per
// topic, streamed replies folded token by token into the transcript.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/reenas3520-oss/yahoooo-study/study"
)

// ErrNoActiveSession is returned when a message is sent before a session
// has been started.
var ErrNoActiveSession = errors.New("no active chat session")

// apology replaces a reply that failed mid-stream. The student sees a
// complete message, never a stuck spinner.
const apology = "Sorry, I encountered an error. Please try again."

// Role identifies the author of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one entry in the transcript. While IsStreaming is true the
// text only ever grows.
type Message struct {
	Role        Role
	Text        string
	IsStreaming bool
}

// Session is an open conversation handle. provider.ChatSession satisfies
// it through the adapter in provider.go.
type Session interface {
	ID() uuid.UUID
	SendStream(ctx context.Context, message string) (Stream, error)
}

// Stream yields the chunks of one model reply, ending with io.EOF.
type Stream interface {
	Recv() (string, error)
	Close() error
}

// Opener creates a session primed with a system instruction.
type Opener func(systemInstruction string) Session

// Accumulator owns the transcript and the single live session. Starting a
// new topic replaces both; replies still streaming for a replaced session
// are discarded.
type Accumulator struct {
	mu       sync.Mutex
	open     Opener
	session  Session
	messages []Message
	onUpdate func([]Message)
}

// NewAccumulator creates an accumulator with no active session.
func NewAccumulator(open Opener) *Accumulator {
	return &Accumulator{open: open}
}

// OnUpdate registers a callback invoked with a transcript snapshot after
// every change. The callback runs outside the accumulator lock.
func (a *Accumulator) OnUpdate(fn func([]Message)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onUpdate = fn
}

// Messages returns a snapshot of the transcript.
func (a *Accumulator) Messages() []Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

// Active reports whether a session is open.
func (a *Accumulator) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session != nil
}

// StartSession opens a fresh tutoring session for a topic, replacing any
// previous session and transcript. The greeting is synthesized locally so
// the chat never opens empty.
func (a *Accumulator) StartSession(topic study.Topic, language string) {
	session := a.open(systemInstruction(topic, language))

	a.mu.Lock()
	a.session = session
	a.messages = []Message{{
		Role: RoleModel,
		Text: fmt.Sprintf("Hi! I'm ready to help you with %q. What would you like to know?", topic.Chapter),
	}}
	a.mu.Unlock()

	log.Debug("started tutoring session", "session", session.ID(), "topic", topic.String())
	a.notify()
}

// SendMessage appends the student's message, opens a placeholder reply
// and folds the streamed chunks into it. It blocks until the reply is
// sealed or fails; a failure mid-stream leaves a fixed apology in place
// of the partial text. If the session is replaced while the reply is
// still streaming, the remaining chunks are discarded and the send fails
// with ErrNoActiveSession; it never writes into the new session's
// transcript.
func (a *Accumulator) SendMessage(ctx context.Context, text string) error {
	a.mu.Lock()
	session := a.session
	if session == nil {
		a.mu.Unlock()
		return ErrNoActiveSession
	}
	a.messages = append(a.messages,
		Message{Role: RoleUser, Text: text},
		Message{Role: RoleModel, IsStreaming: true},
	)
	placeholder := len(a.messages) - 1
	a.mu.Unlock()
	a.notify()

	stream, err := session.SendStream(ctx, text)
	if err != nil {
		a.settle(session, placeholder, apology)
		return err
	}
	defer stream.Close()

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			if !a.settle(session, placeholder, "") {
				return ErrNoActiveSession
			}
			return nil
		}
		if err != nil {
			a.settle(session, placeholder, apology)
			return err
		}
		if !a.append(session, placeholder, chunk) {
			// Session replaced mid-stream; the reply belongs to a dead
			// transcript.
			return ErrNoActiveSession
		}
	}
}

// append grows the placeholder text by one chunk. It reports false when
// the session is no longer current.
func (a *Accumulator) append(session Session, index int, chunk string) bool {
	a.mu.Lock()
	if a.session != session {
		a.mu.Unlock()
		return false
	}
	a.messages[index].Text += chunk
	a.mu.Unlock()
	a.notify()
	return true
}

// settle seals the placeholder. A non-empty replacement overwrites
// whatever partial text accumulated. It reports false when the session is
// no longer current, in which case nothing is written.
func (a *Accumulator) settle(session Session, index int, replacement string) bool {
	a.mu.Lock()
	if a.session != session {
		a.mu.Unlock()
		return false
	}
	if replacement != "" {
		a.messages[index].Text = replacement
	}
	a.messages[index].IsStreaming = false
	a.mu.Unlock()
	a.notify()
	return true
}

func (a *Accumulator) snapshotLocked() []Message {
	out := make([]Message, len(a.messages))
	copy(out, a.messages)
	return out
}

func (a *Accumulator) notify() {
	a.mu.Lock()
	fn := a.onUpdate
	snapshot := a.snapshotLocked()
	a.mu.Unlock()
	if fn != nil {
		fn(snapshot)
	}
}

// systemInstruction builds the tutor persona for a topic, with the reply
// language pinned by the student's preference.
func systemInstruction(topic study.Topic, language string) string {
	instruction := fmt.Sprintf(
		"You are an expert tutor for a Class %s student in India studying the %s subject from "+
			"the %s textbook. The current chapter is %q. Your goal is to help the student "+
			"understand this chapter deeply. Be encouraging, ask probing questions, and explain "+
			"concepts clearly and concisely. Use analogies and real-world examples relevant to an "+
			"Indian context where possible. Keep your responses focused on the topic.",
		topic.Class, topic.Subject, topic.Book, topic.Chapter)

	switch language {
	case "hi":
		instruction += " You must respond entirely in Hindi, using Devanagari script."
	case "mix":
		instruction += " You can respond in a mix of Hindi and English (Hinglish), as is natural" +
			" in modern Indian conversation."
	}
	return instruction
}
