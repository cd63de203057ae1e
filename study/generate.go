package study

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/reenas3520-oss/yahoooo-study/provider"
)

// ErrValidation indicates generated content that does not match the
// requested shape. One malformed item fails the whole artifact; partial
// study material is worse than none.
var ErrValidation = errors.New("generated content failed validation")

// Remote is the slice of the content provider the generators need.
// *provider.Client satisfies it.
type Remote interface {
	GenerateText(ctx context.Context, prompt string, tier provider.Tier) (string, error)
	GenerateStructured(ctx context.Context, prompt string, dst any) error
	GenerateImages(ctx context.Context, prompt string, count int) ([]string, error)
}

// Flashcard is a single question and answer pair.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuizQuestion is one multiple-choice question. CorrectAnswer is always
// one of Options.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// PlanDay is one day of a study plan.
type PlanDay struct {
	Day    int      `json:"day"`
	Topic  string   `json:"topic"`
	Tasks  []string `json:"tasks"`
	Review []string `json:"review"`
}

// Generator produces study material for a topic through the remote
// provider.
type Generator struct {
	remote Remote
}

// NewGenerator creates a generator backed by a remote provider.
func NewGenerator(remote Remote) *Generator {
	return &Generator{remote: remote}
}

// Summary produces a concise markdown summary of the chapter.
func (g *Generator) Summary(ctx context.Context, topic Topic) (string, error) {
	prompt := fmt.Sprintf(
		"Provide a concise summary of the key concepts in the chapter %q for Class %s %s. "+
			"The summary should be easy to understand for a student. Use headings and bullet points.",
		topic.Chapter, topic.Class, topic.Subject)
	return g.remote.GenerateText(ctx, prompt, provider.TierQuality)
}

// Notes produces detailed, structured study notes for the chapter.
func (g *Generator) Notes(ctx context.Context, topic Topic) (string, error) {
	prompt := fmt.Sprintf(
		"Generate detailed study notes for the chapter %q for Class %s %s. "+
			"The notes should be well-structured with clear headings, subheadings, bullet points, "+
			"and definitions. Highlight important formulas or key terms.",
		topic.Chapter, topic.Class, topic.Subject)
	return g.remote.GenerateText(ctx, prompt, provider.TierQuality)
}

// Homework produces five practice questions without answers.
func (g *Generator) Homework(ctx context.Context, topic Topic) (string, error) {
	prompt := fmt.Sprintf(
		"Create a set of 5 homework questions based on the chapter %q for Class %s %s. "+
			"The questions should cover a range of difficulties, from easy to challenging, to test "+
			"the student's understanding. Include a mix of question types (e.g., short answer, "+
			"problem-solving). Do not provide answers.",
		topic.Chapter, topic.Class, topic.Subject)
	return g.remote.GenerateText(ctx, prompt, provider.TierFast)
}

// Flashcards produces ten question/answer flashcards for the chapter.
func (g *Generator) Flashcards(ctx context.Context, topic Topic) ([]Flashcard, error) {
	prompt := fmt.Sprintf(
		"Generate a set of 10 flashcards for the chapter %q for Class %s %s. "+
			"Each flashcard should have a clear question on one side and a concise answer on the "+
			"other. Focus on key definitions, concepts, and formulas. "+
			`Respond with a JSON object of the form {"flashcards": [{"question": "...", "answer": "..."}]}.`,
		topic.Chapter, topic.Class, topic.Subject)

	var payload struct {
		Flashcards []Flashcard `json:"flashcards"`
	}
	if err := g.remote.GenerateStructured(ctx, prompt, &payload); err != nil {
		return nil, err
	}
	if err := validateFlashcards(payload.Flashcards); err != nil {
		return nil, err
	}
	log.Debug("generated flashcards", "chapter", topic.Chapter, "count", len(payload.Flashcards))
	return payload.Flashcards, nil
}

// Quiz produces a ten-question multiple-choice quiz for the chapter.
func (g *Generator) Quiz(ctx context.Context, topic Topic) ([]QuizQuestion, error) {
	prompt := fmt.Sprintf(
		"Create a multiple-choice quiz with 10 questions to test a student's knowledge of the "+
			"chapter %q from the Class %s %s textbook. Each question must have exactly 4 options, "+
			"and one of them must be the correct answer. "+
			`Respond with a JSON object of the form {"questions": [{"question": "...", `+
			`"options": ["...", "...", "...", "..."], "correctAnswer": "..."}]}.`,
		topic.Chapter, topic.Class, topic.Subject)

	var payload struct {
		Questions []QuizQuestion `json:"questions"`
	}
	if err := g.remote.GenerateStructured(ctx, prompt, &payload); err != nil {
		return nil, err
	}
	if err := validateQuiz(payload.Questions); err != nil {
		return nil, err
	}
	log.Debug("generated quiz", "chapter", topic.Chapter, "questions", len(payload.Questions))
	return payload.Questions, nil
}

// StudyPlan produces a balanced seven-day revision plan. The plan is
// generic rather than chapter-bound, matching how students revise across
// subjects before exams.
func (g *Generator) StudyPlan(ctx context.Context) ([]PlanDay, error) {
	prompt := "Create a generic 7-day study plan for a student preparing for exams. The plan " +
		"should be balanced, covering different subjects each day, with time for revision and " +
		"breaks. Structure it day-by-day. For each day, specify a main topic focus, a list of " +
		"tasks, and a review session topic. " +
		`Respond with a JSON object of the form {"days": [{"day": 1, "topic": "...", ` +
		`"tasks": ["..."], "review": ["..."]}]}.`

	var payload struct {
		Days []PlanDay `json:"days"`
	}
	if err := g.remote.GenerateStructured(ctx, prompt, &payload); err != nil {
		return nil, err
	}
	if err := validatePlan(payload.Days); err != nil {
		return nil, err
	}
	return payload.Days, nil
}

// Diagrams produces count educational diagrams for the chapter as base64
// image payloads.
func (g *Generator) Diagrams(ctx context.Context, topic Topic, count int) ([]string, error) {
	prompt := fmt.Sprintf(
		"Generate a clear, simple, and educational diagram illustrating a key concept from the "+
			"chapter %q for a Class %s %s student. For example, for 'Life Processes', a diagram of "+
			"the human digestive system. For 'Chemical Reactions', a diagram showing a type of "+
			"reaction. The style should be a clean, colorful illustration.",
		topic.Chapter, topic.Class, topic.Subject)
	return g.remote.GenerateImages(ctx, prompt, count)
}

// Avatar produces a single profile picture from a free-form prompt,
// returned as a base64 image payload.
func (g *Generator) Avatar(ctx context.Context, prompt string) (string, error) {
	images, err := g.remote.GenerateImages(ctx, prompt, 1)
	if err != nil {
		return "", err
	}
	if len(images) == 0 {
		return "", provider.ErrNoResult
	}
	return images[0], nil
}

func validateFlashcards(cards []Flashcard) error {
	if len(cards) == 0 {
		return fmt.Errorf("%w: no flashcards returned", ErrValidation)
	}
	for i, card := range cards {
		if strings.TrimSpace(card.Question) == "" {
			return fmt.Errorf("%w: flashcard %d has no question", ErrValidation, i+1)
		}
		if strings.TrimSpace(card.Answer) == "" {
			return fmt.Errorf("%w: flashcard %d has no answer", ErrValidation, i+1)
		}
	}
	return nil
}

func validateQuiz(questions []QuizQuestion) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no quiz questions returned", ErrValidation)
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("%w: question %d is empty", ErrValidation, i+1)
		}
		if len(q.Options) != 4 {
			return fmt.Errorf("%w: question %d has %d options, want 4", ErrValidation, i+1, len(q.Options))
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: question %d answer is not among its options", ErrValidation, i+1)
		}
	}
	return nil
}

func validatePlan(days []PlanDay) error {
	if len(days) == 0 {
		return fmt.Errorf("%w: empty study plan", ErrValidation)
	}
	for i, day := range days {
		if day.Day < 1 {
			return fmt.Errorf("%w: day %d has invalid day number %d", ErrValidation, i+1, day.Day)
		}
		if strings.TrimSpace(day.Topic) == "" {
			return fmt.Errorf("%w: day %d has no topic", ErrValidation, day.Day)
		}
		if len(day.Tasks) == 0 {
			return fmt.Errorf("%w: day %d has no tasks", ErrValidation, day.Day)
		}
	}
	return nil
}
