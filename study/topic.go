// Package study holds the curriculum catalog and the generators that turn
// a chosen chapter into study material.
package study

import (
	"errors"
	"fmt"
	"sort"
)

// Topic identifies a single chapter within the curriculum.
type Topic struct {
	Class   string `json:"class"`
	Subject string `json:"subject"`
	Book    string `json:"book"`
	Chapter string `json:"chapter"`
}

// String renders the topic for logs and window titles.
func (t Topic) String() string {
	return fmt.Sprintf("Class %s %s (%s): %s", t.Class, t.Subject, t.Book, t.Chapter)
}

// Validate checks that every field is set and the chapter exists in the
// catalog.
func (t Topic) Validate() error {
	if t.Class == "" || t.Subject == "" || t.Book == "" || t.Chapter == "" {
		return errors.New("topic requires class, subject, book and chapter")
	}
	for _, chapter := range Chapters(t.Class, t.Subject, t.Book) {
		if chapter == t.Chapter {
			return nil
		}
	}
	return fmt.Errorf("unknown chapter %q in %s %s (%s)", t.Chapter, t.Class, t.Subject, t.Book)
}

// Classes returns the class levels in the catalog, lowest first.
func Classes() []string {
	out := make([]string, 0, len(catalog))
	for class := range catalog {
		out = append(out, class)
	}
	sort.Slice(out, func(i, j int) bool {
		return len(out[i]) < len(out[j]) || (len(out[i]) == len(out[j]) && out[i] < out[j])
	})
	return out
}

// Subjects returns the subjects offered for a class, sorted.
func Subjects(class string) []string {
	subjects, ok := catalog[class]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(subjects))
	for subject := range subjects {
		out = append(out, subject)
	}
	sort.Strings(out)
	return out
}

// Books returns the textbooks for a class and subject, sorted.
func Books(class, subject string) []string {
	books, ok := catalog[class][subject]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(books))
	for book := range books {
		out = append(out, book)
	}
	sort.Strings(out)
	return out
}

// Chapters returns the chapters of a textbook in reading order.
func Chapters(class, subject, book string) []string {
	chapters := catalog[class][subject][book]
	out := make([]string, len(chapters))
	copy(out, chapters)
	return out
}
