package sections

import (
	"fmt"
	"strings"
)

// Sentinel separates worksheet questions from the answer key.
const Sentinel = "---ANSWER KEY---"

// Sections is one generated stream split into a primary part and an
// optional secondary part.
type Sections struct {
	Primary      string
	Secondary    string
	HasSecondary bool
}

// Split splits raw on the first occurrence of Sentinel.
func Split(raw string) Sections {
	return SplitOn(raw, Sentinel)
}

// SplitOn splits raw on the first occurrence of sentinel. Text on either
// side is returned untrimmed. An empty sentinel never matches.
func SplitOn(raw, sentinel string) Sections {
	if sentinel == "" {
		return Sections{Primary: raw}
	}
	before, after, found := strings.Cut(raw, sentinel)
	if !found {
		return Sections{Primary: raw}
	}
	return Sections{Primary: before, Secondary: after, HasSecondary: true}
}

// View names which section a caller is displaying.
type View string

const (
	ViewQuestions View = "questions"
	ViewAnswers   View = "answers"
)

// ParseView resolves a view name; the empty string means questions.
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case "", ViewQuestions:
		return ViewQuestions, nil
	case ViewAnswers:
		return ViewAnswers, nil
	default:
		return "", fmt.Errorf("unknown view %q (want questions or answers)", s)
	}
}

// Select returns the text for view. ok is false when the answers view is
// requested but the stream has no answer key.
func (s Sections) Select(v View) (text string, ok bool) {
	if v == ViewAnswers {
		return s.Secondary, s.HasSecondary
	}
	return s.Primary, true
}
