// Package engine ties the splitter, parser and renderers together for the
// HTTP and CLI surfaces.
package engine

import (
	"errors"
	"time"

	"github.com/dgallion1/lessonmark/internal/doctree"
	"github.com/dgallion1/lessonmark/internal/parser"
	"github.com/dgallion1/lessonmark/internal/render/interactive"
	"github.com/dgallion1/lessonmark/internal/render/printdoc"
	"github.com/dgallion1/lessonmark/internal/sections"
)

// ErrNoAnswerKey is returned when the answers view is requested for text
// that has no answer key section.
var ErrNoAnswerKey = errors.New("no answer key section available")

// Request describes one render call.
type Request struct {
	Text string
	Mode doctree.Mode
	View sections.View
}

// Prepared is the selected section parsed into a Document.
type Prepared struct {
	Mode         doctree.Mode
	View         sections.View
	HasAnswerKey bool
	Doc          doctree.Document
}

// Prepare selects the requested view and parses it. Only worksheets are
// split on the answer key sentinel; other modes always use the whole text.
func Prepare(req Request) (Prepared, error) {
	mode := req.Mode.Normalize()
	view := req.View
	if view == "" {
		view = sections.ViewQuestions
	}

	text := req.Text
	hasKey := false
	if mode == doctree.ModeWorksheet {
		s := sections.Split(req.Text)
		hasKey = s.HasSecondary
		var ok bool
		if text, ok = s.Select(view); !ok {
			return Prepared{}, ErrNoAnswerKey
		}
	} else if view == sections.ViewAnswers {
		return Prepared{}, ErrNoAnswerKey
	}

	return Prepared{
		Mode:         mode,
		View:         view,
		HasAnswerKey: hasKey,
		Doc:          parser.Parse(text),
	}, nil
}

// Interactive renders the prepared document as display nodes.
func (p Prepared) Interactive() *interactive.Node {
	return interactive.Render(p.Doc, p.Mode)
}

// Print renders the prepared document as a print page.
func (p Prepared) Print(meta printdoc.Meta) (string, error) {
	return printdoc.Render(p.Doc, p.Mode, p.ResolveMeta(meta))
}

// ResolveMeta fills an empty heading from the mode and view, and an empty
// title from the heading.
func (p Prepared) ResolveMeta(meta printdoc.Meta) printdoc.Meta {
	if meta.Heading == "" {
		meta.Heading = DefaultHeading(p.Mode, p.View)
	}
	if meta.Title == "" {
		meta.Title = meta.Heading
	}
	return meta
}

// DefaultHeading names the print header for a mode and view.
func DefaultHeading(mode doctree.Mode, view sections.View) string {
	switch {
	case mode.Normalize() == doctree.ModeFeedback:
		return "Performance Feedback"
	case view == sections.ViewAnswers:
		return "Answer Key"
	default:
		return "Adaptive Practice Sheet"
	}
}

// Today truncates now to midnight in its own location.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
