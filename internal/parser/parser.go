package parser

import (
	"fmt"
	"io"

	"github.com/dgallion1/lessonmark/internal/doctree"
)

// Parse builds a Document from raw generated text. It never fails: unknown
// constructs degrade to paragraphs and empty input yields an empty Document.
func Parse(raw string) doctree.Document {
	return Build(Classify(raw))
}

// Build pairs each classified line with its parsed spans, in source order.
// Each line is parsed independently.
func Build(lines []Line) doctree.Document {
	doc := doctree.Document{Blocks: make([]doctree.Block, 0, len(lines))}
	for _, l := range lines {
		b := doctree.Block{Kind: l.Kind, Level: l.Level, Index: l.Index}
		if l.Kind != doctree.BlockBlank {
			b.Spans = ParseSpans(l.Text)
		}
		doc.Blocks = append(doc.Blocks, b)
	}
	return doc
}

// ParseReader reads r to the end and parses its contents.
func ParseReader(r io.Reader) (doctree.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return doctree.Document{}, fmt.Errorf("read input: %w", err)
	}
	return Parse(string(src)), nil
}
