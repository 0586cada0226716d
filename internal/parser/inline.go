package parser

import (
	"strings"

	"github.com/dgallion1/lessonmark/internal/doctree"
)

const (
	mathDelim = "$"
	boldDelim = "**"
)

// ParseSpans splits one line of marker-stripped text into plain, bold and
// math spans. The spans cover the input with no gaps; unterminated
// delimiters stay in the text as literal characters.
//
// At each position a math run is tried before a bold run. Whichever opens
// first owns its content, so delimiters of the other kind inside it are
// inert.
func ParseSpans(text string) []doctree.Span {
	if text == "" {
		return nil
	}

	var spans []doctree.Span
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, doctree.Plain(plain.String()))
			plain.Reset()
		}
	}

	for i := 0; i < len(text); {
		if content, end, ok := delimited(text, i, mathDelim); ok {
			flush()
			spans = append(spans, doctree.Math(content))
			i = end
			continue
		}
		if content, end, ok := delimited(text, i, boldDelim); ok {
			flush()
			spans = append(spans, doctree.Bold(content))
			i = end
			continue
		}
		// A failed opener is literal text; skip the whole delimiter.
		step := 1
		if strings.HasPrefix(text[i:], boldDelim) {
			step = len(boldDelim)
		}
		plain.WriteString(text[i : i+step])
		i += step
	}
	flush()
	return spans
}

// delimited reports whether a run opened by delim starts at pos and is
// closed by the next occurrence of delim with non-empty content between.
func delimited(text string, pos int, delim string) (content string, end int, ok bool) {
	if !strings.HasPrefix(text[pos:], delim) {
		return "", 0, false
	}
	start := pos + len(delim)
	closeAt := strings.Index(text[start:], delim)
	if closeAt <= 0 {
		return "", 0, false
	}
	return text[start : start+closeAt], start + closeAt + len(delim), true
}
