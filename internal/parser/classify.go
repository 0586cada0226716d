package parser

import (
	"strings"

	"github.com/dgallion1/lessonmark/internal/doctree"
)

// maxHeaderLevel is the deepest header level; deeper markers clamp to it.
const maxHeaderLevel = 3

// Line is one classified source line. Text holds the residual content
// after marker stripping, ready for inline parsing.
type Line struct {
	Kind  doctree.BlockKind
	Level int
	Index string
	Text  string
}

// Classify splits raw text on newlines and tags every line with a block kind.
// Empty lines are preserved as blanks; empty input yields no lines.
func Classify(raw string) []Line {
	if raw == "" {
		return nil
	}
	rawLines := strings.Split(raw, "\n")
	lines := make([]Line, 0, len(rawLines))
	for _, l := range rawLines {
		lines = append(lines, classifyLine(l))
	}
	return lines
}

func classifyLine(line string) Line {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Line{Kind: doctree.BlockBlank}
	}
	if l, ok := headerLine(trimmed); ok {
		return l
	}
	if l, ok := numberedLine(trimmed); ok {
		return l
	}
	if l, ok := bulletLine(trimmed); ok {
		return l
	}
	return Line{Kind: doctree.BlockParagraph, Text: line}
}

// headerLine matches a run of '#' followed by text. A bare "###" is not a header.
func headerLine(trimmed string) (Line, bool) {
	n := 0
	for n < len(trimmed) && trimmed[n] == '#' {
		n++
	}
	if n == 0 {
		return Line{}, false
	}
	text := strings.TrimPrefix(trimmed[n:], " ")
	if strings.TrimSpace(text) == "" {
		return Line{}, false
	}
	return Line{Kind: doctree.BlockHeader, Level: min(n, maxHeaderLevel), Text: text}, true
}

// numberedLine matches ^\d+\. and keeps the digit run verbatim.
func numberedLine(trimmed string) (Line, bool) {
	n := 0
	for n < len(trimmed) && trimmed[n] >= '0' && trimmed[n] <= '9' {
		n++
	}
	if n == 0 || n >= len(trimmed) || trimmed[n] != '.' {
		return Line{}, false
	}
	return Line{
		Kind:  doctree.BlockNumbered,
		Index: trimmed[:n],
		Text:  strings.TrimPrefix(trimmed[n+1:], " "),
	}, true
}

func bulletLine(trimmed string) (Line, bool) {
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return Line{Kind: doctree.BlockBullet, Text: trimmed[2:]}, true
	}
	return Line{}, false
}
