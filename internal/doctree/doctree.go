package doctree

import (
	"fmt"
	"strings"
)

// SpanKind tags an inline run of text.
type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanMath
)

func (k SpanKind) String() string {
	switch k {
	case SpanBold:
		return "bold"
	case SpanMath:
		return "math"
	default:
		return "plain"
	}
}

// Span is a contiguous run of inline text. Text excludes the delimiters.
type Span struct {
	Kind SpanKind
	Text string
}

// Plain, Bold and Math build spans of the matching kind.
func Plain(s string) Span { return Span{Kind: SpanPlain, Text: s} }
func Bold(s string) Span  { return Span{Kind: SpanBold, Text: s} }
func Math(s string) Span  { return Span{Kind: SpanMath, Text: s} }

// BlockKind tags a single source line.
type BlockKind int

const (
	BlockBlank BlockKind = iota
	BlockHeader
	BlockNumbered
	BlockBullet
	BlockParagraph
)

func (k BlockKind) String() string {
	switch k {
	case BlockHeader:
		return "header"
	case BlockNumbered:
		return "numbered_item"
	case BlockBullet:
		return "bullet_item"
	case BlockParagraph:
		return "paragraph"
	default:
		return "blank"
	}
}

// Block is one line of document structure.
type Block struct {
	Kind  BlockKind
	Level int    // 1..3, headers only
	Index string // literal numeral text, numbered items only
	Spans []Span // nil for blank lines
}

// Text returns the block's inline text with delimiters removed.
func (b Block) Text() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Document is the ordered sequence of blocks parsed from one raw string.
// Order is source order; blocks are never merged or reordered.
type Document struct {
	Blocks []Block
}

// Len reports the number of blocks.
func (d Document) Len() int { return len(d.Blocks) }

// Mode selects presentation styling. It never changes structure.
type Mode string

const (
	ModeFeedback  Mode = "feedback"
	ModeWorksheet Mode = "worksheet"
)

// ParseMode resolves a mode name. The empty string maps to fallback.
func ParseMode(s string, fallback Mode) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return fallback, nil
	case ModeFeedback:
		return ModeFeedback, nil
	case ModeWorksheet:
		return ModeWorksheet, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want feedback or worksheet)", s)
	}
}

// Normalize maps unknown modes to ModeFeedback.
func (m Mode) Normalize() Mode {
	if m == ModeWorksheet {
		return ModeWorksheet
	}
	return ModeFeedback
}
