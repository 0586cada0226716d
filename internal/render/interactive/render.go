// Package interactive renders a Document into a tree of styled display
// nodes for on-screen surfaces.
package interactive

import (
	"strings"

	"github.com/dgallion1/lessonmark/internal/doctree"
)

// Kind identifies a display node.
type Kind string

const (
	KindDocument  Kind = "document"
	KindHeader    Kind = "header"
	KindNumbered  Kind = "numbered_item"
	KindBullet    Kind = "bullet_item"
	KindParagraph Kind = "paragraph"
	KindGap       Kind = "gap"
	KindMarker    Kind = "marker"
	KindContent   Kind = "content"
	KindText      Kind = "text"
	KindBold      Kind = "bold"
	KindMath      Kind = "math"
)

// Node is one display node. Leaf nodes carry Text; container nodes carry
// Children.
type Node struct {
	Kind     Kind    `json:"kind"`
	Element  Element `json:"element"`
	Level    int     `json:"level,omitempty"`
	Text     string  `json:"text,omitempty"`
	Style    Style   `json:"style"`
	Children []*Node `json:"children,omitempty"`
}

// Render builds a fresh node tree for doc. The Document is not modified.
func Render(doc doctree.Document, mode doctree.Mode) *Node {
	mode = mode.Normalize()
	root := &Node{
		Kind:     KindDocument,
		Element:  ElemDocument,
		Style:    StyleFor(ElemDocument, mode),
		Children: make([]*Node, 0, len(doc.Blocks)),
	}
	for _, b := range doc.Blocks {
		root.Children = append(root.Children, renderBlock(b, mode))
	}
	return root
}

func renderBlock(b doctree.Block, mode doctree.Mode) *Node {
	switch b.Kind {
	case doctree.BlockHeader:
		e := headerElement(b.Level)
		return &Node{
			Kind:     KindHeader,
			Element:  e,
			Level:    b.Level,
			Style:    StyleFor(e, mode),
			Children: renderSpans(b.Spans, mode),
		}
	case doctree.BlockNumbered:
		return listItem(KindNumbered, ElemNumbered, ElemNumberMarker, b.Index+".", b.Spans, mode)
	case doctree.BlockBullet:
		return listItem(KindBullet, ElemBullet, ElemBulletMarker, BulletGlyph(mode), b.Spans, mode)
	case doctree.BlockParagraph:
		return &Node{
			Kind:     KindParagraph,
			Element:  ElemParagraph,
			Style:    StyleFor(ElemParagraph, mode),
			Children: renderSpans(b.Spans, mode),
		}
	default:
		return &Node{Kind: KindGap, Element: ElemGap, Style: StyleFor(ElemGap, mode)}
	}
}

func listItem(kind Kind, item, marker Element, markerText string, spans []doctree.Span, mode doctree.Mode) *Node {
	return &Node{
		Kind:    kind,
		Element: item,
		Style:   StyleFor(item, mode),
		Children: []*Node{
			{Kind: KindMarker, Element: marker, Text: markerText, Style: StyleFor(marker, mode)},
			{Kind: KindContent, Element: ElemItemContent, Style: StyleFor(ElemItemContent, mode), Children: renderSpans(spans, mode)},
		},
	}
}

func renderSpans(spans []doctree.Span, mode doctree.Mode) []*Node {
	if len(spans) == 0 {
		return nil
	}
	nodes := make([]*Node, 0, len(spans))
	for _, s := range spans {
		e := spanElement(s.Kind)
		nodes = append(nodes, &Node{Kind: spanKind(s.Kind), Element: e, Text: s.Text, Style: StyleFor(e, mode)})
	}
	return nodes
}

func spanKind(k doctree.SpanKind) Kind {
	switch k {
	case doctree.SpanBold:
		return KindBold
	case doctree.SpanMath:
		return KindMath
	default:
		return KindText
	}
}

// PlainText flattens a node's text content, depth first.
func (n *Node) PlainText() string {
	if len(n.Children) == 0 {
		return n.Text
	}
	sep := ""
	if n.Kind == KindNumbered || n.Kind == KindBullet {
		sep = " "
	}
	var sb strings.Builder
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(c.PlainText())
	}
	return sb.String()
}
