// Package termview draws interactive display nodes on a terminal using
// lipgloss. It is one consumer of the interactive style descriptors.
package termview

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dgallion1/lessonmark/internal/render/interactive"
)

// Renderer converts node trees into styled terminal text.
type Renderer struct {
	lg    *lipgloss.Renderer
	width int
	upper cases.Caser
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth wraps paragraphs and items at width columns. Zero disables wrapping.
func WithWidth(width int) Option {
	return func(r *Renderer) { r.width = width }
}

// WithColorProfile forces a color profile instead of detecting one from w.
func WithColorProfile(p termenv.Profile) Option {
	return func(r *Renderer) { r.lg.SetColorProfile(p) }
}

// New returns a Renderer for output written to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		lg:    lipgloss.NewRenderer(w),
		upper: cases.Upper(language.Und),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Render draws root and all of its block children, one block per line.
func (r *Renderer) Render(root *interactive.Node) string {
	if root == nil {
		return ""
	}
	lines := make([]string, 0, len(root.Children))
	for _, b := range root.Children {
		lines = append(lines, r.block(b, root.Style))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) block(n *interactive.Node, base interactive.Style) string {
	switch n.Kind {
	case interactive.KindGap:
		return ""
	case interactive.KindNumbered, interactive.KindBullet:
		return r.item(n, base)
	default:
		text := r.inline(n.Children, n.Style.Uppercase)
		st := r.style(n.Style, base)
		if n.Kind == interactive.KindParagraph && r.width > 0 {
			st = st.Width(r.width)
		}
		if n.Style.RuleBelow {
			st = st.Border(lipgloss.NormalBorder(), false, false, true, false)
			if n.Style.BorderColor != "" {
				st = st.BorderForeground(lipgloss.Color(n.Style.BorderColor))
			}
		}
		return st.Render(text)
	}
}

func (r *Renderer) item(n *interactive.Node, base interactive.Style) string {
	var marker, content string
	for _, c := range n.Children {
		switch c.Kind {
		case interactive.KindMarker:
			marker = r.style(c.Style, interactive.Style{}).Render(c.Text)
		case interactive.KindContent:
			st := r.style(c.Style, base)
			if r.width > 0 {
				w := r.width - n.Style.Indent - lipgloss.Width(marker) - 1
				if w > 0 {
					st = st.Width(w)
				}
			}
			content = st.Render(r.inline(c.Children, false))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, marker, " ", content)
	return r.lg.NewStyle().PaddingLeft(n.Style.Indent).Render(row)
}

func (r *Renderer) inline(spans []*interactive.Node, upper bool) string {
	var sb strings.Builder
	for _, s := range spans {
		text := s.Text
		if upper {
			text = r.upper.String(text)
		}
		st := r.style(s.Style, interactive.Style{})
		if s.Style.Boxed {
			st = st.Padding(0, 1)
		}
		sb.WriteString(st.Render(text))
	}
	return sb.String()
}

// style maps a descriptor onto a lipgloss style. Colors fall back to base.
func (r *Renderer) style(s, base interactive.Style) lipgloss.Style {
	st := r.lg.NewStyle()
	switch s.Weight {
	case "bold", "semibold":
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if c := firstNonEmpty(s.Color, base.Color); c != "" {
		st = st.Foreground(lipgloss.Color(c))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	return st
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
