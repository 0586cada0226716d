package termview

import (
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/lessonmark/internal/doctree"
	"github.com/dgallion1/lessonmark/internal/parser"
	"github.com/dgallion1/lessonmark/internal/render/interactive"
)

func plain(opts ...Option) *Renderer {
	return New(io.Discard, append([]Option{WithColorProfile(termenv.Ascii)}, opts...)...)
}

func TestRender_WorksheetHeaderUppercaseWithRule(t *testing.T) {
	root := interactive.Render(parser.Parse("# Answer key"), doctree.ModeWorksheet)
	out := plain().Render(root)
	assert.Contains(t, out, "ANSWER KEY")
	assert.Contains(t, out, "─")
}

func TestRender_FeedbackHeaderKeepsCase(t *testing.T) {
	root := interactive.Render(parser.Parse("# Answer key"), doctree.ModeFeedback)
	out := plain().Render(root)
	assert.Contains(t, out, "Answer key")
	assert.NotContains(t, out, "─")
}

func TestRender_ItemsAndSpans(t *testing.T) {
	root := interactive.Render(parser.Parse("3. Add $1+2$ **now**\n- tip"), doctree.ModeWorksheet)
	out := plain().Render(root)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "3.")
	assert.Contains(t, lines[0], "1+2")
	assert.Contains(t, lines[0], "now")
	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "$")
	assert.Contains(t, lines[1], interactive.BulletGlyph(doctree.ModeWorksheet))
}

func TestRender_GapsAreEmptyLines(t *testing.T) {
	root := interactive.Render(parser.Parse("a\n\n\nb"), doctree.ModeFeedback)
	lines := strings.Split(plain().Render(root), "\n")
	require.Len(t, lines, 4)
	assert.Empty(t, lines[1])
	assert.Empty(t, lines[2])
}

func TestRender_WrapsParagraphs(t *testing.T) {
	long := strings.Repeat("word ", 40)
	root := interactive.Render(parser.Parse(long), doctree.ModeFeedback)
	out := plain(WithWidth(30)).Render(root)
	for _, l := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(l)), 30)
	}
	assert.Greater(t, strings.Count(out, "\n"), 1)
}

func TestRender_Nil(t *testing.T) {
	assert.Empty(t, plain().Render(nil))
}

func TestRender_Deterministic(t *testing.T) {
	root := interactive.Render(parser.Parse("# T\n1. $x$\n- **b**\ntext"), doctree.ModeFeedback)
	r := plain(WithWidth(40))
	assert.Equal(t, r.Render(root), r.Render(root))
}
