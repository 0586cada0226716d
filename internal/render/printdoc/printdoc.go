// Package printdoc renders a Document into a complete, self-contained HTML
// document for a print surface.
package printdoc

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dgallion1/lessonmark/internal/doctree"
)

// DateLayout formats Meta.Date in the document header.
const DateLayout = "January 2, 2006"

// Meta is caller-supplied header information.
type Meta struct {
	Title     string    // document <title>
	Heading   string    // large label in the header block
	Topic     string
	Recipient string
	Date      time.Time // omitted when zero
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape replaces &, < and > with their entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

const (
	mathOpen     = `<i style="font-family: 'Times New Roman', serif; font-size: 1.1em; padding: 0 4px;">`
	numberedOpen = `<div style="display:flex; margin-bottom: 10px;"><span style="font-weight:bold; margin-right:10px;">•</span><span>`
)

// Body renders doc's content fragment: one fragment per line joined with
// explicit line breaks. All source text is escaped before any tag is
// emitted around it. Numbered items drop their numerals here.
func Body(doc doctree.Document) string {
	var sb strings.Builder
	for i, b := range doc.Blocks {
		if i > 0 {
			sb.WriteString("<br/>")
		}
		writeBlock(&sb, b)
	}
	return sb.String()
}

func writeBlock(sb *strings.Builder, b doctree.Block) {
	switch b.Kind {
	case doctree.BlockHeader:
		tag := headingTag(b.Level)
		sb.WriteString("<" + tag + ">")
		writeSpans(sb, b.Spans)
		sb.WriteString("</" + tag + ">")
	case doctree.BlockNumbered:
		sb.WriteString(numberedOpen)
		writeSpans(sb, b.Spans)
		sb.WriteString("</span></div>")
	case doctree.BlockBullet:
		sb.WriteString("<li>")
		writeSpans(sb, b.Spans)
		sb.WriteString("</li>")
	case doctree.BlockParagraph:
		writeSpans(sb, b.Spans)
	}
}

func writeSpans(sb *strings.Builder, spans []doctree.Span) {
	for _, s := range spans {
		text := Escape(s.Text)
		switch s.Kind {
		case doctree.SpanBold:
			sb.WriteString("<strong>" + text + "</strong>")
		case doctree.SpanMath:
			sb.WriteString(mathOpen + text + "</i>")
		default:
			sb.WriteString(text)
		}
	}
}

func headingTag(level int) string {
	switch level {
	case 1:
		return "h1"
	case 2:
		return "h2"
	default:
		return "h3"
	}
}

type pageData struct {
	Meta
	Mode    doctree.Mode
	DateStr string
	Content template.HTML
}

// Render returns the full print document for doc. The page asks the print
// surface to print once it has loaded.
func Render(doc doctree.Document, mode doctree.Mode, meta Meta) (string, error) {
	return renderPage(page, doc, mode, meta)
}

func renderPage(tmpl *template.Template, doc doctree.Document, mode doctree.Mode, meta Meta) (string, error) {
	data := pageData{
		Meta: meta,
		Mode: mode.Normalize(),
		// Body escapes every piece of source text itself.
		Content: template.HTML(Body(doc)),
	}
	if !meta.Date.IsZero() {
		data.DateStr = meta.Date.Format(DateLayout)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}
	return buf.String(), nil
}

var page = template.Must(template.New("page").Parse(pageTemplate))

const pageTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
      body { font-family: 'Times New Roman', serif; padding: 40px; line-height: 1.6; color: #000; }
      body.feedback { font-family: system-ui, -apple-system, sans-serif; color: #1f2937; }
      h1, h2, h3 { color: #000; font-family: 'Arial', sans-serif; margin-top: 20px; margin-bottom: 10px; }
      h1 { font-size: 24px; text-transform: uppercase; border-bottom: 1px solid #000; padding-bottom: 5px; }
      h2 { font-size: 20px; text-transform: uppercase; }
      h3 { font-size: 18px; font-style: italic; }
      .header { border-bottom: 2px solid #000; padding-bottom: 10px; margin-bottom: 30px; display: flex; justify-content: space-between; align-items: flex-end; }
      .header-title { font-size: 24px; font-weight: bold; text-transform: uppercase; font-family: 'Arial', sans-serif; }
      .meta { font-size: 14px; font-family: 'Arial', sans-serif; }
      .content { font-size: 16px; }
      strong { font-family: 'Arial', sans-serif; }
    </style>
  </head>
  <body class="{{.Mode}}" onload="window.print()">
    <div class="header">
      <div>
        <div class="header-title">{{.Heading}}</div>
        {{- if .Topic}}
        <div class="meta">Topic: {{.Topic}}</div>
        {{- end}}
      </div>
      <div style="text-align: right;">
        {{- if .Recipient}}
        <div class="meta">Student: {{.Recipient}}</div>
        {{- end}}
        {{- if .DateStr}}
        <div class="meta">Date: {{.DateStr}}</div>
        {{- end}}
      </div>
    </div>
    <div class="content">{{.Content}}</div>
  </body>
</html>
`
