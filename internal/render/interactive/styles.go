package interactive

import "github.com/dgallion1/lessonmark/internal/doctree"

// Style is a resolved presentation descriptor. UI layers map it onto
// whatever styling primitives they have.
type Style struct {
	Font        string `json:"font,omitempty"`   // sans, serif, mono
	Size        string `json:"size,omitempty"`   // sm, base, lg, xl
	Weight      string `json:"weight,omitempty"` // normal, medium, semibold, bold
	Italic      bool   `json:"italic,omitempty"`
	Underline   bool   `json:"underline,omitempty"`
	Uppercase   bool   `json:"uppercase,omitempty"`
	Color       string `json:"color,omitempty"`
	Background  string `json:"background,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	Boxed       bool   `json:"boxed,omitempty"`
	RuleBelow   bool   `json:"rule_below,omitempty"`
	LineSpacing string `json:"line_spacing,omitempty"` // tight, relaxed, loose
	MarginTop   int    `json:"margin_top,omitempty"`
	MarginBelow int    `json:"margin_below,omitempty"`
	Indent      int    `json:"indent,omitempty"`
}

// Element names a styled part of the rendered tree.
type Element string

const (
	ElemDocument     Element = "document"
	ElemHeader1      Element = "header1"
	ElemHeader2      Element = "header2"
	ElemHeader3      Element = "header3"
	ElemNumbered     Element = "numbered_item"
	ElemNumberMarker Element = "number_marker"
	ElemBullet       Element = "bullet_item"
	ElemBulletMarker Element = "bullet_marker"
	ElemItemContent  Element = "item_content"
	ElemParagraph    Element = "paragraph"
	ElemGap          Element = "gap"
	ElemText         Element = "text"
	ElemBold         Element = "bold"
	ElemMath         Element = "math"
)

// Palette.
const (
	indigo900 = "#312e81"
	indigo800 = "#3730a3"
	indigo700 = "#4338ca"
	indigo600 = "#4f46e5"
	indigo500 = "#6366f1"
	indigo100 = "#e0e7ff"
	indigo50  = "#eef2ff"
	gray800   = "#1f2937"
	black     = "#000000"
)

type styleKey struct {
	elem Element
	mode doctree.Mode
}

var styleTable = map[styleKey]Style{
	{ElemDocument, doctree.ModeFeedback}:  {Font: "sans", Color: gray800},
	{ElemDocument, doctree.ModeWorksheet}: {Font: "serif", Color: black},

	{ElemHeader1, doctree.ModeFeedback}: {Size: "xl", Weight: "bold", Color: indigo800, MarginTop: 4},
	{ElemHeader2, doctree.ModeFeedback}: {Size: "lg", Weight: "semibold", Color: indigo700, MarginTop: 3},
	{ElemHeader3, doctree.ModeFeedback}: {Size: "base", Weight: "medium", Color: indigo600, MarginTop: 2},

	{ElemHeader1, doctree.ModeWorksheet}: {Font: "sans", Size: "xl", Weight: "bold", Uppercase: true, RuleBelow: true, BorderColor: black, MarginTop: 6},
	{ElemHeader2, doctree.ModeWorksheet}: {Font: "sans", Size: "lg", Weight: "bold", Uppercase: true, MarginTop: 4},
	{ElemHeader3, doctree.ModeWorksheet}: {Font: "sans", Size: "base", Weight: "bold", Uppercase: true, Underline: true, MarginTop: 2},

	{ElemNumbered, doctree.ModeFeedback}:  {MarginBelow: 3},
	{ElemNumbered, doctree.ModeWorksheet}: {MarginBelow: 3, Indent: 2},

	{ElemNumberMarker, doctree.ModeFeedback}:  {Weight: "bold"},
	{ElemNumberMarker, doctree.ModeWorksheet}: {Weight: "bold"},

	{ElemBullet, doctree.ModeFeedback}:  {MarginBelow: 2, Indent: 4},
	{ElemBullet, doctree.ModeWorksheet}: {MarginBelow: 2, Indent: 4},

	{ElemBulletMarker, doctree.ModeFeedback}:  {Color: indigo500},
	{ElemBulletMarker, doctree.ModeWorksheet}: {Color: black},

	{ElemItemContent, doctree.ModeFeedback}:  {},
	{ElemItemContent, doctree.ModeWorksheet}: {},

	{ElemParagraph, doctree.ModeFeedback}:  {LineSpacing: "relaxed", MarginBelow: 2},
	{ElemParagraph, doctree.ModeWorksheet}: {Font: "serif", LineSpacing: "loose", MarginBelow: 4},

	{ElemGap, doctree.ModeFeedback}:  {MarginBelow: 1},
	{ElemGap, doctree.ModeWorksheet}: {MarginBelow: 1},

	{ElemText, doctree.ModeFeedback}:  {},
	{ElemText, doctree.ModeWorksheet}: {},

	{ElemBold, doctree.ModeFeedback}:  {Weight: "semibold", Color: indigo900},
	{ElemBold, doctree.ModeWorksheet}: {Weight: "bold"},

	{ElemMath, doctree.ModeFeedback}:  {Font: "mono", Size: "sm", Color: indigo700, Background: indigo50, BorderColor: indigo100, Boxed: true},
	{ElemMath, doctree.ModeWorksheet}: {Font: "serif", Size: "lg", Weight: "medium", Italic: true},
}

var bulletGlyphs = map[doctree.Mode]string{
	doctree.ModeFeedback:  "▸",
	doctree.ModeWorksheet: "•",
}

// StyleFor returns the style descriptor for an element in a mode. Unknown
// modes resolve as feedback.
func StyleFor(e Element, m doctree.Mode) Style {
	return styleTable[styleKey{e, m.Normalize()}]
}

// BulletGlyph returns the bullet marker for a mode.
func BulletGlyph(m doctree.Mode) string {
	return bulletGlyphs[m.Normalize()]
}

func headerElement(level int) Element {
	switch level {
	case 1:
		return ElemHeader1
	case 2:
		return ElemHeader2
	default:
		return ElemHeader3
	}
}

func spanElement(k doctree.SpanKind) Element {
	switch k {
	case doctree.SpanBold:
		return ElemBold
	case doctree.SpanMath:
		return ElemMath
	default:
		return ElemText
	}
}
