// Package components renders the small presentational pieces of the page as
// gomponents nodes. Every function here is a pure function of its arguments.
package components

import (
	"fmt"
	"html/template"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Meertayyab/portfolio/internal/content"
)

// SkillIcon renders icon above a name label. A built-in SVG icon named by
// icon.Name wins over the text glyph.
func SkillIcon(icon content.Icon, name string) g.Node {
	var glyph g.Node
	if HasIcon(icon.Name) {
		glyph = Icon(icon.Name, icon.Class)
	} else {
		glyph = h.Div(h.Class(icon.Class), g.Text(icon.Text))
	}
	return h.Div(
		h.Class("skill-icon flex flex-col items-center"),
		glyph,
		h.Span(h.Class("text-sm mt-1"), g.Text(name)),
	)
}

// SkillBar renders a labelled percentage bar. The fill grows from zero to
// level via the skill-bar-fill CSS animation; level is emitted unclamped.
func SkillBar(name string, level int, dark bool) g.Node {
	labelClass, pctClass, trackClass, fillClass := "text-gray-700", "text-gray-500", "bg-gray-200", "bg-blue-600"
	if dark {
		labelClass, pctClass, trackClass, fillClass = "text-gray-300", "text-gray-400", "bg-gray-700", "bg-blue-500"
	}
	return h.Div(
		h.Class("skill-bar"),
		h.Div(
			h.Class("flex justify-between mb-1"),
			h.Span(h.Class("text-sm font-medium "+labelClass), g.Text(name)),
			h.Span(h.Class("skill-bar-level text-xs "+pctClass), g.Textf("%d%%", level)),
		),
		h.Div(
			h.Class("w-full rounded-full h-2.5 "+trackClass),
			h.Div(
				h.Class("skill-bar-fill h-2.5 rounded-full "+fillClass),
				h.Data("level", fmt.Sprint(level)),
				h.Style(fmt.Sprintf("width: %d%%", level)),
			),
		),
	)
}

// HTML renders n for use inside an html/template.
func HTML(n g.Node) (template.HTML, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}
