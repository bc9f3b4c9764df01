package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Meertayyab/portfolio/internal/content"
)

// ProjectList renders one card per project, in order.
func ProjectList(projects []content.Project, dark bool) g.Node {
	return h.Div(
		h.Class("project-list grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
		g.Map(projects, func(p content.Project) g.Node {
			return ProjectCard(p, dark)
		}),
	)
}

// ProjectCard renders a single project. The image is drawn only when the
// project carries one; the title overlay is always present.
func ProjectCard(p content.Project, dark bool) g.Node {
	cardClass, descClass, techClass, linkClass := "bg-white", "text-gray-600", "bg-blue-100 text-blue-800", "bg-gray-200 hover:bg-gray-300"
	if dark {
		cardClass, descClass, techClass, linkClass = "bg-gray-800", "text-gray-300", "bg-gray-700 text-blue-400", "bg-gray-700 hover:bg-gray-600"
	}

	return h.Article(
		h.Class("project-card rounded-lg overflow-hidden shadow-lg "+cardClass),
		h.Div(
			h.Class("h-48 overflow-hidden flex items-center justify-center relative"),
			g.Iff(p.Image != nil, func() g.Node {
				return h.Img(
					h.Src(p.Image.Src),
					h.Alt(p.Image.Alt),
					g.Attr("loading", "lazy"),
					h.Class("absolute inset-0 w-full h-full object-cover"),
				)
			}),
			h.Div(
				h.Class("project-overlay absolute inset-0 bg-black/20 flex items-center justify-center"),
				h.Span(h.Class("text-white text-xl font-medium drop-shadow-lg"), g.Text(p.Title)),
			),
		),
		h.Div(
			h.Class("p-6"),
			h.H3(h.Class("text-2xl font-semibold mb-2"), g.Text(p.Title)),
			h.P(h.Class("mb-4 "+descClass), g.Text(p.Description)),
			h.Div(
				h.Class("flex flex-wrap gap-2 mb-4"),
				g.Map(p.Technologies, func(tech string) g.Node {
					return h.Span(h.Class("tech px-2 py-1 rounded text-xs font-medium "+techClass), g.Text(tech))
				}),
			),
			h.A(
				h.Href(p.Link),
				h.Target("_blank"),
				h.Rel("noopener noreferrer"),
				h.Class("inline-block px-4 py-2 rounded-md "+linkClass),
				g.Text("View on GitHub"),
			),
		),
	)
}
