package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Stroke icons drawn on a 24x24 grid.
var icons = map[string][]g.Node{
	"github": {
		svgPath("M9 19c-5 1.5-5-2.5-7-3m14 6v-3.87a3.37 3.37 0 0 0-.94-2.61c3.14-.35 6.44-1.54 6.44-7A5.44 5.44 0 0 0 20 4.77 5.07 5.07 0 0 0 19.91 1S18.73.65 16 2.48a13.38 13.38 0 0 0-7 0C6.27.65 5.09 1 5.09 1A5.07 5.07 0 0 0 5 4.77a5.44 5.44 0 0 0-1.5 3.78c0 5.42 3.3 6.61 6.44 7A3.37 3.37 0 0 0 9 18.13V22"),
	},
	"linkedin": {
		svgPath("M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z"),
		g.El("rect", g.Attr("x", "2"), g.Attr("y", "9"), g.Attr("width", "4"), g.Attr("height", "12")),
		g.El("circle", g.Attr("cx", "4"), g.Attr("cy", "4"), g.Attr("r", "2")),
	},
	"mail": {
		svgPath("M4 4h16c1.1 0 2 .9 2 2v12c0 1.1-.9 2-2 2H4c-1.1 0-2-.9-2-2V6c0-1.1.9-2 2-2z"),
		g.El("polyline", g.Attr("points", "22,6 12,13 2,6")),
	},
	"sun": {
		g.El("circle", g.Attr("cx", "12"), g.Attr("cy", "12"), g.Attr("r", "5")),
		svgPath("M12 1v2M12 21v2M4.22 4.22l1.42 1.42M18.36 18.36l1.42 1.42M1 12h2M21 12h2M4.22 19.78l1.42-1.42M18.36 5.64l1.42-1.42"),
	},
	"moon": {
		svgPath("M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"),
	},
	"code": {
		g.El("polyline", g.Attr("points", "16 18 22 12 16 6")),
		g.El("polyline", g.Attr("points", "8 6 2 12 8 18")),
	},
	"database": {
		g.El("ellipse", g.Attr("cx", "12"), g.Attr("cy", "5"), g.Attr("rx", "9"), g.Attr("ry", "3")),
		svgPath("M21 12c0 1.66-4 3-9 3s-9-1.34-9-3"),
		svgPath("M3 5v14c0 1.66 4 3 9 3s9-1.34 9-3V5"),
	},
	"server": {
		g.El("rect", g.Attr("x", "2"), g.Attr("y", "2"), g.Attr("width", "20"), g.Attr("height", "8"), g.Attr("rx", "2")),
		g.El("rect", g.Attr("x", "2"), g.Attr("y", "14"), g.Attr("width", "20"), g.Attr("height", "8"), g.Attr("rx", "2")),
		svgPath("M6 6h.01M6 18h.01"),
	},
}

func svgPath(d string) g.Node {
	return g.El("path", g.Attr("d", d))
}

// HasIcon reports whether name is a built-in icon.
func HasIcon(name string) bool {
	_, ok := icons[name]
	return ok
}

// Icon renders the named built-in icon as inline SVG, or nothing for an
// unknown name.
func Icon(name, class string) g.Node {
	shapes, ok := icons[name]
	if !ok {
		return g.Group(nil)
	}
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.If(class != "", h.Class(class)),
		g.Group(shapes),
	)
}
