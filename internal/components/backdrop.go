package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Backdrop draws the decorative scene behind the page. It takes no view
// state and produces no events.
type Backdrop interface {
	Backdrop() g.Node
}

// Starfield is a rotating particle field drawn client-side by
// /static/js/starfield.js from the data attributes emitted here.
type Starfield struct {
	Radius          int
	Depth           int
	Count           int
	Factor          float64
	Saturation      float64
	Fade            bool
	Speed           float64
	AutoRotateSpeed float64
	EnableZoom      bool
	Opacity         float64
	Script          string
}

func DefaultStarfield() Starfield {
	return Starfield{
		Radius:          100,
		Depth:           50,
		Count:           5000,
		Factor:          4,
		Saturation:      0,
		Fade:            true,
		Speed:           1,
		AutoRotateSpeed: 0.5,
		EnableZoom:      false,
		Opacity:         0.2,
		Script:          "/static/js/starfield.js",
	}
}

func (s Starfield) Backdrop() g.Node {
	return h.Div(
		h.Class("backdrop fixed top-0 left-0 w-full h-full z-0 pointer-events-none"),
		h.Style("opacity: "+formatFloat(s.Opacity)),
		g.Attr("aria-hidden", "true"),
		h.Canvas(
			h.ID("starfield"),
			h.Class("w-full h-full"),
			h.Data("radius", strconv.Itoa(s.Radius)),
			h.Data("depth", strconv.Itoa(s.Depth)),
			h.Data("count", strconv.Itoa(s.Count)),
			h.Data("factor", formatFloat(s.Factor)),
			h.Data("saturation", formatFloat(s.Saturation)),
			h.Data("fade", strconv.FormatBool(s.Fade)),
			h.Data("speed", formatFloat(s.Speed)),
			h.Data("auto-rotate-speed", formatFloat(s.AutoRotateSpeed)),
			h.Data("enable-zoom", strconv.FormatBool(s.EnableZoom)),
		),
		g.If(s.Script != "", h.Script(h.Src(s.Script), h.Defer())),
	)
}

// NoBackdrop renders nothing.
type NoBackdrop struct{}

func (NoBackdrop) Backdrop() g.Node { return g.Group(nil) }

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
