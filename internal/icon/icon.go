// Package icon holds the vector glyphs used across the site and the resolver
// that maps a social link's symbolic tag to its glyph.
package icon

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DefaultClass is the sizing applied when a glyph is rendered directly.
const DefaultClass = "h-5 w-5"

// Glyph is an icon handle: an inline 24x24 stroke SVG.
// Handles are compared by pointer; use the package-level values.
type Glyph struct {
	name   string
	shapes []g.Node
}

// Name returns the glyph's symbolic name, e.g. "github".
func (gl *Glyph) Name() string { return gl.name }

// Node renders the glyph with the given CSS classes.
func (gl *Glyph) Node(class string) g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", "24"),
		g.Attr("height", "24"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", gl.name),
		h.Class(class),
		g.Group(gl.shapes),
	)
}

// Render implements gomponents.Node at DefaultClass size.
func (gl *Glyph) Render(w io.Writer) error {
	return gl.Node(DefaultClass).Render(w)
}

func path(d string) g.Node {
	return g.El("path", g.Attr("d", d))
}

func rect(width, height, x, y, rx string) g.Node {
	return g.El("rect",
		g.Attr("width", width),
		g.Attr("height", height),
		g.Attr("x", x),
		g.Attr("y", y),
		g.If(rx != "", g.Attr("rx", rx)),
	)
}

func circle(cx, cy, r string) g.Node {
	return g.El("circle", g.Attr("cx", cx), g.Attr("cy", cy), g.Attr("r", r))
}

var (
	LinkedIn = &Glyph{name: "linkedin", shapes: []g.Node{
		path("M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z"),
		rect("4", "12", "2", "9", ""),
		circle("4", "4", "2"),
	}}

	Twitter = &Glyph{name: "twitter", shapes: []g.Node{
		path("M22 4s-.7 2.1-2 3.4c1.6 10-9.4 17.3-18 11.6 2.2.1 4.4-.6 6-2C3 15.5.5 9.6 3 5c2.2 2.6 5.6 4.1 9 4-.9-4.2 4-6.6 7-3.8 1.1 0 3-1.2 3-1.2z"),
	}}

	Facebook = &Glyph{name: "facebook", shapes: []g.Node{
		path("M18 2h-3a5 5 0 0 0-5 5v3H7v4h3v8h4v-8h3l1-4h-4V7a1 1 0 0 1 1-1h3z"),
	}}

	Instagram = &Glyph{name: "instagram", shapes: []g.Node{
		rect("20", "20", "2", "2", "5"),
		path("M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"),
		path("M17.5 6.5h.01"),
	}}

	GitHub = &Glyph{name: "github", shapes: []g.Node{
		path("M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"),
		path("M9 18c-4.51 2-5-2-7-2"),
	}}

	Mail = &Glyph{name: "mail", shapes: []g.Node{
		rect("20", "16", "2", "4", "2"),
		path("m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"),
	}}

	MapPin = &Glyph{name: "map-pin", shapes: []g.Node{
		path("M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"),
		circle("12", "10", "3"),
	}}

	Phone = &Glyph{name: "phone", shapes: []g.Node{
		path("M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z"),
	}}

	Sparkles = &Glyph{name: "sparkles", shapes: []g.Node{
		path("m12 3-1.912 5.813a2 2 0 0 1-1.275 1.275L3 12l5.813 1.912a2 2 0 0 1 1.275 1.275L12 21l1.912-5.813a2 2 0 0 1 1.275-1.275L21 12l-5.813-1.912a2 2 0 0 1-1.275-1.275L12 3Z"),
		path("M5 3v4"),
		path("M19 17v4"),
		path("M3 5h4"),
		path("M17 19h4"),
	}}

	ChevronRight = &Glyph{name: "chevron-right", shapes: []g.Node{
		path("m9 18 6-6-6-6"),
	}}
)
