package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vivancedata/site/internal/icon"
)

// Banner renders the hero section. Entrance animations are CSS only
// (see static/site.css); content is visible without them.
func Banner() g.Node {
	return h.Div(h.Class("banner relative w-full overflow-hidden bg-gradient-to-r from-blue-900 via-indigo-900 to-purple-900 text-white"),
		h.Div(h.Class("absolute inset-0 bg-gradient-to-b from-transparent to-blue-900/50")),
		h.Div(h.Class("container relative mx-auto px-6 py-24 md:py-32 lg:py-40"),
			h.Div(h.Class("grid grid-cols-1 gap-12 md:grid-cols-2 md:gap-8"),
				h.Div(h.Class("flex flex-col justify-center space-y-8 animate-slide-in"),
					h.Div(
						h.Div(h.Class("inline-flex items-center rounded-full bg-white/10 px-4 py-2 backdrop-blur-sm mb-6 animate-rise delay-200"),
							icon.Sparkles.Node("h-4 w-4 mr-2 text-blue-300"),
							h.Span(h.Class("text-sm font-medium text-blue-100"), g.Text("AI-Powered Solutions")),
						),
						h.H1(h.Class("mb-6 text-5xl font-extrabold tracking-tight sm:text-6xl md:text-7xl leading-tight animate-rise delay-300"),
							g.Text("Transform Your "),
							h.Span(h.Class("bg-clip-text text-transparent bg-gradient-to-r from-blue-400 to-purple-400"),
								g.Text("Business"),
							),
							g.Text(" with AI"),
						),
						h.P(h.Class("mt-6 max-w-lg text-xl text-blue-100 leading-relaxed animate-rise delay-400"),
							g.Text("Unlock the power of artificial intelligence to drive innovation, efficiency, and growth for your organization."),
						),
					),
					h.Div(h.Class("flex flex-col space-y-4 sm:flex-row sm:space-x-4 sm:space-y-0 animate-rise delay-500"),
						h.A(h.Href("/contact"),
							h.Class("group inline-flex items-center rounded-md bg-gradient-to-r from-blue-500 to-indigo-500 hover:from-blue-600 hover:to-indigo-600 shadow-lg shadow-blue-500/25 px-6 py-4 text-lg"),
							h.Span(g.Text("Get Started")),
							icon.ChevronRight.Node("ml-2 h-5 w-5 transition-transform duration-300 group-hover:translate-x-1"),
						),
						h.A(h.Href("/about"),
							h.Class("inline-flex items-center rounded-md border border-white/30 hover:bg-white/10 backdrop-blur-sm px-6 py-4 text-lg"),
							g.Text("Learn More"),
						),
					),
				),
				h.Div(h.Class("flex items-center justify-center animate-zoom-in delay-300"),
					h.Div(h.Class("relative h-72 w-full max-w-md rounded-2xl bg-white/10 p-6 backdrop-blur-md sm:h-80 md:h-96 border border-white/20 shadow-2xl"),
						h.Div(h.Class("relative z-10 flex h-full w-full items-center justify-center rounded-xl border border-white/20 bg-white/5 p-8"),
							h.Div(h.Class("text-center animate-rise delay-600"),
								h.H3(h.Class("mb-4 text-2xl font-bold"), g.Text("Schedule a Demo")),
								h.P(h.Class("mb-8 text-blue-100 text-lg"),
									g.Text("See how our AI solutions can transform your business operations."),
								),
								h.A(h.Href("/contact"),
									h.Class("group inline-flex items-center rounded-md bg-white text-blue-900 hover:bg-blue-50 shadow-lg px-4 py-2"),
									h.Span(g.Text("Book Now")),
									icon.ChevronRight.Node("ml-2 h-4 w-4 transition-transform group-hover:translate-x-1"),
								),
							),
						),
					),
				),
			),
		),
	)
}
