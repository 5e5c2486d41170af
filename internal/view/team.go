package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vivancedata/site/internal/content"
	"github.com/vivancedata/site/internal/icon"
)

// Team renders the "Meet Our Team" section, one card per member.
func Team(members []content.TeamMember) g.Node {
	return h.Section(h.ID("team"), h.Class("w-full py-16 md:py-24 bg-gray-50"),
		h.Div(h.Class("container mx-auto px-4"),
			h.Div(h.Class("text-center mb-12"),
				h.Div(h.Class("inline-block rounded-full bg-blue-100 px-3 py-1 text-sm font-medium text-blue-800 mb-4"),
					g.Text("Our Experts"),
				),
				h.H2(h.Class("text-3xl md:text-4xl font-bold mb-4"), g.Text("Meet Our Team")),
				h.P(h.Class("text-gray-600 max-w-2xl mx-auto"),
					g.Text("Our team of AI experts brings together decades of experience across research, industry, and academia to deliver cutting-edge solutions."),
				),
			),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(members, teamCard),
			),
		),
	)
}

func teamCard(m content.TeamMember) g.Node {
	return h.Article(
		h.Class("team-card overflow-hidden rounded-xl bg-white shadow-md hover:shadow-xl transition-all duration-300 hover:-translate-y-1"),
		h.Div(h.Class("bg-gradient-to-r from-blue-600 to-indigo-600 h-24 flex items-center justify-center"),
			avatar(m),
		),
		h.Div(h.Class("pt-16 p-6 text-center"),
			h.H3(h.Class("text-xl font-bold mb-1"), g.Text(m.Name)),
			h.P(h.Class("text-blue-600 font-medium mb-4"), g.Text(m.Role)),
			g.If(m.Bio != "", h.P(h.Class("text-gray-600 mb-6 text-sm md:text-base"), g.Text(m.Bio))),
			h.Div(h.Class("flex justify-center space-x-4"),
				memberLink(m.SocialLinks.LinkedIn, m.Name+"'s LinkedIn", icon.LinkedIn, "hover:text-blue-600"),
				memberLink(m.SocialLinks.Twitter, m.Name+"'s Twitter", icon.Twitter, "hover:text-blue-400"),
				memberLink(m.SocialLinks.GitHub, m.Name+"'s GitHub", icon.GitHub, "hover:text-gray-900"),
			),
		),
	)
}

// avatar stacks the photo over the initials so the initials show when the
// photo is missing or fails to load.
func avatar(m content.TeamMember) g.Node {
	return h.Div(h.Class("relative h-24 w-24 translate-y-12 rounded-full border-4 border-white bg-white overflow-hidden"),
		h.Span(h.Class("absolute inset-0 flex items-center justify-center text-blue-600 text-xl font-semibold"),
			g.Text(m.Initials),
		),
		g.If(m.Image != "", h.Img(
			h.Class("relative h-full w-full object-cover"),
			h.Src(m.Image),
			h.Alt(m.Name),
			g.Attr("loading", "lazy"),
			g.Attr("onerror", "this.remove()"),
		)),
	)
}

func memberLink(href, label string, glyph *icon.Glyph, hover string) g.Node {
	if href == "" {
		return nil
	}
	return h.A(
		h.Href(href),
		h.Class("text-gray-500 "+hover+" transition-colors"),
		g.Attr("aria-label", label),
		glyph,
	)
}
