package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vivancedata/site/internal/content"
	"github.com/vivancedata/site/internal/icon"
)

// Footer renders the site footer. year is the copyright year.
func Footer(t *content.Tables, year int) g.Node {
	return h.Footer(h.Class("bg-gray-50 border-t border-gray-200"),
		h.Div(h.Class("container mx-auto px-4 py-12 md:py-16"),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-5 gap-8 mb-12"),
				companyBlock(t.Site, t.SocialLinks),
				g.Map(t.FooterLinks, linkColumn),
			),
			newsletter(),
			bottomBar(t.Site.Name, year),
		),
	)
}

func companyBlock(site content.Site, social []content.SocialLink) g.Node {
	return h.Div(h.Class("lg:col-span-2"),
		h.A(h.Href("/"), h.Class("flex items-center mb-6"),
			g.If(site.Logo != "", h.Img(
				h.Src(site.Logo),
				h.Alt(site.Name+" Logo"),
				h.Width("40"),
				h.Height("40"),
				h.Class("mr-2"),
			)),
			h.Span(h.Class("text-xl font-bold"), g.Text(site.Name)),
		),
		g.If(site.Description != "", h.P(h.Class("text-gray-600 mb-6 max-w-md"), g.Text(site.Description))),
		h.Div(h.Class("social-links flex space-x-4 mb-6"),
			g.Map(social, socialLink),
		),
		h.Div(h.Class("space-y-3"),
			contactLine(icon.MapPin, site.Address, "flex items-start", "h-5 w-5 text-blue-600 mr-2 mt-0.5"),
			contactLine(icon.Phone, site.Phone, "flex items-center", "h-5 w-5 text-blue-600 mr-2"),
			contactLine(icon.Mail, site.Email, "flex items-center", "h-5 w-5 text-blue-600 mr-2"),
		),
	)
}

func socialLink(l content.SocialLink) g.Node {
	return h.A(
		h.Href(l.Href),
		h.Target("_blank"),
		h.Rel("noreferrer"),
		h.Class("bg-white p-2 rounded-full border border-gray-200 text-gray-600 hover:text-blue-600 hover:border-blue-600 transition-colors"),
		g.Attr("aria-label", l.Label),
		icon.Resolve(l.Icon),
	)
}

func contactLine(glyph *icon.Glyph, text, rowClass, iconClass string) g.Node {
	if text == "" {
		return nil
	}
	return h.Div(h.Class(rowClass),
		glyph.Node(iconClass),
		h.Span(h.Class("text-gray-600"), g.Text(text)),
	)
}

func linkColumn(col content.FooterLinkColumn) g.Node {
	return h.Div(h.Class("footer-column"),
		h.H3(h.Class("font-semibold text-lg mb-4"), g.Text(col.Title)),
		h.Ul(h.Class("space-y-3"),
			g.Map(col.Links, func(l content.Link) g.Node {
				return h.Li(
					h.A(h.Href(l.Href), h.Class("text-gray-600 hover:text-blue-600 transition-colors"), g.Text(l.Label)),
				)
			}),
		),
	)
}

// newsletter is display only; there is no submission endpoint.
func newsletter() g.Node {
	return h.Div(h.Class("newsletter border-t border-gray-200 pt-8 mb-8"),
		h.Div(h.Class("max-w-md mx-auto text-center"),
			h.H3(h.Class("font-semibold text-lg mb-2"), g.Text("Subscribe to our newsletter")),
			h.P(h.Class("text-gray-600 mb-4"),
				g.Text("Stay updated with the latest in AI and receive our insights directly to your inbox."),
			),
			h.Div(h.Class("flex gap-2"),
				h.Input(
					h.Type("email"),
					h.Placeholder("Your email address"),
					g.Attr("aria-label", "Email address"),
					h.Class("flex-1 rounded-md border border-gray-300 bg-white px-3 py-2"),
				),
				h.Button(
					h.Type("button"),
					h.Class("rounded-md bg-blue-600 hover:bg-blue-700 px-4 py-2 text-white"),
					g.Text("Subscribe"),
				),
			),
		),
	)
}

func bottomBar(name string, year int) g.Node {
	return h.Div(h.Class("border-t border-gray-200 pt-8 flex flex-col md:flex-row justify-between items-center"),
		h.P(h.Class("copyright text-gray-500 text-sm mb-4 md:mb-0"),
			g.Text("© "+strconv.Itoa(year)+" "+name+". All rights reserved."),
		),
		h.Div(h.Class("flex flex-wrap gap-4 text-sm text-gray-500"),
			h.A(h.Href("/privacy"), h.Class("hover:text-blue-600 transition-colors"), g.Text("Privacy Policy")),
			h.A(h.Href("/terms"), h.Class("hover:text-blue-600 transition-colors"), g.Text("Terms of Service")),
			h.A(h.Href("/cookies"), h.Class("hover:text-blue-600 transition-colors"), g.Text("Cookie Policy")),
		),
	)
}
