package view

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/vivancedata/site/internal/content"
)

// PageData is everything a page needs: the content tables and the copyright year.
type PageData struct {
	Tables *content.Tables
	Year   int
}

// Home is the landing page: banner, team, FAQ and footer.
func Home(d PageData) g.Node {
	return document(d, "", Banner(), Team(d.Tables.TeamMembers), FAQ(d.Tables.Questions))
}

// TeamPage shows only the team section.
func TeamPage(d PageData) g.Node {
	return document(d, "Our Team", Team(d.Tables.TeamMembers))
}

// FAQPage shows only the FAQ section.
func FAQPage(d PageData) g.Node {
	return document(d, "FAQ", FAQ(d.Tables.Questions))
}

func document(d PageData, title string, sections ...g.Node) g.Node {
	site := d.Tables.Site
	fullTitle := site.Name
	if title != "" {
		fullTitle = title + " | " + site.Name
	}

	return c.HTML5(c.HTML5Props{
		Title:       fullTitle,
		Description: site.Description,
		Language:    "en",
		Head: []g.Node{
			h.Script(h.Src("https://cdn.tailwindcss.com")),
			h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
			g.If(site.Logo != "", h.Link(h.Rel("icon"), h.Href(site.Logo))),
		},
		Body: []g.Node{
			h.Class("min-h-screen bg-white text-gray-900 antialiased"),
			header(site),
			h.Main(g.Group(sections)),
			Footer(d.Tables, d.Year),
		},
	})
}

func header(site content.Site) g.Node {
	return h.Header(h.Class("border-b border-gray-200 bg-white"),
		h.Nav(h.Class("container mx-auto flex items-center justify-between px-4 py-4"),
			h.A(h.Href("/"), h.Class("text-lg font-bold"), g.Text(site.Name)),
			h.Ul(h.Class("flex gap-6 text-sm text-gray-600"),
				h.Li(h.A(h.Href("/"), h.Class("hover:text-blue-600"), g.Text("Home"))),
				h.Li(h.A(h.Href("/team"), h.Class("hover:text-blue-600"), g.Text("Team"))),
				h.Li(h.A(h.Href("/faq"), h.Class("hover:text-blue-600"), g.Text("FAQ"))),
			),
		),
	)
}
