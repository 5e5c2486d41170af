package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vivancedata/site/internal/content"
)

// FAQ renders one collapsible entry per question. An empty list renders the
// section heading and no entries.
func FAQ(questions []content.FAQ) g.Node {
	return h.Section(h.ID("faq"), h.Class("w-full py-16 md:py-24"),
		h.Div(h.Class("container mx-auto max-w-3xl px-4"),
			h.H2(h.Class("text-3xl md:text-4xl font-bold mb-8 text-center"), g.Text("Frequently Asked Questions")),
			h.Div(h.Class("space-y-4"),
				g.Map(questions, func(q content.FAQ) g.Node {
					return h.Details(h.Class("faq-entry rounded-lg border border-gray-200 p-4"),
						h.Summary(h.Class("cursor-pointer font-semibold"), g.Text(q.Question)),
						h.P(h.Class("mt-2 text-gray-600"), g.Text(q.Answer)),
					)
				}),
			),
		),
	)
}
