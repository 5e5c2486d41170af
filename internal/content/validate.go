package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vivancedata/site/internal/icon"
)

// Validate reports every missing required field in one joined error.
// Optional fields (member social links, site contact lines) are never checked.
func (t *Tables) Validate() error {
	var errs []error
	missing := func(where, field string) {
		errs = append(errs, fmt.Errorf("%s: %s is required", where, field))
	}

	if blank(t.Site.Name) {
		missing("site", "name")
	}

	for i, m := range t.TeamMembers {
		where := fmt.Sprintf("teamMembers[%d]", i)
		if blank(m.Name) {
			missing(where, "name")
		}
		if blank(m.Role) {
			missing(where, "role")
		}
		if blank(m.Initials) {
			missing(where, "initials")
		}
	}

	for i, col := range t.FooterLinks {
		where := fmt.Sprintf("footerLinks[%d]", i)
		if blank(col.Title) {
			missing(where, "title")
		}
		for j, l := range col.Links {
			lw := fmt.Sprintf("%s.links[%d]", where, j)
			if blank(l.Href) {
				missing(lw, "href")
			}
			if blank(l.Label) {
				missing(lw, "label")
			}
		}
	}

	for i, s := range t.SocialLinks {
		where := fmt.Sprintf("socialLinks[%d]", i)
		if blank(s.Href) {
			missing(where, "href")
		}
		if blank(s.Label) {
			missing(where, "label")
		}
	}

	for i, q := range t.Questions {
		where := fmt.Sprintf("questions[%d]", i)
		if blank(q.Question) {
			missing(where, "question")
		}
		if blank(q.Answer) {
			missing(where, "answer")
		}
	}

	return errors.Join(errs...)
}

// UnknownIcons lists social link icon tags that will render with the fallback glyph.
func (t *Tables) UnknownIcons() []string {
	var unknown []string
	for _, s := range t.SocialLinks {
		if !icon.Known(s.Icon) {
			unknown = append(unknown, s.Icon)
		}
	}
	return unknown
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
