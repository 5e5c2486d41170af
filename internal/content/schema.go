package content

// Tables is the full set of read-only content handed to the views.
// It is built once at startup and never mutated afterwards.
type Tables struct {
	Site        Site               `yaml:"site"`
	TeamMembers []TeamMember       `yaml:"teamMembers"`
	FooterLinks []FooterLinkColumn `yaml:"footerLinks"`
	SocialLinks []SocialLink       `yaml:"socialLinks"`
	Questions   []FAQ              `yaml:"questions"`
}

// Site is the company identity shown in the page head and footer.
type Site struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Logo        string `yaml:"logo,omitempty"`
	Address     string `yaml:"address,omitempty"`
	Phone       string `yaml:"phone,omitempty"`
	Email       string `yaml:"email,omitempty"`
}

type TeamMember struct {
	Name        string      `yaml:"name"`
	Role        string      `yaml:"role"`
	Bio         string      `yaml:"bio"`
	Image       string      `yaml:"image"`
	Initials    string      `yaml:"initials"`
	SocialLinks MemberLinks `yaml:"socialLinks"`
}

// MemberLinks are a team member's profile URLs. Each one is optional;
// an empty string means the link is absent.
type MemberLinks struct {
	LinkedIn string `yaml:"linkedin,omitempty"`
	Twitter  string `yaml:"twitter,omitempty"`
	GitHub   string `yaml:"github,omitempty"`
}

// FooterLinkColumn is one titled column of footer links, kept in display order.
type FooterLinkColumn struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

type Link struct {
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
}

// SocialLink is a company profile link. Icon is a symbolic tag resolved by icon.Resolve.
type SocialLink struct {
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
}

type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}
