package icon

// Symbolic tags accepted by Resolve.
const (
	TagLinkedIn  = "linkedin"
	TagTwitter   = "twitter"
	TagFacebook  = "facebook"
	TagInstagram = "instagram"
	TagGitHub    = "github"
)

// Tags lists the recognised social tags in display order.
var Tags = []string{TagLinkedIn, TagTwitter, TagFacebook, TagInstagram, TagGitHub}

// Resolve maps a social link's symbolic tag to its glyph.
// Unrecognised tags fall back to LinkedIn; this is not an error.
func Resolve(tag string) *Glyph {
	switch tag {
	case TagLinkedIn:
		return LinkedIn
	case TagTwitter:
		return Twitter
	case TagFacebook:
		return Facebook
	case TagInstagram:
		return Instagram
	case TagGitHub:
		return GitHub
	default:
		return LinkedIn
	}
}

// Known reports whether tag is one of the recognised social tags.
func Known(tag string) bool {
	for _, t := range Tags {
		if t == tag {
			return true
		}
	}
	return false
}
