package redis

import "strconv"

const (
	// KeyPrefixPage is the prefix for rendered page keys
	KeyPrefixPage = "site:page:"
)

// PageKey returns the Redis key for a rendered page.
// The content fingerprint makes a content change miss old entries instead of serving them.
// Example: PageKey("home", 2026, "9f2c") -> "site:page:home:2026:9f2c"
func PageKey(name string, year int, fingerprint string) string {
	return KeyPrefixPage + name + ":" + strconv.Itoa(year) + ":" + fingerprint
}
