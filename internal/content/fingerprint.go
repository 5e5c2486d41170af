package content

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Fingerprint is a short stable digest of the tables, used to key cached pages.
func (t *Tables) Fingerprint() string {
	data, err := yaml.Marshal(t)
	if err != nil {
		// Tables holds only strings and slices; Marshal cannot fail on it.
		panic(err)
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}
