// Package dateparse parses the date strings accepted in frontmatter and
// data files.
package dateparse

import (
	"fmt"
	"strings"
	"time"
)

var formats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse tries each accepted layout in turn. Use YYYY-MM-DD or RFC3339.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range formats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
