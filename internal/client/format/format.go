// Package format holds small presentation helpers.
package format

import "time"

// Layouts the backend has been observed to emit for blog/comment dates.
var serverLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"Mon, 02 Jan 2006 15:04:05 GMT",
}

// Date renders a server timestamp for display, e.g. "02 Jan 2006 15:04".
// An empty input yields an empty string; an unparseable one is returned
// unchanged so the raw value still shows up somewhere.
func Date(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range serverLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02 Jan 2006 15:04")
		}
	}
	return s
}
