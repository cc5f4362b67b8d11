package repository

import "time"

const timestampLayout = time.RFC3339Nano

// parseTimestamp reads a stored timestamp. Unparseable values come back as
// the zero time rather than failing the whole read.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(timestampLayout)
}
