package repository

import "time"

// timeLayout is the canonical on-disk timestamp format: UTC, fixed width,
// nanosecond precision. Fixed width means lexicographic comparison in SQL
// equals chronological comparison, which the resume query depends on.
const timeLayout = "2006-01-02 15:04:05.000000000"

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) (time.Time, error) {
	return time.ParseInLocation(timeLayout, s, time.UTC)
}
