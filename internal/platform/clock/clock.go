package clock

import "time"

// Clock abstracts time to keep session accounting deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall time; weekday bucketing follows the
// user's timezone, not UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
