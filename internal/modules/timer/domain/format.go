package domain

import "fmt"

// FormatDuration renders seconds as mm:ss, prefixing hh: only when the
// hour component is non-zero. Every field is zero-padded to two digits.
func FormatDuration(seconds int) string {
	minutes := seconds / 60
	secs := seconds % 60
	hours := minutes / 60
	minutes %= 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

const progressTemplate = "w-b-w-b-w-b-w-l"

// ProgressBar renders the 8-slot super-cycle with the current session's
// slot bracketed, e.g. "w-b-[w]-b-w-b-w-l" for the second work session.
func ProgressBar(s Session) string {
	i := 4 * ((s.Index - 1) % 4)
	if s.Kind == Rest {
		i += 2
	}
	return progressTemplate[:i] + "[" + progressTemplate[i:i+1] + "]" + progressTemplate[i+1:]
}

// KeyHint names what ctrl+c does for the running session.
func KeyHint(s Session) string {
	if s.Kind == Work {
		return "CTRL+c to Pause"
	}
	return "CTRL+c to Skip"
}
