package dto

// SessionView describes the session attempt behind a start/quit prompt.
type SessionView struct {
	Index       int
	Work        bool
	Seconds     int
	Paused      bool
	ProgressBar string
	Clock       string
	KeyHint     string
}

// TickView is the render state of a running countdown, refreshed once per
// elapsed second.
type TickView struct {
	Index       int
	Work        bool
	Remaining   int
	ProgressBar string
	Clock       string
	KeyHint     string
}
