package domain

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "pombar/internal/platform/errors"
)

// Type selects which external status bar, if any, consumes the channel
// pipes.
type Type int

const (
	None Type = iota
	Polybar
	Xmobar
)

func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return None, nil
	case "polybar":
		return Polybar, nil
	case "xmobar":
		return Xmobar, nil
	}
	return None, fmt.Errorf("bar type %q (want none, polybar or xmobar): %w", s, apperrors.ErrInvalidInput)
}

func (t Type) String() string {
	switch t {
	case Polybar:
		return "polybar"
	case Xmobar:
		return "xmobar"
	}
	return "none"
}

// ChannelPaths returns the idle and working pipe paths for t. Both bar
// types share the same well-known paths; None has no channels.
func (t Type) ChannelPaths() (idle, working string) {
	if t == Polybar || t == Xmobar {
		return "/tmp/.pomodoro-bar-i", "/tmp/.pomodoro-bar-w"
	}
	return "", ""
}

// RestartHint is printed when a channel pipe had to be (re)created: the
// external bar only picks up a pipe it was started against.
func (t Type) RestartHint() string {
	switch t {
	case Xmobar:
		return "*** Please compile xmobar and rerun ***"
	case Polybar:
		return "*** Please rerun ***"
	}
	return ""
}

// Label is the bar-side session prefix, e.g. "[3]".
func Label(sessionIndex int) string {
	return "[" + strconv.Itoa(sessionIndex) + "]"
}

// IdleText is the bar-side status while the timer waits at a prompt.
func IdleText(paused, work bool) string {
	if paused {
		return "PAUSE"
	}
	if work {
		return "START"
	}
	return "BREAK"
}
