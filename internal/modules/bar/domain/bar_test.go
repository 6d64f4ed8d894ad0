package domain

import (
	"errors"
	"testing"

	apperrors "pombar/internal/platform/errors"
)

func TestParseType(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want Type
	}{
		{"none", None},
		{"", None},
		{"polybar", Polybar},
		{"Polybar", Polybar},
		{"XMOBAR", Xmobar},
	}
	for _, tc := range cases {
		got, err := ParseType(tc.in)
		if err != nil {
			t.Errorf("ParseType(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseType(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseType("i3blocks"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("unknown bar type: err = %v", err)
	}
}

func TestChannelPaths(t *testing.T) {
	t.Parallel()
	for _, barType := range []Type{Polybar, Xmobar} {
		idle, working := barType.ChannelPaths()
		if idle != "/tmp/.pomodoro-bar-i" || working != "/tmp/.pomodoro-bar-w" {
			t.Errorf("%v paths = %q, %q", barType, idle, working)
		}
	}
	if idle, working := None.ChannelPaths(); idle != "" || working != "" {
		t.Errorf("none must have no channels, got %q %q", idle, working)
	}
}

func TestLabelAndIdleText(t *testing.T) {
	t.Parallel()
	if got := Label(3); got != "[3]" {
		t.Errorf("Label(3) = %q", got)
	}
	if got := IdleText(true, true); got != "PAUSE" {
		t.Errorf("paused = %q", got)
	}
	if got := IdleText(false, true); got != "START" {
		t.Errorf("fresh work = %q", got)
	}
	if got := IdleText(false, false); got != "BREAK" {
		t.Errorf("fresh break = %q", got)
	}
}

func TestRestartHint(t *testing.T) {
	t.Parallel()
	if Xmobar.RestartHint() == "" || Polybar.RestartHint() == "" {
		t.Error("bar types with channels need a restart hint")
	}
	if None.RestartHint() != "" {
		t.Error("none must not hint")
	}
}
