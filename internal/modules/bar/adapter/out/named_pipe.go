package out

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"pombar/internal/modules/bar/domain"
	barout "pombar/internal/modules/bar/port/out"
	apperrors "pombar/internal/platform/errors"
)

// NamedPipeWriter feeds the two FIFO channels that back a polybar or
// xmobar module. Each write fully replaces a channel's line.
type NamedPipeWriter struct {
	idlePath    string
	workingPath string
}

// NewNamedPipeWriter returns nil for a bar type without channels; the
// publisher treats a nil writer as a no-op.
func NewNamedPipeWriter(barType domain.Type) barout.ChannelWriter {
	idle, working := barType.ChannelPaths()
	if idle == "" {
		return nil
	}
	return &NamedPipeWriter{idlePath: idle, workingPath: working}
}

func (w *NamedPipeWriter) Write(idleText, workingText string) error {
	if err := writeLine(w.workingPath, workingText); err != nil {
		return err
	}
	return writeLine(w.idlePath, idleText)
}

// writeLine opens the FIFO non-blocking so a bar that is not currently
// reading just drops the update instead of wedging the tick loop.
func writeLine(path, text string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		if errors.Is(err, unix.ENXIO) {
			return nil
		}
		return fmt.Errorf("open channel %s: %w", path, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, text); err != nil {
		return fmt.Errorf("write channel %s: %w", path, err)
	}
	return nil
}

// EnsureChannels verifies both channel paths are FIFOs, replacing anything
// that is missing or not a pipe. When a channel had to be (re)created it
// returns ErrBarRestartNeeded so the caller can print the bar's restart
// hint and exit instead of feeding a pipe nobody reads.
func EnsureChannels(barType domain.Type) error {
	idle, working := barType.ChannelPaths()
	if idle == "" {
		return nil
	}
	createdIdle, err := ensureFIFO(idle)
	if err != nil {
		return err
	}
	createdWorking, err := ensureFIFO(working)
	if err != nil {
		return err
	}
	if createdIdle || createdWorking {
		return fmt.Errorf("%s: %w", barType, apperrors.ErrBarRestartNeeded)
	}
	return nil
}

func ensureFIFO(path string) (created bool, err error) {
	info, err := os.Stat(path)
	if err == nil {
		if info.Mode()&os.ModeNamedPipe != 0 {
			return false, nil
		}
		if err := os.Remove(path); err != nil {
			return false, fmt.Errorf("remove %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := unix.Mkfifo(path, 0o644); err != nil {
		return false, fmt.Errorf("mkfifo %s: %w", path, err)
	}
	return true, nil
}
