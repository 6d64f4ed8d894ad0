package out

import "context"

// WorkRecorder accumulates completed work time into the record store.
type WorkRecorder interface {
	AddCompletedWork(ctx context.Context, minutes int) error
}

// CommandRunner launches a session's end command. Fire and forget: the
// outcome is never observed.
type CommandRunner interface {
	Run(command string)
}
