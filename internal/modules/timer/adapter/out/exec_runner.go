package out

import "os/exec"

// ExecRunner launches session-end commands through the shell. Outcomes are
// intentionally ignored: a slow or failing notification command must never
// stall the timer loop.
type ExecRunner struct{}

func NewExecRunner() ExecRunner {
	return ExecRunner{}
}

func (ExecRunner) Run(command string) {
	if command == "" {
		return
	}
	_ = exec.Command("sh", "-c", command).Start()
}
