package usecase_test

import (
	"context"
	"testing"

	"pombar/internal/modules/timer/domain"
	"pombar/internal/modules/timer/usecase"
)

type fakeRecorder struct {
	minutes []int
}

func (f *fakeRecorder) AddCompletedWork(_ context.Context, minutes int) error {
	f.minutes = append(f.minutes, minutes)
	return nil
}

type fakeRunner struct {
	commands []string
}

func (f *fakeRunner) Run(command string) {
	f.commands = append(f.commands, command)
}

func testPlan() domain.Plan {
	return domain.Plan{
		WorkSeconds:      120,
		BreakSeconds:     60,
		LongBreakSeconds: 180,
		WorkCommand:      "work-cmd",
		BreakCommand:     "break-cmd",
	}
}

func runToCompletion(t *testing.T, uc *usecase.Interactor) {
	t.Helper()
	uc.Begin()
	for i := 0; i < 100000; i++ {
		_, done, err := uc.Tick(context.Background())
		if err != nil {
			t.Fatalf("tick: %v", err)
		}
		if done {
			return
		}
	}
	t.Fatal("countdown never completed")
}

func TestCompletedWorkSessionRecordsAndAdvances(t *testing.T) {
	t.Parallel()
	recorder := &fakeRecorder{}
	runner := &fakeRunner{}
	uc := usecase.NewInteractor(testPlan(), 1, recorder, runner)

	if view := uc.Current(); !view.Work || view.Index != 1 || view.Paused {
		t.Fatalf("unexpected first session: %+v", view)
	}

	runToCompletion(t, uc)

	if len(recorder.minutes) != 1 || recorder.minutes[0] != 2 {
		t.Fatalf("recorded minutes = %v, want [2]", recorder.minutes)
	}
	if len(runner.commands) != 1 || runner.commands[0] != "work-cmd" {
		t.Fatalf("commands = %v, want [work-cmd]", runner.commands)
	}

	next := uc.Current()
	if next.Work || next.Index != 1 || next.Paused {
		t.Fatalf("expected fresh break prompt after work, got %+v", next)
	}
}

func TestCompletedBreakRunsCommandWithoutRecording(t *testing.T) {
	t.Parallel()
	recorder := &fakeRecorder{}
	runner := &fakeRunner{}
	uc := usecase.NewInteractor(testPlan(), 1, recorder, runner)

	runToCompletion(t, uc) // work
	recorder.minutes = nil
	runner.commands = nil
	runToCompletion(t, uc) // break

	if len(recorder.minutes) != 0 {
		t.Fatalf("break must not record minutes, got %v", recorder.minutes)
	}
	if len(runner.commands) != 1 || runner.commands[0] != "break-cmd" {
		t.Fatalf("commands = %v, want [break-cmd]", runner.commands)
	}
	if next := uc.Current(); !next.Work || next.Index != 2 {
		t.Fatalf("expected work session 2 after break, got %+v", next)
	}
}

func TestInterruptedWorkResumesFromRemainder(t *testing.T) {
	t.Parallel()
	recorder := &fakeRecorder{}
	runner := &fakeRunner{}
	uc := usecase.NewInteractor(testPlan(), 1, recorder, runner)

	uc.Begin()
	for i := 0; i < 30; i++ {
		if _, done, err := uc.Tick(context.Background()); done || err != nil {
			t.Fatalf("tick %d: done=%v err=%v", i, done, err)
		}
	}
	if err := uc.Interrupt(context.Background()); err != nil {
		t.Fatalf("interrupt: %v", err)
	}

	if len(recorder.minutes) != 0 || len(runner.commands) != 0 {
		t.Fatal("a pause must not trigger end-of-session side effects")
	}

	view := uc.Current()
	if !view.Paused || !view.Work || view.Index != 1 {
		t.Fatalf("expected paused prompt for the same session, got %+v", view)
	}
	if view.Seconds != 90 {
		t.Fatalf("paused remainder = %d, want 90", view.Seconds)
	}

	// Resuming arms the countdown with the remainder, not the full length.
	if resumed := uc.Begin(); resumed.Remaining != 90 {
		t.Fatalf("resumed countdown = %d, want 90", resumed.Remaining)
	}
}

func TestInterruptedBreakIsAbandoned(t *testing.T) {
	t.Parallel()
	recorder := &fakeRecorder{}
	runner := &fakeRunner{}
	uc := usecase.NewInteractor(testPlan(), 1, recorder, runner)

	runToCompletion(t, uc) // work
	runner.commands = nil

	uc.Begin() // break
	uc.Tick(context.Background())
	if err := uc.Interrupt(context.Background()); err != nil {
		t.Fatalf("interrupt: %v", err)
	}

	if len(runner.commands) != 0 {
		t.Fatalf("skipped break must not run its command, got %v", runner.commands)
	}
	next := uc.Current()
	if !next.Work || next.Index != 2 || next.Paused {
		t.Fatalf("expected fresh work session 2 after skipped break, got %+v", next)
	}
}

func TestLongBreakAppearsOnFourthRest(t *testing.T) {
	t.Parallel()
	recorder := &fakeRecorder{}
	runner := &fakeRunner{}
	uc := usecase.NewInteractor(testPlan(), 4, recorder, runner)

	runToCompletion(t, uc) // work 4
	view := uc.Current()
	if view.Work || view.Seconds != 180 {
		t.Fatalf("expected long break of 180s, got %+v", view)
	}
}
