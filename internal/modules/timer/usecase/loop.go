package usecase

import (
	"context"

	"pombar/internal/modules/timer/domain"
	"pombar/internal/modules/timer/dto"
	timerout "pombar/internal/modules/timer/port/out"
)

// Interactor is the session control state machine. It owns the sequencer
// position, the current session, and the countdown for one attempt. The
// caller drives it: Begin arms a countdown, Tick advances it once per
// second, Interrupt pauses it. End-of-session side effects (record update,
// session command) run only after the countdown has returned control,
// never inside a tick.
type Interactor struct {
	seq       *domain.Sequencer
	current   domain.Session
	idle      domain.IdleStatus
	remainder int
	countdown *domain.Countdown

	recorder timerout.WorkRecorder
	runner   timerout.CommandRunner
}

func NewInteractor(plan domain.Plan, startSessionNumber int, recorder timerout.WorkRecorder, runner timerout.CommandRunner) *Interactor {
	i := &Interactor{
		seq:      domain.NewSequencer(plan, startSessionNumber),
		recorder: recorder,
		runner:   runner,
	}
	i.advance()
	return i
}

func (i *Interactor) advance() {
	i.current = i.seq.Next()
	i.idle = domain.ToBegin
	i.remainder = i.current.Seconds
}

// Current describes the session attempt behind the prompt. A paused work
// session keeps its index and reports the saved remainder.
func (i *Interactor) Current() dto.SessionView {
	return dto.SessionView{
		Index:       i.current.Index,
		Work:        i.current.Kind == domain.Work,
		Seconds:     i.remainder,
		Paused:      i.idle == domain.Paused,
		ProgressBar: domain.ProgressBar(i.current),
		Clock:       domain.FormatDuration(i.remainder),
		KeyHint:     domain.KeyHint(i.current),
	}
}

// Begin arms the countdown: the session's full duration for a fresh
// attempt, the saved remainder when resuming from a pause.
func (i *Interactor) Begin() dto.TickView {
	i.countdown = domain.NewCountdown(i.remainder)
	return i.tickView()
}

// Tick consumes one elapsed second. When the countdown runs out it fires
// the end-of-session handler, advances the sequence, and reports done.
func (i *Interactor) Tick(ctx context.Context) (dto.TickView, bool, error) {
	if i.countdown == nil {
		return dto.TickView{}, true, nil
	}
	if i.countdown.Tick() {
		err := i.finish(ctx, 0)
		i.countdown = nil
		i.advance()
		return dto.TickView{}, true, err
	}
	return i.tickView(), false, nil
}

// Interrupt pauses the running countdown. An interrupted work session is
// re-prompted with its remainder; an interrupted break is abandoned and
// the cycle advances.
func (i *Interactor) Interrupt(ctx context.Context) error {
	if i.countdown == nil {
		return nil
	}
	i.countdown.Interrupt()
	left := i.countdown.Remaining()
	i.countdown = nil
	if err := i.finish(ctx, left); err != nil {
		return err
	}
	if left != 0 && i.current.Kind == domain.Work {
		i.idle = domain.Paused
		i.remainder = left
		return nil
	}
	i.advance()
	return nil
}

// finish is the end-of-session handler. Only a true completion counts:
// completed work time is recorded, then the session command fires.
func (i *Interactor) finish(ctx context.Context, remainder int) error {
	if remainder != 0 {
		return nil
	}
	if i.current.Kind == domain.Work {
		if err := i.recorder.AddCompletedWork(ctx, i.current.Seconds/60); err != nil {
			return err
		}
	}
	i.runner.Run(i.current.Command)
	return nil
}

func (i *Interactor) tickView() dto.TickView {
	return dto.TickView{
		Index:       i.current.Index,
		Work:        i.current.Kind == domain.Work,
		Remaining:   i.countdown.Remaining(),
		ProgressBar: domain.ProgressBar(i.current),
		Clock:       domain.FormatDuration(i.countdown.Remaining()),
		KeyHint:     domain.KeyHint(i.current),
	}
}
