package domain

// Kind distinguishes the two halves of a pomodoro cycle.
type Kind int

const (
	Work Kind = iota
	Rest
)

func (k Kind) String() string {
	if k == Work {
		return "work"
	}
	return "rest"
}

// IdleStatus distinguishes a fresh session prompt from a resume-after-pause
// prompt. Presentational only, never persisted.
type IdleStatus int

const (
	ToBegin IdleStatus = iota
	Paused
)

// Plan holds the configured durations and end-of-session commands.
type Plan struct {
	WorkSeconds      int
	BreakSeconds     int
	LongBreakSeconds int
	WorkCommand      string
	BreakCommand     string
}

// Session is one timed half-cycle. Index is the user-facing session number,
// advancing once per work+break pair.
type Session struct {
	Index   int
	Command string
	Seconds int
	Kind    Kind
}

// At derives the session for the 1-based tick n. Odd ticks are work, even
// ticks rest, and every 8th tick the rest stretches into the long break.
// The canonical cycle is W,B,W,B,W,B,W,L.
func (p Plan) At(n int) Session {
	s := Session{Index: (n + 1) / 2}
	if n%2 == 1 {
		s.Kind = Work
		s.Seconds = p.WorkSeconds
		s.Command = p.WorkCommand
		return s
	}
	s.Kind = Rest
	s.Seconds = p.BreakSeconds
	s.Command = p.BreakCommand
	if n%8 == 0 {
		s.Seconds = p.LongBreakSeconds
	}
	return s
}

// Sequencer walks the infinite session sequence. The tick counter is its
// only state, so it is restartable at an arbitrary session number.
type Sequencer struct {
	plan Plan
	n    int
}

func NewSequencer(plan Plan, startSessionNumber int) *Sequencer {
	return &Sequencer{plan: plan, n: 2 * (startSessionNumber - 1)}
}

func (s *Sequencer) Next() Session {
	s.n++
	return s.plan.At(s.n)
}
