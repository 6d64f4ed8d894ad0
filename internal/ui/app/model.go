package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	bardomain "pombar/internal/modules/bar/domain"
	"pombar/internal/modules/timer/dto"
	"pombar/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

// TimerPort is the control state machine this view drives. It is advanced
// strictly from Update, so no two ticks ever overlap.
type TimerPort interface {
	Current() dto.SessionView
	Begin() dto.TickView
	Tick(ctx context.Context) (dto.TickView, bool, error)
	Interrupt(ctx context.Context) error
}

// BarPort mirrors the live status to the external bar channels.
type BarPort interface {
	PublishIdle(text string)
	PublishWorking(text string)
}

// Notifier raises a desktop notification on session completion. Optional.
type Notifier interface {
	Notify(summary, body string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

// tickMsg carries the generation of the tick chain that scheduled it, so
// ticks from a chain that ended at a pause cannot join a resumed session.
type tickMsg struct {
	gen int
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Start key.Binding
	Quit  key.Binding
	Pause key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Pause: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "pause/skip")),
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

type phase int

const (
	phasePrompt phase = iota
	phaseRunning
)

// Model renders the session loop as a single inline line: prompt, then a
// live countdown, then the next prompt, until the user quits. The side
// channels (bar pipes, desktop notifications) are updated from the same
// message loop the countdown runs on.
type Model struct {
	timer    TimerPort
	bar      BarPort
	notifier Notifier

	keys     keyMap
	phase    phase
	gen      int
	prompt   dto.SessionView
	running  dto.TickView
	status   string
	err      error
	quitting bool
}

func NewModel(timer TimerPort, bar BarPort, notifier Notifier) Model {
	return Model{
		timer:    timer,
		bar:      bar,
		notifier: notifier,
		keys:     defaultKeys(),
	}
}

// Err reports the fatal error, if any, that ended the loop.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return promptMsg{} }
}

type promptMsg struct{}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case promptMsg:
		m = m.showPrompt()

	case tickMsg:
		if m.phase != phaseRunning || msg.gen != m.gen {
			// A tick issued before a pause can still land afterwards,
			// even when a new session has already started; only ticks
			// from the live chain advance the countdown.
			return m, nil
		}
		finishedWork := m.running.Work
		view, done, err := m.timer.Tick(context.Background())
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		if done {
			m.notifyCompleted(finishedWork)
			m = m.showPrompt()
			return m, nil
		}
		m.running = view
		m.bar.PublishWorking(bardomain.Label(view.Index) + view.Clock)
		return m, tickCmd(m.gen)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phasePrompt:
		// The prompt accepts exactly start or quit; everything else is
		// swallowed, including ctrl+c.
		switch {
		case key.Matches(msg, m.keys.Start):
			m.phase = phaseRunning
			m.running = m.timer.Begin()
			m.bar.PublishWorking(bardomain.Label(m.running.Index) + m.running.Clock)
			return m, tickCmd(m.gen)
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.bar.PublishIdle("POMODORO")
			return m, tea.Quit
		}

	case phaseRunning:
		if key.Matches(msg, m.keys.Pause) {
			if err := m.timer.Interrupt(context.Background()); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m = m.showPrompt()
		}
	}
	return m, nil
}

func (m Model) showPrompt() Model {
	m.phase = phasePrompt
	m.gen++
	m.prompt = m.timer.Current()
	m.bar.PublishIdle(bardomain.Label(m.prompt.Index) + bardomain.IdleText(m.prompt.Paused, m.prompt.Work))
	return m
}

func (m *Model) notifyCompleted(work bool) {
	if m.notifier == nil {
		return
	}
	summary, body := "Break over", "Back to work"
	if work {
		summary, body = "Work session complete", "Time for a break"
	}
	if err := m.notifier.Notify(summary, body); err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.quitting || m.err != nil {
		return ""
	}

	var line string
	switch m.phase {
	case phasePrompt:
		line = theme.Progress.Render(m.prompt.ProgressBar) +
			" " + theme.Clock.Render(m.prompt.Clock) +
			" - " + theme.Hint.Render("[s]tart or [q]uit")
	case phaseRunning:
		line = theme.Progress.Render(m.running.ProgressBar) +
			" " + theme.Clock.Render(m.running.Clock) +
			" - " + theme.Hint.Render(m.running.KeyHint)
	}
	if m.status != "" {
		line += " " + theme.Status.Render("("+m.status+")")
	}
	return line
}
