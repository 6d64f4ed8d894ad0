package domain

// Countdown tracks one session attempt. The driver advances it once per
// elapsed second; interruption is an explicit input observed between
// ticks, never mid-tick.
type Countdown struct {
	remaining   int
	interrupted bool
}

func NewCountdown(seconds int) *Countdown {
	return &Countdown{remaining: seconds}
}

// Tick consumes one elapsed second and reports whether the countdown has
// run out.
func (c *Countdown) Tick() bool {
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining == 0
}

func (c *Countdown) Interrupt() {
	c.interrupted = true
}

func (c *Countdown) Interrupted() bool {
	return c.interrupted
}

// Remaining is the number of seconds not yet elapsed. Zero after a natural
// completion; the paused remainder after an interruption.
func (c *Countdown) Remaining() int {
	return c.remaining
}
