package out

// ChannelWriter replaces the one-line contents of the idle and working
// channels. Implementations are best effort: a missing consumer must not
// stall the timer.
type ChannelWriter interface {
	Write(idleText, workingText string) error
}
