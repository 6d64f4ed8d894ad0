package service

import (
	barout "pombar/internal/modules/bar/port/out"
)

// Publisher pushes status text to the bar channels. Exactly one channel
// carries text at a time; the other is cleared. A nil writer makes every
// publish a no-op, which is how a bar type without channels behaves.
type Publisher struct {
	writer barout.ChannelWriter
}

func NewPublisher(writer barout.ChannelWriter) *Publisher {
	return &Publisher{writer: writer}
}

// PublishIdle shows text on the idle channel and clears the working one.
func (p *Publisher) PublishIdle(text string) {
	if p.writer == nil {
		return
	}
	_ = p.writer.Write(text, "")
}

// PublishWorking shows text on the working channel and clears the idle one.
func (p *Publisher) PublishWorking(text string) {
	if p.writer == nil {
		return
	}
	_ = p.writer.Write("", text)
}
