// Package processor dispatches inbound MIDI messages through an ordered
// list of handlers, and provides the When/WhenAll/WhenAny combinators that
// bind a matcher to one or more handlers.
package processor

import (
	"github.com/rjuang/rum/matchers"
	"github.com/rjuang/rum/midimsg"
)

// Handler is a side-effecting function of a MidiMessage. Handlers may
// mutate msg.Handled; subsequent handlers still run regardless (the
// framework does not short-circuit dispatch on Handled — see Process).
type Handler func(msg *midimsg.Message)

// Matcher is an alias for matchers.Matcher so callers can write
// processor.Matcher without importing package matchers directly.
type Matcher = matchers.Matcher

// Processor is an ordered list of handler functions. It is not safe for
// concurrent use; the host serializes all MIDI dispatch onto one goroutine.
type Processor struct {
	handlers []Handler
}

// New returns an empty Processor.
func New() *Processor {
	return &Processor{}
}

// Use appends a handler to the end of the dispatch chain, in insertion
// order.
func (p *Processor) Use(h Handler) {
	if h == nil {
		panic("processor: Use requires a non-nil handler")
	}
	p.handlers = append(p.handlers, h)
}

// Process dispatches msg through every installed handler, in the order they
// were added. Handlers may set msg.Handled but that does not stop dispatch;
// the host-edge shim is the only consumer of the final Handled value, after
// every handler has run.
func (p *Processor) Process(msg *midimsg.Message) {
	for _, h := range p.handlers {
		h(msg)
	}
}

// Len reports the number of installed handlers. Primarily for tests.
func (p *Processor) Len() int {
	return len(p.handlers)
}

// When returns a Handler that tests matcher and, on a match, invokes each
// of handlers in order with the same message.
func When(matcher Matcher, handlers ...Handler) Handler {
	return func(msg *midimsg.Message) {
		if !matcher(*msg) {
			return
		}
		for _, h := range handlers {
			h(msg)
		}
	}
}

// WhenAll is sugar for When over a conjunction of matchers (matchers.All),
// short-circuiting on the first false.
func WhenAll(ms []Matcher, handlers ...Handler) Handler {
	return When(matchers.All(ms...), handlers...)
}

// WhenAny is sugar for When over a disjunction of matchers (matchers.Any),
// short-circuiting on the first true.
func WhenAny(ms []Matcher, handlers ...Handler) Handler {
	return When(matchers.Any(ms...), handlers...)
}
