// Package controls implements the Button/Encoder/Slider decorators: bindings
// that wire matcher predicates to user handlers while maintaining a
// registry.Registry automatically (§4.3).
package controls

import (
	"github.com/rjuang/rum/matchers"
	"github.com/rjuang/rum/midimsg"
	"github.com/rjuang/rum/processor"
	"github.com/rjuang/rum/registry"
)

// ButtonHandler is invoked with the triggering message and whether the
// button is now pressed (true) or released (false).
type ButtonHandler func(msg midimsg.Message, pressed bool)

// Button installs two processor entries: on a match of onMatcher it sets
// registry[name] = true and invokes handler(msg, true); on a match of
// offMatcher it clears the entry and invokes handler(msg, false). If name is
// "", the registry is left untouched (§4.3).
func Button(p *processor.Processor, reg *registry.Registry, name string, onMatcher, offMatcher matchers.Matcher, handler ButtonHandler) {
	p.Use(processor.When(onMatcher, func(msg *midimsg.Message) {
		if name != "" {
			reg.SetButtonDown(name, true)
		}
		handler(*msg, true)
	}))
	p.Use(processor.When(offMatcher, func(msg *midimsg.Message) {
		if name != "" {
			reg.ClearButtonDown(name)
		}
		handler(*msg, false)
	}))
}

// EncoderRange remaps a decoded absolute value from [0,1] into [Lo,Hi].
type EncoderRange struct {
	Lo, Hi float64
}

// defaultRange is the identity [0,1] mapping used when no range is given.
var defaultRange = EncoderRange{Lo: 0, Hi: 1}

// EncoderHandler is invoked with the triggering message and the decoded
// value.
type EncoderHandler func(msg midimsg.Message, value float64)

// Encoder installs a processor entry that, on a match of matcher, decodes
// the encoder value from Data2 (absolute mode remapped into rng, or
// infinite/differential mode producing a signed delta when infinite is
// true — see DecodeAbsolute/DecodeDifferential), writes registry[name], and
// invokes handler. rng is ignored in infinite mode.
func Encoder(p *processor.Processor, reg *registry.Registry, name string, matcher matchers.Matcher, infinite bool, rng *EncoderRange) EncoderHandlerInstaller {
	return EncoderHandlerInstaller{p: p, reg: reg, name: name, matcher: matcher, infinite: infinite, rng: rng}
}

// EncoderHandlerInstaller finishes installing an Encoder binding once the
// caller supplies the handler; it exists only so Encoder's many positional
// arguments don't also have to include the handler.
type EncoderHandlerInstaller struct {
	p        *processor.Processor
	reg      *registry.Registry
	name     string
	matcher  matchers.Matcher
	infinite bool
	rng      *EncoderRange
}

// Then installs the binding with the given handler.
func (e EncoderHandlerInstaller) Then(handler EncoderHandler) {
	e.p.Use(processor.When(e.matcher, func(msg *midimsg.Message) {
		var value float64
		if e.infinite {
			value = DecodeDifferential(msg.Data2)
		} else {
			rng := defaultRange
			if e.rng != nil {
				rng = *e.rng
			}
			value = DecodeAbsolute(msg.Data2, rng)
		}
		if e.name != "" {
			e.reg.SetEncoder(e.name, value)
		}
		handler(*msg, value)
	}))
}

// DecodeAbsolute implements the absolute encoder decoding of §4.3:
// value = data2/0x7F, remapped into rng.
func DecodeAbsolute(data2 uint8, rng EncoderRange) float64 {
	frac := float64(data2) / float64(midimsg.IsOnValue)
	return rng.Lo + frac*(rng.Hi-rng.Lo)
}

// DecodeDifferential implements the infinite/relative encoder decoding of
// §4.3: the top bit of data2 is a sign bit, the low 6 bits are magnitude;
// value = sign * magnitude / 0x7F.
func DecodeDifferential(data2 uint8) float64 {
	sign := 1.0
	if data2&0x40 != 0 {
		sign = -1.0
	}
	magnitude := float64(data2 & 0x3F)
	return sign * magnitude / float64(midimsg.IsOnValue)
}

// SliderHandler is invoked with the triggering message and the decoded
// value.
type SliderHandler func(msg midimsg.Message, value float64)

// Slider installs a processor entry that, on a match of matcher, decodes the
// absolute value from Data2 into rng (default [0,1]), writes
// registry[name], and invokes handler.
func Slider(p *processor.Processor, reg *registry.Registry, name string, matcher matchers.Matcher, rng *EncoderRange, handler SliderHandler) {
	p.Use(processor.When(matcher, func(msg *midimsg.Message) {
		r := defaultRange
		if rng != nil {
			r = *rng
		}
		value := DecodeAbsolute(msg.Data2, r)
		if name != "" {
			reg.SetSlider(name, value)
		}
		handler(*msg, value)
	}))
}

// TriggerWhen installs a plain matcher-to-handler binding with no registry
// bookkeeping.
func TriggerWhen(p *processor.Processor, matcher matchers.Matcher, handler processor.Handler) {
	p.Use(processor.When(matcher, handler))
}
