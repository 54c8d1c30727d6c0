// Package launchpad is a concrete example hostiface.Device adapter for a
// Novation-style grid controller. It is a worked instance of the "per-
// controller SYSEX byte assembly (device profile)" collaborator that
// spec.md §1 names only by interface; the core runtime never imports it.
package launchpad

import "fmt"

// CommandBuilder accumulates light/display updates and assembles them into
// a single SysEx-ready byte buffer, grounded on
// original_source/device_profile/command.py's MidiCommandBuilder and
// original_source/device_profile/novation.py's LaunchkeyMk3.
type CommandBuilder struct {
	solidStatus, blinkStatus uint8

	setColors []pair
	turnOn    []uint8
	turnOff   []uint8
	blink     []pair
}

type pair struct {
	id, value uint8
}

// NewCommandBuilder creates a builder for a device whose solid/blink LED
// updates are sent as note-on messages on solidStatus/blinkStatus (the
// Launchkey Mk3 uses 0x99 for solid and 0x9B for blinking, per the
// programmer's reference).
func NewCommandBuilder(solidStatus, blinkStatus uint8) *CommandBuilder {
	return &CommandBuilder{solidStatus: solidStatus, blinkStatus: blinkStatus}
}

// LightColor queues id/value pairs to set specific light colors. args must
// be an even-length sequence of (id, value, id, value, ...); an odd length
// is a precondition failure (§7) and panics, matching spec.md §7's
// "build a SYSEX command with an odd number of light/value pairs" example.
func (b *CommandBuilder) LightColor(args ...uint8) *CommandBuilder {
	if len(args)%2 != 0 {
		panic(fmt.Sprintf("launchpad: LightColor requires an even number of id/value pairs, got %d", len(args)))
	}
	for i := 0; i < len(args); i += 2 {
		b.setColors = append(b.setColors, pair{args[i], args[i+1]})
	}
	return b
}

// LightOn queues lights to turn fully on.
func (b *CommandBuilder) LightOn(ids ...uint8) *CommandBuilder {
	b.turnOn = append(b.turnOn, ids...)
	return b
}

// LightOff queues lights to turn off.
func (b *CommandBuilder) LightOff(ids ...uint8) *CommandBuilder {
	b.turnOff = append(b.turnOff, ids...)
	return b
}

// Blink queues id/value pairs to blink a given color. Same even-length
// precondition as LightColor.
func (b *CommandBuilder) Blink(args ...uint8) *CommandBuilder {
	if len(args)%2 != 0 {
		panic(fmt.Sprintf("launchpad: Blink requires an even number of id/value pairs, got %d", len(args)))
	}
	for i := 0; i < len(args); i += 2 {
		b.blink = append(b.blink, pair{args[i], args[i+1]})
	}
	return b
}

// Build assembles the queued updates into a single byte buffer suitable for
// sending as (or wrapping in) a SYSEX message.
func (b *CommandBuilder) Build() []byte {
	var cmd []byte
	for _, id := range b.turnOff {
		cmd = append(cmd, b.solidStatus, id, 0x00)
	}
	for _, id := range b.turnOn {
		cmd = append(cmd, b.solidStatus, id, 0x77)
	}
	for _, p := range b.setColors {
		cmd = append(cmd, b.solidStatus, p.id, p.value)
	}
	for _, p := range b.blink {
		cmd = append(cmd, b.blinkStatus, p.id, p.value)
	}
	return cmd
}
