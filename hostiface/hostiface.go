// Package hostiface defines the closed set of interfaces the core runtime
// requires from DAW host bindings (§6). The core depends only on these
// interfaces; concrete adapters (channel rack, mixer, transport, device
// SYSEX out, script-to-script dispatch) live outside this module's core and
// are wired in by the embedding script.
package hostiface

// ChannelRack lets the runtime select channels and emit notes. Note-off may
// be sent either as a true note-off or as a note-on with velocity 0; both
// are acceptable (spec.md §9) and the choice is left to the adapter.
type ChannelRack interface {
	Count() int
	SelectedIndex() int
	SetSelectedIndex(idx int)
	NameByIndex(idx int) string
	NoteOn(channel int, note, velocity uint8)
}

// Mixer lets the runtime change track volumes and read tempo.
type Mixer interface {
	// SetVolume sets track volume to value in [0,1] or a device-native unit
	// the adapter defines.
	SetVolume(track int, value float64)

	// TempoMilliBPM returns the current tempo as BPM * 1000; the core
	// divides by 1000 to get BPM.
	TempoMilliBPM() int
}

// Transport lets the runtime control playback.
type Transport interface {
	Stop()
	TogglePlay()
	ToggleRecord()
}

// Device lets the runtime talk to the physical controller and to sibling
// scripts.
type Device interface {
	// SendSysEx sends a raw SYSEX byte buffer to the controller.
	SendSysEx(bytes []byte) error

	// PortNumber returns the current MIDI port number.
	PortNumber() int

	// DispatchToScripts sends a 3-byte MIDI message to sibling scripts,
	// packed as status | (data1<<8) | (data2<<16) (§6).
	DispatchToScripts(status, data1, data2 uint8) error
}

// Pack3 packs a 3-byte MIDI message the way DispatchToScripts's wire format
// requires: status | (data1<<8) | (data2<<16).
func Pack3(status, data1, data2 uint8) uint32 {
	return uint32(status) | uint32(data1)<<8 | uint32(data2)<<16
}

// TempoBPM converts a Mixer's milli-BPM reading into BPM.
func TempoBPM(m Mixer) float64 {
	return float64(m.TempoMilliBPM()) / 1000.0
}
