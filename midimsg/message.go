// Package midimsg defines the MidiMessage value type that flows through the
// matcher/processor dispatch pipeline.
package midimsg

// Standard MIDI channel-voice status nibbles (masked status, high nibble).
// The spec's Open Questions note one teacher variant swaps these; this repo
// adopts the MIDI standard per spec.md §9.
const (
	StatusNoteOff   uint8 = 0x80
	StatusNoteOn    uint8 = 0x90
	StatusPolyAT    uint8 = 0xA0
	StatusCC        uint8 = 0xB0
	StatusProgram   uint8 = 0xC0
	StatusChannelAT uint8 = 0xD0
	StatusPitchBend uint8 = 0xE0

	// IsOnValue and IsOffValue are the data2 extremes used by toggle
	// controls that transmit only their two endpoints (§6).
	IsOnValue  uint8 = 0x7F
	IsOffValue uint8 = 0x00
)

// Message is the immutable-ish value type carrying one inbound MIDI event:
// status/data1/data2, a timestamp in clock milliseconds, a mutable Handled
// flag, and free-form side-channel annotations. It is owned exclusively by
// the frame handling one event and is not retained across events; the
// recorder value-copies the fields it needs into a Pattern instead of
// holding onto a Message.
type Message struct {
	Status      uint8
	Data1       uint8
	Data2       uint8
	TimestampMs int64

	// Handled is consumed only by the host-edge shim: it decides whether to
	// suppress the host's default handling of this event. The Processor
	// never short-circuits dispatch based on it.
	Handled bool

	// annotations is a small side-channel of caller-set strings, e.g.
	// recording-time context. Created lazily on first Annotate.
	annotations map[string]string
}

// New constructs a Message with the given wire bytes and timestamp.
func New(status, data1, data2 uint8, timestampMs int64) Message {
	return Message{Status: status, Data1: data1, Data2: data2, TimestampMs: timestampMs}
}

// MaskedStatus returns Status & 0xF0.
func (m Message) MaskedStatus() uint8 {
	return m.Status & 0xF0
}

// Channel returns Status & 0x0F.
func (m Message) Channel() uint8 {
	return m.Status & 0x0F
}

// IsNoteOn reports whether the masked status is StatusNoteOn.
func (m Message) IsNoteOn() bool {
	return m.MaskedStatus() == StatusNoteOn
}

// IsNoteOff reports whether the masked status is StatusNoteOff. Some
// devices send NoteOn with velocity 0 to mean note-off; that equivalence is
// left to the adapter (spec.md §9) and is not decided here.
func (m Message) IsNoteOff() bool {
	return m.MaskedStatus() == StatusNoteOff
}

// Annotate returns a copy of the message with a side-channel annotation set;
// the original message and its annotations are left unchanged. Calls can be
// chained at construction time: midimsg.New(...).Annotate("k", "v").
func (m Message) Annotate(key, value string) Message {
	ann := make(map[string]string, len(m.annotations)+1)
	for k, v := range m.annotations {
		ann[k] = v
	}
	ann[key] = value
	m.annotations = ann
	return m
}

// Annotation returns the value for key and whether it was set.
func (m Message) Annotation(key string) (string, bool) {
	v, ok := m.annotations[key]
	return v, ok
}
