// Package matchers implements the closed vocabulary of pure predicates over
// midimsg.Message used to classify inbound MIDI events.
package matchers

import "github.com/rjuang/rum/midimsg"

// Matcher is a pure predicate over a MidiMessage.
type Matcher func(msg midimsg.Message) bool

// field selects which byte of the message a range/set/equality matcher
// tests.
type field int

const (
	fieldStatus field = iota
	fieldMaskedStatus
	fieldData1
	fieldData2
)

func (f field) value(msg midimsg.Message) uint8 {
	switch f {
	case fieldMaskedStatus:
		return msg.MaskedStatus()
	case fieldData1:
		return msg.Data1
	case fieldData2:
		return msg.Data2
	default:
		return msg.Status
	}
}

func equals(f field, v uint8) Matcher {
	return func(msg midimsg.Message) bool { return f.value(msg) == v }
}

func inRange(f field, lo, hi uint8) Matcher {
	if lo > hi {
		panic("matchers: inRange requires lo <= hi")
	}
	return func(msg midimsg.Message) bool {
		x := f.value(msg)
		return x >= lo && x <= hi
	}
}

func inSet(f field, set []uint8) Matcher {
	members := make(map[uint8]struct{}, len(set))
	for _, v := range set {
		members[v] = struct{}{}
	}
	return func(msg midimsg.Message) bool {
		_, ok := members[f.value(msg)]
		return ok
	}
}

// StatusEquals matches an exact status byte.
func StatusEquals(status uint8) Matcher { return equals(fieldStatus, status) }

// MaskedStatusEquals matches status & 0xF0 == masked.
func MaskedStatusEquals(masked uint8) Matcher { return equals(fieldMaskedStatus, masked) }

// StatusInRange matches lo <= status <= hi.
func StatusInRange(lo, hi uint8) Matcher { return inRange(fieldStatus, lo, hi) }

// StatusInSet matches status against a fixed set of values.
func StatusInSet(set ...uint8) Matcher { return inSet(fieldStatus, set) }

// Data1Equals matches an exact data1 byte.
func Data1Equals(v uint8) Matcher { return equals(fieldData1, v) }

// Data1InRange matches lo <= data1 <= hi.
func Data1InRange(lo, hi uint8) Matcher { return inRange(fieldData1, lo, hi) }

// Data1InSet matches data1 against a fixed set of values.
func Data1InSet(set ...uint8) Matcher { return inSet(fieldData1, set) }

// Data2Equals matches an exact data2 byte.
func Data2Equals(v uint8) Matcher { return equals(fieldData2, v) }

// Data2InRange matches lo <= data2 <= hi.
func Data2InRange(lo, hi uint8) Matcher { return inRange(fieldData2, lo, hi) }

// Data2InSet matches data2 against a fixed set of values.
func Data2InSet(set ...uint8) Matcher { return inSet(fieldData2, set) }

// ChannelEquals matches status & 0x0F == channel.
func ChannelEquals(channel uint8) Matcher {
	return func(msg midimsg.Message) bool { return msg.Channel() == channel }
}

// NoteOn matches masked status == StatusNoteOn.
func NoteOn() Matcher { return MaskedStatusEquals(midimsg.StatusNoteOn) }

// NoteOff matches masked status == StatusNoteOff.
func NoteOff() Matcher { return MaskedStatusEquals(midimsg.StatusNoteOff) }

// All is a conjunction that short-circuits at the first false matcher. An
// empty All always matches (vacuous truth).
func All(ms ...Matcher) Matcher {
	return func(msg midimsg.Message) bool {
		for _, m := range ms {
			if !m(msg) {
				return false
			}
		}
		return true
	}
}

// Any is a disjunction that short-circuits at the first true matcher. An
// empty Any never matches.
func Any(ms ...Matcher) Matcher {
	return func(msg midimsg.Message) bool {
		for _, m := range ms {
			if m(msg) {
				return true
			}
		}
		return false
	}
}

// Not negates a matcher.
func Not(m Matcher) Matcher {
	return func(msg midimsg.Message) bool { return !m(msg) }
}

// HasSpec names the optional per-field constraints accepted by Has. A zero
// ConstraintSpec (kind == kindNone) means "ignore this field".
type HasSpec struct {
	Status ConstraintSpec
	Data1  ConstraintSpec
	Data2  ConstraintSpec
}

type constraintKind int

const (
	kindNone constraintKind = iota
	kindEquals
	kindRange
	kindSet
)

// ConstraintSpec is one equals/range/set constraint, or "ignored" (the zero
// value). Build one with CEquals, CRange, or CSet.
type ConstraintSpec struct {
	kind   constraintKind
	equals uint8
	lo, hi uint8
	set    []uint8
}

// CEquals builds an equals constraint.
func CEquals(v uint8) ConstraintSpec { return ConstraintSpec{kind: kindEquals, equals: v} }

// CRange builds an inclusive-range constraint.
func CRange(lo, hi uint8) ConstraintSpec { return ConstraintSpec{kind: kindRange, lo: lo, hi: hi} }

// CSet builds a set-membership constraint.
func CSet(values ...uint8) ConstraintSpec { return ConstraintSpec{kind: kindSet, set: values} }

func (c ConstraintSpec) matcher(f field) (Matcher, bool) {
	switch c.kind {
	case kindEquals:
		return equals(f, c.equals), true
	case kindRange:
		return inRange(f, c.lo, c.hi), true
	case kindSet:
		return inSet(f, c.set), true
	default:
		return nil, false
	}
}

// Has is the midi_has(...) convenience constructor of spec.md §4.2: it
// accepts optional constraints on status/data1/data2 and ANDs together
// whichever were specified, ignoring the rest.
func Has(spec HasSpec) Matcher {
	var ms []Matcher
	if m, ok := spec.Status.matcher(fieldStatus); ok {
		ms = append(ms, m)
	}
	if m, ok := spec.Data1.matcher(fieldData1); ok {
		ms = append(ms, m)
	}
	if m, ok := spec.Data2.matcher(fieldData2); ok {
		ms = append(ms, m)
	}
	return All(ms...)
}
