package midimsg

import "testing"

func TestMaskedStatusAndChannel(t *testing.T) {
	m := New(0x93, 0, 0, 0)
	if m.MaskedStatus() != StatusNoteOn {
		t.Fatalf("expected masked status 0x90, got %#x", m.MaskedStatus())
	}
	if m.Channel() != 3 {
		t.Fatalf("expected channel 3, got %d", m.Channel())
	}
}

func TestIsNoteOnIsNoteOff(t *testing.T) {
	on := New(0x91, 0, 0, 0)
	off := New(0x82, 0, 0, 0)
	if !on.IsNoteOn() || on.IsNoteOff() {
		t.Fatal("expected note-on message to report IsNoteOn only")
	}
	if !off.IsNoteOff() || off.IsNoteOn() {
		t.Fatal("expected note-off message to report IsNoteOff only")
	}
}

func TestAnnotateIsImmutableAndChainable(t *testing.T) {
	base := New(0x90, 1, 2, 0)
	annotated := base.Annotate("source", "loop").Annotate("pattern", "even")

	if _, ok := base.Annotation("source"); ok {
		t.Fatal("expected the original message to be unaffected by Annotate")
	}

	v, ok := annotated.Annotation("source")
	if !ok || v != "loop" {
		t.Fatalf("expected annotation 'loop', got %q (ok=%v)", v, ok)
	}
	v2, ok2 := annotated.Annotation("pattern")
	if !ok2 || v2 != "even" {
		t.Fatalf("expected annotation 'even', got %q (ok=%v)", v2, ok2)
	}
}

func TestAnnotationMissingKeyReturnsFalse(t *testing.T) {
	m := New(0x90, 0, 0, 0)
	if _, ok := m.Annotation("nope"); ok {
		t.Fatal("expected missing annotation to report false")
	}
}

func TestAnnotateDoesNotMutateSharedMapAcrossBranches(t *testing.T) {
	base := New(0x90, 0, 0, 0).Annotate("a", "1")
	branchA := base.Annotate("b", "2")
	branchB := base.Annotate("b", "3")

	if v, _ := branchA.Annotation("b"); v != "2" {
		t.Fatalf("expected branchA's b to be 2, got %q", v)
	}
	if v, _ := branchB.Annotation("b"); v != "3" {
		t.Fatalf("expected branchB's b to be 3, got %q", v)
	}
}
