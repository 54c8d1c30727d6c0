package launchpad

import (
	"reflect"
	"testing"
)

func TestBuildOrdersOffOnColorThenBlink(t *testing.T) {
	b := NewCommandBuilder(0x90, 0x91)
	b.LightOff(1).LightOn(2).LightColor(3, 0x45).Blink(4, 0x11)

	got := b.Build()
	want := []byte{
		0x90, 1, 0x00,
		0x90, 2, 0x77,
		0x90, 3, 0x45,
		0x91, 4, 0x11,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLightColorPanicsOnOddArgs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for odd-length light/value pairs")
		}
	}()
	NewCommandBuilder(0x90, 0x91).LightColor(1, 2, 3)
}

func TestBlinkPanicsOnOddArgs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for odd-length blink pairs")
		}
	}()
	NewCommandBuilder(0x90, 0x91).Blink(1, 2, 3)
}

func TestBuildWithNoQueuedUpdatesIsEmpty(t *testing.T) {
	b := NewCommandBuilder(0x90, 0x91)
	if got := b.Build(); len(got) != 0 {
		t.Fatalf("expected empty command, got %v", got)
	}
}

func TestBuilderIsChainable(t *testing.T) {
	b := NewCommandBuilder(0x90, 0x91).LightOn(1, 2).LightOff(3)
	got := b.Build()
	want := []byte{0x90, 3, 0x00, 0x90, 1, 0x77, 0x90, 2, 0x77}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
