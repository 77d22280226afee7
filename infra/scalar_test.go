package infra_test

import (
	"testing"

	"github.com/whatwg-go/datetime/infra"
)

func TestIsASCIITabNewline(t *testing.T) {
	for _, r := range "\t\n\r" {
		if !infra.IsASCIITabNewline(r) {
			t.Fatalf("expected %q to be tab-or-newline", r)
		}
	}
	if infra.IsASCIITabNewline('a') || infra.IsASCIITabNewline(' ') {
		t.Fatalf("unexpected tab-or-newline match")
	}
}

func TestIsC0Control(t *testing.T) {
	if !infra.IsC0Control(0x0000) || !infra.IsC0Control(0x001E) || !infra.IsC0Control(0x001F) {
		t.Fatalf("expected C0 control match")
	}
	// U+007F DELETE is an ASCII control but not a C0 control.
	if infra.IsC0Control(0x007F) {
		t.Fatalf("DELETE must not be a C0 control")
	}
}

func TestIsC0ControlSpace(t *testing.T) {
	if !infra.IsC0ControlSpace(' ') || !infra.IsC0ControlSpace(0x0019) {
		t.Fatalf("expected C0-control-or-space match")
	}
	if infra.IsC0ControlSpace('!') {
		t.Fatalf("unexpected C0-control-or-space match")
	}
}

func TestIsNoncharacter(t *testing.T) {
	for _, r := range []rune{0xFDD0, 0xFDD1, 0xFDEF, 0xFFFE, 0xFFFF, 0x1FFFE, 0x10FFFF} {
		if !infra.IsNoncharacter(r) {
			t.Fatalf("expected U+%04X to be a noncharacter", r)
		}
	}
	for _, r := range []rune{'a', 0xFDCF, 0xFDF0, 0xFFFD, 0x10FFFD} {
		if infra.IsNoncharacter(r) {
			t.Fatalf("U+%04X is not a noncharacter", r)
		}
	}
}

func TestSurrogates(t *testing.T) {
	if infra.IsSurrogate(0xD799) || !infra.IsSurrogate(0xD809) || !infra.IsSurrogate(0xDFFF) || infra.IsSurrogate(0xE000) {
		t.Fatalf("surrogate range check failed")
	}
	if !infra.IsLeadingSurrogate(0xD800) || !infra.IsLeadingSurrogate(0xDBFF) || infra.IsLeadingSurrogate(0xDC00) {
		t.Fatalf("leading surrogate range check failed")
	}
	if infra.IsTrailingSurrogate(0xDB99) || !infra.IsTrailingSurrogate(0xDC00) || !infra.IsTrailingSurrogate(0xDFFF) {
		t.Fatalf("trailing surrogate range check failed")
	}
}
