package parse

import (
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	in := "0040  LDA $10\n\n   \n\xff\xfe0042  LDX #$00\n"
	lines, err := ReadLines(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"0040  LDA $10", "0042  LDX #$00"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadLinesEmpty(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("\n  \n"))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("got %d lines, want 0", len(lines))
	}
}

func TestParseLines(t *testing.T) {
	entries := ParseLines([]string{"LDA $10", "STA $14"})
	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].Idx != 0 || entries[1].Idx != 1 {
		t.Errorf("positions %d,%d, want 0,1", entries[0].Idx, entries[1].Idx)
	}
	if entries[0].Template != "LDA {N0}" || entries[1].Template != "STA {N0}" {
		t.Errorf("templates %q,%q", entries[0].Template, entries[1].Template)
	}
}
