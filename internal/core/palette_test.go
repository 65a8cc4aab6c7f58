package core

import "testing"

func TestColorAt(t *testing.T) {
	if ColorAt(0) != ColorAt(PaletteSize()) {
		t.Fatalf("palette must wrap around")
	}
	if ColorAt(-1) != ColorAt(0) {
		t.Fatalf("negative positions get the first color")
	}
	if ColorAt(0) == ColorAt(1) {
		t.Fatalf("adjacent positions must differ")
	}
	// Deterministic across calls.
	if ColorAt(3) != ColorAt(3) {
		t.Fatalf("ColorAt must be deterministic")
	}
}
