package graphics

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestMeasureString(t *testing.T) {
	face := basicfont.Face7x13
	// Face7x13 advances 7px per glyph.
	if got := MeasureString(face, "abc"); got != 21 {
		t.Errorf("MeasureString = %v, want 21", got)
	}
	if got := MeasureString(face, ""); got != 0 {
		t.Errorf("MeasureString(empty) = %v, want 0", got)
	}
}

func TestLineHeight(t *testing.T) {
	face := basicfont.Face7x13
	if got := LineHeight(face); got != 13 {
		t.Errorf("LineHeight = %v, want 13", got)
	}
	if row := DefaultRowExtent(face); row <= LineHeight(face) {
		t.Errorf("DefaultRowExtent = %v, want taller than one line", row)
	}
}

func TestTruncateToWidth(t *testing.T) {
	face := basicfont.Face7x13

	if got := TruncateToWidth(face, "hi", 100); got != "hi" {
		t.Errorf("short string changed: %q", got)
	}
	if got := TruncateToWidth(face, "hello world", 35); got != "hello…" {
		t.Errorf("TruncateToWidth = %q, want hello…", got)
	}
	if got := TruncateToWidth(face, "hello", -1); got != "" {
		t.Errorf("TruncateToWidth with no room = %q, want empty", got)
	}
}
