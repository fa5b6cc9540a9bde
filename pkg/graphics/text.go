package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ellipsis is appended to truncated strings.
const ellipsis = "…"

// MeasureString returns the advance width of s in pixels for the given face.
func MeasureString(face font.Face, s string) float64 {
	return fixedToFloat(font.MeasureString(face, s))
}

// LineHeight returns the recommended line spacing of the face in pixels.
func LineHeight(face font.Face) float64 {
	return fixedToFloat(face.Metrics().Height)
}

// DefaultRowExtent derives a comfortable row height from a font face:
// one line of text plus symmetric padding.
func DefaultRowExtent(face font.Face) float64 {
	line := LineHeight(face)
	return line * 2.75
}

// TruncateToWidth shortens s so that it fits within maxWidth pixels when
// rendered with face, appending an ellipsis when truncation occurs. If even
// the ellipsis alone does not fit, the empty string is returned.
func TruncateToWidth(face font.Face, s string, maxWidth float64) string {
	if MeasureString(face, s) <= maxWidth {
		return s
	}
	ellipsisWidth := MeasureString(face, ellipsis)
	if ellipsisWidth > maxWidth {
		return ""
	}
	budget := maxWidth - ellipsisWidth
	var width float64
	runes := []rune(s)
	for i, r := range runes {
		advance, ok := face.GlyphAdvance(r)
		if !ok {
			// Unknown glyph: fall back to measuring the prefix so far.
			width = MeasureString(face, string(runes[:i+1]))
		} else {
			width += fixedToFloat(advance)
		}
		if width > budget {
			return string(runes[:i]) + ellipsis
		}
	}
	return s
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
