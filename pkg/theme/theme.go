// Package theme provides visual configuration for table views.
//
// A [TableThemeData] carries the metrics and palette a host needs to render
// cells. The library itself only consumes RowExtent, CacheExtent and
// MaxIdleCells; the colors and font face exist for hosts that paint cells.
package theme

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/tableview/pkg/graphics"
)

// TableThemeData contains visual configuration for a table view.
type TableThemeData struct {
	// Face is the font face used for cell labels and metric derivation.
	Face font.Face

	// RowExtent is the fixed height of every row in pixels.
	RowExtent float64
	// CacheExtent is how many pixels beyond the viewport stay bound,
	// reducing rebinding churn during fast scrolling.
	CacheExtent float64
	// CellPadding is applied inside each cell.
	CellPadding graphics.EdgeInsets
	// MaxIdleCells caps the number of idle cells retained per reuse
	// identifier.
	MaxIdleCells int

	// Background is the table background color.
	Background graphics.Color
	// CellBackground is the resting cell color.
	CellBackground graphics.Color
	// Highlight is the transient color of an activated cell.
	Highlight graphics.Color
	// Text is the primary label color.
	Text graphics.Color
	// Detail is the secondary label color.
	Detail graphics.Color
}

// DefaultTableTheme returns a light theme with metrics derived from the
// basicfont face.
func DefaultTableTheme() *TableThemeData {
	face := basicfont.Face7x13
	return &TableThemeData{
		Face:           face,
		RowExtent:      graphics.DefaultRowExtent(face),
		CacheExtent:    graphics.LineHeight(face) * 6,
		CellPadding:    graphics.EdgeInsetsSymmetric(16, 0),
		MaxIdleCells:   24,
		Background:     graphics.ColorWhite,
		CellBackground: graphics.ColorWhite,
		Highlight:      graphics.RGB(0xD9, 0xD9, 0xD9),
		Text:           graphics.ColorBlack,
		Detail:         graphics.RGB(0x8A, 0x8A, 0x8E),
	}
}

// Copy returns a shallow copy of the theme data.
func (t *TableThemeData) Copy() *TableThemeData {
	copied := *t
	return &copied
}
