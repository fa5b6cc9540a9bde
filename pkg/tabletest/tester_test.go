package tabletest

import (
	"strconv"
	"testing"
	"time"

	"github.com/go-drift/tableview/pkg/graphics"
	"github.com/go-drift/tableview/pkg/table"
)

const rowCellID table.ReuseID = "row"

// listSource is a single-section source generating labels on demand.
type listSource struct {
	rows int
}

func (s *listSource) NumberOfSections() int { return 1 }

func (s *listSource) NumberOfRows(int) int { return s.rows }

func (s *listSource) CellForRow(v *table.View, path table.IndexPath) *table.Cell {
	cell := v.DequeueReusableCell(rowCellID)
	cell.Text = "row " + strconv.Itoa(path.Row)
	return cell
}

func newListTester(t *testing.T, rows int) *Tester {
	tester := NewTester(t, table.Config{RowExtent: 50, CacheExtent: -1})
	tester.View.RegisterCell(rowCellID, func() *table.Cell { return table.NewCell(rowCellID) })
	tester.View.SetDataSource(&listSource{rows: rows})
	return tester
}

func TestTapRowActivates(t *testing.T) {
	tester := newListTester(t, 100)
	var activated []table.IndexPath
	tester.View.SetActivationHandler(table.ActivationHandlerFunc(func(_ *table.View, path table.IndexPath) {
		activated = append(activated, path)
	}))

	if err := tester.TapRow(table.IndexPath{Section: 0, Row: 3}); err != nil {
		t.Fatalf("TapRow: %v", err)
	}
	if len(activated) != 1 {
		t.Fatalf("handler notified %d times, want 1", len(activated))
	}
	if activated[0] != (table.IndexPath{Section: 0, Row: 3}) {
		t.Errorf("activated %v, want [0, 3]", activated[0])
	}
}

func TestTapRowRejectsOffscreenRow(t *testing.T) {
	tester := newListTester(t, 100)
	if err := tester.TapRow(table.IndexPath{Section: 0, Row: 50}); err == nil {
		t.Error("TapRow accepted a row below the viewport")
	}
	if err := tester.TapRow(table.IndexPath{Section: 0, Row: 100}); err == nil {
		t.Error("TapRow accepted an out-of-range row")
	}
}

func TestDragScrolls(t *testing.T) {
	tester := newListTester(t, 100)

	tester.DragFrom(graphics.Offset{X: 200, Y: 400}, graphics.Offset{Y: -120})

	if got := tester.View.Position().Offset(); got != 120 {
		t.Errorf("offset after drag = %v, want 120", got)
	}
}

func TestDragDoesNotActivate(t *testing.T) {
	tester := newListTester(t, 100)
	tester.View.SetActivationHandler(table.ActivationHandlerFunc(func(_ *table.View, path table.IndexPath) {
		t.Errorf("drag activated row %v", path)
	}))

	tester.DragFrom(graphics.Offset{X: 200, Y: 400}, graphics.Offset{Y: -120})
}

func TestFlingSettles(t *testing.T) {
	tester := newListTester(t, 1000)

	tester.Fling(graphics.Offset{X: 200, Y: 500}, graphics.Offset{Y: -300})
	if err := tester.PumpAndSettle(10 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}

	offset := tester.View.Position().Offset()
	if offset <= 320 {
		t.Errorf("offset after fling = %v, want momentum past the 300px drag", offset)
	}
	if table.HasActiveBallistics() {
		t.Error("simulation still active after settle")
	}
}

func TestFlingKeepsWorkingSetBounded(t *testing.T) {
	tester := newListTester(t, 100000)

	tester.Fling(graphics.Offset{X: 200, Y: 500}, graphics.Offset{Y: -400})
	maxBound := 0
	for i := 0; i < 600 && table.HasActiveBallistics(); i++ {
		tester.Pump()
		if n := tester.View.BoundCount(); n > maxBound {
			maxBound = n
		}
	}

	// A 600px viewport over 50px rows shows 12 rows; allow one row of
	// slack at unaligned offsets.
	if maxBound > 13 {
		t.Errorf("peak bound count during fling = %d, want at most 13", maxBound)
	}
	if constructed := tester.View.Pool().Constructed(); constructed > 16 {
		t.Errorf("constructed %d cells during fling, want near one screenful", constructed)
	}
}

func TestUpdatesCounted(t *testing.T) {
	tester := newListTester(t, 100)
	if tester.Updates() == 0 {
		t.Fatal("binding the source requested no repaints")
	}
	before := tester.Updates()
	tester.View.Position().JumpTo(100)
	if tester.Updates() <= before {
		t.Error("scrolling requested no repaint")
	}
}

func TestSetViewportRebinds(t *testing.T) {
	tester := newListTester(t, 100)
	if got := tester.View.BoundCount(); got != 12 {
		t.Fatalf("BoundCount = %d, want 12 for a 600px viewport", got)
	}
	tester.SetViewport(400, 300)
	if got := tester.View.BoundCount(); got != 6 {
		t.Errorf("BoundCount after shrink = %d, want 6", got)
	}
}
