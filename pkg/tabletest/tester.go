// Package tabletest provides a test harness for table views: a fake clock
// wired into the animation time source, pointer-event simulation, and
// pump helpers for ballistic scrolling.
package tabletest

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/tableview/pkg/animation"
	"github.com/go-drift/tableview/pkg/gestures"
	"github.com/go-drift/tableview/pkg/graphics"
	"github.com/go-drift/tableview/pkg/table"
)

const (
	// DefaultTestWidth is the default logical width for the test viewport.
	DefaultTestWidth = 400
	// DefaultTestHeight is the default logical height for the test viewport.
	DefaultTestHeight = 600
	// frameInterval is the simulated frame duration used by pump helpers.
	frameInterval = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: scrolling did not settle")

// Tester drives a View with simulated input and a fake clock.
// Call via NewTester so global state is restored on test cleanup.
type Tester struct {
	// View is the table view under test.
	View *table.View

	clock         *FakeClock
	restoreClock  func()
	nextPointerID int64
	pointers      map[int64]graphics.Offset
	updates       int
}

// NewTester creates a tester owning a fresh view built from config. The
// config's OnUpdate is chained behind the tester's repaint counter. The
// viewport defaults to DefaultTestWidth x DefaultTestHeight.
func NewTester(t *testing.T, config table.Config) *Tester {
	tester := &Tester{
		clock:    NewFakeClock(),
		pointers: make(map[int64]graphics.Offset),
	}
	tester.restoreClock = animation.SetClock(tester.clock)

	userUpdate := config.OnUpdate
	config.OnUpdate = func() {
		tester.updates++
		if userUpdate != nil {
			userUpdate()
		}
	}
	tester.View = table.NewView(config)
	tester.View.SetViewport(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight})

	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the animation clock and stops any running simulation.
func (t *Tester) Cleanup() {
	t.View.Position().StopBallistic()
	t.restoreClock()
}

// Clock returns the fake clock for advancing time manually.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Updates returns how many repaint requests the view has issued.
func (t *Tester) Updates() int {
	return t.updates
}

// SetViewport resizes the view's visible area.
func (t *Tester) SetViewport(width, height float64) {
	t.View.SetViewport(graphics.Size{Width: width, Height: height})
}

// TapAt simulates a tap at the given viewport position.
func (t *Tester) TapAt(pos graphics.Offset) {
	id := t.allocPointerID()
	t.sendDown(id, pos)
	t.clock.Advance(frameInterval)
	t.sendUp(id, pos)
}

// TapRow simulates a tap on the center of the given row. The row must be
// inside the viewport.
func (t *Tester) TapRow(path table.IndexPath) error {
	rect, ok := t.View.RectForRow(path)
	if !ok {
		return errors.New("TapRow: row " + path.String() + " out of range")
	}
	center := rect.Center()
	if !graphics.RectFromLTWH(0, 0, t.View.Viewport().Width, t.View.Viewport().Height).Contains(center) {
		return errors.New("TapRow: row " + path.String() + " is offscreen")
	}
	t.TapAt(center)
	return nil
}

// DragFrom simulates a drag from start by delta, emitted over several
// frames so gesture recognizers observe realistic movement.
func (t *Tester) DragFrom(start, delta graphics.Offset) {
	t.dragWithSteps(start, delta, 10)
}

// Fling simulates a fast drag that releases with velocity: the full delta
// is covered in only a few frames before the pointer lifts.
func (t *Tester) Fling(start, delta graphics.Offset) {
	t.dragWithSteps(start, delta, 3)
}

func (t *Tester) dragWithSteps(start, delta graphics.Offset, steps int) {
	id := t.allocPointerID()
	t.sendDown(id, start)
	for i := 1; i <= steps; i++ {
		t.clock.Advance(frameInterval)
		frac := float64(i) / float64(steps)
		t.sendMove(id, graphics.Offset{
			X: start.X + delta.X*frac,
			Y: start.Y + delta.Y*frac,
		})
	}
	t.sendUp(id, graphics.Offset{X: start.X + delta.X, Y: start.Y + delta.Y})
}

// Pump advances the clock by one frame and steps active scroll simulations.
func (t *Tester) Pump() {
	t.clock.Advance(frameInterval)
	table.StepBallistics()
}

// PumpAndSettle pumps frames until no scroll simulation is active, up to
// the given timeout of simulated time.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for table.HasActiveBallistics() {
		if elapsed > timeout {
			return ErrSettleTimeout
		}
		t.Pump()
		elapsed += frameInterval
	}
	return nil
}

func (t *Tester) allocPointerID() int64 {
	t.nextPointerID++
	return t.nextPointerID
}

func (t *Tester) sendDown(id int64, pos graphics.Offset) {
	t.pointers[id] = pos
	t.View.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
	})
}

func (t *Tester) sendMove(id int64, pos graphics.Offset) {
	prev := t.pointers[id]
	t.pointers[id] = pos
	t.View.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Delta:     graphics.Offset{X: pos.X - prev.X, Y: pos.Y - prev.Y},
		Phase:     gestures.PointerPhaseMove,
	})
}

func (t *Tester) sendUp(id int64, pos graphics.Offset) {
	prev := t.pointers[id]
	delete(t.pointers, id)
	t.View.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Delta:     graphics.Offset{X: pos.X - prev.X, Y: pos.Y - prev.Y},
		Phase:     gestures.PointerPhaseUp,
	})
}
