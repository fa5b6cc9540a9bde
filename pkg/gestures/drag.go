package gestures

import (
	"math"
	"time"

	"github.com/go-drift/tableview/pkg/animation"
	"github.com/go-drift/tableview/pkg/graphics"
)

// velocityWindow is how far back pointer samples count toward velocity.
const velocityWindow = 100 * time.Millisecond

// VerticalDragGestureRecognizer recognizes drags along the vertical axis.
// It claims the gesture once vertical movement exceeds the touch slop and
// dominates horizontal movement.
type VerticalDragGestureRecognizer struct {
	// OnStart is called when the drag is recognized.
	OnStart func(DragStartDetails)
	// OnUpdate is called for each movement while the drag is active.
	OnUpdate func(DragUpdateDetails)
	// OnEnd is called when the pointer is lifted, with release velocity.
	OnEnd func(DragEndDetails)
	// OnCancel is called when an active drag is interrupted.
	OnCancel func()

	arena    *GestureArena
	trackers map[int64]*dragTracker
}

type dragTracker struct {
	down     graphics.Offset
	last     graphics.Offset
	totalDX  float64
	totalDY  float64
	accepted bool
	samples  []velocitySample
}

type velocitySample struct {
	at time.Time
	y  float64
}

// NewVerticalDragGestureRecognizer creates a vertical drag recognizer
// competing in the given arena. A nil arena means [DefaultArena].
func NewVerticalDragGestureRecognizer(arena *GestureArena) *VerticalDragGestureRecognizer {
	if arena == nil {
		arena = DefaultArena
	}
	return &VerticalDragGestureRecognizer{
		arena:    arena,
		trackers: make(map[int64]*dragTracker),
	}
}

// AddPointer starts tracking a pointer from its down event.
func (r *VerticalDragGestureRecognizer) AddPointer(event PointerEvent) {
	tracker := &dragTracker{down: event.Position, last: event.Position}
	tracker.addSample(animation.Now(), event.Position.Y)
	r.trackers[event.PointerID] = tracker
	r.arena.Add(event.PointerID, r)
}

// HandleEvent processes move, up and cancel events for tracked pointers.
func (r *VerticalDragGestureRecognizer) HandleEvent(event PointerEvent) {
	tracker, ok := r.trackers[event.PointerID]
	if !ok {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		delta := graphics.Offset{
			X: event.Position.X - tracker.last.X,
			Y: event.Position.Y - tracker.last.Y,
		}
		tracker.last = event.Position
		tracker.totalDX += delta.X
		tracker.totalDY += delta.Y
		tracker.addSample(animation.Now(), event.Position.Y)

		if tracker.accepted {
			if r.OnUpdate != nil {
				r.OnUpdate(DragUpdateDetails{
					Position:     event.Position,
					Delta:        delta,
					PrimaryDelta: delta.Y,
				})
			}
			return
		}
		if math.Abs(tracker.totalDY) > DefaultTouchSlop && math.Abs(tracker.totalDY) > math.Abs(tracker.totalDX) {
			r.arena.Resolve(event.PointerID, r, true)
		} else if math.Abs(tracker.totalDX) > DefaultTouchSlop {
			r.arena.Resolve(event.PointerID, r, false)
		}
	case PointerPhaseUp:
		if tracker.accepted {
			velocity := tracker.velocity(animation.Now())
			delete(r.trackers, event.PointerID)
			if r.OnEnd != nil {
				r.OnEnd(DragEndDetails{
					Velocity:        graphics.Offset{Y: velocity},
					PrimaryVelocity: velocity,
				})
			}
			return
		}
		r.arena.Resolve(event.PointerID, r, false)
	case PointerPhaseCancel:
		if tracker.accepted {
			delete(r.trackers, event.PointerID)
			if r.OnCancel != nil {
				r.OnCancel()
			}
			return
		}
		r.arena.Resolve(event.PointerID, r, false)
	}
}

// AcceptGesture implements ArenaMember.
func (r *VerticalDragGestureRecognizer) AcceptGesture(pointer int64) {
	tracker, ok := r.trackers[pointer]
	if !ok {
		return
	}
	tracker.accepted = true
	if r.OnStart != nil {
		r.OnStart(DragStartDetails{Position: tracker.down})
	}
	// Report movement that accumulated before acceptance so no scroll
	// distance is lost to the slop region.
	if tracker.totalDY != 0 && r.OnUpdate != nil {
		r.OnUpdate(DragUpdateDetails{
			Position:     tracker.last,
			Delta:        graphics.Offset{X: tracker.totalDX, Y: tracker.totalDY},
			PrimaryDelta: tracker.totalDY,
		})
	}
}

// RejectGesture implements ArenaMember.
func (r *VerticalDragGestureRecognizer) RejectGesture(pointer int64) {
	delete(r.trackers, pointer)
}

// Dispose stops tracking all pointers.
func (r *VerticalDragGestureRecognizer) Dispose() {
	r.trackers = make(map[int64]*dragTracker)
}

func (t *dragTracker) addSample(at time.Time, y float64) {
	t.samples = append(t.samples, velocitySample{at: at, y: y})
	cutoff := at.Add(-velocityWindow)
	trimmed := t.samples[:0]
	for _, s := range t.samples {
		if !s.at.Before(cutoff) {
			trimmed = append(trimmed, s)
		}
	}
	t.samples = trimmed
}

// velocity estimates vertical velocity in pixels per second from recent
// samples. Returns 0 when fewer than two samples are in the window.
func (t *dragTracker) velocity(now time.Time) float64 {
	cutoff := now.Add(-velocityWindow)
	var recent []velocitySample
	for _, s := range t.samples {
		if !s.at.Before(cutoff) {
			recent = append(recent, s)
		}
	}
	if len(recent) < 2 {
		return 0
	}
	first := recent[0]
	last := recent[len(recent)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.y - first.y) / dt
}
