package gestures

import "math"

// DefaultTouchSlop is the movement in pixels beyond which a pointer is no
// longer considered a tap.
const DefaultTouchSlop = 18.0

// TapGestureRecognizer recognizes a tap: pointer down and up without
// moving beyond the touch slop.
type TapGestureRecognizer struct {
	// OnTap is called when a tap is recognized.
	OnTap func()
	// OnTapUp is called when a tap is recognized, with the lift position.
	OnTapUp func(TapUpDetails)

	arena    *GestureArena
	trackers map[int64]*tapTracker
}

type tapTracker struct {
	down     PointerEvent
	upSeen   bool
	upEvent  PointerEvent
	accepted bool
}

// NewTapGestureRecognizer creates a tap recognizer competing in the given
// arena. A nil arena means [DefaultArena].
func NewTapGestureRecognizer(arena *GestureArena) *TapGestureRecognizer {
	if arena == nil {
		arena = DefaultArena
	}
	return &TapGestureRecognizer{
		arena:    arena,
		trackers: make(map[int64]*tapTracker),
	}
}

// AddPointer starts tracking a pointer from its down event.
func (r *TapGestureRecognizer) AddPointer(event PointerEvent) {
	r.trackers[event.PointerID] = &tapTracker{down: event}
	r.arena.Add(event.PointerID, r)
}

// HandleEvent processes move, up and cancel events for tracked pointers.
func (r *TapGestureRecognizer) HandleEvent(event PointerEvent) {
	tracker, ok := r.trackers[event.PointerID]
	if !ok {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		dx := event.Position.X - tracker.down.Position.X
		dy := event.Position.Y - tracker.down.Position.Y
		if math.Hypot(dx, dy) > DefaultTouchSlop {
			r.arena.Resolve(event.PointerID, r, false)
		}
	case PointerPhaseUp:
		tracker.upSeen = true
		tracker.upEvent = event
		if tracker.accepted {
			r.fire(event.PointerID, tracker)
			return
		}
		r.arena.Resolve(event.PointerID, r, true)
	case PointerPhaseCancel:
		r.arena.Resolve(event.PointerID, r, false)
	}
}

// AcceptGesture implements ArenaMember.
func (r *TapGestureRecognizer) AcceptGesture(pointer int64) {
	tracker, ok := r.trackers[pointer]
	if !ok {
		return
	}
	tracker.accepted = true
	if tracker.upSeen {
		r.fire(pointer, tracker)
	}
}

// RejectGesture implements ArenaMember.
func (r *TapGestureRecognizer) RejectGesture(pointer int64) {
	delete(r.trackers, pointer)
}

// Dispose stops tracking all pointers.
func (r *TapGestureRecognizer) Dispose() {
	r.trackers = make(map[int64]*tapTracker)
}

func (r *TapGestureRecognizer) fire(pointer int64, tracker *tapTracker) {
	delete(r.trackers, pointer)
	if r.OnTapUp != nil {
		r.OnTapUp(TapUpDetails{Position: tracker.upEvent.Position})
	}
	if r.OnTap != nil {
		r.OnTap()
	}
}
