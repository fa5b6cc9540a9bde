// Package gestures provides pointer event types and gesture recognizers.
//
// Recognizers compete for pointer events through a [GestureArena]: every
// recognizer interested in a pointer joins the arena on pointer-down, the
// arena is closed once all participants have joined, and exactly one member
// wins the gesture. Losers receive a rejection and stop tracking the pointer.
package gestures

import "github.com/go-drift/tableview/pkg/graphics"

// PointerPhase identifies the stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown indicates a pointer made contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove indicates a pointer moved while in contact.
	PointerPhaseMove
	// PointerPhaseUp indicates a pointer was lifted.
	PointerPhaseUp
	// PointerPhaseCancel indicates the gesture was interrupted.
	PointerPhaseCancel
)

// PointerEvent describes a single pointer state change.
type PointerEvent struct {
	// PointerID distinguishes concurrent pointers (fingers).
	PointerID int64
	// Position is the pointer location in the host's coordinate space.
	Position graphics.Offset
	// Delta is the movement since the previous event for this pointer.
	Delta graphics.Offset
	// Phase is the stage of this event.
	Phase PointerPhase
}

// DragStartDetails describes the start of a drag.
type DragStartDetails struct {
	// Position is where the drag was recognized.
	Position graphics.Offset
}

// DragUpdateDetails describes a drag movement.
type DragUpdateDetails struct {
	// Position is the current pointer location.
	Position graphics.Offset
	// Delta is the movement since the last update.
	Delta graphics.Offset
	// PrimaryDelta is the movement along the recognizer's axis.
	PrimaryDelta float64
}

// DragEndDetails describes the end of a drag.
type DragEndDetails struct {
	// Velocity is the pointer velocity at release, in pixels per second.
	Velocity graphics.Offset
	// PrimaryVelocity is the velocity along the recognizer's axis.
	PrimaryVelocity float64
}

// TapUpDetails describes a completed tap.
type TapUpDetails struct {
	// Position is where the pointer was lifted.
	Position graphics.Offset
}
