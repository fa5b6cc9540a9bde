package table

import (
	"math"
	"sync"
	"time"

	"github.com/go-drift/tableview/pkg/animation"
	"github.com/go-drift/tableview/pkg/graphics"
)

// ScrollPosition stores the current scroll offset and extents of a view.
type ScrollPosition struct {
	offset         float64
	min            float64
	max            float64
	viewportExtent float64
	physics        ScrollPhysics
	onUpdate       func()
	listeners      map[int]func()
	nextListenerID int
	ballistic      *ballisticState
}

// NewScrollPosition creates a scroll position with the given physics.
// A nil physics means [ClampingScrollPhysics]. onUpdate fires on every
// offset change, before registered listeners.
func NewScrollPosition(physics ScrollPhysics, onUpdate func()) *ScrollPosition {
	if physics == nil {
		physics = ClampingScrollPhysics{}
	}
	return &ScrollPosition{
		physics:  physics,
		onUpdate: onUpdate,
	}
}

// Offset returns the current scroll offset.
func (p *ScrollPosition) Offset() float64 {
	return p.offset
}

// ViewportExtent returns the viewport extent along the scroll axis.
func (p *ScrollPosition) ViewportExtent() float64 {
	return p.viewportExtent
}

// MaxExtent returns the maximum scrollable offset.
func (p *ScrollPosition) MaxExtent() float64 {
	return p.max
}

// AddListener registers a callback for scroll changes. The returned
// function removes the listener.
func (p *ScrollPosition) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	if p.listeners == nil {
		p.listeners = make(map[int]func())
	}
	id := p.nextListenerID
	p.nextListenerID++
	p.listeners[id] = listener
	return func() {
		delete(p.listeners, id)
	}
}

// SetOffset updates the scroll offset, clamped to the extents (with an
// overscroll allowance under bouncing physics).
func (p *ScrollPosition) SetOffset(value float64) {
	allowOverscroll := isBouncing(p.physics)
	clamped := p.clampOffset(value, allowOverscroll)
	if clamped == p.offset {
		return
	}
	p.offset = clamped
	p.notify()
}

// JumpTo stops any ballistic scroll and moves to the offset immediately.
func (p *ScrollPosition) JumpTo(offset float64) {
	p.StopBallistic()
	p.SetOffset(offset)
}

// SetExtents updates the min/max scroll extents and re-clamps the offset.
func (p *ScrollPosition) SetExtents(min, max float64) {
	if max < min {
		max = min
	}
	p.min = min
	p.max = max
	p.SetOffset(p.offset)
}

func (p *ScrollPosition) setViewportExtent(extent float64) {
	p.viewportExtent = extent
}

// ApplyUserOffset applies a drag delta with physics.
func (p *ScrollPosition) ApplyUserOffset(delta float64) {
	p.StopBallistic()
	adjusted := p.physics.ApplyPhysicsToUserOffset(p, delta)
	proposed := p.offset + adjusted
	overscroll := p.physics.ApplyBoundaryConditions(p, proposed)
	proposed -= overscroll
	p.SetOffset(proposed)
}

// StartBallistic begins inertial scrolling with the provided velocity, in
// pixels per second. Hosts advance the simulation by calling
// [StepBallistics] once per frame.
func (p *ScrollPosition) StartBallistic(velocity float64) {
	p.StopBallistic()
	velocity = p.normalizeBallisticVelocity(velocity)
	if !isOverscrolled(p) && math.Abs(velocity) < 5 {
		return
	}
	p.ballistic = newBallisticState(p, velocity)
	registerBallistic(p)
	p.notify()
}

// StopBallistic halts any ongoing inertial scroll.
func (p *ScrollPosition) StopBallistic() {
	if p.ballistic != nil {
		unregisterBallistic(p)
		p.ballistic = nil
	}
}

func (p *ScrollPosition) normalizeBallisticVelocity(velocity float64) float64 {
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		return 0
	}
	velocity *= 0.9
	viewport := p.viewportExtent
	if viewport <= 0 {
		viewport = 600
	}
	maxAbs := graphics.Clamp(viewport*5.4, 1080, 4500)
	return graphics.Clamp(velocity, -maxAbs, maxAbs)
}

func (p *ScrollPosition) clampOffset(value float64, allowOverscroll bool) float64 {
	if !allowOverscroll {
		return graphics.Clamp(value, p.min, p.max)
	}
	viewport := p.viewportExtent
	if viewport <= 0 {
		viewport = 600
	}
	limit := graphics.Clamp(viewport*0.35, 80, 220)
	return graphics.Clamp(value, p.min-limit, p.max+limit)
}

func (p *ScrollPosition) notify() {
	if p.onUpdate != nil {
		p.onUpdate()
	}
	for _, listener := range p.listeners {
		listener()
	}
}

// ScrollPhysics determines how a position responds to user input.
type ScrollPhysics interface {
	ApplyPhysicsToUserOffset(position *ScrollPosition, offset float64) float64
	ApplyBoundaryConditions(position *ScrollPosition, value float64) float64
}

// ClampingScrollPhysics stops at the edges with no overscroll.
type ClampingScrollPhysics struct{}

// ApplyPhysicsToUserOffset returns the raw delta for clamping physics.
func (ClampingScrollPhysics) ApplyPhysicsToUserOffset(_ *ScrollPosition, offset float64) float64 {
	return offset
}

// ApplyBoundaryConditions clamps at the min/max extents.
func (ClampingScrollPhysics) ApplyBoundaryConditions(position *ScrollPosition, value float64) float64 {
	if value < position.min {
		return value - position.min
	}
	if value > position.max {
		return value - position.max
	}
	return 0
}

// BouncingScrollPhysics adds resistance near the edges and allows a
// limited overscroll that settles back ballistically.
type BouncingScrollPhysics struct{}

// ApplyPhysicsToUserOffset reduces the delta while overscrolling.
func (BouncingScrollPhysics) ApplyPhysicsToUserOffset(position *ScrollPosition, offset float64) float64 {
	if (position.offset <= position.min && offset < 0) || (position.offset >= position.max && offset > 0) {
		overscroll := 0.0
		if position.offset < position.min {
			overscroll = position.min - position.offset
		} else if position.offset > position.max {
			overscroll = position.offset - position.max
		}
		viewport := position.viewportExtent
		if viewport <= 0 {
			viewport = 600
		}
		fraction := overscroll / viewport
		resistance := 1.0 / (1.0 + 2.4*fraction)
		if resistance < 0.12 {
			resistance = 0.12
		}
		return offset * resistance
	}
	return offset
}

// ApplyBoundaryConditions lets SetOffset clamp within the overscroll range.
func (BouncingScrollPhysics) ApplyBoundaryConditions(position *ScrollPosition, value float64) float64 {
	return 0
}

func isBouncing(physics ScrollPhysics) bool {
	switch physics.(type) {
	case BouncingScrollPhysics:
		return true
	default:
		return false
	}
}

func isOverscrolled(position *ScrollPosition) bool {
	return position.offset < position.min || position.offset > position.max
}

type ballisticState struct {
	position *ScrollPosition
	velocity float64
	lastTime time.Time
}

func newBallisticState(position *ScrollPosition, velocity float64) *ballisticState {
	return &ballisticState{
		position: position,
		velocity: velocity,
		lastTime: animation.Now(),
	}
}

func (b *ballisticState) step(now time.Time) bool {
	if now.Before(b.lastTime) {
		b.lastTime = now
		return false
	}
	dt := now.Sub(b.lastTime).Seconds()
	b.lastTime = now
	if dt <= 0 {
		return false
	}
	// Cap dt to avoid large jumps on the first frame or after stalls.
	const maxDt = 0.032
	if dt > maxDt {
		dt = maxDt
	}
	return b.advance(dt)
}

func (b *ballisticState) advance(dt float64) bool {
	pos := b.position

	// Overscrolled: settle back toward the nearest boundary.
	if isOverscrolled(pos) {
		target := pos.min
		if pos.offset > pos.max {
			target = pos.max
		}
		step := (target - pos.offset) * math.Min(1, dt*12)
		pos.offset += step
		if math.Abs(target-pos.offset) < 0.5 {
			pos.offset = target
			pos.notify()
			return true
		}
		pos.notify()
		return false
	}

	velocity := b.velocity
	decel := 2200.0 + 0.385*math.Abs(velocity)
	if velocity > 0 {
		velocity -= decel * dt
		if velocity < 0 {
			velocity = 0
		}
	} else if velocity < 0 {
		velocity += decel * dt
		if velocity > 0 {
			velocity = 0
		}
	}
	offset := pos.offset + velocity*dt

	b.velocity = velocity
	pos.offset = pos.clampOffset(offset, isBouncing(pos.physics))
	pos.notify()

	// A fling that hits a hard edge is finished.
	if !isBouncing(pos.physics) && (pos.offset == pos.min || pos.offset == pos.max) && velocity != 0 {
		if (velocity < 0 && pos.offset == pos.min) || (velocity > 0 && pos.offset == pos.max) {
			return true
		}
	}
	return math.Abs(velocity) < 5 && !isOverscrolled(pos)
}

var ballisticMu sync.Mutex
var ballisticPositions = make(map[*ScrollPosition]struct{})

func registerBallistic(position *ScrollPosition) {
	ballisticMu.Lock()
	ballisticPositions[position] = struct{}{}
	ballisticMu.Unlock()
}

func unregisterBallistic(position *ScrollPosition) {
	ballisticMu.Lock()
	delete(ballisticPositions, position)
	ballisticMu.Unlock()
}

// HasActiveBallistics returns true if any scroll simulations are running.
func HasActiveBallistics() bool {
	ballisticMu.Lock()
	defer ballisticMu.Unlock()
	return len(ballisticPositions) > 0
}

// StepBallistics advances any active scroll simulations. Positions must
// still only be mutated from the host's control thread; the registry lock
// only guards membership.
func StepBallistics() {
	ballisticMu.Lock()
	if len(ballisticPositions) == 0 {
		ballisticMu.Unlock()
		return
	}
	now := animation.Now()
	positions := make([]*ScrollPosition, 0, len(ballisticPositions))
	for position := range ballisticPositions {
		positions = append(positions, position)
	}
	ballisticMu.Unlock()

	for _, position := range positions {
		if position.ballistic == nil {
			continue
		}
		if position.ballistic.step(now) {
			position.StopBallistic()
		}
	}
}
