package gestures

// ArenaMember is a recognizer competing for a pointer's gesture.
type ArenaMember interface {
	// AcceptGesture tells the member it won the arena for the pointer.
	AcceptGesture(pointer int64)
	// RejectGesture tells the member it lost the arena for the pointer.
	RejectGesture(pointer int64)
}

// GestureArena disambiguates which recognizer owns a pointer's gesture.
//
// All mutations must happen on the host's single event-dispatch thread;
// the arena performs no locking of its own.
type GestureArena struct {
	arenas map[int64]*arena
}

type arena struct {
	members     []ArenaMember
	isOpen      bool
	resolved    bool
	eagerWinner ArenaMember
}

// NewGestureArena creates an empty arena.
func NewGestureArena() *GestureArena {
	return &GestureArena{arenas: make(map[int64]*arena)}
}

// DefaultArena is shared by recognizers constructed with a nil arena.
var DefaultArena = NewGestureArena()

// Add enters a member into the arena for the given pointer. Members can
// only join while the arena is open (before Close is called).
func (g *GestureArena) Add(pointer int64, member ArenaMember) {
	state, ok := g.arenas[pointer]
	if !ok {
		state = &arena{isOpen: true}
		g.arenas[pointer] = state
	}
	if !state.isOpen {
		return
	}
	state.members = append(state.members, member)
}

// Close stops admission for the pointer's arena. If a member already
// claimed the gesture, or only one member joined, it wins immediately.
func (g *GestureArena) Close(pointer int64) {
	state, ok := g.arenas[pointer]
	if !ok {
		return
	}
	state.isOpen = false
	g.tryResolve(pointer, state)
}

// Resolve records a member's claim (accepted=true) or withdrawal
// (accepted=false) for the pointer's gesture.
func (g *GestureArena) Resolve(pointer int64, member ArenaMember, accepted bool) {
	state, ok := g.arenas[pointer]
	if !ok || state.resolved {
		return
	}
	if accepted {
		if state.isOpen {
			if state.eagerWinner == nil {
				state.eagerWinner = member
			}
			return
		}
		g.declareWinner(pointer, state, member)
		return
	}
	for i, existing := range state.members {
		if existing == member {
			state.members = append(state.members[:i], state.members[i+1:]...)
			break
		}
	}
	member.RejectGesture(pointer)
	if !state.isOpen {
		g.tryResolve(pointer, state)
	}
}

// Sweep forces resolution of the pointer's arena: the first remaining
// member wins. Hosts call this on pointer-up.
func (g *GestureArena) Sweep(pointer int64) {
	state, ok := g.arenas[pointer]
	if !ok {
		return
	}
	if !state.resolved && len(state.members) > 0 {
		g.declareWinner(pointer, state, state.members[0])
	}
	delete(g.arenas, pointer)
}

func (g *GestureArena) tryResolve(pointer int64, state *arena) {
	if state.resolved {
		return
	}
	if state.eagerWinner != nil {
		g.declareWinner(pointer, state, state.eagerWinner)
		return
	}
	if len(state.members) == 1 {
		g.declareWinner(pointer, state, state.members[0])
	}
}

func (g *GestureArena) declareWinner(pointer int64, state *arena, winner ArenaMember) {
	state.resolved = true
	for _, member := range state.members {
		if member != winner {
			member.RejectGesture(pointer)
		}
	}
	state.members = nil
	winner.AcceptGesture(pointer)
}
