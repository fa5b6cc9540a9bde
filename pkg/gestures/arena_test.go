package gestures

import "testing"

// stubMember records arena outcomes.
type stubMember struct {
	accepted []int64
	rejected []int64
}

func (m *stubMember) AcceptGesture(pointer int64) { m.accepted = append(m.accepted, pointer) }

func (m *stubMember) RejectGesture(pointer int64) { m.rejected = append(m.rejected, pointer) }

func TestArenaSoleMemberWinsOnClose(t *testing.T) {
	arena := NewGestureArena()
	member := &stubMember{}

	arena.Add(1, member)
	arena.Close(1)

	if len(member.accepted) != 1 || member.accepted[0] != 1 {
		t.Errorf("accepted = %v, want [1]", member.accepted)
	}
	if len(member.rejected) != 0 {
		t.Errorf("rejected = %v, want none", member.rejected)
	}
}

func TestArenaHoldsWithMultipleMembers(t *testing.T) {
	arena := NewGestureArena()
	first := &stubMember{}
	second := &stubMember{}

	arena.Add(1, first)
	arena.Add(1, second)
	arena.Close(1)

	if len(first.accepted)+len(second.accepted) != 0 {
		t.Error("arena resolved with two undecided members")
	}
}

func TestArenaEagerWinner(t *testing.T) {
	arena := NewGestureArena()
	first := &stubMember{}
	second := &stubMember{}

	arena.Add(1, first)
	arena.Add(1, second)
	arena.Resolve(1, second, true)
	arena.Close(1)

	if len(second.accepted) != 1 {
		t.Error("eager claimant did not win at close")
	}
	if len(first.rejected) != 1 {
		t.Error("losing member was not rejected")
	}
}

func TestArenaLastMemberStandingWins(t *testing.T) {
	arena := NewGestureArena()
	first := &stubMember{}
	second := &stubMember{}

	arena.Add(1, first)
	arena.Add(1, second)
	arena.Close(1)
	arena.Resolve(1, first, false)

	if len(first.rejected) != 1 {
		t.Error("withdrawing member was not rejected")
	}
	if len(second.accepted) != 1 {
		t.Error("remaining member did not win")
	}
}

func TestArenaSweepPicksFirstRemaining(t *testing.T) {
	arena := NewGestureArena()
	first := &stubMember{}
	second := &stubMember{}

	arena.Add(1, first)
	arena.Add(1, second)
	arena.Close(1)
	arena.Sweep(1)

	if len(first.accepted) != 1 {
		t.Error("first member did not win the sweep")
	}
	if len(second.rejected) != 1 {
		t.Error("second member was not rejected by the sweep")
	}

	// The arena is gone; a late claim is ignored.
	arena.Resolve(1, second, true)
	if len(second.accepted) != 0 {
		t.Error("late claim on a swept arena was honored")
	}
}

func TestArenaClosedToNewMembers(t *testing.T) {
	arena := NewGestureArena()
	first := &stubMember{}
	late := &stubMember{}

	arena.Add(1, first)
	arena.Add(1, &stubMember{})
	arena.Close(1)
	arena.Add(1, late)
	arena.Sweep(1)

	if len(late.accepted)+len(late.rejected) != 0 {
		t.Error("member admitted after close participated in resolution")
	}
}

func TestArenaPointersAreIndependent(t *testing.T) {
	arena := NewGestureArena()
	first := &stubMember{}
	second := &stubMember{}

	arena.Add(1, first)
	arena.Add(2, second)
	arena.Close(1)

	if len(first.accepted) != 1 {
		t.Error("pointer 1 did not resolve")
	}
	if len(second.accepted) != 0 {
		t.Error("pointer 2 resolved from pointer 1's close")
	}
}
