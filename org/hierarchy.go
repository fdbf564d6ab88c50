package org

import (
	"iter"

	"github.com/joshuapare/orgtrace/pkg/types"
)

// Slot identifies a member's position in the tree.
type Slot int

const (
	SlotBoss Slot = iota
	SlotLeftHand
	SlotLeftSupport
	SlotRightHand
	SlotRightSupport
)

func (s Slot) String() string {
	switch s {
	case SlotBoss:
		return "boss"
	case SlotLeftHand:
		return "left-hand"
	case SlotLeftSupport:
		return "left-support"
	case SlotRightHand:
		return "right-hand"
	case SlotRightSupport:
		return "right-support"
	default:
		return "unknown"
	}
}

// Member is one record visited during traversal.
type Member struct {
	Slot   Slot
	Index  int // position within a support list; 0 for holders
	Record *types.Record
}

// hand is a mid-level holder together with the supports it owns.
type hand struct {
	record   types.Record
	supports []types.Record
}

// Hierarchy is the built organization tree. It is read-only after Build.
type Hierarchy struct {
	boss  *types.Record
	left  *hand
	right *hand
}

// Boss returns the boss record, or nil.
func (h *Hierarchy) Boss() *types.Record {
	return h.boss
}

// LeftHand returns the left hand record, or nil.
func (h *Hierarchy) LeftHand() *types.Record {
	if h.left == nil {
		return nil
	}
	return &h.left.record
}

// RightHand returns the right hand record, or nil.
func (h *Hierarchy) RightHand() *types.Record {
	if h.right == nil {
		return nil
	}
	return &h.right.record
}

// LeftSupports returns the left supports in arrival order.
func (h *Hierarchy) LeftSupports() []types.Record {
	if h.left == nil {
		return nil
	}
	return h.left.supports
}

// RightSupports returns the right supports in arrival order.
func (h *Hierarchy) RightSupports() []types.Record {
	if h.right == nil {
		return nil
	}
	return h.right.supports
}

// Len returns the number of members in the tree.
func (h *Hierarchy) Len() int {
	if h == nil {
		return 0
	}
	n := 0
	if h.boss != nil {
		n++
	}
	if h.left != nil {
		n += 1 + len(h.left.supports)
	}
	if h.right != nil {
		n += 1 + len(h.right.supports)
	}
	return n
}

// Members returns an iterator over the tree in traversal order: boss, left
// hand, left supports, right hand, right supports. Absent holders are
// skipped. The iterator may be restarted.
func (h *Hierarchy) Members() iter.Seq[Member] {
	return func(yield func(Member) bool) {
		if h == nil {
			return
		}
		if h.boss != nil && !yield(Member{Slot: SlotBoss, Record: h.boss}) {
			return
		}
		if !h.left.walk(SlotLeftHand, SlotLeftSupport, yield) {
			return
		}
		h.right.walk(SlotRightHand, SlotRightSupport, yield)
	}
}

// Records returns the members in traversal order.
func (h *Hierarchy) Records() []types.Record {
	out := make([]types.Record, 0, h.Len())
	for m := range h.Members() {
		out = append(out, *m.Record)
	}
	return out
}

func (hd *hand) walk(holder, support Slot, yield func(Member) bool) bool {
	if hd == nil {
		return true
	}
	if !yield(Member{Slot: holder, Record: &hd.record}) {
		return false
	}
	for i := range hd.supports {
		if !yield(Member{Slot: support, Index: i, Record: &hd.supports[i]}) {
			return false
		}
	}
	return true
}
