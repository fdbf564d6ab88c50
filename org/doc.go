// Package org builds and walks the fixed-shape organization hierarchy.
//
// # Shape
//
// A Hierarchy has at most one boss, one left hand and one right hand. Each
// hand owns an ordered list of supports:
//
//	Boss
//	├── Left Hand
//	│   └── Support_Left ... (arrival order)
//	└── Right Hand
//	    └── Support_Right ... (arrival order)
//
// # Construction
//
// Build consumes records in stream order and dispatches on the role label.
// Holder roles (Boss, Left Hand, Right Hand) are last-write-wins: a later
// holder replaces the earlier one, and supports attached to a replaced hand
// leave the tree with it. A support is attached only when its hand already
// exists; earlier supports are dropped. Unknown roles are dropped.
//
// # Traversal
//
// Members yields boss, left hand, left supports, right hand, right supports.
// The same order drives rendering (see org/printer) and search priority
// (see org/search).
//
//	h, err := org.Build(records)
//	if err != nil {
//	    return err
//	}
//	for m := range h.Members() {
//	    fmt.Println(m.Slot, m.Record.FirstName)
//	}
package org
