package org

import (
	"fmt"

	"github.com/joshuapare/orgtrace/internal/logger"
	"github.com/joshuapare/orgtrace/pkg/types"
)

// Options controls hierarchy construction.
type Options struct {
	// MaxMembers bounds how many records the builder may store over the
	// whole build, counting replaced holders. Exceeding it aborts the build
	// with types.ErrCapacity.
	// Default: 0 (unlimited)
	MaxMembers int
}

// Stats counts what happened to each record during construction.
type Stats struct {
	Attached int // stored in the tree
	Replaced int // holder records overwritten by a later record of the same role
	Orphaned int // supports that arrived before their hand
	Unknown  int // records with an unrecognized role label
}

// Dropped returns the number of records that never entered the tree.
func (s Stats) Dropped() int {
	return s.Orphaned + s.Unknown
}

// Builder assembles a Hierarchy one record at a time.
type Builder struct {
	opts   Options
	h      Hierarchy
	stored int
	stats  Stats
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts Options) *Builder {
	return &Builder{opts: opts}
}

// Add dispatches r on its role label. Unknown roles and orphan supports are
// dropped without error; the only error is types.ErrCapacity.
func (b *Builder) Add(r types.Record) error {
	if !r.Role.Known() {
		b.stats.Unknown++
		logger.L.Debug("org: dropping record with unknown role",
			"first", r.FirstName, "second", r.SecondName, "role", string(r.Role))
		return nil
	}
	if r.Role == types.RoleSupportLeft && b.h.left == nil ||
		r.Role == types.RoleSupportRight && b.h.right == nil {
		b.stats.Orphaned++
		logger.L.Debug("org: dropping support that precedes its hand",
			"first", r.FirstName, "second", r.SecondName, "role", string(r.Role))
		return nil
	}

	if b.opts.MaxMembers > 0 && b.stored >= b.opts.MaxMembers {
		return fmt.Errorf("org: storing record %d: %w", b.stored+1, types.ErrCapacity)
	}
	b.stored++

	switch r.Role {
	case types.RoleBoss:
		if b.h.boss != nil {
			b.replaced(b.h.boss, r)
		}
		rec := r
		b.h.boss = &rec
	case types.RoleLeftHand:
		if b.h.left != nil {
			b.replaced(&b.h.left.record, r)
		}
		b.h.left = &hand{record: r}
	case types.RoleRightHand:
		if b.h.right != nil {
			b.replaced(&b.h.right.record, r)
		}
		b.h.right = &hand{record: r}
	case types.RoleSupportLeft:
		b.h.left.supports = append(b.h.left.supports, r)
	case types.RoleSupportRight:
		b.h.right.supports = append(b.h.right.supports, r)
	}
	b.stats.Attached++
	return nil
}

// replaced records that prev is being overwritten by next. Supports owned by
// a replaced hand are not carried over.
func (b *Builder) replaced(prev *types.Record, next types.Record) {
	b.stats.Replaced++
	logger.L.Debug("org: replacing holder",
		"role", string(next.Role),
		"previous", prev.FirstName+" "+prev.SecondName,
		"next", next.FirstName+" "+next.SecondName)
}

// Hierarchy returns the tree built so far. The Builder must not be used
// after calling Hierarchy.
func (b *Builder) Hierarchy() *Hierarchy {
	h := b.h
	return &h
}

// Stats returns construction counters.
func (b *Builder) Stats() Stats {
	return b.stats
}

// Build constructs a Hierarchy from records in stream order using default
// options.
func Build(records []types.Record) (*Hierarchy, error) {
	h, _, err := BuildWithOptions(records, Options{})
	return h, err
}

// BuildWithOptions constructs a Hierarchy and reports construction counters.
// On types.ErrCapacity no Hierarchy is returned; callers must abort rather
// than continue with a partial tree.
func BuildWithOptions(records []types.Record, opts Options) (*Hierarchy, Stats, error) {
	b := NewBuilder(opts)
	for _, r := range records {
		if err := b.Add(r); err != nil {
			return nil, b.Stats(), err
		}
	}
	stats := b.Stats()
	logger.L.Info("org: hierarchy built",
		"members", b.h.Len(), "attached", stats.Attached, "replaced", stats.Replaced,
		"orphaned", stats.Orphaned, "unknown", stats.Unknown)
	return b.Hierarchy(), stats, nil
}
