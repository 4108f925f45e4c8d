// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapecomp

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/shapes/history"
	"cogentcore.org/shapes/shape"
)

// Snapshot is the saved state of a component, which does not include
// the generated geometry: that is rebuilt by [Component.Resync] after
// the snapshot is restored.
type Snapshot struct {

	// Component is the component the snapshot was taken from.
	Component *Component

	// Shape is a copy of the shape of the component.
	Shape shape.Shape

	// Size is the bounding size of the component.
	Size math32.Vector3

	// Rotation is the accumulated rotation of the component.
	Rotation math32.Quat

	// Transform is the transform of the component.
	Transform Transform

	// Edited is whether the mesh of the component had been edited
	// by hand, outside of its shape.
	Edited bool
}

// Snapshots are the saved states of a set of components, which is
// the state type of the undo history of components.
type Snapshots []*Snapshot

// Snapshot returns a snapshot of the current state of the component.
func (sc *Component) Snapshot() *Snapshot {
	return &Snapshot{
		Component: sc,
		Shape:     errors.Log1(shape.Clone(sc.shape)),
		Size:      sc.size,
		Rotation:  sc.rotation,
		Transform: sc.Transform,
		Edited:    sc.edited,
	}
}

// Restore sets the state of the component of the snapshot back to the
// snapshot, without rebuilding the mesh. The snapshot remains usable.
func (ss *Snapshot) Restore() {
	sc := ss.Component
	if s, err := shape.Clone(ss.Shape); errors.Log(err) == nil && s != nil {
		sc.shape = s
	}
	sc.size = ss.Size
	sc.rotation = ss.Rotation
	sc.Transform = ss.Transform
	sc.edited = ss.Edited
}

// TakeSnapshots returns snapshots of the given components.
func TakeSnapshots(comps ...*Component) Snapshots {
	ss := make(Snapshots, len(comps))
	for i, sc := range comps {
		ss[i] = sc.Snapshot()
	}
	return ss
}

// Restore restores all of the snapshots.
func (ss Snapshots) Restore() {
	for _, s := range ss {
		s.Restore()
	}
}

// NewHistory returns a new undo history of component snapshots,
// which restores the snapshots on undo and redo.
func NewHistory() *history.Stack[Snapshots] {
	return history.New(Snapshots.Restore)
}

// Bind subscribes the given components to the given history, so that
// they are resynced after every undo and redo. It returns a function
// that removes the subscription. Resyncing regenerates the mesh from
// the shape, so manual edits of the mesh made since the restored
// state are discarded.
func Bind(hs *history.Stack[Snapshots], comps ...*Component) func() {
	return hs.Subscribe(func(ev history.Event) {
		for _, sc := range comps {
			sc.Resync()
		}
	})
}
