// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapecomp

import (
	"slices"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/shapes/params"
	"cogentcore.org/shapes/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeTypes(t *testing.T) {
	a := New(newShape(t, "Cube"))
	b := New(newShape(t, "Cube"))
	assert.False(t, HasMultipleShapeTypes())
	assert.False(t, HasMultipleShapeTypes(a, b))
	assert.Equal(t, 0, ShapeIndex(shape.Types, a, b))

	b.SetShape(newShape(t, "Torus"))
	assert.True(t, HasMultipleShapeTypes(a, b))
	assert.Equal(t, -1, ShapeIndex(shape.Types, a, b))
	assert.Equal(t, 4, ShapeIndex(shape.Types, b))
	assert.Equal(t, -1, ShapeIndex(shape.Types))
}

func TestAnyEdited(t *testing.T) {
	a := New(newShape(t, "Cube"))
	b := New(newShape(t, "Sphere"))
	assert.False(t, AnyEdited())
	assert.False(t, AnyEdited(a, b))
	b.MarkEdited()
	assert.True(t, AnyEdited(a, b))
	assert.False(t, AnyEdited(a))
	b.Reset()
	assert.False(t, AnyEdited(a, b))
}

func TestApplyParams(t *testing.T) {
	st := params.NewStore(shape.Types, nil)
	sc := New(st.CreateShape("Cube"))
	nf := len(sc.Mesh.Faces)
	sc.Shape().(*shape.Cube).WidthCuts = 3
	sc.ApplyParams(st)
	assert.Greater(t, len(sc.Mesh.Faces), nf)

	cb := st.CreateShape("Cube").(*shape.Cube)
	assert.Equal(t, 3, cb.WidthCuts)
	assert.NotSame(t, sc.Shape(), cb)
}

func TestSetShapeType(t *testing.T) {
	st := params.NewStore(shape.Types, nil)
	st.SaveParams(&shape.Cylinder{Sides: 5, HeightCuts: 2})

	a := New(newShape(t, "Cube"))
	b := New(newShape(t, "Cylinder"))
	bpos := slices.Clone(b.Mesh.Positions)
	require.NoError(t, SetShapeType(nil, st, "Cylinder", a, b))
	cy := a.Shape().(*shape.Cylinder)
	assert.Equal(t, 5, cy.Sides)
	// b already was a cylinder, and keeps its own parameters
	assert.Equal(t, 8, b.Shape().(*shape.Cylinder).Sides)
	assert.Equal(t, bpos, b.Mesh.Positions)

	assert.Error(t, SetShapeType(nil, st, "Teapot", a, b))
	assert.Equal(t, "Cylinder", shape.TypeName(a.Shape()))
}

func TestUndoResync(t *testing.T) {
	st := params.NewStore(shape.Types, nil)
	hs := NewHistory()
	a := New(newShape(t, "Cube"))
	b := New(newShape(t, "Sphere"))
	apos := slices.Clone(a.Mesh.Positions)
	bpos := slices.Clone(b.Mesh.Positions)
	unbind := Bind(hs, a, b)

	require.NoError(t, SetShapeType(hs, st, "Torus", a, b))
	assert.Equal(t, "Torus", shape.TypeName(a.Shape()))
	assert.Equal(t, "Torus", shape.TypeName(b.Shape()))
	tpos := slices.Clone(a.Mesh.Positions)

	hs.Undo(TakeSnapshots(a, b))
	assert.Equal(t, "Torus", shape.TypeName(a.Shape()))
	assert.Equal(t, "Sphere", shape.TypeName(b.Shape()))
	assert.Equal(t, bpos, b.Mesh.Positions)

	hs.Undo(TakeSnapshots(a, b))
	assert.Equal(t, "Cube", shape.TypeName(a.Shape()))
	assert.Equal(t, apos, a.Mesh.Positions)
	assert.False(t, hs.CanUndo())

	hs.Redo()
	hs.Redo()
	assert.Equal(t, "Torus", shape.TypeName(a.Shape()))
	assert.Equal(t, "Torus", shape.TypeName(b.Shape()))
	assert.Equal(t, tpos, a.Mesh.Positions)

	// size and rotation changes
	hs.Save("Resize", TakeSnapshots(a))
	a.SetSize(math32.Vec3(3, 2, 1))
	a.RotateBy(math32.Vec3(0, 45, 0))
	hs.Undo(TakeSnapshots(a))
	assert.Equal(t, math32.Vec3(1, 1, 1), a.Size())
	rot := a.Rotation()
	assert.True(t, rot.IsIdentity())
	assert.Equal(t, tpos, a.Mesh.Positions)
	hs.Redo()
	assert.Equal(t, math32.Vec3(3, 2, 1), a.Size())
	assertSize(t, math32.Vec3(3, 2, 1), a.Mesh)

	// without the binding, the mesh is not rebuilt
	unbind()
	hs.Undo(TakeSnapshots(a))
	assert.Equal(t, math32.Vec3(1, 1, 1), a.Size())
	assertSize(t, math32.Vec3(3, 2, 1), a.Mesh)
	a.Resync()
	assert.Equal(t, tpos, a.Mesh.Positions)
}

func TestSnapshotCopy(t *testing.T) {
	sc := New(&shape.Cube{WidthCuts: 2, HeightCuts: 1, DepthCuts: 1})
	ss := sc.Snapshot()
	sc.Shape().(*shape.Cube).WidthCuts = 4
	sc.MarkEdited()
	ss.Restore()
	assert.Equal(t, 2, sc.Shape().(*shape.Cube).WidthCuts)
	assert.False(t, sc.Edited())

	// restoring again gives a new copy
	sc.Shape().(*shape.Cube).WidthCuts = 5
	ss.Restore()
	assert.Equal(t, 2, sc.Shape().(*shape.Cube).WidthCuts)
}
