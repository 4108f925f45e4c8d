// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapecomp provides the shape component, which keeps a mesh
// in sync with a parametric shape, a target size and a rotation:
// every change regenerates the geometry, re-applies the rotation to
// the unrotated generator output, and rescales the result to fill the
// target size exactly.
package shapecomp

import (
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/shapes/mesh"
	"cogentcore.org/shapes/shape"
)

// degenerate is the bounds size below which an axis of the generated
// geometry is considered flat, and is given a fit scale of 0.
const degenerate = 0.001

// Transform is the placement of a component in the world.
type Transform struct {

	// Position is the world position of the origin of the component.
	Position math32.Vector3

	// Rotation is the world rotation of the component. It is separate
	// from the rotation applied to the geometry by the component.
	Rotation math32.Quat
}

// Component is a parametric shape together with the mesh generated
// from it. Each component owns its mesh and its unrotated base
// vertices; components never share mutable state.
//
// The mesh positions are always the base vertices rotated by
// [Component.Rotation] and then fit to [Component.Size], except after
// [Component.SetRotation], which does not refit.
type Component struct {

	// Transform is the world placement of the component.
	Transform Transform

	// Mesh is the generated mesh.
	Mesh *mesh.Mesh

	// shape is the current parametric shape.
	shape shape.Shape

	// size is the target bounding size, with non-negative components.
	size math32.Vector3

	// rotation is the accumulated rotation applied to baseVertices.
	rotation math32.Quat

	// baseVertices are the unrotated generator output from the
	// last rebuild.
	baseVertices []math32.Vector3

	// edited is whether the mesh has been manually edited since it
	// was generated.
	edited bool
}

// New returns a new component for the given shape, with a unit size
// and no rotation, and rebuilds it. A nil shape is replaced by a
// default [shape.Cube].
func New(s shape.Shape) *Component {
	if s == nil {
		s = errors.Log1(shape.Types.New("Cube"))
	}
	sc := &Component{
		Transform: Transform{Rotation: identity()},
		Mesh:      mesh.New(nil, nil),
		shape:     s,
		size:      math32.Vec3(1, 1, 1),
		rotation:  identity(),
	}
	sc.Rebuild()
	return sc
}

// Shape returns the current shape. Changes to its parameters take
// effect on the next [Component.Rebuild].
func (sc *Component) Shape() shape.Shape {
	return sc.shape
}

// SetShape replaces the shape and rebuilds the mesh.
// The shape must not be nil.
func (sc *Component) SetShape(s shape.Shape) {
	sc.shape = s
	sc.Rebuild()
}

// Size returns the target bounding size.
func (sc *Component) Size() math32.Vector3 {
	return sc.size
}

// SetSize sets the target bounding size, using the absolute value of
// each component, and rebuilds the mesh.
func (sc *Component) SetSize(size math32.Vector3) {
	sc.size = absVector(size)
	sc.Rebuild()
}

// Rotation returns the accumulated rotation of the geometry.
func (sc *Component) Rotation() math32.Quat {
	return sc.rotation
}

// BaseVertices returns a copy of the unrotated generator output from
// the last rebuild.
func (sc *Component) BaseVertices() []math32.Vector3 {
	return slices.Clone(sc.baseVertices)
}

// Edited returns whether the mesh has been manually edited.
func (sc *Component) Edited() bool {
	return sc.edited
}

// MarkEdited records that the mesh has been manually edited,
// so that the parametric form no longer describes it.
func (sc *Component) MarkEdited() {
	sc.edited = true
}

// Reset discards manual edits by clearing the edited flag and
// rebuilding the mesh from the shape.
func (sc *Component) Reset() {
	sc.edited = false
	sc.Rebuild()
}

// Rebuild regenerates the mesh from the shape and the target size.
// The generator output is kept as the base vertices, which are then
// rotated by the accumulated rotation and fit to the target size.
// Rebuild is idempotent, so it is safe to call whenever the state of
// the component may have been changed externally.
func (sc *Component) Rebuild() {
	raw := sc.shape.Generate(sc.size)
	sc.baseVertices = slices.Clone(raw.Positions)
	sc.Mesh.SetTopology(raw.Faces, raw.UVs)
	sc.rotateTo(sc.rotation)
	sc.fitToSize()
	sc.Mesh.Finalize()
}

// RebuildBounds sets the target size to the size of the given bounds
// and moves the component to their center, with the given world
// rotation, and then rebuilds the mesh. The world rotation does not
// affect the accumulated rotation of the geometry.
func (sc *Component) RebuildBounds(bounds math32.Box3, rotation math32.Quat) {
	sc.size = absVector(bounds.Size())
	sc.Transform.Position = bounds.Center()
	sc.Transform.Rotation = rotation
	sc.Rebuild()
}

// Resync rebuilds the mesh after the state of the component has been
// restored externally, for example by an undo.
func (sc *Component) Resync() {
	sc.Rebuild()
}

// SetRotation replaces the accumulated rotation with the given Euler
// angles in degrees and rotates the base vertices. The result is not
// refit to the target size.
func (sc *Component) SetRotation(eulerDegrees math32.Vector3) {
	sc.rotation = Euler(eulerDegrees)
	sc.rotateTo(sc.rotation)
	sc.Mesh.Finalize()
}

// RotateBy adds the rotation by the given Euler angles in degrees to
// the accumulated rotation, in world space, and then rotates the base
// vertices and fits them to the target size.
func (sc *Component) RotateBy(eulerDegrees math32.Vector3) {
	rot := Euler(eulerDegrees)
	sc.rotation = rot.Mul(sc.rotation)
	sc.rotateTo(sc.rotation)
	sc.fitToSize()
	sc.Mesh.Finalize()
}

// rotateTo replaces the mesh positions with the base vertices rotated
// by the given rotation. The positions are always recomputed from the
// base vertices, so rotations never accumulate error.
func (sc *Component) rotateTo(rot math32.Quat) {
	pos := make([]math32.Vector3, len(sc.baseVertices))
	if rot.IsIdentity() {
		copy(pos, sc.baseVertices)
	} else {
		for i, v := range sc.baseVertices {
			pos[i] = v.MulQuat(rot)
		}
	}
	sc.Mesh.ReplaceVertices(pos)
}

// fitToSize rescales the mesh positions about the center of their
// bounds so that the bounds size equals the target size. Axes along
// which the mesh is flat are scaled by 0.
func (sc *Component) fitToSize() {
	if sc.Mesh.VertexCount() == 0 {
		return
	}
	bb := sc.Mesh.Bounds()
	bsz := bb.Size()
	scale := math32.Vec3(fitScale(sc.size.X, bsz.X), fitScale(sc.size.Y, bsz.Y), fitScale(sc.size.Z, bsz.Z))
	ctr := bb.Center()
	if scale == math32.Vec3(1, 1, 1) && ctr == (math32.Vector3{}) {
		return
	}
	pos := sc.Mesh.Positions
	for i, p := range pos {
		pos[i] = p.Sub(ctr).Mul(scale)
	}
	sc.Mesh.SetDirty()
}

// MeshBounds returns the bounds of the mesh, with the center in world
// space.
func (sc *Component) MeshBounds() math32.Box3 {
	bb := sc.Mesh.Bounds()
	var wb math32.Box3
	wb.SetFromCenterAndSize(bb.Center().Add(sc.Transform.Position), bb.Size())
	return wb
}

// CaptureCustom returns a [shape.Custom] with the current geometry of
// the mesh, including any manual edits. The current orientation
// becomes the unrotated one: the accumulated rotation is reset, the
// component is rebuilt to bounds that keep the mesh in place, and the
// edited flag is cleared. The returned shape is not installed; use
// [Component.SetShape] to make it the shape of the component.
func (sc *Component) CaptureCustom() *shape.Custom {
	bb := sc.Mesh.Bounds()
	msz := bb.Size()
	pos := sc.Transform.Position
	signs := math32.Vec3(sign(pos.X), sign(pos.Y), sign(pos.Z))
	delta := msz.Sub(sc.size).MulScalar(0.5)
	var nb math32.Box3
	nb.SetFromCenterAndSize(pos.Sub(signs.Mul(delta)), msz)

	cs := &shape.Custom{}
	cs.SetGeometry(sc.Mesh)

	sc.rotation = identity()
	sc.RebuildBounds(nb, sc.Transform.Rotation)
	sc.Mesh.SetPivot(mesh.PivotCenter)
	sc.edited = false
	return cs
}

// Euler returns the rotation for the given Euler angles in degrees,
// which rotates about the Z axis, then the X axis, then the Y axis.
func Euler(eulerDegrees math32.Vector3) math32.Quat {
	qx := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.DegToRad(eulerDegrees.X))
	qy := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(eulerDegrees.Y))
	qz := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(eulerDegrees.Z))
	q := qy.Mul(qx)
	return q.Mul(qz)
}

func identity() math32.Quat {
	return math32.NewQuat(0, 0, 0, 1)
}

func fitScale(target, have float32) float32 {
	if math32.Abs(have) < degenerate {
		return 0
	}
	return target / have
}

func absVector(v math32.Vector3) math32.Vector3 {
	return math32.Vec3(math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z))
}

// sign returns -1 for negative values and 1 otherwise.
func sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}
