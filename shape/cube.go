// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/shapes/mesh"
)

// Cube is a rectangular-shaped solid (cuboid), with each side
// divided into a grid of quads.
type Cube struct {

	// WidthCuts is the number of segments along the x axis.
	WidthCuts int `default:"1" min:"1"`

	// HeightCuts is the number of segments along the y axis.
	HeightCuts int `default:"1" min:"1"`

	// DepthCuts is the number of segments along the z axis.
	DepthCuts int `default:"1" min:"1"`
}

// Generate returns a box exactly filling the given size.
func (cb *Cube) Generate(size math32.Vector3) *mesh.Mesh {
	nx, ny, nz := max(cb.WidthCuts, 1), max(cb.HeightCuts, 1), max(cb.DepthCuts, 1)
	h := size.MulScalar(0.5)
	dx := math32.Vec3(size.X, 0, 0)
	dy := math32.Vec3(0, size.Y, 0)
	dz := math32.Vec3(0, 0, size.Z)

	bd := &builder{}
	// pz
	bd.grid(math32.Vec3(-h.X, -h.Y, h.Z), dx, dy, nx, ny)
	// nz
	bd.grid(math32.Vec3(h.X, -h.Y, -h.Z), dx.MulScalar(-1), dy, nx, ny)
	// px
	bd.grid(math32.Vec3(h.X, -h.Y, h.Z), dz.MulScalar(-1), dy, nz, ny)
	// nx
	bd.grid(math32.Vec3(-h.X, -h.Y, -h.Z), dz, dy, nz, ny)
	// py
	bd.grid(math32.Vec3(-h.X, h.Y, h.Z), dx, dz.MulScalar(-1), nx, nz)
	// ny
	bd.grid(math32.Vec3(-h.X, -h.Y, -h.Z), dx, dz, nx, nz)
	return bd.mesh()
}

// Axis is the direction a [Plane] faces.
type Axis int32

const (
	// AxisUp faces +Y.
	AxisUp Axis = iota

	// AxisDown faces -Y.
	AxisDown

	// AxisRight faces +X.
	AxisRight

	// AxisLeft faces -X.
	AxisLeft

	// AxisForward faces +Z.
	AxisForward

	// AxisBackward faces -Z.
	AxisBackward
)

var axisNames = [...]string{"Up", "Down", "Right", "Left", "Forward", "Backward"}

func (ax Axis) String() string {
	if ax < 0 || int(ax) >= len(axisNames) {
		return "Axis(?)"
	}
	return axisNames[ax]
}

// Plane is a flat grid of quads facing one axis. The bounding size
// along the facing axis is always zero.
type Plane struct {

	// WidthCuts is the number of segments along the first in-plane axis.
	WidthCuts int `default:"1" min:"1"`

	// HeightCuts is the number of segments along the second in-plane axis.
	HeightCuts int `default:"1" min:"1"`

	// Axis is the direction the plane faces.
	Axis Axis
}

// Generate returns a grid filling the two in-plane axes of the size.
func (pl *Plane) Generate(size math32.Vector3) *mesh.Mesh {
	nu, nv := max(pl.WidthCuts, 1), max(pl.HeightCuts, 1)
	h := size.MulScalar(0.5)
	dx := math32.Vec3(size.X, 0, 0)
	dy := math32.Vec3(0, size.Y, 0)
	dz := math32.Vec3(0, 0, size.Z)

	bd := &builder{}
	switch pl.Axis {
	case AxisDown:
		bd.grid(math32.Vec3(-h.X, 0, -h.Z), dx, dz, nu, nv)
	case AxisRight:
		bd.grid(math32.Vec3(0, -h.Y, h.Z), dz.MulScalar(-1), dy, nu, nv)
	case AxisLeft:
		bd.grid(math32.Vec3(0, -h.Y, -h.Z), dz, dy, nu, nv)
	case AxisForward:
		bd.grid(math32.Vec3(-h.X, -h.Y, 0), dx, dy, nu, nv)
	case AxisBackward:
		bd.grid(math32.Vec3(h.X, -h.Y, 0), dx.MulScalar(-1), dy, nu, nv)
	default:
		bd.grid(math32.Vec3(-h.X, 0, h.Z), dx, dz.MulScalar(-1), nu, nv)
	}
	return bd.mesh()
}
