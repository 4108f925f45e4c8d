// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides the editable polygon mesh that shapes are
// generated into: vertex positions, polygonal faces, texture
// coordinates and derived per-vertex normals.
package mesh

import (
	"cogentcore.org/core/math32"
)

// Face is one polygon of a [Mesh], given as indexes into
// [Mesh.Positions] in counter-clockwise winding order.
type Face struct {

	// Indexes are the vertex indexes of the polygon (at least 3).
	Indexes []int

	// SmoothingGroup is the group used when averaging normals.
	// Faces in group 0 are always flat shaded.
	SmoothingGroup int
}

// Clone returns a deep copy of the face.
func (f Face) Clone() Face {
	return Face{Indexes: append([]int(nil), f.Indexes...), SmoothingGroup: f.SmoothingGroup}
}

// Mesh is an editable polygon mesh. Positions are replaced wholesale
// by generators and transforms, after which [Mesh.Finalize] recomputes
// the derived data (normals, missing texture coordinates).
type Mesh struct {

	// Positions are the vertex positions in local space.
	Positions []math32.Vector3

	// Faces are the polygons of the mesh.
	Faces []Face

	// UVs are per-vertex texture coordinates. If the length does not
	// match the number of positions, they are regenerated by Finalize.
	UVs []math32.Vector2

	// Normals are per-vertex normals computed by Finalize.
	Normals []math32.Vector3

	// Pivot is the world position of the local origin.
	Pivot math32.Vector3

	// version is advanced on every Finalize.
	version int

	// dirty is set when positions or topology change without Finalize.
	dirty bool
}

// New returns a new mesh with the given positions and faces.
// The given slices are owned by the mesh.
func New(positions []math32.Vector3, faces []Face) *Mesh {
	return &Mesh{Positions: positions, Faces: faces, dirty: true}
}

// VertexCount returns the number of vertex positions.
func (ms *Mesh) VertexCount() int {
	return len(ms.Positions)
}

// Version returns a counter that advances every time the mesh is
// finalized, which display code can use to detect changes.
func (ms *Mesh) Version() int {
	return ms.version
}

// IsDirty returns whether the mesh has been modified since the
// last call to [Mesh.Finalize].
func (ms *Mesh) IsDirty() bool {
	return ms.dirty
}

// SetDirty marks the mesh as needing to be finalized.
func (ms *Mesh) SetDirty() {
	ms.dirty = true
}

// ReplaceVertices replaces all vertex positions with a copy of the
// given positions. The number of positions is expected to match the
// current topology.
func (ms *Mesh) ReplaceVertices(positions []math32.Vector3) {
	if cap(ms.Positions) >= len(positions) {
		ms.Positions = ms.Positions[:len(positions)]
	} else {
		ms.Positions = make([]math32.Vector3, len(positions))
	}
	copy(ms.Positions, positions)
	ms.dirty = true
}

// SetTopology replaces the faces and texture coordinates with deep
// copies of the given values.
func (ms *Mesh) SetTopology(faces []Face, uvs []math32.Vector2) {
	ms.Faces = make([]Face, len(faces))
	for i, f := range faces {
		ms.Faces[i] = f.Clone()
	}
	ms.UVs = append(ms.UVs[:0], uvs...)
	ms.dirty = true
}

// Bounds returns the local bounding box of the vertex positions.
// An empty mesh has a zero box.
func (ms *Mesh) Bounds() math32.Box3 {
	if len(ms.Positions) == 0 {
		return math32.Box3{}
	}
	bb := math32.B3Empty()
	for _, p := range ms.Positions {
		bb.ExpandByPoint(p)
	}
	return bb
}

// Clone returns a deep copy of the mesh.
func (ms *Mesh) Clone() *Mesh {
	cp := &Mesh{
		Positions: append([]math32.Vector3(nil), ms.Positions...),
		UVs:       append([]math32.Vector2(nil), ms.UVs...),
		Normals:   append([]math32.Vector3(nil), ms.Normals...),
		Pivot:     ms.Pivot,
		version:   ms.version,
		dirty:     ms.dirty,
	}
	cp.Faces = make([]Face, len(ms.Faces))
	for i, f := range ms.Faces {
		cp.Faces[i] = f.Clone()
	}
	return cp
}

// Triangles returns the faces as a triangle index list, using a fan
// triangulation of each polygon.
func (ms *Mesh) Triangles() []uint32 {
	var idx []uint32
	for _, f := range ms.Faces {
		for i := 1; i+1 < len(f.Indexes); i++ {
			idx = append(idx, uint32(f.Indexes[0]), uint32(f.Indexes[i]), uint32(f.Indexes[i+1]))
		}
	}
	return idx
}
