// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/shapes/mesh"
)

// Custom is a shape made from captured mesh geometry, which is
// re-centered and stretched to fill the requested size.
type Custom struct {

	// Positions are the captured vertex positions.
	Positions []math32.Vector3

	// Faces are the captured polygons, as indexes into Positions.
	Faces [][]int

	// UVs are the captured texture coordinates, if any.
	UVs []math32.Vector2
}

// SetGeometry captures the positions, faces and texture coordinates
// of the given mesh.
func (cs *Custom) SetGeometry(ms *mesh.Mesh) {
	cs.Positions = append([]math32.Vector3(nil), ms.Positions...)
	cs.Faces = make([][]int, len(ms.Faces))
	for i, f := range ms.Faces {
		cs.Faces[i] = append([]int(nil), f.Indexes...)
	}
	cs.UVs = nil
	if len(ms.UVs) == len(ms.Positions) {
		cs.UVs = append([]math32.Vector2(nil), ms.UVs...)
	}
}

// Generate returns the captured geometry scaled to the given size.
// Axes along which the captured geometry is flat stay flat.
func (cs *Custom) Generate(size math32.Vector3) *mesh.Mesh {
	pos := make([]math32.Vector3, len(cs.Positions))
	if len(pos) > 0 {
		bb := math32.B3Empty()
		for _, p := range cs.Positions {
			bb.ExpandByPoint(p)
		}
		ctr := bb.Center()
		bsz := bb.Size()
		scl := func(s, b float32) float32 {
			if b < 1.0e-6 {
				return 0
			}
			return s / b
		}
		sc := math32.Vec3(scl(size.X, bsz.X), scl(size.Y, bsz.Y), scl(size.Z, bsz.Z))
		for i, p := range cs.Positions {
			pos[i] = p.Sub(ctr).Mul(sc)
		}
	}
	faces := make([]mesh.Face, 0, len(cs.Faces))
	for _, f := range cs.Faces {
		if len(f) < 3 || !validIndexes(f, len(pos)) {
			continue
		}
		faces = append(faces, mesh.Face{Indexes: append([]int(nil), f...)})
	}
	ms := mesh.New(pos, faces)
	if len(cs.UVs) == len(pos) {
		ms.UVs = append([]math32.Vector2(nil), cs.UVs...)
	}
	return ms
}

func validIndexes(idxs []int, n int) bool {
	for _, i := range idxs {
		if i < 0 || i >= n {
			return false
		}
	}
	return true
}
