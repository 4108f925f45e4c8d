// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/shapes/mesh"
)

// builder accumulates positions, texture coordinates and faces.
type builder struct {
	pos   []math32.Vector3
	uvs   []math32.Vector2
	faces []mesh.Face
}

func (bd *builder) vertex(p math32.Vector3, uv math32.Vector2) int {
	bd.pos = append(bd.pos, p)
	bd.uvs = append(bd.uvs, uv)
	return len(bd.pos) - 1
}

func (bd *builder) face(group int, idxs ...int) {
	bd.faces = append(bd.faces, mesh.Face{Indexes: idxs, SmoothingGroup: group})
}

// grid adds a planar grid of quads starting at origin and spanning
// the edge vectors du and dv, divided into nu by nv cells. The faces
// are wound counter-clockwise around du x dv.
func (bd *builder) grid(origin, du, dv math32.Vector3, nu, nv int) {
	st := len(bd.pos)
	for j := 0; j <= nv; j++ {
		v := float32(j) / float32(nv)
		for i := 0; i <= nu; i++ {
			u := float32(i) / float32(nu)
			p := origin.Add(du.MulScalar(u)).Add(dv.MulScalar(v))
			bd.vertex(p, math32.Vec2(u*du.Length(), v*dv.Length()))
		}
	}
	row := nu + 1
	for j := 0; j < nv; j++ {
		for i := 0; i < nu; i++ {
			a := st + j*row + i
			bd.face(0, a, a+1, a+row+1, a+row)
		}
	}
}

func (bd *builder) mesh() *mesh.Mesh {
	ms := mesh.New(bd.pos, bd.faces)
	ms.UVs = bd.uvs
	return ms
}
