// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/core/math32"
)

// Finalize recomputes the data derived from the positions and faces:
// per-vertex normals and, if missing, planar-projected texture
// coordinates. It advances the version and clears the dirty flag.
func (ms *Mesh) Finalize() {
	ms.computeNormals()
	if len(ms.UVs) != len(ms.Positions) {
		ms.projectUVs()
	}
	ms.version++
	ms.dirty = false
}

// FaceNormal returns the unit normal of the given face, computed with
// Newell's method so that non-planar polygons get a stable result.
// A degenerate face returns the zero vector.
func (ms *Mesh) FaceNormal(f Face) math32.Vector3 {
	var n math32.Vector3
	ni := len(f.Indexes)
	for i := 0; i < ni; i++ {
		a := ms.Positions[f.Indexes[i]]
		b := ms.Positions[f.Indexes[(i+1)%ni]]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	if n.Length() < 1.0e-12 {
		return math32.Vector3{}
	}
	return n.Normal()
}

func (ms *Mesh) computeNormals() {
	nv := len(ms.Positions)
	if cap(ms.Normals) >= nv {
		ms.Normals = ms.Normals[:nv]
		clear(ms.Normals)
	} else {
		ms.Normals = make([]math32.Vector3, nv)
	}
	// vertices of smoothed faces that share a position share a normal
	type smoothKey struct {
		group int
		pos   math32.Vector3
	}
	var smooth map[smoothKey]math32.Vector3
	for _, f := range ms.Faces {
		fn := ms.FaceNormal(f)
		for _, vi := range f.Indexes {
			ms.Normals[vi] = ms.Normals[vi].Add(fn)
		}
		if f.SmoothingGroup == 0 {
			continue
		}
		if smooth == nil {
			smooth = make(map[smoothKey]math32.Vector3)
		}
		for _, vi := range f.Indexes {
			k := smoothKey{f.SmoothingGroup, ms.Positions[vi]}
			smooth[k] = smooth[k].Add(fn)
		}
	}
	if smooth != nil {
		for _, f := range ms.Faces {
			if f.SmoothingGroup == 0 {
				continue
			}
			for _, vi := range f.Indexes {
				ms.Normals[vi] = smooth[smoothKey{f.SmoothingGroup, ms.Positions[vi]}]
			}
		}
	}
	for i, n := range ms.Normals {
		if n.Length() > 0 {
			ms.Normals[i] = n.Normal()
		}
	}
}

// projectUVs assigns texture coordinates by projecting each face onto
// the plane perpendicular to the dominant axis of its normal.
func (ms *Mesh) projectUVs() {
	ms.UVs = make([]math32.Vector2, len(ms.Positions))
	for _, f := range ms.Faces {
		fn := ms.FaceNormal(f)
		ax, ay, az := math32.Abs(fn.X), math32.Abs(fn.Y), math32.Abs(fn.Z)
		for _, vi := range f.Indexes {
			p := ms.Positions[vi]
			switch {
			case ax >= ay && ax >= az:
				ms.UVs[vi] = math32.Vec2(p.Z, p.Y)
			case ay >= az:
				ms.UVs[vi] = math32.Vec2(p.X, p.Z)
			default:
				ms.UVs[vi] = math32.Vec2(p.X, p.Y)
			}
		}
	}
}

// PivotLocation specifies where [Mesh.SetPivot] places the pivot.
type PivotLocation int32

const (
	// PivotCenter puts the pivot at the center of the bounding box.
	PivotCenter PivotLocation = iota

	// PivotFirstVertex puts the pivot at the first vertex position.
	PivotFirstVertex
)

// SetPivot moves the local origin to the given location, translating
// the positions by the opposite amount so that the world positions of
// the vertices are unchanged.
func (ms *Mesh) SetPivot(loc PivotLocation) {
	if len(ms.Positions) == 0 {
		return
	}
	var off math32.Vector3
	switch loc {
	case PivotCenter:
		off = ms.Bounds().Center()
	case PivotFirstVertex:
		off = ms.Positions[0]
	}
	for i := range ms.Positions {
		ms.Positions[i] = ms.Positions[i].Sub(off)
	}
	ms.Pivot = ms.Pivot.Add(off)
	ms.Finalize()
}
