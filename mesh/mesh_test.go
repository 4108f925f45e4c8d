// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bytes"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1.0e-6

// quad returns a unit square in the xy plane facing +z.
func quad() *Mesh {
	return New([]math32.Vector3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, []Face{{Indexes: []int{0, 1, 2, 3}}})
}

// roof returns two quads meeting at a ridge along the z axis.
func roof(group int) *Mesh {
	pos := []math32.Vector3{{-1, 0, 0}, {0, 1, 0}, {0, 1, 1}, {-1, 0, 1}, {0, 1, 0}, {1, 0, 0}, {1, 0, 1}, {0, 1, 1}}
	return New(pos, []Face{
		{Indexes: []int{0, 3, 2, 1}, SmoothingGroup: group},
		{Indexes: []int{4, 7, 6, 5}, SmoothingGroup: group},
	})
}

func TestFinalize(t *testing.T) {
	ms := quad()
	assert.True(t, ms.IsDirty())
	v := ms.Version()
	ms.Finalize()
	assert.False(t, ms.IsDirty())
	assert.Equal(t, v+1, ms.Version())
	require.Len(t, ms.Normals, 4)
	for _, n := range ms.Normals {
		assert.Equal(t, math32.Vec3(0, 0, 1), n)
	}
	// uvs are projected onto xy
	require.Len(t, ms.UVs, 4)
	assert.Equal(t, math32.Vec2(1, 1), ms.UVs[2])

	ms.ReplaceVertices(ms.Positions)
	assert.True(t, ms.IsDirty())
}

func TestFaceNormal(t *testing.T) {
	ms := quad()
	assert.Equal(t, math32.Vec3(0, 0, 1), ms.FaceNormal(ms.Faces[0]))
	ms.Positions[2] = ms.Positions[1]
	ms.Positions[3] = ms.Positions[0]
	assert.Equal(t, math32.Vector3{}, ms.FaceNormal(ms.Faces[0]))
}

func TestSmoothing(t *testing.T) {
	flat := roof(0)
	flat.Finalize()
	tolassert.EqualTol(t, -math32.Sqrt(0.5), flat.Normals[1].X, tol)
	tolassert.EqualTol(t, math32.Sqrt(0.5), flat.Normals[4].X, tol)

	smooth := roof(1)
	smooth.Finalize()
	// vertices on the ridge share an averaged normal
	tolassert.EqualTol(t, 0, smooth.Normals[1].X, tol)
	tolassert.EqualTol(t, 1, smooth.Normals[1].Y, tol)
	assert.Equal(t, smooth.Normals[1], smooth.Normals[4])
	// others keep their face normal
	tolassert.EqualTol(t, -math32.Sqrt(0.5), smooth.Normals[0].X, tol)
}

func TestBounds(t *testing.T) {
	assert.Equal(t, math32.Box3{}, New(nil, nil).Bounds())
	bb := quad().Bounds()
	assert.Equal(t, math32.Vec3(1, 1, 0), bb.Size())
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0), bb.Center())
}

func TestReplaceVertices(t *testing.T) {
	ms := quad()
	src := []math32.Vector3{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 4}}
	ms.ReplaceVertices(src)
	src[0].X = 100
	assert.Equal(t, float32(1), ms.Positions[0].X)

	faces := []Face{{Indexes: []int{0, 1, 2}}}
	ms.SetTopology(faces, nil)
	faces[0].Indexes[0] = 3
	assert.Equal(t, 0, ms.Faces[0].Indexes[0])
	assert.Empty(t, ms.UVs)
}

func TestClone(t *testing.T) {
	ms := quad()
	ms.Finalize()
	cp := ms.Clone()
	assert.Equal(t, ms, cp)
	cp.Positions[0].X = 5
	cp.Faces[0].Indexes[0] = 2
	assert.Equal(t, float32(0), ms.Positions[0].X)
	assert.Equal(t, 0, ms.Faces[0].Indexes[0])
}

func TestSetPivot(t *testing.T) {
	ms := quad()
	ms.SetPivot(PivotCenter)
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0), ms.Pivot)
	assert.Equal(t, math32.Vec3(-0.5, -0.5, 0), ms.Positions[0])
	assert.False(t, ms.IsDirty())

	ms.SetPivot(PivotFirstVertex)
	assert.Equal(t, math32.Vec3(0, 0, 0), ms.Pivot)
	assert.Equal(t, math32.Vector3{}, ms.Positions[0])
	assert.Equal(t, math32.Vec3(1, 1, 0), ms.Positions[2])
}

func TestTriangles(t *testing.T) {
	ms := quad()
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, ms.Triangles())
}

func TestWriteOBJ(t *testing.T) {
	ms := New([]math32.Vector3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, []Face{{Indexes: []int{0, 1, 2}}})
	var b bytes.Buffer
	require.NoError(t, ms.WriteOBJ(&b))
	assert.Equal(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n", b.String())

	ms.Finalize()
	b.Reset()
	require.NoError(t, ms.WriteOBJ(&b))
	assert.Contains(t, b.String(), "vt 1 0\n")
	assert.Contains(t, b.String(), "vn 0 0 1\n")
	assert.Contains(t, b.String(), "f 1/1/1 2/2/2 3/3/3\n")
}

func TestSaveJSON(t *testing.T) {
	ms := quad()
	ms.Finalize()
	fn := filepath.Join(t.TempDir(), "quad.json")
	require.NoError(t, ms.SaveJSON(fn))
	var md Data
	require.NoError(t, jsonx.Open(&md, fn))
	assert.Equal(t, ms.Data(), &md)
	assert.Len(t, md.Vertex, 12)
	assert.Len(t, md.Index, 6)
}
