// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/base/iox/jsonx"
)

// WriteOBJ writes the mesh in Wavefront OBJ format, including texture
// coordinates and normals when present. The pivot is not applied.
func (ms *Mesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, p := range ms.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	hasUV := len(ms.UVs) == len(ms.Positions)
	hasNorm := len(ms.Normals) == len(ms.Positions)
	if hasUV {
		for _, uv := range ms.UVs {
			fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
		}
	}
	if hasNorm {
		for _, n := range ms.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
	}
	for _, f := range ms.Faces {
		bw.WriteString("f")
		for _, vi := range f.Indexes {
			i := vi + 1 // obj indexes are 1-based
			switch {
			case hasUV && hasNorm:
				fmt.Fprintf(bw, " %d/%d/%d", i, i, i)
			case hasUV:
				fmt.Fprintf(bw, " %d/%d", i, i)
			case hasNorm:
				fmt.Fprintf(bw, " %d//%d", i, i)
			default:
				fmt.Fprintf(bw, " %d", i)
			}
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// SaveOBJ writes the mesh to the given file in OBJ format.
func (ms *Mesh) SaveOBJ(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return ms.WriteOBJ(f)
}

// Data is the exported form of a [Mesh], with flat arrays suitable
// for uploading to a renderer.
type Data struct {
	Vertex   []float32
	Normal   []float32
	TexCoord []float32
	Index    []uint32
	Pivot    [3]float32
}

// Data returns the mesh as flat, triangulated arrays.
func (ms *Mesh) Data() *Data {
	md := &Data{Index: ms.Triangles(), Pivot: [3]float32{ms.Pivot.X, ms.Pivot.Y, ms.Pivot.Z}}
	for _, p := range ms.Positions {
		md.Vertex = append(md.Vertex, p.X, p.Y, p.Z)
	}
	for _, n := range ms.Normals {
		md.Normal = append(md.Normal, n.X, n.Y, n.Z)
	}
	for _, uv := range ms.UVs {
		md.TexCoord = append(md.TexCoord, uv.X, uv.Y)
	}
	return md
}

// SaveJSON writes the flat [Data] form of the mesh to the given file.
func (ms *Mesh) SaveJSON(filename string) error {
	return jsonx.Save(ms.Data(), filename)
}
