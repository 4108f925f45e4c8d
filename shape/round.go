// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/shapes/mesh"
)

// Cylinder is a prism with a regular polygon cross section in the
// XZ plane, along the y axis, with polygon caps on both ends.
type Cylinder struct {

	// Sides is the number of sides of the cross section.
	Sides int `default:"8" min:"3"`

	// HeightCuts is the number of segments along the height.
	HeightCuts int `default:"1" min:"1"`

	// Smooth is whether the sides are smooth shaded.
	Smooth bool `default:"true"`
}

// Generate returns a cylinder whose radius in x and z is half of the
// size. The x extent is smaller than the size for an odd number of sides.
func (cy *Cylinder) Generate(size math32.Vector3) *mesh.Mesh {
	ns, nh := max(cy.Sides, 3), max(cy.HeightCuts, 1)
	h := size.MulScalar(0.5)
	group := 0
	if cy.Smooth {
		group = 1
	}
	ring := func(i int, y float32) math32.Vector3 {
		ang := 2 * math32.Pi * float32(i%ns) / float32(ns)
		return math32.Vec3(h.X*math32.Cos(ang), y, h.Z*math32.Sin(ang))
	}

	bd := &builder{}
	for i := 0; i < ns; i++ {
		u0 := float32(i) / float32(ns)
		u1 := float32(i+1) / float32(ns)
		for j := 0; j < nh; j++ {
			v0 := float32(j) / float32(nh)
			v1 := float32(j+1) / float32(nh)
			y0 := -h.Y + v0*size.Y
			y1 := -h.Y + v1*size.Y
			a := bd.vertex(ring(i+1, y0), math32.Vec2(u1, v0))
			b := bd.vertex(ring(i, y0), math32.Vec2(u0, v0))
			c := bd.vertex(ring(i, y1), math32.Vec2(u0, v1))
			d := bd.vertex(ring(i+1, y1), math32.Vec2(u1, v1))
			bd.face(group, a, b, c, d)
		}
	}
	capUV := func(p math32.Vector3) math32.Vector2 {
		return math32.Vec2(p.X, p.Z)
	}
	bot := make([]int, ns)
	for i := range ns {
		p := ring(i, -h.Y)
		bot[i] = bd.vertex(p, capUV(p))
	}
	bd.face(0, bot...)
	top := make([]int, ns)
	for i := range ns {
		p := ring(ns-i, h.Y)
		top[i] = bd.vertex(p, capUV(p))
	}
	bd.face(0, top...)
	return bd.mesh()
}

// Sphere is a UV sphere (ellipsoid for non-uniform sizes).
type Sphere struct {

	// WidthSegs is the number of segments around the equator.
	WidthSegs int `default:"24" min:"3"`

	// HeightSegs is the number of segments from pole to pole.
	HeightSegs int `default:"16" min:"2"`
}

// Generate returns a sphere whose radius on each axis is half of the size.
func (sp *Sphere) Generate(size math32.Vector3) *mesh.Mesh {
	nw, nh := max(sp.WidthSegs, 3), max(sp.HeightSegs, 2)
	h := size.MulScalar(0.5)

	bd := &builder{}
	row := nw + 1
	for y := 0; y <= nh; y++ {
		v := float32(y) / float32(nh)
		elev := v * math32.Pi
		for x := 0; x <= nw; x++ {
			u := float32(x) / float32(nw)
			ang := u * 2 * math32.Pi
			p := math32.Vec3(-h.X*math32.Cos(ang)*math32.Sin(elev), h.Y*math32.Cos(elev), h.Z*math32.Sin(ang)*math32.Sin(elev))
			bd.vertex(p, math32.Vec2(u, 1-v))
		}
	}
	for y := 0; y < nh; y++ {
		for x := 0; x < nw; x++ {
			a := y*row + x + 1
			b := y*row + x
			c := (y+1)*row + x
			d := (y+1)*row + x + 1
			switch {
			case y == 0:
				bd.face(1, b, c, d)
			case y == nh-1:
				bd.face(1, a, b, d)
			default:
				bd.face(1, a, b, c, d)
			}
		}
	}
	return bd.mesh()
}

// Torus is a ring with a circular tube cross section, lying in the
// XZ plane. Partial rings and tubes are made with the circumference
// angles.
type Torus struct {

	// Rows is the number of segments around the tube.
	Rows int `default:"16" min:"3"`

	// Columns is the number of segments around the ring.
	Columns int `default:"24" min:"3"`

	// TubeRadius is the radius of the tube as a proportion of the
	// outer radius of the ring.
	TubeRadius float32 `default:"0.3" min:"0.01" max:"1"`

	// HorizontalCircumference is the angle in degrees swept by the ring.
	HorizontalCircumference float32 `default:"360" min:"1" max:"360"`

	// VerticalCircumference is the angle in degrees swept by the tube.
	VerticalCircumference float32 `default:"360" min:"1" max:"360"`
}

// Generate returns a torus whose outer radius in x and z is half of the
// size, with the tube height scaled by the size in y.
func (tr *Torus) Generate(size math32.Vector3) *mesh.Mesh {
	nr, nc := max(tr.Rows, 3), max(tr.Columns, 3)
	tube := math32.Clamp(tr.TubeRadius, 0.01, 1) * 0.5
	radius := 0.5 - tube
	hang := math32.DegToRad(math32.Clamp(tr.HorizontalCircumference, 1, 360))
	vang := math32.DegToRad(math32.Clamp(tr.VerticalCircumference, 1, 360))

	bd := &builder{}
	row := nr + 1
	for i := 0; i <= nc; i++ {
		u := float32(i) / float32(nc)
		cu, su := math32.Cos(u*hang), math32.Sin(u*hang)
		for j := 0; j <= nr; j++ {
			v := float32(j) / float32(nr)
			cv, sv := math32.Cos(v*vang), math32.Sin(v*vang)
			rr := radius + tube*cv
			p := math32.Vec3(rr*cu*size.X, tube*sv*size.Y, rr*su*size.Z)
			bd.vertex(p, math32.Vec2(u, v))
		}
	}
	for i := 0; i < nc; i++ {
		for j := 0; j < nr; j++ {
			a := i*row + j
			bd.face(1, a, a+1, a+row+1, a+row)
		}
	}
	return bd.mesh()
}
