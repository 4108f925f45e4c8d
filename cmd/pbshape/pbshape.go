// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pbshape builds parametric shapes and exports them as meshes.
// The parameters of each shape type are remembered in a settings file,
// so that a new shape resumes the last saved parameters of its type.
package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"cogentcore.org/shapes/params"
	"cogentcore.org/shapes/settings"
	"cogentcore.org/shapes/shape"
	"cogentcore.org/shapes/shapecomp"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the pbshape cli.
type Config struct {

	// Shape is the name of the shape type to build.
	Shape string `posarg:"0" required:"-" default:"Cube"`

	// Params is a JSON object with parameter values of the shape,
	// which override the last saved parameters, for example {"Sides": 5}.
	Params string `flag:"p,params"`

	// Size is the bounding size of the shape.
	// Zero components are treated as 1.
	Size math32.Vector3

	// Rotate is the rotation of the shape, as Euler angles in degrees.
	Rotate math32.Vector3

	// Output is the file to export the mesh to, in OBJ format,
	// or in JSON format if it has a .json extension.
	Output string `flag:"o,output" default:"shape.obj"`

	// Settings is the settings file where the parameters of each
	// shape type are saved (.toml, .yaml, or .json).
	Settings string `default:"pbshape.toml"`

	// Save saves the parameters of the shape to the settings file,
	// as the last parameters of its type.
	Save bool `flag:"s,save"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("pbshape", "Pbshape builds parametric shapes and exports them as meshes.")
	cli.Run(opts, &Config{}, Build, List)
}

// Build builds the shape and exports its mesh to the output file.
func Build(c *Config) error { //cli:cmd -root
	se, st, err := openStore(c)
	if err != nil {
		return err
	}
	s := st.CreateShape(c.Shape)
	if s == nil {
		return fmt.Errorf("unknown shape type %q (available types: %s)", c.Shape, strings.Join(shape.Types.Names(), ", "))
	}
	if c.Params != "" {
		if err := jsonx.ReadBytes(s, []byte(c.Params)); err != nil {
			return fmt.Errorf("invalid params %q: %w", c.Params, err)
		}
	}

	sc := shapecomp.New(s)
	sc.SetSize(math32.Vec3(orOne(c.Size.X), orOne(c.Size.Y), orOne(c.Size.Z)))
	if c.Rotate != (math32.Vector3{}) {
		sc.RotateBy(c.Rotate)
	}

	if c.Save {
		st.SaveParams(s)
		if err := se.Save(); err != nil {
			return err
		}
		slog.Info("saved parameters", "shape", c.Shape, "settings", c.Settings)
	}

	if strings.ToLower(filepath.Ext(c.Output)) == ".json" {
		err = sc.Mesh.SaveJSON(c.Output)
	} else {
		err = sc.Mesh.SaveOBJ(c.Output)
	}
	if err != nil {
		return err
	}
	slog.Info("built shape", "shape", c.Shape, "size", sc.Size(), "vertices", sc.Mesh.VertexCount(), "faces", len(sc.Mesh.Faces), "output", c.Output)
	return nil
}

// List lists the available shape types with their last saved parameters.
func List(c *Config) error {
	_, st, err := openStore(c)
	if err != nil {
		return err
	}
	for _, nm := range shape.Types.Names() {
		s, err := st.LastParams(nm)
		if err != nil {
			return err
		}
		b, err := jsonx.WriteBytes(s)
		if err != nil {
			return err
		}
		fmt.Printf("%-10s %s\n", nm, b)
	}
	return nil
}

func openStore(c *Config) (*settings.Settings, *params.Store, error) {
	se := settings.New(c.Settings, "")
	if err := se.Open(); err != nil {
		return nil, nil, err
	}
	return se, params.NewStore(shape.Types, se), nil
}

func orOne(x float32) float32 {
	if x == 0 {
		return 1
	}
	return x
}
