// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/math32"
	"cogentcore.org/shapes/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	c := &Config{
		Shape:    "Cylinder",
		Params:   `{"Sides": 5}`,
		Size:     math32.Vec3(2, 0, 1),
		Rotate:   math32.Vec3(0, 30, 0),
		Output:   filepath.Join(dir, "cyl.obj"),
		Settings: filepath.Join(dir, "pbshape.toml"),
		Save:     true,
	}
	require.NoError(t, Build(c))
	b, err := os.ReadFile(c.Output)
	require.NoError(t, err)
	obj := string(b)
	assert.True(t, strings.HasPrefix(obj, "v "))
	assert.Contains(t, obj, "\nvn ")
	assert.Contains(t, obj, "\nf ")

	// the saved parameters are used for the next cylinder
	c.Params = ""
	c.Save = false
	c.Output = filepath.Join(dir, "cyl.json")
	require.NoError(t, Build(c))
	var md mesh.Data
	require.NoError(t, jsonx.Open(&md, c.Output))
	// 5 side quads and two 5 sided caps
	assert.Len(t, md.Vertex, 3*(5*4+2*5))
	assert.NotEmpty(t, md.Index)

	require.NoError(t, List(c))
}

func TestBuildUnknown(t *testing.T) {
	dir := t.TempDir()
	c := &Config{Shape: "Teapot", Output: filepath.Join(dir, "x.obj"), Settings: filepath.Join(dir, "s.toml")}
	assert.Error(t, Build(c))

	c.Shape = "Cube"
	c.Params = "{not json"
	assert.Error(t, Build(c))
}
