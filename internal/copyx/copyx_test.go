// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copyx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Values []int
}

type outer struct {
	Name   string
	Points []float32
	Faces  [][]int
	Tags   map[string]int
	Inner  *inner
	Inners []inner
}

func TestDeepCopy(t *testing.T) {
	src := &outer{Name: "a", Faces: [][]int{nil, {1, 2}}, Inner: &inner{}, Inners: []inner{{Values: []int{3}}, {}}}
	var dst outer
	require.NoError(t, DeepCopy(&dst, src))
	assert.Equal(t, *src, dst)
	assert.Nil(t, dst.Points)
	assert.Nil(t, dst.Tags)
	assert.Nil(t, dst.Faces[0])
	assert.Nil(t, dst.Inner.Values)
	assert.Nil(t, dst.Inners[1].Values)

	dst.Faces[1][0] = 10
	dst.Inners[0].Values[0] = 30
	assert.Equal(t, 1, src.Faces[1][0])
	assert.Equal(t, 3, src.Inners[0].Values[0])
}

func TestDeepCopyValue(t *testing.T) {
	src := outer{Name: "b", Tags: map[string]int{"x": 1}}
	var dst outer
	require.NoError(t, DeepCopy(&dst, src))
	assert.Equal(t, src, dst)
	dst.Tags["x"] = 2
	assert.Equal(t, 1, src.Tags["x"])
}
