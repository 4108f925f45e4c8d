// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params remembers the last used parameters of each shape type,
// so that a newly created shape resumes the settings the user last
// applied to a shape of the same type.
package params

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/shapes/internal/copyx"
	"cogentcore.org/shapes/settings"
	"cogentcore.org/shapes/shape"
)

// KeyPrefix is the prefix of the settings key for the parameters of a
// shape type, which is followed by the type name.
const KeyPrefix = "ShapeBuilder."

// Key returns the settings key for the given shape type name.
func Key(typeName string) string {
	return KeyPrefix + typeName
}

// Store holds the last used parameters for each shape type of a
// registry, persisted in the [settings.Project] scope of a settings
// store. It is typically shared by all shapes of an application.
type Store struct {

	// Types is the registry of shape types.
	Types *shape.Registry

	// Settings is where parameters are persisted. It may be nil,
	// in which case parameters are only kept in memory.
	Settings *settings.Settings

	last map[string]shape.Shape
}

// NewStore returns a new store with one entry for every type in the
// given registry, loaded from the given settings if present there and
// otherwise set to the defaults of the type.
func NewStore(types *shape.Registry, se *settings.Settings) *Store {
	st := &Store{Types: types, Settings: se, last: map[string]shape.Shape{}}
	for _, nm := range types.Names() {
		s, err := types.New(nm)
		if errors.Log(err) != nil && s == nil {
			st.last[nm] = nil
			continue
		}
		if se != nil {
			se.Value(Key(nm), s)
		}
		st.last[nm] = s
	}
	return st
}

// Has returns whether the given type name has an entry.
func (st *Store) Has(typeName string) bool {
	_, has := st.last[typeName]
	return has
}

// LastParams returns a copy of the last saved parameters for the given
// shape type. If none have been saved, it returns a new shape with the
// default parameters of the type. It returns an error if the shape
// cannot be constructed.
func (st *Store) LastParams(typeName string) (shape.Shape, error) {
	if s := st.last[typeName]; s != nil {
		return shape.Clone(s)
	}
	return st.Types.New(typeName)
}

// SaveParams saves a copy of the parameters of the given shape as the
// last parameters of its type. It does nothing if the type was not in
// the registry when the store was made.
func (st *Store) SaveParams(s shape.Shape) {
	nm := shape.TypeName(s)
	if !st.Has(nm) {
		return
	}
	cp, err := shape.Clone(s)
	if errors.Log(err) != nil {
		return
	}
	st.last[nm] = cp
	if st.Settings != nil {
		pc, err := shape.Clone(s)
		if errors.Log(err) == nil {
			st.Settings.SetValue(Key(nm), pc, settings.Project)
		}
	}
}

// CreateShape returns a new shape of the given type, with its parameters
// set from [Store.LastParams]. Construction errors are logged, and
// whatever could be made is returned, which may be nil.
func (st *Store) CreateShape(typeName string) shape.Shape {
	s, err := st.Types.New(typeName)
	if errors.Log(err) != nil && s == nil {
		return nil
	}
	last, err := st.LastParams(typeName)
	if errors.Log(err) != nil || last == nil {
		return s
	}
	errors.Log(copyx.DeepCopy(s, last))
	return s
}

// LastParamsOf returns the last parameters for the shape type T.
func LastParamsOf[T shape.Shape](st *Store) (T, error) {
	var zero T
	nm := shape.TypeName(zero)
	s, err := st.LastParams(nm)
	if err != nil {
		return zero, err
	}
	ts, ok := s.(T)
	if !ok {
		return zero, fmt.Errorf("params.LastParamsOf: %q is a %T", nm, s)
	}
	return ts, nil
}
