// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapecomp

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/shapes/history"
	"cogentcore.org/shapes/params"
	"cogentcore.org/shapes/shape"
)

// ApplyParams is called after the parameters of the shape have been
// edited: it rebuilds the mesh and saves the parameters as the last
// used parameters of the shape type. Rebuilding discards manual edits
// of the mesh, so interactive callers should confirm with the user
// first when [Component.Edited] is true.
func (sc *Component) ApplyParams(st *params.Store) {
	sc.Rebuild()
	st.SaveParams(sc.shape)
}

// HasMultipleShapeTypes returns whether the given components do not
// all have the same shape type.
func HasMultipleShapeTypes(comps ...*Component) bool {
	typ := ""
	for i, sc := range comps {
		nm := shape.TypeName(sc.shape)
		if i == 0 {
			typ = nm
		} else if nm != typ {
			return true
		}
	}
	return false
}

// AnyEdited returns whether any of the given components has a mesh
// that was edited by hand, which rebuilding would discard.
func AnyEdited(comps ...*Component) bool {
	for _, sc := range comps {
		if sc.Edited() {
			return true
		}
	}
	return false
}

// ShapeIndex returns the index in the given registry of the shape type
// shared by the given components, or -1 if they have multiple types
// or the type is not registered.
func ShapeIndex(types *shape.Registry, comps ...*Component) int {
	if len(comps) == 0 || HasMultipleShapeTypes(comps...) {
		return -1
	}
	return types.Index(shape.TypeName(comps[0].shape))
}

// SetShapeType changes the shape of every given component whose shape
// is not already of the given type to a new shape of that type, made
// with the last used parameters from the store. Each change is saved
// in the history if it is not nil. It returns an error, without
// changing any component, if the shape cannot be created.
// Changing the shape discards manual edits of the mesh, as with
// [Component.ApplyParams]; use [AnyEdited] to check for them first.
func SetShapeType(hs *history.Stack[Snapshots], st *params.Store, typeName string, comps ...*Component) error {
	for _, sc := range comps {
		if shape.TypeName(sc.shape) == typeName {
			continue
		}
		s := st.CreateShape(typeName)
		if s == nil {
			return errors.Log(fmt.Errorf("shapecomp.SetShapeType: cannot create shape of type %q", typeName))
		}
		if hs != nil {
			hs.Save("Change Shape", TakeSnapshots(sc))
		}
		sc.SetShape(s)
	}
	return nil
}
