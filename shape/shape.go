// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides parametric shapes that generate polygon
// meshes for a requested bounding size, and the registry of all
// available shape types.
package shape

import (
	"fmt"
	"reflect"
	"slices"

	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/math32"
	"cogentcore.org/shapes/internal/copyx"
	"cogentcore.org/shapes/mesh"
)

// Shape is a parametric shape. The exported fields of a shape are its
// parameters, with `default:` struct tags giving the values used for a
// newly created shape.
type Shape interface {

	// Generate returns new, unrotated geometry for the shape sized to
	// approximately fill the given bounding size, centered on the origin.
	// The result may deviate from the size (for example a cylinder with
	// an odd number of sides); callers rescale it as needed.
	// Generate must be deterministic for the same parameters and size.
	Generate(size math32.Vector3) *mesh.Mesh
}

// TypeName returns the name used to identify the type of the given
// shape, which is its non-pointer Go type name (for example "Cube").
// It returns "" for a nil shape.
func TypeName(s Shape) string {
	if s == nil {
		return ""
	}
	return reflectx.NonPointerType(reflect.TypeOf(s)).Name()
}

// Clone returns a deep copy of the given shape, which must be a
// pointer to a struct. Parameters that are nil slices stay nil.
func Clone(s Shape) (Shape, error) {
	if s == nil {
		return nil, nil
	}
	typ := reflectx.NonPointerType(reflect.TypeOf(s))
	cp, ok := reflect.New(typ).Interface().(Shape)
	if !ok {
		return nil, fmt.Errorf("shape.Clone: *%s is not a Shape", typ.Name())
	}
	if err := copyx.DeepCopy(cp, s); err != nil {
		return nil, fmt.Errorf("shape.Clone: %w", err)
	}
	return cp, nil
}

// Registry is an ordered set of shape types that can be constructed
// by name.
type Registry struct {
	names []string
	funcs map[string]func() Shape
}

// Types is the registry of all shape types, which contains the
// built-in shapes. Additional shapes can be added with [Registry.Add].
var Types = NewRegistry()

func init() {
	Types.Add(func() Shape { return &Cube{} })
	Types.Add(func() Shape { return &Plane{} })
	Types.Add(func() Shape { return &Cylinder{} })
	Types.Add(func() Shape { return &Sphere{} })
	Types.Add(func() Shape { return &Torus{} })
	Types.Add(func() Shape { return &Custom{} })
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: map[string]func() Shape{}}
}

// Add adds the shape type made by the given function, returning its
// type name. Adding a type name that already exists replaces its
// function, keeping its position in the order.
func (rg *Registry) Add(fun func() Shape) string {
	nm := TypeName(fun())
	if _, has := rg.funcs[nm]; !has {
		rg.names = append(rg.names, nm)
	}
	rg.funcs[nm] = fun
	return nm
}

// Names returns the type names in the order they were added.
func (rg *Registry) Names() []string {
	return slices.Clone(rg.names)
}

// Has returns whether the given type name is registered.
func (rg *Registry) Has(name string) bool {
	_, has := rg.funcs[name]
	return has
}

// Index returns the position of the given type name in [Registry.Names],
// or -1 if it is not registered.
func (rg *Registry) Index(name string) int {
	return slices.Index(rg.names, name)
}

// New returns a new shape of the given type name with its default
// parameter values.
func (rg *Registry) New(name string) (Shape, error) {
	fun, ok := rg.funcs[name]
	if !ok {
		return nil, fmt.Errorf("shape.New: type %q is not registered", name)
	}
	s := fun()
	if s == nil || (reflect.ValueOf(s).Kind() == reflect.Pointer && reflect.ValueOf(s).IsNil()) {
		return nil, fmt.Errorf("shape.New: cannot create shape of type %q because it does not have a default form", name)
	}
	if err := reflectx.SetFromDefaultTags(s); err != nil {
		return s, fmt.Errorf("shape.New: setting defaults for %q: %w", name, err)
	}
	return s, nil
}
