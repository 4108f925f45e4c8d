// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package copyx provides deep copies of parameter structs.
package copyx

import (
	"reflect"

	"github.com/jinzhu/copier"
)

// DeepCopy deep copies src into dst, which must be a pointer.
// Unlike a plain [copier] deep copy, slices and maps that are nil
// in src are also nil in dst, so that the copy is equal to src.
func DeepCopy(dst, src any) error {
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		return err
	}
	dv := reflect.ValueOf(dst)
	sv := reflect.ValueOf(src)
	if sv.Kind() != reflect.Pointer {
		dv = dv.Elem()
	}
	KeepNil(dv, sv)
	return nil
}

// KeepNil sets every slice and map in dst to nil where the
// corresponding slice or map in src is nil. dst and src must have
// the same type, otherwise it does nothing.
func KeepNil(dst, src reflect.Value) {
	if !dst.IsValid() || !src.IsValid() || dst.Type() != src.Type() {
		return
	}
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() || dst.IsNil() {
			return
		}
		KeepNil(dst.Elem(), src.Elem())
	case reflect.Struct:
		typ := src.Type()
		for i := range src.NumField() {
			if !typ.Field(i).IsExported() {
				continue
			}
			KeepNil(dst.Field(i), src.Field(i))
		}
	case reflect.Slice:
		if src.IsNil() {
			if dst.CanSet() {
				dst.SetZero()
			}
			return
		}
		for i := range min(src.Len(), dst.Len()) {
			KeepNil(dst.Index(i), src.Index(i))
		}
	case reflect.Map:
		if src.IsNil() && dst.CanSet() {
			dst.SetZero()
		}
	}
}
