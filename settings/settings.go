// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides a layered key-value settings store, where
// project settings override global settings, which override registered
// defaults. Settings are saved to TOML, YAML, or JSON files.
package settings

import (
	"image/color"
	"maps"
	"reflect"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/colors"
	"cogentcore.org/shapes/internal/copyx"
)

// Scope is where a setting is stored.
type Scope int32

const (
	// Project settings are stored per-project, and take
	// precedence over global settings.
	Project Scope = iota

	// Global settings are shared between all projects.
	Global

	scopesN
)

func (sc Scope) String() string {
	switch sc {
	case Project:
		return "Project"
	case Global:
		return "Global"
	}
	return "Scope(?)"
}

// Settings is a layered key-value settings store.
// Values stored in memory keep their Go type until the settings are
// saved and re-opened, after which they are generic decoded values
// that are converted on access.
type Settings struct {

	// ProjectFile is the file for [Project] settings.
	// The format is determined by the extension: .toml, .yaml, .yml, or .json.
	ProjectFile string

	// GlobalFile is the file for [Global] settings.
	GlobalFile string

	// AutoSave saves the file of a scope every time a value in it is set.
	AutoSave bool

	// Defaults are used when a key is in neither scope.
	Defaults map[string]any

	values [scopesN]map[string]any
}

// New returns new settings using the given files, which may be empty
// for settings that are only kept in memory. The defaults are
// initialized from [StandardDefaults].
func New(projectFile, globalFile string) *Settings {
	se := &Settings{ProjectFile: projectFile, GlobalFile: globalFile}
	se.Defaults = StandardDefaults()
	for i := range se.values {
		se.values[i] = map[string]any{}
	}
	return se
}

// Filename returns the file for the given scope.
func (se *Settings) Filename(sc Scope) string {
	if sc == Global {
		return se.GlobalFile
	}
	return se.ProjectFile
}

// Open reads the settings files of both scopes, replacing the values
// in memory. Files that do not exist are skipped.
func (se *Settings) Open() error {
	var errs []error
	for sc := Project; sc < scopesN; sc++ {
		fn := se.Filename(sc)
		if fn == "" {
			continue
		}
		vals := map[string]any{}
		if err := openFile(fn, &vals); err != nil {
			errs = append(errs, err)
			continue
		}
		se.values[sc] = vals
	}
	return errors.Join(errs...)
}

// Save writes the settings files of both scopes.
func (se *Settings) Save() error {
	return errors.Join(se.SaveScope(Project), se.SaveScope(Global))
}

// SaveScope writes the settings file of the given scope.
// It does nothing if the scope has no file.
func (se *Settings) SaveScope(sc Scope) error {
	fn := se.Filename(sc)
	if fn == "" {
		return nil
	}
	return saveFile(fn, se.values[sc])
}

// Keys returns the sorted keys set in the given scope.
func (se *Settings) Keys(sc Scope) []string {
	return slices.Sorted(maps.Keys(se.values[sc]))
}

// Has returns whether the given key is set in the given scope.
func (se *Settings) Has(key string, sc Scope) bool {
	_, has := se.values[sc][key]
	return has
}

// Delete removes the given key from the given scope.
func (se *Settings) Delete(key string, sc Scope) {
	delete(se.values[sc], key)
	se.changed(sc)
}

// lookup returns the value for the key, looking in project,
// global, and then defaults.
func (se *Settings) lookup(key string) (any, bool) {
	for sc := Project; sc < scopesN; sc++ {
		if v, ok := se.values[sc][key]; ok {
			return v, true
		}
	}
	v, ok := se.Defaults[key]
	return v, ok
}

func (se *Settings) set(key string, v any, sc Scope) {
	se.values[sc][key] = v
	se.changed(sc)
}

func (se *Settings) changed(sc Scope) {
	if se.AutoSave {
		errors.Log(se.SaveScope(sc))
	}
}

// Value sets dst, which must be a pointer, to the value of the given
// key, returning false if the key has no value or the value could not
// be converted (which is logged). Values of the same type as dst are
// deep copied; other values are converted through JSON.
func (se *Settings) Value(key string, dst any) bool {
	v, ok := se.lookup(key)
	if !ok || v == nil {
		return false
	}
	return errors.Log(convert(dst, v)) == nil
}

// SetValue sets the given key to the given value in the given scope.
// The value must not be modified after it is set.
func (se *Settings) SetValue(key string, v any, sc Scope) {
	se.set(key, v, sc)
}

func convert(dst, src any) error {
	dt := reflectx.NonPointerType(reflect.TypeOf(dst))
	st := reflectx.NonPointerType(reflect.TypeOf(src))
	if dt == st && dt.Kind() == reflect.Struct {
		return copyx.DeepCopy(dst, src)
	}
	if st.Kind() == reflect.Map || st.Kind() == reflect.Struct || st.Kind() == reflect.Slice {
		b, err := jsonx.WriteBytes(src)
		if err != nil {
			return err
		}
		return jsonx.ReadBytes(dst, b)
	}
	return reflectx.SetRobust(dst, src)
}

// Bool returns the bool value of the given key, or def if there is none.
func (se *Settings) Bool(key string, def bool) bool {
	v, ok := se.lookup(key)
	if !ok {
		return def
	}
	b, err := reflectx.ToBool(v)
	if errors.Log(err) != nil {
		return def
	}
	return b
}

// SetBool sets the given key to the given bool value.
func (se *Settings) SetBool(key string, v bool, sc Scope) {
	se.set(key, v, sc)
}

// Int returns the int value of the given key, or def if there is none.
func (se *Settings) Int(key string, def int) int {
	v, ok := se.lookup(key)
	if !ok {
		return def
	}
	i, err := reflectx.ToInt(v)
	if errors.Log(err) != nil {
		return def
	}
	return int(i)
}

// SetInt sets the given key to the given int value.
func (se *Settings) SetInt(key string, v int, sc Scope) {
	se.set(key, v, sc)
}

// Float returns the float value of the given key, or def if there is none.
func (se *Settings) Float(key string, def float32) float32 {
	v, ok := se.lookup(key)
	if !ok {
		return def
	}
	f, err := reflectx.ToFloat(v)
	if errors.Log(err) != nil {
		return def
	}
	return float32(f)
}

// SetFloat sets the given key to the given float value.
func (se *Settings) SetFloat(key string, v float32, sc Scope) {
	se.set(key, v, sc)
}

// String returns the string value of the given key, or def if there is none.
func (se *Settings) String(key string, def string) string {
	v, ok := se.lookup(key)
	if !ok {
		return def
	}
	return reflectx.ToString(v)
}

// SetString sets the given key to the given string value.
func (se *Settings) SetString(key string, v string, sc Scope) {
	se.set(key, v, sc)
}

// Color returns the color value of the given key, or def if there is none.
// Colors are stored as hex strings.
func (se *Settings) Color(key string, def color.RGBA) color.RGBA {
	v, ok := se.lookup(key)
	if !ok {
		return def
	}
	if c, ok := v.(color.RGBA); ok {
		return c
	}
	c, err := colors.FromHex(reflectx.ToString(v))
	if errors.Log(err) != nil {
		return def
	}
	return c
}

// SetColor sets the given key to the given color value.
func (se *Settings) SetColor(key string, v color.Color, sc Scope) {
	se.set(key, colors.AsHex(v), sc)
}
