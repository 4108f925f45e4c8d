// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"github.com/pelletier/go-toml/v2"
)

// openFile reads the given settings file into vals, based on its
// extension. A file that does not exist is not an error.
func openFile(filename string, vals *map[string]any) error {
	if !errors.Log1(fsx.FileExists(filename)) {
		return nil
	}
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(vals, filename)
	case ".json":
		err = jsonx.Open(vals, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(vals, filename)
	default:
		return fmt.Errorf("settings: unsupported file type %q for %q", ext, filename)
	}
	if err != nil {
		return fmt.Errorf("settings: open %s: %w", filename, err)
	}
	if *vals == nil {
		*vals = map[string]any{}
	}
	return nil
}

// saveFile writes vals to the given settings file, based on its
// extension, creating the directory if needed.
func saveFile(filename string, vals map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("settings: save %s: %w", filename, err)
	}
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = saveTOML(filename, vals)
	case ".json":
		err = jsonx.Save(vals, filename)
	case ".yaml", ".yml":
		err = yamlx.Save(vals, filename)
	default:
		return fmt.Errorf("settings: unsupported file type %q for %q", ext, filename)
	}
	if err != nil {
		return fmt.Errorf("settings: save %s: %w", filename, err)
	}
	return nil
}

// saveTOML writes vals with indented tables, so that the parameters
// of each shape type are readable in the settings file.
func saveTOML(filename string, vals map[string]any) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).SetIndentTables(true).Encode(vals)
}
