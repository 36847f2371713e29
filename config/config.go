/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for brandkit tooling.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Config represents the brandkit configuration.
type Config struct {
	// Files specifies brand document files to load (paths or globs), in
	// fallback order: the first file is the primary document, later files
	// are consulted for names the earlier ones lack.
	Files []FileSpec `yaml:"files" json:"files"`

	// StorageRoot is the directory image file paths resolve against.
	StorageRoot string `yaml:"storageRoot" json:"storageRoot"`

	// Fallback is the path of a default brand document consulted for names
	// missing from the loaded document.
	Fallback string `yaml:"fallback" json:"fallback"`
}

// FileSpec represents one brand document file. It can be specified as a
// simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (glob patterns allowed).
	Path string `yaml:"path" json:"path"`

	// StorageRoot overrides the global storage root for this document.
	StorageRoot string `yaml:"storageRoot" json:"storageRoot"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// RootFor returns the storage root for the given document path, preferring a
// file-level override.
func (c *Config) RootFor(path string) string {
	for _, spec := range c.Files {
		if spec.Path == path && spec.StorageRoot != "" {
			return spec.StorageRoot
		}
	}
	return c.StorageRoot
}
