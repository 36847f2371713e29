/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package brand provides the declarative brand-asset document model: named
// entries for metrics, colors, fonts, text attributes, placements, images and
// button styles, each carrying a per-entry memoization cell filled in by the
// resolver package.
package brand

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/t0rst/brandkit/fs"
)

// FontRegistry answers whether a family/face combination exists in the host
// font system, and under which canonical name. A nil registry skips the
// realized-font check during font resolution.
type FontRegistry interface {
	Lookup(family, face string) (canonicalName string, ok bool)
}

// Context is the externally-supplied, mutable state a document needs beyond
// its declarative graph: where image file paths resolve from, and optionally
// a font registry for realized-font verification.
type Context struct {
	// Root is the storage root image file paths are joined to.
	Root string

	// FS reads image file content. Defaults to the OS filesystem when nil.
	FS fs.FileSystem

	// Fonts verifies assembled font descriptors, when present.
	Fonts FontRegistry
}

// Document is the root container: one name-keyed map per asset kind. Groups
// present in the input are merged into these maps at decode time and then
// discarded, so a decoded Document is the single source of truth.
//
// A Document is immutable after decode except for the entries' cache cells
// and the lazily-supplied Context.
type Document struct {
	Version int

	Metrics        map[string]*MetricEntry
	Colors         map[string]*ColorEntry
	Fonts          map[string]*FontEntry
	TextAttributes map[string]*TextAttributesEntry
	Placements     map[string]*PlacementEntry
	Images         map[string]*ImageEntry
	ButtonStyles   map[string]*ButtonStyleEntry
	Parameters     map[string]*ParameterEntry

	ctxMu sync.RWMutex
	ctx   *Context
}

// SetContext supplies the document's external context. Must be called before
// any image entry is resolved.
func (d *Document) SetContext(ctx *Context) {
	d.ctxMu.Lock()
	defer d.ctxMu.Unlock()
	d.ctx = ctx
}

// Context returns the current context, or nil if none was supplied.
func (d *Document) Context() *Context {
	d.ctxMu.RLock()
	defer d.ctxMu.RUnlock()
	return d.ctx
}

// Has reports whether an entry of the given kind and name exists.
func (d *Document) Has(kind Kind, name string) bool {
	switch kind {
	case KindMetric:
		_, ok := d.Metrics[name]
		return ok
	case KindColor:
		_, ok := d.Colors[name]
		return ok
	case KindFont:
		_, ok := d.Fonts[name]
		return ok
	case KindTextAttributes:
		_, ok := d.TextAttributes[name]
		return ok
	case KindPlacement:
		_, ok := d.Placements[name]
		return ok
	case KindImage:
		_, ok := d.Images[name]
		return ok
	case KindButtonStyle:
		_, ok := d.ButtonStyles[name]
		return ok
	case KindParameter:
		_, ok := d.Parameters[name]
		return ok
	}
	return false
}

// Names returns the sorted entry names of the given kind.
func (d *Document) Names(kind Kind) []string {
	var names []string
	switch kind {
	case KindMetric:
		for n := range d.Metrics {
			names = append(names, n)
		}
	case KindColor:
		for n := range d.Colors {
			names = append(names, n)
		}
	case KindFont:
		for n := range d.Fonts {
			names = append(names, n)
		}
	case KindTextAttributes:
		for n := range d.TextAttributes {
			names = append(names, n)
		}
	case KindPlacement:
		for n := range d.Placements {
			names = append(names, n)
		}
	case KindImage:
		for n := range d.Images {
			names = append(names, n)
		}
	case KindButtonStyle:
		for n := range d.ButtonStyles {
			names = append(names, n)
		}
	case KindParameter:
		for n := range d.Parameters {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// Len returns the total entry count across all kinds.
func (d *Document) Len() int {
	return len(d.Metrics) + len(d.Colors) + len(d.Fonts) +
		len(d.TextAttributes) + len(d.Placements) + len(d.Images) +
		len(d.ButtonStyles) + len(d.Parameters)
}

// checkName rejects entry names containing spaces. Space in a name is a
// decode-time structural error, not a resolution failure.
func checkName(kind Kind, name string) error {
	if strings.Contains(name, " ") {
		return fmt.Errorf("%s %q: %w", kind, name, ErrSpaceInName)
	}
	return nil
}
