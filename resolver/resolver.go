/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package resolver turns brand document entries into concrete values: it
// parses the metric and color grammars, assembles fonts, text attributes,
// images and button styles, and memoizes every result in the owning entry's
// cache cell.
//
// Resolution fails soft: a malformed or unresolvable entry yields its kind's
// sentinel invalid value and a logged warning, never an error, and sibling
// entries are unaffected.
package resolver

import (
	"github.com/t0rst/brandkit/brand"
	"github.com/t0rst/brandkit/fs"
	"github.com/t0rst/brandkit/internal/logger"
)

// Resolver resolves named entries against a document, consulting an optional
// explicit fallback document for names the primary lacks. Construct one per
// document; it is safe for concurrent use once the document's Context is set.
type Resolver struct {
	doc      *brand.Document
	fallback *brand.Document
}

// New creates a resolver over a single document.
func New(doc *brand.Document) *Resolver {
	return &Resolver{doc: doc}
}

// NewWithFallback creates a resolver that looks names up in doc first, then
// in fallback. Callers wanting a process-wide default brand construct the
// fallback once and thread it through here.
func NewWithFallback(doc, fallback *brand.Document) *Resolver {
	return &Resolver{doc: doc, fallback: fallback}
}

// Metric resolves a metric entry by name. Failure yields the invalid-metric
// sentinel (test with brand.IsInvalidMetric).
func (r *Resolver) Metric(name string) float64 {
	return r.newSession().metric(name)
}

// Color resolves a color entry by name.
func (r *Resolver) Color(name string) brand.Color {
	return r.newSession().color(name)
}

// Font resolves a font entry by name.
func (r *Resolver) Font(name string) brand.FontValue {
	return r.newSession().font(name)
}

// TextAttributes resolves a text-attribute-set entry by name.
func (r *Resolver) TextAttributes(name string) brand.TextAttributes {
	return r.newSession().textAttributes(name)
}

// Image resolves an image entry by name. The document's Context must have
// been supplied first; resolving without one is a programmer error and
// panics.
func (r *Resolver) Image(name string) brand.Image {
	return r.newSession().image(name)
}

// ButtonStyle resolves a button-style entry by name.
func (r *Resolver) ButtonStyle(name string) brand.ButtonStyle {
	return r.newSession().buttonStyle(name)
}

// Dependencies returns the entries recorded as consulted while resolving the
// named entry. Empty until the entry has been resolved at least once.
func (r *Resolver) Dependencies(kind brand.Kind, name string) []brand.Dependency {
	switch kind {
	case brand.KindMetric:
		if e := r.metricEntry(name); e != nil {
			return e.Cache().Dependencies()
		}
	case brand.KindColor:
		if e := r.colorEntry(name); e != nil {
			return e.Cache().Dependencies()
		}
	case brand.KindFont:
		if e := r.fontEntry(name); e != nil {
			return e.Cache().Dependencies()
		}
	case brand.KindTextAttributes:
		if e := r.textAttributesEntry(name); e != nil {
			return e.Cache().Dependencies()
		}
	case brand.KindImage:
		if e := r.imageEntry(name); e != nil {
			return e.Cache().Dependencies()
		}
	case brand.KindButtonStyle:
		if e := r.buttonStyleEntry(name); e != nil {
			return e.Cache().Dependencies()
		}
	}
	return nil
}

// Entry lookups search the primary document, then the fallback.

func (r *Resolver) metricEntry(name string) *brand.MetricEntry {
	if e, ok := r.doc.Metrics[name]; ok {
		return e
	}
	if r.fallback != nil {
		if e, ok := r.fallback.Metrics[name]; ok {
			return e
		}
	}
	return nil
}

func (r *Resolver) colorEntry(name string) *brand.ColorEntry {
	if e, ok := r.doc.Colors[name]; ok {
		return e
	}
	if r.fallback != nil {
		if e, ok := r.fallback.Colors[name]; ok {
			return e
		}
	}
	return nil
}

func (r *Resolver) fontEntry(name string) *brand.FontEntry {
	if e, ok := r.doc.Fonts[name]; ok {
		return e
	}
	if r.fallback != nil {
		if e, ok := r.fallback.Fonts[name]; ok {
			return e
		}
	}
	return nil
}

func (r *Resolver) textAttributesEntry(name string) *brand.TextAttributesEntry {
	if e, ok := r.doc.TextAttributes[name]; ok {
		return e
	}
	if r.fallback != nil {
		if e, ok := r.fallback.TextAttributes[name]; ok {
			return e
		}
	}
	return nil
}

func (r *Resolver) placementEntry(name string) *brand.PlacementEntry {
	if e, ok := r.doc.Placements[name]; ok {
		return e
	}
	if r.fallback != nil {
		if e, ok := r.fallback.Placements[name]; ok {
			return e
		}
	}
	return nil
}

func (r *Resolver) imageEntry(name string) *brand.ImageEntry {
	if e, ok := r.doc.Images[name]; ok {
		return e
	}
	if r.fallback != nil {
		if e, ok := r.fallback.Images[name]; ok {
			return e
		}
	}
	return nil
}

func (r *Resolver) buttonStyleEntry(name string) *brand.ButtonStyleEntry {
	if e, ok := r.doc.ButtonStyles[name]; ok {
		return e
	}
	if r.fallback != nil {
		if e, ok := r.fallback.ButtonStyles[name]; ok {
			return e
		}
	}
	return nil
}

func (r *Resolver) parameterEntry(name string) *brand.ParameterEntry {
	if e, ok := r.doc.Parameters[name]; ok {
		return e
	}
	if r.fallback != nil {
		if e, ok := r.fallback.Parameters[name]; ok {
			return e
		}
	}
	return nil
}

// context returns the primary document's context, or the fallback's.
func (r *Resolver) context() *brand.Context {
	if ctx := r.doc.Context(); ctx != nil {
		return ctx
	}
	if r.fallback != nil {
		return r.fallback.Context()
	}
	return nil
}

// session is the state of one top-level resolution call. The visiting set
// guards against cyclic basedOn and named-reference chains: re-entering an
// entry mid-resolution fails that entry fast instead of recursing forever.
type session struct {
	r        *Resolver
	visiting map[brand.Dependency]bool
}

func (r *Resolver) newSession() *session {
	return &session{r: r, visiting: make(map[brand.Dependency]bool)}
}

// enter marks key as in progress. It reports false on re-entry.
func (s *session) enter(key brand.Dependency) bool {
	if s.visiting[key] {
		return false
	}
	s.visiting[key] = true
	return true
}

func (s *session) leave(key brand.Dependency) {
	delete(s.visiting, key)
}

func (s *session) metric(name string) float64 {
	e := s.r.metricEntry(name)
	if e == nil {
		logger.Warn("metric %q: no such entry", name)
		return brand.InvalidMetric()
	}
	if v, _, loaded := e.Cache().Get(); loaded {
		return v
	}
	key := brand.Dependency{Kind: brand.KindMetric, Name: name}
	if !s.enter(key) {
		logger.Warn("metric %q: circular reference", name)
		return brand.InvalidMetric()
	}
	defer s.leave(key)

	var deps []brand.Dependency
	v, err := s.metricValue(e.Raw, &deps)
	if err != nil {
		logger.Warn("metric %q: %v", name, err)
		e.Cache().Store(brand.InvalidMetric(), false, deps)
		return brand.InvalidMetric()
	}
	e.Cache().Store(v, true, deps)
	return v
}

func (s *session) color(name string) brand.Color {
	e := s.r.colorEntry(name)
	if e == nil {
		logger.Warn("color %q: no such entry", name)
		return brand.InvalidColor
	}
	if v, _, loaded := e.Cache().Get(); loaded {
		return v
	}
	key := brand.Dependency{Kind: brand.KindColor, Name: name}
	if !s.enter(key) {
		logger.Warn("color %q: circular reference", name)
		return brand.InvalidColor
	}
	defer s.leave(key)

	var deps []brand.Dependency
	v, err := s.colorValue(e.Raw, &deps)
	if err != nil {
		logger.Warn("color %q: %v", name, err)
		e.Cache().Store(brand.InvalidColor, false, deps)
		return brand.InvalidColor
	}
	e.Cache().Store(v, true, deps)
	return v
}

func (s *session) font(name string) brand.FontValue {
	e := s.r.fontEntry(name)
	if e == nil {
		logger.Warn("font %q: no such entry", name)
		return brand.InvalidFont()
	}
	if v, _, loaded := e.Cache().Get(); loaded {
		return v
	}
	key := brand.Dependency{Kind: brand.KindFont, Name: name}
	if !s.enter(key) {
		logger.Warn("font %q: circular reference", name)
		return brand.InvalidFont()
	}
	defer s.leave(key)

	var deps []brand.Dependency
	v, err := s.fontValue(e, &deps)
	if err != nil {
		logger.Warn("font %q: %v", name, err)
		e.Cache().Store(brand.InvalidFont(), false, deps)
		return brand.InvalidFont()
	}
	e.Cache().Store(v, true, deps)
	return v
}

func (s *session) textAttributes(name string) brand.TextAttributes {
	e := s.r.textAttributesEntry(name)
	if e == nil {
		logger.Warn("textAttributes %q: no such entry", name)
		return brand.InvalidTextAttributes()
	}
	if v, _, loaded := e.Cache().Get(); loaded {
		return v
	}
	key := brand.Dependency{Kind: brand.KindTextAttributes, Name: name}
	if !s.enter(key) {
		logger.Warn("textAttributes %q: circular reference", name)
		return brand.InvalidTextAttributes()
	}
	defer s.leave(key)

	var deps []brand.Dependency
	v, err := s.textAttributesValue(e, &deps)
	if err != nil {
		logger.Warn("textAttributes %q: %v", name, err)
		e.Cache().Store(brand.InvalidTextAttributes(), false, deps)
		return brand.InvalidTextAttributes()
	}
	e.Cache().Store(v, true, deps)
	return v
}

func (s *session) image(name string) brand.Image {
	e := s.r.imageEntry(name)
	if e == nil {
		logger.Warn("image %q: no such entry", name)
		return brand.InvalidImage()
	}
	if v, _, loaded := e.Cache().Get(); loaded {
		return v
	}
	key := brand.Dependency{Kind: brand.KindImage, Name: name}
	if !s.enter(key) {
		logger.Warn("image %q: circular reference", name)
		return brand.InvalidImage()
	}
	defer s.leave(key)

	var deps []brand.Dependency
	v, err := s.imageValue(e, &deps)
	if err != nil {
		logger.Warn("image %q: %v", name, err)
		e.Cache().Store(brand.InvalidImage(), false, deps)
		return brand.InvalidImage()
	}
	e.Cache().Store(v, true, deps)
	return v
}

func (s *session) buttonStyle(name string) brand.ButtonStyle {
	e := s.r.buttonStyleEntry(name)
	if e == nil {
		logger.Warn("buttonStyle %q: no such entry", name)
		return brand.InvalidButtonStyle()
	}
	if v, _, loaded := e.Cache().Get(); loaded {
		return v
	}
	key := brand.Dependency{Kind: brand.KindButtonStyle, Name: name}
	if !s.enter(key) {
		logger.Warn("buttonStyle %q: circular reference", name)
		return brand.InvalidButtonStyle()
	}
	defer s.leave(key)

	var deps []brand.Dependency
	v, err := s.buttonStyleValue(e, &deps)
	if err != nil {
		logger.Warn("buttonStyle %q: %v", name, err)
		e.Cache().Store(brand.InvalidButtonStyle(), false, deps)
		return brand.InvalidButtonStyle()
	}
	e.Cache().Store(v, true, deps)
	return v
}

// fileSystem returns the context's filesystem, defaulting to the OS.
func contextFS(ctx *brand.Context) fs.FileSystem {
	if ctx.FS != nil {
		return ctx.FS
	}
	return fs.NewOSFileSystem()
}
