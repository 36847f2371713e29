/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package brand

import "sync"

// Kind identifies one of the document's asset collections.
type Kind int

const (
	// KindMetric is the metrics collection.
	KindMetric Kind = iota

	// KindColor is the colors collection.
	KindColor

	// KindFont is the fonts collection.
	KindFont

	// KindTextAttributes is the textAttributes collection.
	KindTextAttributes

	// KindPlacement is the placements collection.
	KindPlacement

	// KindImage is the images collection.
	KindImage

	// KindButtonStyle is the buttonStyles collection.
	KindButtonStyle

	// KindParameter is the otherParameters collection.
	KindParameter
)

var kindNames = map[Kind]string{
	KindMetric:         "metric",
	KindColor:          "color",
	KindFont:           "font",
	KindTextAttributes: "textAttributes",
	KindPlacement:      "placement",
	KindImage:          "image",
	KindButtonStyle:    "buttonStyle",
	KindParameter:      "parameter",
}

// String returns the kind's name as used in logs and dependency listings.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindFromString parses a kind name. Accepts the singular collection names
// used by String as well as the document's plural field names.
func KindFromString(s string) (Kind, bool) {
	switch s {
	case "metric", "metrics":
		return KindMetric, true
	case "color", "colors":
		return KindColor, true
	case "font", "fonts":
		return KindFont, true
	case "textAttributes":
		return KindTextAttributes, true
	case "placement", "placements":
		return KindPlacement, true
	case "image", "images":
		return KindImage, true
	case "buttonStyle", "buttonStyles":
		return KindButtonStyle, true
	case "parameter", "parameters", "otherParameters":
		return KindParameter, true
	}
	return KindMetric, false
}

// Dependency is one edge in the resolution graph: while computing an entry's
// value, the entry named here was consulted.
type Dependency struct {
	Kind Kind
	Name string
}

// String returns the edge as "kind:name".
func (d Dependency) String() string {
	return d.Kind.String() + ":" + d.Name
}

// Cache is the per-entry memoization cell. It is created empty and written at
// most once, when the owning entry's first resolution attempt completes. A
// failed attempt still writes: it stores the kind's sentinel invalid payload
// with valid=false, so later calls short-circuit without re-parsing.
//
// Store is first-write-wins, which keeps concurrent resolution of the same
// entry safe: whichever goroutine finishes first publishes the result, the
// rest discard theirs.
type Cache[T any] struct {
	mu      sync.Mutex
	loaded  bool
	valid   bool
	payload T
	deps    []Dependency
}

// Get returns the stored payload, whether it resolved successfully, and
// whether a resolution attempt has completed at all.
func (c *Cache[T]) Get() (payload T, valid, loaded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payload, c.valid, c.loaded
}

// Store records the outcome of a resolution attempt. The first call wins;
// later calls are ignored.
func (c *Cache[T]) Store(payload T, valid bool, deps []Dependency) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return
	}
	c.loaded = true
	c.valid = valid
	c.payload = payload
	c.deps = deps
}

// Dependencies returns a copy of the entries consulted while computing the
// stored payload. Empty until a resolution attempt completes.
func (c *Cache[T]) Dependencies() []Dependency {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Dependency, len(c.deps))
	copy(out, c.deps)
	return out
}
