/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package resolver

import (
	"strconv"
	"strings"

	"github.com/t0rst/brandkit/brand"
	"github.com/t0rst/brandkit/internal/logger"
)

// Accessor provides typed, dotted-path readers over one free-form parameter
// entry. Numeric leaves go through the metric grammar, so a parameter may be
// a metric expression or reference; color leaves name color entries.
//
// A missing entry yields a non-nil accessor whose readers all report false.
type Accessor struct {
	r    *Resolver
	root any
}

// Params returns an accessor for the named parameter entry. When the entry's
// whole value is a string naming another parameter entry, the redirection is
// followed (repeatedly) before interpreting.
func (r *Resolver) Params(name string) *Accessor {
	visited := map[string]bool{name: true}
	e := r.parameterEntry(name)
	if e == nil {
		logger.Warn("parameter %q: no such entry", name)
		return &Accessor{r: r}
	}
	for {
		target, ok := e.Raw.(string)
		if !ok {
			break
		}
		next := r.parameterEntry(target)
		if next == nil {
			break
		}
		if visited[target] {
			logger.Warn("parameter %q: circular redirection via %q", name, target)
			return &Accessor{r: r}
		}
		visited[target] = true
		e = next
	}
	return &Accessor{r: r, root: e.Raw}
}

// Sub returns an accessor scoped to the value at path, so nested structures
// can be read without re-specifying the full path each time.
func (a *Accessor) Sub(path string) *Accessor {
	v, ok := a.lookup(path)
	if !ok {
		return &Accessor{r: a.r}
	}
	return &Accessor{r: a.r, root: v}
}

// lookup walks the dotted path through nested objects and arrays. Numeric
// segments index arrays.
func (a *Accessor) lookup(path string) (any, bool) {
	cur := a.root
	if cur == nil {
		return nil, false
	}
	if path == "" {
		return cur, true
	}
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// String reads a string leaf.
func (a *Accessor) String(path string) (string, bool) {
	v, ok := a.lookup(path)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// Float reads a numeric leaf. String leaves are metric expressions.
func (a *Accessor) Float(path string) (float64, bool) {
	v, ok := a.lookup(path)
	if !ok {
		return 0, false
	}
	return a.leafFloat(v)
}

// Int reads a numeric leaf, truncating toward zero.
func (a *Accessor) Int(path string) (int, bool) {
	v, ok := a.Float(path)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// FloatArray reads a numeric array leaf, or a slash-delimited metric string
// yielding however many values it holds.
func (a *Accessor) FloatArray(path string) ([]float64, bool) {
	v, ok := a.lookup(path)
	if !ok {
		return nil, false
	}
	switch leaf := v.(type) {
	case []any:
		out := make([]float64, len(leaf))
		for i, elem := range leaf {
			f, ok := a.leafFloat(elem)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	case string:
		s := a.r.newSession()
		var deps []brand.Dependency
		vals, err := s.metricTokens(leaf, &deps)
		if err != nil {
			logger.Warn("parameter %v: %v", path, err)
			return nil, false
		}
		return vals, true
	}
	return nil, false
}

// Point reads a 2-component leaf as a coordinate.
func (a *Accessor) Point(path string) (brand.Point, bool) {
	vals, ok := a.fixedFloats(path, 2)
	if !ok {
		return brand.Point{}, false
	}
	return brand.Point{X: vals[0], Y: vals[1]}, true
}

// Size reads a 2-component leaf as an extent.
func (a *Accessor) Size(path string) (brand.Size, bool) {
	vals, ok := a.fixedFloats(path, 2)
	if !ok {
		return brand.Size{}, false
	}
	return brand.Size{Width: vals[0], Height: vals[1]}, true
}

// Insets reads a 4-component leaf in top/left/bottom/right order.
func (a *Accessor) Insets(path string) (brand.Insets, bool) {
	vals, ok := a.fixedFloats(path, 4)
	if !ok {
		return brand.Insets{}, false
	}
	return brand.Insets{Top: vals[0], Left: vals[1], Bottom: vals[2], Right: vals[3]}, true
}

// Color reads a string leaf naming a color entry.
func (a *Accessor) Color(path string) (brand.Color, bool) {
	name, ok := a.String(path)
	if !ok {
		return brand.Color{}, false
	}
	if a.r.colorEntry(name) == nil {
		logger.Warn("parameter %v: %q does not name a color entry", path, name)
		return brand.Color{}, false
	}
	c := a.r.Color(name)
	if c.IsInvalid() {
		return brand.Color{}, false
	}
	return c, true
}

// fixedFloats reads exactly count values from an array leaf or a metric
// expression string.
func (a *Accessor) fixedFloats(path string, count int) ([]float64, bool) {
	v, ok := a.lookup(path)
	if !ok {
		return nil, false
	}
	switch leaf := v.(type) {
	case []any:
		if len(leaf) != count {
			return nil, false
		}
		out := make([]float64, count)
		for i, elem := range leaf {
			f, ok := a.leafFloat(elem)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	case string:
		s := a.r.newSession()
		var deps []brand.Dependency
		vals, err := s.metricSlice(leaf, count, &deps)
		if err != nil {
			logger.Warn("parameter %v: %v", path, err)
			return nil, false
		}
		return vals, true
	}
	return nil, false
}

// leafFloat converts one leaf value to a float: numbers directly, strings
// through the metric grammar.
func (a *Accessor) leafFloat(v any) (float64, bool) {
	switch leaf := v.(type) {
	case float64:
		return leaf, true
	case int:
		return float64(leaf), true
	case string:
		s := a.r.newSession()
		var deps []brand.Dependency
		val, err := s.metricValue(leaf, &deps)
		if err != nil {
			logger.Warn("parameter value %q: %v", leaf, err)
			return 0, false
		}
		return val, true
	}
	return 0, false
}
