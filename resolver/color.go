/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/t0rst/brandkit/brand"
)

// Color expressions are slash-delimited with a leading format tag fixing the
// component count: rgb(3), rgba(4), hsb(3), hsba(4), w(1), wa(2), web(1),
// named(1). Components of the numeric formats are metric expressions.
var colorArity = map[string]int{
	"rgb":  3,
	"rgba": 4,
	"hsb":  3,
	"hsba": 4,
	"w":    1,
	"wa":   2,
}

// palette is the built-in named-color fallback, matched when named/<name>
// does not resolve to a color entry.
var palette = map[string]brand.Color{
	"black":     {R: 0, G: 0, B: 0, A: 1},
	"darkGray":  {R: 1.0 / 3, G: 1.0 / 3, B: 1.0 / 3, A: 1},
	"lightGray": {R: 2.0 / 3, G: 2.0 / 3, B: 2.0 / 3, A: 1},
	"white":     {R: 1, G: 1, B: 1, A: 1},
	"gray":      {R: 0.5, G: 0.5, B: 0.5, A: 1},
	"red":       {R: 1, G: 0, B: 0, A: 1},
	"green":     {R: 0, G: 1, B: 0, A: 1},
	"blue":      {R: 0, G: 0, B: 1, A: 1},
	"cyan":      {R: 0, G: 1, B: 1, A: 1},
	"yellow":    {R: 1, G: 1, B: 0, A: 1},
	"magenta":   {R: 1, G: 0, B: 1, A: 1},
	"orange":    {R: 1, G: 0.5, B: 0, A: 1},
	"purple":    {R: 0.5, G: 0, B: 0.5, A: 1},
	"brown":     {R: 0.6, G: 0.4, B: 0.2, A: 1},
	"clear":     {R: 0, G: 0, B: 0, A: 0},
}

// colorValue resolves a raw color expression. Spaces are stripped before the
// tag is matched.
func (s *session) colorValue(raw string, deps *[]brand.Dependency) (brand.Color, error) {
	tokens := strings.Split(strings.ReplaceAll(raw, " ", ""), "/")
	tag, rest := tokens[0], tokens[1:]

	switch tag {
	case "named":
		if len(rest) != 1 {
			return brand.Color{}, fmt.Errorf("named: expected 1 component, got %d", len(rest))
		}
		return s.namedColor(rest[0], deps)

	case "web":
		if len(rest) != 1 {
			return brand.Color{}, fmt.Errorf("web: expected 1 component, got %d", len(rest))
		}
		return webColor(rest[0])
	}

	arity, ok := colorArity[tag]
	if !ok {
		return brand.Color{}, fmt.Errorf("unknown color format %q", tag)
	}
	return s.componentColor(tag, rest, arity, deps)
}

// namedColor resolves named/<name>: a color entry if one exists, else the
// built-in palette.
func (s *session) namedColor(name string, deps *[]brand.Dependency) (brand.Color, error) {
	if s.r.colorEntry(name) != nil {
		*deps = append(*deps, brand.Dependency{Kind: brand.KindColor, Name: name})
		c := s.color(name)
		if c.IsInvalid() {
			return brand.Color{}, fmt.Errorf("unresolvable color %q", name)
		}
		return c, nil
	}
	if c, ok := palette[name]; ok {
		return c, nil
	}
	return brand.Color{}, fmt.Errorf("unknown color name %q", name)
}

// webColor parses a hex string two characters at a time. It must yield
// exactly 3 or 4 components and consume the string exactly.
func webColor(hex string) (brand.Color, error) {
	if len(hex)%2 != 0 {
		return brand.Color{}, fmt.Errorf("web: odd-length hex %q", hex)
	}
	n := len(hex) / 2
	if n != 3 && n != 4 {
		return brand.Color{}, fmt.Errorf("web: expected 3 or 4 hex components, got %d", n)
	}
	comps := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return brand.Color{}, fmt.Errorf("web: bad hex %q", hex[2*i:2*i+2])
		}
		comps[i] = float64(v) / 255
	}
	c := brand.Color{R: comps[0], G: comps[1], B: comps[2], A: 1}
	if n == 4 {
		c.A = comps[3]
	}
	return c, nil
}

// componentColor parses the numeric formats. Components are metric
// expressions; an empty component defaults to 0 for color channels and to
// full scale for the white and alpha channels. Values above 1.0 put the
// whole entry on the 0-255 scale; values strictly between 0 and 1 pin it to
// the 0-1 scale; mixing the two is ambiguous and fails.
func (s *session) componentColor(tag string, rest []string, arity int, deps *[]brand.Dependency) (brand.Color, error) {
	type component struct {
		v     float64
		empty bool
	}
	comps := make([]component, 0, arity)
	i := 0
	for len(comps) < arity {
		if i >= len(rest) {
			return brand.Color{}, fmt.Errorf("%s: expected %d components, got %d", tag, arity, len(comps))
		}
		if rest[i] == "" {
			comps = append(comps, component{empty: true})
			i++
			continue
		}
		v, next, err := s.metricToken(rest, i, deps)
		if err != nil {
			return brand.Color{}, fmt.Errorf("%s: %w", tag, err)
		}
		comps = append(comps, component{v: v})
		i = next
	}
	if i != len(rest) {
		return brand.Color{}, fmt.Errorf("%s: trailing %q", tag, strings.Join(rest[i:], "/"))
	}

	is255, isFraction := false, false
	for _, c := range comps {
		if c.empty {
			continue
		}
		if c.v < 0 || c.v > 255 {
			return brand.Color{}, fmt.Errorf("%s: component %v out of range", tag, c.v)
		}
		if c.v > 1 {
			is255 = true
		}
		if c.v > 0 && c.v < 1 {
			isFraction = true
		}
	}
	if is255 && isFraction {
		return brand.Color{}, fmt.Errorf("%s: ambiguous scale, mixes 0-255 and 0-1 components", tag)
	}

	fullScale := 1.0
	if is255 {
		fullScale = 255
	}

	// The white channel of w/wa and the trailing alpha channel default to
	// full scale when left empty; plain color channels default to zero.
	fullScaleIndex := map[int]bool{}
	switch tag {
	case "w":
		fullScaleIndex[0] = true
	case "wa":
		fullScaleIndex[0] = true
		fullScaleIndex[1] = true
	case "rgba", "hsba":
		fullScaleIndex[3] = true
	}

	values := make([]float64, 0, arity+1)
	for idx, c := range comps {
		v := c.v
		if c.empty && fullScaleIndex[idx] {
			v = fullScale
		}
		values = append(values, v)
	}

	// rgb, hsb and w carry an implicit opaque alpha.
	switch tag {
	case "rgb", "hsb", "w":
		values = append(values, fullScale)
	}

	if is255 {
		for idx := range values {
			values[idx] /= 255
		}
	}

	if len(values) == 2 {
		w, a := values[0], values[1]
		return brand.Color{R: w, G: w, B: w, A: a}, nil
	}
	if tag == "hsb" || tag == "hsba" {
		c := colorful.Hsv(values[0]*360, values[1], values[2])
		return brand.Color{R: c.R, G: c.G, B: c.B, A: values[3]}, nil
	}
	return brand.Color{R: values[0], G: values[1], B: values[2], A: values[3]}, nil
}
