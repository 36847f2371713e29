/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"reflect"
	"testing"

	"github.com/t0rst/brandkit/brand"
	"github.com/t0rst/brandkit/resolver"
)

func paramsDoc(t *testing.T, params map[string]any) *brand.Document {
	t.Helper()
	doc := &brand.Document{
		Metrics:    map[string]*brand.MetricEntry{},
		Colors:     map[string]*brand.ColorEntry{},
		Parameters: map[string]*brand.ParameterEntry{},
	}
	for name, raw := range params {
		doc.Parameters[name] = &brand.ParameterEntry{Name: name, Raw: raw}
	}
	return doc
}

func TestResolver_Params_TypedReaders(t *testing.T) {
	doc := paramsDoc(t, map[string]any{
		"layout": map[string]any{
			"title":   "Welcome",
			"columns": float64(3),
			"gutter":  "add/4/4",
			"weights": []any{1.0, 2.0, "mul/2/2"},
			"origin":  []any{10.0, 20.0},
			"margins": "4/8/4/8",
			"header": map[string]any{
				"height": float64(64),
			},
		},
	})
	r := resolver.New(doc)
	p := r.Params("layout")

	if got, ok := p.String("title"); !ok || got != "Welcome" {
		t.Errorf("String(title) = %q, %v; want Welcome, true", got, ok)
	}
	if got, ok := p.Float("columns"); !ok || got != 3 {
		t.Errorf("Float(columns) = %v, %v; want 3, true", got, ok)
	}
	if got, ok := p.Int("columns"); !ok || got != 3 {
		t.Errorf("Int(columns) = %v, %v; want 3, true", got, ok)
	}
	// String leaves are metric expressions.
	if got, ok := p.Float("gutter"); !ok || got != 8 {
		t.Errorf("Float(gutter) = %v, %v; want 8, true", got, ok)
	}
	if got, ok := p.FloatArray("weights"); !ok || !reflect.DeepEqual(got, []float64{1, 2, 4}) {
		t.Errorf("FloatArray(weights) = %v, %v; want [1 2 4], true", got, ok)
	}
	if got, ok := p.Point("origin"); !ok || got != (brand.Point{X: 10, Y: 20}) {
		t.Errorf("Point(origin) = %v, %v; want {10 20}, true", got, ok)
	}
	if got, ok := p.Size("origin"); !ok || got != (brand.Size{Width: 10, Height: 20}) {
		t.Errorf("Size(origin) = %v, %v; want {10 20}, true", got, ok)
	}
	if got, ok := p.Insets("margins"); !ok || got != (brand.Insets{Top: 4, Left: 8, Bottom: 4, Right: 8}) {
		t.Errorf("Insets(margins) = %v, %v; want {4 8 4 8}, true", got, ok)
	}
	if got, ok := p.Float("header.height"); !ok || got != 64 {
		t.Errorf("Float(header.height) = %v, %v; want 64, true", got, ok)
	}
}

func TestResolver_Params_ArrayIndexing(t *testing.T) {
	doc := paramsDoc(t, map[string]any{
		"steps": []any{
			map[string]any{"label": "first"},
			map[string]any{"label": "second"},
		},
	})
	r := resolver.New(doc)
	p := r.Params("steps")

	if got, ok := p.String("1.label"); !ok || got != "second" {
		t.Errorf("String(1.label) = %q, %v; want second, true", got, ok)
	}
	if _, ok := p.String("2.label"); ok {
		t.Error("String(2.label) ok = true, want out-of-range miss")
	}
	if _, ok := p.String("x.label"); ok {
		t.Error("String(x.label) ok = true, want non-numeric miss")
	}
}

func TestResolver_Params_Sub(t *testing.T) {
	doc := paramsDoc(t, map[string]any{
		"layout": map[string]any{
			"header": map[string]any{"height": float64(64), "title": "Top"},
		},
	})
	r := resolver.New(doc)

	header := r.Params("layout").Sub("header")
	if got, ok := header.Float("height"); !ok || got != 64 {
		t.Errorf("Sub(header).Float(height) = %v, %v; want 64, true", got, ok)
	}
	if got, ok := header.String("title"); !ok || got != "Top" {
		t.Errorf("Sub(header).String(title) = %q, %v; want Top, true", got, ok)
	}

	// A missing path yields an accessor whose readers all miss.
	missing := r.Params("layout").Sub("footer")
	if _, ok := missing.Float("height"); ok {
		t.Error("Sub(footer).Float ok = true, want miss")
	}
}

func TestResolver_Params_Redirection(t *testing.T) {
	doc := paramsDoc(t, map[string]any{
		"active": "themeA",
		"themeA": map[string]any{"spacing": float64(8)},
	})
	r := resolver.New(doc)

	if got, ok := r.Params("active").Float("spacing"); !ok || got != 8 {
		t.Errorf("redirected Float(spacing) = %v, %v; want 8, true", got, ok)
	}
}

func TestResolver_Params_RedirectionCycle(t *testing.T) {
	doc := paramsDoc(t, map[string]any{
		"a": "b",
		"b": "a",
	})
	r := resolver.New(doc)

	p := r.Params("a")
	if _, ok := p.String(""); ok {
		t.Error("cyclic redirection yielded a value, want empty accessor")
	}
}

func TestResolver_Params_PlainStringLeaf(t *testing.T) {
	// A string that names no parameter entry is just a string value.
	doc := paramsDoc(t, map[string]any{"greeting": "hello"})
	r := resolver.New(doc)

	if got, ok := r.Params("greeting").String(""); !ok || got != "hello" {
		t.Errorf("String() = %q, %v; want hello, true", got, ok)
	}
}

func TestResolver_Params_Color(t *testing.T) {
	doc := paramsDoc(t, map[string]any{
		"theme": map[string]any{"accent": "brand_blue", "bogus": "nonesuch"},
	})
	doc.Colors["brand_blue"] = &brand.ColorEntry{Name: "brand_blue", Raw: "named/blue"}
	r := resolver.New(doc)
	p := r.Params("theme")

	if got, ok := p.Color("accent"); !ok || got != (brand.Color{R: 0, G: 0, B: 1, A: 1}) {
		t.Errorf("Color(accent) = %v, %v; want blue, true", got, ok)
	}
	if _, ok := p.Color("bogus"); ok {
		t.Error("Color(bogus) ok = true, want miss for unknown color entry")
	}
}

func TestResolver_Params_MissingEntry(t *testing.T) {
	doc := paramsDoc(t, nil)
	r := resolver.New(doc)

	p := r.Params("nonesuch")
	if p == nil {
		t.Fatal("Params(nonesuch) = nil, want empty accessor")
	}
	if _, ok := p.Float("anything"); ok {
		t.Error("missing entry Float ok = true, want miss")
	}
}

func TestResolver_Params_FixedArityMismatch(t *testing.T) {
	doc := paramsDoc(t, map[string]any{
		"p": map[string]any{"origin": []any{1.0, 2.0, 3.0}},
	})
	r := resolver.New(doc)

	if _, ok := r.Params("p").Point("origin"); ok {
		t.Error("Point over 3-element array ok = true, want miss")
	}
}
