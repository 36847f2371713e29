/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package brand_test

import (
	"sync"
	"testing"

	"github.com/t0rst/brandkit/brand"
)

func TestCache_EmptyUntilStore(t *testing.T) {
	var c brand.Cache[float64]

	if _, _, loaded := c.Get(); loaded {
		t.Error("Get() loaded = true on fresh cache, want false")
	}
	if deps := c.Dependencies(); len(deps) != 0 {
		t.Errorf("Dependencies() = %v on fresh cache, want none", deps)
	}
}

func TestCache_StoreAndGet(t *testing.T) {
	var c brand.Cache[float64]
	deps := []brand.Dependency{{Kind: brand.KindMetric, Name: "unit"}}
	c.Store(42, true, deps)

	v, valid, loaded := c.Get()
	if v != 42 || !valid || !loaded {
		t.Errorf("Get() = %v, %v, %v; want 42, true, true", v, valid, loaded)
	}
	got := c.Dependencies()
	if len(got) != 1 || got[0] != deps[0] {
		t.Errorf("Dependencies() = %v, want %v", got, deps)
	}
}

func TestCache_FirstWriteWins(t *testing.T) {
	var c brand.Cache[float64]
	c.Store(1, true, nil)
	c.Store(2, true, nil)

	if v, _, _ := c.Get(); v != 1 {
		t.Errorf("Get() = %v after second Store, want first write 1", v)
	}
}

func TestCache_InvalidStore(t *testing.T) {
	var c brand.Cache[float64]
	c.Store(brand.InvalidMetric(), false, nil)

	v, valid, loaded := c.Get()
	if !loaded || valid {
		t.Errorf("Get() valid, loaded = %v, %v; want false, true", valid, loaded)
	}
	if !brand.IsInvalidMetric(v) {
		t.Errorf("Get() payload = %v, want invalid sentinel", v)
	}
}

func TestCache_DependenciesCopied(t *testing.T) {
	var c brand.Cache[float64]
	c.Store(1, true, []brand.Dependency{{Kind: brand.KindMetric, Name: "unit"}})

	got := c.Dependencies()
	got[0].Name = "mutated"
	if again := c.Dependencies(); again[0].Name != "unit" {
		t.Error("Dependencies() shares backing array with caller")
	}
}

func TestCache_ConcurrentStore(t *testing.T) {
	var c brand.Cache[int]

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Store(i, true, nil)
		}(i)
	}
	wg.Wait()

	v, _, loaded := c.Get()
	if !loaded {
		t.Fatal("Get() loaded = false after concurrent stores")
	}
	if v < 0 || v >= 32 {
		t.Errorf("Get() = %v, want one of the stored values", v)
	}
}

func TestKind_Strings(t *testing.T) {
	tests := []struct {
		kind brand.Kind
		name string
	}{
		{brand.KindMetric, "metric"},
		{brand.KindColor, "color"},
		{brand.KindFont, "font"},
		{brand.KindTextAttributes, "textAttributes"},
		{brand.KindPlacement, "placement"},
		{brand.KindImage, "image"},
		{brand.KindButtonStyle, "buttonStyle"},
		{brand.KindParameter, "parameter"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("%v.String() = %q, want %q", int(tt.kind), got, tt.name)
		}
		kind, ok := brand.KindFromString(tt.name)
		if !ok || kind != tt.kind {
			t.Errorf("KindFromString(%q) = %v, %v; want %v, true", tt.name, kind, ok, tt.kind)
		}
	}

	// Plural document field names parse too.
	if kind, ok := brand.KindFromString("buttonStyles"); !ok || kind != brand.KindButtonStyle {
		t.Errorf("KindFromString(buttonStyles) = %v, %v", kind, ok)
	}
	if kind, ok := brand.KindFromString("otherParameters"); !ok || kind != brand.KindParameter {
		t.Errorf("KindFromString(otherParameters) = %v, %v", kind, ok)
	}
	if _, ok := brand.KindFromString("nonesuch"); ok {
		t.Error("KindFromString(nonesuch) ok = true, want false")
	}
}

func TestDependency_String(t *testing.T) {
	d := brand.Dependency{Kind: brand.KindColor, Name: "accent"}
	if got := d.String(); got != "color:accent" {
		t.Errorf("String() = %q, want color:accent", got)
	}
}
