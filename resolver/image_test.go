/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"bytes"
	"testing"

	"github.com/t0rst/brandkit/brand"
	"github.com/t0rst/brandkit/internal/mapfs"
	"github.com/t0rst/brandkit/resolver"
)

func imageDoc(t *testing.T, images map[string]*brand.ImageEntry) *brand.Document {
	t.Helper()
	doc := &brand.Document{
		Metrics:    map[string]*brand.MetricEntry{},
		Colors:     map[string]*brand.ColorEntry{},
		Placements: map[string]*brand.PlacementEntry{},
		Images:     map[string]*brand.ImageEntry{},
	}
	for name, e := range images {
		e.Name = name
		doc.Images[name] = e
	}
	return doc
}

func TestResolver_Image_FilePath(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/assets/logo.png", []byte("png-bytes"), 0644)

	doc := imageDoc(t, map[string]*brand.ImageEntry{
		"logo": {FilePath: "logo.png"},
	})
	doc.SetContext(&brand.Context{Root: "/assets", FS: mfs})
	r := resolver.New(doc)

	got := r.Image("logo")
	if got.IsInvalid() {
		t.Fatal("Image(logo) is invalid, want resolved")
	}
	if !bytes.Equal(got.Data, []byte("png-bytes")) {
		t.Errorf("Data = %q, want file content", got.Data)
	}
	if got.RenderMode != brand.RenderModeAutomatic {
		t.Errorf("RenderMode = %v, want automatic", got.RenderMode)
	}
}

func TestResolver_Image_MissingFile(t *testing.T) {
	doc := imageDoc(t, map[string]*brand.ImageEntry{
		"logo": {FilePath: "nonesuch.png"},
	})
	doc.SetContext(&brand.Context{Root: "/assets", FS: mapfs.New()})
	r := resolver.New(doc)

	if got := r.Image("logo"); !got.IsInvalid() {
		t.Errorf("Image(logo) = %+v, want invalid sentinel", got)
	}
}

func TestResolver_Image_EmptyFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/assets/empty.png", nil, 0644)

	doc := imageDoc(t, map[string]*brand.ImageEntry{
		"empty": {FilePath: "empty.png"},
	})
	doc.SetContext(&brand.Context{Root: "/assets", FS: mfs})
	r := resolver.New(doc)

	if got := r.Image("empty"); !got.IsInvalid() {
		t.Errorf("Image(empty) = %+v, want invalid sentinel", got)
	}
}

func TestResolver_Image_BasedOn(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/assets/logo.png", []byte("png-bytes"), 0644)

	doc := imageDoc(t, map[string]*brand.ImageEntry{
		"logo":     {FilePath: "logo.png"},
		"template": {BasedOn: "logo", RenderMode: "template"},
	})
	doc.SetContext(&brand.Context{Root: "/assets", FS: mfs})
	r := resolver.New(doc)

	got := r.Image("template")
	if got.IsInvalid() {
		t.Fatal("Image(template) is invalid, want resolved")
	}
	if !bytes.Equal(got.Data, []byte("png-bytes")) {
		t.Errorf("Data = %q, want base file content", got.Data)
	}
	if got.RenderMode != brand.RenderModeTemplate {
		t.Errorf("RenderMode = %v, want template", got.RenderMode)
	}

	// The base keeps its own render mode.
	if base := r.Image("logo"); base.RenderMode != brand.RenderModeAutomatic {
		t.Errorf("base RenderMode = %v, want automatic", base.RenderMode)
	}
}

func TestResolver_Image_AlignmentInsets(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/assets/logo.png", []byte("png-bytes"), 0644)

	doc := imageDoc(t, map[string]*brand.ImageEntry{
		"logo": {FilePath: "logo.png", AlignmentInsets: "1/2/3/4"},
	})
	doc.SetContext(&brand.Context{Root: "/assets", FS: mfs})
	r := resolver.New(doc)

	got := r.Image("logo")
	want := brand.Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}
	if got.AlignmentInsets == nil || *got.AlignmentInsets != want {
		t.Errorf("AlignmentInsets = %v, want %v", got.AlignmentInsets, want)
	}
}

func TestResolver_Image_MakeBackground(t *testing.T) {
	doc := imageDoc(t, map[string]*brand.ImageEntry{
		"pill": {MakeBackground: &brand.BackgroundEntry{
			FillColor:     "accent",
			StrokeColor:   "edge",
			LineWidth:     "2",
			CornerRadius:  "8",
			MinimumWidth:  "44",
			MinimumHeight: "10",
		}},
	})
	doc.Colors["accent"] = &brand.ColorEntry{Name: "accent", Raw: "named/blue"}
	doc.Colors["edge"] = &brand.ColorEntry{Name: "edge", Raw: "named/black"}
	doc.SetContext(&brand.Context{})
	r := resolver.New(doc)

	got := r.Image("pill")
	if got.IsInvalid() {
		t.Fatal("Image(pill) is invalid, want resolved")
	}
	bg := got.Background
	if bg == nil {
		t.Fatal("Background is nil, want spec")
	}
	if bg.FillColor == nil || *bg.FillColor != (brand.Color{R: 0, G: 0, B: 1, A: 1}) {
		t.Errorf("FillColor = %v, want blue", bg.FillColor)
	}
	if bg.LineWidth != 2 || bg.CornerRadius != 8 {
		t.Errorf("LineWidth/CornerRadius = %v/%v, want 2/8", bg.LineWidth, bg.CornerRadius)
	}
	// Each edge must fit the corner radius plus stroke: 8+2 = 10.
	wantInsets := brand.Insets{Top: 10, Left: 10, Bottom: 10, Right: 10}
	if bg.CapInsets != wantInsets {
		t.Errorf("CapInsets = %v, want %v", bg.CapInsets, wantInsets)
	}
	// Width keeps the requested 44; height grows to 2*edge = 20.
	wantSize := brand.Size{Width: 44, Height: 20}
	if bg.MinimumSize != wantSize {
		t.Errorf("MinimumSize = %v, want %v", bg.MinimumSize, wantSize)
	}
}

func TestResolver_Image_MakeBackgroundDefaults(t *testing.T) {
	doc := imageDoc(t, map[string]*brand.ImageEntry{
		"plain": {MakeBackground: &brand.BackgroundEntry{FillColor: "accent"}},
	})
	doc.Colors["accent"] = &brand.ColorEntry{Name: "accent", Raw: "named/blue"}
	doc.SetContext(&brand.Context{})
	r := resolver.New(doc)

	got := r.Image("plain")
	if got.IsInvalid() {
		t.Fatal("Image(plain) is invalid, want resolved")
	}
	// Omitted metric fields read as zero.
	bg := got.Background
	if bg.LineWidth != 0 || bg.CornerRadius != 0 || bg.MinimumSize != (brand.Size{}) {
		t.Errorf("Background = %+v, want zero geometry", bg)
	}
}

func TestResolver_Image_Placement(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/assets/logo.png", []byte("png-bytes"), 0644)

	doc := imageDoc(t, map[string]*brand.ImageEntry{
		"placed":  {FilePath: "logo.png", Placement: "corner"},
		"orphan":  {BasedOn: "placed", Placement: "nonesuch"},
		"literal": {FilePath: "logo.png"},
	})
	doc.Placements["corner"] = &brand.PlacementEntry{Name: "corner", Rules: map[string]any{"edge": "top"}}
	doc.SetContext(&brand.Context{Root: "/assets", FS: mfs})
	r := resolver.New(doc)

	got := r.Image("placed")
	if got.Placement != "corner" {
		t.Errorf("Placement = %q, want corner", got.Placement)
	}

	deps := r.Dependencies(brand.KindImage, "placed")
	want := brand.Dependency{Kind: brand.KindPlacement, Name: "corner"}
	if len(deps) != 1 || deps[0] != want {
		t.Errorf("Dependencies(placed) = %v, want [%v]", deps, want)
	}

	// Referencing a placement that does not exist fails the entry.
	if got := r.Image("orphan"); !got.IsInvalid() {
		t.Errorf("Image(orphan) = %+v, want invalid sentinel", got)
	}

	if got := r.Image("literal"); got.Placement != "" {
		t.Errorf("Image(literal).Placement = %q, want empty", got.Placement)
	}
}

func TestResolver_Image_WithoutContextPanics(t *testing.T) {
	doc := imageDoc(t, map[string]*brand.ImageEntry{
		"logo": {FilePath: "logo.png"},
	})
	r := resolver.New(doc)

	defer func() {
		if recover() == nil {
			t.Error("Image without Context did not panic")
		}
	}()
	r.Image("logo")
}
