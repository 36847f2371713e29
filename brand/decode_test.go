/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package brand_test

import (
	"errors"
	"testing"

	"github.com/t0rst/brandkit/brand"
)

const sampleJSON = `{
	// Brand document with one entry of most kinds.
	"version": 1,
	"metrics": {
		"unit": "8",
		"spacing_wide": "mul/2/named/unit"
	},
	"colors": {
		"ink": "named/black",
		"accent": "rgb/0/122/255"
	},
	"fonts": {
		"body": {"family": "Avenir Next", "face": "Regular", "size": "17"}
	},
	"textAttributes": {
		"body": {"attributes": {"font": "body", "foregroundColor": "ink"}}
	},
	"placements": {
		"corner": {"edge": "top"}
	},
	"images": {
		"logo": {"filePath": "logo.png"}
	},
	"buttonStyles": {
		"primary": {"normal": {"titleAttributes": "body"}}
	},
	"otherParameters": {
		"columns": 3
	}
}`

func TestDecode_JSON(t *testing.T) {
	doc, err := brand.Decode([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if doc.Version != 1 {
		t.Errorf("Version = %d, want 1", doc.Version)
	}
	if doc.Len() != 10 {
		t.Errorf("Len() = %d, want 10", doc.Len())
	}
	if got := doc.Metrics["spacing_wide"].Raw; got != "mul/2/named/unit" {
		t.Errorf("Metrics[spacing_wide].Raw = %q", got)
	}
	if !doc.Has(brand.KindColor, "accent") {
		t.Error("Has(color, accent) = false, want true")
	}
	if got := doc.Fonts["body"].Family; got != "Avenir Next" {
		t.Errorf("Fonts[body].Family = %q", got)
	}
	if got := doc.Images["logo"].FilePath; got != "logo.png" {
		t.Errorf("Images[logo].FilePath = %q", got)
	}
	if doc.ButtonStyles["primary"].Normal == nil {
		t.Error("ButtonStyles[primary].Normal = nil")
	}
	if got, ok := doc.Parameters["columns"].Raw.(float64); !ok || got != 3 {
		t.Errorf("Parameters[columns].Raw = %v", doc.Parameters["columns"].Raw)
	}
}

const sampleYAML = `version: 1
metrics:
  unit: "8"
colors:
  ink: named/black
fonts:
  body:
    family: Avenir Next
    size: "17"
`

func TestDecode_YAML(t *testing.T) {
	doc, err := brand.Decode([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := doc.Metrics["unit"].Raw; got != "8" {
		t.Errorf("Metrics[unit].Raw = %q, want 8", got)
	}
	if got := doc.Fonts["body"].Family; got != "Avenir Next" {
		t.Errorf("Fonts[body].Family = %q", got)
	}
}

func TestDecode_Groups(t *testing.T) {
	src := `{
		"metrics": {"unit": "8"},
		"groups": {
			"onboarding": {
				"metrics": {"unit": "4"},
				"colors": {"accent": "named/red"}
			}
		}
	}`
	doc, err := brand.Decode([]byte(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	// Group entries are merged under a dotted prefix; the root keeps its own.
	if got := doc.Metrics["unit"].Raw; got != "8" {
		t.Errorf("Metrics[unit].Raw = %q, want 8", got)
	}
	if got := doc.Metrics["onboarding.unit"].Raw; got != "4" {
		t.Errorf("Metrics[onboarding.unit].Raw = %q, want 4", got)
	}
	if !doc.Has(brand.KindColor, "onboarding.accent") {
		t.Error("Has(color, onboarding.accent) = false, want true")
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "space in metric name",
			src:  `{"metrics": {"bad name": "1"}}`,
			want: brand.ErrSpaceInName,
		},
		{
			name: "space in group name",
			src:  `{"groups": {"bad name": {"metrics": {"m": "1"}}}}`,
			want: brand.ErrSpaceInName,
		},
		{
			name: "image with no source",
			src:  `{"images": {"i": {"renderMode": "template"}}}`,
			want: brand.ErrImageSource,
		},
		{
			name: "image with two sources",
			src:  `{"images": {"i": {"filePath": "a.png", "basedOn": "other"}}}`,
			want: brand.ErrImageSource,
		},
		{
			name: "bad render mode",
			src:  `{"images": {"i": {"filePath": "a.png", "renderMode": "glossy"}}}`,
			want: brand.ErrRenderMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := brand.Decode([]byte(tt.src))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecode_GroupCollision(t *testing.T) {
	src := `{
		"groups": {
			"a": {"metrics": {"m": "1"}}
		},
		"metrics": {"a.m": "2"}
	}`
	_, err := brand.Decode([]byte(src))
	if !errors.Is(err, brand.ErrDuplicateEntry) {
		t.Errorf("Decode() error = %v, want ErrDuplicateEntry", err)
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	if _, err := brand.Decode([]byte(`{"metrics": `)); err == nil {
		t.Error("Decode() error = nil, want parse failure")
	}
}

func TestDocument_EncodeRoundTrip(t *testing.T) {
	doc, err := brand.Decode([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	out, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	again, err := brand.Decode(out)
	if err != nil {
		t.Fatalf("Decode(Encode()) error = %v", err)
	}
	if again.Len() != doc.Len() {
		t.Errorf("round trip Len() = %d, want %d", again.Len(), doc.Len())
	}
	for _, kind := range []brand.Kind{
		brand.KindMetric, brand.KindColor, brand.KindFont,
		brand.KindTextAttributes, brand.KindPlacement, brand.KindImage,
		brand.KindButtonStyle, brand.KindParameter,
	} {
		for _, name := range doc.Names(kind) {
			if !again.Has(kind, name) {
				t.Errorf("round trip lost %s %q", kind, name)
			}
		}
	}
	if got := again.Metrics["spacing_wide"].Raw; got != "mul/2/named/unit" {
		t.Errorf("round trip Metrics[spacing_wide].Raw = %q", got)
	}
}

func TestParseRenderMode(t *testing.T) {
	tests := []struct {
		in      string
		want    brand.RenderMode
		wantErr bool
	}{
		{in: "", want: brand.RenderModeAutomatic},
		{in: "automatic", want: brand.RenderModeAutomatic},
		{in: "original", want: brand.RenderModeOriginal},
		{in: "template", want: brand.RenderModeTemplate},
		{in: "glossy", wantErr: true},
	}
	for _, tt := range tests {
		got, err := brand.ParseRenderMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRenderMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseRenderMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
