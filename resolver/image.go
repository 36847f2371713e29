/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"path/filepath"

	"github.com/t0rst/brandkit/brand"
)

// imageValue resolves an image entry from its single source (decode
// guarantees exactly one of basedOn, filePath, makeBackground), then applies
// alignment insets, a render-mode override and the placement reference.
func (s *session) imageValue(e *brand.ImageEntry, deps *[]brand.Dependency) (brand.Image, error) {
	ctx := s.r.context()
	if ctx == nil {
		panic("brandkit: image resolution requires a document Context; call Document.SetContext first")
	}

	var img brand.Image
	switch {
	case e.BasedOn != "":
		*deps = append(*deps, brand.Dependency{Kind: brand.KindImage, Name: e.BasedOn})
		base := s.image(e.BasedOn)
		if base.IsInvalid() {
			return brand.Image{}, fmt.Errorf("unresolvable base image %q", e.BasedOn)
		}
		img = base

	case e.FilePath != "":
		data, err := contextFS(ctx).ReadFile(filepath.Join(ctx.Root, e.FilePath))
		if err != nil {
			return brand.Image{}, fmt.Errorf("filePath %q: %w", e.FilePath, err)
		}
		if len(data) == 0 {
			return brand.Image{}, fmt.Errorf("filePath %q: empty file", e.FilePath)
		}
		img.Data = data

	default:
		bg, err := s.backgroundSpec(e.MakeBackground, deps)
		if err != nil {
			return brand.Image{}, err
		}
		img.Background = bg
	}

	if e.AlignmentInsets != "" {
		vals, err := s.metricSlice(e.AlignmentInsets, 4, deps)
		if err != nil {
			return brand.Image{}, fmt.Errorf("alignmentInsets: %w", err)
		}
		img.AlignmentInsets = &brand.Insets{Top: vals[0], Left: vals[1], Bottom: vals[2], Right: vals[3]}
	}

	if e.RenderMode != "" {
		mode, err := brand.ParseRenderMode(e.RenderMode)
		if err != nil {
			// Decode validates render modes, so this only trips on entries
			// constructed without Decode.
			return brand.Image{}, err
		}
		img.RenderMode = mode
	}

	if e.Placement != "" {
		// Existence check only; placement rules are applied by the
		// presentation layer.
		if s.r.placementEntry(e.Placement) == nil {
			return brand.Image{}, fmt.Errorf("placement %q: no such entry", e.Placement)
		}
		*deps = append(*deps, brand.Dependency{Kind: brand.KindPlacement, Name: e.Placement})
		img.Placement = e.Placement
	}

	return img, nil
}

// backgroundSpec resolves a makeBackground declaration: a stretchable
// rounded-rectangle fill/stroke image sized to accommodate the requested
// minimum dimensions and the corner/line geometry.
func (s *session) backgroundSpec(e *brand.BackgroundEntry, deps *[]brand.Dependency) (*brand.BackgroundSpec, error) {
	bg := &brand.BackgroundSpec{}

	if e.FillColor != "" {
		*deps = append(*deps, brand.Dependency{Kind: brand.KindColor, Name: e.FillColor})
		c := s.color(e.FillColor)
		if c.IsInvalid() {
			return nil, fmt.Errorf("makeBackground.fillColor: unresolvable %q", e.FillColor)
		}
		bg.FillColor = &c
	}
	if e.StrokeColor != "" {
		*deps = append(*deps, brand.Dependency{Kind: brand.KindColor, Name: e.StrokeColor})
		c := s.color(e.StrokeColor)
		if c.IsInvalid() {
			return nil, fmt.Errorf("makeBackground.strokeColor: unresolvable %q", e.StrokeColor)
		}
		bg.StrokeColor = &c
	}

	var err error
	if bg.LineWidth, err = s.metricValue(e.LineWidth, deps); err != nil {
		return nil, fmt.Errorf("makeBackground.lineWidth: %w", err)
	}
	if bg.CornerRadius, err = s.metricValue(e.CornerRadius, deps); err != nil {
		return nil, fmt.Errorf("makeBackground.cornerRadius: %w", err)
	}
	minWidth, err := s.metricValue(e.MinimumWidth, deps)
	if err != nil {
		return nil, fmt.Errorf("makeBackground.minimumWidth: %w", err)
	}
	minHeight, err := s.metricValue(e.MinimumHeight, deps)
	if err != nil {
		return nil, fmt.Errorf("makeBackground.minimumHeight: %w", err)
	}

	// The canvas must fit both rounded corners and the stroke on every edge.
	edge := bg.CornerRadius + bg.LineWidth
	bg.CapInsets = brand.Insets{Top: edge, Left: edge, Bottom: edge, Right: edge}
	bg.MinimumSize = brand.Size{
		Width:  maxFloat(minWidth, 2*edge),
		Height: maxFloat(minHeight, 2*edge),
	}
	return bg, nil
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
