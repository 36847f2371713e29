/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/t0rst/brandkit/brand"
)

// fontValue assembles a font incrementally: the basedOn chain supplies the
// starting descriptor, the attributes dictionary is applied against a fixed
// key vocabulary, family/face/size overrides follow, and finally the
// assembled descriptor is verified against the context's font registry when
// one is present.
func (s *session) fontValue(e *brand.FontEntry, deps *[]brand.Dependency) (brand.FontValue, error) {
	var v brand.FontValue
	if e.BasedOn != "" {
		*deps = append(*deps, brand.Dependency{Kind: brand.KindFont, Name: e.BasedOn})
		base := s.font(e.BasedOn)
		if base.IsInvalid() {
			return brand.FontValue{}, fmt.Errorf("unresolvable base font %q", e.BasedOn)
		}
		v = base.Derive()
	}

	if err := s.applyFontAttributes(&v.Descriptor, e.Attributes, deps); err != nil {
		return brand.FontValue{}, err
	}
	v.Size = v.Descriptor.Size

	if e.Family != "" {
		v.Descriptor.Family = e.Family
	}
	if e.Face != "" {
		v.Descriptor.Face = e.Face
	}

	if e.Size != "" {
		size, err := s.metricValue(e.Size, deps)
		if err != nil {
			return brand.FontValue{}, fmt.Errorf("size: %w", err)
		}
		v.Descriptor.Size = size
		v.Size = size
	}

	// A font system may silently substitute a different font for a
	// family/face combination it cannot realize; the registry check catches
	// that as a failure instead.
	if ctx := s.r.context(); ctx != nil && ctx.Fonts != nil {
		canonical, ok := ctx.Fonts.Lookup(v.Descriptor.Family, v.Descriptor.Face)
		if !ok || canonical != v.Descriptor.PostScriptName() {
			return brand.FontValue{}, fmt.Errorf("font system cannot realize %q", v.Descriptor.PostScriptName())
		}
	}
	return v, nil
}

// applyFontAttributes translates the free-form attributes dictionary into
// descriptor fields. Keys prefixed "!" pass through as opaque custom
// attributes; any other unrecognized key fails the entry.
func (s *session) applyFontAttributes(d *brand.FontDescriptor, attrs map[string]any, deps *[]brand.Dependency) error {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		val := attrs[key]
		if strings.HasPrefix(key, "!") {
			if d.Custom == nil {
				d.Custom = make(map[string]any)
			}
			d.Custom[strings.TrimPrefix(key, "!")] = val
			continue
		}
		switch key {
		case "family":
			str, ok := val.(string)
			if !ok {
				return fmt.Errorf("attributes.family: expected string, got %T", val)
			}
			d.Family = str
		case "face":
			str, ok := val.(string)
			if !ok {
				return fmt.Errorf("attributes.face: expected string, got %T", val)
			}
			d.Face = str
		case "name":
			str, ok := val.(string)
			if !ok {
				return fmt.Errorf("attributes.name: expected string, got %T", val)
			}
			d.Name = str
		case "visibleName":
			str, ok := val.(string)
			if !ok {
				return fmt.Errorf("attributes.visibleName: expected string, got %T", val)
			}
			d.VisibleName = str
		case "characterSet":
			str, ok := val.(string)
			if !ok {
				return fmt.Errorf("attributes.characterSet: expected string, got %T", val)
			}
			d.CharacterSet = str
		case "textStyle":
			str, ok := val.(string)
			if !ok {
				return fmt.Errorf("attributes.textStyle: expected string, got %T", val)
			}
			d.TextStyle = str
		case "size":
			v, err := s.attributeMetric(val, deps)
			if err != nil {
				return fmt.Errorf("attributes.size: %w", err)
			}
			d.Size = v
		case "fixedAdvance":
			v, err := s.attributeMetric(val, deps)
			if err != nil {
				return fmt.Errorf("attributes.fixedAdvance: %w", err)
			}
			d.FixedAdvance = v
		case "matrix":
			arr, ok := val.([]any)
			if !ok || len(arr) != 6 {
				return fmt.Errorf("attributes.matrix: expected 6 numbers")
			}
			matrix := make([]float64, 6)
			for i, elem := range arr {
				n, ok := elem.(float64)
				if !ok {
					return fmt.Errorf("attributes.matrix[%d]: expected number, got %T", i, elem)
				}
				matrix[i] = n
			}
			d.Matrix = matrix
		case "traits":
			m, ok := val.(map[string]any)
			if !ok {
				return fmt.Errorf("attributes.traits: expected object, got %T", val)
			}
			d.Traits = m
		case "featureSettings":
			arr, ok := val.([]any)
			if !ok {
				return fmt.Errorf("attributes.featureSettings: expected array, got %T", val)
			}
			d.FeatureSettings = arr
		case "cascadeList":
			arr, ok := val.([]any)
			if !ok {
				return fmt.Errorf("attributes.cascadeList: expected array, got %T", val)
			}
			list := make([]string, len(arr))
			for i, elem := range arr {
				str, ok := elem.(string)
				if !ok {
					return fmt.Errorf("attributes.cascadeList[%d]: expected string, got %T", i, elem)
				}
				list[i] = str
			}
			d.CascadeList = list
		default:
			return fmt.Errorf("attributes: unrecognized key %q", key)
		}
	}
	return nil
}

// attributeMetric reads a numeric attribute value: a literal number, or a
// string holding a metric expression.
func (s *session) attributeMetric(val any, deps *[]brand.Dependency) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case string:
		return s.metricValue(v, deps)
	}
	return 0, fmt.Errorf("expected number or metric expression, got %T", val)
}
