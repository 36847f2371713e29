/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package resolver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/t0rst/brandkit/brand"
)

// reservedTextAttributes are concrete text-styling keys recognized by name
// but not yet supported; declaring one is a resolution error so a document
// never silently loses styling it asked for.
var reservedTextAttributes = map[string]bool{
	"paragraphStyle":     true,
	"ligature":           true,
	"kerning":            true,
	"strikethroughStyle": true,
	"underlineStyle":     true,
	"strokeColor":        true,
	"strokeWidth":        true,
	"shadow":             true,
	"textEffect":         true,
	"attachment":         true,
	"link":               true,
	"baselineOffset":     true,
	"underlineColor":     true,
	"strikethroughColor": true,
	"obliqueness":        true,
	"expansion":          true,
	"writingDirection":   true,
	"verticalGlyphForm":  true,
}

// maxTracking and minTracking bound the tracking-to-kerning conversion.
const (
	minTracking = -1000.0
	maxTracking = 5000.0
)

// textAttributesValue resolves a text-attribute-set entry. Errors accumulate
// across all keys so every problem is reported, but any error still fails the
// whole set.
func (s *session) textAttributesValue(e *brand.TextAttributesEntry, deps *[]brand.Dependency) (brand.TextAttributes, error) {
	var errs []error
	v := brand.TextAttributes{Attrs: make(map[string]any)}

	if e.BasedOn != "" {
		*deps = append(*deps, brand.Dependency{Kind: brand.KindTextAttributes, Name: e.BasedOn})
		base := s.textAttributes(e.BasedOn)
		if base.IsInvalid() {
			errs = append(errs, fmt.Errorf("unresolvable base %q", e.BasedOn))
		} else {
			v = base.Derive()
		}
	}

	keys := make([]string, 0, len(e.Attributes))
	for k := range e.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		val := e.Attributes[key]
		switch {
		case key == "font":
			name, ok := val.(string)
			if !ok {
				errs = append(errs, fmt.Errorf("font: expected entry name, got %T", val))
				continue
			}
			*deps = append(*deps, brand.Dependency{Kind: brand.KindFont, Name: name})
			font := s.font(name)
			if font.IsInvalid() {
				errs = append(errs, fmt.Errorf("font: unresolvable %q", name))
				continue
			}
			v.Attrs[brand.AttrFont] = font

		case key == "foregroundColor", key == "backgroundColor":
			name, ok := val.(string)
			if !ok {
				errs = append(errs, fmt.Errorf("%s: expected entry name, got %T", key, val))
				continue
			}
			*deps = append(*deps, brand.Dependency{Kind: brand.KindColor, Name: name})
			color := s.color(name)
			if color.IsInvalid() {
				errs = append(errs, fmt.Errorf("%s: unresolvable %q", key, name))
				continue
			}
			v.Attrs[key] = color

		case key == "tracking":
			tracking, err := s.attributeMetric(val, deps)
			if err != nil {
				errs = append(errs, fmt.Errorf("tracking: %w", err))
				continue
			}
			v.Tracking = &tracking

		case reservedTextAttributes[key]:
			errs = append(errs, fmt.Errorf("%s: recognized but not supported", key))

		default:
			errs = append(errs, fmt.Errorf("unrecognized key %q", key))
		}
	}

	// Tracking is declared in thousandths of the point size; with a font in
	// hand it converts to an absolute spacing attribute.
	if v.Tracking != nil {
		if font, ok := v.Attrs[brand.AttrFont].(brand.FontValue); ok {
			tracking := *v.Tracking
			if tracking < minTracking || tracking > maxTracking {
				errs = append(errs, fmt.Errorf("tracking %v out of range [%v, %v]", tracking, minTracking, maxTracking))
			} else {
				v.Attrs[brand.AttrKern] = font.Size / 1000 * tracking
			}
		}
	}

	if len(errs) > 0 {
		return brand.TextAttributes{}, errors.Join(errs...)
	}
	return v, nil
}
