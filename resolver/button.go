/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package resolver

import (
	"errors"
	"fmt"

	"github.com/t0rst/brandkit/brand"
)

// buttonStyleValue resolves a button-style entry. Each failing reference is
// recorded and processing of the remaining states continues, so the log
// names every problem; any accumulated error still fails the whole style.
func (s *session) buttonStyleValue(e *brand.ButtonStyleEntry, deps *[]brand.Dependency) (brand.ButtonStyle, error) {
	var errs []error
	v := brand.ButtonStyle{States: make(map[brand.State]brand.StateStyle)}

	for _, state := range brand.States {
		sub := e.State(state)
		if sub == nil {
			continue
		}
		style := brand.StateStyle{}

		if sub.TitleAttributes != "" {
			*deps = append(*deps, brand.Dependency{Kind: brand.KindTextAttributes, Name: sub.TitleAttributes})
			ta := s.textAttributes(sub.TitleAttributes)
			if ta.IsInvalid() {
				errs = append(errs, fmt.Errorf("%s.titleAttributes: unresolvable %q", state, sub.TitleAttributes))
			} else {
				style.TitleAttributes = &ta
			}
		}
		if sub.TitleImage != "" {
			*deps = append(*deps, brand.Dependency{Kind: brand.KindImage, Name: sub.TitleImage})
			img := s.image(sub.TitleImage)
			if img.IsInvalid() {
				errs = append(errs, fmt.Errorf("%s.titleImage: unresolvable %q", state, sub.TitleImage))
			} else {
				style.TitleImage = &img
			}
		}
		if sub.BackgroundImage != "" {
			*deps = append(*deps, brand.Dependency{Kind: brand.KindImage, Name: sub.BackgroundImage})
			img := s.image(sub.BackgroundImage)
			if img.IsInvalid() {
				errs = append(errs, fmt.Errorf("%s.backgroundImage: unresolvable %q", state, sub.BackgroundImage))
			} else {
				style.BackgroundImage = &img
			}
		}
		v.States[state] = style
	}

	if e.ContentInsets != "" {
		vals, err := s.metricSlice(e.ContentInsets, 4, deps)
		if err != nil {
			errs = append(errs, fmt.Errorf("contentInsets: %w", err))
		} else {
			v.ContentInsets = &brand.Insets{Top: vals[0], Left: vals[1], Bottom: vals[2], Right: vals[3]}
		}
	}

	if e.TintColor != "" {
		*deps = append(*deps, brand.Dependency{Kind: brand.KindColor, Name: e.TintColor})
		c := s.color(e.TintColor)
		if c.IsInvalid() {
			errs = append(errs, fmt.Errorf("tintColor: unresolvable %q", e.TintColor))
		} else {
			v.Tint = &c
		}
	}

	v.ReverseIconSide = e.ReverseIconSide

	if len(errs) > 0 {
		return brand.ButtonStyle{}, errors.Join(errs...)
	}
	return v, nil
}
