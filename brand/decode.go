/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package brand

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// body is the wire form of a document or group. Groups use the same shape as
// the root, minus further nesting.
type body struct {
	Version        int                             `json:"version,omitempty"`
	Metrics        map[string]string               `json:"metrics,omitempty"`
	Colors         map[string]string               `json:"colors,omitempty"`
	Fonts          map[string]*FontEntry           `json:"fonts,omitempty"`
	TextAttributes map[string]*TextAttributesEntry `json:"textAttributes,omitempty"`
	Placements     map[string]map[string]any       `json:"placements,omitempty"`
	Images         map[string]*ImageEntry          `json:"images,omitempty"`
	ButtonStyles   map[string]*ButtonStyleEntry    `json:"buttonStyles,omitempty"`
	Parameters     map[string]any                  `json:"otherParameters,omitempty"`
	Groups         map[string]*body                `json:"groups,omitempty"`
}

// Decode parses a brand document from JSON (comments tolerated) or YAML.
// Structural errors (a space in an entry name, an image entry without
// exactly one source, an unknown render mode, a group-merge collision)
// abort the whole decode; there is no partial document.
func Decode(data []byte) (*Document, error) {
	var b body
	if isLikelyJSON(data) {
		if err := json.Unmarshal(jsonc.ToJSON(data), &b); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		// YAML path: normalize to plain maps, then reuse the JSON decoding
		// of the typed entry structs.
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		normalized, err := json.Marshal(normalizeMap(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to normalize YAML: %w", err)
		}
		if err := json.Unmarshal(normalized, &b); err != nil {
			return nil, fmt.Errorf("failed to parse YAML document: %w", err)
		}
	}

	doc := &Document{
		Version:        b.Version,
		Metrics:        map[string]*MetricEntry{},
		Colors:         map[string]*ColorEntry{},
		Fonts:          map[string]*FontEntry{},
		TextAttributes: map[string]*TextAttributesEntry{},
		Placements:     map[string]*PlacementEntry{},
		Images:         map[string]*ImageEntry{},
		ButtonStyles:   map[string]*ButtonStyleEntry{},
		Parameters:     map[string]*ParameterEntry{},
	}

	if err := doc.merge(&b, ""); err != nil {
		return nil, err
	}
	for name, group := range b.Groups {
		if strings.Contains(name, " ") {
			return nil, fmt.Errorf("group %q: %w", name, ErrSpaceInName)
		}
		if err := doc.merge(group, name+"."); err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
	}
	return doc, nil
}

// merge adds one body's entries to the document under the given name prefix.
// The root body merges with an empty prefix; groups with "<group>.".
func (d *Document) merge(b *body, prefix string) error {
	for name, raw := range b.Metrics {
		if err := d.addMetric(prefix+name, raw); err != nil {
			return err
		}
	}
	for name, raw := range b.Colors {
		if err := d.addColor(prefix+name, raw); err != nil {
			return err
		}
	}
	for name, e := range b.Fonts {
		if err := d.addFont(prefix+name, e); err != nil {
			return err
		}
	}
	for name, e := range b.TextAttributes {
		if err := d.addTextAttributes(prefix+name, e); err != nil {
			return err
		}
	}
	for name, rules := range b.Placements {
		if err := d.addPlacement(prefix+name, rules); err != nil {
			return err
		}
	}
	for name, e := range b.Images {
		if err := d.addImage(prefix+name, e); err != nil {
			return err
		}
	}
	for name, e := range b.ButtonStyles {
		if err := d.addButtonStyle(prefix+name, e); err != nil {
			return err
		}
	}
	for name, raw := range b.Parameters {
		if err := d.addParameter(prefix+name, raw); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) addMetric(name, raw string) error {
	if err := checkName(KindMetric, name); err != nil {
		return err
	}
	if _, exists := d.Metrics[name]; exists {
		return fmt.Errorf("%s %q: %w", KindMetric, name, ErrDuplicateEntry)
	}
	d.Metrics[name] = &MetricEntry{Name: name, Raw: raw}
	return nil
}

func (d *Document) addColor(name, raw string) error {
	if err := checkName(KindColor, name); err != nil {
		return err
	}
	if _, exists := d.Colors[name]; exists {
		return fmt.Errorf("%s %q: %w", KindColor, name, ErrDuplicateEntry)
	}
	d.Colors[name] = &ColorEntry{Name: name, Raw: raw}
	return nil
}

func (d *Document) addFont(name string, e *FontEntry) error {
	if err := checkName(KindFont, name); err != nil {
		return err
	}
	if _, exists := d.Fonts[name]; exists {
		return fmt.Errorf("%s %q: %w", KindFont, name, ErrDuplicateEntry)
	}
	if e == nil {
		e = &FontEntry{}
	}
	e.Name = name
	d.Fonts[name] = e
	return nil
}

func (d *Document) addTextAttributes(name string, e *TextAttributesEntry) error {
	if err := checkName(KindTextAttributes, name); err != nil {
		return err
	}
	if _, exists := d.TextAttributes[name]; exists {
		return fmt.Errorf("%s %q: %w", KindTextAttributes, name, ErrDuplicateEntry)
	}
	if e == nil {
		e = &TextAttributesEntry{}
	}
	e.Name = name
	d.TextAttributes[name] = e
	return nil
}

func (d *Document) addPlacement(name string, rules map[string]any) error {
	if err := checkName(KindPlacement, name); err != nil {
		return err
	}
	if _, exists := d.Placements[name]; exists {
		return fmt.Errorf("%s %q: %w", KindPlacement, name, ErrDuplicateEntry)
	}
	d.Placements[name] = &PlacementEntry{Name: name, Rules: rules}
	return nil
}

func (d *Document) addImage(name string, e *ImageEntry) error {
	if err := checkName(KindImage, name); err != nil {
		return err
	}
	if _, exists := d.Images[name]; exists {
		return fmt.Errorf("%s %q: %w", KindImage, name, ErrDuplicateEntry)
	}
	if e == nil {
		e = &ImageEntry{}
	}
	sources := 0
	if e.BasedOn != "" {
		sources++
	}
	if e.FilePath != "" {
		sources++
	}
	if e.MakeBackground != nil {
		sources++
	}
	if sources != 1 {
		return fmt.Errorf("%s %q: %w", KindImage, name, ErrImageSource)
	}
	if _, err := ParseRenderMode(e.RenderMode); err != nil {
		return fmt.Errorf("%s %q: %w", KindImage, name, err)
	}
	e.Name = name
	d.Images[name] = e
	return nil
}

func (d *Document) addButtonStyle(name string, e *ButtonStyleEntry) error {
	if err := checkName(KindButtonStyle, name); err != nil {
		return err
	}
	if _, exists := d.ButtonStyles[name]; exists {
		return fmt.Errorf("%s %q: %w", KindButtonStyle, name, ErrDuplicateEntry)
	}
	if e == nil {
		e = &ButtonStyleEntry{}
	}
	e.Name = name
	d.ButtonStyles[name] = e
	return nil
}

func (d *Document) addParameter(name string, raw any) error {
	if err := checkName(KindParameter, name); err != nil {
		return err
	}
	if _, exists := d.Parameters[name]; exists {
		return fmt.Errorf("%s %q: %w", KindParameter, name, ErrDuplicateEntry)
	}
	d.Parameters[name] = &ParameterEntry{Name: name, Raw: raw}
	return nil
}

// ParseRenderMode parses a render-mode string. Empty means automatic.
func ParseRenderMode(s string) (RenderMode, error) {
	switch s {
	case "", "automatic":
		return RenderModeAutomatic, nil
	case "original":
		return RenderModeOriginal, nil
	case "template":
		return RenderModeTemplate, nil
	}
	return RenderModeAutomatic, fmt.Errorf("%q: %w", s, ErrRenderMode)
}

// Encode serializes the document's raw entries back to JSON. Groups were
// merged at decode time, so the output is flat; caches are not part of the
// persisted form, and re-decoding the output reproduces the same entry graph.
func (d *Document) Encode() ([]byte, error) {
	b := body{Version: d.Version}
	if len(d.Metrics) > 0 {
		b.Metrics = make(map[string]string, len(d.Metrics))
		for name, e := range d.Metrics {
			b.Metrics[name] = e.Raw
		}
	}
	if len(d.Colors) > 0 {
		b.Colors = make(map[string]string, len(d.Colors))
		for name, e := range d.Colors {
			b.Colors[name] = e.Raw
		}
	}
	if len(d.Fonts) > 0 {
		b.Fonts = d.Fonts
	}
	if len(d.TextAttributes) > 0 {
		b.TextAttributes = d.TextAttributes
	}
	if len(d.Placements) > 0 {
		b.Placements = make(map[string]map[string]any, len(d.Placements))
		for name, e := range d.Placements {
			b.Placements[name] = e.Rules
		}
	}
	if len(d.Images) > 0 {
		b.Images = d.Images
	}
	if len(d.ButtonStyles) > 0 {
		b.ButtonStyles = d.ButtonStyles
	}
	if len(d.Parameters) > 0 {
		b.Parameters = make(map[string]any, len(d.Parameters))
		for name, e := range d.Parameters {
			b.Parameters[name] = e.Raw
		}
	}
	return json.MarshalIndent(&b, "", "  ")
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON documents start with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap recursively converts map[any]any (as produced by YAML for
// non-string keys) to map[string]any so the JSON path can consume it.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}
