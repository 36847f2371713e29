/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package brand

// MetricEntry is one named metric declaration: a raw slash-delimited metric
// expression plus its memoization cell.
type MetricEntry struct {
	Name string `json:"-"`

	// Raw is the declared metric expression, verbatim.
	Raw string `json:"-"`

	cache Cache[float64]
}

// Cache returns the entry's memoization cell.
func (e *MetricEntry) Cache() *Cache[float64] { return &e.cache }

// ColorEntry is one named color declaration.
type ColorEntry struct {
	Name string `json:"-"`

	// Raw is the declared color expression, verbatim.
	Raw string `json:"-"`

	cache Cache[Color]
}

// Cache returns the entry's memoization cell.
func (e *ColorEntry) Cache() *Cache[Color] { return &e.cache }

// FontEntry is one named font declaration.
type FontEntry struct {
	Name string `json:"-"`

	// BasedOn names another font entry to derive from.
	BasedOn string `json:"basedOn,omitempty"`

	// Attributes is a free-form descriptor-attribute dictionary, interpreted
	// against a fixed key vocabulary at resolution time.
	Attributes map[string]any `json:"attributes,omitempty"`

	// Family and Face override the corresponding descriptor attributes when
	// non-empty.
	Family string `json:"family,omitempty"`
	Face   string `json:"face,omitempty"`

	// Size is a metric expression for the point size; it overrides any size
	// set via Attributes.
	Size string `json:"size,omitempty"`

	cache Cache[FontValue]
}

// Cache returns the entry's memoization cell.
func (e *FontEntry) Cache() *Cache[FontValue] { return &e.cache }

// TextAttributesEntry is one named text-attribute-set declaration.
type TextAttributesEntry struct {
	Name string `json:"-"`

	// BasedOn names another text-attribute-set entry to derive from.
	BasedOn string `json:"basedOn,omitempty"`

	// Attributes is the free-form attribute dictionary.
	Attributes map[string]any `json:"attributes,omitempty"`

	cache Cache[TextAttributes]
}

// Cache returns the entry's memoization cell.
func (e *TextAttributesEntry) Cache() *Cache[TextAttributes] { return &e.cache }

// PlacementEntry is one named placement declaration. Its rules are opaque to
// the resolution engine; image entries only existence-check references to it,
// and the presentation layer interprets the body.
type PlacementEntry struct {
	Name string `json:"-"`

	// Rules is the declared placement body, verbatim.
	Rules map[string]any `json:"-"`
}

// BackgroundEntry declares a procedural rounded-rectangle background image.
// Color fields name color entries; the rest are metric expressions.
type BackgroundEntry struct {
	FillColor     string `json:"fillColor,omitempty"`
	StrokeColor   string `json:"strokeColor,omitempty"`
	LineWidth     string `json:"lineWidth,omitempty"`
	CornerRadius  string `json:"cornerRadius,omitempty"`
	MinimumWidth  string `json:"minimumWidth,omitempty"`
	MinimumHeight string `json:"minimumHeight,omitempty"`
}

// ImageEntry is one named image declaration. Exactly one of BasedOn,
// FilePath and MakeBackground is set; decode enforces this.
type ImageEntry struct {
	Name string `json:"-"`

	BasedOn        string           `json:"basedOn,omitempty"`
	FilePath       string           `json:"filePath,omitempty"`
	MakeBackground *BackgroundEntry `json:"makeBackground,omitempty"`

	// AlignmentInsets is a 4-tuple of metric expressions, top/left/bottom/right.
	AlignmentInsets string `json:"alignmentInsets,omitempty"`

	// RenderMode is one of "", "automatic", "original", "template".
	RenderMode string `json:"renderMode,omitempty"`

	// Placement names a placement entry.
	Placement string `json:"placement,omitempty"`

	cache Cache[Image]
}

// Cache returns the entry's memoization cell.
func (e *ImageEntry) Cache() *Cache[Image] { return &e.cache }

// ButtonStateEntry names the assets for one button interaction state.
type ButtonStateEntry struct {
	TitleAttributes string `json:"titleAttributes,omitempty"`
	TitleImage      string `json:"titleImage,omitempty"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
}

// ButtonStyleEntry is one named button-style declaration.
type ButtonStyleEntry struct {
	Name string `json:"-"`

	Normal      *ButtonStateEntry `json:"normal,omitempty"`
	Highlighted *ButtonStateEntry `json:"highlighted,omitempty"`
	Disabled    *ButtonStateEntry `json:"disabled,omitempty"`
	Selected    *ButtonStateEntry `json:"selected,omitempty"`

	// ContentInsets is a 4-tuple of metric expressions, top/left/bottom/right.
	ContentInsets string `json:"contentInsets,omitempty"`

	// TintColor names a color entry.
	TintColor string `json:"tintColor,omitempty"`

	ReverseIconSide bool `json:"reverseIconSide,omitempty"`

	cache Cache[ButtonStyle]
}

// State returns the sub-record for the given interaction state, or nil.
func (e *ButtonStyleEntry) State(s State) *ButtonStateEntry {
	switch s {
	case StateHighlighted:
		return e.Highlighted
	case StateDisabled:
		return e.Disabled
	case StateSelected:
		return e.Selected
	default:
		return e.Normal
	}
}

// Cache returns the entry's memoization cell.
func (e *ButtonStyleEntry) Cache() *Cache[ButtonStyle] { return &e.cache }

// ParameterEntry is one named free-form parameter declaration: an arbitrary
// nested value read through the parameter accessor's typed readers.
type ParameterEntry struct {
	Name string `json:"-"`

	// Raw is the declared value: string, number, bool, array or object.
	Raw any `json:"-"`
}
