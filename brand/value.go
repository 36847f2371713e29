/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package brand

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// InvalidMetric returns the sentinel value a metric entry resolves to on
// failure. It is NaN, so compare with IsInvalidMetric rather than ==.
func InvalidMetric() float64 {
	return math.NaN()
}

// IsInvalidMetric reports whether v is the invalid-metric sentinel.
func IsInvalidMetric(v float64) bool {
	return math.IsNaN(v)
}

// Color is a resolved color as four 0-1 components.
type Color struct {
	R, G, B, A float64
}

// InvalidColor is the sentinel a color entry resolves to on failure.
// Translucent red, so a styling mistake is visible rather than silent.
var InvalidColor = Color{R: 1, G: 0, B: 0, A: 0.5}

// IsInvalid reports whether c is the invalid-color sentinel.
func (c Color) IsInvalid() bool {
	return c == InvalidColor
}

// Hex returns the color as a #rrggbb CSS hex string. Alpha is dropped.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// Point is a resolved 2-component coordinate.
type Point struct {
	X, Y float64
}

// Size is a resolved 2-component extent.
type Size struct {
	Width, Height float64
}

// Insets are resolved edge distances, in the grammar's top/left/bottom/right
// declaration order.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// FontDescriptor is the assembled description of a font, prior to
// instantiation by a platform font system.
type FontDescriptor struct {
	Family          string
	Face            string
	Name            string
	VisibleName     string
	Size            float64
	Matrix          []float64
	CharacterSet    string
	Traits          map[string]any
	FixedAdvance    float64
	FeatureSettings []any
	TextStyle       string
	CascadeList     []string

	// Custom holds attributes passed through via the "!" key prefix.
	Custom map[string]any
}

// PostScriptName derives the canonical font name implied by the descriptor:
// the family with spaces removed, then "-" and the face with spaces removed
// when a face is set. An explicit Name attribute overrides the derivation.
func (d FontDescriptor) PostScriptName() string {
	if d.Name != "" {
		return d.Name
	}
	name := strings.ReplaceAll(d.Family, " ", "")
	if d.Face != "" {
		name += "-" + strings.ReplaceAll(d.Face, " ", "")
	}
	return name
}

// clone returns a deep copy so derived descriptors never share maps or
// slices with their base.
func (d FontDescriptor) clone() FontDescriptor {
	out := d
	if d.Matrix != nil {
		out.Matrix = append([]float64(nil), d.Matrix...)
	}
	if d.Traits != nil {
		out.Traits = make(map[string]any, len(d.Traits))
		for k, v := range d.Traits {
			out.Traits[k] = v
		}
	}
	if d.FeatureSettings != nil {
		out.FeatureSettings = append([]any(nil), d.FeatureSettings...)
	}
	if d.CascadeList != nil {
		out.CascadeList = append([]string(nil), d.CascadeList...)
	}
	if d.Custom != nil {
		out.Custom = make(map[string]any, len(d.Custom))
		for k, v := range d.Custom {
			out.Custom[k] = v
		}
	}
	return out
}

// FontValue is a resolved font: the assembled descriptor plus the effective
// point size.
type FontValue struct {
	Descriptor FontDescriptor
	Size       float64

	invalid bool
}

// Derive returns a copy of v suitable for building a new font value on top
// of, with descriptor maps and slices unshared.
func (v FontValue) Derive() FontValue {
	return FontValue{Descriptor: v.Descriptor.clone(), Size: v.Size}
}

// InvalidFont returns the sentinel a font entry resolves to on failure.
func InvalidFont() FontValue {
	return FontValue{Size: math.NaN(), invalid: true}
}

// IsInvalid reports whether v is the invalid-font sentinel.
func (v FontValue) IsInvalid() bool {
	return v.invalid
}

// TextAttributes is a resolved text-attribute set: an attribute map plus the
// raw tracking value when one was declared but could not yet be converted
// (no font present).
type TextAttributes struct {
	Attrs    map[string]any
	Tracking *float64

	invalid bool
}

// Attribute keys used in TextAttributes.Attrs.
const (
	AttrFont            = "font"
	AttrForegroundColor = "foregroundColor"
	AttrBackgroundColor = "backgroundColor"
	AttrKern            = "kern"
)

// Derive returns a copy of v with an unshared attribute map.
func (v TextAttributes) Derive() TextAttributes {
	out := TextAttributes{Attrs: make(map[string]any, len(v.Attrs))}
	for k, val := range v.Attrs {
		out.Attrs[k] = val
	}
	if v.Tracking != nil {
		t := *v.Tracking
		out.Tracking = &t
	}
	return out
}

// InvalidTextAttributes returns the sentinel a text-attribute-set entry
// resolves to on failure.
func InvalidTextAttributes() TextAttributes {
	return TextAttributes{invalid: true}
}

// IsInvalid reports whether v is the invalid-attribute-set sentinel.
func (v TextAttributes) IsInvalid() bool {
	return v.invalid
}

// RenderMode selects how a presentation layer should interpret image color
// content.
type RenderMode int

const (
	// RenderModeAutomatic leaves the choice to the presentation context.
	RenderModeAutomatic RenderMode = iota

	// RenderModeOriginal always renders the image's own colors.
	RenderModeOriginal

	// RenderModeTemplate renders the image as a tintable template.
	RenderModeTemplate
)

// String returns the render mode's document spelling.
func (m RenderMode) String() string {
	switch m {
	case RenderModeOriginal:
		return "original"
	case RenderModeTemplate:
		return "template"
	default:
		return "automatic"
	}
}

// BackgroundSpec is the resolved form of a procedural background image: a
// stretchable rounded rectangle with optional fill and stroke.
type BackgroundSpec struct {
	FillColor    *Color
	StrokeColor  *Color
	LineWidth    float64
	CornerRadius float64

	// MinimumSize is the smallest canvas that accommodates the requested
	// minimum dimensions and the corner/line geometry.
	MinimumSize Size

	// CapInsets are the stretch-resistant edges (cornerRadius + lineWidth
	// on each side).
	CapInsets Insets
}

// Image is a resolved image. Exactly one of Data and Background is set for a
// directly-sourced image; a basedOn derivation copies its base's source.
type Image struct {
	// Data is raw image file content, when the entry was file-sourced.
	Data []byte

	// Background is set when the entry procedurally describes its image.
	Background *BackgroundSpec

	// AlignmentInsets inset the image's alignment rect from its bounds.
	AlignmentInsets *Insets

	RenderMode RenderMode

	// Placement names a placement entry; its rules are applied by the
	// presentation layer, not here.
	Placement string

	invalid bool
}

// InvalidImage returns the sentinel an image entry resolves to on failure.
func InvalidImage() Image {
	return Image{invalid: true}
}

// IsInvalid reports whether v is the invalid-image sentinel.
func (v Image) IsInvalid() bool {
	return v.invalid
}

// State is a button interaction state.
type State int

const (
	// StateNormal is the resting state.
	StateNormal State = iota

	// StateHighlighted is the pressed state.
	StateHighlighted

	// StateDisabled is the non-interactive state.
	StateDisabled

	// StateSelected is the toggled-on state.
	StateSelected
)

// States lists all button interaction states in document order.
var States = []State{StateNormal, StateHighlighted, StateDisabled, StateSelected}

// String returns the state's document spelling.
func (s State) String() string {
	switch s {
	case StateHighlighted:
		return "highlighted"
	case StateDisabled:
		return "disabled"
	case StateSelected:
		return "selected"
	default:
		return "normal"
	}
}

// StateStyle is the resolved per-state portion of a button style.
type StateStyle struct {
	TitleAttributes *TextAttributes
	TitleImage      *Image
	BackgroundImage *Image
}

// ButtonStyle is a resolved composite button style.
type ButtonStyle struct {
	States          map[State]StateStyle
	ContentInsets   *Insets
	Tint            *Color
	ReverseIconSide bool

	invalid bool
}

// InvalidButtonStyle returns the sentinel a button-style entry resolves to on
// failure: no per-state styles, no insets, no tint, ReverseIconSide false.
func InvalidButtonStyle() ButtonStyle {
	return ButtonStyle{invalid: true}
}

// IsInvalid reports whether v is the invalid-button-style sentinel.
func (v ButtonStyle) IsInvalid() bool {
	return v.invalid
}
