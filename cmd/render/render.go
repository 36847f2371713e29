/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package render provides the render command for brandkit, plus the shared
// row computation and table output used by the list command.
package render

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/t0rst/brandkit/brand"
	"github.com/t0rst/brandkit/load"
	"github.com/t0rst/brandkit/resolver"
)

// Kinds is the display order for entry kinds.
var Kinds = []brand.Kind{
	brand.KindMetric,
	brand.KindColor,
	brand.KindFont,
	brand.KindTextAttributes,
	brand.KindPlacement,
	brand.KindImage,
	brand.KindButtonStyle,
	brand.KindParameter,
}

// Row holds computed display values for a single entry.
type Row struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Raw     string `json:"raw,omitempty"`
	Value   string `json:"value,omitempty"`
	IsColor bool   `json:"-"`
	Invalid bool   `json:"invalid,omitempty"`
}

// Cmd is the render cobra command.
var Cmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Render brand documents as markdown",
	Long:  `Render brand documents as markdown tables grouped by kind, with resolved values.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().String("kind", "", "Filter by entry kind (metrics, colors, fonts, ...)")
}

func run(cmd *cobra.Command, args []string) error {
	kindFilter, _ := cmd.Flags().GetString("kind")

	kinds := Kinds
	if kindFilter != "" {
		kind, ok := brand.KindFromString(kindFilter)
		if !ok {
			return fmt.Errorf("unknown kind %q", kindFilter)
		}
		kinds = []brand.Kind{kind}
	}

	var rows []Row
	for _, file := range args {
		doc, err := load.Document(context.Background(), file, load.Options{
			StorageRoot: viper.GetString("storageRoot"),
		})
		if err != nil {
			return fmt.Errorf("loading %s: %w", file, err)
		}
		res := resolver.New(doc)
		rows = append(rows, ComputeRows(doc, res, kinds, true)...)
	}
	return Markdown(rows)
}

// ComputeRows transforms document entries into display rows, resolving values
// when resolved is true.
func ComputeRows(doc *brand.Document, res *resolver.Resolver, kinds []brand.Kind, resolved bool) []Row {
	var rows []Row
	for _, kind := range kinds {
		for _, name := range doc.Names(kind) {
			row := Row{Kind: kind.String(), Name: name, Raw: rawValue(doc, kind, name)}
			if resolved {
				row.Value, row.IsColor, row.Invalid = resolvedValue(res, kind, name)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func rawValue(doc *brand.Document, kind brand.Kind, name string) string {
	switch kind {
	case brand.KindMetric:
		return doc.Metrics[name].Raw
	case brand.KindColor:
		return doc.Colors[name].Raw
	case brand.KindFont:
		e := doc.Fonts[name]
		var parts []string
		if e.BasedOn != "" {
			parts = append(parts, "basedOn "+e.BasedOn)
		}
		if e.Family != "" {
			parts = append(parts, e.Family)
		}
		if e.Face != "" {
			parts = append(parts, e.Face)
		}
		if e.Size != "" {
			parts = append(parts, "size "+e.Size)
		}
		return strings.Join(parts, ", ")
	case brand.KindTextAttributes:
		e := doc.TextAttributes[name]
		keys := make([]string, 0, len(e.Attributes))
		for k := range e.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		s := strings.Join(keys, ", ")
		if e.BasedOn != "" {
			if s != "" {
				s = ", " + s
			}
			s = "basedOn " + e.BasedOn + s
		}
		return s
	case brand.KindPlacement:
		e := doc.Placements[name]
		return fmt.Sprintf("%d rules", len(e.Rules))
	case brand.KindImage:
		e := doc.Images[name]
		switch {
		case e.BasedOn != "":
			return "basedOn " + e.BasedOn
		case e.FilePath != "":
			return e.FilePath
		default:
			return "makeBackground"
		}
	case brand.KindButtonStyle:
		e := doc.ButtonStyles[name]
		var states []string
		for _, s := range brand.States {
			if e.State(s) != nil {
				states = append(states, s.String())
			}
		}
		return strings.Join(states, ", ")
	case brand.KindParameter:
		return fmt.Sprintf("%v", doc.Parameters[name].Raw)
	}
	return ""
}

func resolvedValue(res *resolver.Resolver, kind brand.Kind, name string) (value string, isColor, invalid bool) {
	switch kind {
	case brand.KindMetric:
		v := res.Metric(name)
		if brand.IsInvalidMetric(v) {
			return "invalid", false, true
		}
		return fmt.Sprintf("%g", v), false, false
	case brand.KindColor:
		c := res.Color(name)
		hex := c.Hex()
		if _, err := csscolorparser.Parse(hex); err == nil {
			isColor = true
		}
		return hex, isColor, c.IsInvalid()
	case brand.KindFont:
		f := res.Font(name)
		if f.IsInvalid() {
			return "invalid", false, true
		}
		return fmt.Sprintf("%s %g", f.Descriptor.PostScriptName(), f.Size), false, false
	case brand.KindTextAttributes:
		a := res.TextAttributes(name)
		if a.IsInvalid() {
			return "invalid", false, true
		}
		keys := make([]string, 0, len(a.Attrs))
		for k := range a.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return strings.Join(keys, ", "), false, false
	case brand.KindImage:
		img := res.Image(name)
		if img.IsInvalid() {
			return "invalid", false, true
		}
		if img.Background != nil {
			return fmt.Sprintf("background %g pt corner", img.Background.CornerRadius), false, false
		}
		return fmt.Sprintf("%d bytes", len(img.Data)), false, false
	case brand.KindButtonStyle:
		b := res.ButtonStyle(name)
		if b.IsInvalid() {
			return "invalid", false, true
		}
		var states []string
		for _, s := range brand.States {
			if _, ok := b.States[s]; ok {
				states = append(states, s.String())
			}
		}
		return strings.Join(states, ", "), false, false
	}
	return "", false, false
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as an aligned table to stdout.
func Table(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	kindW, nameW := 4, 4
	for _, r := range rows {
		if len(r.Kind) > kindW {
			kindW = len(r.Kind)
		}
		if len(r.Name) > nameW {
			nameW = len(r.Name)
		}
	}
	for _, r := range rows {
		swatch := ""
		if r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		val := r.Value
		if val == "" {
			val = r.Raw
		}
		fmt.Printf("%-*s  %-*s  %s%s\n", kindW, r.Kind, nameW, r.Name, swatch, val)
	}
	return nil
}

// Markdown renders rows as markdown tables grouped by kind.
func Markdown(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	kindOrder := make([]string, 0)
	byKind := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byKind[r.Kind]; !exists {
			kindOrder = append(kindOrder, r.Kind)
		}
		byKind[r.Kind] = append(byKind[r.Kind], r)
	}

	caser := cases.Title(language.English)
	first := true
	for _, kind := range kindOrder {
		group := byKind[kind]
		if !first {
			fmt.Println()
		}
		first = false

		fmt.Printf("## %s\n\n", caser.String(kind))

		nameW, rawW, valW := 4, 10, 5
		for _, r := range group {
			if len(r.Name) > nameW {
				nameW = len(r.Name)
			}
			if len(r.Raw) > rawW {
				rawW = len(r.Raw)
			}
			if len(r.Value) > valW {
				valW = len(r.Value)
			}
		}

		fmt.Printf("| %-*s | %-*s | %-*s |\n", nameW, "Name", rawW, "Definition", valW, "Value")
		fmt.Printf("|-%s-|-%s-|-%s-|\n",
			strings.Repeat("-", nameW), strings.Repeat("-", rawW), strings.Repeat("-", valW))
		for _, r := range group {
			fmt.Printf("| %-*s | %-*s | %-*s |\n", nameW, r.Name, rawW, r.Raw, valW, r.Value)
		}
	}
	return nil
}
