/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for brandkit.
package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/t0rst/brandkit/brand"
	"github.com/t0rst/brandkit/load"
	"github.com/t0rst/brandkit/resolver"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <file> <kind> <name>",
	Short: "Resolve one entry to its concrete value",
	Long: `Resolve a single named entry from a brand document and print the concrete
value as JSON. The kind is one of metrics, colors, fonts, textAttributes,
images or buttonStyles.`,
	Args: cobra.ExactArgs(3),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("deps", false, "Also print the entry's recorded dependencies")
}

func run(cmd *cobra.Command, args []string) error {
	file, kindArg, name := args[0], args[1], args[2]

	kind, ok := brand.KindFromString(kindArg)
	if !ok {
		return fmt.Errorf("unknown kind %q", kindArg)
	}

	res, err := load.Resolver(context.Background(), file, load.Options{
		StorageRoot: viper.GetString("storageRoot"),
		Fallback:    viper.GetString("fallback"),
	})
	if err != nil {
		return err
	}

	value, valid, err := resolveOne(res, kind, name)
	if err != nil {
		return err
	}

	out := map[string]any{
		"kind":  kind.String(),
		"name":  name,
		"value": value,
	}
	if !valid {
		out["invalid"] = true
	}

	showDeps, _ := cmd.Flags().GetBool("deps")
	if showDeps {
		deps := res.Dependencies(kind, name)
		sort.Slice(deps, func(i, j int) bool {
			if deps[i].Kind != deps[j].Kind {
				return deps[i].Kind < deps[j].Kind
			}
			return deps[i].Name < deps[j].Name
		})
		depStrs := make([]string, len(deps))
		for i, d := range deps {
			depStrs[i] = d.Kind.String() + "/" + d.Name
		}
		out["dependencies"] = depStrs
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func resolveOne(res *resolver.Resolver, kind brand.Kind, name string) (value any, valid bool, err error) {
	switch kind {
	case brand.KindMetric:
		v := res.Metric(name)
		if brand.IsInvalidMetric(v) {
			return nil, false, nil
		}
		return v, true, nil
	case brand.KindColor:
		c := res.Color(name)
		return map[string]any{
			"r": c.R, "g": c.G, "b": c.B, "a": c.A,
			"hex": c.Hex(),
		}, !c.IsInvalid(), nil
	case brand.KindFont:
		f := res.Font(name)
		if f.IsInvalid() {
			return nil, false, nil
		}
		return map[string]any{
			"postScriptName": f.Descriptor.PostScriptName(),
			"family":         f.Descriptor.Family,
			"face":           f.Descriptor.Face,
			"size":           f.Size,
		}, true, nil
	case brand.KindTextAttributes:
		a := res.TextAttributes(name)
		if a.IsInvalid() {
			return nil, false, nil
		}
		return describeAttrs(a), true, nil
	case brand.KindImage:
		img := res.Image(name)
		if img.IsInvalid() {
			return nil, false, nil
		}
		out := map[string]any{"renderMode": img.RenderMode.String()}
		if img.Background != nil {
			out["background"] = img.Background
		} else {
			out["bytes"] = len(img.Data)
		}
		if img.AlignmentInsets != nil {
			out["alignmentInsets"] = img.AlignmentInsets
		}
		if img.Placement != "" {
			out["placement"] = img.Placement
		}
		return out, true, nil
	case brand.KindButtonStyle:
		b := res.ButtonStyle(name)
		if b.IsInvalid() {
			return nil, false, nil
		}
		states := make(map[string]any, len(b.States))
		for s, style := range b.States {
			st := map[string]any{}
			if style.TitleAttributes != nil {
				st["titleAttributes"] = describeAttrs(*style.TitleAttributes)
			}
			if style.TitleImage != nil {
				st["titleImage"] = true
			}
			if style.BackgroundImage != nil {
				st["backgroundImage"] = true
			}
			states[s.String()] = st
		}
		out := map[string]any{"states": states, "reverseIconSide": b.ReverseIconSide}
		if b.ContentInsets != nil {
			out["contentInsets"] = b.ContentInsets
		}
		if b.Tint != nil {
			out["tintColor"] = b.Tint.Hex()
		}
		return out, true, nil
	default:
		return nil, false, fmt.Errorf("kind %q does not resolve to a value", kind)
	}
}

// describeAttrs flattens a resolved attribute set into JSON-friendly values.
func describeAttrs(a brand.TextAttributes) map[string]any {
	out := make(map[string]any, len(a.Attrs))
	for k, v := range a.Attrs {
		switch val := v.(type) {
		case brand.FontValue:
			out[k] = fmt.Sprintf("%s %g", val.Descriptor.PostScriptName(), val.Size)
		case brand.Color:
			out[k] = val.Hex()
		default:
			out[k] = val
		}
	}
	return out
}
