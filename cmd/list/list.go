/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package list provides the list command for brandkit.
package list

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/t0rst/brandkit/brand"
	"github.com/t0rst/brandkit/cmd/render"
	"github.com/t0rst/brandkit/load"
	"github.com/t0rst/brandkit/resolver"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List entries from brand documents",
	Long:  `List all entries from brand documents with optional kind filtering and resolved values.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().String("kind", "", "Filter by entry kind (metrics, colors, fonts, ...)")
	Cmd.Flags().Bool("resolved", false, "Show resolved values")
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	kindFilter, _ := cmd.Flags().GetString("kind")
	resolved, _ := cmd.Flags().GetBool("resolved")
	format, _ := cmd.Flags().GetString("format")

	kinds := render.Kinds
	if kindFilter != "" {
		kind, ok := brand.KindFromString(kindFilter)
		if !ok {
			return fmt.Errorf("unknown kind %q", kindFilter)
		}
		kinds = []brand.Kind{kind}
	}

	var allRows []render.Row

	for _, file := range args {
		doc, err := load.Document(context.Background(), file, load.Options{
			StorageRoot: viper.GetString("storageRoot"),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", file, err)
			continue
		}
		res := resolver.New(doc)
		allRows = append(allRows, render.ComputeRows(doc, res, kinds, resolved)...)
	}

	switch format {
	case "json":
		out, err := json.MarshalIndent(allRows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	default:
		return render.Table(allRows)
	}
}
