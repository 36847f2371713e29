/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for brandkit.
package validate

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/t0rst/brandkit/brand"
	"github.com/t0rst/brandkit/cmd/render"
	"github.com/t0rst/brandkit/config"
	"github.com/t0rst/brandkit/fs"
	"github.com/t0rst/brandkit/load"
	"github.com/t0rst/brandkit/resolver"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate brand documents",
	Long: `Validate brand documents for decode errors. With --resolve, also resolve
every entry and report those that resolve to their invalid sentinel.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("resolve", false, "Also resolve every entry and report failures")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	doResolve, _ := cmd.Flags().GetBool("resolve")

	filesystem := fs.NewOSFileSystem()

	// Use config files if no args provided
	files := args
	if len(files) == 0 {
		cfg := config.LoadOrDefault(filesystem, ".")
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}

	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	failed := false
	for _, file := range files {
		doc, err := load.Document(context.Background(), file, load.Options{
			StorageRoot: viper.GetString("storageRoot"),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			failed = true
			continue
		}

		bad := 0
		if doResolve {
			bad = reportUnresolvable(file, doc)
			if bad > 0 {
				failed = true
			}
		}

		if !quiet {
			if bad > 0 {
				fmt.Printf("%s: %d entries, %d unresolvable\n", file, doc.Len(), bad)
			} else {
				fmt.Printf("%s: %d entries OK\n", file, doc.Len())
			}
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}

// reportUnresolvable resolves every resolvable entry in the document and
// prints one line per entry that came back as an invalid sentinel.
func reportUnresolvable(file string, doc *brand.Document) int {
	res := resolver.New(doc)
	bad := 0
	for _, kind := range render.Kinds {
		if kind == brand.KindPlacement || kind == brand.KindParameter {
			continue
		}
		for _, name := range doc.Names(kind) {
			if entryInvalid(res, kind, name) {
				fmt.Fprintf(os.Stderr, "%s: %s/%s does not resolve\n", file, kind, name)
				bad++
			}
		}
	}
	return bad
}

func entryInvalid(res *resolver.Resolver, kind brand.Kind, name string) bool {
	switch kind {
	case brand.KindMetric:
		return brand.IsInvalidMetric(res.Metric(name))
	case brand.KindColor:
		return res.Color(name).IsInvalid()
	case brand.KindFont:
		return res.Font(name).IsInvalid()
	case brand.KindTextAttributes:
		return res.TextAttributes(name).IsInvalid()
	case brand.KindImage:
		return res.Image(name).IsInvalid()
	case brand.KindButtonStyle:
		return res.ButtonStyle(name).IsInvalid()
	}
	return false
}
