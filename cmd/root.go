/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for brandkit.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/t0rst/brandkit/cmd/list"
	"github.com/t0rst/brandkit/cmd/render"
	"github.com/t0rst/brandkit/cmd/resolve"
	"github.com/t0rst/brandkit/cmd/validate"
	"github.com/t0rst/brandkit/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "brandkit",
	Short: "Resolve and inspect brand asset documents",
	Long: `brandkit decodes declarative brand asset documents (metrics, colors, fonts,
text attributes, images and button styles) and resolves their named entries
into concrete values.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("storage-root", "", "Directory image file paths resolve against")
	rootCmd.PersistentFlags().String("fallback", "", "Default brand document consulted for missing names")
	_ = viper.BindPFlag("storageRoot", rootCmd.PersistentFlags().Lookup("storage-root"))
	_ = viper.BindPFlag("fallback", rootCmd.PersistentFlags().Lookup("fallback"))

	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(render.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
