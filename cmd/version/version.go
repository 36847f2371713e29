/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package version provides the version command for brandkit.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t0rst/brandkit/internal/version"
)

// Cmd is the version cobra command.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for brandkit.`,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("full", false, "Include build detail")
}

func run(cmd *cobra.Command, args []string) error {
	full, _ := cmd.Flags().GetBool("full")
	if full {
		fmt.Printf("brandkit %s\n", version.Full())
		return nil
	}
	fmt.Printf("brandkit %s\n", version.Get())
	return nil
}
