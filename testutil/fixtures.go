/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for brandkit.
package testutil

import (
	"testing"

	"github.com/t0rst/brandkit/brand"
)

// DecodeDocument decodes document source, failing the test on error.
func DecodeDocument(t *testing.T, source string) *brand.Document {
	t.Helper()

	doc, err := brand.Decode([]byte(source))
	if err != nil {
		t.Fatalf("Failed to decode document: %v", err)
	}
	return doc
}
