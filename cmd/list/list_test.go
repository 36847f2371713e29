/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package list

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/t0rst/brandkit/cmd/render"
)

const sampleDoc = `{
	"metrics": {"unit": "8"},
	"colors": {"accent": "named/blue"}
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brand.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything it printed.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	runErr := fn()
	w.Close()
	out, _ := io.ReadAll(r)
	if runErr != nil {
		t.Fatalf("command failed: %v\n%s", runErr, out)
	}
	return string(out)
}

func TestListJSON(t *testing.T) {
	path := writeSample(t)

	out := captureStdout(t, func() error {
		Cmd.SetArgs([]string{path, "--format", "json", "--resolved"})
		return Cmd.Execute()
	})

	var rows []render.Row
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	byName := map[string]render.Row{}
	for _, r := range rows {
		byName[r.Kind+"/"+r.Name] = r
	}
	if r := byName["metric/unit"]; r.Value != "8" {
		t.Errorf("metric/unit = %+v", r)
	}
	if r := byName["color/accent"]; r.Value != "#0000ff" {
		t.Errorf("color/accent = %+v", r)
	}
}

func TestListKindFilter(t *testing.T) {
	path := writeSample(t)

	out := captureStdout(t, func() error {
		Cmd.SetArgs([]string{path, "--kind", "colors", "--format", "json"})
		return Cmd.Execute()
	})

	var rows []render.Row
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(rows) != 1 || rows[0].Name != "accent" {
		t.Errorf("rows = %+v, want single accent row", rows)
	}
}

func TestListUnknownKind(t *testing.T) {
	path := writeSample(t)
	Cmd.SetArgs([]string{path, "--kind", "gradients"})
	Cmd.SilenceErrors = true
	Cmd.SilenceUsage = true
	if err := Cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	// Reset flags so later tests start clean.
	Cmd.Flags().Set("kind", "")
	Cmd.Flags().Set("format", "table")
	Cmd.Flags().Set("resolved", "false")
}
