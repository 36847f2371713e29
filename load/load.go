/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading brand documents: it
// reads document bytes from a path or URL, decodes them, applies config, and
// supplies the document's Context so image entries can resolve.
package load

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/t0rst/brandkit/brand"
	"github.com/t0rst/brandkit/config"
	"github.com/t0rst/brandkit/fs"
	"github.com/t0rst/brandkit/resolver"
)

// Options configures how brand documents are loaded.
type Options struct {
	// Root is the directory relative paths resolve against.
	Root string

	// FS is the filesystem to use. Defaults to the OS filesystem if nil.
	FS fs.FileSystem

	// StorageRoot is the directory image file paths resolve against.
	// Takes precedence over config if set; defaults to the document's
	// directory.
	StorageRoot string

	// Fonts verifies assembled font descriptors during resolution.
	Fonts brand.FontRegistry

	// Fallback is the location of a fallback document consulted for entries
	// the primary document lacks. Takes precedence over config if set.
	Fallback string

	// Fetcher enables fetching http(s) document locations. Nil means local
	// files only.
	Fetcher Fetcher

	// FetchTimeout is the maximum time to wait for a network fetch.
	// Defaults to DefaultTimeout when zero.
	FetchTimeout time.Duration
}

// Document loads and decodes one brand document, sets its Context, and
// returns it. The location is a local path or an http(s) URL.
func Document(ctx context.Context, location string, opts Options) (*brand.Document, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}

	content, base, err := readLocation(ctx, location, root, filesystem, opts)
	if err != nil {
		return nil, err
	}

	doc, err := brand.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", location, err)
	}

	cfg := config.LoadOrDefault(filesystem, root)
	storageRoot := opts.StorageRoot
	if storageRoot == "" {
		storageRoot = cfg.RootFor(location)
	}
	if storageRoot == "" {
		storageRoot = base
	}

	doc.SetContext(&brand.Context{
		Root:  storageRoot,
		FS:    filesystem,
		Fonts: opts.Fonts,
	})
	return doc, nil
}

// Resolver loads the document at location as the primary, loads the fallback
// document named by opts.Fallback or the config, and returns a resolver over
// the pair.
func Resolver(ctx context.Context, location string, opts Options) (*resolver.Resolver, error) {
	doc, err := Document(ctx, location, opts)
	if err != nil {
		return nil, err
	}

	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	root := opts.Root
	if root == "" {
		root = "."
	}
	fallbackLoc := opts.Fallback
	if fallbackLoc == "" {
		cfg := config.LoadOrDefault(filesystem, root)
		fallbackLoc = cfg.Fallback
	}
	if fallbackLoc == "" {
		return resolver.New(doc), nil
	}

	fallback, err := Document(ctx, fallbackLoc, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load fallback document: %w", err)
	}
	return resolver.NewWithFallback(doc, fallback), nil
}

// readLocation reads document bytes and reports the directory sibling assets
// live in.
func readLocation(ctx context.Context, location, root string, filesystem fs.FileSystem, opts Options) ([]byte, string, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		if opts.Fetcher == nil {
			return nil, "", fmt.Errorf("remote location %q requires a Fetcher", location)
		}
		timeout := opts.FetchTimeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		fetchCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		content, err := opts.Fetcher.Fetch(fetchCtx, location)
		if err != nil {
			return nil, "", err
		}
		return content, root, nil
	}

	path := location
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	content, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, filepath.Dir(path), nil
}
