/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem implementation for testing.
package mapfs

import (
	"io/fs"
	"path"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MapFileSystem implements fs.FileSystem over an in-memory fstest.MapFS, so
// tests can resolve documents and image files without touching disk.
type MapFileSystem struct {
	mu      sync.RWMutex
	mapFS   fstest.MapFS
	modTime time.Time
}

// New creates an empty in-memory filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		mapFS:   make(fstest.MapFS),
		modTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile adds a file, creating implicit parent directories.
func (mfs *MapFileSystem) AddFile(p string, content []byte, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.mapFS[cleanPath(p)] = &fstest.MapFile{
		Data:    append([]byte(nil), content...),
		Mode:    mode,
		ModTime: mfs.modTime,
	}
}

// ReadFile implements fs.FileSystem.
func (mfs *MapFileSystem) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return fs.ReadFile(mfs.mapFS, cleanPath(name))
}

// ReadDir implements fs.FileSystem.
func (mfs *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return fs.ReadDir(mfs.mapFS, cleanPath(name))
}

// Stat implements fs.FileSystem.
func (mfs *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return fs.Stat(mfs.mapFS, cleanPath(name))
}

// Exists implements fs.FileSystem. A path exists if it is a file or the
// prefix of one.
func (mfs *MapFileSystem) Exists(p string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	p = cleanPath(p)
	if _, exists := mfs.mapFS[p]; exists {
		return true
	}
	prefix := p + "/"
	for filePath := range mfs.mapFS {
		if strings.HasPrefix(filePath, prefix) {
			return true
		}
	}
	return false
}

// Open implements fs.FileSystem.
func (mfs *MapFileSystem) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return mfs.mapFS.Open(cleanPath(name))
}

// cleanPath normalizes to the rooted, slash-relative form fstest.MapFS keys
// use.
func cleanPath(p string) string {
	cleaned := path.Clean(p)
	if !path.IsAbs(cleaned) {
		cleaned = "/" + cleaned
	}
	return strings.TrimPrefix(cleaned, "/")
}
