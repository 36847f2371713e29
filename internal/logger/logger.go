/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package logger reports resolution-time failures. Resolution never returns
// errors (entries degrade to sentinel values), so the log is the only record
// of why an entry failed. Hosts embedding the engine can silence it with
// SetOutput(io.Discard).
package logger

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	logger = log.New(os.Stderr, "brandkit: ", 0)
)

// SetOutput redirects logging. Use io.Discard to silence the engine.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

// Warn logs a resolution failure or suspect input.
func Warn(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Printf("warning: "+format, args...)
}
