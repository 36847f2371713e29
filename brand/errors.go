/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package brand

import "errors"

// Sentinel errors for document decoding. Resolution-time failures never
// surface as errors; entries degrade to their kind's invalid value instead.
var (
	// ErrSpaceInName indicates an entry name containing a space character.
	ErrSpaceInName = errors.New("entry name contains a space")

	// ErrDuplicateEntry indicates a group-merge name collision.
	ErrDuplicateEntry = errors.New("duplicate entry name")

	// ErrImageSource indicates an image entry without exactly one of
	// basedOn, filePath and makeBackground.
	ErrImageSource = errors.New("image entry needs exactly one source")

	// ErrRenderMode indicates an unparseable image render-mode string.
	ErrRenderMode = errors.New("unknown render mode")
)
