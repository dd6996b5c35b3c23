// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package service

import "errors"

var (
	// ErrEmptyContent is returned when an entry is created or updated with
	// blank journal text.
	ErrEmptyContent = errors.New("entry content is empty")

	// ErrNoImages is returned when a vision re-analysis is requested
	// without any image URLs.
	ErrNoImages = errors.New("no image urls provided")
)
