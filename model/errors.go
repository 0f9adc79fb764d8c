/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArtifact is returned when an artifact fails schema validation.
	ErrInvalidArtifact = errors.New("invalid model artifact")
	// ErrFeatureOrderMismatch is returned when an artifact declares a feature
	// order different from the one the application builds.
	ErrFeatureOrderMismatch = errors.New("feature order mismatch")

	errInitScoresWidth = errors.New("init_scores length does not match class count")
	errStageWidth      = errors.New("stage tree count does not match class count")
	errTreeShape       = errors.New("tree arrays differ in length")
	errTreeChild       = errors.New("tree child index out of range")
	errTreeFeature     = errors.New("tree feature index out of range")
	errNonFinite       = errors.New("non-finite number")
)

// ArtifactError wraps any failure to load a model artifact.
type ArtifactError struct {
	Path string
	Err  error
}

func (e *ArtifactError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("model artifact: %v", e.Err)
	}

	return fmt.Sprintf("model artifact %s: %v", e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}
