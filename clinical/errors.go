/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package clinical

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingRequiredField is matched by every ValidationError.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrUnexpectedModelOutput is matched by every UnexpectedModelOutputError.
	ErrUnexpectedModelOutput = errors.New("unexpected model output")

	errUnknownSex = errors.New("unknown sex")
)

// ValidationError reports an observation that cannot be turned into a
// feature vector.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredField, e.Field)
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingRequiredField
}

// UnexpectedModelOutputError reports a prediction that contradicts the
// model's own probability distribution.
type UnexpectedModelOutputError struct {
	Label   string
	Classes []string
	Reason  string
}

func (e *UnexpectedModelOutputError) Error() string {
	return fmt.Sprintf("%s: %s (label %q, classes [%s])",
		ErrUnexpectedModelOutput, e.Reason, e.Label, strings.Join(e.Classes, ", "))
}

func (e *UnexpectedModelOutputError) Unwrap() error {
	return ErrUnexpectedModelOutput
}
