/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errModelPathRequired  = errors.New("model is required (set via --model or " + modelPathEnvVar + " env var)")
	errCSRFSecretRequired = errors.New(csrfSecretEnvVar + " is required in production")
	errInvalidRuntimeEnv  = errors.New(runtimeEnvVar + " must be one of: development, dev, production, prod")
	errAgeOutOfRange      = errors.New("age must be between 0 and 120")
	errNegativeLabValue   = errors.New("lab values must not be negative")
	errNotFiniteLabValue  = errors.New("lab values must be finite numbers")
)
