/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errInvalidNumber  = errors.New("must be a number")
	errInvalidInteger = errors.New("must be a whole number")
	errNotFinite      = errors.New("must be a finite number")
	errUnknownSex     = errors.New("must be Female or Male")
)
