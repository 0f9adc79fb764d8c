/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package model

import "github.com/humaidq/livercheck/logging"

var logger = logging.Logger(logging.SourceModel)
