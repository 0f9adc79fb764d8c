/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package clinical

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayLabel turns a class label such as "suspect_disease" into
// "Suspect Disease".
func DisplayLabel(label string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(label, "_", " "))
}

// Headline is the sentence shown above the confidence list for a tier.
func (t Tier) Headline() string {
	switch t {
	case TierPositive:
		return "No Disease"
	case TierCautionary:
		return "Suspect Disease"
	default:
		return "Liver Disease Detected"
	}
}
