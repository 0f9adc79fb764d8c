/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package clinical

import (
	"fmt"
	"strings"
)

// Sex is the biological sex selected on the form.
type Sex int

// Sex values. SexUnspecified is a valid form state but cannot be submitted.
const (
	SexUnspecified Sex = iota
	SexFemale
	SexMale
)

// Age bounds accepted by the form.
const (
	MinAge     = 0
	MaxAge     = 120
	DefaultAge = 30
)

func (s Sex) String() string {
	switch s {
	case SexFemale:
		return "Female"
	case SexMale:
		return "Male"
	default:
		return "Unspecified"
	}
}

// Code returns the numeric encoding the model was trained with.
func (s Sex) Code() (float64, bool) {
	switch s {
	case SexFemale:
		return 0, true
	case SexMale:
		return 1, true
	default:
		return 0, false
	}
}

// ParseSex accepts the form and CLI spellings of a sex value. Empty input
// and the form placeholder map to SexUnspecified.
func ParseSex(value string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "select", "unspecified":
		return SexUnspecified, nil
	case "female", "f":
		return SexFemale, nil
	case "male", "m":
		return SexMale, nil
	default:
		return SexUnspecified, fmt.Errorf("%w: %q", errUnknownSex, value)
	}
}

// MarshalText encodes the sex as the lower-case form value, empty when
// unspecified.
func (s Sex) MarshalText() ([]byte, error) {
	if s == SexUnspecified {
		return []byte{}, nil
	}

	return []byte(strings.ToLower(s.String())), nil
}

// PatientObservation holds the clinical inputs for one submission. Lab
// values are non-negative; the zero value of each lab is the form default.
type PatientObservation struct {
	Age                       int
	Sex                       Sex
	Albumin                   float64
	AlkalinePhosphatase       float64
	AlanineAminotransferase   float64
	AspartateAminotransferase float64
	Bilirubin                 float64
	Cholinesterase            float64
	Cholesterol               float64
	Creatinine                float64
	GammaGlutamylTransferase  float64
	Protein                   float64
}

// DefaultObservation returns the values the form starts with.
func DefaultObservation() PatientObservation {
	return PatientObservation{Age: DefaultAge}
}

// Complete reports whether the observation may be submitted.
func (o PatientObservation) Complete() bool {
	return o.Sex != SexUnspecified
}
