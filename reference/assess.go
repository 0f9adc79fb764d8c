/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package reference

import (
	"sync"

	"github.com/humaidq/livercheck/clinical"
)

// Status classifies a lab value against its reference range.
type Status string

// Status values.
const (
	StatusLow     Status = "low"
	StatusNormal  Status = "normal"
	StatusHigh    Status = "high"
	StatusUnknown Status = "unknown"
)

// Finding is the assessment of one lab value of an observation.
type Finding struct {
	TestName string   `json:"test"`
	Unit     string   `json:"unit"`
	Value    float64  `json:"value"`
	Status   Status   `json:"status"`
	Min      *float64 `json:"reference_min,omitempty"`
	Max      *float64 `json:"reference_max,omitempty"`
}

// OutOfRange reports whether the value lies outside its reference range.
func (f Finding) OutOfRange() bool {
	return f.Status == StatusLow || f.Status == StatusHigh
}

type rangeKey struct {
	test     string
	ageRange AgeRange
	gender   Gender
}

var (
	indexOnce  sync.Once
	rangeIndex map[rangeKey]Range
)

func index() map[rangeKey]Range {
	indexOnce.Do(func() {
		defs := Definitions()

		rangeIndex = make(map[rangeKey]Range, len(defs))
		for _, def := range defs {
			rangeIndex[rangeKey{test: def.TestName, ageRange: def.AgeRange, gender: def.Gender}] = def
		}
	})

	return rangeIndex
}

// Lookup returns the range for a test, trying the gender-specific range
// before the unisex one. It returns nil when the test has no range.
func Lookup(testName string, ageRange AgeRange, gender Gender) *Range {
	idx := index()

	if r, ok := idx[rangeKey{test: testName, ageRange: ageRange, gender: gender}]; ok {
		return &r
	}

	if r, ok := idx[rangeKey{test: testName, ageRange: ageRange, gender: GenderUnisex}]; ok {
		return &r
	}

	return nil
}

func genderFor(sex clinical.Sex) Gender {
	switch sex {
	case clinical.SexFemale:
		return GenderFemale
	case clinical.SexMale:
		return GenderMale
	default:
		return GenderUnisex
	}
}

// Assess compares each lab value of obs with the range for the patient's age
// and sex. It never rejects an observation; values without a range are
// reported as StatusUnknown.
func Assess(obs clinical.PatientObservation) []Finding {
	ageRange := ageRangeFor(obs.Age)
	gender := genderFor(obs.Sex)

	labs := []struct {
		test  string
		unit  string
		value float64
	}{
		{TestAlbumin, "g/dL", obs.Albumin},
		{TestALP, "U/L", obs.AlkalinePhosphatase},
		{TestALT, "U/L", obs.AlanineAminotransferase},
		{TestAST, "U/L", obs.AspartateAminotransferase},
		{TestBilirubinTotal, "mg/dL", obs.Bilirubin},
		{TestCholinesterase, "U/L", obs.Cholinesterase},
		{TestTotalCholesterol, "mg/dL", obs.Cholesterol},
		{TestCreatinine, "mg/dL", obs.Creatinine},
		{TestGGT, "U/L", obs.GammaGlutamylTransferase},
		{TestTotalProtein, "g/dL", obs.Protein},
	}

	findings := make([]Finding, 0, len(labs))

	for _, lab := range labs {
		finding := Finding{
			TestName: lab.test,
			Unit:     lab.unit,
			Value:    lab.value,
			Status:   StatusUnknown,
		}

		if r := Lookup(lab.test, ageRange, gender); r != nil {
			refMin, refMax, _, _, _ := r.DisplayRange()
			finding.Min = refMin
			finding.Max = refMax
			finding.Status = classify(lab.value, refMin, refMax)
		}

		findings = append(findings, finding)
	}

	return findings
}

func classify(value float64, refMin, refMax *float64) Status {
	switch {
	case refMin != nil && value < *refMin:
		return StatusLow
	case refMax != nil && value > *refMax:
		return StatusHigh
	default:
		return StatusNormal
	}
}
